package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     int
		invalids int
	}{
		{name: "plain", input: "42", want: 42},
		{name: "negative", input: "-17\n", want: -17},
		{name: "explicit plus", input: "+8", want: 8},
		{name: "skips garbage", input: "abc 1.5 0x10 7", want: 7, invalids: 3},
		{name: "surrounding whitespace", input: "\n\t  3  \n", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			r := NewReader(strings.NewReader(tt.input), out)

			got, err := r.ReadInt("Enter: ")

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.invalids, strings.Count(out.String(), invalidNumberNotice))
			require.Equal(t, tt.invalids+1, strings.Count(out.String(), "Enter: "))
		})
	}
}

func TestReadInt_ConsumesOneTokenPerCall(t *testing.T) {
	r := NewReader(strings.NewReader("5 -2 7"), io.Discard)

	var got []int
	for i := 0; i < 3; i++ {
		v, err := r.ReadInt("")
		require.NoError(t, err)
		got = append(got, v)
	}

	require.Equal(t, []int{5, -2, 7}, got)
}

func TestReadInt_Closed(t *testing.T) {
	r := NewReader(strings.NewReader("nope"), io.Discard)

	_, err := r.ReadInt("> ")

	require.ErrorIs(t, err, ErrClosed)
	require.True(t, errors.Is(err, io.EOF))
}

func TestReadYesNo(t *testing.T) {
	tests := []struct {
		input    string
		want     bool
		invalids int
	}{
		{input: "yes", want: true},
		{input: "Y", want: true},
		{input: "YeS", want: true},
		{input: "no", want: false},
		{input: "N", want: false},
		{input: "maybe nope yep y", want: true, invalids: 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := &bytes.Buffer{}
			r := NewReader(strings.NewReader(tt.input), out)

			got, err := r.ReadYesNo("Continue?")

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.invalids, strings.Count(out.String(), invalidYesNoNotice))
		})
	}
}

func TestReadYesNo_Closed(t *testing.T) {
	r := NewReader(strings.NewReader(""), io.Discard)

	_, err := r.ReadYesNo("Continue?")

	require.ErrorIs(t, err, ErrClosed)
}
