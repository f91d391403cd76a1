package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTranscript_KeepsTail(t *testing.T) {
	transcript := "one\ntwo\nthree\nfour\n"

	got := RenderTranscript(transcript, 2)

	require.Contains(t, got, "three")
	require.Contains(t, got, "four")
	require.NotContains(t, got, "two")
}

func TestRenderTranscript_NoHeight(t *testing.T) {
	got := RenderTranscript("a\nb\nc", 0)

	for _, want := range []string{"a", "b", "c"} {
		require.True(t, strings.Contains(got, want), "missing %q in %q", want, got)
	}
}
