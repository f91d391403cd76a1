// Package array holds the operations the menu session applies to its
// integer collection. Every operation returns a fresh slice and never
// mutates its argument.
package array

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyCollection is returned by Max and Min for a zero-length slice.
var ErrEmptyCollection = errors.New("array is empty")

// MaxGeneratedLen caps how many elements Generate may be asked for.
const MaxGeneratedLen = 10000

// Bounds are the inclusive ranges used by Generate.
type Bounds struct {
	MinLen   int
	MaxLen   int
	MinValue int
	MaxValue int
}

// DefaultBounds generates 5 to 54 elements in [-100, 100].
func DefaultBounds() Bounds {
	return Bounds{
		MinLen:   5,
		MaxLen:   54,
		MinValue: -100,
		MaxValue: 100,
	}
}

func (b Bounds) Validate() error {
	if b.MinLen < 0 {
		return fmt.Errorf("minimum length %d is negative", b.MinLen)
	}
	if b.MinLen > b.MaxLen {
		return fmt.Errorf("minimum length %d exceeds maximum length %d", b.MinLen, b.MaxLen)
	}
	if b.MaxLen > MaxGeneratedLen {
		return fmt.Errorf("maximum length %d exceeds the limit of %d", b.MaxLen, MaxGeneratedLen)
	}
	if b.MinValue > b.MaxValue {
		return fmt.Errorf("minimum value %d exceeds maximum value %d", b.MinValue, b.MaxValue)
	}
	// Generate draws from MaxValue-MinValue+1 values, which must fit in an int.
	if span := b.MaxValue - b.MinValue; span < 0 || span == math.MaxInt {
		return fmt.Errorf("value range %d..%d is too wide", b.MinValue, b.MaxValue)
	}
	return nil
}

// Source is the randomness Generate draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Generate returns a slice whose length and elements are drawn uniformly
// from b.
func Generate(src Source, b Bounds) []int {
	length := b.MinLen + src.IntN(b.MaxLen-b.MinLen+1)
	values := make([]int, length)
	for i := range values {
		values[i] = b.MinValue + src.IntN(b.MaxValue-b.MinValue+1)
	}
	return values
}

// Append returns a copy of seq with v added at the end.
func Append(seq []int, v int) []int {
	result := make([]int, len(seq), len(seq)+1)
	copy(result, seq)
	return append(result, v)
}

func Max(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, ErrEmptyCollection
	}
	best := seq[0]
	for _, v := range seq[1:] {
		if v > best {
			best = v
		}
	}
	return best, nil
}

func Min(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, ErrEmptyCollection
	}
	best := seq[0]
	for _, v := range seq[1:] {
		if v < best {
			best = v
		}
	}
	return best, nil
}

// Count reports how many elements of seq equal v.
func Count(seq []int, v int) int {
	n := 0
	for _, x := range seq {
		if x == v {
			n++
		}
	}
	return n
}

// Remove returns seq without any element equal to v, keeping the order of
// the rest, together with the number of elements dropped. When nothing
// matches the original slice is returned as is.
func Remove(seq []int, v int) ([]int, int) {
	removed := Count(seq, v)
	if removed == 0 {
		return seq, 0
	}

	result := make([]int, 0, len(seq)-removed)
	for _, x := range seq {
		if x != v {
			result = append(result, x)
		}
	}
	return result, removed
}

// Format renders seq as space-separated elements.
func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
