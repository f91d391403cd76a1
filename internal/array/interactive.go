package array

import (
	"fmt"
)

// IntReader is the subset of input.Reader the interactive operations use.
type IntReader interface {
	ReadInt(prompt string) (int, error)
}

// ManualInput asks for a size and then for that many numbers, in order.
// A size of zero yields an empty, non-nil slice.
func ManualInput(r IntReader, out Printer) ([]int, error) {
	var size int
	for {
		n, err := r.ReadInt("Enter field size: ")
		if err != nil {
			return nil, err
		}
		if n >= 0 {
			size = n
			break
		}
		out.Println("Size must not be negative.")
	}

	// Grow as numbers arrive; size alone is only a claim.
	values := make([]int, 0, min(size, 64))
	for i := 0; i < size; i++ {
		v, err := r.ReadInt(fmt.Sprintf("Enter number [%d]: ", i+1))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// AppendFrom reads one number and appends it to a copy of seq.
func AppendFrom(seq []int, r IntReader) ([]int, error) {
	v, err := r.ReadInt("Enter new number: ")
	if err != nil {
		return nil, err
	}
	return Append(seq, v), nil
}

// RemoveFrom reads a target and drops every occurrence of it from seq.
func RemoveFrom(seq []int, r IntReader, out Printer) ([]int, error) {
	target, err := r.ReadInt("Enter number to remove: ")
	if err != nil {
		return nil, err
	}

	result, removed := Remove(seq, target)
	if removed == 0 {
		out.Println("Number not found in array.")
		return seq, nil
	}
	out.Println(fmt.Sprintf("Removed all occurrences of: %d", target))
	return result, nil
}

// Delete discards the collection. It always succeeds and returns nil, the
// absent marker.
func Delete(out Printer) []int {
	out.Println("Array has been deleted.")
	return nil
}

// Printer receives the notices interactive operations emit.
type Printer interface {
	Println(msg string)
}
