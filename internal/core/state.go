package core

import "slices"

// Phase is where the session currently stands.
type Phase int

const (
	NoArray Phase = iota
	HasArray
	Terminated
)

func (p Phase) String() string {
	switch p {
	case NoArray:
		return "no-array"
	case HasArray:
		return "has-array"
	case Terminated:
		return "terminated"
	default:
		return "invalid"
	}
}

// ArrayState is the collection the session works on, or its absence.
// The zero value is absent.
type ArrayState struct {
	values  []int
	present bool
}

// Present reports whether an array has been created. An empty array is
// present.
func (s ArrayState) Present() bool {
	return s.present
}

// Values returns a copy of the current elements, nil when absent.
func (s ArrayState) Values() []int {
	if !s.present {
		return nil
	}
	result := slices.Clone(s.values)
	if result == nil {
		result = []int{}
	}
	return result
}

// Replace installs values as the current array.
func (s *ArrayState) Replace(values []int) {
	s.values = values
	s.present = true
}

// Clear reverts to the absent state.
func (s *ArrayState) Clear() {
	s.values = nil
	s.present = false
}
