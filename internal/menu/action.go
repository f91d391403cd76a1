package menu

// Action is the outcome of a menu selection.
type Action int

const (
	Unknown Action = iota
	Exit
	CreateRandom
	CreateManual
	Append
	FindMax
	FindMin
	RemoveValue
	DeleteArray
)

func (a Action) String() string {
	switch a {
	case Exit:
		return "exit"
	case CreateRandom:
		return "create-random"
	case CreateManual:
		return "create-manual"
	case Append:
		return "append"
	case FindMax:
		return "find-max"
	case FindMin:
		return "find-min"
	case RemoveValue:
		return "remove-value"
	case DeleteArray:
		return "delete-array"
	default:
		return "unknown"
	}
}

// NeedsArray reports whether the action operates on an existing array.
func (a Action) NeedsArray() bool {
	switch a {
	case Append, FindMax, FindMin, RemoveValue, DeleteArray:
		return true
	}
	return false
}
