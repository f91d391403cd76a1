// Package menu renders the creation and editing menus and maps a numeric
// choice to an Action.
package menu

import (
	"fmt"
	"io"
)

const choicePrompt = "Your choice:\n"

// IntReader is satisfied by input.Reader.
type IntReader interface {
	ReadInt(prompt string) (int, error)
	Out() io.Writer
}

// Option is one numbered menu entry.
type Option struct {
	Key    int
	Label  string
	Action Action
}

// Menu is a titled list of options. Any choice not listed maps to Unknown.
type Menu struct {
	Title   string
	Options []Option
}

var creation = Menu{
	Title: "Select how to create the array:",
	Options: []Option{
		{Key: 1, Label: "Random", Action: CreateRandom},
		{Key: 2, Label: "Manually", Action: CreateManual},
		{Key: 0, Label: "Exit", Action: Exit},
	},
}

var editing = Menu{
	Title: "Select an operation:",
	Options: []Option{
		{Key: 1, Label: "Add a number to an existing array", Action: Append},
		{Key: 2, Label: "Finding the largest number in an existing array", Action: FindMax},
		{Key: 3, Label: "Finding the smallest number in an existing array", Action: FindMin},
		{Key: 4, Label: "Remove a number from the list", Action: RemoveValue},
		{Key: 5, Label: "Delete the list", Action: DeleteArray},
		{Key: 0, Label: "Exit", Action: Exit},
	},
}

// Creation is shown while no array exists.
func Creation() Menu { return creation }

// Editing is shown once an array exists.
func Editing() Menu { return editing }

// For returns the menu matching whether an array is present.
func For(hasArray bool) Menu {
	if hasArray {
		return editing
	}
	return creation
}

// Resolve maps a choice to its action.
func (m Menu) Resolve(choice int) Action {
	for _, opt := range m.Options {
		if opt.Key == choice {
			return opt.Action
		}
	}
	return Unknown
}

// Render writes the title and options, one per line.
func (m Menu) Render(w io.Writer) {
	fmt.Fprintln(w, m.Title)
	for _, opt := range m.Options {
		fmt.Fprintf(w, "%d - %s\n", opt.Key, opt.Label)
	}
}

// Select shows the menu and reads a single choice. Only non-numeric input
// is retried; an unlisted number yields Unknown straight away.
func (m Menu) Select(r IntReader) (Action, error) {
	m.Render(r.Out())
	choice, err := r.ReadInt(choicePrompt)
	if err != nil {
		return Unknown, err
	}
	return m.Resolve(choice), nil
}
