package components

import (
	"github.com/Rorical/arraykit/ui/styles"
)

func RenderInput(input string, finished bool, width int) string {
	inputStyle := styles.InputStyle(width)
	if finished {
		return inputStyle.Faint(true).Render(input)
	}
	return inputStyle.Render(input + "_")
}
