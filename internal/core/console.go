package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/arraykit/ui/styles"
)

// Console writes the session's line output.
type Console struct {
	out    io.Writer
	styles styles.Console
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		styles: styles.ConsoleStyles(lipgloss.NewRenderer(out)),
	}
}

func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Notice(msg string) {
	fmt.Fprintln(c.out, c.styles.Notice.Render(msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, c.styles.Error.Render(msg))
}

func (c *Console) Result(msg string) {
	fmt.Fprintln(c.out, c.styles.Result.Render(msg))
}
