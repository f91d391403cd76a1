package styles

import "github.com/charmbracelet/lipgloss"

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func TranscriptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
}

// Console holds the styles used for plain line output. They are bound to
// a renderer so that output to a non-terminal stays free of escape codes.
type Console struct {
	Notice lipgloss.Style
	Error  lipgloss.Style
	Result lipgloss.Style
}

func ConsoleStyles(r *lipgloss.Renderer) Console {
	return Console{
		Notice: r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Result: r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	}
}
