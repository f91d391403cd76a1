package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/arraykit/internal/update"
	"github.com/Rorical/arraykit/ui/components"
)

// chrome is the number of lines taken by the input box and status bar.
const chrome = 4

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForUIEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	height := 0
	if m.appModel.Height > 0 {
		height = max(m.appModel.Height-chrome, 1)
	}

	b.WriteString(components.RenderTranscript(m.appModel.Transcript, height))
	b.WriteString(components.RenderInput(m.appModel.Input, m.appModel.Finished, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Width))

	return b.String()
}
