package update

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/arraykit/internal/eventbus"
	"github.com/Rorical/arraykit/internal/input"
	"github.com/Rorical/arraykit/internal/models"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeyEnter:
		if appModel.Finished {
			return tea.Quit
		}
		line := strings.TrimSpace(appModel.Input)
		if line == "" {
			return nil
		}
		if err := eb.SendToCore(eventbus.SubmitLineEvent{Line: line}); err != nil {
			appModel.Status = "Error sending input: " + err.Error()
			return nil
		}
		appModel.EchoInput(line)
		appModel.Input = ""
	case tea.KeyBackspace:
		if runes := []rune(appModel.Input); len(runes) > 0 {
			appModel.Input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		appModel.Input += " "
	case tea.KeyRunes:
		appModel.Input += string(keyMsg.Runes)
	}
	return nil
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.OutputEvent:
		appModel.Transcript += event.Text
	case eventbus.SessionEndedEvent:
		appModel.Finished = true
		switch {
		case event.Err == nil:
			appModel.Status = "Session ended. Press enter to leave"
		case errors.Is(event.Err, input.ErrClosed):
			appModel.Status = "Input closed. Press enter to leave"
		default:
			appModel.Status = "Error: " + event.Err.Error()
		}
	}

	return nil
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}
