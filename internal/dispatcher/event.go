package dispatcher

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/arraykit/internal/eventbus"
	"github.com/Rorical/arraykit/internal/update"
)

// EventDispatcher handles routing events between core and UI
type EventDispatcher struct {
	eventBus *eventbus.EventBus
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{
		eventBus: eventBus,
	}
}

// ListenForUIEvents waits for the next core event and delivers it to the
// tea program. It has to be re-issued after every delivered event.
func (ed *EventDispatcher) ListenForUIEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case event := <-ed.eventBus.CoreToUI():
			return update.CoreEventMsg{Event: event}
		case <-ed.eventBus.Done():
			return nil
		}
	}
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}
