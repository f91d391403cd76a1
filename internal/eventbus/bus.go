package eventbus

import (
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned when sending on a closed bus.
var ErrClosed = errors.New("event bus closed")

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SubmitLineEvent - UI hands a line the user typed to the session
type SubmitLineEvent struct {
	Line string
}

func (e SubmitLineEvent) UIEvent() {}

// OutputEvent - session printed text
type OutputEvent struct {
	Text string
}

func (e OutputEvent) CoreEvent() {}

// SessionEndedEvent - session loop returned; Err is nil on a regular exit
type SessionEndedEvent struct {
	Err error
}

func (e SessionEndedEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// EventBus connects the UI and the session. Sends block until the other
// side receives or the bus is closed, so no output is dropped.
type EventBus struct {
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	done          chan struct{}
	closeOnce     sync.Once
	errorCallback func(EventBusError)
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, 100),
		coreToUI: make(chan CoreEvent, 100),
		done:     make(chan struct{}),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	if eb.errorCallback != nil {
		eb.errorCallback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	select {
	case <-eb.done:
		eb.reportError("SendToCore", ErrClosed)
		return ErrClosed
	default:
	}

	select {
	case eb.uiToCore <- event:
		return nil
	case <-eb.done:
		eb.reportError("SendToCore", ErrClosed)
		return ErrClosed
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	select {
	case <-eb.done:
		eb.reportError("SendToUI", ErrClosed)
		return ErrClosed
	default:
	}

	select {
	case eb.coreToUI <- event:
		return nil
	case <-eb.done:
		eb.reportError("SendToUI", ErrClosed)
		return ErrClosed
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

// Done is closed once the bus is closed.
func (eb *EventBus) Done() <-chan struct{} {
	return eb.done
}

func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.done)
	})
}
