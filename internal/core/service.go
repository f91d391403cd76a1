package core

import (
	"context"
	"io"
	"sync"

	"github.com/Rorical/arraykit/internal/ctxlog"
	"github.com/Rorical/arraykit/internal/eventbus"
)

// SessionService runs a Session in the background, fed with lines the UI
// submits over the event bus. Everything the session prints is forwarded
// to the UI as OutputEvents.
type SessionService struct {
	session  *Session
	eventBus *eventbus.EventBus
	inputW   *io.PipeWriter
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// busWriter forwards session output to the UI.
type busWriter struct {
	eventBus *eventbus.EventBus
}

func (w busWriter) Write(p []byte) (int, error) {
	if err := w.eventBus.SendToUI(eventbus.OutputEvent{Text: string(p)}); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewSessionService creates the service. ctx supplies the logger and
// bounds the lifetime of the session.
func NewSessionService(ctx context.Context, eb *eventbus.EventBus, opts ...Option) *SessionService {
	inputR, inputW := io.Pipe()
	ctx, cancel := context.WithCancel(ctx)

	return &SessionService{
		session:  NewSession(inputR, busWriter{eventBus: eb}, opts...),
		eventBus: eb,
		inputW:   inputW,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the event loop and the session in their own goroutines.
func (ss *SessionService) Start() {
	ss.wg.Add(2)
	go ss.eventLoop()
	go ss.runSession()
}

// Stop cancels the session and waits for both goroutines to return.
func (ss *SessionService) Stop() {
	ss.stopOnce.Do(func() {
		ss.cancel()
		ss.inputW.Close()
	})
	ss.wg.Wait()
}

func (ss *SessionService) runSession() {
	defer ss.wg.Done()

	err := ss.session.Run(ss.ctx)
	if err != nil {
		ctxlog.FromContext(ss.ctx).Debug("session returned", "error", err)
	}
	ss.eventBus.SendToUI(eventbus.SessionEndedEvent{Err: err})
	ss.cancel()
}

func (ss *SessionService) eventLoop() {
	defer ss.wg.Done()

	for {
		select {
		case <-ss.ctx.Done():
			ss.inputW.Close()
			return
		case event := <-ss.eventBus.UIToCore():
			ss.handleUIEvent(event)
		}
	}
}

func (ss *SessionService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitLineEvent:
		// Blocks until the session has consumed the line; the session
		// only reads while it waits for input.
		if _, err := io.WriteString(ss.inputW, e.Line+"\n"); err != nil {
			ctxlog.FromContext(ss.ctx).Debug("input dropped", "line", e.Line, "error", err)
		}
	}
}
