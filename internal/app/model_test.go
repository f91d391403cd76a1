package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/arraykit/internal/config"
	"github.com/Rorical/arraykit/internal/ctxlog"
	"github.com/Rorical/arraykit/internal/dispatcher"
	"github.com/Rorical/arraykit/internal/eventbus"
	"github.com/Rorical/arraykit/internal/update"
)

func newTestModel(t *testing.T) (*AppModel, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	t.Cleanup(eb.Close)
	return &AppModel{dispatcher: dispatcher.NewEventDispatcher(eb)}, eb
}

func TestAppModel_ListensForCoreEvents(t *testing.T) {
	m, eb := newTestModel(t)

	require.NoError(t, eb.SendToUI(eventbus.OutputEvent{Text: "Your choice:\n"}))
	msg := m.Init()()

	require.Equal(t, update.CoreEventMsg{Event: eventbus.OutputEvent{Text: "Your choice:\n"}}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd, "listening must be re-armed after each core event")
	require.Equal(t, "Your choice:\n", m.appModel.Transcript)
}

func TestAppModel_View(t *testing.T) {
	m, eb := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	m.Update(update.CoreEventMsg{Event: eventbus.OutputEvent{Text: "Select how to create the array:\n1 - Random\n"}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m.appModel.Status = "Ready"

	view := m.View()

	require.Contains(t, view, "1 - Random")
	require.Contains(t, view, "Ready")
	require.Contains(t, view, "1_")
	require.Len(t, eb.UIToCore(), 0)
}

func TestNewApplication_LogsBusErrors(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	application := NewApplication(ctx, config.Default())
	application.eventBus.Close()

	err := application.eventBus.SendToCore(eventbus.SubmitLineEvent{Line: "1"})

	require.ErrorIs(t, err, eventbus.ErrClosed)
	require.Contains(t, logs.String(), "event bus error")
	require.Contains(t, logs.String(), "operation=SendToCore")
}
