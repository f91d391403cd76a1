package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/arraykit/internal/eventbus"
	"github.com/Rorical/arraykit/internal/input"
)

// collect drains core events until the session reports it ended.
func collect(t *testing.T, eb *eventbus.EventBus) (string, error) {
	t.Helper()
	var out strings.Builder
	timeout := time.After(5 * time.Second)
	for {
		select {
		case event := <-eb.CoreToUI():
			switch e := event.(type) {
			case eventbus.OutputEvent:
				out.WriteString(e.Text)
			case eventbus.SessionEndedEvent:
				return out.String(), e.Err
			}
		case <-timeout:
			t.Fatalf("session did not end, output so far:\n%s", out.String())
		}
	}
}

func TestSessionService_RunsSubmittedLines(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	svc := NewSessionService(context.Background(), eb, WithSource(NewSeededSource(3)))
	svc.Start()
	defer svc.Stop()

	for _, line := range []string{"2", "3", "5 -2 7", "y", "2", "n"} {
		require.NoError(t, eb.SendToCore(eventbus.SubmitLineEvent{Line: line}))
	}

	out, err := collect(t, eb)

	require.NoError(t, err)
	require.Contains(t, out, "Current array:\n5 -2 7\n")
	require.Contains(t, out, "Max number is: 7")
	require.True(t, strings.HasSuffix(out, "Exiting program.\n"))
}

func TestSessionService_StopWhileWaiting(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	svc := NewSessionService(context.Background(), eb)
	svc.Start()

	var shown strings.Builder
	for !strings.Contains(shown.String(), "Your choice:") {
		select {
		case event := <-eb.CoreToUI():
			if e, ok := event.(eventbus.OutputEvent); ok {
				shown.WriteString(e.Text)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("menu was never shown")
		}
	}

	svc.Stop()

	_, err := collect(t, eb)
	require.ErrorIs(t, err, input.ErrClosed)
	require.Contains(t, shown.String(), "Select how to create the array:")
}
