package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/arraykit/internal/config"
	"github.com/Rorical/arraykit/internal/core"
	"github.com/Rorical/arraykit/internal/ctxlog"
	"github.com/Rorical/arraykit/internal/dispatcher"
	"github.com/Rorical/arraykit/internal/eventbus"
	"github.com/Rorical/arraykit/internal/models"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.SessionService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

// NewApplication wires the session service and the tea model together.
// ctx carries the logger handed down to the session.
func NewApplication(ctx context.Context, cfg *config.Config, opts ...core.Option) *Application {
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(busErr eventbus.EventBusError) {
		ctxlog.FromContext(ctx).Debug("event bus error", "operation", busErr.Operation, "error", busErr.Err)
	})
	disp := dispatcher.NewEventDispatcher(eb)

	opts = append([]core.Option{core.WithBounds(cfg.Bounds())}, opts...)
	service := core.NewSessionService(ctx, eb, opts...)

	model := &AppModel{
		appModel: models.AppModel{
			Status: "Ready. Type a value and press enter; esc quits",
		},
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.eventBus.Close()
	app.service.Stop()
}
