package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/Rorical/arraykit/internal/array"
	"github.com/Rorical/arraykit/internal/ctxlog"
	"github.com/Rorical/arraykit/internal/input"
	"github.com/Rorical/arraykit/internal/menu"
)

const continuePrompt = "Do you want to continue? (yes/no):"

// Session drives the menu loop over one input stream. It owns the array
// state exclusively and is not safe for concurrent use.
type Session struct {
	reader  *input.Reader
	console *Console
	source  array.Source
	bounds  array.Bounds
	state   ArrayState
	phase   Phase
	logger  *slog.Logger
}

type Option func(*Session)

// WithSource sets the randomness used for generated arrays.
func WithSource(src array.Source) Option {
	return func(s *Session) {
		s.source = src
	}
}

func WithBounds(b array.Bounds) Option {
	return func(s *Session) {
		s.bounds = b
	}
}

func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		reader:  input.NewReader(in, out),
		console: NewConsole(out),
		bounds:  array.DefaultBounds(),
		phase:   NoArray,
		logger:  ctxlog.FromContext(context.Background()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewSeededSource(0)
	}
	return s
}

// NewSeededSource returns a deterministic source, or a randomly seeded
// one when seed is zero.
func NewSeededSource(seed uint64) array.Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (s *Session) State() ArrayState {
	return s.state
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Run loops until the user exits. It returns nil on a regular exit,
// input.ErrClosed if the input runs out first, and ctx.Err() when ctx is
// cancelled between steps.
func (s *Session) Run(ctx context.Context) error {
	s.logger = ctxlog.FromContext(ctx)
	s.logger.Debug("session started", "bounds", s.bounds)

	for s.phase != Terminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(); err != nil {
			s.logger.Debug("session stopped", "phase", s.phase, "error", err)
			return err
		}
	}

	s.logger.Debug("session finished")
	return nil
}

// Step shows the menu for the current phase, performs the selected action
// and, unless the choice was Exit or unrecognised, prints the array and
// asks whether to go on.
func (s *Session) Step() error {
	if s.phase == Terminated {
		return nil
	}

	action, err := menu.For(s.state.Present()).Select(s.reader)
	if err != nil {
		return err
	}
	s.logger.Debug("menu selection", "phase", s.phase, "action", action)

	switch action {
	case menu.Exit:
		s.console.Println("Exiting the program.")
		s.phase = Terminated
		return nil
	case menu.Unknown:
		s.console.Notice("Unknown option. Try again.")
		return nil
	}

	if err := s.dispatch(action); err != nil {
		return err
	}
	s.syncPhase()

	if s.state.Present() {
		s.console.Println("Current array:")
		s.console.Println(array.Format(s.state.values))
	}

	proceed, err := s.reader.ReadYesNo(continuePrompt)
	if err != nil {
		return err
	}
	if !proceed {
		s.console.Println("Exiting program.")
		s.phase = Terminated
	}
	return nil
}

func (s *Session) dispatch(action menu.Action) error {
	if action.NeedsArray() && !s.state.Present() {
		s.console.Notice("You must first create an array")
		return nil
	}

	switch action {
	case menu.CreateRandom:
		s.state.Replace(array.Generate(s.source, s.bounds))
	case menu.CreateManual:
		values, err := array.ManualInput(s.reader, s.console)
		if err != nil {
			return err
		}
		s.state.Replace(values)
	case menu.Append:
		values, err := array.AppendFrom(s.state.values, s.reader)
		if err != nil {
			return err
		}
		s.state.Replace(values)
	case menu.FindMax:
		s.report("Max number is: %d", array.Max)
	case menu.FindMin:
		s.report("Min number is: %d", array.Min)
	case menu.RemoveValue:
		values, err := array.RemoveFrom(s.state.values, s.reader, s.console)
		if err != nil {
			return err
		}
		s.state.Replace(values)
	case menu.DeleteArray:
		array.Delete(s.console)
		s.state.Clear()
	default:
		return fmt.Errorf("unhandled action %s", action)
	}
	return nil
}

func (s *Session) report(format string, query func([]int) (int, error)) {
	v, err := query(s.state.values)
	if err != nil {
		s.console.Error("Error: " + err.Error())
		return
	}
	s.console.Result(fmt.Sprintf(format, v))
}

func (s *Session) syncPhase() {
	if s.state.Present() {
		s.phase = HasArray
	} else {
		s.phase = NoArray
	}
}
