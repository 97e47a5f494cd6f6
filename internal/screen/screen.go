// SPDX-License-Identifier: MIT

// Package screen is the home-screen controller: it turns UI events into
// validation messages, grid generation and transpose requests.
//
// Every input arrives as an Event and is handled by Dispatch; there are no
// callback interfaces. The controller is not safe for concurrent use; UIs call
// it from their single event loop.
package screen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/transgrid/display"
	"github.com/katalvlaran/transgrid/grid"
)

// State is the display state of the screen.
type State int

const (
	// StateNoMatrix is the initial state; transpose is unavailable.
	StateNoMatrix State = iota
	// StateMatrixShown follows the first successful generate.
	StateMatrixShown
)

func (s State) String() string {
	switch s {
	case StateNoMatrix:
		return "no-matrix"
	case StateMatrixShown:
		return "matrix-shown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventKind enumerates the user actions the screen reacts to.
type EventKind int

const (
	// EventTextChanged fires on every edit of the size field.
	EventTextChanged EventKind = iota + 1
	// EventSubmit is the Go button or the keyboard Done action.
	EventSubmit
	// EventTranspose is the Transpose button.
	EventTranspose
)

// Event is one user action. Text is the size field content for
// EventTextChanged and EventSubmit.
type Event struct {
	Kind EventKind
	Text string
}

// TextChanged builds an EventTextChanged.
func TextChanged(text string) Event { return Event{Kind: EventTextChanged, Text: text} }

// Submit builds an EventSubmit.
func Submit(text string) Event { return Event{Kind: EventSubmit, Text: text} }

// Transpose builds an EventTranspose.
func Transpose() Event { return Event{Kind: EventTranspose} }

// User-facing messages.
const (
	MsgBlankSize   = "Please enter matrix size"
	MsgNoMatrix    = "Matrix is not available, please generate a matrix first"
	msgInvalidSize = "Please enter a valid matrix size between %d and %d"
)

// Result describes what the UI must show after an event.
type Result struct {
	// InputError is the inline message under the size field; empty clears it.
	InputError string
	// Warning is a transient notice (toast).
	Warning string
	// Generated is true when a new grid replaced the displayed one.
	Generated bool
	// Notifications are the adapter events of a transpose, in order.
	Notifications []display.Notification
	// DismissKeyboard asks the UI to release input focus.
	DismissKeyboard bool
	// FocusInput asks the UI to move focus back to the size field.
	FocusInput bool
	// Err carries the classified failure (grid.ErrEmptyInput,
	// grid.ErrInvalidSize, display.ErrNoMatrix) for errors.Is checks.
	Err error
}

// Controller owns the screen state and the current adapter.
type Controller struct {
	state   State
	adapter *display.Adapter

	minSize int
	maxSize int
	genOpts []grid.Option
	logger  *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithBounds sets the accepted size window lo < n <= hi.
func WithBounds(lo, hi int) Option {
	if hi <= lo {
		panic("screen: WithBounds(hi<=lo)")
	}
	return func(c *Controller) {
		c.minSize, c.maxSize = lo, hi
	}
}

// WithGenerateOptions forwards options to grid.Generate.
func WithGenerateOptions(opts ...grid.Option) Option {
	return func(c *Controller) {
		c.genOpts = append(c.genOpts, opts...)
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("screen: WithLogger(nil)")
	}
	return func(c *Controller) {
		c.logger = l
	}
}

// New returns a controller in StateNoMatrix.
func New(opts ...Option) *Controller {
	c := &Controller{
		state:   StateNoMatrix,
		adapter: display.New(nil),
		minSize: grid.MinSize,
		maxSize: grid.MaxSize,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the current display state.
func (c *Controller) State() State { return c.state }

// Adapter returns the current display adapter (never nil).
func (c *Controller) Adapter() *display.Adapter { return c.adapter }

// TransposeVisible reports whether the Transpose action should be offered.
func (c *Controller) TransposeVisible() bool { return c.state == StateMatrixShown }

// Dispatch handles one event.
func (c *Controller) Dispatch(ev Event) Result {
	switch ev.Kind {
	case EventTextChanged:
		_, res := c.validate(ev.Text)
		return res
	case EventSubmit:
		return c.submit(ev.Text)
	case EventTranspose:
		return c.transpose()
	default:
		c.logger.Warn("unknown screen event", zap.Int("kind", int(ev.Kind)))
		return Result{}
	}
}

// validate classifies text and fills the inline message.
func (c *Controller) validate(text string) (int, Result) {
	n, err := grid.ParseSizeWithin(text, c.minSize, c.maxSize)
	switch {
	case err == nil:
		return n, Result{}
	case errors.Is(err, grid.ErrEmptyInput):
		return 0, Result{InputError: MsgBlankSize, Err: err}
	default:
		return 0, Result{InputError: fmt.Sprintf(msgInvalidSize, c.minSize+1, c.maxSize), Err: err}
	}
}

func (c *Controller) submit(text string) Result {
	n, res := c.validate(text)
	if res.Err != nil {
		c.logger.Debug("size rejected", zap.String("input", text), zap.Error(res.Err))
		res.FocusInput = true
		return res
	}

	g, err := grid.Generate(n, c.genOpts...)
	if err != nil {
		// n already passed validation; only a misconfigured lower bound gets here.
		c.logger.Error("generate failed", zap.Int("size", n), zap.Error(err))
		res.InputError = fmt.Sprintf(msgInvalidSize, c.minSize+1, c.maxSize)
		res.Err = err
		res.FocusInput = true
		return res
	}

	c.adapter = display.New(g)
	c.state = StateMatrixShown
	res.Generated = true
	res.DismissKeyboard = true
	c.logger.Info("grid generated", zap.String("grid_id", g.ID()), zap.Int("size", n))

	return res
}

func (c *Controller) transpose() Result {
	if err := c.adapter.Validate(); err != nil {
		c.logger.Info("transpose without matrix")
		return Result{Warning: MsgNoMatrix, Err: err}
	}

	notes := c.adapter.Transpose()
	c.logger.Info("grid transposed",
		zap.String("grid_id", c.adapter.Grid().ID()),
		zap.Int("moves", len(notes)-1),
	)

	return Result{Notifications: notes}
}
