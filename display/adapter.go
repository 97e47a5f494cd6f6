// SPDX-License-Identifier: MIT

package display

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/transgrid/grid"
)

const panicListenerNil = "display: WithListener(nil)"

// Adapter owns the grid being displayed. A nil grid models the state before
// any matrix was generated.
type Adapter struct {
	g         *grid.Grid
	listeners []Listener
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithListener registers fn to receive every notification. Panics on nil.
func WithListener(fn Listener) Option {
	if fn == nil {
		panic(panicListenerNil)
	}
	return func(a *Adapter) {
		a.listeners = append(a.listeners, fn)
	}
}

// New returns an adapter over g. g may be nil.
func New(g *grid.Grid, opts ...Option) *Adapter {
	a := &Adapter{g: g}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Grid returns the displayed grid (nil before generation).
func (a *Adapter) Grid() *grid.Grid { return a.g }

// Validate reports ErrNoMatrix when there is nothing to display. The grid
// package's ErrNilGrid is wrapped alongside it.
func (a *Adapter) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: %w", ErrNoMatrix, grid.ErrNilGrid)
	}
	if err := grid.ValidateNotNil(a.g); err != nil {
		return fmt.Errorf("%w: %w", ErrNoMatrix, err)
	}

	return nil
}

// ItemCount returns the number of cells, 0 without a grid.
func (a *Adapter) ItemCount() int {
	if a.g == nil {
		return 0
	}

	return a.g.Len()
}

// Columns returns N, the column count of the layout (0 without a grid).
func (a *Adapter) Columns() int {
	if a.g == nil {
		return 0
	}

	return a.g.Size()
}

// Label returns the text bound to display position pos.
func (a *Adapter) Label(pos int) (string, error) {
	if pos < 0 || pos >= a.ItemCount() {
		return "", fmt.Errorf("Label(%d): %w", pos, ErrOutOfRange)
	}
	v, err := a.g.Value(pos)
	if err != nil {
		return "", fmt.Errorf("Label(%d): %w", pos, err)
	}

	return strconv.Itoa(v), nil
}

// Cells returns the values in display order.
func (a *Adapter) Cells() []int {
	if a.g == nil {
		return nil
	}

	return a.g.Values()
}

// Transpose permutes the grid in place, emits one KindMoved per swap and a
// final KindRangeChanged over every cell, and returns the emitted sequence.
// Without a grid it does nothing and returns nil.
func (a *Adapter) Transpose() []Notification {
	if a.g == nil {
		return nil
	}

	out := make([]Notification, 0, a.g.Len())
	a.g.TransposeInPlace(func(from, to int) {
		n := Moved(from, to)
		out = append(out, n)
		a.notify(n)
	})
	done := RangeChanged(0, a.g.Len())
	out = append(out, done)
	a.notify(done)

	return out
}

func (a *Adapter) notify(n Notification) {
	for _, fn := range a.listeners {
		fn(n)
	}
}
