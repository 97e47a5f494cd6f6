// SPDX-License-Identifier: MIT

// Package tui is the terminal front end of transgrid, built on bubbletea.
//
// All state changes happen inside Update; the transpose animation is a chain
// of tea.Tick frames, each replaying one move notification on a local
// snapshot of the cells.
package tui

import (
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/transgrid/display"
	"github.com/katalvlaran/transgrid/internal/screen"
)

// Settings are the presentation knobs taken from config.
type Settings struct {
	FrameInterval time.Duration
	ToastDuration time.Duration
	CellWidth     int
}

// frameMsg advances the animation; seq discards frames of a superseded run.
type frameMsg struct{ seq int }

// toastExpiredMsg clears the toast it was scheduled for.
type toastExpiredMsg struct{ seq int }

// noCell marks an empty highlight slot.
const noCell = -1

// Model is the bubbletea model of the home screen.
type Model struct {
	ctrl     *screen.Controller
	settings Settings
	styles   Styles

	input    textinput.Model
	inputErr string

	// cells is what is drawn; during an animation it lags the adapter.
	cells     []int
	cols      int
	pending   []display.Notification
	highlight [2]int
	frameSeq  int

	toast    string
	toastSeq int

	showHelp bool
	helpText string
	width    int
	quitting bool
}

// New returns the initial model with the size field focused.
func New(ctrl *screen.Controller, settings Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "2-10"
	ti.CharLimit = 2
	ti.Width = 4
	ti.Prompt = ""
	ti.Focus()

	return Model{
		ctrl:      ctrl,
		settings:  settings,
		styles:    DefaultStyles(settings.CellWidth),
		input:     ti,
		highlight: [2]int{noCell, noCell},
		width:     80,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Animating reports whether move notifications are still being replayed.
func (m Model) Animating() bool {
	return len(m.pending) > 0
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.helpText = ""
		if m.showHelp {
			m.helpText = renderHelp(m.width)
		}
		return m, nil

	case frameMsg:
		if msg.seq != m.frameSeq {
			return m, nil
		}
		return m.nextFrame()

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		return m.apply(m.ctrl.Dispatch(screen.Submit(m.input.Value())))
	case "ctrl+t":
		return m.transpose()
	case "tab":
		if m.input.Focused() {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	if m.input.Focused() {
		return m.edit(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = true
		if m.helpText == "" {
			m.helpText = renderHelp(m.width)
		}
	case "t":
		return m.transpose()
	}

	return m, nil
}

// edit feeds a key to the size field, dropping anything that is not a digit,
// and validates the new text inline.
func (m Model) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		digits := msg.Runes[:0:0]
		for _, r := range msg.Runes {
			if unicode.IsDigit(r) {
				digits = append(digits, r)
			}
		}
		if len(digits) == 0 {
			return m, nil
		}
		msg.Runes = digits
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		res := m.ctrl.Dispatch(screen.TextChanged(m.input.Value()))
		m.inputErr = res.InputError
	}

	return m, cmd
}

func (m Model) transpose() (tea.Model, tea.Cmd) {
	// Start from the adapter's current state so a run cut short by a new
	// request does not leave the snapshot behind.
	m.cells = m.ctrl.Adapter().Cells()
	m.highlight = [2]int{noCell, noCell}
	m.pending = nil
	return m.apply(m.ctrl.Dispatch(screen.Transpose()))
}

// apply reflects a controller result on the model.
func (m Model) apply(res screen.Result) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	m.inputErr = res.InputError
	if res.DismissKeyboard {
		m.input.Blur()
	}
	if res.FocusInput {
		cmds = append(cmds, m.input.Focus())
	}
	if res.Generated {
		adapter := m.ctrl.Adapter()
		m.cells = adapter.Cells()
		m.cols = adapter.Columns()
		m.pending = nil
		m.highlight = [2]int{noCell, noCell}
		m.frameSeq++
	}
	if res.Warning != "" {
		m.toast = res.Warning
		m.toastSeq++
		seq := m.toastSeq
		cmds = append(cmds, tea.Tick(m.settings.ToastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		}))
	}
	if len(res.Notifications) > 0 {
		m.pending = res.Notifications
		m.frameSeq++
		cmds = append(cmds, m.tick())
	}

	return m, tea.Batch(cmds...)
}

// nextFrame replays the head notification and schedules the following one.
func (m Model) nextFrame() (tea.Model, tea.Cmd) {
	if len(m.pending) == 0 {
		m.highlight = [2]int{noCell, noCell}
		return m, nil
	}

	note := m.pending[0]
	m.pending = m.pending[1:]

	switch note.Kind {
	case display.KindMoved:
		display.Apply(m.cells, note)
		m.highlight = [2]int{note.From, note.To}
	case display.KindRangeChanged:
		m.cells = m.ctrl.Adapter().Cells()
		m.highlight = [2]int{noCell, noCell}
	}

	if len(m.pending) == 0 {
		return m, nil
	}
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	seq := m.frameSeq
	return tea.Tick(m.settings.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}
