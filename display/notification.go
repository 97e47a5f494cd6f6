// SPDX-License-Identifier: MIT

package display

import "fmt"

// Kind tags a Notification.
type Kind int

const (
	// KindMoved: the values at From and To were swapped; the value that was
	// shown at From is now shown at To.
	KindMoved Kind = iota + 1

	// KindRangeChanged: cells [Start, Start+Count) must be re-rendered.
	KindRangeChanged
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindMoved:
		return "moved"
	case KindRangeChanged:
		return "range-changed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Notification is one change event emitted by the adapter.
// From/To are set for KindMoved, Start/Count for KindRangeChanged.
type Notification struct {
	Kind  Kind
	From  int
	To    int
	Start int
	Count int
}

// Moved builds a KindMoved notification.
func Moved(from, to int) Notification {
	return Notification{Kind: KindMoved, From: from, To: to}
}

// RangeChanged builds a KindRangeChanged notification.
func RangeChanged(start, count int) Notification {
	return Notification{Kind: KindRangeChanged, Start: start, Count: count}
}

// String renders "moved 1->2" or "range-changed [0,4)".
func (n Notification) String() string {
	if n.Kind == KindRangeChanged {
		return fmt.Sprintf("%s [%d,%d)", n.Kind, n.Start, n.Start+n.Count)
	}

	return fmt.Sprintf("%s %d->%d", n.Kind, n.From, n.To)
}

// Listener receives notifications synchronously, in emission order.
type Listener func(Notification)

// Apply replays n onto a display snapshot. KindMoved swaps the two cells;
// KindRangeChanged carries no data and leaves cells untouched (callers
// re-read the adapter instead). Out-of-range moves are ignored.
func Apply(cells []int, n Notification) {
	if n.Kind != KindMoved {
		return
	}
	if n.From < 0 || n.From >= len(cells) || n.To < 0 || n.To >= len(cells) {
		return
	}
	cells[n.From], cells[n.To] = cells[n.To], cells[n.From]
}
