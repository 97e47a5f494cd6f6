package display_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/transgrid/display"
	"github.com/katalvlaran/transgrid/grid"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, n int, vals ...int) *grid.Grid {
	t.Helper()
	g, err := grid.FromValues(n, vals)
	require.NoError(t, err)

	return g
}

func TestAdapterWithoutGrid(t *testing.T) {
	a := display.New(nil)

	require.ErrorIs(t, a.Validate(), display.ErrNoMatrix)
	require.ErrorIs(t, a.Validate(), grid.ErrNilGrid)
	require.Zero(t, a.ItemCount())
	require.Zero(t, a.Columns())
	require.Nil(t, a.Cells())
	require.Nil(t, a.Transpose())

	_, err := a.Label(0)
	require.ErrorIs(t, err, display.ErrOutOfRange)

	var nilAdapter *display.Adapter
	require.ErrorIs(t, nilAdapter.Validate(), display.ErrNoMatrix)
}

func TestAdapterRowMajorBinding(t *testing.T) {
	a := display.New(mustGrid(t, 2, 7, 8, 9, 10))

	require.NoError(t, a.Validate())
	require.Equal(t, 4, a.ItemCount())
	require.Equal(t, 2, a.Columns())

	lbl, err := a.Label(3)
	require.NoError(t, err)
	require.Equal(t, "10", lbl)

	_, err = a.Label(4)
	require.ErrorIs(t, err, display.ErrOutOfRange)

	require.Equal(t, []int{7, 8, 9, 10}, a.Cells())
}

// TestTransposeNotifications: moves first, then exactly one range change.
func TestTransposeNotifications(t *testing.T) {
	var heard []display.Notification
	a := display.New(mustGrid(t, 2, 1, 2, 3, 4),
		display.WithListener(func(n display.Notification) { heard = append(heard, n) }))

	got := a.Transpose()
	want := []display.Notification{
		display.Moved(1, 2),
		display.RangeChanged(0, 4),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, got, heard)
	require.Equal(t, []int{1, 3, 2, 4}, a.Cells())
}

// TestTransposeSingleCell: N=1 emits no moves, only the range change.
func TestTransposeSingleCell(t *testing.T) {
	a := display.New(mustGrid(t, 1, 42))

	got := a.Transpose()
	require.Equal(t, []display.Notification{display.RangeChanged(0, 1)}, got)
	require.Equal(t, []int{42}, a.Cells())
}

// TestReplayReproducesTranspose: replaying the moves on the old snapshot
// lands on the adapter's new state, for every supported N.
func TestReplayReproducesTranspose(t *testing.T) {
	for n := 1; n <= grid.MaxSize; n++ {
		g, err := grid.Generate(n, grid.WithSeed(int64(100+n)))
		require.NoError(t, err)
		a := display.New(g)

		snapshot := a.Cells()
		var ranges int
		for _, note := range a.Transpose() {
			display.Apply(snapshot, note)
			if note.Kind == display.KindRangeChanged {
				ranges++
				require.Equal(t, 0, note.Start)
				require.Equal(t, n*n, note.Count)
			}
		}
		require.Equal(t, 1, ranges)
		require.Equal(t, a.Cells(), snapshot, "n=%d", n)
	}
}

func TestMultipleListenersInOrder(t *testing.T) {
	var order []string
	a := display.New(mustGrid(t, 2, 1, 2, 3, 4),
		display.WithListener(func(display.Notification) { order = append(order, "first") }),
		display.WithListener(func(display.Notification) { order = append(order, "second") }),
	)
	a.Transpose()
	require.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestWithListenerNilPanics(t *testing.T) {
	require.Panics(t, func() { display.WithListener(nil) })
}
