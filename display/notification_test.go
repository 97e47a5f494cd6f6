package display_test

import (
	"testing"

	"github.com/katalvlaran/transgrid/display"
	"github.com/stretchr/testify/require"
)

func TestNotificationString(t *testing.T) {
	require.Equal(t, "moved 1->3", display.Moved(1, 3).String())
	require.Equal(t, "range-changed [0,9)", display.RangeChanged(0, 9).String())
	require.Equal(t, "Kind(0)", display.Kind(0).String())
}

func TestApply(t *testing.T) {
	cells := []int{1, 2, 3, 4}

	display.Apply(cells, display.Moved(1, 2))
	require.Equal(t, []int{1, 3, 2, 4}, cells)

	display.Apply(cells, display.RangeChanged(0, 4))
	require.Equal(t, []int{1, 3, 2, 4}, cells)

	display.Apply(cells, display.Moved(0, 9))
	require.Equal(t, []int{1, 3, 2, 4}, cells)
}
