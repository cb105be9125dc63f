package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRendersOnlyVisibleWindow(t *testing.T) {
	g := NewGrid(1000, 500)
	g.SetViewport(10, 4)

	touched := map[[2]int]bool{}
	lines := g.Render(func(row, col int) string {
		touched[[2]int{row, col}] = true
		return "x"
	})
	require.Len(t, lines, 4)
	assert.Len(t, touched, 40)
	assert.Equal(t, "xxxxxxxxxx", lines[0])

	g.ScrollTo(intPtr(990), intPtr(496))
	touched = map[[2]int]bool{}
	g.Render(func(row, col int) string {
		touched[[2]int{row, col}] = true
		return "x"
	})
	assert.True(t, touched[[2]int{496, 990}])
	assert.True(t, touched[[2]int{499, 999}])
	assert.False(t, touched[[2]int{495, 990}])
}

func TestGridScrollToClampsAndFlags(t *testing.T) {
	g := NewGrid(100, 50)
	g.SetViewport(20, 10)

	var events []Event
	g.OnScroll(func(e Event) { events = append(events, e) })

	g.ScrollTo(intPtr(5000), intPtr(-3))
	require.Len(t, events, 1)
	assert.Equal(t, Event{Left: 80, Top: 0, Programmatic: true}, events[0])

	// No-op moves emit nothing.
	g.ScrollTo(intPtr(80), nil)
	assert.Len(t, events, 1)

	g.UserScrollBy(-10, 3)
	require.Len(t, events, 2)
	assert.Equal(t, Event{Left: 70, Top: 3, Programmatic: false}, events[1])
}

func TestGridPartialAxisScroll(t *testing.T) {
	g := NewGrid(100, 50)
	g.SetViewport(20, 10)
	g.ScrollTo(intPtr(30), intPtr(7))
	g.ScrollTo(intPtr(12), nil)
	assert.Equal(t, 12, g.Left())
	assert.Equal(t, 7, g.Top())
	g.ScrollTo(nil, intPtr(2))
	assert.Equal(t, 12, g.Left())
	assert.Equal(t, 2, g.Top())
}

func TestGridResizePreservesOffset(t *testing.T) {
	g := NewGrid(100, 50)
	g.SetViewport(20, 10)
	g.ScrollTo(intPtr(40), intPtr(20))

	g.SetViewport(30, 15)
	assert.Equal(t, 40, g.Left())
	assert.Equal(t, 20, g.Top())

	// Growing past the content end clamps rather than resets.
	g.SetViewport(90, 45)
	assert.Equal(t, 10, g.Left())
	assert.Equal(t, 5, g.Top())
}

func TestGridHitCell(t *testing.T) {
	g := NewGrid(100, 50)
	g.SetViewport(20, 10)
	g.ScrollTo(intPtr(30), intPtr(5))

	row, col, ok := g.HitCell(0, 0)
	require.True(t, ok)
	assert.Equal(t, 5, row)
	assert.Equal(t, 30, col)

	_, _, ok = g.HitCell(-1, 0)
	assert.False(t, ok)
}

func TestGridDegenerateViewport(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetViewport(0, 0)
	assert.Nil(t, g.Render(func(row, col int) string { return "x" }))
	assert.Equal(t, 0, g.MaxLeft())
}

func TestVListFollowsAndClamps(t *testing.T) {
	l := NewVList(50)
	l.SetViewport(10)

	var events []Event
	l.OnScroll(func(e Event) { events = append(events, e) })

	l.ScrollTo(45)
	assert.Equal(t, 40, l.Top())
	require.Len(t, events, 1)
	assert.True(t, events[0].Programmatic)

	l.UserScrollBy(-5)
	assert.Equal(t, 35, l.Top())
	require.Len(t, events, 2)
	assert.False(t, events[1].Programmatic)

	lines := l.Render(func(row int) string {
		if row == 35 {
			return "first"
		}
		return "row"
	})
	require.Len(t, lines, 10)
	assert.Equal(t, "first", lines[0])
}

func TestHListRuler(t *testing.T) {
	l := NewHList(1200)
	l.SetViewport(5)
	l.ScrollTo(7)

	lines := l.RenderRuler(func(col int, digit byte) string { return string(digit) })
	// 1200 columns pad to 4 digits; columns 8..12 read top to bottom.
	require.Len(t, lines, 4)
	assert.Equal(t, "00000", lines[0])
	assert.Equal(t, "00000", lines[1])
	assert.Equal(t, "00111", lines[2])
	assert.Equal(t, "89012", lines[3])

	col, ok := l.HitCol(2)
	require.True(t, ok)
	assert.Equal(t, 9, col)
}

func TestRulerLabel(t *testing.T) {
	assert.Equal(t, "0008", RulerLabel(7, 1200))
	assert.Equal(t, "1", RulerLabel(0, 1))
	assert.Equal(t, 1, RulerDigits(0))
}

func intPtr(v int) *int { return &v }
