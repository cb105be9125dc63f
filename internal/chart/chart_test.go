package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabdoo23/Protomatic-sub001/internal/grid"
)

func TestRenderShape(t *testing.T) {
	c := New([]float64{0.0, 0.5, 1.0}, 5)
	c.SetViewport(3)

	lines := c.Render(-1)
	require.Len(t, lines, 5)

	// A fully conserved column is a solid bar; a zero column is empty.
	for _, line := range lines {
		assert.Contains(t, line, "█")
	}
	bottom := lines[len(lines)-1]
	assert.True(t, strings.Contains(bottom, "█"), "baseline row should hold the full bar")
}

func TestAxisTickLabels(t *testing.T) {
	c := New(make([]float64, 10), 11)
	c.SetViewport(5)
	joined := strings.Join(c.Render(-1), "\n")
	for _, label := range []string{"1.0", "0.8", "0.6", "0.4", "0.2", "0.0"} {
		assert.Contains(t, joined, label)
	}
}

func TestScrollClampAndEvents(t *testing.T) {
	c := New(make([]float64, 100), 4)
	c.SetViewport(20)

	var events []grid.Event
	c.OnScroll(func(e grid.Event) { events = append(events, e) })

	c.ScrollTo(500)
	assert.Equal(t, 80, c.Left())
	require.Len(t, events, 1)
	assert.True(t, events[0].Programmatic)

	c.UserScrollBy(-30)
	assert.Equal(t, 50, c.Left())
	require.Len(t, events, 2)
	assert.False(t, events[1].Programmatic)

	// Resize re-clamps without resetting.
	c.SetViewport(60)
	assert.Equal(t, 40, c.Left())
}

func TestHitTest(t *testing.T) {
	c := New(make([]float64, 100), 4)
	c.SetViewport(20)
	c.ScrollTo(30)

	col, ok := c.HitTest(0)
	require.True(t, ok)
	assert.Equal(t, 30, col)

	col, ok = c.HitTest(19)
	require.True(t, ok)
	assert.Equal(t, 49, col)

	_, ok = c.HitTest(20)
	assert.False(t, ok)
	_, ok = c.HitTest(-1)
	assert.False(t, ok)
}

func TestHitTestPastProfileEnd(t *testing.T) {
	c := New(make([]float64, 5), 4)
	c.SetViewport(20)
	_, ok := c.HitTest(7)
	assert.False(t, ok)
}

func TestTooltip(t *testing.T) {
	c := New([]float64{1.0, 0.5, 0.875}, 4)
	assert.Equal(t, "col 3 · 0.875", c.Tooltip(2))
	assert.Equal(t, "col 1 · 1.000", c.Tooltip(0))
	assert.Equal(t, "", c.Tooltip(-1))
	assert.Equal(t, "", c.Tooltip(3))
}

func TestBarColorEndpoints(t *testing.T) {
	c := New(nil, 4)
	assert.Equal(t, strings.ToLower(lowColorHex), strings.ToLower(string(c.BarColor(0))))
	assert.Equal(t, strings.ToLower(highColorHex), strings.ToLower(string(c.BarColor(1))))
	// Out-of-range scores clamp to the endpoints.
	assert.Equal(t, string(c.BarColor(0)), string(c.BarColor(-3)))
	assert.Equal(t, string(c.BarColor(1)), string(c.BarColor(9)))
}

func TestBarColorMonotoneBlend(t *testing.T) {
	c := New(nil, 4)
	mid := string(c.BarColor(0.5))
	assert.NotEqual(t, string(c.BarColor(0)), mid)
	assert.NotEqual(t, string(c.BarColor(1)), mid)
}
