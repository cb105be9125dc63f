// Package chart renders the per-column conservation strip: a fixed y-axis
// gutter and a horizontally scrollable bar region, one bar per alignment
// column. The bar region is a plain scrollable container, not a
// virtualization surface, but it participates in scroll sync like one: its
// offset is pinned programmatically by the controller and user gestures over
// it emit ordinary scroll events.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/aabdoo23/Protomatic-sub001/internal/grid"
)

// Bar fill endpoints: low-conservation columns render warm, fully conserved
// columns render in the signal green used across the viewer.
const (
	lowColorHex  = "#F59E0B"
	highColorHex = "#10B981"
)

// AxisWidth is the fixed y-axis gutter width in cells ("1.0" plus a space).
const AxisWidth = 4

// axisTicks are the labelled y-axis values, top to bottom.
var axisTicks = []float64{1.0, 0.8, 0.6, 0.4, 0.2, 0.0}

// blocks are eighth-height bar glyphs, empty to full.
var blocks = []rune(" ▁▂▃▄▅▆▇█")

// Chart draws the conservation profile.
type Chart struct {
	scores []float64
	height int
	viewW  int
	left   int

	low, high colorful.Color
	hoverBG   lipgloss.Style
	axisStyle lipgloss.Style

	onScroll func(grid.Event)
}

// New creates a chart over the given profile with a bar region of the given
// height in rows.
func New(scores []float64, height int) *Chart {
	if height < 1 {
		height = 1
	}
	low, _ := colorful.Hex(lowColorHex)
	high, _ := colorful.Hex(highColorHex)
	return &Chart{
		scores:    scores,
		height:    height,
		low:       low,
		high:      high,
		hoverBG:   lipgloss.NewStyle().Background(lipgloss.Color("#374151")),
		axisStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// OnScroll registers the offset-change callback.
func (c *Chart) OnScroll(fn func(grid.Event)) { c.onScroll = fn }

// Height returns the bar region height in rows.
func (c *Chart) Height() int { return c.height }

// Left returns the first visible column.
func (c *Chart) Left() int { return c.left }

// SetViewport sets the bar region width in cells (excluding the axis
// gutter), re-clamping the offset without resetting it.
func (c *Chart) SetViewport(w int) {
	if w < 0 {
		w = 0
	}
	c.viewW = w
	c.left = c.clampLeft(c.left)
}

// MaxLeft returns the largest valid offset.
func (c *Chart) MaxLeft() int {
	if c.viewW <= 0 || len(c.scores) <= c.viewW {
		return 0
	}
	return len(c.scores) - c.viewW
}

// ScrollTo pins the bar region to a controller-driven offset (programmatic).
func (c *Chart) ScrollTo(left int) { c.apply(left, true) }

// UserScrollBy moves the bar region on behalf of a user gesture over it.
func (c *Chart) UserScrollBy(dLeft int) { c.apply(c.left+dLeft, false) }

func (c *Chart) apply(left int, programmatic bool) {
	left = c.clampLeft(left)
	if left == c.left {
		return
	}
	c.left = left
	if c.onScroll != nil {
		c.onScroll(grid.Event{Left: c.left, Programmatic: programmatic})
	}
}

func (c *Chart) clampLeft(left int) int {
	if left < 0 {
		return 0
	}
	if max := c.MaxLeft(); left > max {
		return max
	}
	return left
}

// HitTest maps a bar-region-relative x coordinate to the column under it.
func (c *Chart) HitTest(x int) (col int, ok bool) {
	if x < 0 || x >= c.viewW {
		return 0, false
	}
	col = c.left + x
	if col >= len(c.scores) {
		return 0, false
	}
	return col, true
}

// Tooltip returns the hover text for a column: its 1-based number and score
// to three decimals.
func (c *Chart) Tooltip(col int) string {
	if col < 0 || col >= len(c.scores) {
		return ""
	}
	return fmt.Sprintf("col %d · %.3f", col+1, c.scores[col])
}

// BarColor returns the fill color for a score, linearly interpolated in RGB
// between the low and high endpoints.
func (c *Chart) BarColor(score float64) lipgloss.Color {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return lipgloss.Color(c.low.BlendRgb(c.high, score).Hex())
}

// Render materializes the chart as height lines: the fixed axis gutter on
// the left and the visible bar window beside it. hover highlights that
// column's bar cells; pass a negative hover for none.
func (c *Chart) Render(hover int) []string {
	lines := make([]string, c.height)
	colStart := c.left
	colEnd := c.left + c.viewW
	if colEnd > len(c.scores) {
		colEnd = len(c.scores)
	}

	for rowIdx := 0; rowIdx < c.height; rowIdx++ {
		var b strings.Builder
		b.WriteString(c.axisLabel(rowIdx))
		// Rows render top down; row 0 is the top of the bars.
		bottom := c.height - 1 - rowIdx
		for col := colStart; col < colEnd; col++ {
			b.WriteString(c.barCell(col, bottom, col == hover))
		}
		lines[rowIdx] = b.String()
	}
	return lines
}

// axisLabel returns the gutter cell for a row: a tick label where one lands,
// spaces elsewhere. Ticks at 0, 0.2 … 1.0 map proportionally onto the rows.
func (c *Chart) axisLabel(rowIdx int) string {
	for _, tick := range axisTicks {
		at := 0
		if c.height > 1 {
			at = int(float64(c.height-1)*(1.0-tick) + 0.5)
		}
		if at == rowIdx {
			return c.axisStyle.Render(fmt.Sprintf("%.1f ", tick))
		}
	}
	return strings.Repeat(" ", AxisWidth)
}

// barCell renders one cell of one bar. bottom counts rows up from the
// baseline; the bar fills eighths of the topmost partial row.
func (c *Chart) barCell(col, bottom int, hovered bool) string {
	score := c.scores[col]
	eighths := int(score*float64(c.height)*8.0 + 0.5)
	full := eighths / 8
	rem := eighths % 8

	var glyph rune
	switch {
	case bottom < full:
		glyph = blocks[8]
	case bottom == full && rem > 0:
		glyph = blocks[rem]
	default:
		glyph = blocks[0]
	}

	style := lipgloss.NewStyle().Foreground(c.BarColor(score))
	if hovered {
		style = style.Inherit(c.hoverBG)
	}
	return style.Render(string(glyph))
}
