package grid

import (
	"fmt"
	"strings"
)

// VList is a vertically virtualized 1-D list: the sequence-name column. It
// shares the grid's row sizing contract (one row per grid row) and scrolls
// only on the top axis.
type VList struct {
	rows     int
	cellH    int
	viewH    int
	top      int
	onScroll func(Event)
}

// NewVList creates a vertical list over rows items of height 1.
func NewVList(rows int) *VList {
	return &VList{rows: rows, cellH: 1}
}

// OnScroll registers the offset-change callback.
func (l *VList) OnScroll(fn func(Event)) { l.onScroll = fn }

// SetViewport sets the visible height in display cells, re-clamping the
// offset without resetting it.
func (l *VList) SetViewport(h int) {
	if h < 0 {
		h = 0
	}
	l.viewH = h
	l.top = clamp(l.top, l.MaxTop())
}

// Top returns the first visible row.
func (l *VList) Top() int { return l.top }

// ViewRows returns how many items fit in the viewport.
func (l *VList) ViewRows() int { return l.viewH / l.cellH }

// MaxTop returns the largest valid offset.
func (l *VList) MaxTop() int { return maxOffset(l.rows, l.ViewRows()) }

// ScrollTo pins the list to a grid-driven vertical offset (programmatic).
func (l *VList) ScrollTo(top int) { l.apply(top, true) }

// UserScrollBy moves the list on behalf of a user gesture over it.
func (l *VList) UserScrollBy(dTop int) { l.apply(l.top+dTop, false) }

func (l *VList) apply(top int, programmatic bool) {
	top = clamp(top, l.MaxTop())
	if top == l.top {
		return
	}
	l.top = top
	if l.onScroll != nil {
		l.onScroll(Event{Top: l.top, Programmatic: programmatic})
	}
}

// VisibleRows returns the half-open item range intersecting the viewport.
func (l *VList) VisibleRows() (start, end int) {
	start = l.top
	end = l.top + l.ViewRows()
	if end > l.rows {
		end = l.rows
	}
	return start, end
}

// Render materializes the visible items, one line each.
func (l *VList) Render(item func(row int) string) []string {
	start, end := l.VisibleRows()
	if end <= start {
		return nil
	}
	lines := make([]string, 0, end-start)
	for row := start; row < end; row++ {
		lines = append(lines, item(row))
	}
	return lines
}

// HList is a horizontally virtualized 1-D list: the column-number ruler. It
// shares the grid's column sizing contract and scrolls only on the left axis.
type HList struct {
	cols     int
	cellW    int
	viewW    int
	left     int
	onScroll func(Event)
}

// NewHList creates a horizontal list over cols items of width 1.
func NewHList(cols int) *HList {
	return &HList{cols: cols, cellW: 1}
}

// OnScroll registers the offset-change callback.
func (l *HList) OnScroll(fn func(Event)) { l.onScroll = fn }

// SetViewport sets the visible width in display cells, re-clamping the
// offset without resetting it.
func (l *HList) SetViewport(w int) {
	if w < 0 {
		w = 0
	}
	l.viewW = w
	l.left = clamp(l.left, l.MaxLeft())
}

// Left returns the first visible column.
func (l *HList) Left() int { return l.left }

// ViewCols returns how many items fit in the viewport.
func (l *HList) ViewCols() int { return l.viewW / l.cellW }

// MaxLeft returns the largest valid offset.
func (l *HList) MaxLeft() int { return maxOffset(l.cols, l.ViewCols()) }

// ScrollTo pins the list to a grid-driven horizontal offset (programmatic).
func (l *HList) ScrollTo(left int) { l.apply(left, true) }

// UserScrollBy moves the list on behalf of a user gesture over it.
func (l *HList) UserScrollBy(dLeft int) { l.apply(l.left+dLeft, false) }

func (l *HList) apply(left int, programmatic bool) {
	left = clamp(left, l.MaxLeft())
	if left == l.left {
		return
	}
	l.left = left
	if l.onScroll != nil {
		l.onScroll(Event{Left: l.left, Programmatic: programmatic})
	}
}

// VisibleCols returns the half-open item range intersecting the viewport.
func (l *HList) VisibleCols() (start, end int) {
	start = l.left
	end = l.left + l.ViewCols()
	if end > l.cols {
		end = l.cols
	}
	return start, end
}

// HitCol maps a viewport-relative x coordinate to the column under it.
func (l *HList) HitCol(x int) (col int, ok bool) {
	if x < 0 {
		return 0, false
	}
	col = l.left + x/l.cellW
	if col >= l.cols {
		return 0, false
	}
	return col, true
}

// RulerLabel returns the 1-based, zero-padded label for a column, padded to
// the digit count of the full column range: column 7 of 1200 is "0008".
func RulerLabel(col, cols int) string {
	return fmt.Sprintf("%0*d", RulerDigits(cols), col+1)
}

// RulerDigits returns the label width for a column range.
func RulerDigits(cols int) int {
	if cols < 1 {
		return 1
	}
	return len(fmt.Sprintf("%d", cols))
}

// RenderRuler materializes the visible ruler cells as stacked digit lines:
// line k holds digit k of every visible column label, so each terminal
// column reads its full zero-padded number top to bottom. The style func
// wraps one digit cell and may highlight the hovered column.
func (l *HList) RenderRuler(style func(col int, digit byte) string) []string {
	start, end := l.VisibleCols()
	if end <= start {
		return nil
	}
	digits := RulerDigits(l.cols)
	rows := make([]strings.Builder, digits)
	for col := start; col < end; col++ {
		label := RulerLabel(col, l.cols)
		for k := 0; k < digits; k++ {
			rows[k].WriteString(style(col, label[k]))
		}
	}
	lines := make([]string, digits)
	for k := range rows {
		lines[k] = rows[k].String()
	}
	return lines
}
