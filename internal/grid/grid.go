// Package grid implements the virtualized rendering surfaces of the MSA
// viewer: a 2-D residue grid and the two 1-D strips (sequence names, column
// ruler) that track it. Surfaces only materialize cells intersecting their
// viewport.
//
// Scroll offsets are in item units: Left is the first visible column, Top
// the first visible row. Every offset change is reported through a single
// callback carrying a Programmatic flag; applying an offset from the outside
// (ScrollTo) reports Programmatic=true, user-driven moves report false. The
// sync controller relies on that flag to suppress feedback loops.
package grid

// Event describes one offset change on a surface.
type Event struct {
	Left         int
	Top          int
	Programmatic bool
}

// CellFunc renders the content of one (row, col) cell as a styled string of
// display width equal to the grid's cell width.
type CellFunc func(row, col int) string

// Grid is the virtualized residue matrix surface.
type Grid struct {
	cols, rows   int
	cellW, cellH int
	viewW, viewH int
	left, top    int
	onScroll     func(Event)
}

// NewGrid creates a grid over cols × rows items with 1×1 cells.
func NewGrid(cols, rows int) *Grid {
	return &Grid{cols: cols, rows: rows, cellW: 1, cellH: 1}
}

// SetCellSize sets the fixed per-item display size. Values below 1 are
// treated as 1.
func (g *Grid) SetCellSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g.cellW, g.cellH = w, h
}

// OnScroll registers the offset-change callback. Only one listener is
// supported; the sync controller is that listener.
func (g *Grid) OnScroll(fn func(Event)) { g.onScroll = fn }

// SetViewport sets the visible extent in display cells and re-clamps the
// current offsets. It never resets a valid scroll position.
func (g *Grid) SetViewport(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.viewW, g.viewH = w, h
	g.left = clamp(g.left, g.MaxLeft())
	g.top = clamp(g.top, g.MaxTop())
}

// Cols returns the total column count.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the total row count.
func (g *Grid) Rows() int { return g.rows }

// Left returns the first visible column.
func (g *Grid) Left() int { return g.left }

// Top returns the first visible row.
func (g *Grid) Top() int { return g.top }

// ViewCols returns how many whole columns fit in the viewport.
func (g *Grid) ViewCols() int { return g.viewW / g.cellW }

// ViewRows returns how many whole rows fit in the viewport.
func (g *Grid) ViewRows() int { return g.viewH / g.cellH }

// MaxLeft returns the largest valid Left offset.
func (g *Grid) MaxLeft() int { return maxOffset(g.cols, g.ViewCols()) }

// MaxTop returns the largest valid Top offset.
func (g *Grid) MaxTop() int { return maxOffset(g.rows, g.ViewRows()) }

// ScrollTo repositions the viewport without a user gesture. Nil arguments
// leave the corresponding axis untouched. The resulting event (if the offset
// actually changed) is flagged Programmatic so followers do not re-broadcast.
func (g *Grid) ScrollTo(left, top *int) {
	g.apply(left, top, true)
}

// UserScrollBy moves the viewport on behalf of a user gesture (wheel, keys).
// The resulting event is not flagged Programmatic, so the controller treats
// this surface as the writer and fans the offset out.
func (g *Grid) UserScrollBy(dLeft, dTop int) {
	l, t := g.left+dLeft, g.top+dTop
	g.apply(&l, &t, false)
}

// UserScrollTo is UserScrollBy with absolute targets; drag panning uses it.
func (g *Grid) UserScrollTo(left, top *int) {
	g.apply(left, top, false)
}

func (g *Grid) apply(left, top *int, programmatic bool) {
	newLeft, newTop := g.left, g.top
	if left != nil {
		newLeft = clamp(*left, g.MaxLeft())
	}
	if top != nil {
		newTop = clamp(*top, g.MaxTop())
	}
	if newLeft == g.left && newTop == g.top {
		return
	}
	g.left, g.top = newLeft, newTop
	if g.onScroll != nil {
		g.onScroll(Event{Left: g.left, Top: g.top, Programmatic: programmatic})
	}
}

// VisibleCols returns the half-open column range intersecting the viewport.
func (g *Grid) VisibleCols() (start, end int) {
	start = g.left
	end = g.left + g.ViewCols()
	if end > g.cols {
		end = g.cols
	}
	return start, end
}

// VisibleRows returns the half-open row range intersecting the viewport.
func (g *Grid) VisibleRows() (start, end int) {
	start = g.top
	end = g.top + g.ViewRows()
	if end > g.rows {
		end = g.rows
	}
	return start, end
}

// Render materializes the visible window, one line per visible row, cells
// joined left to right. Only cells inside the window are touched.
func (g *Grid) Render(cell CellFunc) []string {
	rowStart, rowEnd := g.VisibleRows()
	colStart, colEnd := g.VisibleCols()
	if rowEnd <= rowStart || colEnd <= colStart {
		return nil
	}
	lines := make([]string, 0, rowEnd-rowStart)
	for row := rowStart; row < rowEnd; row++ {
		var line []byte
		for col := colStart; col < colEnd; col++ {
			line = append(line, cell(row, col)...)
		}
		lines = append(lines, string(line))
	}
	return lines
}

// HitCell maps viewport-relative display coordinates to the (row, col) under
// them. ok is false outside the populated window.
func (g *Grid) HitCell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = g.left + x/g.cellW
	row = g.top + y/g.cellH
	if col >= g.cols || row >= g.rows {
		return 0, 0, false
	}
	return row, col, true
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func maxOffset(total, visible int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	return total - visible
}
