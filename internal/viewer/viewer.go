// Package viewer composes the MSA surfaces into one bubbletea model: the
// residue grid with its fixed name column, the column-number ruler, the
// conservation chart strip, and the scroll-sync controller that keeps all of
// them at the same offset. All state mutation happens inside Update; there
// is no concurrency in this package.
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/aabdoo23/Protomatic-sub001/internal/align"
	"github.com/aabdoo23/Protomatic-sub001/internal/chart"
	"github.com/aabdoo23/Protomatic-sub001/internal/grid"
	"github.com/aabdoo23/Protomatic-sub001/internal/scrollsync"
)

const (
	chartHeight         = 6
	defaultNameColWidth = 20
	wheelStep           = 3

	// Surface IDs used for scroll-sync writer attribution.
	surfaceGrid  = "grid"
	surfaceNames = "names"
	surfaceRuler = "ruler"
	surfaceChart = "chart"
)

// Options configure a viewer instance.
type Options struct {
	// Title is shown in the top-left corner; usually the input filename.
	Title string
	// Sensitivity scales drag-to-pan travel; 0 uses the default.
	Sensitivity float64
	// NameColWidth is the fixed width of the sequence-name column; 0 uses
	// the default.
	NameColWidth int
}

// Model is the viewer's bubbletea model.
type Model struct {
	alignment *align.Alignment

	grid  *grid.Grid
	names *grid.VList
	ruler *grid.HList
	chart *chart.Chart
	ctl   *scrollsync.Controller

	keys keyMap
	help help.Model

	title    string
	nameW    int
	width    int
	height   int
	ready    bool
	showHelp bool

	// hoverCol is the hovered alignment column, -1 for none. It drives the
	// highlight in the grid, the ruler and the chart simultaneously.
	hoverCol int
	tooltip  string
	mouseX   int
}

// New builds a viewer over an aligned FASTA blob. Malformed or empty input
// produces a viewer that renders a placeholder instead of failing.
func New(blob string, opts Options) Model {
	a := align.FromBlob(blob)

	m := Model{
		alignment: a,
		grid:      grid.NewGrid(a.Width(), a.Depth()),
		names:     grid.NewVList(a.Depth()),
		ruler:     grid.NewHList(a.Width()),
		chart:     chart.New(a.Conservation(), chartHeight),
		ctl:       scrollsync.New(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		title:     opts.Title,
		nameW:     opts.NameColWidth,
		hoverCol:  -1,
	}
	if m.nameW <= 0 {
		m.nameW = defaultNameColWidth
	}
	if opts.Sensitivity > 0 {
		m.ctl.Sensitivity = opts.Sensitivity
	}

	m.ctl.Clamp = func(p scrollsync.Position) scrollsync.Position {
		if p.Left > m.grid.MaxLeft() {
			p.Left = m.grid.MaxLeft()
		}
		if p.Top > m.grid.MaxTop() {
			p.Top = m.grid.MaxTop()
		}
		return p
	}

	m.ctl.Attach(scrollsync.Target{ID: surfaceGrid, Axes: scrollsync.Both, Apply: func(p scrollsync.Position) {
		m.grid.ScrollTo(&p.Left, &p.Top)
	}})
	m.ctl.Attach(scrollsync.Target{ID: surfaceNames, Axes: scrollsync.Vertical, Apply: func(p scrollsync.Position) {
		m.names.ScrollTo(p.Top)
	}})
	m.ctl.Attach(scrollsync.Target{ID: surfaceRuler, Axes: scrollsync.Horizontal, Apply: func(p scrollsync.Position) {
		m.ruler.ScrollTo(p.Left)
	}})
	m.ctl.Attach(scrollsync.Target{ID: surfaceChart, Axes: scrollsync.Horizontal, Apply: func(p scrollsync.Position) {
		m.chart.ScrollTo(p.Left)
	}})

	m.grid.OnScroll(func(e grid.Event) { m.ctl.HandleEvent(surfaceGrid, e.Left, e.Top, e.Programmatic) })
	m.names.OnScroll(func(e grid.Event) { m.ctl.HandleEvent(surfaceNames, e.Left, e.Top, e.Programmatic) })
	m.ruler.OnScroll(func(e grid.Event) { m.ctl.HandleEvent(surfaceRuler, e.Left, e.Top, e.Programmatic) })
	m.chart.OnScroll(func(e grid.Event) { m.ctl.HandleEvent(surfaceChart, e.Left, e.Top, e.Programmatic) })

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Layout rows, top to bottom: header/tooltip line, chart strip, ruler, grid
// rows, status bar, help bar.

func (m Model) chartTop() int { return 1 }

func (m Model) rulerTop() int { return m.chartTop() + chartHeight }

func (m Model) rulerRows() int { return grid.RulerDigits(m.alignment.Width()) }

func (m Model) gridTop() int { return m.rulerTop() + m.rulerRows() }

func (m Model) gridRows() int {
	rows := m.height - m.gridTop() - 2 // status bar + help bar
	if rows < 0 {
		rows = 0
	}
	return rows
}

// gridX is the x coordinate where alignment columns start; the name column
// and its gutter sit left of it. The chart's axis gutter is padded out to
// the same x so bars line up with grid columns.
func (m Model) gridX() int { return m.nameW + 1 }

func (m Model) gridCols() int {
	cols := m.width - m.gridX()
	if cols < 0 {
		cols = 0
	}
	return cols
}

func (m *Model) applyLayout() {
	m.grid.SetViewport(m.gridCols(), m.gridRows())
	m.names.SetViewport(m.gridRows())
	m.ruler.SetViewport(m.gridCols())
	m.chart.SetViewport(m.gridCols())
	// Re-pin followers to the re-clamped grid offsets; resizing must not
	// leave surfaces desynchronized, and must not reset scroll.
	m.ctl.Seek(scrollsync.Position{Left: m.grid.Left(), Top: m.grid.Top()})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.applyLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Up):
		m.grid.UserScrollBy(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.grid.UserScrollBy(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.grid.UserScrollBy(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.grid.UserScrollBy(1, 0)

	case key.Matches(msg, m.keys.PageUp):
		m.grid.UserScrollBy(0, -m.grid.ViewRows())
	case key.Matches(msg, m.keys.PageDown):
		m.grid.UserScrollBy(0, m.grid.ViewRows())

	case key.Matches(msg, m.keys.Top):
		top := 0
		m.grid.UserScrollTo(nil, &top)
	case key.Matches(msg, m.keys.Bottom):
		bottom := m.grid.MaxTop()
		m.grid.UserScrollTo(nil, &bottom)
	}
	return m, nil
}

// handleMouse routes pointer events by region: the chart strip, the ruler,
// the name column and the grid each respond to the gestures they own.
// Motion with no button held drives hover; a left press opens a drag
// session; release or leaving the originating region closes it.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.mouseX = msg.X

	inChart := msg.Y >= m.chartTop() && msg.Y < m.rulerTop() && msg.X >= m.gridX()
	inRuler := msg.Y >= m.rulerTop() && msg.Y < m.gridTop() && msg.X >= m.gridX()
	inGrid := msg.Y >= m.gridTop() && msg.Y < m.gridTop()+m.gridRows() && msg.X >= m.gridX()
	inNames := msg.Y >= m.gridTop() && msg.Y < m.gridTop()+m.gridRows() && msg.X < m.nameW

	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		m.updateHover(msg, inChart, inRuler)
		return
	}

	if m.ctl.State() != scrollsync.Idle {
		switch {
		case msg.Action == tea.MouseActionRelease:
			m.ctl.EndDrag()
		case m.ctl.State() == scrollsync.GridDragging && !inGrid,
			m.ctl.State() == scrollsync.ChartDragging && !inChart:
			// Leaving the surface mid-drag cancels the session.
			m.ctl.EndDrag()
		case msg.Action == tea.MouseActionMotion:
			m.ctl.DragMove(msg.X)
		}
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		switch {
		case inGrid:
			m.grid.UserScrollBy(0, -wheelStep)
		case inNames:
			m.names.UserScrollBy(-wheelStep)
		case inChart:
			m.chart.UserScrollBy(-wheelStep)
		case inRuler:
			m.ruler.UserScrollBy(-wheelStep)
		}

	case tea.MouseButtonWheelDown:
		switch {
		case inGrid:
			m.grid.UserScrollBy(0, wheelStep)
		case inNames:
			m.names.UserScrollBy(wheelStep)
		case inChart:
			m.chart.UserScrollBy(wheelStep)
		case inRuler:
			m.ruler.UserScrollBy(wheelStep)
		}

	case tea.MouseButtonWheelLeft:
		if inGrid || inRuler || inChart {
			m.grid.UserScrollBy(-wheelStep, 0)
		}

	case tea.MouseButtonWheelRight:
		if inGrid || inRuler || inChart {
			m.grid.UserScrollBy(wheelStep, 0)
		}

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		switch {
		case inGrid:
			m.ctl.StartDrag(scrollsync.GridDragging, surfaceGrid, msg.X)
		case inChart:
			m.ctl.StartDrag(scrollsync.ChartDragging, surfaceChart, msg.X)
		}
	}
}

// updateHover recomputes HoverColumn and the tooltip from a buttonless
// motion event. Hover over a ruler cell highlights the column; hover over a
// chart bar additionally opens the score tooltip. Anywhere else clears both.
func (m *Model) updateHover(msg tea.MouseMsg, inChart, inRuler bool) {
	switch {
	case inChart:
		if col, ok := m.chart.HitTest(msg.X - m.gridX()); ok {
			m.hoverCol = col
			m.tooltip = m.chart.Tooltip(col)
			return
		}
	case inRuler:
		if col, ok := m.ruler.HitCol(msg.X - m.gridX()); ok {
			m.hoverCol = col
			m.tooltip = ""
			return
		}
	}
	m.hoverCol = -1
	m.tooltip = ""
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpModal()
	}
	if m.alignment.Empty() {
		return m.renderPlaceholder()
	}

	sections := []string{
		m.renderHeaderLine(),
	}
	sections = append(sections, m.renderChart()...)
	sections = append(sections, m.renderRuler()...)
	sections = append(sections, m.renderBody()...)
	sections = append(sections, m.renderStatusBar(), m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

// renderHeaderLine shows the title, or the hover tooltip anchored at the
// pointer's x position while a chart bar is hovered.
func (m Model) renderHeaderLine() string {
	if m.tooltip != "" {
		box := tooltipStyle.Render(m.tooltip)
		pad := m.mouseX - lipgloss.Width(box)/2
		if pad+lipgloss.Width(box) > m.width {
			pad = m.width - lipgloss.Width(box)
		}
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + box
	}
	title := titleStyle.Render("MSA Viewer")
	if m.title != "" {
		title += nameGutterStyle.Render(" · ") + nameStyle.Render(m.title)
	}
	dims := placeholderStyle.Render(fmt.Sprintf("%d seqs × %d cols", m.alignment.Depth(), m.alignment.Width()))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(dims)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + dims
}

// renderChart pads the chart's fixed axis gutter out to the grid's x origin
// so bars sit directly above their grid columns.
func (m Model) renderChart() []string {
	pad := ""
	if extra := m.gridX() - chart.AxisWidth; extra > 0 {
		pad = strings.Repeat(" ", extra)
	}
	lines := m.chart.Render(m.hoverCol)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = pad + line
	}
	return out
}

func (m Model) renderRuler() []string {
	pad := strings.Repeat(" ", m.gridX())
	lines := m.ruler.RenderRuler(func(col int, digit byte) string {
		if col == m.hoverCol {
			return rulerHoverStyle.Render(string(digit))
		}
		return rulerStyle.Render(string(digit))
	})
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = pad + line
	}
	return out
}

// renderBody joins the name column and the grid window line by line.
func (m Model) renderBody() []string {
	gutter := nameGutterStyle.Render("│")
	nameLines := m.names.Render(func(row int) string {
		name := runewidth.Truncate(m.alignment.Name(row), m.nameW, "…")
		return nameStyle.Render(runewidth.FillRight(name, m.nameW))
	})
	gridLines := m.grid.Render(func(row, col int) string {
		c := m.alignment.Cell(row, col)
		variant := 0
		if col == m.hoverCol {
			variant = 1
		}
		return residueStyles[variant][c].Render(string(c))
	})

	out := make([]string, 0, len(gridLines))
	for i := range gridLines {
		name := runewidth.FillRight("", m.nameW)
		if i < len(nameLines) {
			name = nameLines[i]
		}
		out = append(out, name+gutter+gridLines[i])
	}
	// Pad short bodies so the status bar stays at the bottom.
	for len(out) < m.gridRows() {
		out = append(out, "")
	}
	return out
}

func (m Model) renderStatusBar() string {
	rowEnd := m.grid.Top() + m.grid.ViewRows()
	if rowEnd > m.alignment.Depth() {
		rowEnd = m.alignment.Depth()
	}
	colEnd := m.grid.Left() + m.grid.ViewCols()
	if colEnd > m.alignment.Width() {
		colEnd = m.alignment.Width()
	}
	left := fmt.Sprintf("rows %d–%d/%d · cols %d–%d/%d",
		m.grid.Top()+1, rowEnd, m.alignment.Depth(),
		m.grid.Left()+1, colEnd, m.alignment.Width())
	if m.hoverCol >= 0 {
		left += fmt.Sprintf(" · hover %s", grid.RulerLabel(m.hoverCol, m.alignment.Width()))
	}
	right := "? help · q quit"

	gap := m.width - lipgloss.Width(left) - len(right) - 2
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderPlaceholder() string {
	msg := placeholderStyle.Render("No alignment data — provide a non-empty FASTA alignment")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderHelpModal() string {
	content := `MSA Viewer — Help

Navigation:
  ↑/↓/←/→, hjkl   Scroll the alignment
  pgup/pgdn        Page vertically
  g / G            Jump to top / bottom

Mouse:
  wheel            Scroll the surface under the pointer
  drag grid/chart  Pan horizontally
  hover ruler/bar  Highlight a column; bars show the score

General:
  ?                Toggle this help
  q, Ctrl+C        Quit`

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		helpModalStyle.Render(content))
}

// Run starts the viewer program on the alternate screen with cell-motion
// mouse reporting enabled.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
