// Package scrollsync keeps the viewer's scrollable surfaces in lockstep.
//
// There is exactly one authoritative scroll position per viewer. Whatever
// surface the user is interacting with becomes the writer for that event;
// every other attached surface is a follower and is pinned to the new
// position through its programmatic apply path. Programmatic applies report
// their resulting events with a Programmatic flag and the controller drops
// those, so a single source event causes at most one apply per follower and
// the fan-out can never loop.
package scrollsync

import "math"

// Position is the authoritative scroll offset, in item units (columns/rows).
type Position struct {
	Left int
	Top  int
}

// Axis selects which offsets a surface tracks.
type Axis uint8

const (
	// Horizontal surfaces track Left.
	Horizontal Axis = 1 << iota
	// Vertical surfaces track Top.
	Vertical
)

// Both is for surfaces tracking both axes (the grid).
const Both = Horizontal | Vertical

// Target is one attached surface. Apply must route through the surface's
// programmatic scroll path so that any event it emits back is flagged
// Programmatic.
type Target struct {
	ID    string
	Axes  Axis
	Apply func(Position)
}

// State is the drag state machine of the controller. Only one drag session
// exists at a time; input devices are single-pointer.
type State int

const (
	// Idle means no drag session is active.
	Idle State = iota
	// GridDragging pans via a pointer down on the grid surface.
	GridDragging
	// ChartDragging pans via a pointer down on the chart strip.
	ChartDragging
)

// DefaultSensitivity scales pointer travel into column offset for drag
// panning.
const DefaultSensitivity = 1.0

type dragSession struct {
	state     State
	sourceID  string
	startX    int
	startLeft int
}

// Controller owns the shared Position and the drag session.
type Controller struct {
	// Sensitivity scales drag travel; <= 0 falls back to
	// DefaultSensitivity.
	Sensitivity float64

	// Clamp bounds a candidate position to the scrollable extent. The
	// viewer wires this to the grid's limits; nil means no bounding.
	Clamp func(Position) Position

	pos     Position
	targets []Target
	drag    dragSession
}

// New returns a controller with default drag sensitivity.
func New() *Controller {
	return &Controller{Sensitivity: DefaultSensitivity}
}

// Attach registers a surface. Attach order is fan-out order.
func (c *Controller) Attach(t Target) {
	c.targets = append(c.targets, t)
}

// Pos returns the current authoritative position.
func (c *Controller) Pos() Position { return c.pos }

// State returns the current drag state.
func (c *Controller) State() State { return c.drag.state }

// HandleEvent ingests a scroll event reported by a surface. Programmatic
// events are follower echoes and are dropped. A user event makes sourceID
// the writer: the axes that surface owns are merged into the shared
// position, then fanned out to every other surface.
func (c *Controller) HandleEvent(sourceID string, left, top int, programmatic bool) {
	if programmatic {
		return
	}
	src := c.target(sourceID)
	if src == nil {
		return
	}
	next := c.pos
	if src.Axes&Horizontal != 0 {
		next.Left = left
	}
	if src.Axes&Vertical != 0 {
		next.Top = top
	}
	c.fanOut(sourceID, next)
}

// Seek pins every surface, including a named source, to pos. It is the
// programmatic entry point (keyboard jumps, initial layout).
func (c *Controller) Seek(pos Position) {
	c.fanOut("", pos)
}

func (c *Controller) fanOut(sourceID string, pos Position) {
	if c.Clamp != nil {
		pos = c.Clamp(pos)
	}
	c.pos = pos
	for _, t := range c.targets {
		if t.ID == sourceID {
			continue
		}
		t.Apply(pos)
	}
}

// StartDrag opens a drag session for the given state anchored at the
// pointer's x coordinate. A session already in progress is replaced.
func (c *Controller) StartDrag(state State, sourceID string, pointerX int) {
	if state == Idle {
		return
	}
	c.drag = dragSession{
		state:     state,
		sourceID:  sourceID,
		startX:    pointerX,
		startLeft: c.pos.Left,
	}
}

// DragMove advances the active session to the pointer's current x
// coordinate: the content follows the pointer, so moving right scrolls
// left. Drag moves are dispatched to every surface, the dragged one
// included, through the programmatic apply path; the resulting echoes are
// flagged and dropped, so the gesture still causes exactly one apply per
// surface per move. No-op when Idle.
func (c *Controller) DragMove(pointerX int) {
	if c.drag.state == Idle {
		return
	}
	delta := float64(pointerX-c.drag.startX) * c.sensitivity()
	next := c.pos
	next.Left = c.drag.startLeft - int(math.Round(delta))
	if next.Left < 0 {
		next.Left = 0
	}
	c.fanOut("", next)
}

// EndDrag closes the session. Pointer release and pointer leave both land
// here; the scroll position simply stays where the last move left it.
func (c *Controller) EndDrag() {
	c.drag = dragSession{}
}

func (c *Controller) sensitivity() float64 {
	if c.Sensitivity <= 0 {
		return DefaultSensitivity
	}
	return c.Sensitivity
}

func (c *Controller) target(id string) *Target {
	for i := range c.targets {
		if c.targets[i].ID == id {
			return &c.targets[i]
		}
	}
	return nil
}
