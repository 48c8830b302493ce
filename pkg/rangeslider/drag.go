package rangeslider

import (
	"math"

	"github.com/go-drift/rangeslider/pkg/gestures"
	"github.com/go-drift/rangeslider/pkg/graphics"
)

// DragState is the state of the drag state machine.
type DragState int

const (
	// DragIdle means no drag is in progress.
	DragIdle DragState = iota
	// DragLower means the lower thumb is being dragged.
	DragLower
	// DragUpper means the upper thumb is being dragged.
	DragUpper
)

func (s DragState) String() string {
	switch s {
	case DragLower:
		return "dragging-lower"
	case DragUpper:
		return "dragging-upper"
	default:
		return "idle"
	}
}

// dragSession exists only between an accepted BeginDrag and EndDrag.
type dragSession struct {
	thumb    Thumb
	previous graphics.Offset
	// free is AllowUpperCrossLower as it was when the drag began.
	free bool
	// pointer is the id of the pointer driving the session when events
	// arrive through HandlePointer.
	pointer int64
}

// State returns the current drag state.
func (c *Controller) State() DragState {
	if c.session == nil {
		return DragIdle
	}
	if c.session.thumb == ThumbLower {
		return DragLower
	}
	return DragUpper
}

// ActiveThumb returns the thumb being dragged, or ThumbNone.
func (c *Controller) ActiveThumb() Thumb {
	if c.session == nil {
		return ThumbNone
	}
	return c.session.thumb
}

// BeginDrag starts a drag at p if it lands on a thumb and reports whether
// the gesture was accepted. The lower thumb is tested first, and only when
// lower dragging is allowed, so it wins where the thumbs overlap.
//
// A BeginDrag while a drag is already active is rejected and leaves the
// active drag untouched.
func (c *Controller) BeginDrag(p graphics.Offset) bool {
	return c.beginDrag(p, 0)
}

func (c *Controller) beginDrag(p graphics.Offset, pointer int64) bool {
	if c.session != nil || !finite(p) {
		return false
	}
	var thumb Thumb
	switch {
	case c.allowLowerThumbDrag && c.ThumbFrame(ThumbLower).Contains(p):
		thumb = ThumbLower
		c.lowerHighlighted = true
		c.markDirty(DirtyLowerThumb)
	case c.ThumbFrame(ThumbUpper).Contains(p):
		thumb = ThumbUpper
		c.upperHighlighted = true
		c.markDirty(DirtyUpperThumb)
	default:
		return false
	}
	c.session = &dragSession{
		thumb:    thumb,
		previous: p,
		free:     c.allowUpperCrossLower,
		pointer:  pointer,
	}
	return true
}

// UpdateDrag moves the active thumb by the horizontal displacement from the
// previous sample and notifies listeners, even when clamping leaves the
// value where it was. It returns false without notifying when idle.
//
// Samples with a non-finite coordinate are dropped: UpdateDrag returns false
// and the next sample is measured from the last finite one.
//
// Pixels convert to value units over Width-Height rather than the thumb
// travel used by PositionForValue, so the thumb moves slightly faster than
// the pointer.
func (c *Controller) UpdateDrag(p graphics.Offset) bool {
	s := c.session
	if s == nil || !finite(p) {
		return false
	}
	deltaValue := (c.maximum - c.minimum) * (p.X - s.previous.X) / (c.bounds.Width - c.bounds.Height)
	s.previous = p

	switch {
	case s.thumb == ThumbLower:
		c.SetLower(boundValue(c.lower+deltaValue, c.minimum, c.upper-c.Gap()))
	case s.free:
		c.SetUpper(boundValue(c.upper+deltaValue, c.minimum-1, c.maximum))
	default:
		c.SetUpper(boundValue(c.upper+deltaValue, c.lower+c.Gap(), c.maximum))
	}
	c.notify(s.thumb)
	return true
}

// EndDrag finishes the active drag. Values are left as the last update put
// them. It does nothing when idle.
func (c *Controller) EndDrag() {
	if c.session == nil {
		return
	}
	if c.lowerHighlighted {
		c.markDirty(DirtyLowerThumb)
	}
	if c.upperHighlighted {
		c.markDirty(DirtyUpperThumb)
	}
	c.lowerHighlighted = false
	c.upperHighlighted = false
	c.session = nil
}

// CancelDrag aborts the active drag. Like EndDrag it keeps the values
// reached so far.
func (c *Controller) CancelDrag() {
	c.EndDrag()
}

// HandlePointer drives the drag state machine from raw pointer events.
// While a drag is active, events from other pointers are ignored.
func (c *Controller) HandlePointer(event gestures.PointerEvent) {
	if c.session != nil && event.PointerID != c.session.pointer {
		return
	}
	switch event.Phase {
	case gestures.PointerPhaseDown:
		c.beginDrag(event.Position, event.PointerID)
	case gestures.PointerPhaseMove:
		c.UpdateDrag(event.Position)
	case gestures.PointerPhaseUp:
		c.EndDrag()
	case gestures.PointerPhaseCancel:
		c.CancelDrag()
	}
}

func finite(p graphics.Offset) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// boundValue clamps v to [lo, hi]. When lo > hi the result is hi.
func boundValue(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
