package slidertest

import (
	"fmt"

	"github.com/go-drift/rangeslider/pkg/gestures"
	"github.com/go-drift/rangeslider/pkg/graphics"
	"github.com/go-drift/rangeslider/pkg/rangeslider"
)

// Tester drives a controller with synthetic pointer events.
type Tester struct {
	Controller *rangeslider.Controller
	// Changes holds every value change raised since New or Reset.
	Changes []rangeslider.ValueChange

	// pointers holds the ids currently down.
	pointers      map[int]bool
	nextPointerID int64
	unsubscribe   func()
}

// New returns a Tester that records value changes from c.
func New(c *rangeslider.Controller) *Tester {
	t := &Tester{
		Controller: c,
		pointers:   make(map[int]bool),
	}
	t.unsubscribe = c.AddListener(func(change rangeslider.ValueChange) {
		t.Changes = append(t.Changes, change)
	})
	return t
}

// Close stops recording value changes.
func (t *Tester) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

// Reset clears the recorded changes.
func (t *Tester) Reset() {
	t.Changes = nil
}

func (t *Tester) allocPointerID() int {
	t.nextPointerID++
	return int(t.nextPointerID)
}

// ThumbCenter returns the center of a thumb's current frame.
func (t *Tester) ThumbCenter(thumb rangeslider.Thumb) (graphics.Offset, error) {
	frame := t.Controller.ThumbFrame(thumb)
	if frame.IsEmpty() {
		return graphics.Offset{}, fmt.Errorf("ThumbCenter: no frame for thumb %s", thumb)
	}
	return frame.Center(), nil
}

// DragThumb presses the center of thumb, moves by delta and releases.
// It fails if the controller did not start dragging that thumb.
func (t *Tester) DragThumb(thumb rangeslider.Thumb, delta graphics.Offset) error {
	start, err := t.ThumbCenter(thumb)
	if err != nil {
		return err
	}
	id := t.allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	if got := t.Controller.ActiveThumb(); got != thumb {
		t.SendPointerCancel(start, id)
		return fmt.Errorf("DragThumb: pressing %s thumb started a drag on %s", thumb, got)
	}
	end := start.Add(delta)
	if err := t.SendPointerMove(end, id); err != nil {
		return err
	}
	return t.SendPointerUp(end, id)
}

// DragFrom simulates a drag from start by delta in a single move.
func (t *Tester) DragFrom(start, delta graphics.Offset) error {
	return t.DragSteps(start, delta, 1)
}

// DragSteps simulates a drag from start by delta split into steps equal
// moves.
func (t *Tester) DragSteps(start, delta graphics.Offset, steps int) error {
	if steps < 1 {
		return fmt.Errorf("DragSteps: steps must be positive, got %d", steps)
	}
	id := t.allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		}
		if err := t.SendPointerMove(pos, id); err != nil {
			return err
		}
	}
	return t.SendPointerUp(start.Add(delta), id)
}

// SendPointerDown sends a pointer-down event at pos with the given pointer ID.
func (t *Tester) SendPointerDown(pos graphics.Offset, pointerID int) error {
	if t.pointers[pointerID] {
		return fmt.Errorf("SendPointerDown: pointer %d is already down", pointerID)
	}
	t.pointers[pointerID] = true
	t.Controller.HandlePointer(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
	return nil
}

// SendPointerMove sends a pointer-move event at pos with the given pointer ID.
func (t *Tester) SendPointerMove(pos graphics.Offset, pointerID int) error {
	return t.send(pos, pointerID, gestures.PointerPhaseMove)
}

// SendPointerUp sends a pointer-up event at pos with the given pointer ID.
func (t *Tester) SendPointerUp(pos graphics.Offset, pointerID int) error {
	return t.send(pos, pointerID, gestures.PointerPhaseUp)
}

// SendPointerCancel sends a pointer-cancel event at pos with the given pointer ID.
func (t *Tester) SendPointerCancel(pos graphics.Offset, pointerID int) error {
	return t.send(pos, pointerID, gestures.PointerPhaseCancel)
}

func (t *Tester) send(pos graphics.Offset, pointerID int, phase gestures.PointerPhase) error {
	if !t.pointers[pointerID] {
		return fmt.Errorf("pointer %d is not down (phase %s)", pointerID, phase)
	}
	if phase != gestures.PointerPhaseMove {
		delete(t.pointers, pointerID)
	}
	t.Controller.HandlePointer(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     phase,
	})
	return nil
}
