// Package gestures defines the pointer events delivered to interactive
// controls and the drag details derived from them.
package gestures

import "github.com/go-drift/rangeslider/pkg/graphics"

// PointerPhase identifies where a pointer event falls in its lifecycle.
type PointerPhase int

const (
	// PointerPhaseDown is the first contact of a pointer.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while the pointer is down.
	PointerPhaseMove
	// PointerPhaseUp is the pointer lifting normally.
	PointerPhaseUp
	// PointerPhaseCancel means the host aborted the pointer sequence.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParsePointerPhase maps the String form of a phase back to its value.
func ParsePointerPhase(s string) (PointerPhase, bool) {
	switch s {
	case "down":
		return PointerPhaseDown, true
	case "move":
		return PointerPhaseMove, true
	case "up":
		return PointerPhaseUp, true
	case "cancel":
		return PointerPhaseCancel, true
	}
	return 0, false
}

// PointerEvent is a single pointer sample in control-local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}
