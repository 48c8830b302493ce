// Package rangeslider implements the interaction and geometry engine of a
// dual-thumb range slider.
//
// A [Controller] owns the value domain (minimum, maximum), the selected
// sub-range (lower, upper), the layout dimensions supplied by the host, and
// the state of an in-progress drag. It exposes:
//
//   - value mutators that validate configuration and clamp values,
//   - geometry queries for a renderer ([Controller.Geometry]),
//   - drag lifecycle calls matching a pointer gesture
//     ([Controller.BeginDrag], [Controller.UpdateDrag], [Controller.EndDrag]),
//   - value-changed listeners raised on every drag update.
//
// The controller never draws. Each mutation records which parts of the
// control need repainting in a [Dirty] set; a renderer drains it with
// [Controller.TakeDirty] and decides how to batch repaints.
//
// Controllers are not safe for concurrent use. Call them from the goroutine
// that delivers pointer events.
//
// # Drag states
//
//	             BeginDrag (hit lower, lower drag allowed)
//	   ┌───────────────────────────────────────────► DragLower
//	DragIdle                                             │
//	   │  BeginDrag (hit upper)                          │ EndDrag / CancelDrag
//	   └───────────────────────────────────────────► DragUpper
//	   ▲                                                 │
//	   └─────────────────────────────────────────────────┘
//
// UpdateDrag keeps the current state and moves the active thumb by the
// horizontal pointer displacement since the previous sample.
package rangeslider
