// Package slidertest provides helpers for exercising a range slider
// controller with simulated pointer gestures.
//
// A [Tester] wraps a controller, allocates pointer ids, tracks pointer
// positions so move and up events carry deltas, and records every value
// change the controller raises:
//
//	tester := slidertest.New(controller)
//	if err := tester.DragThumb(rangeslider.ThumbUpper, graphics.Offset{X: -40}); err != nil {
//	    t.Fatal(err)
//	}
//	last := tester.Changes[len(tester.Changes)-1]
package slidertest
