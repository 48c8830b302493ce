package rangeslider_test

import (
	"testing"

	"github.com/go-drift/rangeslider/pkg/graphics"
	"github.com/go-drift/rangeslider/pkg/rangeslider"
	"github.com/go-drift/rangeslider/pkg/slidertest"
)

func newPointerTester(t *testing.T) *slidertest.Tester {
	t.Helper()
	c, err := rangeslider.NewController(rangeslider.DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return slidertest.New(c)
}

func TestHandlePointerLifecycle(t *testing.T) {
	tester := newPointerTester(t)
	c := tester.Controller
	start, err := tester.ThumbCenter(rangeslider.ThumbUpper)
	if err != nil {
		t.Fatal(err)
	}

	if err := tester.SendPointerDown(start, 1); err != nil {
		t.Fatal(err)
	}
	if c.State() != rangeslider.DragUpper {
		t.Fatalf("State = %v, want dragging-upper", c.State())
	}
	if err := tester.SendPointerMove(start.Add(graphics.Offset{X: -27}), 1); err != nil {
		t.Fatal(err)
	}
	if err := tester.SendPointerUp(start.Add(graphics.Offset{X: -27}), 1); err != nil {
		t.Fatal(err)
	}
	if c.State() != rangeslider.DragIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	if len(tester.Changes) != 1 {
		t.Fatalf("Changes = %d, want 1", len(tester.Changes))
	}
	if got := tester.Changes[0]; got.Thumb != rangeslider.ThumbUpper || got.Upper >= 0.8 {
		t.Errorf("change = %+v", got)
	}
}

func TestHandlePointerIgnoresSecondPointer(t *testing.T) {
	tester := newPointerTester(t)
	c := tester.Controller
	start, _ := tester.ThumbCenter(rangeslider.ThumbUpper)

	if err := tester.SendPointerDown(start, 1); err != nil {
		t.Fatal(err)
	}
	// A second finger moving and lifting must not affect the active drag.
	if err := tester.SendPointerDown(start, 2); err != nil {
		t.Fatal(err)
	}
	if err := tester.SendPointerMove(start.Add(graphics.Offset{X: -100}), 2); err != nil {
		t.Fatal(err)
	}
	if err := tester.SendPointerUp(start, 2); err != nil {
		t.Fatal(err)
	}
	if c.State() != rangeslider.DragUpper {
		t.Errorf("State = %v, want dragging-upper", c.State())
	}
	if c.Upper() != 0.8 || len(tester.Changes) != 0 {
		t.Errorf("second pointer moved the thumb: upper=%v changes=%d", c.Upper(), len(tester.Changes))
	}

	if err := tester.SendPointerCancel(start, 1); err != nil {
		t.Fatal(err)
	}
	if c.State() != rangeslider.DragIdle {
		t.Errorf("State = %v after cancel, want idle", c.State())
	}
}

func TestHandlePointerMissIsIgnored(t *testing.T) {
	tester := newPointerTester(t)
	if err := tester.DragFrom(graphics.Offset{X: 150, Y: 25}, graphics.Offset{X: 40}); err != nil {
		t.Fatal(err)
	}
	c := tester.Controller
	if c.Lower() != 0.2 || c.Upper() != 0.8 {
		t.Errorf("values = %v, %v; want unchanged", c.Lower(), c.Upper())
	}
	if len(tester.Changes) != 0 {
		t.Errorf("Changes = %d, want 0", len(tester.Changes))
	}
}
