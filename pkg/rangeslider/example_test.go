package rangeslider_test

import (
	"fmt"

	"github.com/go-drift/rangeslider/pkg/graphics"
	"github.com/go-drift/rangeslider/pkg/rangeslider"
)

// This example drags the upper thumb 54px to the left.
func ExampleController() {
	cfg := rangeslider.DefaultConfig()
	controller, err := rangeslider.NewController(cfg)
	if err != nil {
		panic(err)
	}

	controller.AddListener(func(change rangeslider.ValueChange) {
		fmt.Printf("%s: %.2f-%.2f\n", change.Thumb, change.Lower, change.Upper)
	})

	start := controller.ThumbFrame(rangeslider.ThumbUpper).Center()
	if controller.BeginDrag(start) {
		controller.UpdateDrag(start.Add(graphics.Offset{X: -27}))
		controller.UpdateDrag(start.Add(graphics.Offset{X: -54}))
		controller.EndDrag()
	}
	// Output:
	// upper: 0.20-0.70
	// upper: 0.20-0.60
}

// This example shows a renderer draining the dirty set.
func ExampleController_TakeDirty() {
	controller, _ := rangeslider.NewController(rangeslider.DefaultConfig())
	fmt.Println(controller.TakeDirty())

	controller.SetLineHeight(4)
	fmt.Println(controller.TakeDirty())
	fmt.Println(controller.TakeDirty())
	// Output:
	// track|lower|upper
	// track|upper
	// none
}
