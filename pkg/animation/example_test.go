package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/graphics"
	skeletontest "github.com/go-drift/skeleton/pkg/testing"
)

// This example fades a value out while a fake clock drives the frames.
func ExampleAnimationController() {
	clk := skeletontest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	controller := animation.NewAnimationController(100 * time.Millisecond)
	defer controller.Dispose()
	fade := animation.TweenFloat64(1, 0)

	controller.Forward()
	for i := 0; i < 4; i++ {
		skeletontest.Pump(clk, 25*time.Millisecond)
		fmt.Printf("%.2f\n", fade.Transform(controller))
	}
	fmt.Println(controller.Status())
	// Output:
	// 0.75
	// 0.50
	// 0.25
	// 0.00
	// completed
}

// This example slides a gradient start point the way an animated skeleton
// does, repeating until stopped.
func ExampleAnimationController_Repeat() {
	clk := skeletontest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	controller := animation.NewAnimationController(time.Second)
	defer controller.Dispose()
	start := animation.TweenOffset(graphics.Offset{X: -1, Y: 0.5}, graphics.Offset{X: 1, Y: 0.5})

	controller.Repeat(false)
	skeletontest.Pump(clk, 500*time.Millisecond)
	fmt.Printf("x=%.1f\n", start.Transform(controller).X)
	skeletontest.Pump(clk, 500*time.Millisecond)
	fmt.Println(controller.Status(), controller.IsRepeating())
	// Output:
	// x=0.0
	// forward true
}

// This example shows how to build a custom easing curve.
func ExampleCubicBezier() {
	curve := animation.CubicBezier(0.42, 0, 0.58, 1)
	fmt.Printf("%.2f %.2f %.2f\n", curve(0), curve(0.5), curve(1))
	// Output:
	// 0.00 0.50 1.00
}
