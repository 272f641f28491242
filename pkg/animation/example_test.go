package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/quickly/pkg/animation"
	"github.com/go-drift/quickly/pkg/geometry"
)

// This example shows how to run an animation and drive it frame by frame.
func ExampleRunner() {
	runner := animation.NewRunner(nil)
	runner.Run(animation.Animation{
		Duration: 100 * time.Millisecond,
		Processing: func(progress float64) {
			fmt.Printf("progress %.2f\n", progress)
		},
		Completion: func() {
			fmt.Println("done")
		},
	})

	// Frames are normally driven by the display refresh.
	for runner.IsAnimating() {
		runner.Step(50 * time.Millisecond)
	}

	// Output:
	// progress 0.50
	// progress 1.00
	// done
}

// This example shows that a zero duration completes synchronously.
func ExampleRunner_zeroDuration() {
	runner := animation.NewRunner(nil)
	runner.Run(animation.Animation{
		Processing: func(progress float64) { fmt.Printf("progress %.0f\n", progress) },
		Completion: func() { fmt.Println("done") },
	})
	fmt.Println("animating:", runner.IsAnimating())

	// Output:
	// progress 1
	// done
	// animating: false
}

// This example shows how to use a tween as a processing callback.
func ExampleTween() {
	offset := animation.TweenPoint(geometry.Point{}, geometry.Point{X: 0, Y: -200})
	runner := animation.NewRunner(nil)
	runner.Run(animation.Animation{
		Duration: 100 * time.Millisecond,
		Processing: offset.Processing(func(p geometry.Point) {
			fmt.Printf("offset y=%.0f\n", p.Y)
		}),
	})
	runner.Step(25 * time.Millisecond)
	runner.Step(75 * time.Millisecond)

	// Output:
	// offset y=-50
	// offset y=-200
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Create a custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	// The curve transforms linear progress to eased progress
	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
