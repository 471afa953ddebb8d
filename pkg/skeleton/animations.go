package skeleton

import (
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/graphics"
)

// AnimationKey is the key skeleton animations are attached under. Starting a
// new animation replaces whatever runs under this key.
const AnimationKey = "skeletonAnimation"

const fadeKey = "skeletonFade"

// Animation describes a timed change of a shape's presentation. Each track is
// optional; a nil track leaves that property at its model value.
type Animation struct {
	Duration time.Duration
	// Curve eases each pass. Nil means linear.
	Curve func(float64) float64
	// Repeat runs the animation until it is removed.
	Repeat bool
	// Autoreverse plays every pass forward and then backward.
	Autoreverse bool

	Opacity *animation.Tween[float64]
	Start   *animation.Tween[graphics.Offset]
	End     *animation.Tween[graphics.Offset]
}

// AnimationFactory builds the animation for one shape. Layers call it once
// for every leaf shape they animate.
type AnimationFactory func(shape *Shape) *Animation

// DefaultPulseDuration is one half-cycle of the solid pulse.
const DefaultPulseDuration = time.Second

// PulseAnimation fades a shape between full opacity and minOpacity and back,
// forever.
func PulseAnimation(duration time.Duration, minOpacity float64) AnimationFactory {
	if duration <= 0 {
		duration = DefaultPulseDuration
	}
	return func(*Shape) *Animation {
		return &Animation{
			Duration:    duration,
			Curve:       animation.EaseInOut,
			Repeat:      true,
			Autoreverse: true,
			Opacity:     animation.TweenFloat64(1, minOpacity),
		}
	}
}

// DefaultAnimation maps a skeleton type to its stock animation. Solid
// skeletons pulse and animated gradients slide with the reading direction.
// Static gradients have no default; ok is false for them.
func DefaultAnimation(t Type, isRightToLeft bool) (f AnimationFactory, ok bool) {
	switch t {
	case Solid:
		return PulseAnimation(DefaultPulseDuration, 0.55), true
	case AnimatedGradient:
		if isRightToLeft {
			return RightLeft.SlidingAnimation(DefaultSlideDuration), true
		}
		return LeftRight.SlidingAnimation(DefaultSlideDuration), true
	default:
		return nil, false
	}
}

// fadeOut is the cross-dissolve removal animation.
func fadeOut(d time.Duration) *Animation {
	return &Animation{
		Duration: d,
		Curve:    animation.LinearCurve,
		Opacity:  animation.TweenFloat64(1, 0),
	}
}

// runningAnimation binds an Animation to the controller driving it.
type runningAnimation struct {
	anim       *Animation
	controller *animation.AnimationController
	completion func()
	done       bool
}

func startAnimation(anim *Animation, onFinish func()) *runningAnimation {
	ra := &runningAnimation{anim: anim}
	c := animation.NewAnimationController(anim.Duration)
	if anim.Curve != nil {
		c.Curve = anim.Curve
	}
	ra.controller = c

	switch {
	case anim.Repeat:
		c.Repeat(anim.Autoreverse)
	case anim.Autoreverse:
		c.AddStatusListener(func(status animation.AnimationStatus) {
			switch status {
			case animation.AnimationCompleted:
				c.Reverse()
			case animation.AnimationDismissed:
				onFinish()
			}
		})
		c.Forward()
	default:
		c.AddStatusListener(func(status animation.AnimationStatus) {
			if status == animation.AnimationCompleted {
				onFinish()
			}
		})
		c.Forward()
	}
	return ra
}

// finish stops the controller and fires the completion at most once.
func (ra *runningAnimation) finish() {
	if ra.done {
		return
	}
	ra.done = true
	ra.controller.Dispose()
	if ra.completion != nil {
		ra.completion()
	}
}

func (ra *runningAnimation) opacity() (float64, bool) {
	if ra.anim.Opacity == nil {
		return 0, false
	}
	return ra.anim.Opacity.Transform(ra.controller), true
}

func (ra *runningAnimation) points(model Points) Points {
	if ra.anim.Start != nil {
		model.Start = ra.anim.Start.Transform(ra.controller)
	}
	if ra.anim.End != nil {
		model.End = ra.anim.End.Transform(ra.controller)
	}
	return model
}
