package skeleton

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/graphics"
)

// Points is a gradient vector in unit coordinates of the shape it fills:
// (0,0) is the top-left corner and (1,1) the bottom-right.
type Points struct {
	Start graphics.Offset
	End   graphics.Offset
}

// DefaultPoints is the horizontal left-to-right vector used when no
// direction is configured.
var DefaultPoints = Points{
	Start: graphics.Offset{X: 0, Y: 0.5},
	End:   graphics.Offset{X: 1, Y: 0.5},
}

// Direction is the flow of a gradient across the mask.
type Direction int

const (
	LeftRight Direction = iota
	RightLeft
	TopBottom
	BottomTop
	TopLeftBottomRight
	BottomRightTopLeft
)

var directionNames = [...]string{
	LeftRight:          "leftRight",
	RightLeft:          "rightLeft",
	TopBottom:          "topBottom",
	BottomTop:          "bottomTop",
	TopLeftBottomRight: "topLeftBottomRight",
	BottomRightTopLeft: "bottomRightTopLeft",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection parses a direction name. Matching ignores case.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return LeftRight, fmt.Errorf("unknown gradient direction %q", s)
}

// Points returns the resting gradient vector for a static gradient.
func (d Direction) Points() Points {
	switch d {
	case RightLeft:
		return Points{Start: pt(1, 0.5), End: pt(0, 0.5)}
	case TopBottom:
		return Points{Start: pt(0.5, 0), End: pt(0.5, 1)}
	case BottomTop:
		return Points{Start: pt(0.5, 1), End: pt(0.5, 0)}
	case TopLeftBottomRight:
		return Points{Start: pt(0, 0), End: pt(1, 1)}
	case BottomRightTopLeft:
		return Points{Start: pt(1, 1), End: pt(0, 0)}
	default:
		return DefaultPoints
	}
}

// Trajectory returns where the gradient points travel during one slide.
// The gradient starts one full length before the shape and ends one full
// length past it, so each pass sweeps the highlight completely across.
func (d Direction) Trajectory() (from, to Points) {
	switch d {
	case RightLeft:
		return Points{Start: pt(1, 0.5), End: pt(2, 0.5)}, Points{Start: pt(-1, 0.5), End: pt(0, 0.5)}
	case TopBottom:
		return Points{Start: pt(0.5, -1), End: pt(0.5, 0)}, Points{Start: pt(0.5, 1), End: pt(0.5, 2)}
	case BottomTop:
		return Points{Start: pt(0.5, 1), End: pt(0.5, 2)}, Points{Start: pt(0.5, -1), End: pt(0.5, 0)}
	case TopLeftBottomRight:
		return Points{Start: pt(-1, -1), End: pt(0, 0)}, Points{Start: pt(1, 1), End: pt(2, 2)}
	case BottomRightTopLeft:
		return Points{Start: pt(1, 1), End: pt(2, 2)}, Points{Start: pt(-1, -1), End: pt(0, 0)}
	default:
		return Points{Start: pt(-1, 0.5), End: pt(0, 0.5)}, Points{Start: pt(1, 0.5), End: pt(2, 0.5)}
	}
}

// DefaultSlideDuration is the length of one sliding pass.
const DefaultSlideDuration = 1500 * time.Millisecond

// SlidingAnimation returns a factory for a repeating slide along d.
// A non-positive duration uses DefaultSlideDuration.
func (d Direction) SlidingAnimation(duration time.Duration) AnimationFactory {
	if duration <= 0 {
		duration = DefaultSlideDuration
	}
	from, to := d.Trajectory()
	return func(*Shape) *Animation {
		return &Animation{
			Duration: duration,
			Curve:    animation.LinearCurve,
			Repeat:   true,
			Start:    animation.TweenOffset(from.Start, to.Start),
			End:      animation.TweenOffset(from.End, to.End),
		}
	}
}

func pt(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}
