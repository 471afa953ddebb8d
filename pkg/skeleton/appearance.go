package skeleton

import (
	"sync"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// DefaultTint is the stock skeleton color.
var DefaultTint = graphics.RGB(0xEC, 0xF0, 0xF1)

// Appearance holds process-wide defaults consulted when a host does not
// provide a value itself.
type Appearance struct {
	// TintColor fills solid skeletons when no color is given.
	TintColor graphics.Color
	// Gradient fills gradient skeletons when no palette is given.
	Gradient ColorGradient
	// MultilineHeight is the bar height used when the host reports none.
	MultilineHeight float64
	// MultilineSpacing is the gap between bars.
	MultilineSpacing float64
	// MultilineCornerRadius rounds each bar.
	MultilineCornerRadius float64
	// LastLineFillPercent is the width fraction of the last bar, in (0, 1].
	LastLineFillPercent float64
	// RenderSingleLineAsView fills a one-line text host with a single block
	// instead of a bar.
	RenderSingleLineAsView bool
}

// DefaultAppearance returns the stock defaults.
func DefaultAppearance() Appearance {
	return Appearance{
		TintColor:             DefaultTint,
		Gradient:              NewColorGradient(DefaultTint, WithRepeat(true)),
		MultilineHeight:       15,
		MultilineSpacing:      10,
		MultilineCornerRadius: 0,
		LastLineFillPercent:   0.7,
	}
}

var (
	appearanceMu sync.RWMutex
	appearance   = DefaultAppearance()
)

// CurrentAppearance returns the active defaults.
func CurrentAppearance() Appearance {
	appearanceMu.RLock()
	defer appearanceMu.RUnlock()
	return appearance
}

// SetAppearance replaces the active defaults and returns the previous ones.
func SetAppearance(a Appearance) Appearance {
	appearanceMu.Lock()
	defer appearanceMu.Unlock()
	prev := appearance
	appearance = a
	return prev
}
