// Package testing provides helpers for testing skeleton layers without a
// real frame loop.
//
// # Animation time
//
// Install a fake clock, then pump frames to advance animations:
//
//	func TestFade(t *testing.T) {
//	    clk := skeletontest.InstallFakeClock(t)
//	    layer.RemoveLayer(skeleton.CrossDissolve(250*time.Millisecond), done)
//	    skeletontest.Pump(clk, 250*time.Millisecond)
//	}
//
// # Display lists
//
// Serialize what a shape tree paints and compare it against expectations:
//
//	ops := skeletontest.RecordOps(layer, graphics.Size{Width: 100, Height: 40})
//	rects := skeletontest.FilterOps(ops, "drawRRect")
package testing

import "errors"

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")
