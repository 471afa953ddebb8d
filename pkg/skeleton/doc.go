// Package skeleton renders placeholder "skeleton" overlays over views whose
// content is still loading.
//
// A [Layer] covers a host view with a mask [Shape]. Solid skeletons paint a
// single color and pulse; gradient skeletons paint a palette produced by
// [DeriveGradient] or a [ColorGradient], and animated gradients slide it
// across the mask. Hosts that display text also implement [TextMetrics], and
// the layer splits the mask into one bar per line with [ReconcileLines].
//
// Layers never own their host. They hold a [HostRef] obtained from a
// [HostRegistry] and fall back to the last known geometry once the host is
// unregistered.
//
// Animations are frame driven through the animation package. Call
// animation.StepTickers once per frame, then paint the layer onto any
// graphics.Canvas:
//
//	registry := skeleton.NewHostRegistry()
//	ref := registry.Register(view)
//	layer, err := skeleton.NewLayerFromConfig(skeleton.NewConfig(
//		skeleton.AnimatedGradient,
//		skeleton.DeriveGradient(skeleton.DefaultTint, nil, true),
//	), ref)
//	if err != nil {
//		return err
//	}
//	layer.Start(nil, nil)
//	...
//	layer.RemoveLayer(skeleton.CrossDissolve(250*time.Millisecond), done)
package skeleton
