package preview

import (
	"image"
	"math"

	"github.com/go-drift/skeleton/pkg/config"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

// Session owns one previewed layer and the static host it covers.
type Session struct {
	resolved *config.Resolved
	registry *skeleton.HostRegistry
	host     skeleton.HostRef
	layer    *skeleton.Layer
}

// NewSession installs the resolved appearance and builds a layer over the
// resolved host. Animated configs start animating immediately.
func NewSession(r *config.Resolved) (*Session, error) {
	s := &Session{resolved: r, registry: skeleton.NewHostRegistry()}
	if err := s.Rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild drops the current layer without a transition and builds a new one.
func (s *Session) Rebuild() error {
	if s.layer != nil {
		s.layer.RemoveLayer(skeleton.TransitionNone, nil)
	}
	if !s.host.IsZero() {
		s.registry.Unregister(s.host)
	}

	skeleton.SetAppearance(s.resolved.Appearance)
	s.host = s.registry.Register(s.resolved.Host)
	layer, err := skeleton.NewLayerFromConfig(s.resolved.Config, s.host)
	if err != nil {
		s.layer = nil
		return err
	}
	s.layer = layer
	if s.resolved.Config.Animated {
		layer.Start(s.resolved.Config.Animation, nil)
	}
	return nil
}

// Reload replaces the configuration and rebuilds.
func (s *Session) Reload(r *config.Resolved) error {
	s.resolved = r
	return s.Rebuild()
}

// Layer returns the current layer. It is nil after a failed rebuild.
func (s *Session) Layer() *skeleton.Layer { return s.layer }

// Config returns the active layer configuration.
func (s *Session) Config() skeleton.Config { return s.resolved.Config }

// Size is the pixel size needed to hold the host bounds.
func (s *Session) Size() (width, height int) {
	b := s.resolved.Host.ContentBounds()
	return int(math.Ceil(b.Right)), int(math.Ceil(b.Bottom))
}

// Image rasterizes the layer at its current animation frame.
func (s *Session) Image() *image.RGBA {
	w, h := s.Size()
	if s.layer == nil {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return Rasterize(s.layer, w, h)
}

// Lines returns the requested line count of a text host, or false for views.
func (s *Session) Lines() (int, bool) {
	label, ok := s.resolved.Host.(*config.StaticLabel)
	if !ok {
		return 0, false
	}
	return label.Lines, true
}

// AdjustLines changes the requested line count of a text host by delta and
// lays the layer out again. Zero means as many lines as fit.
func (s *Session) AdjustLines(delta int) bool {
	label, ok := s.resolved.Host.(*config.StaticLabel)
	if !ok {
		return false
	}
	label.Lines = max(0, label.Lines+delta)
	if s.layer != nil {
		s.layer.LayoutIfNeeded()
	}
	return true
}
