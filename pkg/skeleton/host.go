package skeleton

import (
	"sync"

	"github.com/google/uuid"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// Geometry is what every host view must report.
type Geometry interface {
	// ContentBounds is the largest rectangle the skeleton may cover.
	ContentBounds() graphics.Rect
	CornerRadius() float64
	IsRightToLeft() bool
}

// TextMetrics is implemented by hosts that display lines of text.
type TextMetrics interface {
	// LineCount is the configured number of lines. Zero or negative means
	// "as many as fit".
	LineCount() int
	// LineHeight reports the bar height, if the host defines one.
	LineHeight() (float64, bool)
	// LastLineFillPercent is the width fraction of the last bar.
	LastLineFillPercent() float64
	LineSpacing() float64
	ContentPadding() graphics.EdgeInsets
}

// VerticalTextContainer marks scrolling multi-line text hosts. Gradient
// colors are applied in reverse order for them.
type VerticalTextContainer interface {
	IsVerticalTextContainer() bool
}

// LineCornerRadius lets text hosts round their bars independently of the
// appearance default.
type LineCornerRadius interface {
	LineCornerRadius() float64
}

// HostRegistry owns host views on behalf of a view hierarchy. Layers hold a
// HostRef into the registry, so unregistering a host is all it takes for
// layers to see it as gone.
type HostRegistry struct {
	mu    sync.RWMutex
	hosts map[uuid.UUID]Geometry
}

// NewHostRegistry returns an empty registry.
func NewHostRegistry() *HostRegistry {
	return &HostRegistry{hosts: make(map[uuid.UUID]Geometry)}
}

// Register adds a host and returns a reference to it.
func (r *HostRegistry) Register(host Geometry) HostRef {
	id := uuid.New()
	r.mu.Lock()
	r.hosts[id] = host
	r.mu.Unlock()
	return HostRef{id: id, registry: r}
}

// Unregister drops the host. References to it stop resolving.
func (r *HostRegistry) Unregister(ref HostRef) {
	if ref.registry != r {
		return
	}
	r.mu.Lock()
	delete(r.hosts, ref.id)
	r.mu.Unlock()
}

// Len returns the number of registered hosts.
func (r *HostRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hosts)
}

// HostRef is a non-owning handle to a registered host.
// The zero HostRef never resolves.
type HostRef struct {
	id       uuid.UUID
	registry *HostRegistry
}

// ID returns the registry key.
func (h HostRef) ID() uuid.UUID {
	return h.id
}

// IsZero reports whether the reference was never registered.
func (h HostRef) IsZero() bool {
	return h.registry == nil
}

// Resolve returns the host if it is still registered.
func (h HostRef) Resolve() (Geometry, bool) {
	if h.registry == nil {
		return nil, false
	}
	h.registry.mu.RLock()
	defer h.registry.mu.RUnlock()
	host, ok := h.registry.hosts[h.id]
	return host, ok
}
