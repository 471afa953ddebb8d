package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Painter is anything that paints itself onto a canvas, such as a skeleton
// shape tree.
type Painter interface {
	Paint(canvas graphics.Canvas)
}

// RecordOps paints p onto a serializing canvas and returns the operations.
func RecordOps(p Painter, size graphics.Size) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	p.Paint(canvas)
	return canvas.ops
}

// FilterOps returns only the operations with the given name.
func FilterOps(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
// Translations are folded into absolute rects so assertions can compare
// positions directly.
type serializingCanvas struct {
	ops   []DisplayOp
	size  graphics.Size
	dx    float64
	dy    float64
	saved []graphics.Offset
}

func (c *serializingCanvas) Save() {
	c.saved = append(c.saved, graphics.Offset{X: c.dx, Y: c.dy})
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.saved = append(c.saved, graphics.Offset{X: c.dx, Y: c.dy})
	c.ops = append(c.ops, DisplayOp{
		Op:     "saveLayerAlpha",
		Params: sortedMap("bounds", serializeRect(bounds.Translate(c.dx, c.dy)), "alpha", round2(alpha)),
	})
}

func (c *serializingCanvas) Restore() {
	if n := len(c.saved); n > 0 {
		c.dx, c.dy = c.saved[n-1].X, c.saved[n-1].Y
		c.saved = c.saved[:n-1]
	}
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: withPaint(sortedMap("rect", serializeRect(rect.Translate(c.dx, c.dy))), paint),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: withPaint(sortedMap(
			"rect", serializeRect(rrect.Rect.Translate(c.dx, c.dy)),
			"radius", round2(rrect.UniformRadius()),
		), paint),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

func withPaint(params map[string]any, paint graphics.Paint) map[string]any {
	if paint.Gradient.IsValid() {
		stops := paint.Gradient.Stops()
		colors := make([]string, len(stops))
		for i, s := range stops {
			colors[i] = serializeColor(s.Color)
		}
		params["gradient"] = colors
		return params
	}
	params["color"] = serializeColor(paint.Color)
	return params
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
