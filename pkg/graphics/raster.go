package graphics

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// RasterCanvas draws onto an in-memory RGBA image using an anti-aliased
// vector rasterizer. It backs PNG export and terminal previews where no GPU
// surface exists.
type RasterCanvas struct {
	dst   *image.RGBA
	tx    float64
	ty    float64
	stack []rasterState
}

type rasterState struct {
	tx, ty float64
	// parent is set for states pushed by SaveLayerAlpha.
	parent *image.RGBA
	alpha  float64
}

// NewRasterCanvas creates a canvas backed by a transparent image of the given size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &RasterCanvas{dst: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the rendered image. Unbalanced SaveLayerAlpha calls are
// flattened first.
func (c *RasterCanvas) Image() *image.RGBA {
	for len(c.stack) > 0 {
		c.Restore()
	}
	return c.dst
}

// Clear fills the whole canvas with color.
func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, rasterState{tx: c.tx, ty: c.ty})
}

func (c *RasterCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.stack = append(c.stack, rasterState{tx: c.tx, ty: c.ty, parent: c.dst, alpha: clamp01(alpha)})
	c.dst = image.NewRGBA(c.dst.Bounds())
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	state := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if state.parent != nil {
		mask := image.NewUniform(color.Alpha{A: alpha01ToByte(state.alpha)})
		draw.DrawMask(state.parent, state.parent.Bounds(), c.dst, image.Point{}, mask, image.Point{}, draw.Over)
		c.dst = state.parent
	}
	c.tx, c.ty = state.tx, state.ty
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.tx += dx
	c.ty += dy
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	c.DrawRRect(RRectFromRectAndRadius(rect, Radius{}), paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	if rrect.Rect.IsEmpty() {
		return
	}
	b := c.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	r := rrect.Rect.Translate(c.tx, c.ty)
	radius := math.Min(rrect.UniformRadius(), math.Min(r.Width(), r.Height())/2)
	roundedRectPath(z, r, radius)

	var src image.Image
	if paint.Gradient.IsValid() {
		src = gradientImage{gradient: paint.Gradient, dx: c.tx, dy: c.ty}
	} else {
		src = image.NewUniform(paint.Color.NRGBA())
	}
	z.Draw(c.dst, b, src, image.Point{})
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func roundedRectPath(z *vector.Rasterizer, r Rect, radius float64) {
	l, t, rt, bm := float32(r.Left), float32(r.Top), float32(r.Right), float32(r.Bottom)
	if radius <= 0 {
		z.MoveTo(l, t)
		z.LineTo(rt, t)
		z.LineTo(rt, bm)
		z.LineTo(l, bm)
		z.ClosePath()
		return
	}
	rad := float32(radius)
	k := float32(radius * kappa)
	z.MoveTo(l+rad, t)
	z.LineTo(rt-rad, t)
	z.CubeTo(rt-rad+k, t, rt, t+rad-k, rt, t+rad)
	z.LineTo(rt, bm-rad)
	z.CubeTo(rt, bm-rad+k, rt-rad+k, bm, rt-rad, bm)
	z.LineTo(l+rad, bm)
	z.CubeTo(l+rad-k, bm, l, bm-rad+k, l, bm-rad)
	z.LineTo(l, t+rad)
	z.CubeTo(l, t+rad-k, l+rad-k, t, l+rad, t)
	z.ClosePath()
}

// gradientImage is an unbounded image whose pixels sample a gradient in the
// canvas' local coordinate space.
type gradientImage struct {
	gradient *Gradient
	dx, dy   float64
}

func (g gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g gradientImage) At(x, y int) color.Color {
	p := Offset{X: float64(x) + 0.5 - g.dx, Y: float64(y) + 0.5 - g.dy}
	return g.gradient.ColorAt(p).NRGBA()
}
