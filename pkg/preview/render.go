// Package preview renders skeleton layers to raster images and to the
// terminal, and drives them interactively with bubbletea.
package preview

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// Painter is anything that draws itself onto a canvas, usually a *skeleton.Layer.
type Painter interface {
	Paint(canvas graphics.Canvas)
}

// Rasterize paints p onto a transparent width×height image.
func Rasterize(p Painter, width, height int) *image.RGBA {
	canvas := graphics.NewRasterCanvas(width, height)
	p.Paint(canvas)
	return canvas.Image()
}

// Fit scales img to the largest size that fits maxWidth×maxHeight while
// keeping its aspect ratio.
func Fit(img image.Image, maxWidth, maxHeight int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || maxWidth <= 0 || maxHeight <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	scale := math.Min(float64(maxWidth)/float64(b.Dx()), float64(maxHeight)/float64(b.Dy()))
	return Scale(img, scale)
}

// Scale resizes img by factor using bilinear interpolation.
func Scale(img image.Image, factor float64) *image.RGBA {
	b := img.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*factor)))
	h := max(1, int(math.Round(float64(b.Dy())*factor)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// HalfBlocks renders img as rows of upper half blocks, two pixel rows per
// line of text. Translucent pixels are composited over background.
func HalfBlocks(img *image.RGBA, background graphics.Color) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := over(img.RGBAAt(x, y), background)
			bottom := background
			if y+1 < b.Max.Y {
				bottom = over(img.RGBAAt(x, y+1), background)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

// over composites a premultiplied pixel onto an opaque background.
func over(c color.RGBA, bg graphics.Color) graphics.Color {
	br, bgG, bb, _ := bg.Components()
	inv := 255 - uint32(c.A)
	r := uint32(c.R) + uint32(br)*inv/255
	g := uint32(c.G) + uint32(bgG)*inv/255
	bl := uint32(c.B) + uint32(bb)*inv/255
	return graphics.RGB(uint8(min(r, 255)), uint8(min(g, 255)), uint8(min(bl, 255)))
}
