package graphics

import (
	"image/color"
	"testing"
)

func TestColorComponents(t *testing.T) {
	c := RGBA8(0x11, 0x22, 0x33, 0x44)
	r, g, b, a := c.Components()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Fatalf("Components() = %x %x %x %x", r, g, b, a)
	}
	if got := c.Hex(); got != "#112233" {
		t.Errorf("Hex() = %q, want #112233", got)
	}
	if got := c.String(); got != "#44112233" {
		t.Errorf("String() = %q, want #44112233", got)
	}
}

func TestFromStdColor(t *testing.T) {
	got := FromStdColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if got != RGB(10, 20, 30) {
		t.Errorf("FromStdColor = %v, want %v", got, RGB(10, 20, 30))
	}
}

func TestRectDeflate(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50)
	got := r.Deflate(EdgeInsets{Left: 10, Top: 5, Right: 20, Bottom: 5})
	want := Rect{Left: 10, Top: 5, Right: 80, Bottom: 45}
	if !got.Equal(want) {
		t.Errorf("Deflate = %+v, want %+v", got, want)
	}

	collapsed := RectFromLTWH(0, 0, 10, 10).Deflate(EdgeInsetsAll(20))
	if collapsed.Width() != 0 || collapsed.Height() != 0 {
		t.Errorf("expected collapsed rect, got %+v", collapsed)
	}
}

func TestEvenStops(t *testing.T) {
	tests := []struct {
		name   string
		colors []Color
		want   []float64
	}{
		{"empty", nil, nil},
		{"single", []Color{ColorRed}, []float64{0}},
		{"pair", []Color{ColorRed, ColorBlue}, []float64{0, 1}},
		{"triple", []Color{ColorRed, ColorGreen, ColorBlue}, []float64{0, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops := EvenStops(tt.colors)
			if len(stops) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(stops), len(tt.want))
			}
			for i, s := range stops {
				if !floatEqual(s.Position, tt.want[i]) {
					t.Errorf("stop %d position = %v, want %v", i, s.Position, tt.want[i])
				}
			}
		})
	}
}

func TestGradientColorAt(t *testing.T) {
	g := NewLinearGradient(Offset{X: 0}, Offset{X: 100}, EvenStops([]Color{ColorBlack, ColorWhite}))
	if !g.IsValid() {
		t.Fatal("expected valid gradient")
	}
	if got := g.ColorAt(Offset{X: -10}); got != ColorBlack {
		t.Errorf("before start = %v, want black", got)
	}
	if got := g.ColorAt(Offset{X: 200}); got != ColorWhite {
		t.Errorf("past end = %v, want white", got)
	}
	mid := g.ColorAt(Offset{X: 50})
	r, _, _, a := mid.Components()
	if r < 126 || r > 129 || a != 255 {
		t.Errorf("midpoint = %v, want ~50%% grey", mid)
	}
}

func TestGradientIsValid(t *testing.T) {
	var nilGradient *Gradient
	if nilGradient.IsValid() {
		t.Error("nil gradient should be invalid")
	}
	single := NewLinearGradient(Offset{}, Offset{X: 1}, EvenStops([]Color{ColorRed}))
	if single.IsValid() {
		t.Error("single-stop gradient should be invalid")
	}
}

func TestPictureRecorderReplay(t *testing.T) {
	rec := &PictureRecorder{}
	canvas := rec.BeginRecording(Size{Width: 10, Height: 10})
	canvas.Save()
	canvas.Translate(2, 2)
	canvas.DrawRect(RectFromLTWH(0, 0, 4, 4), SolidPaint(ColorRed))
	canvas.Restore()
	list := rec.EndRecording()

	if list.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", list.Len())
	}

	raster := NewRasterCanvas(10, 10)
	list.Paint(raster)
	img := raster.Image()
	if got := FromStdColor(img.At(4, 4)); got != ColorRed {
		t.Errorf("pixel (4,4) = %v, want red", got)
	}
	if got := FromStdColor(img.At(0, 0)); got != ColorTransparent {
		t.Errorf("pixel (0,0) = %v, want transparent", got)
	}
}

func TestRasterCanvasLayerAlpha(t *testing.T) {
	c := NewRasterCanvas(4, 4)
	c.SaveLayerAlpha(RectFromLTWH(0, 0, 4, 4), 0.5)
	c.DrawRect(RectFromLTWH(0, 0, 4, 4), SolidPaint(ColorWhite))
	c.Restore()

	_, _, _, a := FromStdColor(c.Image().At(1, 1)).Components()
	if a < 120 || a > 135 {
		t.Errorf("alpha = %d, want ~128", a)
	}
}

func TestRasterCanvasGradient(t *testing.T) {
	c := NewRasterCanvas(100, 10)
	g := NewLinearGradient(Offset{X: 0}, Offset{X: 100}, EvenStops([]Color{ColorBlack, ColorWhite}))
	c.DrawRect(RectFromLTWH(0, 0, 100, 10), Paint{Gradient: g})
	img := c.Image()

	left, _, _, _ := FromStdColor(img.At(1, 5)).Components()
	right, _, _, _ := FromStdColor(img.At(98, 5)).Components()
	if left >= right {
		t.Errorf("expected gradient to brighten left to right, got %d -> %d", left, right)
	}
}
