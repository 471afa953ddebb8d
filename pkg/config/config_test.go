package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

const sampleYAML = `
version: v1.2.0
type: gradient
colors: ["#d8d8d8", "silver", "#fff"]
direction: topBottom
animated: true
transition:
  style: crossDissolve
  duration: 400ms
appearance:
  multilineHeight: 12
  lastLineFillPercent: 0.5
host:
  width: 200
  height: 80
  cornerRadius: 6
  lines: 3
  rtl: true
  padding:
    left: 4
`

const sampleTOML = `
type = "solid"
colors = ["tomato"]
animated = false

[transition]
style = "none"

[host]
width = 64
height = 32
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	f, err := Load(writeFile(t, "skeleton.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "gradient", f.Type)
	assert.Equal(t, []string{"#d8d8d8", "silver", "#fff"}, f.Colors)
	assert.Equal(t, "400ms", f.Transition.Duration)
	require.NotNil(t, f.Host.Lines)
	assert.Equal(t, 3, *f.Host.Lines)
	require.NotNil(t, f.Appearance.MultilineHeight)
	assert.InDelta(t, 12, *f.Appearance.MultilineHeight, 1e-9)
}

func TestLoadTOML(t *testing.T) {
	f, err := Load(writeFile(t, "skeleton.toml", sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "solid", f.Type)
	assert.Equal(t, []string{"tomato"}, f.Colors)
	assert.Equal(t, "none", f.Transition.Style)
	assert.Nil(t, f.Host.Lines)
}

func TestLoadErrorsCarryPath(t *testing.T) {
	path := writeFile(t, "skeleton.yaml", "type: [unterminated")
	_, err := Load(path)
	require.Error(t, err)

	var se *errors.SkeletonError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, errors.KindConfig, se.Kind)
	assert.Equal(t, path, se.Path)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestValidateReportsFieldPath(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
		tag   string
	}{
		{"missing type", "colors: [red]", "type", "required"},
		{"unknown type", "type: shimmer", "type", "skeleton_type"},
		{"bad color", "type: solid\ncolors: [red, '#zz']", "colors[1]", "color"},
		{"bad direction", "type: gradient\ndirection: sideways", "direction", "direction"},
		{"bad version", "type: solid\nversion: v2.0.0", "version", "semver_v1"},
		{"bad duration", "type: solid\ntransition: {duration: soon}", "transition.duration", "duration"},
		{"negative width", "type: solid\nhost: {width: -1}", "host.width", "gte"},
		{"fill out of range", "type: solid\nappearance: {lastLineFillPercent: 1.5}", "appearance.lastLineFillPercent", "lte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), FormatYAML)
			require.Error(t, err)

			var fe *FieldError
			require.True(t, stderrors.As(err, &fe), "want FieldError, got %v", err)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.tag, fe.Tag)
		})
	}
}

func TestValidateAcceptsBareVersion(t *testing.T) {
	_, err := Parse([]byte("type: solid\nversion: 1.4.2"), FormatYAML)
	assert.NoError(t, err)
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()
	f, path, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), f)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "skeleton.toml"), []byte(sampleTOML), 0o644))
	f, path, err = LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "skeleton.toml"), path)
	assert.Equal(t, "solid", f.Type)
}

func TestResolve(t *testing.T) {
	f, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	r, err := Resolve(f)
	require.NoError(t, err)

	assert.Equal(t, skeleton.Gradient, r.Config.Type)
	assert.Equal(t, []graphics.Color{
		graphics.RGB(0xD8, 0xD8, 0xD8),
		graphics.RGB(0xC0, 0xC0, 0xC0),
		graphics.ColorWhite,
	}, r.Config.Colors)
	assert.Equal(t, skeleton.TopBottom.Points(), r.Config.Direction())
	assert.True(t, r.Config.Animated)
	assert.Equal(t, skeleton.CrossDissolve(400*time.Millisecond), r.Config.Transition)

	assert.InDelta(t, 12, r.Appearance.MultilineHeight, 1e-9)
	assert.InDelta(t, 0.5, r.Appearance.LastLineFillPercent, 1e-9)
	assert.InDelta(t, skeleton.DefaultAppearance().MultilineSpacing, r.Appearance.MultilineSpacing, 1e-9)

	label, ok := r.Host.(*StaticLabel)
	require.True(t, ok, "host should be a label, got %T", r.Host)
	assert.Equal(t, 3, label.Lines)
	assert.True(t, label.IsRightToLeft())
	assert.InDelta(t, 4, label.ContentPadding().Left, 1e-9)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 200, 80), label.ContentBounds())
}

func TestResolveDerivesGradientFromSingleColor(t *testing.T) {
	base := graphics.RGB(0x33, 0x66, 0x99)
	tests := []struct {
		name   string
		repeat bool
		want   []graphics.Color
	}{
		{"pair", false, []graphics.Color{base, graphics.ColorWhite}},
		{"repeated", true, []graphics.Color{base, graphics.ColorWhite, base}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Type: "animatedGradient", Colors: []string{"#336699"}, Secondary: "white", RepeatColors: tt.repeat}
			r, err := Resolve(f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Config.Colors)
		})
	}
}

func TestResolveDefaultsToTint(t *testing.T) {
	r, err := Resolve(&File{Type: "solid", Appearance: Appearance{Tint: "navy"}, Transition: Transition{Style: "none"}})
	require.NoError(t, err)
	assert.Equal(t, []graphics.Color{graphics.RGB(0, 0, 0x80)}, r.Config.Colors)
	assert.Equal(t, skeleton.TransitionNone, r.Config.Transition)

	view, ok := r.Host.(*StaticView)
	require.True(t, ok)
	assert.InDelta(t, 320, view.ContentBounds().Width(), 1e-9)

	g, err := Resolve(&File{Type: "gradient"})
	require.NoError(t, err)
	assert.Equal(t, skeleton.DeriveGradient(skeleton.DefaultTint, nil, false), g.Config.Colors)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want graphics.Color
		ok   bool
	}{
		{"#fff", graphics.ColorWhite, true},
		{"#FF0000", graphics.ColorRed, true},
		{"#8000ff00", graphics.RGBA8(0, 0xFF, 0, 0x80), true},
		{"WhiteSmoke", graphics.RGB(0xF5, 0xF5, 0xF5), true},
		{"#12345", 0, false},
		{"notacolor", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(path, Default()))

			f, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Default().Type, f.Type)
			require.NotNil(t, f.Host.Lines)
			assert.Equal(t, 4, *f.Host.Lines)

			assert.Error(t, Write(path, Default()), "existing files must not be overwritten")
		})
	}
}
