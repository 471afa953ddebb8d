// Package config loads skeleton preview files. A file names the skeleton
// type, its palette and transition, optional appearance overrides and the
// geometry of the host the skeleton is previewed on.
//
// YAML (skeleton.yaml, skeleton.yml) and TOML (skeleton.toml) are supported.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/skeleton/pkg/errors"
)

// SchemaVersion is written into new files.
const SchemaVersion = "v1.0.0"

// DefaultNames are the file names LoadOptional looks for, in order.
var DefaultNames = []string{"skeleton.yaml", "skeleton.yml", "skeleton.toml"}

// File is the on-disk representation of a skeleton preview.
type File struct {
	Version      string     `yaml:"version,omitempty" toml:"version,omitempty" validate:"omitempty,semver_v1"`
	Type         string     `yaml:"type" toml:"type" validate:"required,skeleton_type"`
	Colors       []string   `yaml:"colors,omitempty" toml:"colors,omitempty" validate:"omitempty,dive,color"`
	Secondary    string     `yaml:"secondary,omitempty" toml:"secondary,omitempty" validate:"omitempty,color"`
	RepeatColors bool       `yaml:"repeatColors,omitempty" toml:"repeatColors,omitempty"`
	Direction    string     `yaml:"direction,omitempty" toml:"direction,omitempty" validate:"omitempty,direction"`
	Animated     bool       `yaml:"animated" toml:"animated"`
	Transition   Transition `yaml:"transition,omitempty" toml:"transition,omitempty"`
	Appearance   Appearance `yaml:"appearance,omitempty" toml:"appearance,omitempty"`
	Host         Host       `yaml:"host" toml:"host"`
}

// Transition configures removal.
type Transition struct {
	Style    string `yaml:"style,omitempty" toml:"style,omitempty" validate:"omitempty,oneof=none crossDissolve"`
	Duration string `yaml:"duration,omitempty" toml:"duration,omitempty" validate:"omitempty,duration"`
}

// Appearance overrides the process-wide defaults. Unset fields keep the
// stock values.
type Appearance struct {
	Tint                   string   `yaml:"tint,omitempty" toml:"tint,omitempty" validate:"omitempty,color"`
	MultilineHeight        *float64 `yaml:"multilineHeight,omitempty" toml:"multilineHeight,omitempty" validate:"omitempty,gt=0"`
	MultilineSpacing       *float64 `yaml:"multilineSpacing,omitempty" toml:"multilineSpacing,omitempty" validate:"omitempty,gte=0"`
	MultilineCornerRadius  *float64 `yaml:"multilineCornerRadius,omitempty" toml:"multilineCornerRadius,omitempty" validate:"omitempty,gte=0"`
	LastLineFillPercent    *float64 `yaml:"lastLineFillPercent,omitempty" toml:"lastLineFillPercent,omitempty" validate:"omitempty,gt=0,lte=1"`
	RenderSingleLineAsView bool     `yaml:"renderSingleLineAsView,omitempty" toml:"renderSingleLineAsView,omitempty"`
}

// Host describes the previewed view. Without Lines the host is a plain
// view; with Lines it displays text.
type Host struct {
	Width               float64  `yaml:"width" toml:"width" validate:"gte=0"`
	Height              float64  `yaml:"height" toml:"height" validate:"gte=0"`
	CornerRadius        float64  `yaml:"cornerRadius,omitempty" toml:"cornerRadius,omitempty" validate:"gte=0"`
	Lines               *int     `yaml:"lines,omitempty" toml:"lines,omitempty"`
	LineHeight          float64  `yaml:"lineHeight,omitempty" toml:"lineHeight,omitempty" validate:"gte=0"`
	LineSpacing         *float64 `yaml:"lineSpacing,omitempty" toml:"lineSpacing,omitempty" validate:"omitempty,gte=0"`
	LastLineFillPercent float64  `yaml:"lastLineFillPercent,omitempty" toml:"lastLineFillPercent,omitempty" validate:"gte=0,lte=1"`
	RTL                 bool     `yaml:"rtl,omitempty" toml:"rtl,omitempty"`
	Vertical            bool     `yaml:"vertical,omitempty" toml:"vertical,omitempty"`
	Padding             Padding  `yaml:"padding,omitempty" toml:"padding,omitempty"`
}

// Padding insets text bars from the host bounds.
type Padding struct {
	Top    float64 `yaml:"top,omitempty" toml:"top,omitempty" validate:"gte=0"`
	Left   float64 `yaml:"left,omitempty" toml:"left,omitempty" validate:"gte=0"`
	Bottom float64 `yaml:"bottom,omitempty" toml:"bottom,omitempty" validate:"gte=0"`
	Right  float64 `yaml:"right,omitempty" toml:"right,omitempty" validate:"gte=0"`
}

// Default returns the file used when none exists: an animated gradient over
// a four-line text host.
func Default() *File {
	lines := 4
	return &File{
		Version:    SchemaVersion,
		Type:       "animatedGradient",
		Animated:   true,
		Transition: Transition{Style: "crossDissolve", Duration: "250ms"},
		Host:       Host{Width: 320, Height: 120, CornerRadius: 8, Lines: &lines},
	}
}

// Load reads, parses and validates the file at path. The format follows the
// extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.SkeletonError{Op: "config.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}
	f, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, withPath(err, path)
	}
	return f, nil
}

// LoadOptional loads the first of DefaultNames found in dir. When none
// exists it returns Default() and an empty path.
func LoadOptional(dir string) (*File, string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if stderrors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", &errors.SkeletonError{Op: "config.LoadOptional", Kind: errors.KindConfig, Path: path, Err: err}
		}
		f, err := Load(path)
		return f, path, err
	}
	return Default(), "", nil
}

// Format is a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes and validates data.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, errors.New("config.Parse", errors.KindConfig, fmt.Errorf("failed to parse %s: %w", format, err))
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Marshal encodes f in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(f)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Write encodes f to path, choosing the format from the extension. Existing
// files are not overwritten.
func Write(path string, f *File) error {
	data, err := Marshal(f, formatOf(path))
	if err != nil {
		return &errors.SkeletonError{Op: "config.Write", Kind: errors.KindConfig, Path: path, Err: err}
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &errors.SkeletonError{Op: "config.Write", Kind: errors.KindConfig, Path: path, Err: err}
	}
	defer file.Close()
	if _, err := file.Write(data); err != nil {
		return &errors.SkeletonError{Op: "config.Write", Kind: errors.KindConfig, Path: path, Err: err}
	}
	return nil
}

func withPath(err error, path string) error {
	var se *errors.SkeletonError
	if stderrors.As(err, &se) && se.Path == "" {
		se.Path = path
	}
	return err
}
