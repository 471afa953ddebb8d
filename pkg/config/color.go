package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// ParseColor accepts #rgb, #rrggbb and #aarrggbb hex colors and CSS color
// names such as "silver" or "whitesmoke".
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return 0, fmt.Errorf("unknown color name %q", s)
		}
		return graphics.FromStdColor(c), nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	switch len(hex) {
	case 6:
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
}

// ParseColors parses every entry of names.
func ParseColors(names []string) ([]graphics.Color, error) {
	colors := make([]graphics.Color, 0, len(names))
	for _, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
