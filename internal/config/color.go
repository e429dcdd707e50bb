package config

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

var errColor = errors.New(`colour must be "#RRGGBB" or "#RRGGBBAA"`)

// ParseColor reads "#RRGGBB" or "#RRGGBBAA". Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, errColor
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, errColor
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor renders c as "#RRGGBBAA".
func FormatColor(c color.RGBA) string {
	return "#" + strings.ToUpper(hex2(c.R)+hex2(c.G)+hex2(c.B)+hex2(c.A))
}

func hex2(b uint8) string {
	s := strconv.FormatUint(uint64(b), 16)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
