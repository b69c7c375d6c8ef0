package certificate

import (
	"fmt"
	"strconv"
	"strings"
)

// TextStyle places one line of centered text. X and Y are in points with
// the origin at the bottom-left, matching the template's coordinate space.
type TextStyle struct {
	X        float64
	Y        float64
	FontSize float64
	ColorHex string
}

// Style is the fixed overlay configuration for one batch. FontFamily is
// the name the renderer registers its TTF under; the weight is whatever
// the font file carries.
type Style struct {
	FontFamily  string
	Name        TextStyle
	Affiliation TextStyle
}

// DefaultStyle carries the preset placement used by the stock template.
func DefaultStyle() Style {
	return Style{
		FontFamily:  "cert-bold",
		Name:        TextStyle{X: 427, Y: 200, FontSize: 18, ColorHex: "#000000"},
		Affiliation: TextStyle{X: 306, Y: 550, FontSize: 18, ColorHex: "#000000"},
	}
}

type RGB struct {
	R, G, B uint8
}

func hexRGB(hexColor string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want #RRGGBB", hexColor)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", hexColor, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
