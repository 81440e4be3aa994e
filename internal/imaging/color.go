package imaging

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex   string   `json:"hex"`   // Hex format "#RRGGBB" (no alpha)
	RGB   RGBColor `json:"rgb"`   // RGB components
	Alpha uint8    `json:"alpha"` // Opacity (0-255)
	HSL   HSLColor `json:"hsl"`   // HSL representation
}

// String renders the color compactly for the status line.
func (c *ColorResult) String() string {
	return fmt.Sprintf("%s hsl(%d,%d%%,%d%%)", c.Hex, c.HSL.H, c.HSL.S, c.HSL.L)
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Returns an error if (x, y) is outside the buffer. The Hex and HSL forms
// ignore alpha; fully transparent pixels report as black.
func SampleColor(buf *Buffer, x, y int) (*ColorResult, error) {
	if !buf.Contains(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := buf.At(x, y)
	rgb := colorful.Color{
		R: float64(px.R) / 255.0,
		G: float64(px.G) / 255.0,
		B: float64(px.B) / 255.0,
	}
	if px.A == 0 {
		rgb = colorful.Color{}
	}

	h, s, l := rgb.Hsl()
	r8, g8, b8 := rgb.RGB255()

	return &ColorResult{
		Hex:   strings.ToUpper(rgb.Hex()),
		RGB:   RGBColor{R: r8, G: g8, B: b8},
		Alpha: px.A,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}
