package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell and ebiten
type RGB struct {
	R, G, B uint8
}

// RGBA is a straight-alpha color, A in [0,1]
type RGBA struct {
	RGB
	A float64
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// ParseHex parses a "#rrggbb" color
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustParseHex is ParseHex for palette constants, panics on malformed input
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns c with the given opacity
func (c RGB) Alpha(a float64) RGBA {
	return RGBA{RGB: c, A: a}
}

// Opaque returns c at full opacity
func (c RGB) Opaque() RGBA {
	return RGBA{RGB: c, A: 1}
}

// Blend performs alpha blending in sRGB: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return fromColorful(dst.toColorful().BlendRgb(src.toColorful(), alpha))
}

// Over composites a translucent color onto dst
func (dst RGB) Over(src RGBA) RGB {
	return dst.Blend(src.RGB, src.A)
}

// Lerp interpolates in linear RGB, t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(a.toColorful().BlendLinearRgb(b.toColorful(), t))
}

// NRGBA converts to the image/color straight-alpha form
func (c RGBA) NRGBA() color.NRGBA {
	a := min(max(c.A, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// Hex formats c as "#rrggbb"
func (c RGB) Hex() string {
	return c.toColorful().Hex()
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
