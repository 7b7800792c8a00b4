package maligui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color. Not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors used as widget defaults.
var (
	ColorBlack       = Color{0, 0, 0, 255}
	ColorWhite       = Color{255, 255, 255, 255}
	ColorYellow      = Color{255, 255, 0, 255}
	ColorTransparent = Color{}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("maligui: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("maligui: invalid hex color %q: %w", s, err)
	}
	if len(s) == 6 {
		return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustHex is like Hex but panics on malformed input. Intended for constants.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend mixes src over dst at intensity/255. Intensity 255 yields src,
// intensity 0 yields dst.
func Blend(dst, src Color, intensity uint8) Color {
	if intensity == 255 {
		return src
	}
	if intensity == 0 {
		return dst
	}
	i := uint32(intensity)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*i + uint32(d)*(255-i) + 127) / 255)
	}
	return Color{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: mix(dst.A, src.A),
	}
}

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside, including the far edge at
// X+Width and Y+Height.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Start returns the top-left corner.
func (r Rect) Start() Point {
	return Point{r.X, r.Y}
}

// HAlign controls horizontal text alignment within a painter's clip.
type HAlign uint8

const (
	AlignLeft   HAlign = iota // text starts at the clip's left edge
	AlignCenter               // text is centered horizontally
	AlignRight                // text ends at the clip's right edge
)

// VAlign controls vertical text alignment within a painter's clip.
type VAlign uint8

const (
	AlignTop    VAlign = iota // text starts at the clip's top edge
	AlignMiddle               // text is centered vertically
	AlignBottom               // text ends at the clip's bottom edge
)
