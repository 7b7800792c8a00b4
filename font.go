package maligui

import "unicode/utf8"

// Character is a single glyph: its horizontal advance and an intensity
// bitmap of Width x Font.Height bytes, row-major. A zero Character is the
// empty glyph.
type Character struct {
	Width  int
	Pixmap []uint8
}

// At returns the intensity at column x, row y of the glyph, or 0 when
// outside the pixmap.
func (c Character) At(x, y int) uint8 {
	if x < 0 || x >= c.Width || y < 0 {
		return 0
	}
	i := y*c.Width + x
	if i >= len(c.Pixmap) {
		return 0
	}
	return c.Pixmap[i]
}

// Font is an immutable glyph table covering the code points
// [First, Last]. Glyph i describes code point First+i.
type Font struct {
	name       string
	size       int
	lineHeight int
	first      rune
	last       rune
	glyphs     []Character
}

// NewFont builds a font from generated glyph tables. chars should hold
// exactly last-first+1 glyphs; a shorter table leaves the tail unmapped and
// a longer one is truncated. The glyphs are copied, so later changes to
// chars or their pixmaps do not affect the font.
func NewFont(name string, size, lineHeight int, first, last rune, chars []Character) *Font {
	want := int(last-first) + 1
	if want < 0 {
		want = 0
	}
	if len(chars) != want {
		Logger().Warn("font glyph count mismatch",
			"font", name, "size", size, "glyphs", len(chars), "want", want)
		if len(chars) > want {
			chars = chars[:want]
		}
	}
	return &Font{
		name:       name,
		size:       size,
		lineHeight: lineHeight,
		first:      first,
		last:       last,
		glyphs:     cloneGlyphs(chars),
	}
}

func cloneGlyphs(chars []Character) []Character {
	out := make([]Character, len(chars))
	for i, c := range chars {
		out[i] = Character{Width: c.Width, Pixmap: append([]uint8(nil), c.Pixmap...)}
	}
	return out
}

func (f *Font) Name() string { return f.name }

// Size returns the nominal point size used as registry key.
func (f *Font) Size() int { return f.size }

// Height returns the line height, which is also the height of every glyph
// pixmap.
func (f *Font) Height() int { return f.lineHeight }

// Range returns the first and last covered code points.
func (f *Font) Range() (first, last rune) { return f.first, f.last }

// Character returns the glyph for code. Codes outside the font's range, or
// missing from a short table, yield the empty glyph.
func (f *Font) Character(code rune) Character {
	if code < f.first || code > f.last {
		return Character{}
	}
	i := int(code - f.first)
	if i >= len(f.glyphs) {
		return Character{}
	}
	return f.glyphs[i]
}

// TextWidth sums the advance widths of every rune of s.
func (f *Font) TextWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		w += f.Character(r).Width
	}
	return w
}
