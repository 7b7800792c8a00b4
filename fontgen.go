package maligui

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RasterizeFace renders the code points [first, last] of face into a glyph
// table Font. Each glyph cell is its rounded advance wide and the face's line
// height tall, with the baseline at the face ascent. Runes the face does not
// cover become empty glyphs.
func RasterizeFace(name string, size int, face font.Face, first, last rune) *Font {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := m.Height.Ceil()
	if h := ascent + m.Descent.Ceil(); h > height {
		height = h
	}

	chars := make([]Character, 0, int(last-first)+1)
	for r := first; r <= last; r++ {
		chars = append(chars, rasterizeRune(face, r, ascent, height))
	}
	return NewFont(name, size, height, first, last, chars)
}

func rasterizeRune(face font.Face, r rune, ascent, height int) Character {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return Character{}
	}
	w := adv.Round()
	if w <= 0 {
		return Character{}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, height))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(string(r))

	// NewAlpha with a zero-origin rect has Stride == w, so Pix is already the
	// row-major pixmap.
	return Character{Width: w, Pixmap: dst.Pix}
}

// RasterizeTTF parses TrueType/OpenType data and rasterizes [first, last] at
// size pixels per em (72 DPI).
func RasterizeTTF(name string, size int, ttf []byte, first, last rune) (*Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("maligui: parse font %q: %w", name, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(size), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("maligui: new face %q/%d: %w", name, size, err)
	}
	defer face.Close()
	return RasterizeFace(name, size, face, first, last), nil
}
