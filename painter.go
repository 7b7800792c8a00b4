package maligui

import "unicode/utf8"

// Painter draws shapes and text onto a shared Device, positioned relative to
// a clip rectangle copied from its widget's geometry. Each widget owns its
// own Painter so color and font changes do not leak between widgets.
//
// The clip is used for fill extents and text alignment only; pixel writes
// outside it are not masked.
type Painter struct {
	device Device
	clip   Rect
	color  Color
	font   *Font
}

// NewPainter binds a painter to device and clip. The current font starts as
// the registry default and the current color as opaque black.
func NewPainter(device Device, clip Rect) *Painter {
	return &Painter{
		device: device,
		clip:   clip,
		color:  ColorBlack,
		font:   Fonts().Default(),
	}
}

func (p *Painter) Device() Device { return p.device }
func (p *Painter) Clip() Rect     { return p.clip }

func (p *Painter) Color() Color     { return p.color }
func (p *Painter) SetColor(c Color) { p.color = c }

// Font returns the current font, which may be nil if SetFont(nil) was called.
func (p *Painter) Font() *Font { return p.font }

// SetFont changes the font used by Write and WriteWidth.
func (p *Painter) SetFont(f *Font) { p.font = f }

// Point writes one pixel in the current color.
func (p *Painter) Point(x, y int) {
	p.device.SetXY(x, y, p.color)
}

// Fill writes c to every pixel of the clip rectangle.
func (p *Painter) Fill(c Color) {
	r := p.clip
	for j := 0; j < r.Height; j++ {
		for i := 0; i < r.Width; i++ {
			p.device.SetXY(r.X+i, r.Y+j, c)
		}
	}
}

// FillCurrent fills the clip rectangle with the current color.
func (p *Painter) FillCurrent() {
	p.Fill(p.color)
}

// Line draws from (x1, y1) to (x2, y2) inclusive with Bresenham's algorithm.
// Endpoints are normalized so that swapping them yields the same pixels.
func (p *Painter) Line(x1, y1, x2, y2 int) {
	if x2 < x1 || (x2 == x1 && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}
	err := dx / 2
	if dx <= dy {
		err = -dy / 2
	}

	for {
		p.Point(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
}

// Rect draws the one-pixel border of r. Corner pixels are written twice.
func (p *Painter) Rect(r Rect) {
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1
	p.Line(r.X, r.Y, right, r.Y)
	p.Line(r.X, bottom, right, bottom)
	p.Line(r.X, r.Y, r.X, bottom)
	p.Line(right, r.Y, right, bottom)
}

// WriteWidth returns the advance width of text in the current font, or 0
// when no font is set.
func (p *Painter) WriteWidth(text string) int {
	if p.font == nil {
		return 0
	}
	return p.font.TextWidth(text)
}

// AlignedX returns the x origin of text under h. The result is not clamped:
// text wider than the clip starts left of it for AlignCenter and AlignRight.
func (p *Painter) AlignedX(text string, h HAlign) int {
	switch h {
	case AlignCenter:
		return p.clip.X + (p.clip.Width-p.WriteWidth(text))/2
	case AlignRight:
		return p.clip.X + p.clip.Width - p.WriteWidth(text)
	default:
		return p.clip.X
	}
}

// AlignedY returns the y origin of a line of text under v, using the current
// font's line height.
func (p *Painter) AlignedY(v VAlign) int {
	lh := 0
	if p.font != nil {
		lh = p.font.Height()
	}
	switch v {
	case AlignMiddle:
		return p.clip.Y + (p.clip.Height-lh)/2
	case AlignBottom:
		return p.clip.Y + p.clip.Height - lh
	default:
		return p.clip.Y
	}
}

// Write renders text in the current color and font, aligned inside the clip.
// Glyph intensities are blended onto the device; glyphs follow each other
// with no extra spacing.
func (p *Painter) Write(text string, h HAlign, v VAlign) {
	if p.font == nil {
		return
	}
	x := p.AlignedX(text, h)
	y := p.AlignedY(v)
	height := p.font.Height()

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size

		ch := p.font.Character(r)
		for j := 0; j < height; j++ {
			for k := 0; k < ch.Width; k++ {
				if in := ch.At(k, j); in != 0 {
					p.device.SetXYBlended(x+k, y+j, p.color, in)
				}
			}
		}
		x += ch.Width
	}
}

// WriteFont is Write with f used for this call only; the current font is
// left unchanged. A nil f falls back to the current font.
func (p *Painter) WriteFont(text string, h HAlign, v VAlign, f *Font) {
	if f == nil {
		p.Write(text, h, v)
		return
	}
	saved := p.font
	p.font = f
	p.Write(text, h, v)
	p.font = saved
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
