package maligui

import "github.com/tanema/gween/ease"

// flashDuration is how long the press color takes to fade back to the
// background, in seconds.
const flashDuration = 0.15

// Button is a push button: a filled rectangle with a border and an aligned
// text label. Clicks run the bound handler after starting a short press flash.
type Button struct {
	*Base

	background Color
	foreground Color
	border     Color
	pressed    Color

	text   string
	font   *Font
	hAlign HAlign
	vAlign VAlign

	flash *ColorTween
}

// NewButton returns a button with an empty label, centered text, the default
// font, black text on white and a grey press color.
func NewButton(name string, geometry Rect) *Button {
	return &Button{
		Base:       NewBase(name, geometry),
		background: ColorWhite,
		foreground: ColorBlack,
		pressed:    Color{R: 160, G: 160, B: 160, A: 255},
		hAlign:     AlignCenter,
		vAlign:     AlignMiddle,
	}
}

func (b *Button) Background() Color     { return b.background }
func (b *Button) SetBackground(c Color) { b.background = c }
func (b *Button) Foreground() Color     { return b.foreground }
func (b *Button) SetForeground(c Color) { b.foreground = c }

// Border returns the border color. A transparent border is drawn in the
// foreground color.
func (b *Button) Border() Color     { return b.border }
func (b *Button) SetBorder(c Color) { b.border = c }

// SetPressed sets the color flashed on click. A transparent color disables
// the flash.
func (b *Button) SetPressed(c Color) { b.pressed = c }

func (b *Button) Text() string { return b.text }

// SetText replaces the label and repaints the button immediately when it has
// a painter.
func (b *Button) SetText(s string) {
	b.text = s
	if b.painter != nil {
		b.OnPaint()
	}
}

// SetFont selects the label font from the registry by name and size. Unknown
// names fall back to the default font.
func (b *Button) SetFont(name string, size int) {
	b.font = GetFont(name, size)
}

// Font returns the label font, or nil when the painter's font is used.
func (b *Button) Font() *Font { return b.font }

// SetAlign sets the label alignment inside the button.
func (b *Button) SetAlign(h HAlign, v VAlign) {
	b.hAlign, b.vAlign = h, v
}

// OnPaint fills the button, draws its border and label, then its children.
func (b *Button) OnPaint() {
	if p := b.painter; p != nil {
		bg := b.background
		if b.flash != nil {
			bg = b.flash.Value()
		}
		p.Fill(bg)

		border := b.border
		if border.A == 0 {
			border = b.foreground
		}
		p.SetColor(border)
		p.Rect(b.geometry)

		p.SetColor(b.foreground)
		p.WriteFont(b.text, b.hAlign, b.vAlign, b.font)
	}
	b.PaintChildren()
}

// OnClick starts the press flash and runs the bound handler.
func (b *Button) OnClick(p Point) bool {
	if b.pressed.A != 0 {
		b.flash = NewColorTween(b.pressed, b.background, flashDuration, ease.OutQuad)
		if b.painter != nil {
			b.OnPaint()
		}
	}
	return b.HandleClick(b, p)
}

// Update advances the press flash. It reports true while the flash is
// running, including the frame on which it finishes.
func (b *Button) Update(dt float32) bool {
	if b.flash == nil {
		return false
	}
	b.flash.Update(dt)
	if b.flash.Done {
		b.flash = nil
	}
	return true
}

// Flashing reports whether a press flash is in progress.
func (b *Button) Flashing() bool { return b.flash != nil }
