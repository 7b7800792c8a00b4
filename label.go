package maligui

// Label draws a single line of aligned text, optionally over a filled
// background. It does not react to clicks beyond its bound handler.
type Label struct {
	*Base

	// Background is filled before the text when its alpha is non-zero.
	Background Color
	// Color is the text color.
	Color Color

	text   string
	font   *Font
	hAlign HAlign
	vAlign VAlign
}

// NewLabel returns a left/top aligned label in black using the default font.
func NewLabel(name string, geometry Rect, text string) *Label {
	return &Label{
		Base:  NewBase(name, geometry),
		Color: ColorBlack,
		text:  text,
	}
}

func (l *Label) Text() string { return l.text }

// SetText replaces the text and repaints when the label has a painter.
// Without a background the new text is drawn over the old.
func (l *Label) SetText(s string) {
	l.text = s
	if l.painter != nil {
		l.OnPaint()
	}
}

// SetFont selects the font from the registry; see FontDatabase.Get.
func (l *Label) SetFont(name string, size int) {
	l.font = GetFont(name, size)
}

// SetAlign sets the text alignment inside the label.
func (l *Label) SetAlign(h HAlign, v VAlign) {
	l.hAlign, l.vAlign = h, v
}

func (l *Label) OnPaint() {
	if p := l.painter; p != nil {
		if l.Background.A != 0 {
			p.Fill(l.Background)
		}
		p.SetColor(l.Color)
		p.WriteFont(l.text, l.hAlign, l.vAlign, l.font)
	}
	l.PaintChildren()
}
