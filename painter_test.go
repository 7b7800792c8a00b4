package maligui

import (
	"fmt"
	"testing"
)

// litPixels returns every pixel of d with non-zero alpha.
func litPixels(d *MemoryDevice) map[Point]bool {
	lit := make(map[Point]bool)
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			if d.GetXY(x, y).A != 0 {
				lit[Point{x, y}] = true
			}
		}
	}
	return lit
}

func newTestPainter(w, h int, clip Rect) (*Painter, *MemoryDevice) {
	d := NewMemoryDevice(w, h)
	p := NewPainter(d, clip)
	p.SetFont(newTestFont())
	p.SetColor(ColorWhite)
	return p, d
}

func TestNewPainterDefaults(t *testing.T) {
	d := NewMemoryDevice(4, 4)
	p := NewPainter(d, Rect{Width: 4, Height: 4})
	if p.Font() != Fonts().Default() {
		t.Error("font should default to the registry default")
	}
	if p.Color() != ColorBlack {
		t.Errorf("Color() = %v, want black", p.Color())
	}
	if p.Device() != Device(d) {
		t.Error("Device() should return the bound device")
	}
}

func TestPainterFill(t *testing.T) {
	p, d := newTestPainter(10, 10, Rect{X: 2, Y: 3, Width: 4, Height: 2})
	p.Fill(ColorYellow)

	lit := litPixels(d)
	if len(lit) != 8 {
		t.Errorf("filled %d pixels, want 8", len(lit))
	}
	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if d.GetXY(x, y) != ColorYellow {
				t.Errorf("(%d,%d) = %v, want yellow", x, y, d.GetXY(x, y))
			}
		}
	}

	p.SetColor(ColorBlack)
	p.FillCurrent()
	if d.GetXY(2, 3) != ColorBlack {
		t.Error("FillCurrent should use the current color")
	}
}

func TestPainterLineSymmetry(t *testing.T) {
	lines := [][4]int{
		{0, 0, 9, 3},
		{0, 0, 3, 9},
		{9, 0, 0, 7},
		{2, 8, 7, 1},
		{0, 5, 9, 5},
		{4, 0, 4, 9},
		{0, 0, 9, 9},
		{1, 2, 8, 4},
	}
	for _, l := range lines {
		t.Run(fmt.Sprint(l), func(t *testing.T) {
			p1, d1 := newTestPainter(10, 10, Rect{Width: 10, Height: 10})
			p1.Line(l[0], l[1], l[2], l[3])
			p2, d2 := newTestPainter(10, 10, Rect{Width: 10, Height: 10})
			p2.Line(l[2], l[3], l[0], l[1])

			a, b := litPixels(d1), litPixels(d2)
			if len(a) != len(b) {
				t.Fatalf("forward lit %d, reverse lit %d", len(a), len(b))
			}
			for pt := range a {
				if !b[pt] {
					t.Errorf("pixel %v only in forward line", pt)
				}
			}
			for _, end := range []Point{{l[0], l[1]}, {l[2], l[3]}} {
				if !a[end] {
					t.Errorf("endpoint %v not drawn", end)
				}
			}
		})
	}
}

func TestPainterLineLength(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{"zero length", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 4, 0, 5},
		{"vertical", 0, 0, 0, 6, 7},
		{"diagonal", 0, 0, 5, 5, 6},
		{"shallow", 0, 0, 4, 2, 5},
		{"steep", 0, 0, 1, 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, d := newTestPainter(10, 10, Rect{Width: 10, Height: 10})
			p.Line(tt.x1, tt.y1, tt.x2, tt.y2)
			if got := len(litPixels(d)); got != tt.want {
				t.Errorf("lit %d pixels, want %d", got, tt.want)
			}
		})
	}
}

func TestPainterRect(t *testing.T) {
	p, d := newTestPainter(10, 10, Rect{Width: 10, Height: 10})
	p.Rect(Rect{X: 2, Y: 2, Width: 5, Height: 4})

	lit := litPixels(d)
	if len(lit) != 14 {
		t.Errorf("border lit %d pixels, want 14", len(lit))
	}
	for _, c := range []Point{{2, 2}, {6, 2}, {2, 5}, {6, 5}} {
		if !lit[c] {
			t.Errorf("corner %v not drawn", c)
		}
	}
	for _, c := range []Point{{3, 3}, {7, 2}, {2, 6}} {
		if lit[c] {
			t.Errorf("pixel %v should not be drawn", c)
		}
	}
}

func TestPainterWriteWidth(t *testing.T) {
	p, _ := newTestPainter(10, 10, Rect{Width: 10, Height: 10})
	if got := p.WriteWidth("ABC"); got != 9 {
		t.Errorf("WriteWidth(ABC) = %d, want 9", got)
	}
	p.SetFont(nil)
	if got := p.WriteWidth("ABC"); got != 0 {
		t.Errorf("WriteWidth with no font = %d, want 0", got)
	}
}

func TestPainterAlignment(t *testing.T) {
	p, _ := newTestPainter(120, 40, Rect{X: 0, Y: 0, Width: 100, Height: 20})
	w := p.WriteWidth("ABC")

	tests := []struct {
		h    HAlign
		want int
	}{
		{AlignLeft, 0},
		{AlignCenter, (100 - w) / 2},
		{AlignRight, 100 - w},
	}
	for _, tt := range tests {
		if got := p.AlignedX("ABC", tt.h); got != tt.want {
			t.Errorf("AlignedX(%d) = %d, want %d", tt.h, got, tt.want)
		}
	}

	vtests := []struct {
		v    VAlign
		want int
	}{
		{AlignTop, 0},
		{AlignMiddle, 8},
		{AlignBottom, 16},
	}
	for _, tt := range vtests {
		if got := p.AlignedY(tt.v); got != tt.want {
			t.Errorf("AlignedY(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestPainterAlignmentOffsetClip(t *testing.T) {
	p, _ := newTestPainter(120, 40, Rect{X: 10, Y: 5, Width: 20, Height: 10})
	if got := p.AlignedX("AB", AlignRight); got != 25 {
		t.Errorf("AlignedX right = %d, want 25", got)
	}
	// Wider than the clip: no clamping.
	if got := p.AlignedX("CCCCCC", AlignRight); got != 6 {
		t.Errorf("AlignedX overflow = %d, want 6", got)
	}
}

func TestPainterWrite(t *testing.T) {
	p, d := newTestPainter(20, 10, Rect{X: 10, Y: 5, Width: 10, Height: 5})
	p.Write("AB", AlignLeft, AlignTop)

	lit := litPixels(d)
	// 'A' is 2x4 and 'B' is 3x4, drawn back to back.
	if len(lit) != 20 {
		t.Errorf("lit %d pixels, want 20", len(lit))
	}
	for _, pt := range []Point{{10, 5}, {11, 8}, {12, 5}, {14, 8}} {
		if d.GetXY(pt.X, pt.Y) != ColorWhite {
			t.Errorf("%v = %v, want white", pt, d.GetXY(pt.X, pt.Y))
		}
	}
	if lit[Point{15, 5}] || lit[Point{10, 9}] {
		t.Error("pixels beyond the glyphs were drawn")
	}
}

func TestPainterWriteBlends(t *testing.T) {
	d := NewMemoryDevice(4, 2)
	half := NewFont("Half", 8, 2, 'x', 'x', []Character{{
		Width:  2,
		Pixmap: []uint8{128, 0, 255, 128},
	}})
	p := NewPainter(d, Rect{Width: 4, Height: 2})
	p.Fill(ColorBlack)
	p.SetColor(ColorWhite)
	p.WriteFont("x", AlignLeft, AlignTop, half)

	if got := d.GetXY(0, 0); got != (Color{128, 128, 128, 255}) {
		t.Errorf("(0,0) = %v, want half grey", got)
	}
	if got := d.GetXY(1, 0); got != ColorBlack {
		t.Errorf("(1,0) = %v, zero intensity should leave background", got)
	}
	if got := d.GetXY(0, 1); got != ColorWhite {
		t.Errorf("(0,1) = %v, want white", got)
	}
	if p.Font() != Fonts().Default() {
		t.Error("WriteFont must not change the current font")
	}
}

func TestPainterWriteNoFont(t *testing.T) {
	p, d := newTestPainter(10, 10, Rect{Width: 10, Height: 10})
	p.SetFont(nil)
	p.Write("ABC", AlignCenter, AlignMiddle)
	if n := len(litPixels(d)); n != 0 {
		t.Errorf("lit %d pixels with no font, want 0", n)
	}
}
