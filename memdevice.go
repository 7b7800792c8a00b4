package maligui

import "image"

// MemoryDevice is a Device backed by an in-memory NRGBA framebuffer. It has
// no input source of its own; presses are delivered by calling OnPress
// (directly, via Stacker.InjectClick, or from a wrapping host device).
type MemoryDevice struct {
	DeviceBase
	buf *image.NRGBA
}

// NewMemoryDevice creates a width x height device cleared to transparent
// black.
func NewMemoryDevice(width, height int) *MemoryDevice {
	return &MemoryDevice{
		DeviceBase: NewDeviceBase(width, height),
		buf:        image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// SetXY writes one pixel. Out-of-range coordinates are ignored.
func (d *MemoryDevice) SetXY(x, y int, c Color) {
	if !d.InBounds(x, y) {
		return
	}
	i := d.buf.PixOffset(x, y)
	p := d.buf.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// SetXYBlended mixes c into the existing pixel at intensity/255.
func (d *MemoryDevice) SetXYBlended(x, y int, c Color, intensity uint8) {
	if !d.InBounds(x, y) {
		return
	}
	d.SetXY(x, y, Blend(d.GetXY(x, y), c, intensity))
}

// GetXY reads one pixel. Out-of-range coordinates return the zero Color.
func (d *MemoryDevice) GetXY(x, y int) Color {
	if !d.InBounds(x, y) {
		return Color{}
	}
	i := d.buf.PixOffset(x, y)
	p := d.buf.Pix[i : i+4 : i+4]
	return Color{p[0], p[1], p[2], p[3]}
}

// Image returns the live framebuffer. Callers must not retain it across
// frames if they need a stable snapshot.
func (d *MemoryDevice) Image() image.Image {
	return d.buf
}

// Pix returns the raw straight-alpha RGBA bytes, row-major, 4 per pixel.
func (d *MemoryDevice) Pix() []byte {
	return d.buf.Pix
}
