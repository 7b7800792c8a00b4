package maligui

import "image"

// Device is the hardware abstraction layer: a pixel sink plus a source of
// spatial input (press/click/touch).
//
// Coordinates outside [0, Width) x [0, Height) are clipped silently by
// every device in this package: writes are dropped and reads return the zero
// Color.
//
// A concrete device embeds [DeviceBase] for size and handler bookkeeping,
// implements the pixel methods, and calls OnPress whenever a press is
// registered.
type Device interface {
	Width() int
	Height() int
	// Size is Width*Height.
	Size() int

	SetXY(x, y int, c Color)
	// SetXYBlended writes c mixed with the existing pixel at intensity/255.
	SetXYBlended(x, y int, c Color, intensity uint8)
	GetXY(x, y int) Color

	// RegisterEventHandler installs the single input callback, replacing
	// any previously registered one.
	RegisterEventHandler(h func(Point))
	// OnPress synchronously invokes the registered handler, if any.
	OnPress(p Point)
}

// Capturer is implemented by devices whose framebuffer can be read back as
// an image (used for screenshots).
type Capturer interface {
	Image() image.Image
}

// DeviceBase carries the size and input handler shared by all devices.
type DeviceBase struct {
	width, height int
	handler       func(Point)
}

// NewDeviceBase returns a base for a width x height device.
func NewDeviceBase(width, height int) DeviceBase {
	return DeviceBase{width: width, height: height}
}

func (d *DeviceBase) Width() int  { return d.width }
func (d *DeviceBase) Height() int { return d.height }
func (d *DeviceBase) Size() int   { return d.width * d.height }

// InBounds reports whether (x, y) addresses a pixel of the device.
func (d *DeviceBase) InBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// RegisterEventHandler replaces the input handler.
func (d *DeviceBase) RegisterEventHandler(h func(Point)) {
	d.handler = h
}

// OnPress forwards p to the registered handler. No-op without one.
func (d *DeviceBase) OnPress(p Point) {
	if d.handler != nil {
		d.handler(p)
	}
}
