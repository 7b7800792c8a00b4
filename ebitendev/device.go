// Package ebitendev provides a maligui Device that shows its framebuffer in a
// desktop window (or browser canvas) through Ebitengine and turns mouse and
// touch presses into Device presses.
package ebitendev

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/maligui/maligui"
)

// Device is a MemoryDevice that also implements ebiten.Game. Pixel writes go
// to the in-memory buffer; Draw uploads the buffer to the screen every frame.
type Device struct {
	*maligui.MemoryDevice

	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// OnTick runs once per Update with the frame length in seconds, after
	// presses for the frame have been delivered.
	OnTick func(dt float32)

	screen   *ebiten.Image
	premul   []byte
	touchBuf []ebiten.TouchID
}

// New creates a width x height device.
func New(width, height int) *Device {
	return &Device{MemoryDevice: maligui.NewMemoryDevice(width, height)}
}

// Update delivers this frame's new presses and then runs OnTick.
func (d *Device) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		d.press(x, y)
	}
	d.touchBuf = inpututil.AppendJustPressedTouchIDs(d.touchBuf[:0])
	for _, id := range d.touchBuf {
		x, y := ebiten.TouchPosition(id)
		d.press(x, y)
	}

	if d.OnTick != nil {
		d.OnTick(float32(1.0 / float64(ebiten.TPS())))
	}
	return nil
}

// logger tags the shared maligui logger with this package's name.
func logger() *slog.Logger {
	return maligui.Logger().With("pkg", "ebitendev")
}

func (d *Device) press(x, y int) {
	if !d.InBounds(x, y) {
		logger().Debug("press outside framebuffer", "x", x, "y", y)
		return
	}
	logger().Debug("press", "x", x, "y", y)
	d.OnPress(maligui.Point{X: x, Y: y})
}

// Draw uploads the framebuffer to screen.
func (d *Device) Draw(screen *ebiten.Image) {
	if d.screen == nil {
		d.screen = ebiten.NewImage(d.Width(), d.Height())
	}
	d.premul = premultiply(d.premul, d.Pix())
	d.screen.WritePixels(d.premul)
	screen.DrawImage(d.screen, nil)

	if d.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout fixes the logical screen to the device size; Ebitengine scales it to
// the window.
func (d *Device) Layout(_, _ int) (int, int) {
	return d.Width(), d.Height()
}

// premultiply converts straight-alpha RGBA bytes into dst, which is grown to
// fit, and returns it.
func premultiply(dst, src []byte) []byte {
	if cap(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		switch a {
		case 255:
			copy(dst[i:i+4], src[i:i+4])
		case 0:
			dst[i], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
		default:
			dst[i] = uint8((uint32(src[i])*a + 127) / 255)
			dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
			dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
			dst[i+3] = uint8(a)
		}
	}
	return dst
}
