package maligui

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotCapturable is returned by Screenshot when the device cannot be read
// back as an image.
var ErrNotCapturable = errors.New("maligui: device does not support capture")

// Screenshot writes the device framebuffer as a PNG into ScreenshotDir with a
// timestamped file name derived from label, and returns the file path.
func (s *Stacker) Screenshot(label string) (string, error) {
	c, ok := s.device.(Capturer)
	if !ok {
		return "", ErrNotCapturable
	}
	dir := s.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("maligui: screenshot: mkdir %s: %w", dir, err)
	}

	img := snapshot(c.Image())
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("maligui: screenshot: %w", err)
	}
	Logger().Debug("screenshot", "path", path)
	return path, nil
}

// snapshot copies src into a fresh zero-origin NRGBA image.
func snapshot(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
