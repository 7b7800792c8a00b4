package maligui

import (
	"errors"
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// ErrNoFonts is returned when a registry would be created empty.
	ErrNoFonts = errors.New("maligui: font registry needs at least one font")
	// ErrFontsInitialized is returned by InitFonts once the process-wide
	// registry has been built.
	ErrFontsInitialized = errors.New("maligui: font registry already initialized")
)

// FontDatabase is an immutable registry of fonts keyed by (name, size).
// Entry 0 is the default font.
type FontDatabase struct {
	fonts []*Font
}

// NewFontDatabase creates a registry over fonts. The first font becomes the
// default.
func NewFontDatabase(fonts ...*Font) (*FontDatabase, error) {
	if len(fonts) == 0 {
		return nil, ErrNoFonts
	}
	for _, f := range fonts {
		if f == nil {
			return nil, errors.New("maligui: nil font in registry")
		}
	}
	return &FontDatabase{fonts: append([]*Font(nil), fonts...)}, nil
}

// Default returns entry 0.
func (db *FontDatabase) Default() *Font {
	return db.fonts[0]
}

// Get returns the font whose name and size both match exactly, or the
// default font when none does. Never returns nil.
func (db *FontDatabase) Get(name string, size int) *Font {
	for _, f := range db.fonts {
		if f.name == name && f.size == size {
			return f
		}
	}
	return db.fonts[0]
}

// Fonts returns a copy of the registry entries in order.
func (db *FontDatabase) Fonts() []*Font {
	return append([]*Font(nil), db.fonts...)
}

// Len returns the number of registered fonts.
func (db *FontDatabase) Len() int {
	return len(db.fonts)
}

// --- Process-wide registry ---

// Names of the built-in fonts.
const (
	FontFixed  = "Fixed"
	FontGo     = "Go"
	FontGoMono = "Go Mono"
)

const (
	builtinFirst rune = 32
	builtinLast  rune = 126
)

var (
	fontsOnce sync.Once
	fontsDB   *FontDatabase
)

// InitFonts builds the process-wide registry from fonts instead of the
// built-in set. It must be called before the first call to Fonts (or before
// any Painter is created); afterwards it returns ErrFontsInitialized.
func InitFonts(fonts ...*Font) error {
	db, err := NewFontDatabase(fonts...)
	if err != nil {
		return err
	}
	installed := false
	fontsOnce.Do(func() {
		fontsDB = db
		installed = true
	})
	if !installed {
		return ErrFontsInitialized
	}
	Logger().Info("font registry initialized", "fonts", db.Len())
	return nil
}

// Fonts returns the process-wide registry, generating the built-in fonts on
// first use.
func Fonts() *FontDatabase {
	fontsOnce.Do(func() {
		fontsDB = builtinFonts()
		Logger().Info("font registry initialized", "fonts", fontsDB.Len(), "builtin", true)
	})
	return fontsDB
}

// GetFont is shorthand for Fonts().Get(name, size).
func GetFont(name string, size int) *Font {
	return Fonts().Get(name, size)
}

// builtinFonts rasterizes the default fixed face followed by the Go fonts.
func builtinFonts() *FontDatabase {
	fonts := []*Font{
		RasterizeFace(FontFixed, 13, basicfont.Face7x13, builtinFirst, builtinLast),
	}
	for _, bf := range []struct {
		name string
		ttf  []byte
		size int
	}{
		{FontGo, goregular.TTF, 12},
		{FontGo, goregular.TTF, 18},
		{FontGo, goregular.TTF, 24},
		{FontGoMono, gomono.TTF, 18},
		{FontGoMono, gomono.TTF, 24},
	} {
		f, err := RasterizeTTF(bf.name, bf.size, bf.ttf, builtinFirst, builtinLast)
		if err != nil {
			Logger().Warn("skipping built-in font", "font", bf.name, "size", bf.size, "err", err)
			continue
		}
		fonts = append(fonts, f)
	}
	return &FontDatabase{fonts: fonts}
}
