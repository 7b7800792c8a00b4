package maligui

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxBitmapGlyphs bounds the glyph table a .fnt file may span, so a stray
// high char id cannot force a huge allocation.
const maxBitmapGlyphs = 0x10000

// bmGlyph is one "char" record of a BMFont file.
type bmGlyph struct {
	id       rune
	x, y     int
	width    int
	height   int
	xOffset  int
	yOffset  int
	xAdvance int
}

// LoadBitmapFont converts AngelCode BMFont text data (.fnt) plus its single
// atlas page into a glyph-table Font. The registry name and size come from
// the "info" line (face, size). Every glyph cell is xadvance wide and
// lineHeight tall; atlas alpha becomes glyph intensity. Kerning pairs are
// ignored.
func LoadBitmapFont(fntData []byte, atlas image.Image) (*Font, error) {
	if atlas == nil {
		return nil, fmt.Errorf("maligui: bitmap font needs an atlas image")
	}

	var (
		name       string
		size       int
		lineHeight int
		glyphs     []bmGlyph
	)

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "info":
			name = fields["face"]
			size = atoiField(fields, "size")
			if size < 0 {
				size = -size // negative sizes mark "match char height"
			}
		case "common":
			lineHeight = atoiField(fields, "lineHeight")
		case "char":
			id := atoiField(fields, "id")
			if id < 0 || id > utf8.MaxRune {
				return nil, fmt.Errorf("maligui: .fnt char id %d out of range", id)
			}
			glyphs = append(glyphs, bmGlyph{
				id:       rune(id),
				x:        atoiField(fields, "x"),
				y:        atoiField(fields, "y"),
				width:    atoiField(fields, "width"),
				height:   atoiField(fields, "height"),
				xOffset:  atoiField(fields, "xoffset"),
				yOffset:  atoiField(fields, "yoffset"),
				xAdvance: atoiField(fields, "xadvance"),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("maligui: error reading .fnt data: %w", err)
	}
	if lineHeight == 0 {
		return nil, fmt.Errorf("maligui: .fnt data missing common lineHeight")
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("maligui: .fnt data has no char definitions")
	}

	first, last := glyphs[0].id, glyphs[0].id
	for _, g := range glyphs[1:] {
		first = min(first, g.id)
		last = max(last, g.id)
	}
	if n := int(last-first) + 1; n > maxBitmapGlyphs {
		return nil, fmt.Errorf("maligui: .fnt char ids %d..%d span %d glyphs, max %d", first, last, n, maxBitmapGlyphs)
	}

	chars := make([]Character, int(last-first)+1)
	for _, g := range glyphs {
		chars[g.id-first] = blitBMGlyph(atlas, g, lineHeight)
	}
	return NewFont(name, size, lineHeight, first, last, chars), nil
}

// blitBMGlyph copies the glyph's atlas rectangle into an xAdvance x
// lineHeight cell at (xOffset, yOffset), clipping anything outside the cell.
func blitBMGlyph(atlas image.Image, g bmGlyph, lineHeight int) Character {
	if g.xAdvance <= 0 {
		return Character{}
	}
	c := Character{Width: g.xAdvance, Pixmap: make([]uint8, g.xAdvance*lineHeight)}
	b := atlas.Bounds()
	for j := 0; j < g.height; j++ {
		cy := g.yOffset + j
		if cy < 0 || cy >= lineHeight {
			continue
		}
		for i := 0; i < g.width; i++ {
			cx := g.xOffset + i
			if cx < 0 || cx >= g.xAdvance {
				continue
			}
			p := image.Pt(b.Min.X+g.x+i, b.Min.Y+g.y+j)
			if !p.In(b) {
				continue
			}
			a := color.AlphaModel.Convert(atlas.At(p.X, p.Y)).(color.Alpha)
			c.Pixmap[cy*g.xAdvance+cx] = a.A
		}
	}
	return c
}

func atoiField(fields map[string]string, key string) int {
	v, ok := fields[key]
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(v)
	return n
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}
