// Package avatar renders square PNG tiles for group display names: a palette
// background picked by name hash with the group's initials drawn on top.
package avatar

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/color"
	"os"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const tileSize = 256

var defaultPalette = []color.NRGBA{
	{R: 0x26, G: 0x64, B: 0x7C, A: 0xFF},
	{R: 0x8F, G: 0x3B, B: 0x4A, A: 0xFF},
	{R: 0x3A, G: 0x6B, B: 0x35, A: 0xFF},
	{R: 0x6B, G: 0x4F, B: 0x8F, A: 0xFF},
	{R: 0xB0, G: 0x6A, B: 0x28, A: 0xFF},
	{R: 0x2F, G: 0x5D, B: 0x62, A: 0xFF},
	{R: 0x7A, G: 0x3E, B: 0x6D, A: 0xFF},
	{R: 0x4A, G: 0x5A, B: 0x27, A: 0xFF},
}

type Renderer struct {
	palette []color.NRGBA
	face    font.Face
}

// NewRenderer builds a renderer. fontPath may be empty, in which case tiles
// carry no text, only the palette background.
func NewRenderer(fontPath string) (*Renderer, error) {
	r := &Renderer{palette: defaultPalette}
	if fontPath != "" {
		face, err := loadFontFace(fontPath, 96)
		if err != nil {
			return nil, fmt.Errorf("load avatar font: %w", err)
		}
		r.face = face
	}
	return r, nil
}

func loadFontFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		Hinting: font.HintingFull,
	}), nil
}

// Render produces a PNG tile for name. Output is deterministic per name.
func (r *Renderer) Render(name string) ([]byte, error) {
	dc := gg.NewContext(tileSize, tileSize)
	dc.SetColor(r.palette[paletteIndex(name, len(r.palette))])
	dc.Clear()

	if r.face != nil {
		dc.SetFontFace(r.face)
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(initials(name), tileSize/2, tileSize/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode avatar png: %w", err)
	}
	return buf.Bytes(), nil
}

func paletteIndex(name string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return int(h.Sum32() % uint32(n))
}

// initials takes the first letter of up to two words.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
