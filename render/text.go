package render

import (
	"image/color"

	"terrapin/turtle"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Bitmap font for the on-canvas status readout.
var statusFont tinyfont.Fonter = &proggy.TinySZ8pt7b

const (
	// statusFontHeight is the texture height of one rasterized line.
	statusFontHeight = 10
	// statusFontOffset is the baseline row glyphs are anchored to.
	statusFontOffset = 6
)

// textureDisplayer adapts a Texture to the displayer contract so tinyfont
// can rasterize glyphs into it.
type textureDisplayer struct {
	tex *Texture
}

var _ drivers.Displayer = textureDisplayer{}

func (d textureDisplayer) Size() (x, y int16) {
	return int16(d.tex.Width), int16(d.tex.Height)
}

func (d textureDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.tex.Set(int(x), int(y), c)
}

func (d textureDisplayer) Display() error { return nil }

// RenderTextToTexture rasterizes one line of text into a fresh texture.
// The texture is as wide as the measured text and one font line tall.
func (s *fbSurface) RenderTextToTexture(text string, c turtle.RGB) (*Texture, int, int) {
	_, outboxWidth := tinyfont.LineWidth(statusFont, text)
	w := int(outboxWidth)
	if w < 1 {
		w = 1
	}
	tex := NewTexture(w, statusFontHeight)
	tinyfont.WriteLine(textureDisplayer{tex: tex}, statusFont, 0, statusFontOffset, text, rgbaFromUnit(c))
	return tex, tex.Width, tex.Height
}

// rgbaFromUnit converts a unit-interval color to 8-bit opaque RGBA.
func rgbaFromUnit(c turtle.RGB) color.RGBA {
	return color.RGBA{
		R: byteFromUnit(c.R),
		G: byteFromUnit(c.G),
		B: byteFromUnit(c.B),
		A: 0xFF,
	}
}

func byteFromUnit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
