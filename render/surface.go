// Package render turns turtle state into frames: it owns the draw-surface
// contract, the framebuffer-backed implementation, and the per-frame
// composition of trail, cursor, and status readout.
package render

import (
	"image/color"

	"terrapin/turtle"
)

// Surface is the draw target the renderer issues frame commands to.
//
// Coordinates are canvas pixels with the origin at the top-left and y
// growing downward. Implementations clip to their own bounds.
type Surface interface {
	// Size returns the current canvas dimensions in pixels.
	Size() (width, height int)
	// Clear fills the whole canvas with c.
	Clear(c turtle.RGB)
	// DrawLineSegment draws a one-pixel line from (x1, y1) to (x2, y2).
	DrawLineSegment(x1, y1, x2, y2 float64, c turtle.RGB)
	// DrawTexturedQuad draws tex centered on (cx, cy), scaled to w by h
	// pixels and rotated about its center by rotation degrees. Positive
	// rotation turns clockwise on screen.
	DrawTexturedQuad(cx, cy, w, h, rotation float64, tex *Texture)
	// RenderTextToTexture rasterizes one line of text in c and reports
	// the texture together with its pixel dimensions.
	RenderTextToTexture(text string, c turtle.RGB) (tex *Texture, width, height int)
	// Resize adopts new canvas dimensions after the window changed.
	Resize(width, height int)
	// Present pushes the finished frame to the display.
	Present() error
}

// Texture is a CPU-side RGBA pixel rectangle, produced by sprite synthesis
// or text rasterization and consumed by DrawTexturedQuad. Texels that were
// never written stay fully transparent.
type Texture struct {
	Width  int
	Height int
	Pix    []color.RGBA
}

// NewTexture returns a transparent texture of the given size.
func NewTexture(width, height int) *Texture {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Texture{Width: width, Height: height, Pix: make([]color.RGBA, width*height)}
}

// At returns the texel at (x, y); out-of-bounds reads are transparent.
func (t *Texture) At(x, y int) color.RGBA {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return color.RGBA{}
	}
	return t.Pix[y*t.Width+x]
}

// Set writes the texel at (x, y); out-of-bounds writes are dropped.
func (t *Texture) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pix[y*t.Width+x] = c
}
