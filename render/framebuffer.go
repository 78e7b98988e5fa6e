package render

import (
	"image/color"
	"math"

	"terrapin/hal"
	"terrapin/turtle"

	"tinygo.org/x/drivers"
)

// fbSurface draws into a hal.Framebuffer with RGB565 pixels. It keeps its
// own copy of the canvas dimensions so clipping stays consistent within a
// frame even while the window host swaps buffers.
type fbSurface struct {
	fb     hal.Framebuffer
	d      *fbDisplayer
	width  int
	height int
}

// NewFramebufferSurface returns a Surface that draws into fb.
func NewFramebufferSurface(fb hal.Framebuffer) Surface {
	return &fbSurface{
		fb:     fb,
		d:      &fbDisplayer{fb: fb},
		width:  fb.Width(),
		height: fb.Height(),
	}
}

func (s *fbSurface) Size() (int, int) { return s.width, s.height }

func (s *fbSurface) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	s.width = width
	s.height = height
}

func (s *fbSurface) Clear(c turtle.RGB) {
	s.fb.ClearRGB(byteFromUnit(c.R), byteFromUnit(c.G), byteFromUnit(c.B))
}

func (s *fbSurface) Present() error {
	return s.fb.Present()
}

func (s *fbSurface) DrawLineSegment(x1, y1, x2, y2 float64, c turtle.RGB) {
	cx1, cy1, cx2, cy2, ok := clipLineToRect(x1, y1, x2, y2,
		0, 0, float64(s.width-1), float64(s.height-1))
	if !ok {
		return
	}
	drawLine(s.d, roundInt16(cx1), roundInt16(cy1), roundInt16(cx2), roundInt16(cy2), rgbaFromUnit(c))
}

// DrawTexturedQuad samples tex with nearest-neighbor lookup through the
// inverse rotation, skipping fully transparent texels.
func (s *fbSurface) DrawTexturedQuad(cx, cy, w, h, rotation float64, tex *Texture) {
	if tex == nil || tex.Width < 1 || tex.Height < 1 || w <= 0 || h <= 0 {
		return
	}

	rad := rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)

	halfW := w / 2
	halfH := h / 2
	extX := math.Abs(halfW*cos) + math.Abs(halfH*sin)
	extY := math.Abs(halfW*sin) + math.Abs(halfH*cos)

	x0 := clampInt(int(math.Floor(cx-extX)), 0, s.width-1)
	x1 := clampInt(int(math.Ceil(cx+extX)), 0, s.width-1)
	y0 := clampInt(int(math.Floor(cy-extY)), 0, s.height-1)
	y1 := clampInt(int(math.Ceil(cy+extY)), 0, s.height-1)

	sx := float64(tex.Width) / w
	sy := float64(tex.Height) / h

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) - cx
			dy := float64(py) - cy
			// Rotate the canvas offset back into the quad's own frame.
			ux := dx*cos + dy*sin
			uy := -dx*sin + dy*cos
			tx := int((ux + halfW) * sx)
			ty := int((uy + halfH) * sy)
			if tx < 0 || tx >= tex.Width || ty < 0 || ty >= tex.Height {
				continue
			}
			c := tex.Pix[ty*tex.Width+tx]
			if c.A == 0 {
				continue
			}
			s.d.SetPixel(int16(px), int16(py), c)
		}
	}
}

// fbDisplayer adapts a hal.Framebuffer to the displayer contract the line
// and glyph routines draw against.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func drawLine(d drivers.Displayer, x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = x0 + u1*dx
	cy0 = y0 + u1*dy
	cx1 = x0 + u2*dx
	cy1 = y0 + u2*dy
	if cx0 < xmin {
		cx0 = xmin
	}
	if cx0 > xmax {
		cx0 = xmax
	}
	if cx1 < xmin {
		cx1 = xmin
	}
	if cx1 > xmax {
		cx1 = xmax
	}
	if cy0 < ymin {
		cy0 = ymin
	}
	if cy0 > ymax {
		cy0 = ymax
	}
	if cy1 < ymin {
		cy1 = ymin
	}
	if cy1 > ymax {
		cy1 = ymax
	}
	return cx0, cy0, cx1, cy1, true
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rgb565From888(r, g, b uint8) uint16 {
	return (uint16(r>>3) << 11) | (uint16(g>>2) << 5) | uint16(b>>3)
}
