package render

import "image/color"

// spriteSize is the cursor texture edge length in texels; the quad drawn
// from it uses the same size in canvas pixels.
const spriteSize = 50

// Cursor sprite palette.
var (
	spriteShell    = color.RGBA{R: 0x2E, G: 0x8B, B: 0x3A, A: 0xFF}
	spriteShellRim = color.RGBA{R: 0x1E, G: 0x5F, B: 0x28, A: 0xFF}
	spriteSkin     = color.RGBA{R: 0x6B, G: 0xC1, B: 0x4A, A: 0xFF}
	spriteEye      = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
)

// TurtleSprite synthesizes the cursor texture: a turtle seen from above
// with the head pointing along +x. Untouched texels stay transparent so
// the canvas shows through around the body.
func TurtleSprite() *Texture {
	tex := NewTexture(spriteSize, spriteSize)
	const c = spriteSize / 2

	// Legs, set diagonally off the shell.
	fillEllipse(tex, c-8, c-12, 5, 4, spriteSkin)
	fillEllipse(tex, c-8, c+12, 5, 4, spriteSkin)
	fillEllipse(tex, c+8, c-12, 5, 4, spriteSkin)
	fillEllipse(tex, c+8, c+12, 5, 4, spriteSkin)

	// Tail behind, head in front.
	fillEllipse(tex, c-15, c, 4, 2, spriteSkin)
	fillEllipse(tex, c+16, c, 6, 5, spriteSkin)

	// Shell over the body, darker rim first.
	fillEllipse(tex, c, c, 14, 11, spriteShellRim)
	fillEllipse(tex, c-1, c, 12, 9, spriteShell)

	// Eyes.
	tex.Set(c+19, c-2, spriteEye)
	tex.Set(c+19, c+2, spriteEye)

	return tex
}

// fillEllipse writes an axis-aligned solid ellipse centered on (cx, cy)
// with half-axes rx and ry.
func fillEllipse(tex *Texture, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / float64(rx)
			ny := float64(dy) / float64(ry)
			if nx*nx+ny*ny > 1 {
				continue
			}
			tex.Set(cx+dx, cy+dy, c)
		}
	}
}
