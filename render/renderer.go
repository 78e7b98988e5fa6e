package render

import (
	"fmt"

	"terrapin/turtle"
)

// Frame composition colors.
var (
	backgroundColor = turtle.RGB{R: 1, G: 1, B: 1}
	statusTextColor = turtle.RGB{}
)

// Status readout layout, in canvas pixels.
const (
	statusLeft    = 10.0
	statusTop     = 10.0
	statusSpacing = 2.0
)

// Renderer composes one frame from the turtle state and trail.
type Renderer struct {
	surface Surface
	sprite  *Texture
}

// NewRenderer returns a renderer drawing to surface with the built-in
// cursor sprite.
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface, sprite: TurtleSprite()}
}

// Frame draws one complete frame: background, every trail segment in
// insertion order, the cursor rotated to its heading, then the status
// readout stacked from the top-left corner.
func (r *Renderer) Frame(st *turtle.State, trail *turtle.Trail) error {
	r.surface.Clear(backgroundColor)

	trail.ForEach(func(seg turtle.Segment) bool {
		r.surface.DrawLineSegment(seg.X1, seg.Y1, seg.X2, seg.Y2, seg.Color)
		return true
	})

	// Screen rotation runs opposite to the heading convention, so the
	// cursor quad turns by the negated heading.
	r.surface.DrawTexturedQuad(st.X, st.Y, turtle.SpriteSize, turtle.SpriteSize, -st.Heading, r.sprite)

	y := statusTop
	for _, line := range statusLines(st) {
		tex, w, h := r.surface.RenderTextToTexture(line, statusTextColor)
		r.surface.DrawTexturedQuad(statusLeft+float64(w)/2, y+float64(h)/2, float64(w), float64(h), 0, tex)
		y += float64(h) + statusSpacing
	}

	return r.surface.Present()
}

// statusLines formats the live readout shown in the top-left corner.
func statusLines(st *turtle.State) []string {
	pen := "Up"
	if st.PenDown {
		pen = "Down"
	}
	return []string{
		fmt.Sprintf("Position: (%.1f, %.1f)", st.X, st.Y),
		fmt.Sprintf("Angle: %.1f degrees", st.Heading),
		"Pen: " + pen,
		"Line Color: " + turtle.ColorName(st.Color),
	}
}
