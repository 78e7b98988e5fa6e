// Package turtle holds the drawing state: the cursor with its position,
// heading, pen, and color, plus the trail of segments it has drawn.
package turtle

import "math"

// Movement constants, in canvas pixels and degrees.
const (
	// Speed is the forward speed in pixels per second.
	Speed = 200.0
	// TurnSpeed is the rotation speed in degrees per second.
	TurnSpeed = 90.0
	// SpriteSize is the edge length of the square cursor sprite in pixels.
	SpriteSize = 50.0
)

// Turn selects a rotation direction.
type Turn uint8

const (
	TurnLeft Turn = iota + 1
	TurnRight
)

// State is the turtle: position, heading, pen flag, and pen color.
//
// Heading 0 points along +x and grows counterclockwise on screen; the
// canvas y axis grows downward.
type State struct {
	X, Y    float64
	Heading float64
	PenDown bool
	Color   RGB
}

// NewState returns a turtle at the canvas center: heading 0, pen up,
// color black.
func NewState(canvasWidth, canvasHeight int) *State {
	return &State{
		X:     float64(canvasWidth) / 2,
		Y:     float64(canvasHeight) / 2,
		Color: Black,
	}
}

// Advance moves the turtle along its heading for dt seconds. Each axis is
// clamped so the sprite footprint stays fully inside the canvas. dt <= 0
// leaves the state untouched.
func (s *State) Advance(dt float64, canvasWidth, canvasHeight int) {
	if dt <= 0 {
		return
	}

	rad := s.Heading * math.Pi / 180
	x := s.X + Speed*math.Cos(rad)*dt
	y := s.Y - Speed*math.Sin(rad)*dt // y grows downward

	half := SpriteSize / 2
	s.X = clamp(x, half, float64(canvasWidth)-half)
	s.Y = clamp(y, half, float64(canvasHeight)-half)
}

// Rotate turns the turtle by TurnSpeed*dt degrees. Left increases the
// heading, right decreases it; the result wraps into [0, 360). dt <= 0
// leaves the state untouched.
func (s *State) Rotate(turn Turn, dt float64) {
	if dt <= 0 {
		return
	}

	switch turn {
	case TurnLeft:
		s.Heading += TurnSpeed * dt
	case TurnRight:
		s.Heading -= TurnSpeed * dt
	default:
		return
	}
	s.Heading = math.Mod(s.Heading, 360)
	if s.Heading < 0 {
		s.Heading += 360
	}
}

// SetPen lowers (true) or raises (false) the pen.
func (s *State) SetPen(down bool) {
	s.PenDown = down
}

// SetColor selects a pen color by palette option, 1 through 5. An
// out-of-range option keeps the current color and reports
// ErrInvalidColorOption.
func (s *State) SetColor(option int) error {
	if option < 1 || option > len(palette) {
		return ErrInvalidColorOption
	}
	s.Color = palette[option-1].color
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
