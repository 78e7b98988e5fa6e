package app

import (
	"fmt"

	"terrapin/hal"
	"terrapin/turtle"
)

// resolve applies one frame's event batch in arrival order, then dt
// seconds of held-key motion. It reports whether the program should keep
// running.
func (s *session) resolve(events []hal.Event, dt float64) bool {
	for _, ev := range events {
		switch ev.Kind {
		case hal.EventQuit:
			return false
		case hal.EventResize:
			s.resize(ev.Width, ev.Height)
		case hal.EventKey:
			if !s.handleKey(ev) {
				return false
			}
		}
	}

	// Held keys act once per frame, after the batch. Opposite turns both
	// apply and cancel out rather than excluding each other.
	if s.keys.left {
		s.st.Rotate(turtle.TurnLeft, dt)
	}
	if s.keys.right {
		s.st.Rotate(turtle.TurnRight, dt)
	}
	if s.keys.forward {
		x1, y1 := s.st.X, s.st.Y
		s.st.Advance(dt, s.width, s.height)
		if s.st.PenDown {
			s.trail.Append(turtle.Segment{
				X1: x1, Y1: y1,
				X2: s.st.X, Y2: s.st.Y,
				Color: s.st.Color,
			})
		}
	}
	return true
}

func (s *session) handleKey(ev hal.Event) bool {
	switch ev.Key {
	case hal.KeyEscape:
		if ev.Press {
			return false
		}
	case hal.KeyLeft:
		s.keys.left = ev.Press
	case hal.KeyRight:
		s.keys.right = ev.Press
	case hal.KeyUp:
		s.keys.forward = ev.Press
	case hal.KeyD:
		if ev.Press {
			s.st.SetPen(true)
		}
	case hal.KeyU:
		if ev.Press {
			s.st.SetPen(false)
		}
	case hal.KeyDigit1, hal.KeyDigit2, hal.KeyDigit3, hal.KeyDigit4, hal.KeyDigit5:
		if ev.Press {
			s.changeColor(1 + int(ev.Key-hal.KeyDigit1))
		}
	}
	return true
}

// changeColor selects a palette color and logs the outcome; invalid
// options keep the previous color.
func (s *session) changeColor(option int) {
	if err := s.st.SetColor(option); err != nil {
		s.logLine("Invalid color option")
		return
	}
	s.logLine("Color changed to " + turtle.ColorName(s.st.Color))
}

// resize adopts the new canvas size for movement clamping and tells the
// draw surface about it.
func (s *session) resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	s.width = width
	s.height = height
	s.surface.Resize(width, height)
	s.logLine(fmt.Sprintf("Window resized to %d x %d", width, height))
}
