// Package app assembles the drawing program: it owns the session that
// turns input events and elapsed time into turtle state, trail growth,
// and rendered frames.
package app

import (
	"errors"
	"time"

	"terrapin/hal"
	"terrapin/render"
	"terrapin/turtle"
)

// New wires a session to h and returns the per-frame step function the
// host loop drives.
func New(h hal.HAL) func() error {
	s, err := newSession(h)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

// session is the live program: turtle state, trail, held keys, and the
// renderer, fed by the host's event and tick streams.
type session struct {
	log     hal.Logger
	surface render.Surface
	rend    *render.Renderer
	events  <-chan hal.Event
	ticks   <-chan uint64

	st    *turtle.State
	trail *turtle.Trail

	keys  heldKeys
	batch []hal.Event

	width  int
	height int
}

// heldKeys tracks the keys driving continuous motion between frames.
type heldKeys struct {
	left    bool
	right   bool
	forward bool
}

func newSession(h hal.HAL) (*session, error) {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, errors.New("app: no framebuffer")
	}

	var events <-chan hal.Event
	if in := h.Input(); in != nil {
		events = in.Events()
	}
	var ticks <-chan uint64
	if t := h.Time(); t != nil {
		ticks = t.Ticks()
	}

	surface := render.NewFramebufferSurface(fb)
	width, height := fb.Width(), fb.Height()
	return &session{
		log:     h.Logger(),
		surface: surface,
		rend:    render.NewRenderer(surface),
		events:  events,
		ticks:   ticks,
		st:      turtle.NewState(width, height),
		trail:   turtle.NewTrail(),
		width:   width,
		height:  height,
	}, nil
}

// step advances the program by one frame: drain inputs, apply them plus
// the elapsed time, then render. It returns hal.ErrStop when the user
// asked to quit.
func (s *session) step() error {
	batch := s.drainEvents()
	dt := s.drainElapsed()
	if !s.resolve(batch, dt) {
		return hal.ErrStop
	}
	return s.rend.Frame(s.st, s.trail)
}

// drainEvents collects the events that arrived since the previous frame,
// reusing the session's batch storage.
func (s *session) drainEvents() []hal.Event {
	s.batch = s.batch[:0]
	if s.events == nil {
		return s.batch
	}
	for {
		select {
		case ev := <-s.events:
			s.batch = append(s.batch, ev)
		default:
			return s.batch
		}
	}
}

// drainElapsed converts the ticks since the previous frame into seconds.
func (s *session) drainElapsed() float64 {
	if s.ticks == nil {
		return 0
	}
	n := 0
	for {
		select {
		case <-s.ticks:
			n++
		default:
			return (time.Duration(n) * hal.TickDuration).Seconds()
		}
	}
}

func (s *session) logLine(line string) {
	if s.log != nil {
		s.log.WriteLineString(line)
	}
}
