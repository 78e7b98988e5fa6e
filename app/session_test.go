package app

import (
	"errors"
	"testing"

	"terrapin/hal"
	"terrapin/render"
	"terrapin/turtle"
)

// captureLogger stores log lines for assertions.
type captureLogger struct {
	lines []string
}

func (l *captureLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *captureLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

// stubSurface satisfies render.Surface; only resize calls are recorded.
type stubSurface struct {
	resizes [][2]int
}

func (s *stubSurface) Size() (int, int)                                   { return 800, 800 }
func (s *stubSurface) Clear(turtle.RGB)                                   {}
func (s *stubSurface) DrawLineSegment(x1, y1, x2, y2 float64, c turtle.RGB) {}
func (s *stubSurface) DrawTexturedQuad(cx, cy, w, h, rotation float64, tex *render.Texture) {
}
func (s *stubSurface) RenderTextToTexture(text string, c turtle.RGB) (*render.Texture, int, int) {
	return render.NewTexture(1, 1), 1, 1
}
func (s *stubSurface) Resize(width, height int) {
	s.resizes = append(s.resizes, [2]int{width, height})
}
func (s *stubSurface) Present() error { return nil }

func newTestSession() (*session, *captureLogger, *stubSurface) {
	log := &captureLogger{}
	surf := &stubSurface{}
	return &session{
		log:     log,
		surface: surf,
		rend:    render.NewRenderer(surf),
		st:      turtle.NewState(800, 800),
		trail:   turtle.NewTrail(),
		width:   800,
		height:  800,
	}, log, surf
}

func key(code hal.KeyCode, press bool) hal.Event {
	return hal.Event{Kind: hal.EventKey, Key: code, Press: press}
}

func TestResolveQuitEvent(t *testing.T) {
	s, _, _ := newTestSession()
	if s.resolve([]hal.Event{{Kind: hal.EventQuit}}, 0.016) {
		t.Fatalf("resolve(quit) = true, want false")
	}
}

func TestResolveEscapeStops(t *testing.T) {
	s, _, _ := newTestSession()
	if s.resolve([]hal.Event{key(hal.KeyEscape, true)}, 0.016) {
		t.Fatalf("resolve(escape press) = true, want false")
	}

	s, _, _ = newTestSession()
	if !s.resolve([]hal.Event{key(hal.KeyEscape, false)}, 0.016) {
		t.Fatalf("resolve(escape release) = false, want true")
	}
}

func TestResolveHeldRotation(t *testing.T) {
	s, _, _ := newTestSession()

	if !s.resolve([]hal.Event{key(hal.KeyLeft, true)}, 1.0) {
		t.Fatalf("resolve returned false")
	}
	if s.st.Heading != 90 {
		t.Fatalf("heading after press frame = %v, want 90", s.st.Heading)
	}

	// Still held on the next frame, no new events.
	s.resolve(nil, 1.0)
	if s.st.Heading != 180 {
		t.Fatalf("heading after held frame = %v, want 180", s.st.Heading)
	}

	// The release lands before held-key motion, so this frame adds nothing.
	s.resolve([]hal.Event{key(hal.KeyLeft, false)}, 1.0)
	if s.st.Heading != 180 {
		t.Fatalf("heading after release frame = %v, want 180", s.st.Heading)
	}
}

func TestResolveBothTurnsCancel(t *testing.T) {
	s, _, _ := newTestSession()
	s.resolve([]hal.Event{key(hal.KeyLeft, true), key(hal.KeyRight, true)}, 1.0)
	if s.st.Heading != 0 {
		t.Fatalf("heading with both turns held = %v, want 0", s.st.Heading)
	}
}

func TestResolveForwardDrawsWhilePenDown(t *testing.T) {
	s, _, _ := newTestSession()
	s.resolve([]hal.Event{key(hal.KeyD, true), key(hal.KeyUp, true)}, 1.0)

	if s.st.X != 600 || s.st.Y != 400 {
		t.Fatalf("position = (%v, %v), want (600, 400)", s.st.X, s.st.Y)
	}
	if s.trail.Len() != 1 {
		t.Fatalf("trail length = %d, want 1", s.trail.Len())
	}
	var got turtle.Segment
	s.trail.ForEach(func(seg turtle.Segment) bool { got = seg; return false })
	want := turtle.Segment{X1: 400, Y1: 400, X2: 600, Y2: 400, Color: turtle.Black}
	if got != want {
		t.Fatalf("segment = %+v, want %+v", got, want)
	}
}

func TestResolveForwardPenUpLeavesNoTrail(t *testing.T) {
	s, _, _ := newTestSession()
	s.resolve([]hal.Event{key(hal.KeyUp, true)}, 1.0)

	if s.st.X != 600 {
		t.Fatalf("x = %v, want 600", s.st.X)
	}
	if s.trail.Len() != 0 {
		t.Fatalf("trail length = %d, want 0", s.trail.Len())
	}
}

func TestResolvePenUpStopsMidTrail(t *testing.T) {
	s, _, _ := newTestSession()
	s.resolve([]hal.Event{key(hal.KeyD, true), key(hal.KeyUp, true)}, 0.5)
	s.resolve([]hal.Event{key(hal.KeyU, true)}, 0.5)

	if s.trail.Len() != 1 {
		t.Fatalf("trail length = %d, want 1", s.trail.Len())
	}
	if s.st.X != 600 {
		t.Fatalf("x = %v, want 600", s.st.X)
	}
}

func TestResolveZeroDeltaKeepsPosition(t *testing.T) {
	s, _, _ := newTestSession()
	s.resolve([]hal.Event{key(hal.KeyD, true), key(hal.KeyUp, true)}, 0)

	if s.st.X != 400 || s.st.Y != 400 {
		t.Fatalf("position = (%v, %v), want (400, 400)", s.st.X, s.st.Y)
	}
	// The pen still touches the canvas this frame, so a zero-length
	// segment is recorded.
	if s.trail.Len() != 1 {
		t.Fatalf("trail length = %d, want 1", s.trail.Len())
	}
}

func TestResolveColorKeys(t *testing.T) {
	s, log, _ := newTestSession()

	s.resolve([]hal.Event{key(hal.KeyDigit3, true)}, 0)
	if s.st.Color != turtle.Red {
		t.Fatalf("color = %v, want Red", s.st.Color)
	}
	s.resolve([]hal.Event{key(hal.KeyDigit5, true)}, 0)
	if s.st.Color != turtle.Yellow {
		t.Fatalf("color = %v, want Yellow", s.st.Color)
	}

	want := []string{"Color changed to Red", "Color changed to Yellow"}
	if len(log.lines) != len(want) {
		t.Fatalf("logged %d lines, want %d", len(log.lines), len(want))
	}
	for i, w := range want {
		if log.lines[i] != w {
			t.Fatalf("log line %d = %q, want %q", i, log.lines[i], w)
		}
	}
}

func TestResolveColorKeyReleaseIgnored(t *testing.T) {
	s, log, _ := newTestSession()
	s.resolve([]hal.Event{key(hal.KeyDigit2, false)}, 0)
	if s.st.Color != turtle.Black {
		t.Fatalf("color = %v, want Black", s.st.Color)
	}
	if len(log.lines) != 0 {
		t.Fatalf("logged %d lines, want 0", len(log.lines))
	}
}

func TestChangeColorInvalidOption(t *testing.T) {
	s, log, _ := newTestSession()
	s.changeColor(3)
	s.changeColor(9)

	if s.st.Color != turtle.Red {
		t.Fatalf("color = %v, want Red kept", s.st.Color)
	}
	want := []string{"Color changed to Red", "Invalid color option"}
	for i, w := range want {
		if log.lines[i] != w {
			t.Fatalf("log line %d = %q, want %q", i, log.lines[i], w)
		}
	}
}

func TestResolveResize(t *testing.T) {
	s, log, surf := newTestSession()
	s.resolve([]hal.Event{{Kind: hal.EventResize, Width: 640, Height: 480}}, 0)

	if s.width != 640 || s.height != 480 {
		t.Fatalf("session size = %dx%d, want 640x480", s.width, s.height)
	}
	if len(surf.resizes) != 1 || surf.resizes[0] != [2]int{640, 480} {
		t.Fatalf("surface resizes = %v, want [[640 480]]", surf.resizes)
	}
	if len(log.lines) != 1 || log.lines[0] != "Window resized to 640 x 480" {
		t.Fatalf("log lines = %v, want resize notice", log.lines)
	}

	// Movement clamps against the new bounds.
	s.resolve([]hal.Event{key(hal.KeyUp, true)}, 10)
	if s.st.X != 615 {
		t.Fatalf("x after resize clamp = %v, want 615", s.st.X)
	}
}

func TestResolveDegenerateResizeIgnored(t *testing.T) {
	s, log, surf := newTestSession()
	s.resolve([]hal.Event{{Kind: hal.EventResize, Width: 0, Height: -4}}, 0)

	if s.width != 800 || s.height != 800 {
		t.Fatalf("session size = %dx%d, want 800x800", s.width, s.height)
	}
	if len(surf.resizes) != 0 || len(log.lines) != 0 {
		t.Fatalf("degenerate resize produced side effects")
	}
}

func TestStepStopsOnQuit(t *testing.T) {
	s, _, _ := newTestSession()
	events := make(chan hal.Event, 4)
	events <- hal.Event{Kind: hal.EventQuit}
	s.events = events

	err := s.step()
	if !errors.Is(err, hal.ErrStop) {
		t.Fatalf("step() error = %v, want hal.ErrStop", err)
	}
}

func TestStepRendersFrame(t *testing.T) {
	s, _, _ := newTestSession()
	if err := s.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
}
