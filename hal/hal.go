package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrStop signals that the application asked the host loop to shut down
// cleanly. Host runners translate it into their own termination value.
var ErrStop = errors.New("stop requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// On hosts with a resizable window the buffer is reallocated when the
// window size changes; callers must re-query Width, Height, and Buffer
// each frame instead of caching them.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyD
	KeyU
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
)

// EventKind discriminates input events.
type EventKind uint8

const (
	// EventKey is a key press or release; Key and Press are set.
	EventKey EventKind = iota + 1
	// EventResize reports a new canvas size; Width and Height are set.
	EventResize
	// EventQuit reports a host-initiated shutdown, such as the window
	// close button.
	EventQuit
)

// Event is one discrete input event. Fields beyond Kind are meaningful
// only for the kinds that document them.
type Event struct {
	Kind   EventKind
	Key    KeyCode
	Press  bool
	Width  int
	Height int
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides the stream of discrete input events (best-effort on each
// platform; events may be dropped when the consumer falls behind).
type Input interface {
	Events() <-chan Event
}

// TickDuration is the nominal wall-clock duration of one Time tick.
const TickDuration = time.Millisecond

// Time provides a base tick stream.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the program and the outside
// world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
