package turtle

import "errors"

// RGB is a draw color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// The pen colors selectable with the digit keys.
var (
	Black  = RGB{0, 0, 0}
	Blue   = RGB{0, 0, 1}
	Red    = RGB{1, 0, 0}
	Green  = RGB{0, 1, 0}
	Yellow = RGB{1, 1, 0}
)

// ErrInvalidColorOption reports a palette option outside 1..5.
var ErrInvalidColorOption = errors.New("invalid color option")

// palette lists the named pen colors in option order.
var palette = [...]struct {
	name  string
	color RGB
}{
	{"Black", Black},
	{"Blue", Blue},
	{"Red", Red},
	{"Green", Green},
	{"Yellow", Yellow},
}

// ColorName returns the palette name for c, or "Custom" when c matches no
// palette entry exactly.
func ColorName(c RGB) string {
	for _, p := range palette {
		if p.color == c {
			return p.name
		}
	}
	return "Custom"
}
