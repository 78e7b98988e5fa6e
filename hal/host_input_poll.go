//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeys maps the window keys the program reacts to onto key codes.
var hostKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyD, KeyD},
	{ebiten.KeyU, KeyU},
	{ebiten.KeyDigit1, KeyDigit1},
	{ebiten.KeyDigit2, KeyDigit2},
	{ebiten.KeyDigit3, KeyDigit3},
	{ebiten.KeyDigit4, KeyDigit4},
	{ebiten.KeyDigit5, KeyDigit5},
}

// poll emits edge events for every mapped key. It must run on the window
// loop, once per frame, before the application step.
func (in *hostInput) poll() {
	for _, m := range hostKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			in.pushKey(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			in.pushKey(m.code, false)
		}
	}
}
