package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "puzzleadventure/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw codes the binding table understands,
// in the order they are polled
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, engineinput.KeyArrowUp},
	{ebiten.KeyArrowDown, engineinput.KeyArrowDown},
	{ebiten.KeyArrowLeft, engineinput.KeyArrowLeft},
	{ebiten.KeyArrowRight, engineinput.KeyArrowRight},
	{ebiten.KeyTab, engineinput.KeyTab},
	{ebiten.KeyEnter, engineinput.KeyEnter},
	{ebiten.KeyNumpadEnter, engineinput.KeyEnter},
	{ebiten.KeySpace, engineinput.KeySpace},
	{ebiten.KeyEscape, engineinput.KeyEscape},
	{ebiten.KeyBackspace, engineinput.KeyBackspace},
	{ebiten.KeyH, "h"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyB, "b"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyDigit4, "4"},
	{ebiten.KeyDigit5, "5"},
	{ebiten.KeyDigit6, "6"},
	{ebiten.KeyDigit7, "7"},
	{ebiten.KeyDigit8, "8"},
	{ebiten.KeyDigit9, "9"},
	{ebiten.KeyNumpad1, "1"},
	{ebiten.KeyNumpad2, "2"},
	{ebiten.KeyNumpad3, "3"},
	{ebiten.KeyNumpad4, "4"},
	{ebiten.KeyNumpad5, "5"},
	{ebiten.KeyNumpad6, "6"},
	{ebiten.KeyNumpad7, "7"},
	{ebiten.KeyNumpad8, "8"},
	{ebiten.KeyNumpad9, "9"},
}

// repeatable keys fire again while held
var repeatable = map[ebiten.Key]bool{
	ebiten.KeyArrowUp:    true,
	ebiten.KeyArrowDown:  true,
	ebiten.KeyArrowLeft:  true,
	ebiten.KeyArrowRight: true,
	ebiten.KeyTab:        true,
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.closing() {
		return ebiten.Termination
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range keyCodes {
		if !shouldFire(k.key, inpututil.KeyPressDuration(k.key)) {
			continue
		}
		code := k.code
		if k.key == ebiten.KeyTab && shift {
			code = engineinput.KeyShiftTab
		}
		e.emitCode(engineinput.DeviceKeyboard, code, -1)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if idx, ok := hitTest(e.hits, float32(mx), float32(my)); ok {
			e.emitCode(engineinput.DevicePointer, engineinput.CodePointer, idx)
		}
	}
	return nil
}

// shouldFire reports whether a key held for duration ticks triggers this tick
func shouldFire(key ebiten.Key, duration int) bool {
	if duration == 1 {
		return true
	}
	if !repeatable[key] || duration < keyRepeatInitialDelay {
		return false
	}
	return (duration-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

func (e *EbitenRenderer) emitCode(device engineinput.Device, code string, index int) {
	raw := engineinput.RawInput{Device: device, Code: code, Index: index}
	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
	if intent.Action == engineinput.ActionNone {
		return
	}
	e.emit(intent)
}

// hitTest returns the control index under the point
func hitTest(hits []hitbox, x, y float32) (int, bool) {
	for _, h := range hits {
		if h.contains(x, y) {
			return h.index, true
		}
	}
	return -1, false
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
