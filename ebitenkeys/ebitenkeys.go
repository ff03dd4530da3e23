// Package ebitenkeys maps the bridge's physical keys and mouse buttons onto
// Ebitengine's, for games that feed bridged input into ebiten-based code.
package ebitenkeys

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sdlbridge/engine"
	"github.com/phanxgames/sdlbridge/keys"
)

var keyTable = map[keys.KeyCode]ebiten.Key{
	keys.KeyA: ebiten.KeyA, keys.KeyB: ebiten.KeyB, keys.KeyC: ebiten.KeyC, keys.KeyD: ebiten.KeyD,
	keys.KeyE: ebiten.KeyE, keys.KeyF: ebiten.KeyF, keys.KeyG: ebiten.KeyG, keys.KeyH: ebiten.KeyH,
	keys.KeyI: ebiten.KeyI, keys.KeyJ: ebiten.KeyJ, keys.KeyK: ebiten.KeyK, keys.KeyL: ebiten.KeyL,
	keys.KeyM: ebiten.KeyM, keys.KeyN: ebiten.KeyN, keys.KeyO: ebiten.KeyO, keys.KeyP: ebiten.KeyP,
	keys.KeyQ: ebiten.KeyQ, keys.KeyR: ebiten.KeyR, keys.KeyS: ebiten.KeyS, keys.KeyT: ebiten.KeyT,
	keys.KeyU: ebiten.KeyU, keys.KeyV: ebiten.KeyV, keys.KeyW: ebiten.KeyW, keys.KeyX: ebiten.KeyX,
	keys.KeyY: ebiten.KeyY, keys.KeyZ: ebiten.KeyZ,

	keys.Digit0: ebiten.KeyDigit0, keys.Digit1: ebiten.KeyDigit1, keys.Digit2: ebiten.KeyDigit2,
	keys.Digit3: ebiten.KeyDigit3, keys.Digit4: ebiten.KeyDigit4, keys.Digit5: ebiten.KeyDigit5,
	keys.Digit6: ebiten.KeyDigit6, keys.Digit7: ebiten.KeyDigit7, keys.Digit8: ebiten.KeyDigit8,
	keys.Digit9: ebiten.KeyDigit9,

	keys.Backquote:     ebiten.KeyBackquote,
	keys.Backslash:     ebiten.KeyBackslash,
	keys.BracketLeft:   ebiten.KeyBracketLeft,
	keys.BracketRight:  ebiten.KeyBracketRight,
	keys.Comma:         ebiten.KeyComma,
	keys.Equal:         ebiten.KeyEqual,
	keys.IntlBackslash: ebiten.KeyIntlBackslash,
	keys.Minus:         ebiten.KeyMinus,
	keys.Period:        ebiten.KeyPeriod,
	keys.Quote:         ebiten.KeyQuote,
	keys.Semicolon:     ebiten.KeySemicolon,
	keys.Slash:         ebiten.KeySlash,

	keys.AltLeft:      ebiten.KeyAltLeft,
	keys.AltRight:     ebiten.KeyAltRight,
	keys.Backspace:    ebiten.KeyBackspace,
	keys.CapsLock:     ebiten.KeyCapsLock,
	keys.ContextMenu:  ebiten.KeyContextMenu,
	keys.ControlLeft:  ebiten.KeyControlLeft,
	keys.ControlRight: ebiten.KeyControlRight,
	keys.Enter:        ebiten.KeyEnter,
	keys.SuperLeft:    ebiten.KeyMetaLeft,
	keys.SuperRight:   ebiten.KeyMetaRight,
	keys.ShiftLeft:    ebiten.KeyShiftLeft,
	keys.ShiftRight:   ebiten.KeyShiftRight,
	keys.Space:        ebiten.KeySpace,
	keys.Tab:          ebiten.KeyTab,

	keys.Delete:     ebiten.KeyDelete,
	keys.End:        ebiten.KeyEnd,
	keys.Home:       ebiten.KeyHome,
	keys.Insert:     ebiten.KeyInsert,
	keys.PageDown:   ebiten.KeyPageDown,
	keys.PageUp:     ebiten.KeyPageUp,
	keys.ArrowDown:  ebiten.KeyArrowDown,
	keys.ArrowLeft:  ebiten.KeyArrowLeft,
	keys.ArrowRight: ebiten.KeyArrowRight,
	keys.ArrowUp:    ebiten.KeyArrowUp,

	keys.NumLock:        ebiten.KeyNumLock,
	keys.Numpad0:        ebiten.KeyNumpad0,
	keys.Numpad1:        ebiten.KeyNumpad1,
	keys.Numpad2:        ebiten.KeyNumpad2,
	keys.Numpad3:        ebiten.KeyNumpad3,
	keys.Numpad4:        ebiten.KeyNumpad4,
	keys.Numpad5:        ebiten.KeyNumpad5,
	keys.Numpad6:        ebiten.KeyNumpad6,
	keys.Numpad7:        ebiten.KeyNumpad7,
	keys.Numpad8:        ebiten.KeyNumpad8,
	keys.Numpad9:        ebiten.KeyNumpad9,
	keys.NumpadAdd:      ebiten.KeyNumpadAdd,
	keys.NumpadDecimal:  ebiten.KeyNumpadDecimal,
	keys.NumpadDivide:   ebiten.KeyNumpadDivide,
	keys.NumpadEnter:    ebiten.KeyNumpadEnter,
	keys.NumpadEqual:    ebiten.KeyNumpadEqual,
	keys.NumpadMultiply: ebiten.KeyNumpadMultiply,
	keys.NumpadSubtract: ebiten.KeyNumpadSubtract,

	keys.Escape:      ebiten.KeyEscape,
	keys.PrintScreen: ebiten.KeyPrintScreen,
	keys.ScrollLock:  ebiten.KeyScrollLock,
	keys.Pause:       ebiten.KeyPause,

	keys.F1: ebiten.KeyF1, keys.F2: ebiten.KeyF2, keys.F3: ebiten.KeyF3, keys.F4: ebiten.KeyF4,
	keys.F5: ebiten.KeyF5, keys.F6: ebiten.KeyF6, keys.F7: ebiten.KeyF7, keys.F8: ebiten.KeyF8,
	keys.F9: ebiten.KeyF9, keys.F10: ebiten.KeyF10, keys.F11: ebiten.KeyF11, keys.F12: ebiten.KeyF12,
	keys.F13: ebiten.KeyF13, keys.F14: ebiten.KeyF14, keys.F15: ebiten.KeyF15, keys.F16: ebiten.KeyF16,
	keys.F17: ebiten.KeyF17, keys.F18: ebiten.KeyF18, keys.F19: ebiten.KeyF19, keys.F20: ebiten.KeyF20,
	keys.F21: ebiten.KeyF21, keys.F22: ebiten.KeyF22, keys.F23: ebiten.KeyF23, keys.F24: ebiten.KeyF24,
}

// Key returns the ebiten key at the same physical location. Keys ebiten has
// no constant for, such as media and browser keys, report false.
func Key(k keys.KeyCode) (ebiten.Key, bool) {
	ek, ok := keyTable[k]
	return ek, ok
}

// MouseButton returns the matching ebiten button. Only the five buttons
// ebiten knows are mapped.
func MouseButton(b engine.MouseButton) (ebiten.MouseButton, bool) {
	switch b.Kind {
	case engine.MouseButtonLeft:
		return ebiten.MouseButtonLeft, true
	case engine.MouseButtonRight:
		return ebiten.MouseButtonRight, true
	case engine.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle, true
	case engine.MouseButtonBack:
		return ebiten.MouseButton3, true
	case engine.MouseButtonForward:
		return ebiten.MouseButton4, true
	default:
		return 0, false
	}
}

// Modifiers lists the ebiten modifier keys held in mod, left and right
// sides kept apart.
func Modifiers(mod keys.Mod) []ebiten.Key {
	var out []ebiten.Key
	for _, m := range []struct {
		bit keys.Mod
		key ebiten.Key
	}{
		{keys.ModLShift, ebiten.KeyShiftLeft},
		{keys.ModRShift, ebiten.KeyShiftRight},
		{keys.ModLCtrl, ebiten.KeyControlLeft},
		{keys.ModRCtrl, ebiten.KeyControlRight},
		{keys.ModLAlt, ebiten.KeyAltLeft},
		{keys.ModRAlt, ebiten.KeyAltRight},
		{keys.ModLGui, ebiten.KeyMetaLeft},
		{keys.ModRGui, ebiten.KeyMetaRight},
	} {
		if mod&m.bit != 0 {
			out = append(out, m.key)
		}
	}
	return out
}
