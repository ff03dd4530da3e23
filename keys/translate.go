package keys

import "unicode"

// PhysicalKey translates a native scancode into the engine's physical key.
// Scancodes without an engine-side equivalent, including values outside the
// native range, translate to KeyUnidentified.
func PhysicalKey(sc Scancode) KeyCode {
	if sc >= NumScancodes {
		return KeyUnidentified
	}
	return scancodeTable[sc]
}

// LogicalKey translates a native keycode and the modifier state active when
// it was produced into the engine's logical key. Letters are upper-cased
// when either shift key is held; no other layout logic is applied since the
// native backend has already resolved the keycode for the active layout.
// Left and right modifier keys collapse into a single named key.
func LogicalKey(code Keycode, mod Mod) Key {
	if code&KeycodeScancodeMask != 0 {
		sc := Scancode(code &^ KeycodeScancodeMask)
		if sc >= NumScancodes {
			return Unidentified
		}
		return scancodeKeys[sc]
	}

	switch code {
	case KeycodeUnknown:
		return Unidentified
	case KeycodeReturn:
		return Named(NamedEnter)
	case KeycodeEscape:
		return Named(NamedEscape)
	case KeycodeBackspace:
		return Named(NamedBackspace)
	case KeycodeTab:
		return Named(NamedTab)
	case KeycodeSpace:
		return Named(NamedSpace)
	case KeycodeDelete:
		return Named(NamedDelete)
	}

	if code >= 'a' && code <= 'z' {
		if mod.Shift() {
			return Character(string(rune(code - 'a' + 'A')))
		}
		return Character(string(rune(code)))
	}

	if code > 0 && code <= unicode.MaxRune {
		if r := rune(code); unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return Character(string(r))
		}
	}
	return Unidentified
}

// scancodeTable is indexed by Scancode. Zero entries are KeyUnidentified.
var scancodeTable = [NumScancodes]KeyCode{
	// alphas
	ScancodeA: KeyA, ScancodeB: KeyB, ScancodeC: KeyC, ScancodeD: KeyD, ScancodeE: KeyE,
	ScancodeF: KeyF, ScancodeG: KeyG, ScancodeH: KeyH, ScancodeI: KeyI, ScancodeJ: KeyJ,
	ScancodeK: KeyK, ScancodeL: KeyL, ScancodeM: KeyM, ScancodeN: KeyN, ScancodeO: KeyO,
	ScancodeP: KeyP, ScancodeQ: KeyQ, ScancodeR: KeyR, ScancodeS: KeyS, ScancodeT: KeyT,
	ScancodeU: KeyU, ScancodeV: KeyV, ScancodeW: KeyW, ScancodeX: KeyX, ScancodeY: KeyY,
	ScancodeZ: KeyZ,
	// numerals
	Scancode1: Digit1, Scancode2: Digit2, Scancode3: Digit3, Scancode4: Digit4, Scancode5: Digit5,
	Scancode6: Digit6, Scancode7: Digit7, Scancode8: Digit8, Scancode9: Digit9, Scancode0: Digit0,
	// whitespace
	ScancodeReturn: Enter, ScancodeEscape: Escape, ScancodeBackspace: Backspace,
	ScancodeTab: Tab, ScancodeSpace: Space,
	// punctuation
	ScancodeMinus: Minus, ScancodeEquals: Equal, ScancodeLeftBracket: BracketLeft,
	ScancodeRightBracket: BracketRight, ScancodeBackslash: Backslash, ScancodeNonUSHash: Backslash,
	ScancodeSemicolon: Semicolon, ScancodeApostrophe: Quote, ScancodeGrave: Backquote,
	ScancodeComma: Comma, ScancodePeriod: Period, ScancodeSlash: Slash,
	ScancodeCapsLock: CapsLock,
	// function keys
	ScancodeF1: F1, ScancodeF2: F2, ScancodeF3: F3, ScancodeF4: F4, ScancodeF5: F5, ScancodeF6: F6,
	ScancodeF7: F7, ScancodeF8: F8, ScancodeF9: F9, ScancodeF10: F10, ScancodeF11: F11, ScancodeF12: F12,
	ScancodeF13: F13, ScancodeF14: F14, ScancodeF15: F15, ScancodeF16: F16, ScancodeF17: F17, ScancodeF18: F18,
	ScancodeF19: F19, ScancodeF20: F20, ScancodeF21: F21, ScancodeF22: F22, ScancodeF23: F23, ScancodeF24: F24,
	// navigation
	ScancodePrintScreen: PrintScreen, ScancodeScrollLock: ScrollLock, ScancodePause: Pause,
	ScancodeInsert: Insert, ScancodeHome: Home, ScancodePageUp: PageUp,
	ScancodeDelete: Delete, ScancodeEnd: End, ScancodePageDown: PageDown,
	ScancodeRight: ArrowRight, ScancodeLeft: ArrowLeft, ScancodeDown: ArrowDown, ScancodeUp: ArrowUp,
	// numpad
	ScancodeNumLockClear: NumLock,
	ScancodeKpDivide:     NumpadDivide, ScancodeKpMultiply: NumpadMultiply, ScancodeKpMinus: NumpadSubtract,
	ScancodeKpPlus: NumpadAdd, ScancodeKpEnter: NumpadEnter, ScancodeKpPeriod: NumpadDecimal,
	ScancodeKp1: Numpad1, ScancodeKp2: Numpad2, ScancodeKp3: Numpad3, ScancodeKp4: Numpad4, ScancodeKp5: Numpad5,
	ScancodeKp6: Numpad6, ScancodeKp7: Numpad7, ScancodeKp8: Numpad8, ScancodeKp9: Numpad9, ScancodeKp0: Numpad0,
	ScancodeKpComma: NumpadComma, ScancodeKpBackspace: NumpadBackspace, ScancodeKpEquals: NumpadEqual,
	ScancodeKpMemStore: NumpadMemoryStore, ScancodeKpMemRecall: NumpadMemoryRecall,
	ScancodeKpMemClear: NumpadMemoryClear, ScancodeKpMemAdd: NumpadMemoryAdd,
	ScancodeKpMemSubtract: NumpadMemorySubtract,
	ScancodeKpLeftParen:   NumpadParenLeft, ScancodeKpRightParen: NumpadParenRight, ScancodeKpHash: NumpadHash,
	ScancodeKpClear: NumpadClear, ScancodeKpClearEntry: NumpadClearEntry,
	// modifiers
	ScancodeLCtrl: ControlLeft, ScancodeLShift: ShiftLeft, ScancodeLAlt: AltLeft, ScancodeLGui: SuperLeft,
	ScancodeRCtrl: ControlRight, ScancodeRShift: ShiftRight, ScancodeRAlt: AltRight, ScancodeRGui: SuperRight,
	// media
	ScancodeAudioNext: MediaTrackNext, ScancodeAudioPrev: MediaTrackPrevious, ScancodeAudioStop: MediaStop,
	ScancodeAudioPlay: MediaPlayPause, ScancodeMediaSelect: MediaSelect,
	ScancodeMute: AudioVolumeMute, ScancodeAudioMute: AudioVolumeMute,
	ScancodeVolumeUp: AudioVolumeUp, ScancodeVolumeDown: AudioVolumeDown,
	// browser
	ScancodeAcSearch: BrowserSearch, ScancodeAcHome: BrowserHome, ScancodeAcBack: BrowserBack,
	ScancodeAcForward: BrowserForward, ScancodeAcStop: BrowserStop, ScancodeAcRefresh: BrowserRefresh,
	ScancodeAcBookmarks: BrowserFavorites,
	// launch
	ScancodeMail: LaunchMail, ScancodeComputer: LaunchApp1, ScancodeCalculator: LaunchApp2, ScancodeEject: Eject,
	ScancodeBrightnessDown: BrightnessDown, ScancodeBrightnessUp: BrightnessUp,
	// international and IME
	ScancodeNonUSBackslash: IntlBackslash,
	ScancodeInternational1: IntlRo, ScancodeInternational2: KanaMode, ScancodeInternational3: IntlYen,
	ScancodeInternational4: Convert, ScancodeInternational5: NonConvert,
	ScancodeLang1: Lang1, ScancodeLang2: Lang2, ScancodeLang3: Lang3, ScancodeLang4: Lang4, ScancodeLang5: Lang5,
	// other
	ScancodePower: Power, ScancodeHelp: Help, ScancodeMenu: ContextMenu, ScancodeSelect: Select,
	ScancodeAgain: Again, ScancodeUndo: Undo,
	ScancodeCut: Cut, ScancodeCopy: Copy, ScancodePaste: Paste, ScancodeFind: Find,
	ScancodeSleep: Sleep,
}

func char(s string) Key { return Character(s) }

// scancodeKeys holds the logical meaning of keycodes that carry
// KeycodeScancodeMask, indexed by the masked-off scancode.
var scancodeKeys = [NumScancodes]Key{
	ScancodeCapsLock: Named(NamedCapsLock),
	// function keys
	ScancodeF1: Named(NamedF1), ScancodeF2: Named(NamedF2), ScancodeF3: Named(NamedF3), ScancodeF4: Named(NamedF4),
	ScancodeF5: Named(NamedF5), ScancodeF6: Named(NamedF6), ScancodeF7: Named(NamedF7), ScancodeF8: Named(NamedF8),
	ScancodeF9: Named(NamedF9), ScancodeF10: Named(NamedF10), ScancodeF11: Named(NamedF11), ScancodeF12: Named(NamedF12),
	ScancodeF13: Named(NamedF13), ScancodeF14: Named(NamedF14), ScancodeF15: Named(NamedF15), ScancodeF16: Named(NamedF16),
	ScancodeF17: Named(NamedF17), ScancodeF18: Named(NamedF18), ScancodeF19: Named(NamedF19), ScancodeF20: Named(NamedF20),
	ScancodeF21: Named(NamedF21), ScancodeF22: Named(NamedF22), ScancodeF23: Named(NamedF23), ScancodeF24: Named(NamedF24),
	// navigation
	ScancodePrintScreen: Named(NamedPrintScreen), ScancodeScrollLock: Named(NamedScrollLock), ScancodePause: Named(NamedPause),
	ScancodeInsert: Named(NamedInsert), ScancodeHome: Named(NamedHome), ScancodePageUp: Named(NamedPageUp),
	ScancodeEnd: Named(NamedEnd), ScancodePageDown: Named(NamedPageDown),
	ScancodeUp: Named(NamedArrowUp), ScancodeLeft: Named(NamedArrowLeft),
	ScancodeDown: Named(NamedArrowDown), ScancodeRight: Named(NamedArrowRight),
	// numpad
	ScancodeNumLockClear: Named(NamedNumLock),
	ScancodeKpDivide:     char("/"), ScancodeKpMultiply: char("*"), ScancodeKpMinus: char("-"), ScancodeKpPlus: char("+"),
	ScancodeKpEnter: Named(NamedEnter),
	ScancodeKp0:     char("0"), ScancodeKp1: char("1"), ScancodeKp2: char("2"), ScancodeKp3: char("3"), ScancodeKp4: char("4"),
	ScancodeKp5: char("5"), ScancodeKp6: char("6"), ScancodeKp7: char("7"), ScancodeKp8: char("8"), ScancodeKp9: char("9"),
	ScancodeKpPeriod: char("."), ScancodeKpEquals: char("="), ScancodeKpEqualsAS400: char("="), ScancodeKpComma: char(","),
	ScancodeKpLeftParen: char("("), ScancodeKpRightParen: char(")"),
	ScancodeKpLeftBrace: char("{"), ScancodeKpRightBrace: char("}"),
	ScancodeKpPercent: char("%"), ScancodeKpLess: char("<"), ScancodeKpGreater: char(">"),
	ScancodeKpAmpersand: char("&"), ScancodeKpVerticalBar: char("|"), ScancodeKpColon: char(":"),
	ScancodeKpHash: char("#"), ScancodeKpAt: char("@"), ScancodeKpExclam: char("!"), ScancodeKpPlusMinus: char("±"),
	ScancodeKpTab: Named(NamedTab), ScancodeKpBackspace: Named(NamedBackspace), ScancodeKpSpace: Named(NamedSpace),
	ScancodeKpClear: Named(NamedClear), ScancodeKpClearEntry: Named(NamedClear),
	// other
	ScancodeApplication: Named(NamedAppSwitch), ScancodePower: Named(NamedPower), ScancodeExecute: Named(NamedExecute),
	ScancodeHelp: Named(NamedHelp), ScancodeMenu: Named(NamedContextMenu), ScancodeSelect: Named(NamedSelect),
	ScancodeAgain: Named(NamedAgain), ScancodeUndo: Named(NamedUndo), ScancodeCut: Named(NamedCut),
	ScancodeCopy: Named(NamedCopy), ScancodePaste: Named(NamedPaste), ScancodeFind: Named(NamedFind),
	ScancodeCancel: Named(NamedCancel), ScancodeClear: Named(NamedClear),
	ScancodeCrSel: Named(NamedCrSel), ScancodeExSel: Named(NamedExSel),
	// audio
	ScancodeMute: Named(NamedAudioVolumeMute), ScancodeAudioMute: Named(NamedAudioVolumeMute),
	ScancodeVolumeUp: Named(NamedAudioVolumeUp), ScancodeVolumeDown: Named(NamedAudioVolumeDown),
	// modifiers
	ScancodeLCtrl: Named(NamedControl), ScancodeRCtrl: Named(NamedControl),
	ScancodeLShift: Named(NamedShift), ScancodeRShift: Named(NamedShift),
	ScancodeLAlt: Named(NamedAlt), ScancodeRAlt: Named(NamedAlt),
	ScancodeLGui: Named(NamedSuper), ScancodeRGui: Named(NamedSuper),
	ScancodeMode: Named(NamedModeChange),
	// media
	ScancodeMediaSelect: Named(NamedMediaTopMenu), ScancodeAudioNext: Named(NamedMediaTrackNext),
	ScancodeAudioPrev: Named(NamedMediaTrackPrevious), ScancodeAudioStop: Named(NamedMediaStop),
	ScancodeAudioPlay:   Named(NamedMediaPlayPause),
	ScancodeAudioRewind: Named(NamedMediaRewind), ScancodeAudioFastForward: Named(NamedMediaFastForward),
	// power and launch
	ScancodeSleep: Named(NamedStandby), ScancodeEject: Named(NamedEject),
	ScancodeBrightnessDown: Named(NamedBrightnessDown), ScancodeBrightnessUp: Named(NamedBrightnessUp),
	ScancodeMail:     Named(NamedLaunchMail),
	ScancodeComputer: Named(NamedLaunchApplication1), ScancodeCalculator: Named(NamedLaunchApplication2),
	// browser
	ScancodeAcSearch: Named(NamedBrowserSearch), ScancodeAcHome: Named(NamedBrowserHome),
	ScancodeAcBack: Named(NamedBrowserBack), ScancodeAcForward: Named(NamedBrowserForward),
	ScancodeAcStop: Named(NamedBrowserStop), ScancodeAcRefresh: Named(NamedBrowserRefresh),
	ScancodeAcBookmarks: Named(NamedBrowserFavorites),
}
