package keys

// KeyCode identifies a key by its position on the keyboard, independent of
// the active layout. Names follow the W3C UI Events "code" values.
type KeyCode uint16

const (
	KeyUnidentified KeyCode = iota

	// writing system keys
	Backquote
	Backslash
	BracketLeft
	BracketRight
	Comma
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Equal
	IntlBackslash
	IntlRo
	IntlYen
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Minus
	Period
	Quote
	Semicolon
	Slash

	// functional keys
	AltLeft
	AltRight
	Backspace
	CapsLock
	ContextMenu
	ControlLeft
	ControlRight
	Enter
	SuperLeft
	SuperRight
	ShiftLeft
	ShiftRight
	Space
	Tab
	Convert
	KanaMode
	Lang1
	Lang2
	Lang3
	Lang4
	Lang5
	NonConvert

	// control pad and arrows
	Delete
	End
	Help
	Home
	Insert
	PageDown
	PageUp
	ArrowDown
	ArrowLeft
	ArrowRight
	ArrowUp

	// numpad
	NumLock
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadBackspace
	NumpadClear
	NumpadClearEntry
	NumpadComma
	NumpadDecimal
	NumpadDivide
	NumpadEnter
	NumpadEqual
	NumpadHash
	NumpadMemoryAdd
	NumpadMemoryClear
	NumpadMemoryRecall
	NumpadMemoryStore
	NumpadMemorySubtract
	NumpadMultiply
	NumpadParenLeft
	NumpadParenRight
	NumpadSubtract

	// function section
	Escape
	PrintScreen
	ScrollLock
	Pause

	// media and system
	BrowserBack
	BrowserFavorites
	BrowserForward
	BrowserHome
	BrowserRefresh
	BrowserSearch
	BrowserStop
	Eject
	LaunchApp1
	LaunchApp2
	LaunchMail
	MediaPlayPause
	MediaSelect
	MediaStop
	MediaTrackNext
	MediaTrackPrevious
	Power
	Sleep
	AudioVolumeDown
	AudioVolumeMute
	AudioVolumeUp
	BrightnessDown
	BrightnessUp

	// legacy editing keys
	Again
	Copy
	Cut
	Find
	Paste
	Select
	Undo

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	numKeyCodes
)

var keyCodeNames = [numKeyCodes]string{
	KeyUnidentified: "Unidentified",

	Backquote: "Backquote", Backslash: "Backslash", BracketLeft: "BracketLeft", BracketRight: "BracketRight",
	Comma: "Comma", Digit0: "Digit0", Digit1: "Digit1", Digit2: "Digit2", Digit3: "Digit3", Digit4: "Digit4",
	Digit5: "Digit5", Digit6: "Digit6", Digit7: "Digit7", Digit8: "Digit8", Digit9: "Digit9", Equal: "Equal",
	IntlBackslash: "IntlBackslash", IntlRo: "IntlRo", IntlYen: "IntlYen",
	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE", KeyF: "KeyF", KeyG: "KeyG",
	KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ", KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN",
	KeyO: "KeyO", KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT", KeyU: "KeyU",
	KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY", KeyZ: "KeyZ",
	Minus: "Minus", Period: "Period", Quote: "Quote", Semicolon: "Semicolon", Slash: "Slash",

	AltLeft: "AltLeft", AltRight: "AltRight", Backspace: "Backspace", CapsLock: "CapsLock",
	ContextMenu: "ContextMenu", ControlLeft: "ControlLeft", ControlRight: "ControlRight", Enter: "Enter",
	SuperLeft: "SuperLeft", SuperRight: "SuperRight", ShiftLeft: "ShiftLeft", ShiftRight: "ShiftRight",
	Space: "Space", Tab: "Tab", Convert: "Convert", KanaMode: "KanaMode",
	Lang1: "Lang1", Lang2: "Lang2", Lang3: "Lang3", Lang4: "Lang4", Lang5: "Lang5", NonConvert: "NonConvert",

	Delete: "Delete", End: "End", Help: "Help", Home: "Home", Insert: "Insert", PageDown: "PageDown",
	PageUp: "PageUp", ArrowDown: "ArrowDown", ArrowLeft: "ArrowLeft", ArrowRight: "ArrowRight", ArrowUp: "ArrowUp",

	NumLock: "NumLock", Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2", Numpad3: "Numpad3",
	Numpad4: "Numpad4", Numpad5: "Numpad5", Numpad6: "Numpad6", Numpad7: "Numpad7", Numpad8: "Numpad8",
	Numpad9: "Numpad9", NumpadAdd: "NumpadAdd", NumpadBackspace: "NumpadBackspace", NumpadClear: "NumpadClear",
	NumpadClearEntry: "NumpadClearEntry", NumpadComma: "NumpadComma", NumpadDecimal: "NumpadDecimal",
	NumpadDivide: "NumpadDivide", NumpadEnter: "NumpadEnter", NumpadEqual: "NumpadEqual", NumpadHash: "NumpadHash",
	NumpadMemoryAdd: "NumpadMemoryAdd", NumpadMemoryClear: "NumpadMemoryClear",
	NumpadMemoryRecall: "NumpadMemoryRecall", NumpadMemoryStore: "NumpadMemoryStore",
	NumpadMemorySubtract: "NumpadMemorySubtract", NumpadMultiply: "NumpadMultiply",
	NumpadParenLeft: "NumpadParenLeft", NumpadParenRight: "NumpadParenRight", NumpadSubtract: "NumpadSubtract",

	Escape: "Escape", PrintScreen: "PrintScreen", ScrollLock: "ScrollLock", Pause: "Pause",

	BrowserBack: "BrowserBack", BrowserFavorites: "BrowserFavorites", BrowserForward: "BrowserForward",
	BrowserHome: "BrowserHome", BrowserRefresh: "BrowserRefresh", BrowserSearch: "BrowserSearch",
	BrowserStop: "BrowserStop", Eject: "Eject", LaunchApp1: "LaunchApp1", LaunchApp2: "LaunchApp2",
	LaunchMail: "LaunchMail", MediaPlayPause: "MediaPlayPause", MediaSelect: "MediaSelect",
	MediaStop: "MediaStop", MediaTrackNext: "MediaTrackNext", MediaTrackPrevious: "MediaTrackPrevious",
	Power: "Power", Sleep: "Sleep", AudioVolumeDown: "AudioVolumeDown", AudioVolumeMute: "AudioVolumeMute",
	AudioVolumeUp: "AudioVolumeUp", BrightnessDown: "BrightnessDown", BrightnessUp: "BrightnessUp",

	Again: "Again", Copy: "Copy", Cut: "Cut", Find: "Find", Paste: "Paste", Select: "Select", Undo: "Undo",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6", F7: "F7", F8: "F8", F9: "F9", F10: "F10",
	F11: "F11", F12: "F12", F13: "F13", F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18",
	F19: "F19", F20: "F20", F21: "F21", F22: "F22", F23: "F23", F24: "F24",
}

// String returns the W3C code name of the key.
func (k KeyCode) String() string {
	if k < numKeyCodes {
		return keyCodeNames[k]
	}
	return "Unidentified"
}
