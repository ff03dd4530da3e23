package keys

// NamedKey is the non-character meaning of a key after layout and modifiers
// have been applied. Names follow the W3C UI Events "key" values.
type NamedKey uint16

const (
	NamedUnidentified NamedKey = iota
	NamedCharacter

	NamedAlt
	NamedCapsLock
	NamedControl
	NamedNumLock
	NamedScrollLock
	NamedShift
	NamedSuper

	NamedEnter
	NamedTab
	NamedSpace

	NamedArrowDown
	NamedArrowLeft
	NamedArrowRight
	NamedArrowUp
	NamedEnd
	NamedHome
	NamedPageDown
	NamedPageUp

	NamedBackspace
	NamedClear
	NamedCopy
	NamedCrSel
	NamedCut
	NamedDelete
	NamedExSel
	NamedInsert
	NamedPaste
	NamedUndo

	NamedAgain
	NamedCancel
	NamedContextMenu
	NamedEscape
	NamedExecute
	NamedFind
	NamedHelp
	NamedPause
	NamedSelect
	NamedPrintScreen

	NamedPower
	NamedStandby
	NamedAppSwitch
	NamedModeChange
	NamedBrightnessDown
	NamedBrightnessUp
	NamedEject
	NamedLaunchMail
	NamedLaunchApplication1
	NamedLaunchApplication2

	NamedMediaTopMenu
	NamedMediaTrackNext
	NamedMediaTrackPrevious
	NamedMediaStop
	NamedMediaPlayPause
	NamedMediaPlay
	NamedMediaPause
	NamedMediaRecord
	NamedMediaFastForward
	NamedMediaRewind
	NamedAudioVolumeDown
	NamedAudioVolumeMute
	NamedAudioVolumeUp

	NamedBrowserBack
	NamedBrowserFavorites
	NamedBrowserForward
	NamedBrowserHome
	NamedBrowserRefresh
	NamedBrowserSearch
	NamedBrowserStop

	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
	NamedF11
	NamedF12
	NamedF13
	NamedF14
	NamedF15
	NamedF16
	NamedF17
	NamedF18
	NamedF19
	NamedF20
	NamedF21
	NamedF22
	NamedF23
	NamedF24

	numNamedKeys
)

var namedKeyNames = [numNamedKeys]string{
	NamedUnidentified: "Unidentified", NamedCharacter: "Character",
	NamedAlt: "Alt", NamedCapsLock: "CapsLock", NamedControl: "Control", NamedNumLock: "NumLock",
	NamedScrollLock: "ScrollLock", NamedShift: "Shift", NamedSuper: "Super",
	NamedEnter: "Enter", NamedTab: "Tab", NamedSpace: "Space",
	NamedArrowDown: "ArrowDown", NamedArrowLeft: "ArrowLeft", NamedArrowRight: "ArrowRight",
	NamedArrowUp: "ArrowUp", NamedEnd: "End", NamedHome: "Home", NamedPageDown: "PageDown", NamedPageUp: "PageUp",
	NamedBackspace: "Backspace", NamedClear: "Clear", NamedCopy: "Copy", NamedCrSel: "CrSel", NamedCut: "Cut",
	NamedDelete: "Delete", NamedExSel: "ExSel", NamedInsert: "Insert", NamedPaste: "Paste", NamedUndo: "Undo",
	NamedAgain: "Again", NamedCancel: "Cancel", NamedContextMenu: "ContextMenu", NamedEscape: "Escape",
	NamedExecute: "Execute", NamedFind: "Find", NamedHelp: "Help", NamedPause: "Pause", NamedSelect: "Select",
	NamedPrintScreen: "PrintScreen",
	NamedPower:       "Power", NamedStandby: "Standby", NamedAppSwitch: "AppSwitch", NamedModeChange: "ModeChange",
	NamedBrightnessDown: "BrightnessDown", NamedBrightnessUp: "BrightnessUp", NamedEject: "Eject",
	NamedLaunchMail: "LaunchMail", NamedLaunchApplication1: "LaunchApplication1",
	NamedLaunchApplication2: "LaunchApplication2",
	NamedMediaTopMenu:       "MediaTopMenu", NamedMediaTrackNext: "MediaTrackNext",
	NamedMediaTrackPrevious: "MediaTrackPrevious", NamedMediaStop: "MediaStop",
	NamedMediaPlayPause: "MediaPlayPause", NamedMediaPlay: "MediaPlay", NamedMediaPause: "MediaPause",
	NamedMediaRecord: "MediaRecord", NamedMediaFastForward: "MediaFastForward", NamedMediaRewind: "MediaRewind",
	NamedAudioVolumeDown: "AudioVolumeDown", NamedAudioVolumeMute: "AudioVolumeMute",
	NamedAudioVolumeUp: "AudioVolumeUp",
	NamedBrowserBack:   "BrowserBack", NamedBrowserFavorites: "BrowserFavorites",
	NamedBrowserForward: "BrowserForward", NamedBrowserHome: "BrowserHome",
	NamedBrowserRefresh: "BrowserRefresh", NamedBrowserSearch: "BrowserSearch", NamedBrowserStop: "BrowserStop",
	NamedF1: "F1", NamedF2: "F2", NamedF3: "F3", NamedF4: "F4", NamedF5: "F5", NamedF6: "F6",
	NamedF7: "F7", NamedF8: "F8", NamedF9: "F9", NamedF10: "F10", NamedF11: "F11", NamedF12: "F12",
	NamedF13: "F13", NamedF14: "F14", NamedF15: "F15", NamedF16: "F16", NamedF17: "F17", NamedF18: "F18",
	NamedF19: "F19", NamedF20: "F20", NamedF21: "F21", NamedF22: "F22", NamedF23: "F23", NamedF24: "F24",
}

// String returns the W3C key name.
func (n NamedKey) String() string {
	if n < numNamedKeys {
		return namedKeyNames[n]
	}
	return "Unidentified"
}

// Key is a logical key: either a named key or the literal text it produces.
// The zero value is an unidentified key.
type Key struct {
	Named NamedKey
	Char  string
}

// Character returns a Key producing s.
func Character(s string) Key {
	return Key{Named: NamedCharacter, Char: s}
}

// Named returns a Key for a named, non-character key.
func Named(n NamedKey) Key {
	return Key{Named: n}
}

// Unidentified is returned for keycodes without an engine-side meaning.
var Unidentified = Key{}

// IsCharacter reports whether the key produces text.
func (k Key) IsCharacter() bool {
	return k.Named == NamedCharacter
}

// IsUnidentified reports whether the key has no known meaning.
func (k Key) IsUnidentified() bool {
	return k.Named == NamedUnidentified
}

func (k Key) String() string {
	if k.IsCharacter() {
		return "Character(" + k.Char + ")"
	}
	return k.Named.String()
}
