package native

import "github.com/phanxgames/sdlbridge/keys"

// Event is a pending native event. It lives for one dispatch iteration.
type Event interface {
	EventTime() uint64
}

// Header carries the fields shared by every event.
type Header struct {
	Timestamp uint64
}

func (h Header) EventTime() uint64 { return h.Timestamp }

// KeyboardEvent is a key press or release.
type KeyboardEvent struct {
	Header
	WindowID WindowID
	Scancode keys.Scancode
	Keycode  keys.Keycode
	Mod      keys.Mod
	Pressed  bool
	Repeat   bool
}

// MouseMotionEvent reports the pointer position in native pixels together
// with the backend's accumulated relative motion.
type MouseMotionEvent struct {
	Header
	WindowID   WindowID
	X, Y       float32
	XRel, YRel float32
}

// Native mouse button indices.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
	ButtonX1     uint8 = 4
	ButtonX2     uint8 = 5
)

type MouseButtonEvent struct {
	Header
	WindowID WindowID
	Button   uint8
	Pressed  bool
	Clicks   uint8
	X, Y     float32
}

// MouseWheelEvent carries the scroll amount on each axis. Positive Y scrolls
// away from the user, positive X to the right.
type MouseWheelEvent struct {
	Header
	WindowID WindowID
	X, Y     float32
}

// WindowEventKind is the sub-type of a WindowEvent.
type WindowEventKind uint8

const (
	WindowNone WindowEventKind = iota
	WindowShown
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
)

var windowEventKindNames = [...]string{
	WindowNone:        "None",
	WindowShown:       "Shown",
	WindowHidden:      "Hidden",
	WindowExposed:     "Exposed",
	WindowMoved:       "Moved",
	WindowResized:     "Resized",
	WindowSizeChanged: "SizeChanged",
	WindowMinimized:   "Minimized",
	WindowMaximized:   "Maximized",
	WindowRestored:    "Restored",
	WindowEnter:       "Enter",
	WindowLeave:       "Leave",
	WindowFocusGained: "FocusGained",
	WindowFocusLost:   "FocusLost",
	WindowClose:       "Close",
}

func (k WindowEventKind) String() string {
	if int(k) < len(windowEventKindNames) {
		return windowEventKindNames[k]
	}
	return "Unknown"
}

// WindowEvent is a window state change. Data1 and Data2 hold the position
// for WindowMoved and the size for WindowResized and WindowSizeChanged.
type WindowEvent struct {
	Header
	WindowID WindowID
	Kind     WindowEventKind
	Data1    int32
	Data2    int32
}

// LifecycleKind is an application lifecycle transition on mobile platforms.
type LifecycleKind uint8

const (
	WillEnterBackground LifecycleKind = iota
	DidEnterBackground
	WillEnterForeground
	DidEnterForeground
)

type LifecycleEvent struct {
	Header
	Kind LifecycleKind
}

// QuitEvent asks the application to terminate.
type QuitEvent struct {
	Header
}

// UnhandledEvent is any native event without a translation. Type is the
// backend's raw event type.
type UnhandledEvent struct {
	Header
	Type uint32
}
