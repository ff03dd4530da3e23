package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CursorMoved reports the cursor position in logical units. Delta is the
// change since the previous known position, nil if there was none.
type CursorMoved struct {
	Window   donburi.Entity
	Position mgl32.Vec2
	Delta    *mgl32.Vec2
}

type CursorEntered struct {
	Window donburi.Entity
}

type CursorLeft struct {
	Window donburi.Entity
}

// WindowResized carries the new size in physical pixels, unscaled.
type WindowResized struct {
	Window donburi.Entity
	Width  float32
	Height float32
}

// WindowMoved carries the window's new screen position as reported by the
// backend.
type WindowMoved struct {
	Window   donburi.Entity
	Position mgl32.Vec2
}

type WindowFocused struct {
	Window  donburi.Entity
	Focused bool
}

// WindowOccluded is published when a window is shown, exposed or hidden.
type WindowOccluded struct {
	Window   donburi.Entity
	Occluded bool
}

type WindowCloseRequested struct {
	Window donburi.Entity
}

// WindowCreated is published once the native window for Window exists.
type WindowCreated struct {
	Window donburi.Entity
}

// WindowClosed is published after the native window for Window is destroyed.
// The entity may no longer be valid.
type WindowClosed struct {
	Window donburi.Entity
}

// AppLifecycle is the application's run state on platforms that suspend
// apps.
type AppLifecycle uint8

const (
	LifecycleIdle AppLifecycle = iota
	LifecycleRunning
	LifecycleWillSuspend
	LifecycleSuspended
	LifecycleWillResume
)

func (l AppLifecycle) String() string {
	switch l {
	case LifecycleRunning:
		return "Running"
	case LifecycleWillSuspend:
		return "WillSuspend"
	case LifecycleSuspended:
		return "Suspended"
	case LifecycleWillResume:
		return "WillResume"
	default:
		return "Idle"
	}
}

// IsActive reports whether the app is expected to be rendering.
func (l AppLifecycle) IsActive() bool {
	return l == LifecycleRunning || l == LifecycleWillSuspend || l == LifecycleWillResume
}

// Event types published by a windowing backend. Subscribe with
// events.Subscribe and deliver with ProcessEvents or ProcessAllEvents.
var (
	KeyboardInputEvent        = events.NewEventType[KeyboardInput]()
	MouseButtonInputEvent     = events.NewEventType[MouseButtonInput]()
	MouseMotionEvent          = events.NewEventType[MouseMotion]()
	MouseWheelEvent           = events.NewEventType[MouseWheel]()
	CursorMovedEvent          = events.NewEventType[CursorMoved]()
	CursorEnteredEvent        = events.NewEventType[CursorEntered]()
	CursorLeftEvent           = events.NewEventType[CursorLeft]()
	WindowResizedEvent        = events.NewEventType[WindowResized]()
	WindowMovedEvent          = events.NewEventType[WindowMoved]()
	WindowFocusedEvent        = events.NewEventType[WindowFocused]()
	WindowOccludedEvent       = events.NewEventType[WindowOccluded]()
	WindowCloseRequestedEvent = events.NewEventType[WindowCloseRequested]()
	WindowCreatedEvent        = events.NewEventType[WindowCreated]()
	WindowClosedEvent         = events.NewEventType[WindowClosed]()
	AppLifecycleEvent         = events.NewEventType[AppLifecycle]()

	// AppExitEvent asks the runner to stop after the current update.
	AppExitEvent = events.NewEventType[AppExit]()
)
