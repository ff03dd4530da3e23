// Package native describes the narrow surface sdlbridge needs from a native
// windowing and input backend: a non-blocking event queue, window creation
// and a few per-window queries.
package native

import "errors"

// ErrCreateWindow is wrapped by backends when the native side refuses to
// create a window.
var ErrCreateWindow = errors.New("native: create window")

// WindowID is the backend's opaque window identifier.
type WindowID uint32

// Theme is the system color scheme reported by the backend.
type Theme uint8

const (
	ThemeUnknown Theme = iota
	ThemeLight
	ThemeDark
)

// WindowOptions describes a window to create.
type WindowOptions struct {
	Title     string
	Width     uint32
	Height    uint32
	Resizable bool
	HighDPI   bool
}

// RawHandle carries the platform handles a graphics API needs to create a
// surface for a window.
type RawHandle struct {
	Subsystem string
	Window    uintptr
	Display   uintptr
}

// Window is a live native window.
type Window interface {
	ID() WindowID
	// DisplayScale is the number of native pixels per logical unit.
	DisplayScale() float32
	// Size is the drawable size in native pixels.
	Size() (width, height uint32)
	RawHandle() (RawHandle, bool)
	Destroy() error
}

// Backend is a native windowing context. All methods must be called from
// the thread that created it.
type Backend interface {
	// PollEvent returns the next queued event without blocking, or nil when
	// the queue is drained.
	PollEvent() Event
	CreateWindow(opts WindowOptions) (Window, error)
	SystemTheme() Theme
	Close() error
}
