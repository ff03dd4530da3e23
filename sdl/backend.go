// Package sdl is the SDL2 native backend, built on go-sdl2. Everything in
// it must run on the process main thread; call runtime.LockOSThread from an
// init function in package main.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/phanxgames/sdlbridge/native"
)

// Backend is an initialized SDL video subsystem.
type Backend struct {
	windows map[uint32]*Window
}

// New initializes SDL. It fails when no video driver is available, which is
// fatal at startup.
func New() (*Backend, error) {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: init: %w", err)
	}
	return &Backend{windows: make(map[uint32]*Window)}, nil
}

// PollEvent implements native.Backend.
func (b *Backend) PollEvent() native.Event {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return nil
		}
		if out := b.convert(ev); out != nil {
			return out
		}
	}
}

// CreateWindow implements native.Backend. Windows open centered.
func (b *Backend) CreateWindow(opts native.WindowOptions) (native.Window, error) {
	flags := uint32(sdl.WINDOW_SHOWN)
	if opts.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if opts.HighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}
	win, err := sdl.CreateWindow(opts.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(opts.Width), int32(opts.Height), flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", native.ErrCreateWindow, err)
	}
	id, err := win.GetID()
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("%w: window id: %w", native.ErrCreateWindow, err)
	}
	w := &Window{id: id, win: win, owner: b}
	b.windows[id] = w
	return w, nil
}

// SystemTheme implements native.Backend. SDL2 does not report one.
func (b *Backend) SystemTheme() native.Theme {
	return native.ThemeUnknown
}

// Close destroys every window and shuts SDL down.
func (b *Backend) Close() error {
	for _, w := range b.windows {
		_ = w.win.Destroy()
	}
	clear(b.windows)
	sdl.Quit()
	return nil
}

// scale returns the display scale of a live window, or 1.
func (b *Backend) scale(id uint32) float32 {
	if w, ok := b.windows[id]; ok {
		return w.DisplayScale()
	}
	return 1
}

// Window is an SDL window.
type Window struct {
	id    uint32
	win   *sdl.Window
	owner *Backend
}

func (w *Window) ID() native.WindowID { return native.WindowID(w.id) }

// DisplayScale is the drawable size divided by the window size, 2 on most
// high-DPI displays.
func (w *Window) DisplayScale() float32 {
	ww, _ := w.win.GetSize()
	dw, _ := w.win.GLGetDrawableSize()
	if ww <= 0 || dw <= 0 {
		return 1
	}
	return float32(dw) / float32(ww)
}

func (w *Window) Size() (uint32, uint32) {
	dw, dh := w.win.GLGetDrawableSize()
	return uint32(max(dw, 0)), uint32(max(dh, 0))
}

// RawHandle returns the platform window for X11, Windows and Cocoa.
func (w *Window) RawHandle() (native.RawHandle, bool) {
	info, err := w.win.GetWMInfo()
	if err != nil {
		return native.RawHandle{}, false
	}
	switch info.Subsystem {
	case sdl.SYSWM_X11:
		x := info.GetX11Info()
		return native.RawHandle{Subsystem: "x11", Window: uintptr(x.Window), Display: uintptr(x.Display)}, true
	case sdl.SYSWM_WINDOWS:
		wi := info.GetWindowsInfo()
		return native.RawHandle{Subsystem: "windows", Window: uintptr(wi.Window)}, true
	case sdl.SYSWM_COCOA:
		c := info.GetCocoaInfo()
		return native.RawHandle{Subsystem: "cocoa", Window: uintptr(c.Window)}, true
	default:
		return native.RawHandle{}, false
	}
}

func (w *Window) Destroy() error {
	delete(w.owner.windows, w.id)
	return w.win.Destroy()
}
