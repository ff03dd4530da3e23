// Package replay is an in-memory native backend that plays back queued or
// scripted events one frame per runner tick. It needs no display, which
// makes it the backend of choice for tests and headless runs.
package replay

import (
	"fmt"

	"github.com/phanxgames/sdlbridge/keys"
	"github.com/phanxgames/sdlbridge/native"
)

// Backend replays frames of native events. PollEvent returns the events of
// the current frame and then nil, after which the next call starts the next
// frame.
type Backend struct {
	frames [][]native.Event
	frame  int
	offset int

	scale    float32
	theme    native.Theme
	autoQuit bool
	quitSent bool

	nextID     native.WindowID
	windows    []*Window
	failCreate  int
	failDestroy int
	closed      bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithScale sets the display scale of every window created afterwards.
func WithScale(scale float32) Option {
	return func(b *Backend) { b.scale = scale }
}

// WithTheme sets the reported system theme.
func WithTheme(t native.Theme) Option {
	return func(b *Backend) { b.theme = t }
}

// WithoutAutoQuit keeps the backend silent once every frame has been
// played instead of delivering a final quit event.
func WithoutAutoQuit() Option {
	return func(b *Backend) { b.autoQuit = false }
}

// New returns an empty backend with scale 1 that quits after the last
// frame.
func New(opts ...Option) *Backend {
	b := &Backend{scale: 1, autoQuit: true, nextID: 1}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Frame queues a new frame holding events.
func (b *Backend) Frame(events ...native.Event) *Backend {
	b.frames = append(b.frames, events)
	return b
}

// Wait queues n empty frames.
func (b *Backend) Wait(n int) *Backend {
	for range n {
		b.frames = append(b.frames, nil)
	}
	return b
}

// Inject appends ev to the last queued frame, or to a new frame when that
// one has already been played.
func (b *Backend) Inject(ev native.Event) {
	last := len(b.frames) - 1
	if last < b.frame {
		b.frames = append(b.frames, nil)
		last = len(b.frames) - 1
	}
	b.frames[last] = append(b.frames[last], ev)
}

// FailNextCreate makes the next n CreateWindow calls fail.
func (b *Backend) FailNextCreate(n int) {
	b.failCreate = n
}

// FailNextDestroy makes the next n Window.Destroy calls fail. The windows
// are still marked destroyed.
func (b *Backend) FailNextDestroy(n int) {
	b.failDestroy = n
}

// Done reports whether every queued frame has been played.
func (b *Backend) Done() bool {
	return b.frame >= len(b.frames)
}

// PollEvent implements native.Backend.
func (b *Backend) PollEvent() native.Event {
	if b.frame >= len(b.frames) {
		if b.autoQuit && !b.quitSent {
			b.quitSent = true
			return native.QuitEvent{}
		}
		return nil
	}
	events := b.frames[b.frame]
	if b.offset >= len(events) {
		b.frame++
		b.offset = 0
		return nil
	}
	ev := events[b.offset]
	b.offset++
	return ev
}

// CreateWindow implements native.Backend. Ids are handed out from 1 in
// creation order.
func (b *Backend) CreateWindow(opts native.WindowOptions) (native.Window, error) {
	if b.closed {
		return nil, fmt.Errorf("%w: backend closed", native.ErrCreateWindow)
	}
	if b.failCreate > 0 {
		b.failCreate--
		return nil, fmt.Errorf("%w: %q refused", native.ErrCreateWindow, opts.Title)
	}
	w := &Window{id: b.nextID, opts: opts, scale: b.scale, owner: b}
	b.nextID++
	b.windows = append(b.windows, w)
	return w, nil
}

// SystemTheme implements native.Backend.
func (b *Backend) SystemTheme() native.Theme {
	return b.theme
}

// Close implements native.Backend. It destroys every live window.
func (b *Backend) Close() error {
	for _, w := range b.windows {
		w.destroyed = true
	}
	b.closed = true
	return nil
}

// Windows returns every window created so far, including destroyed ones.
func (b *Backend) Windows() []*Window {
	return b.windows
}

// Window returns the window with the given id.
func (b *Backend) Window(id native.WindowID) (*Window, bool) {
	for _, w := range b.windows {
		if w.id == id {
			return w, true
		}
	}
	return nil, false
}

// Window is a window that exists only in memory.
type Window struct {
	id        native.WindowID
	opts      native.WindowOptions
	scale     float32
	destroyed bool
	owner     *Backend
}

func (w *Window) ID() native.WindowID { return w.id }

func (w *Window) DisplayScale() float32 { return w.scale }

// SetScale changes the display scale, as when moved to another monitor.
func (w *Window) SetScale(s float32) { w.scale = s }

func (w *Window) Size() (uint32, uint32) {
	return uint32(float32(w.opts.Width)*w.scale + 0.5), uint32(float32(w.opts.Height)*w.scale + 0.5)
}

// Options returns the options the window was created with.
func (w *Window) Options() native.WindowOptions { return w.opts }

func (w *Window) RawHandle() (native.RawHandle, bool) {
	return native.RawHandle{Subsystem: "replay", Window: uintptr(w.id)}, true
}

func (w *Window) Destroy() error {
	if w.destroyed {
		return fmt.Errorf("replay: window %d already destroyed", w.id)
	}
	w.destroyed = true
	if w.owner.failDestroy > 0 {
		w.owner.failDestroy--
		return fmt.Errorf("replay: destroy window %d refused", w.id)
	}
	return nil
}

// Destroyed reports whether Destroy has been called.
func (w *Window) Destroyed() bool { return w.destroyed }

// KeyDown returns a key press as the native backend would report it for
// the character r, e.g. 'A' is 'a' with left shift held.
func KeyDown(window native.WindowID, r rune) native.KeyboardEvent {
	sc, kc, mod := keyFor(r)
	return native.KeyboardEvent{WindowID: window, Scancode: sc, Keycode: kc, Mod: mod, Pressed: true}
}

// KeyUp is the release matching KeyDown.
func KeyUp(window native.WindowID, r rune) native.KeyboardEvent {
	ev := KeyDown(window, r)
	ev.Pressed = false
	return ev
}

func keyFor(r rune) (keys.Scancode, keys.Keycode, keys.Mod) {
	mod := keys.ModNone
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
		mod = keys.ModLShift
	}
	switch {
	case r >= 'a' && r <= 'z':
		return keys.ScancodeA + keys.Scancode(r-'a'), keys.Keycode(r), mod
	case r == '0':
		return keys.Scancode0, keys.Keycode(r), mod
	case r >= '1' && r <= '9':
		return keys.Scancode1 + keys.Scancode(r-'1'), keys.Keycode(r), mod
	case r == ' ':
		return keys.ScancodeSpace, keys.KeycodeSpace, mod
	case r == '\r' || r == '\n':
		return keys.ScancodeReturn, keys.KeycodeReturn, mod
	case r == '\t':
		return keys.ScancodeTab, keys.KeycodeTab, mod
	case r == '\b':
		return keys.ScancodeBackspace, keys.KeycodeBackspace, mod
	case r == 0x1b:
		return keys.ScancodeEscape, keys.KeycodeEscape, mod
	default:
		return keys.ScancodeUnknown, keys.Keycode(r), mod
	}
}

// ScancodeDown returns a press of the key at sc with a US layout keycode.
func ScancodeDown(window native.WindowID, sc keys.Scancode, mod keys.Mod) native.KeyboardEvent {
	return native.KeyboardEvent{
		WindowID: window,
		Scancode: sc,
		Keycode:  keycodeFor(sc),
		Mod:      mod,
		Pressed:  true,
	}
}

// keycodeFor is the keycode of sc on a US layout.
func keycodeFor(sc keys.Scancode) keys.Keycode {
	switch {
	case sc >= keys.ScancodeA && sc <= keys.ScancodeZ:
		return keys.Keycode('a' + rune(sc-keys.ScancodeA))
	case sc >= keys.Scancode1 && sc < keys.Scancode0:
		return keys.Keycode('1' + rune(sc-keys.Scancode1))
	case sc == keys.Scancode0:
		return '0'
	case sc == keys.ScancodeReturn:
		return keys.KeycodeReturn
	case sc == keys.ScancodeEscape:
		return keys.KeycodeEscape
	case sc == keys.ScancodeBackspace:
		return keys.KeycodeBackspace
	case sc == keys.ScancodeTab:
		return keys.KeycodeTab
	case sc == keys.ScancodeSpace:
		return keys.KeycodeSpace
	case sc == keys.ScancodeDelete:
		return keys.KeycodeDelete
	default:
		return keys.KeycodeFromScancode(sc)
	}
}
