package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/phanxgames/sdlbridge/keys"
	"github.com/phanxgames/sdlbridge/native"
)

var windowKinds = map[uint8]native.WindowEventKind{
	sdl.WINDOWEVENT_SHOWN:        native.WindowShown,
	sdl.WINDOWEVENT_HIDDEN:       native.WindowHidden,
	sdl.WINDOWEVENT_EXPOSED:      native.WindowExposed,
	sdl.WINDOWEVENT_MOVED:        native.WindowMoved,
	sdl.WINDOWEVENT_SIZE_CHANGED: native.WindowSizeChanged,
	sdl.WINDOWEVENT_MINIMIZED:    native.WindowMinimized,
	sdl.WINDOWEVENT_MAXIMIZED:    native.WindowMaximized,
	sdl.WINDOWEVENT_RESTORED:     native.WindowRestored,
	sdl.WINDOWEVENT_ENTER:        native.WindowEnter,
	sdl.WINDOWEVENT_LEAVE:        native.WindowLeave,
	sdl.WINDOWEVENT_FOCUS_GAINED: native.WindowFocusGained,
	sdl.WINDOWEVENT_FOCUS_LOST:   native.WindowFocusLost,
	sdl.WINDOWEVENT_CLOSE:        native.WindowClose,
}

// convert turns an SDL event into a native event. It returns nil for events
// that are reported twice by SDL: a user resize arrives as RESIZED followed
// by SIZE_CHANGED, and only the latter is kept. Pointer positions and sizes
// are reported in drawable pixels.
func (b *Backend) convert(ev sdl.Event) native.Event {
	switch e := ev.(type) {
	case *sdl.KeyboardEvent:
		return native.KeyboardEvent{
			Header:   header(e.Timestamp),
			WindowID: native.WindowID(e.WindowID),
			Scancode: keys.Scancode(e.Keysym.Scancode),
			Keycode:  keys.Keycode(e.Keysym.Sym),
			Mod:      keys.Mod(e.Keysym.Mod),
			Pressed:  e.State == sdl.PRESSED,
			Repeat:   e.Repeat != 0,
		}
	case *sdl.MouseMotionEvent:
		s := b.scale(e.WindowID)
		return native.MouseMotionEvent{
			Header:   header(e.Timestamp),
			WindowID: native.WindowID(e.WindowID),
			X:        float32(e.X) * s,
			Y:        float32(e.Y) * s,
			XRel:     float32(e.XRel),
			YRel:     float32(e.YRel),
		}
	case *sdl.MouseButtonEvent:
		s := b.scale(e.WindowID)
		return native.MouseButtonEvent{
			Header:   header(e.Timestamp),
			WindowID: native.WindowID(e.WindowID),
			Button:   e.Button,
			Pressed:  e.State == sdl.PRESSED,
			Clicks:   e.Clicks,
			X:        float32(e.X) * s,
			Y:        float32(e.Y) * s,
		}
	case *sdl.MouseWheelEvent:
		// Precise deltas keep fractional trackpad scrolling; SDL before
		// 2.0.18 leaves them zero.
		x, y := e.PreciseX, e.PreciseY
		if x == 0 && y == 0 {
			x, y = float32(e.X), float32(e.Y)
		}
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		return native.MouseWheelEvent{
			Header:   header(e.Timestamp),
			WindowID: native.WindowID(e.WindowID),
			X:        x,
			Y:        y,
		}
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return nil
		}
		kind, ok := windowKinds[e.Event]
		if !ok {
			return native.UnhandledEvent{Header: header(e.Timestamp), Type: e.Type}
		}
		out := native.WindowEvent{
			Header:   header(e.Timestamp),
			WindowID: native.WindowID(e.WindowID),
			Kind:     kind,
			Data1:    e.Data1,
			Data2:    e.Data2,
		}
		if kind == native.WindowSizeChanged {
			if w, ok := b.windows[e.WindowID]; ok {
				dw, dh := w.Size()
				out.Data1, out.Data2 = int32(dw), int32(dh)
			}
		}
		return out
	case *sdl.QuitEvent:
		return native.QuitEvent{Header: header(e.Timestamp)}
	case *sdl.CommonEvent:
		if kind, ok := lifecycleKind(e.Type); ok {
			return native.LifecycleEvent{Header: header(e.Timestamp), Kind: kind}
		}
		return native.UnhandledEvent{Header: header(e.Timestamp), Type: e.Type}
	default:
		return native.UnhandledEvent{Header: header(ev.GetTimestamp()), Type: ev.GetType()}
	}
}

func lifecycleKind(t uint32) (native.LifecycleKind, bool) {
	switch t {
	case sdl.APP_WILLENTERBACKGROUND:
		return native.WillEnterBackground, true
	case sdl.APP_DIDENTERBACKGROUND:
		return native.DidEnterBackground, true
	case sdl.APP_WILLENTERFOREGROUND:
		return native.WillEnterForeground, true
	case sdl.APP_DIDENTERFOREGROUND:
		return native.DidEnterForeground, true
	default:
		return 0, false
	}
}

func header(ts uint32) native.Header {
	return native.Header{Timestamp: uint64(ts)}
}
