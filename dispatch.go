package sdlbridge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/sdlbridge/engine"
	"github.com/phanxgames/sdlbridge/keys"
	"github.com/phanxgames/sdlbridge/native"
)

// pump drains the native queue and dispatches every event in delivery
// order. It reports whether a quit event was seen.
func (c *Context) pump(w donburi.World) (quit bool) {
	for ev := c.backend.PollEvent(); ev != nil; ev = c.backend.PollEvent() {
		if c.dispatch(w, ev) {
			quit = true
		}
	}
	return quit
}

func (c *Context) dispatch(w donburi.World, ev native.Event) (quit bool) {
	switch ev := ev.(type) {
	case native.WindowEvent:
		c.windowEvent(w, ev)
	case native.KeyboardEvent:
		c.keyboard(w, ev)
	case native.MouseMotionEvent:
		c.mouseMotion(w, ev)
	case native.MouseButtonEvent:
		c.mouseButton(w, ev)
	case native.MouseWheelEvent:
		c.mouseWheel(w, ev)
	case native.LifecycleEvent:
		engine.AppLifecycleEvent.Publish(w, lifecycle(ev.Kind))
	case native.QuitEvent:
		c.log.Debug("quit requested")
		return true
	case native.UnhandledEvent:
		if c.cfg.Debug {
			c.log.Debug("unhandled native event", "type", ev.Type)
		}
	default:
		if c.cfg.Debug {
			c.log.Debug("unhandled native event", "type", fmt.Sprintf("%T", ev))
		}
	}
	return false
}

// resolve looks up the entry and display scale of a native window. Events
// for windows that are unknown or being torn down are dropped.
func (c *Context) resolve(w donburi.World, id native.WindowID, what string) (*donburi.Entry, float32, bool) {
	e, scale, ok := c.registry.EntityAndScale(id)
	if !ok || !w.Valid(e) {
		c.log.Debug("dropped event for unknown window", "event", what, "window", id)
		return nil, 0, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(engine.WindowComponent) {
		c.log.Debug("dropped event for closing window", "event", what, "window", id)
		return nil, 0, false
	}
	return entry, scale, true
}

func (c *Context) windowEvent(w donburi.World, ev native.WindowEvent) {
	entry, scale, ok := c.resolve(w, ev.WindowID, ev.Kind.String())
	if !ok {
		return
	}
	e := entry.Entity()
	win := engine.WindowComponent.Get(entry)

	switch ev.Kind {
	case native.WindowShown, native.WindowExposed:
		engine.WindowOccludedEvent.Publish(w, engine.WindowOccluded{Window: e, Occluded: false})
	case native.WindowHidden:
		engine.WindowOccludedEvent.Publish(w, engine.WindowOccluded{Window: e, Occluded: true})
	case native.WindowMoved:
		win.Position = engine.At(ev.Data1, ev.Data2)
		engine.WindowMovedEvent.Publish(w, engine.WindowMoved{
			Window:   e,
			Position: mgl32.Vec2{float32(ev.Data1), float32(ev.Data2)},
		})
	case native.WindowResized, native.WindowSizeChanged:
		width, height := clampDim(ev.Data1), clampDim(ev.Data2)
		win.Resolution.SetPhysicalResolution(width, height)
		win.Resolution.SetScaleFactor(scale)
		engine.WindowResizedEvent.Publish(w, engine.WindowResized{
			Window: e,
			Width:  float32(width),
			Height: float32(height),
		})
	case native.WindowEnter:
		engine.CursorEnteredEvent.Publish(w, engine.CursorEntered{Window: e})
	case native.WindowLeave:
		win.ClearCursorPosition()
		engine.CursorLeftEvent.Publish(w, engine.CursorLeft{Window: e})
	case native.WindowFocusGained, native.WindowFocusLost:
		win.Focused = ev.Kind == native.WindowFocusGained
		engine.WindowFocusedEvent.Publish(w, engine.WindowFocused{Window: e, Focused: win.Focused})
	case native.WindowClose:
		engine.WindowCloseRequestedEvent.Publish(w, engine.WindowCloseRequested{Window: e})
	default:
		c.log.Debug("ignored window event", "kind", ev.Kind, "window", ev.WindowID)
	}
}

func clampDim(v int32) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}

func (c *Context) keyboard(w donburi.World, ev native.KeyboardEvent) {
	entry, _, ok := c.resolve(w, ev.WindowID, "keyboard")
	if !ok {
		return
	}
	logical := keys.LogicalKey(ev.Keycode, ev.Mod)
	in := engine.KeyboardInput{
		KeyCode:    keys.PhysicalKey(ev.Scancode),
		Scancode:   ev.Scancode,
		LogicalKey: logical,
		State:      buttonState(ev.Pressed),
		Repeat:     ev.Repeat,
		Window:     entry.Entity(),
	}
	if ev.Pressed && logical.IsCharacter() {
		in.Text = logical.Char
	}
	engine.KeyboardInputEvent.Publish(w, in)
}

func (c *Context) mouseMotion(w donburi.World, ev native.MouseMotionEvent) {
	entry, scale, ok := c.resolve(w, ev.WindowID, "mouse motion")
	if !ok {
		return
	}
	engine.MouseMotionEvent.Publish(w, engine.MouseMotion{Delta: mgl32.Vec2{ev.XRel, ev.YRel}})

	win := engine.WindowComponent.Get(entry)
	physical := mgl32.Vec2{ev.X, ev.Y}
	var delta *mgl32.Vec2
	if prev, ok := win.PhysicalCursorPosition(); ok {
		d := physical.Sub(prev).Mul(1 / scale)
		delta = &d
	}
	win.SetPhysicalCursorPosition(physical)
	engine.CursorMovedEvent.Publish(w, engine.CursorMoved{
		Window:   entry.Entity(),
		Position: physical.Mul(1 / scale),
		Delta:    delta,
	})
}

func (c *Context) mouseButton(w donburi.World, ev native.MouseButtonEvent) {
	entry, _, ok := c.resolve(w, ev.WindowID, "mouse button")
	if !ok {
		return
	}
	engine.MouseButtonInputEvent.Publish(w, engine.MouseButtonInput{
		Button: mouseButton(ev.Button),
		State:  buttonState(ev.Pressed),
		Window: entry.Entity(),
	})
}

func (c *Context) mouseWheel(w donburi.World, ev native.MouseWheelEvent) {
	entry, _, ok := c.resolve(w, ev.WindowID, "mouse wheel")
	if !ok {
		return
	}
	engine.MouseWheelEvent.Publish(w, engine.MouseWheel{
		Unit:   engine.ScrollPixel,
		X:      ev.X,
		Y:      ev.Y,
		Window: entry.Entity(),
	})
}

func buttonState(pressed bool) engine.ButtonState {
	if pressed {
		return engine.Pressed
	}
	return engine.Released
}

func mouseButton(b uint8) engine.MouseButton {
	switch b {
	case native.ButtonLeft:
		return engine.LeftButton
	case native.ButtonMiddle:
		return engine.MiddleButton
	case native.ButtonRight:
		return engine.RightButton
	case native.ButtonX1:
		return engine.BackButton
	case native.ButtonX2:
		return engine.ForwardButton
	default:
		return engine.OtherButton(uint16(b))
	}
}

func lifecycle(k native.LifecycleKind) engine.AppLifecycle {
	switch k {
	case native.WillEnterBackground:
		return engine.LifecycleWillSuspend
	case native.DidEnterBackground:
		return engine.LifecycleSuspended
	case native.WillEnterForeground:
		return engine.LifecycleWillResume
	default:
		return engine.LifecycleRunning
	}
}
