package sdlbridge

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/sdlbridge/engine"
	"github.com/phanxgames/sdlbridge/native"
)

var windowQuery = donburi.NewQuery(filter.Contains(engine.WindowComponent))

// updateWindows closes native windows whose declaration went away and
// creates native windows for new declarations. A failed creation is
// reported and retried on the next update; the others still proceed.
func (c *Context) updateWindows(w donburi.World) error {
	if err := c.guard.Check(); err != nil {
		return err
	}
	errs := c.closeWindows(w)

	var pending []donburi.Entity
	windowQuery.Each(w, func(entry *donburi.Entry) {
		if _, ok := c.registry.NativeID(entry.Entity()); !ok {
			pending = append(pending, entry.Entity())
		}
	})
	for _, e := range pending {
		if err := c.createWindow(w, e); err != nil {
			c.log.Warn("window creation failed", "entity", e, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Context) createWindow(w donburi.World, e donburi.Entity) error {
	entry := w.Entry(e)
	win := engine.WindowComponent.Get(entry)
	opts := c.windowOptions(win)

	nw, err := c.backend.CreateWindow(opts)
	if err != nil {
		return fmt.Errorf("create window %q for entity %v: %w", opts.Title, e, err)
	}
	if err := c.registry.Register(nw.ID(), e, nw); err != nil {
		err = fmt.Errorf("register window %d for entity %v: %w", nw.ID(), e, err)
		if derr := nw.Destroy(); derr != nil {
			err = errors.Join(err, fmt.Errorf("destroy window %d: %w", nw.ID(), derr))
		}
		return err
	}

	switch c.backend.SystemTheme() {
	case native.ThemeLight:
		win.Theme = engine.ThemeLight
	case native.ThemeDark:
		win.Theme = engine.ThemeDark
	}
	if win.Resolution.IsZero() {
		win.Resolution = engine.NewWindowResolution(float32(opts.Width), float32(opts.Height))
	}
	win.Resolution.SetScaleFactorAndApplyToPhysicalSize(nw.DisplayScale())
	win.Focused = true

	// Adding a component moves the entry, so win is not touched after this.
	if h, ok := nw.RawHandle(); ok {
		if !entry.HasComponent(engine.RawHandleComponent) {
			entry.AddComponent(engine.RawHandleComponent)
			engine.RawHandleComponent.SetValue(entry, h)
		}
		if entry.HasComponent(engine.RawHandleHolderComponent) {
			if holder := engine.RawHandleHolderComponent.Get(entry); holder.Slot != nil {
				holder.Slot.Store(h)
			}
		}
	}

	engine.WindowCreatedEvent.Publish(w, engine.WindowCreated{Window: e})
	c.log.Info("window created", "entity", e, "window", nw.ID(), "title", opts.Title,
		"width", opts.Width, "height", opts.Height, "scale", nw.DisplayScale())
	return nil
}

func (c *Context) windowOptions(win *engine.Window) native.WindowOptions {
	opts := native.WindowOptions{
		Title:     win.Title,
		Width:     uint32(win.Width() + 0.5),
		Height:    uint32(win.Height() + 0.5),
		Resizable: win.Resizable,
		HighDPI:   c.cfg.HighDPI,
	}
	if opts.Title == "" {
		opts.Title = c.cfg.DefaultTitle
	}
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = c.cfg.DefaultWidth, c.cfg.DefaultHeight
	}
	return opts
}

// closeWindows deregisters and destroys every native window whose entity
// was despawned or lost its Window component.
func (c *Context) closeWindows(w donburi.World) []error {
	var gone []donburi.Entity
	c.registry.Each(func(_ native.WindowID, e donburi.Entity) {
		if !w.Valid(e) || !w.Entry(e).HasComponent(engine.WindowComponent) {
			gone = append(gone, e)
		}
	})
	if len(gone) == 0 {
		return nil
	}

	var errs []error
	for _, e := range gone {
		nw, ok := c.registry.Deregister(e)
		if !ok {
			continue
		}
		if err := nw.Destroy(); err != nil {
			errs = append(errs, fmt.Errorf("destroy window %d: %w", nw.ID(), err))
		}
		engine.WindowClosedEvent.Publish(w, engine.WindowClosed{Window: e})
		c.log.Info("window closed", "entity", e, "window", nw.ID())
	}
	if c.cfg.ExitOnAllClosed && c.registry.Len() == 0 {
		c.log.Info("all windows closed, exiting")
		engine.AppExitEvent.Publish(w, engine.AppExitSuccess)
	}
	return errs
}

func (c *Context) onCloseRequested(_ donburi.World, ev engine.WindowCloseRequested) {
	c.closing = append(c.closing, ev.Window)
}

// despawnClosing removes the entities whose windows were asked to close.
func (c *Context) despawnClosing(w donburi.World) error {
	for _, e := range c.closing {
		if w.Valid(e) {
			w.Remove(e)
		}
	}
	c.closing = c.closing[:0]
	return nil
}
