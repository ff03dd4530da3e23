// Package sdlbridge connects an [SDL2] window backend to an ECS app built on
// [Donburi].
//
// The bridge owns the native side of every window: it opens a native window
// for each entity carrying an [engine.Window], keeps a registry between
// native window ids and entities, and translates native input and window
// events into typed engine events published on the world.
//
// # Quick start
//
// Lock the main thread, build the plugin around a backend and let it drive
// the app:
//
//	func init() { runtime.LockOSThread() }
//
//	backend, err := sdl.New()
//	// ...
//	plugin, err := sdlbridge.NewPlugin(backend, sdlbridge.DefaultConfig(), slog.Default())
//	// ...
//	app := engine.NewApp().AddPlugins(plugin)
//	engine.SpawnWindow(app.World(), engine.NewWindow("My App", 800, 600))
//	os.Exit(app.Run().Code)
//
// Subscribe to engine events to react to input:
//
//	engine.KeyboardInputEvent.Subscribe(app.World(), func(w donburi.World, ev engine.KeyboardInput) {
//		if ev.LogicalKey == keys.Named(keys.NamedEscape) {
//			engine.AppExitEvent.Publish(w, engine.AppExitSuccess)
//		}
//	})
//
// # Ticks
//
// Each tick the runner finishes plugin setup once every plugin reports
// ready, drains all pending native events, then runs one app update. A quit
// request ends the loop after the current batch is dispatched. An
// [engine.AppExit] published by a system ends it after the update.
//
// # Windows
//
// Windows are created by a system in the Last stage, so a window spawned
// during a tick opens at the end of that tick. Despawning the entity or
// removing its window component destroys the native window. Events for
// windows the registry does not know are dropped.
//
// Cursor positions are logical: the backend reports them in physical pixels
// and they are divided by the window's scale factor. engine.WindowResized and
// engine.WindowMoved carry the backend's values unchanged, physical pixels for the
// size and screen coordinates for the position; the logical size is
// available from the window's resolution.
//
// # Backends
//
// Package sdl is the real backend. Package replay plays back scripted
// frames of native events without a display, which is how the bridge is
// tested.
//
// [SDL2]: https://www.libsdl.org
// [Donburi]: https://github.com/yohamta/donburi
package sdlbridge
