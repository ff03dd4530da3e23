package sdlbridge

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/sdlbridge/engine"
	"github.com/phanxgames/sdlbridge/keys"
	"github.com/phanxgames/sdlbridge/native"
	"github.com/phanxgames/sdlbridge/replay"
)

// runWith spawns one window, plays frames after a first empty frame (in
// which the window is created) and runs the app to completion. Events still
// queued when Run returns are delivered before it returns.
func runWith(t *testing.T, b *replay.Backend, cfg Config, setup func(app *engine.App, e donburi.Entity)) (*engine.App, donburi.Entity, engine.AppExit) {
	t.Helper()
	app, _, _ := newTestApp(t, b, cfg)
	e := engine.SpawnWindow(app.World(), engine.NewWindow("main", 640, 480))
	if setup != nil {
		setup(app, e)
	}
	exit := app.Run()
	events.ProcessAllEvents(app.World())
	return app, e, exit
}

func TestRunScenario(t *testing.T) {
	b := replay.New()
	b.Wait(1).Frame(
		replay.KeyDown(1, 'A'),
		native.MouseMotionEvent{WindowID: 1, X: 5, Y: 0, XRel: 5, YRel: -3},
		native.QuitEvent{},
	)

	var keysIn *[]engine.KeyboardInput
	var motion *[]engine.MouseMotion
	app, e, exit := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		keysIn = collect(app.World(), engine.KeyboardInputEvent)
		motion = collect(app.World(), engine.MouseMotionEvent)
	})

	assert.True(t, exit.IsSuccess())
	require.Len(t, *keysIn, 1)
	k := (*keysIn)[0]
	assert.Equal(t, keys.Character("A"), k.LogicalKey)
	assert.Equal(t, keys.KeyA, k.KeyCode)
	assert.Equal(t, engine.Pressed, k.State)
	assert.Equal(t, "A", k.Text)
	assert.Equal(t, e, k.Window)

	require.Len(t, *motion, 1)
	assert.Equal(t, mgl32.Vec2{5, -3}, (*motion)[0].Delta)

	assert.Equal(t, uint64(1), app.Updates(), "no update runs in the quit tick")
}

func TestRunQuitFinishesBatch(t *testing.T) {
	b := replay.New()
	b.Wait(1).Frame(
		native.QuitEvent{},
		replay.KeyDown(1, 'x'),
	).Frame(replay.KeyDown(1, 'y'))

	var keysIn *[]engine.KeyboardInput
	app, _, exit := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		keysIn = collect(app.World(), engine.KeyboardInputEvent)
	})

	assert.True(t, exit.IsSuccess())
	require.Len(t, *keysIn, 1, "events after quit in the same batch are dispatched, later ticks never run")
	assert.Equal(t, keys.Character("x"), (*keysIn)[0].LogicalKey)
	assert.Equal(t, uint64(1), app.Updates())
	assert.False(t, b.Done())
}

func TestRunDropsEventsForUnknownWindows(t *testing.T) {
	const unknown = native.WindowID(99)
	b := replay.New()
	b.Wait(1).Frame(
		native.WindowEvent{WindowID: unknown, Kind: native.WindowResized, Data1: 10, Data2: 10},
		native.WindowEvent{WindowID: unknown, Kind: native.WindowFocusLost},
		native.WindowEvent{WindowID: unknown, Kind: native.WindowClose},
		replay.KeyDown(unknown, 'q'),
		native.MouseMotionEvent{WindowID: unknown, X: 1, Y: 1, XRel: 1, YRel: 1},
		native.MouseButtonEvent{WindowID: unknown, Button: native.ButtonLeft, Pressed: true},
		native.MouseWheelEvent{WindowID: unknown, Y: 1},
	)

	var before engine.Window
	var keysIn *[]engine.KeyboardInput
	var motion *[]engine.MouseMotion
	var resized *[]engine.WindowResized
	var closes *[]engine.WindowCloseRequested
	var buttons *[]engine.MouseButtonInput
	var wheels *[]engine.MouseWheel
	app, e, exit := runWith(t, b, DefaultConfig(), func(app *engine.App, e donburi.Entity) {
		w := app.World()
		keysIn = collect(w, engine.KeyboardInputEvent)
		motion = collect(w, engine.MouseMotionEvent)
		resized = collect(w, engine.WindowResizedEvent)
		closes = collect(w, engine.WindowCloseRequestedEvent)
		buttons = collect(w, engine.MouseButtonInputEvent)
		wheels = collect(w, engine.MouseWheelEvent)
		// Snapshot the window right after it is created in the first update.
		app.AddSystems(engine.Last, func(w donburi.World) error {
			if app.Updates() != 0 {
				return nil
			}
			before = *engine.WindowComponent.Get(w.Entry(e))
			return nil
		})
	})

	assert.True(t, exit.IsSuccess())
	assert.Empty(t, *keysIn)
	assert.Empty(t, *motion)
	assert.Empty(t, *resized)
	assert.Empty(t, *closes)
	assert.Empty(t, *buttons)
	assert.Empty(t, *wheels)
	assert.Equal(t, uint64(2), app.Updates(), "the loop kept running")
	assert.Equal(t, before, *engine.WindowComponent.Get(app.World().Entry(e)))
}

func TestRunResizeUpdatesResolution(t *testing.T) {
	b := replay.New(replay.WithScale(2))
	b.Wait(1).Frame(native.WindowEvent{WindowID: 1, Kind: native.WindowResized, Data1: 1024, Data2: 768})

	var resized *[]engine.WindowResized
	app, e, _ := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		resized = collect(app.World(), engine.WindowResizedEvent)
	})

	win := engine.WindowComponent.Get(app.World().Entry(e))
	assert.Equal(t, uint32(1024), win.Resolution.PhysicalWidth())
	assert.Equal(t, uint32(768), win.Resolution.PhysicalHeight())
	assert.Equal(t, float32(2), win.Resolution.ScaleFactor())
	assert.Equal(t, []engine.WindowResized{{Window: e, Width: 1024, Height: 768}}, *resized)
}

func TestRunCursorMoved(t *testing.T) {
	b := replay.New(replay.WithScale(2))
	b.Wait(1).Frame(
		native.MouseMotionEvent{WindowID: 1, X: 100, Y: 50, XRel: 100, YRel: 50},
		native.MouseMotionEvent{WindowID: 1, X: 120, Y: 50, XRel: 20},
		native.WindowEvent{WindowID: 1, Kind: native.WindowLeave},
		native.WindowEvent{WindowID: 1, Kind: native.WindowEnter},
		native.MouseMotionEvent{WindowID: 1, X: 0, Y: 0},
	)

	var moved *[]engine.CursorMoved
	var left *[]engine.CursorLeft
	var entered *[]engine.CursorEntered
	_, e, _ := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		moved = collect(app.World(), engine.CursorMovedEvent)
		left = collect(app.World(), engine.CursorLeftEvent)
		entered = collect(app.World(), engine.CursorEnteredEvent)
	})

	require.Len(t, *moved, 3)
	first, second, third := (*moved)[0], (*moved)[1], (*moved)[2]
	assert.Equal(t, mgl32.Vec2{50, 25}, first.Position)
	assert.Nil(t, first.Delta)
	assert.Equal(t, mgl32.Vec2{60, 25}, second.Position)
	require.NotNil(t, second.Delta)
	assert.Equal(t, mgl32.Vec2{10, 0}, *second.Delta)
	assert.Nil(t, third.Delta, "leaving forgets the cursor")
	assert.Equal(t, e, third.Window)
	assert.Len(t, *left, 1)
	assert.Len(t, *entered, 1)
}

func TestRunWindowState(t *testing.T) {
	b := replay.New()
	b.Wait(1).Frame(
		native.WindowEvent{WindowID: 1, Kind: native.WindowMoved, Data1: 10, Data2: 20},
		native.WindowEvent{WindowID: 1, Kind: native.WindowFocusLost},
		native.WindowEvent{WindowID: 1, Kind: native.WindowHidden},
		native.WindowEvent{WindowID: 1, Kind: native.WindowShown},
		native.WindowEvent{WindowID: 1, Kind: native.WindowMaximized},
	)

	var moved *[]engine.WindowMoved
	var focused *[]engine.WindowFocused
	var occluded *[]engine.WindowOccluded
	app, e, _ := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		moved = collect(app.World(), engine.WindowMovedEvent)
		focused = collect(app.World(), engine.WindowFocusedEvent)
		occluded = collect(app.World(), engine.WindowOccludedEvent)
	})

	win := engine.WindowComponent.Get(app.World().Entry(e))
	assert.Equal(t, engine.At(10, 20), win.Position)
	assert.False(t, win.Focused)
	assert.Equal(t, []engine.WindowMoved{{Window: e, Position: mgl32.Vec2{10, 20}}}, *moved)
	assert.Equal(t, []engine.WindowFocused{{Window: e, Focused: false}}, *focused)
	assert.Equal(t, []engine.WindowOccluded{{Window: e, Occluded: true}, {Window: e, Occluded: false}}, *occluded)
}

func TestRunMouseButtonsAndWheel(t *testing.T) {
	b := replay.New()
	b.Wait(1).Frame(
		native.MouseButtonEvent{WindowID: 1, Button: native.ButtonLeft, Pressed: true},
		native.MouseButtonEvent{WindowID: 1, Button: native.ButtonMiddle, Pressed: false},
		native.MouseButtonEvent{WindowID: 1, Button: native.ButtonRight, Pressed: true},
		native.MouseButtonEvent{WindowID: 1, Button: native.ButtonX1, Pressed: true},
		native.MouseButtonEvent{WindowID: 1, Button: native.ButtonX2, Pressed: true},
		native.MouseButtonEvent{WindowID: 1, Button: 8, Pressed: true},
		native.MouseWheelEvent{WindowID: 1, X: -1, Y: 2},
	)

	var buttons *[]engine.MouseButtonInput
	var wheels *[]engine.MouseWheel
	_, e, _ := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		buttons = collect(app.World(), engine.MouseButtonInputEvent)
		wheels = collect(app.World(), engine.MouseWheelEvent)
	})

	want := []engine.MouseButton{
		engine.LeftButton, engine.MiddleButton, engine.RightButton,
		engine.BackButton, engine.ForwardButton, engine.OtherButton(8),
	}
	require.Len(t, *buttons, len(want))
	for i, in := range *buttons {
		assert.Equal(t, want[i], in.Button)
		assert.Equal(t, e, in.Window)
	}
	assert.Equal(t, engine.Released, (*buttons)[1].State)
	assert.Equal(t, []engine.MouseWheel{{Unit: engine.ScrollPixel, X: -1, Y: 2, Window: e}}, *wheels)
}

func TestRunLifecycle(t *testing.T) {
	b := replay.New()
	b.Frame(
		native.LifecycleEvent{Kind: native.WillEnterBackground},
		native.LifecycleEvent{Kind: native.DidEnterBackground},
		native.LifecycleEvent{Kind: native.WillEnterForeground},
		native.LifecycleEvent{Kind: native.DidEnterForeground},
		native.UnhandledEvent{Type: 0x700},
	)

	var phases *[]engine.AppLifecycle
	runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		phases = collect(app.World(), engine.AppLifecycleEvent)
	})

	assert.Equal(t, []engine.AppLifecycle{
		engine.LifecycleWillSuspend,
		engine.LifecycleSuspended,
		engine.LifecycleWillResume,
		engine.LifecycleRunning,
	}, *phases)
}

func TestRunCloseRequestedDespawnsAndExits(t *testing.T) {
	b := replay.New(replay.WithoutAutoQuit())
	b.Wait(1).Frame(native.WindowEvent{WindowID: 1, Kind: native.WindowClose})

	var closed *[]engine.WindowClosed
	app, e, exit := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		closed = collect(app.World(), engine.WindowClosedEvent)
	})

	assert.True(t, exit.IsSuccess())
	assert.False(t, app.World().Valid(e))
	assert.True(t, b.Windows()[0].Destroyed())
	assert.Equal(t, []engine.WindowClosed{{Window: e}}, *closed)
	assert.Equal(t, uint64(2), app.Updates())
}

func TestRunCloseRequestedKeepsWindowWhenDisabled(t *testing.T) {
	b := replay.New()
	b.Wait(1).Frame(native.WindowEvent{WindowID: 1, Kind: native.WindowClose})

	cfg := DefaultConfig()
	cfg.CloseWhenRequested = false
	var requests *[]engine.WindowCloseRequested
	app, e, _ := runWith(t, b, cfg, func(app *engine.App, _ donburi.Entity) {
		requests = collect(app.World(), engine.WindowCloseRequestedEvent)
	})

	assert.True(t, app.World().Valid(e))
	assert.False(t, b.Windows()[0].Destroyed())
	assert.Len(t, *requests, 1)
}

func TestRunHonorsAppExit(t *testing.T) {
	b := replay.New(replay.WithoutAutoQuit())
	app, _, exit := runWith(t, b, DefaultConfig(), func(app *engine.App, _ donburi.Entity) {
		app.AddSystems(engine.Update, func(w donburi.World) error {
			engine.AppExitEvent.Publish(w, engine.AppExitError(2))
			return nil
		})
	})

	assert.Equal(t, 2, exit.Code)
	assert.Equal(t, uint64(1), app.Updates())
}

func TestRunWaitsForPlugins(t *testing.T) {
	b := replay.New()
	b.Wait(3)

	gate := &gatedPlugin{}
	app, _, _ := newTestApp(t, b, DefaultConfig())
	app.AddPlugins(gate)
	gate.readyAfter = 2

	exit := app.Run()
	assert.True(t, exit.IsSuccess())
	assert.Equal(t, 1, gate.finished)
	// The gate opens on the second tick, which updates along with the third;
	// the fourth tick quits.
	assert.Equal(t, uint64(2), app.Updates())
}

type gatedPlugin struct {
	readyAfter int
	checks     int
	finished   int
}

func (g *gatedPlugin) Build(*engine.App) {}

func (g *gatedPlugin) Ready(*engine.App) bool {
	g.checks++
	return g.checks > g.readyAfter
}

func (g *gatedPlugin) Finish(*engine.App) { g.finished++ }

func TestMouseButtonMapping(t *testing.T) {
	tests := []struct {
		in   uint8
		want engine.MouseButton
	}{
		{native.ButtonLeft, engine.LeftButton},
		{native.ButtonMiddle, engine.MiddleButton},
		{native.ButtonRight, engine.RightButton},
		{native.ButtonX1, engine.BackButton},
		{native.ButtonX2, engine.ForwardButton},
		{0, engine.OtherButton(0)},
		{200, engine.OtherButton(200)},
	}
	for _, tt := range tests {
		if got := mouseButton(tt.in); got != tt.want {
			t.Errorf("mouseButton(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
