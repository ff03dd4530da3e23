package sdlbridge

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/sdlbridge/engine"
	"github.com/phanxgames/sdlbridge/native"
	"github.com/phanxgames/sdlbridge/replay"
)

// newTestApp builds an app with the plugin installed on b. Log output is
// captured in the returned buffer.
func newTestApp(t *testing.T, b *replay.Backend, cfg Config) (*engine.App, *Plugin, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p, err := NewPlugin(b, cfg, logger)
	require.NoError(t, err)
	app := engine.NewApp().SetLogger(logger)
	app.AddPlugins(p)
	return app, p, &buf
}

// collect subscribes to et and returns the slice events are appended to.
func collect[T any](w donburi.World, et *events.EventType[T]) *[]T {
	var got []T
	et.Subscribe(w, func(_ donburi.World, ev T) {
		got = append(got, ev)
	})
	return &got
}

func TestNewPluginErrors(t *testing.T) {
	_, err := NewPlugin(nil, DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrNoBackend)

	cfg := DefaultConfig()
	cfg.DefaultWidth = 0
	_, err = NewPlugin(replay.New(), cfg, nil)
	assert.Error(t, err)
}

func TestLifecycleCreatesWindowOnce(t *testing.T) {
	b := replay.New()
	app, p, _ := newTestApp(t, b, DefaultConfig())
	world := app.World()
	e := engine.SpawnWindow(world, engine.NewWindow("main", 640, 480))

	require.NoError(t, p.Context().updateWindows(world))
	require.NoError(t, p.Context().updateWindows(world))

	require.Len(t, b.Windows(), 1)
	assert.Equal(t, 1, p.Context().Registry().Len())
	id, ok := p.Context().Registry().NativeID(e)
	require.True(t, ok)
	assert.Equal(t, native.WindowID(1), id)

	opts := b.Windows()[0].Options()
	assert.Equal(t, "main", opts.Title)
	assert.Equal(t, uint32(640), opts.Width)
	assert.Equal(t, uint32(480), opts.Height)
	assert.True(t, opts.Resizable)
}

func TestLifecycleDefaults(t *testing.T) {
	b := replay.New()
	app, p, _ := newTestApp(t, b, DefaultConfig())
	world := app.World()
	engine.SpawnWindow(world, engine.Window{})

	require.NoError(t, p.Context().updateWindows(world))

	require.Len(t, b.Windows(), 1)
	opts := b.Windows()[0].Options()
	assert.Equal(t, "App", opts.Title)
	assert.Equal(t, uint32(1280), opts.Width)
	assert.Equal(t, uint32(720), opts.Height)
	assert.True(t, opts.HighDPI)
}

func TestLifecycleAppliesThemeScaleAndHandle(t *testing.T) {
	b := replay.New(replay.WithScale(2), replay.WithTheme(native.ThemeDark))
	app, p, _ := newTestApp(t, b, DefaultConfig())
	world := app.World()

	e := world.Create(engine.WindowComponent, engine.RawHandleHolderComponent)
	entry := world.Entry(e)
	engine.WindowComponent.SetValue(entry, engine.NewWindow("hidpi", 400, 300))
	holder := engine.NewRawHandleHolder()
	engine.RawHandleHolderComponent.SetValue(entry, holder)

	require.NoError(t, p.Context().updateWindows(world))

	entry = world.Entry(e)
	win := engine.WindowComponent.Get(entry)
	assert.Equal(t, engine.ThemeDark, win.Theme)
	assert.Equal(t, float32(2), win.Resolution.ScaleFactor())
	assert.Equal(t, uint32(800), win.Resolution.PhysicalWidth())
	assert.Equal(t, uint32(600), win.Resolution.PhysicalHeight())
	assert.Equal(t, float32(400), win.Width())
	assert.True(t, win.Focused)

	require.True(t, entry.HasComponent(engine.RawHandleComponent))
	h := engine.RawHandleComponent.Get(entry)
	assert.Equal(t, "replay", h.Subsystem)

	stored, ok := holder.Slot.Load()
	require.True(t, ok)
	assert.Equal(t, *h, stored)
}

func TestLifecycleUnknownThemeLeavesWindowUnset(t *testing.T) {
	b := replay.New()
	app, p, _ := newTestApp(t, b, DefaultConfig())
	world := app.World()
	e := engine.SpawnWindow(world, engine.NewWindow("main", 10, 10))

	require.NoError(t, p.Context().updateWindows(world))
	assert.Equal(t, engine.ThemeUnset, engine.WindowComponent.Get(world.Entry(e)).Theme)
}

func TestLifecycleCreationFailureIsPerWindow(t *testing.T) {
	b := replay.New()
	app, p, logs := newTestApp(t, b, DefaultConfig())
	world := app.World()
	first := engine.SpawnWindow(world, engine.NewWindow("first", 10, 10))
	second := engine.SpawnWindow(world, engine.NewWindow("second", 10, 10))

	b.FailNextCreate(1)
	err := p.Context().updateWindows(world)
	require.Error(t, err)
	assert.ErrorIs(t, err, native.ErrCreateWindow)
	assert.Contains(t, logs.String(), "window creation failed")

	reg := p.Context().Registry()
	assert.Equal(t, 1, reg.Len())
	_, firstOK := reg.NativeID(first)
	_, secondOK := reg.NativeID(second)
	assert.True(t, firstOK != secondOK, "exactly one window is created")

	require.NoError(t, p.Context().updateWindows(world), "the failed declaration is retried")
	assert.Equal(t, 2, reg.Len())
}

func TestLifecycleDeregistersDespawnedWindow(t *testing.T) {
	b := replay.New()
	cfg := DefaultConfig()
	cfg.ExitOnAllClosed = false
	app, p, _ := newTestApp(t, b, cfg)
	world := app.World()
	closed := collect(world, engine.WindowClosedEvent)

	keep := engine.SpawnWindow(world, engine.NewWindow("keep", 10, 10))
	gone := engine.SpawnWindow(world, engine.NewWindow("gone", 10, 10))
	require.NoError(t, p.Context().updateWindows(world))
	goneID, _ := p.Context().Registry().NativeID(gone)

	world.Remove(gone)
	require.NoError(t, p.Context().updateWindows(world))
	events.ProcessAllEvents(world)

	reg := p.Context().Registry()
	assert.Equal(t, 1, reg.Len())
	_, ok := reg.Entity(goneID)
	assert.False(t, ok)
	_, ok = reg.NativeID(keep)
	assert.True(t, ok)

	w, _ := b.Window(goneID)
	assert.True(t, w.Destroyed())
	assert.Equal(t, []engine.WindowClosed{{Window: gone}}, *closed)
}

func TestLifecycleDeregistersOnComponentRemoval(t *testing.T) {
	b := replay.New()
	app, p, _ := newTestApp(t, b, DefaultConfig())
	world := app.World()
	exits := collect(world, engine.AppExitEvent)

	e := engine.SpawnWindow(world, engine.NewWindow("main", 10, 10))
	require.NoError(t, p.Context().updateWindows(world))

	world.Entry(e).RemoveComponent(engine.WindowComponent)
	require.NoError(t, p.Context().updateWindows(world))
	events.ProcessAllEvents(world)

	assert.Zero(t, p.Context().Registry().Len())
	assert.True(t, b.Windows()[0].Destroyed())
	assert.Equal(t, []engine.AppExit{engine.AppExitSuccess}, *exits, "last window closed")
	assert.Len(t, b.Windows(), 1, "no window is recreated for the entity")
}

func TestPluginSpawnsStartupWindows(t *testing.T) {
	no := false
	cfg := DefaultConfig()
	cfg.Resizable = true
	cfg.Windows = []WindowConfig{
		{Title: "main", Width: 320, Height: 200},
		{Title: "fixed", Resizable: &no},
	}
	b := replay.New()
	app, p, _ := newTestApp(t, b, cfg)

	require.NoError(t, p.Context().updateWindows(app.World()))
	require.Len(t, b.Windows(), 2)

	byTitle := map[string]native.WindowOptions{}
	for _, w := range b.Windows() {
		byTitle[w.Options().Title] = w.Options()
	}
	assert.True(t, byTitle["main"].Resizable)
	assert.Equal(t, uint32(320), byTitle["main"].Width)
	assert.False(t, byTitle["fixed"].Resizable)
	assert.Equal(t, uint32(1280), byTitle["fixed"].Width)
}

func TestLifecycleRegisterConflictDestroysWindow(t *testing.T) {
	tests := []struct {
		name        string
		failDestroy bool
	}{
		{"destroy succeeds", false},
		{"destroy fails", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := replay.New()
			app, p, logs := newTestApp(t, b, DefaultConfig())
			world := app.World()
			reg := p.Context().Registry()

			// The backend hands out id 1 next, which another entity holds.
			holder := engine.SpawnWindow(world, engine.NewWindow("holder", 10, 10))
			require.NoError(t, reg.Register(1, holder, nil))
			e := engine.SpawnWindow(world, engine.NewWindow("late", 10, 10))

			if tt.failDestroy {
				b.FailNextDestroy(1)
			}
			err := p.Context().updateWindows(world)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrWindowRegistered)
			assert.Contains(t, logs.String(), "window creation failed")
			if tt.failDestroy {
				assert.Contains(t, err.Error(), "destroy window 1")
			} else {
				assert.NotContains(t, err.Error(), "destroy window")
			}

			require.Len(t, b.Windows(), 1)
			assert.True(t, b.Windows()[0].Destroyed())
			_, ok := reg.NativeID(e)
			assert.False(t, ok)
			got, ok := reg.Entity(1)
			require.True(t, ok)
			assert.Equal(t, holder, got)
		})
	}
}
