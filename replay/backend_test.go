package replay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sdlbridge/keys"
	"github.com/phanxgames/sdlbridge/native"
)

// drain returns the events of one tick.
func drain(b *Backend) []native.Event {
	var out []native.Event
	for ev := b.PollEvent(); ev != nil; ev = b.PollEvent() {
		out = append(out, ev)
	}
	return out
}

func TestBackendFramesPerTick(t *testing.T) {
	b := New(WithoutAutoQuit())
	b.Wait(1).Frame(native.QuitEvent{}, native.LifecycleEvent{})

	assert.Empty(t, drain(b))
	assert.Len(t, drain(b), 2)
	assert.True(t, b.Done())
	assert.Empty(t, drain(b))
}

func TestBackendAutoQuit(t *testing.T) {
	b := New()
	b.Frame(native.LifecycleEvent{})

	assert.Len(t, drain(b), 1)
	got := drain(b)
	require.Len(t, got, 1)
	assert.IsType(t, native.QuitEvent{}, got[0])
	assert.Empty(t, drain(b), "quit is delivered once")
}

func TestBackendInjectAfterPlayback(t *testing.T) {
	b := New(WithoutAutoQuit())
	b.Frame(native.LifecycleEvent{})
	drain(b)

	b.Inject(native.QuitEvent{})
	assert.Len(t, drain(b), 1)
}

func TestBackendCreateWindow(t *testing.T) {
	b := New(WithScale(2), WithTheme(native.ThemeDark))
	b.FailNextCreate(1)

	_, err := b.CreateWindow(native.WindowOptions{Title: "a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, native.ErrCreateWindow))

	w1, err := b.CreateWindow(native.WindowOptions{Title: "b", Width: 100, Height: 50})
	require.NoError(t, err)
	w2, err := b.CreateWindow(native.WindowOptions{Title: "c"})
	require.NoError(t, err)

	assert.Equal(t, native.WindowID(1), w1.ID())
	assert.Equal(t, native.WindowID(2), w2.ID())
	assert.Equal(t, float32(2), w1.DisplayScale())
	w, h := w1.Size()
	assert.Equal(t, [2]uint32{200, 100}, [2]uint32{w, h})
	assert.Equal(t, native.ThemeDark, b.SystemTheme())

	h1, ok := w1.RawHandle()
	require.True(t, ok)
	assert.Equal(t, uintptr(1), h1.Window)

	require.NoError(t, w1.Destroy())
	assert.Error(t, w1.Destroy())

	require.NoError(t, b.Close())
	rw2, _ := b.Window(2)
	assert.True(t, rw2.Destroyed())
	_, err = b.CreateWindow(native.WindowOptions{})
	assert.Error(t, err)
}

func TestKeyDown(t *testing.T) {
	ev := KeyDown(3, 'A')
	assert.Equal(t, native.WindowID(3), ev.WindowID)
	assert.Equal(t, keys.ScancodeA, ev.Scancode)
	assert.Equal(t, keys.Keycode('a'), ev.Keycode)
	assert.True(t, ev.Mod.Shift())
	assert.True(t, ev.Pressed)

	assert.False(t, KeyUp(3, 'a').Pressed)
	assert.Equal(t, keys.Scancode0, KeyDown(1, '0').Scancode)
	assert.Equal(t, keys.Scancode1+8, KeyDown(1, '9').Scancode)
}

func TestScancodeDown(t *testing.T) {
	assert.Equal(t, keys.Keycode('c'), ScancodeDown(1, keys.ScancodeA+2, 0).Keycode)
	assert.Equal(t, keys.KeycodeReturn, ScancodeDown(1, keys.ScancodeReturn, 0).Keycode)
	assert.Equal(t, keys.KeycodeFromScancode(keys.ScancodeF3), ScancodeDown(1, keys.ScancodeF3, 0).Keycode)
}

func TestBackendFailNextDestroy(t *testing.T) {
	b := New()
	w, err := b.CreateWindow(native.WindowOptions{Title: "a"})
	require.NoError(t, err)

	b.FailNextDestroy(1)
	assert.Error(t, w.Destroy())
	assert.True(t, b.Windows()[0].Destroyed(), "a refused destroy still marks the window")

	w2, err := b.CreateWindow(native.WindowOptions{Title: "b"})
	require.NoError(t, err)
	assert.NoError(t, w2.Destroy())
}
