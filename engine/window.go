package engine

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/sdlbridge/native"
)

// WindowComponent declares that an entity wants a native window.
var WindowComponent = donburi.NewComponentType[Window]()

// RawHandleComponent is attached once a window's platform handle is known.
var RawHandleComponent = donburi.NewComponentType[native.RawHandle]()

// RawHandleHolderComponent lets a renderer running on another goroutine pick
// up the platform handle when it becomes available.
var RawHandleHolderComponent = donburi.NewComponentType[RawHandleHolder]()

// WindowTheme is the color scheme of a window.
type WindowTheme uint8

const (
	ThemeUnset WindowTheme = iota
	ThemeLight
	ThemeDark
)

func (t WindowTheme) String() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "Unset"
	}
}

// PositionMode selects how a window position is interpreted.
type PositionMode uint8

const (
	PositionAutomatic PositionMode = iota
	PositionCentered
	PositionAt
)

// WindowPosition is the window's top-left corner in native pixels.
type WindowPosition struct {
	Mode PositionMode
	X, Y int32
}

// At returns an explicit position.
func At(x, y int32) WindowPosition {
	return WindowPosition{Mode: PositionAt, X: x, Y: y}
}

// WindowResolution stores a window's size in native pixels with the scale
// factor that converts it to logical units.
type WindowResolution struct {
	physicalWidth  uint32
	physicalHeight uint32
	scaleFactor    float32
}

// NewWindowResolution returns a resolution of the given logical size at
// scale 1.
func NewWindowResolution(width, height float32) WindowResolution {
	return WindowResolution{
		physicalWidth:  roundDim(width),
		physicalHeight: roundDim(height),
		scaleFactor:    1,
	}
}

// ScaleFactor is the number of native pixels per logical unit.
func (r WindowResolution) ScaleFactor() float32 {
	if r.scaleFactor <= 0 {
		return 1
	}
	return r.scaleFactor
}

// Width is the logical width.
func (r WindowResolution) Width() float32 {
	return float32(r.physicalWidth) / r.ScaleFactor()
}

// Height is the logical height.
func (r WindowResolution) Height() float32 {
	return float32(r.physicalHeight) / r.ScaleFactor()
}

func (r WindowResolution) PhysicalWidth() uint32  { return r.physicalWidth }
func (r WindowResolution) PhysicalHeight() uint32 { return r.physicalHeight }

// IsZero reports whether no size has been set.
func (r WindowResolution) IsZero() bool {
	return r.physicalWidth == 0 && r.physicalHeight == 0
}

// SetPhysicalResolution sets the native pixel size, keeping the scale.
func (r *WindowResolution) SetPhysicalResolution(width, height uint32) {
	r.physicalWidth = width
	r.physicalHeight = height
}

// SetScaleFactor changes the scale, keeping the physical size.
func (r *WindowResolution) SetScaleFactor(scale float32) {
	r.scaleFactor = scale
}

// SetScaleFactorAndApplyToPhysicalSize changes the scale, keeping the
// logical size and recomputing the physical size from it.
func (r *WindowResolution) SetScaleFactorAndApplyToPhysicalSize(scale float32) {
	w, h := r.Width(), r.Height()
	r.scaleFactor = scale
	r.physicalWidth = roundDim(w * r.ScaleFactor())
	r.physicalHeight = roundDim(h * r.ScaleFactor())
}

func roundDim(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(math.Round(float64(v)))
}

// Window is the engine-side state of a window. Title, Resolution and
// Resizable are read when the native window is created; the remaining
// fields are kept up to date from native events.
type Window struct {
	Title      string
	Resolution WindowResolution
	Position   WindowPosition
	Resizable  bool
	Focused    bool
	Theme      WindowTheme

	cursor    mgl32.Vec2
	hasCursor bool
}

// NewWindow returns a resizable window declaration of the given logical size.
func NewWindow(title string, width, height float32) Window {
	return Window{
		Title:      title,
		Resolution: NewWindowResolution(width, height),
		Resizable:  true,
	}
}

// Width is the logical width.
func (w *Window) Width() float32 { return w.Resolution.Width() }

// Height is the logical height.
func (w *Window) Height() float32 { return w.Resolution.Height() }

// PhysicalCursorPosition returns the last cursor position in native pixels.
func (w *Window) PhysicalCursorPosition() (mgl32.Vec2, bool) {
	return w.cursor, w.hasCursor
}

// CursorPosition returns the last cursor position in logical units.
func (w *Window) CursorPosition() (mgl32.Vec2, bool) {
	if !w.hasCursor {
		return mgl32.Vec2{}, false
	}
	return w.cursor.Mul(1 / w.Resolution.ScaleFactor()), true
}

// SetPhysicalCursorPosition caches the cursor position in native pixels.
func (w *Window) SetPhysicalCursorPosition(p mgl32.Vec2) {
	w.cursor = p
	w.hasCursor = true
}

// ClearCursorPosition forgets the cursor, e.g. when it leaves the window.
func (w *Window) ClearCursorPosition() {
	w.cursor = mgl32.Vec2{}
	w.hasCursor = false
}

// RawHandleSlot holds a platform handle that may be read from another
// goroutine.
type RawHandleSlot struct {
	mu     sync.Mutex
	handle native.RawHandle
	set    bool
}

// Store publishes h.
func (s *RawHandleSlot) Store(h native.RawHandle) {
	s.mu.Lock()
	s.handle = h
	s.set = true
	s.mu.Unlock()
}

// Load returns the published handle, if any.
func (s *RawHandleSlot) Load() (native.RawHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle, s.set
}

// RawHandleHolder is the component wrapping a shared RawHandleSlot.
type RawHandleHolder struct {
	Slot *RawHandleSlot
}

// NewRawHandleHolder returns a holder with an empty slot.
func NewRawHandleHolder() RawHandleHolder {
	return RawHandleHolder{Slot: &RawHandleSlot{}}
}

// SpawnWindow creates an entity declaring w and returns it.
func SpawnWindow(world donburi.World, w Window) donburi.Entity {
	e := world.Create(WindowComponent)
	WindowComponent.SetValue(world.Entry(e), w)
	return e
}
