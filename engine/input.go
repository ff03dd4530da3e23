package engine

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/sdlbridge/keys"
)

// ButtonState is whether a key or button went down or up.
type ButtonState uint8

const (
	Pressed ButtonState = iota
	Released
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// IsPressed reports whether s is Pressed.
func (s ButtonState) IsPressed() bool { return s == Pressed }

// MouseButtonKind identifies a mouse button.
type MouseButtonKind uint8

const (
	MouseButtonLeft    MouseButtonKind = iota // primary (left) mouse button
	MouseButtonRight                          // secondary (right) mouse button
	MouseButtonMiddle                         // middle mouse button (scroll wheel click)
	MouseButtonBack                           // first side button
	MouseButtonForward                        // second side button
	MouseButtonOther                          // any other button, see MouseButton.Code
)

// MouseButton is a mouse button. Code is only meaningful for
// MouseButtonOther.
type MouseButton struct {
	Kind MouseButtonKind
	Code uint16
}

var (
	LeftButton    = MouseButton{Kind: MouseButtonLeft}
	RightButton   = MouseButton{Kind: MouseButtonRight}
	MiddleButton  = MouseButton{Kind: MouseButtonMiddle}
	BackButton    = MouseButton{Kind: MouseButtonBack}
	ForwardButton = MouseButton{Kind: MouseButtonForward}
)

// OtherButton returns the button with the given native index.
func OtherButton(code uint16) MouseButton {
	return MouseButton{Kind: MouseButtonOther, Code: code}
}

func (b MouseButton) String() string {
	switch b.Kind {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonBack:
		return "Back"
	case MouseButtonForward:
		return "Forward"
	default:
		return "Other(" + strconv.Itoa(int(b.Code)) + ")"
	}
}

// KeyboardInput is a key press or release in a window.
type KeyboardInput struct {
	KeyCode    keys.KeyCode
	Scancode   keys.Scancode
	LogicalKey keys.Key
	State      ButtonState
	Repeat     bool
	// Text is the text the key produced, if it is a character key press.
	Text   string
	Window donburi.Entity
}

// MouseButtonInput is a mouse button press or release in a window.
type MouseButtonInput struct {
	Button MouseButton
	State  ButtonState
	Window donburi.Entity
}

// MouseMotion is raw pointer movement in native pixels. It is not tied to
// a window and is not scaled.
type MouseMotion struct {
	Delta mgl32.Vec2
}

// MouseScrollUnit is the unit of a MouseWheel delta.
type MouseScrollUnit uint8

const (
	ScrollLine MouseScrollUnit = iota
	ScrollPixel
)

// MouseWheel is a scroll in a window.
type MouseWheel struct {
	Unit   MouseScrollUnit
	X, Y   float32
	Window donburi.Entity
}
