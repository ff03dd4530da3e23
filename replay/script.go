package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/phanxgames/sdlbridge/keys"
	"github.com/phanxgames/sdlbridge/native"
)

// step is a single action in a script. Coordinates are native pixels.
type step struct {
	Action string `json:"action"`
	Window uint32 `json:"window,omitempty"`

	Char     string `json:"char,omitempty"`
	Scancode uint32 `json:"scancode,omitempty"`
	Shift    bool   `json:"shift,omitempty"`
	Ctrl     bool   `json:"ctrl,omitempty"`
	Alt      bool   `json:"alt,omitempty"`
	Release  bool   `json:"release,omitempty"`
	Repeat   bool   `json:"repeat,omitempty"`

	Button uint8   `json:"button,omitempty"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	DX     float32 `json:"dx,omitempty"`
	DY     float32 `json:"dy,omitempty"`
	FromX  float32 `json:"fromX,omitempty"`
	FromY  float32 `json:"fromY,omitempty"`
	ToX    float32 `json:"toX,omitempty"`
	ToY    float32 `json:"toY,omitempty"`

	Width   int32  `json:"width,omitempty"`
	Height  int32  `json:"height,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Focused *bool  `json:"focused,omitempty"`
	Phase   string `json:"phase,omitempty"`
	Frames  int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure.
type script struct {
	Steps []step `json:"steps"`
}

// Script is a parsed sequence of steps ready to be queued on a Backend.
type Script struct {
	steps []step
}

// LoadScript parses a JSON script. Every step is validated up front.
func LoadScript(jsonData []byte) (*Script, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse replay script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse replay script: step %d (%s): %w", i, st.Action, err)
		}
	}
	return &Script{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses a JSON script file.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay script: %w", err)
	}
	return LoadScript(data)
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

var windowKinds = map[string]native.WindowEventKind{
	"shown":     native.WindowShown,
	"hidden":    native.WindowHidden,
	"exposed":   native.WindowExposed,
	"minimized": native.WindowMinimized,
	"maximized": native.WindowMaximized,
	"restored":  native.WindowRestored,
	"enter":     native.WindowEnter,
	"leave":     native.WindowLeave,
}

var lifecyclePhases = map[string]native.LifecycleKind{
	"will_enter_background": native.WillEnterBackground,
	"did_enter_background":  native.DidEnterBackground,
	"will_enter_foreground": native.WillEnterForeground,
	"did_enter_foreground":  native.DidEnterForeground,
}

func (st step) validate() error {
	switch st.Action {
	case "key", "tap":
		if st.Char == "" && st.Scancode == 0 {
			return fmt.Errorf("needs char or scancode")
		}
		if utf8.RuneCountInString(st.Char) > 1 {
			return fmt.Errorf("char %q is more than one character", st.Char)
		}
		if st.Scancode >= uint32(keys.NumScancodes) {
			return fmt.Errorf("scancode %d out of range", st.Scancode)
		}
	case "window":
		if _, ok := windowKinds[st.Kind]; !ok {
			return fmt.Errorf("unknown window event kind %q", st.Kind)
		}
	case "lifecycle":
		if _, ok := lifecyclePhases[st.Phase]; !ok {
			return fmt.Errorf("unknown lifecycle phase %q", st.Phase)
		}
	case "motion", "button", "click", "drag", "wheel", "resize", "move", "focus", "close", "wait", "quit":
	default:
		return fmt.Errorf("unknown action")
	}
	return nil
}

// Queue appends the script's events to b. Steps share a frame until a
// wait of n frames moves the following steps n ticks later; drags spread
// their motion over the given number of frames.
func (s *Script) Queue(b *Backend) {
	if len(b.frames) <= b.frame {
		b.Frame()
	}
	for _, st := range s.steps {
		id := native.WindowID(st.Window)
		if id == 0 {
			id = 1
		}

		switch st.Action {
		case "key":
			b.Inject(st.keyEvent(id, !st.Release))
		case "tap":
			b.Inject(st.keyEvent(id, true))
			b.Inject(st.keyEvent(id, false))
		case "motion":
			b.Inject(native.MouseMotionEvent{WindowID: id, X: st.X, Y: st.Y, XRel: st.DX, YRel: st.DY})
		case "button":
			b.Inject(native.MouseButtonEvent{WindowID: id, Button: st.button(), Pressed: !st.Release, Clicks: 1, X: st.X, Y: st.Y})
		case "click":
			b.Inject(native.MouseButtonEvent{WindowID: id, Button: st.button(), Pressed: true, Clicks: 1, X: st.X, Y: st.Y})
			b.Inject(native.MouseButtonEvent{WindowID: id, Button: st.button(), Pressed: false, Clicks: 1, X: st.X, Y: st.Y})
		case "drag":
			queueDrag(b, id, st)
		case "wheel":
			b.Inject(native.MouseWheelEvent{WindowID: id, X: st.X, Y: st.Y})
		case "window":
			b.Inject(native.WindowEvent{WindowID: id, Kind: windowKinds[st.Kind]})
		case "resize":
			b.Inject(native.WindowEvent{WindowID: id, Kind: native.WindowResized, Data1: st.Width, Data2: st.Height})
		case "move":
			b.Inject(native.WindowEvent{WindowID: id, Kind: native.WindowMoved, Data1: int32(st.X), Data2: int32(st.Y)})
		case "focus":
			kind := native.WindowFocusGained
			if st.Focused != nil && !*st.Focused {
				kind = native.WindowFocusLost
			}
			b.Inject(native.WindowEvent{WindowID: id, Kind: kind})
		case "close":
			b.Inject(native.WindowEvent{WindowID: id, Kind: native.WindowClose})
		case "lifecycle":
			b.Inject(native.LifecycleEvent{Kind: lifecyclePhases[st.Phase]})
		case "wait":
			for range max(st.Frames, 1) {
				b.Frame()
			}
		case "quit":
			b.Inject(native.QuitEvent{})
		}
	}
}

func (st step) button() uint8 {
	if st.Button == 0 {
		return native.ButtonLeft
	}
	return st.Button
}

func (st step) keyEvent(id native.WindowID, pressed bool) native.KeyboardEvent {
	var ev native.KeyboardEvent
	if st.Char != "" {
		r, _ := utf8.DecodeRuneInString(st.Char)
		ev = KeyDown(id, r)
	} else {
		ev = ScancodeDown(id, keys.Scancode(st.Scancode), keys.ModNone)
	}
	if st.Shift {
		ev.Mod |= keys.ModLShift
	}
	if st.Ctrl {
		ev.Mod |= keys.ModLCtrl
	}
	if st.Alt {
		ev.Mod |= keys.ModLAlt
	}
	ev.Pressed = pressed
	ev.Repeat = st.Repeat && pressed
	return ev
}

// queueDrag presses at (fromX, fromY), moves in a straight line over
// frames-2 intermediate frames and releases at (toX, toY). Minimum frames
// is 2 (press + release).
func queueDrag(b *Backend, id native.WindowID, st step) {
	frames := max(st.Frames, 2)
	b.Inject(native.MouseButtonEvent{WindowID: id, Button: st.button(), Pressed: true, Clicks: 1, X: st.FromX, Y: st.FromY})
	prevX, prevY := st.FromX, st.FromY
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		x := st.FromX + (st.ToX-st.FromX)*t
		y := st.FromY + (st.ToY-st.FromY)*t
		b.Frame(native.MouseMotionEvent{WindowID: id, X: x, Y: y, XRel: x - prevX, YRel: y - prevY})
		prevX, prevY = x, y
	}
	b.Frame(
		native.MouseMotionEvent{WindowID: id, X: st.ToX, Y: st.ToY, XRel: st.ToX - prevX, YRel: st.ToY - prevY},
		native.MouseButtonEvent{WindowID: id, Button: st.button(), Pressed: false, Clicks: 1, X: st.ToX, Y: st.ToY},
	)
}
