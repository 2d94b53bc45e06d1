package core

// Button names one digital input signal.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonLTrigger // Strafe left
	ButtonRTrigger // Strafe right
	ButtonConfirm
	ButtonStart // Pause / resume
)

// Buttons lists every digital signal, in declaration order.
var Buttons = []Button{
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
	ButtonLTrigger, ButtonRTrigger, ButtonConfirm, ButtonStart,
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonLTrigger:
		return "LTrigger"
	case ButtonRTrigger:
		return "RTrigger"
	case ButtonConfirm:
		return "Confirm"
	case ButtonStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// InputState is one frame's snapshot of the controller: which digital signals
// are held and where the analog stick sits. Stick axes are in [-1, 1] with 0 at
// rest; the dead zone is applied by the consumer.
type InputState struct {
	Up, Down, Left, Right bool
	LTrigger, RTrigger    bool
	Confirm               bool
	Start                 bool

	StickX, StickY float64
}

// Button reports whether b is held in this snapshot.
func (s InputState) Button(b Button) bool {
	switch b {
	case ButtonUp:
		return s.Up
	case ButtonDown:
		return s.Down
	case ButtonLeft:
		return s.Left
	case ButtonRight:
		return s.Right
	case ButtonLTrigger:
		return s.LTrigger
	case ButtonRTrigger:
		return s.RTrigger
	case ButtonConfirm:
		return s.Confirm
	case ButtonStart:
		return s.Start
	}
	return false
}

// SetButton marks b as held or released.
func (s *InputState) SetButton(b Button, held bool) {
	switch b {
	case ButtonUp:
		s.Up = held
	case ButtonDown:
		s.Down = held
	case ButtonLeft:
		s.Left = held
	case ButtonRight:
		s.Right = held
	case ButtonLTrigger:
		s.LTrigger = held
	case ButtonRTrigger:
		s.RTrigger = held
	case ButtonConfirm:
		s.Confirm = held
	case ButtonStart:
		s.Start = held
	}
}

// AnyButton reports whether any digital signal is held.
func (s InputState) AnyButton() bool {
	for _, b := range Buttons {
		if s.Button(b) {
			return true
		}
	}
	return false
}

// InputFrame pairs this frame's input with the previous frame's, so the game
// can tell a fresh press from a held button without per-handler debounce flags.
type InputFrame struct {
	Current  InputState
	Previous InputState
}

// NewInputFrame builds a frame from the previous and current snapshots.
func NewInputFrame(prev, cur InputState) InputFrame {
	return InputFrame{Current: cur, Previous: prev}
}

// Held reports whether b is down this frame.
func (f InputFrame) Held(b Button) bool {
	return f.Current.Button(b)
}

// Pressed reports whether b went down this frame (rising edge).
func (f InputFrame) Pressed(b Button) bool {
	return f.Current.Button(b) && !f.Previous.Button(b)
}

// Next returns the frame that follows f when cur is the next snapshot.
func (f InputFrame) Next(cur InputState) InputFrame {
	return InputFrame{Current: cur, Previous: f.Current}
}
