package widget

import "fmt"

// Call is one invocation observed by a Recorder.
type Call struct {
	Method  string
	Pointer PointerEvent
	Wheel   WheelEvent
	Key     KeyEvent
}

// String formats the call for logs.
func (c Call) String() string {
	switch c.Method {
	case "Wheel":
		return fmt.Sprintf("Wheel(%d,%d d=%d,%d %s)", c.Wheel.X, c.Wheel.Y, c.Wheel.DeltaX, c.Wheel.DeltaY, c.Wheel.Modifiers)
	case "Key":
		k := c.Key
		name := string(k.Rune)
		if k.Special != 0 {
			name = k.Special.String()
		}
		state := "up"
		if k.Down {
			state = "down"
		}
		return fmt.Sprintf("Key(%s %s %s)", name, state, k.Modifiers)
	default:
		p := c.Pointer
		if p.Touch {
			return fmt.Sprintf("%s(%d,%d n=%d touch=%d)", c.Method, p.X, p.Y, p.Count, p.TouchID)
		}
		return fmt.Sprintf("%s(%d,%d n=%d %s)", c.Method, p.X, p.Y, p.Count, p.Modifiers)
	}
}

// Recorder is a Root that records every call it receives.
type Recorder struct {
	Name string
	// ConsumeKeys is returned from Key.
	ConsumeKeys bool
	// OnCall, if set, observes each call as it is recorded.
	OnCall func(r *Recorder, c Call)

	Calls []Call
}

// NewRecorder creates a named recorder.
func NewRecorder(name string) *Recorder {
	return &Recorder{Name: name}
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
	if r.OnCall != nil {
		r.OnCall(r, c)
	}
}

func (r *Recorder) PointerDown(ev PointerEvent) {
	r.record(Call{Method: "PointerDown", Pointer: ev})
}

func (r *Recorder) PointerUp(ev PointerEvent) {
	r.record(Call{Method: "PointerUp", Pointer: ev})
}

func (r *Recorder) RightPointerDown(ev PointerEvent) {
	r.record(Call{Method: "RightPointerDown", Pointer: ev})
}

func (r *Recorder) RightPointerUp(ev PointerEvent) {
	r.record(Call{Method: "RightPointerUp", Pointer: ev})
}

func (r *Recorder) PointerMove(ev PointerEvent) {
	r.record(Call{Method: "PointerMove", Pointer: ev})
}

func (r *Recorder) Wheel(ev WheelEvent) {
	r.record(Call{Method: "Wheel", Wheel: ev})
}

func (r *Recorder) Key(ev KeyEvent) bool {
	r.record(Call{Method: "Key", Key: ev})
	return r.ConsumeKeys
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Methods returns the recorded method names in order.
func (r *Recorder) Methods() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Method
	}
	return out
}
