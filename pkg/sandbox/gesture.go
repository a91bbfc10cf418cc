package sandbox

// Mode is the state of the paint gesture.
type Mode int

const (
	// Idle means the paint button is up.
	Idle Mode = iota
	// Painting means the button is held and Target is applied to every
	// hovered cell.
	Painting
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Painting:
		return "painting"
	}
	return "unknown"
}

// GestureState is the paint gesture: Target is meaningful only while
// Painting.
type GestureState struct {
	Mode   Mode
	Target bool
}

// Gesture returns the current paint gesture.
func (s *Sandbox) Gesture() GestureState { return s.gesture }

// Pointer updates hover state for the world point (x, y) and drives the paint
// gesture. The first cell touched while pressed picks the target value as
// the inverse of its state; every hovered cell then receives that value until
// the button is released.
func (s *Sandbox) Pointer(x, y float64, pressed bool) {
	idx, ok := s.Hover(x, y)
	s.hovered = -1
	if ok {
		s.hovered = idx
	}
	if !pressed {
		s.Release()
		return
	}
	if !ok {
		return
	}
	if s.gesture.Mode == Idle {
		s.gesture = GestureState{Mode: Painting, Target: !s.engine.Alive(idx)}
	}
	s.engine.Paint(idx, s.gesture.Target)
}

// Release ends any paint gesture.
func (s *Sandbox) Release() {
	s.gesture = GestureState{}
}

// Leave clears the hover and ends any gesture, for when the pointer exits
// the view.
func (s *Sandbox) Leave() {
	s.hovered = -1
	s.Release()
}
