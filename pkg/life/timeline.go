package life

// Frame is a snapshot of every cell's flag at one generation; 1 is alive.
type Frame []uint8

// Alive reports whether cell i is alive in this frame.
func (f Frame) Alive(i int) bool { return f[i] != 0 }

// Clone returns an independent copy of the frame.
func (f Frame) Clone() Frame { return append(Frame(nil), f...) }

// Timeline is the ordered history of frames, oldest first. It is never
// empty: the last frame is the current generation.
type Timeline struct {
	frames  []Frame
	max     int
	dropped int
}

// NewTimeline starts a history holding only first. When max is positive the
// oldest frames are discarded once more than max are held.
func NewTimeline(first Frame, max int) *Timeline {
	return &Timeline{frames: []Frame{first}, max: max}
}

// Len returns the number of frames held.
func (t *Timeline) Len() int { return len(t.frames) }

// Top returns the current frame.
func (t *Timeline) Top() Frame { return t.frames[len(t.frames)-1] }

// At returns the i-th held frame, oldest first.
func (t *Timeline) At(i int) Frame { return t.frames[i] }

// Generation counts the steps taken since the timeline was last reset,
// including frames discarded by the history cap.
func (t *Timeline) Generation() int { return t.dropped + len(t.frames) - 1 }

// Push appends f as the new current frame.
func (t *Timeline) Push(f Frame) {
	t.frames = append(t.frames, f)
	if t.max <= 0 || len(t.frames) <= t.max {
		return
	}
	over := len(t.frames) - t.max
	for i := 0; i < over; i++ {
		t.frames[i] = nil
	}
	t.frames = append(t.frames[:0], t.frames[over:]...)
	t.dropped += over
}

// Pop removes the current frame and returns the new one. With a single frame
// held it does nothing and reports false.
func (t *Timeline) Pop() (Frame, bool) {
	if len(t.frames) <= 1 {
		return t.Top(), false
	}
	t.frames[len(t.frames)-1] = nil
	t.frames = t.frames[:len(t.frames)-1]
	return t.Top(), true
}

// Reset discards all history and starts again from first.
func (t *Timeline) Reset(first Frame) {
	for i := range t.frames {
		t.frames[i] = nil
	}
	t.frames = append(t.frames[:0], first)
	t.dropped = 0
}
