// Package life implements Conway-style automata on a bounded grid with a
// rewindable history of generations.
//
// An Engine owns the authoritative live/dead flags. Every Step appends a
// snapshot to its Timeline and StepBack restores the previous snapshot by
// lookup. Engines are not safe for concurrent use.
package life

import (
	"fmt"

	"quadlife/pkg/core"
)

// Config holds the parameters of an Engine.
type Config struct {
	Width  int
	Height int

	Rule Rule

	// MaxHistory caps the number of frames kept; 0 keeps everything.
	MaxHistory int
}

// DefaultConfig returns a 25x25 Conway grid with unbounded history.
func DefaultConfig() Config {
	return Config{Width: 25, Height: 25, Rule: Conway}
}

// Engine advances a grid of cells one generation at a time.
type Engine struct {
	cfg      Config
	w, h     int
	cells    *core.ByteGrid
	timeline *Timeline
}

// New returns a Conway engine with the provided dimensions.
func New(w, h int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine with every cell dead and a single frame of
// history.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("life: %dx%d: %w", cfg.Width, cfg.Height, core.ErrInvalidSize)
	}
	e := &Engine{
		cfg:   cfg,
		w:     cfg.Width,
		h:     cfg.Height,
		cells: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	e.timeline = NewTimeline(make(Frame, e.cells.Len()), cfg.MaxHistory)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Len returns the number of cells.
func (e *Engine) Len() int { return e.cells.Len() }

// Cells exposes the current flags for rendering. Callers must not modify it.
func (e *Engine) Cells() []uint8 { return e.cells.Cells() }

// Alive reports whether cell i is alive in the current generation.
func (e *Engine) Alive(i int) bool {
	e.check(i)
	return e.cells.Get(i)
}

// Rule returns the rule applied by Step.
func (e *Engine) Rule() Rule { return e.cfg.Rule }

// SetRule replaces the rule for subsequent steps. History is untouched.
func (e *Engine) SetRule(r Rule) { e.cfg.Rule = r }

// Timeline exposes the frame history.
func (e *Engine) Timeline() *Timeline { return e.timeline }

// Depth returns the number of frames in the history.
func (e *Engine) Depth() int { return e.timeline.Len() }

// Generation returns the number of steps since the last reset.
func (e *Engine) Generation() int { return e.timeline.Generation() }

// LiveCount returns the number of live cells.
func (e *Engine) LiveCount() int { return e.cells.Count() }

func (e *Engine) check(i int) {
	if i < 0 || i >= e.cells.Len() {
		panic(fmt.Sprintf("life: cell index %d out of range [0,%d)", i, e.cells.Len()))
	}
}

// Neighbors returns the Moore neighbourhood of cell i, clipped at the grid
// edges. Corners have 3 neighbours, other edge cells 5 and interior cells 8.
func (e *Engine) Neighbors(i int) []int {
	e.check(i)
	out := make([]int, 0, 8)
	row, col := i/e.w, i%e.w
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if e.cells.InBounds(c, r) {
				out = append(out, e.cells.Index(c, r))
			}
		}
	}
	return out
}

// LiveNeighbors counts the live neighbours of cell i in the current frame.
func (e *Engine) LiveNeighbors(i int) int {
	e.check(i)
	return countLive(e.timeline.Top(), e.w, e.h, i%e.w, i/e.w)
}

func countLive(f Frame, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			n += int(f[ny*w+nx])
		}
	}
	return n
}

// Step advances the automaton by one generation. Neighbour counts are read
// only from the current frame, so cell order does not matter.
func (e *Engine) Step() {
	prev := e.timeline.Top()
	next := make(Frame, len(prev))
	w, h := e.w, e.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if e.cfg.Rule.Next(prev[idx] != 0, countLive(prev, w, h, x, y)) {
				next[idx] = 1
			}
		}
	}
	e.timeline.Push(next)
	e.cells.Restore(next)
}

// StepBack discards the current generation and restores the previous one.
// With a single frame of history it does nothing and returns false.
func (e *Engine) StepBack() bool {
	top, ok := e.timeline.Pop()
	if !ok {
		return false
	}
	e.cells.Restore(top)
	return true
}

// Paint sets cell i in the current generation without adding history.
func (e *Engine) Paint(i int, alive bool) {
	e.check(i)
	e.cells.Set(i, alive)
	top := e.timeline.Top()
	top[i] = 0
	if alive {
		top[i] = 1
	}
}

// Reset kills every cell and discards all history.
func (e *Engine) Reset() {
	e.cells.Clear()
	e.timeline.Reset(make(Frame, e.cells.Len()))
}
