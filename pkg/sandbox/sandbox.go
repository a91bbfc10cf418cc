// Package sandbox ties grid geometry, the quadtree index and the life engine
// together behind the commands an interactive frontend issues: pointer
// updates, single steps, rewinds, painting and rebuilds.
//
// Frontends resolve window input into world-space coordinates before calling
// in; the sandbox never draws and never reads input devices. A Sandbox is not
// safe for concurrent use.
package sandbox

import (
	"fmt"

	"quadlife/pkg/core"
	"quadlife/pkg/life"
	"quadlife/pkg/quadtree"
)

// Config describes a sandbox grid.
type Config struct {
	Width    int
	Height   int
	CellSize float64

	Tree quadtree.Config

	// Rule is a registered rule name or B/S notation.
	Rule       string
	MaxHistory int

	// ProbeSize is the edge length of the square hover query placed at the
	// pointer.
	ProbeSize float64
}

// DefaultConfig returns a 25x25 grid of 20-unit cells.
func DefaultConfig() Config {
	return Config{
		Width:     25,
		Height:    25,
		CellSize:  20,
		Tree:      quadtree.DefaultConfig(),
		Rule:      "conway",
		ProbeSize: 1,
	}
}

// Sandbox is the interactive automaton: cells, their spatial index and the
// paint gesture state.
type Sandbox struct {
	cfg  Config
	rule life.Rule

	geom   core.Geometry
	tree   *quadtree.Tree
	engine *life.Engine

	gesture GestureState
	hovered int
	scratch []int
}

// New builds a sandbox with every cell dead.
func New(cfg Config) (*Sandbox, error) {
	rule := life.Conway
	if cfg.Rule != "" {
		r, err := life.LookupRule(cfg.Rule)
		if err != nil {
			return nil, fmt.Errorf("sandbox: %w", err)
		}
		rule = r
	}
	if cfg.ProbeSize <= 0 {
		cfg.ProbeSize = 1
	}
	s := &Sandbox{cfg: cfg, rule: rule, hovered: -1}
	if err := s.Rebuild(cfg.Width, cfg.Height, cfg.CellSize); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild replaces the grid with a new all-dead one of the given shape. The
// history, spatial index and gesture state are discarded. On error the
// sandbox is left unchanged.
func (s *Sandbox) Rebuild(w, h int, cellSize float64) error {
	geom, err := core.NewGeometry(w, h, cellSize)
	if err != nil {
		return fmt.Errorf("sandbox: rebuild %dx%d cell %g: %w", w, h, cellSize, err)
	}
	engine, err := life.NewWithConfig(life.Config{
		Width:      w,
		Height:     h,
		Rule:       s.rule,
		MaxHistory: s.cfg.MaxHistory,
	})
	if err != nil {
		return fmt.Errorf("sandbox: %w", err)
	}
	tree := quadtree.New(geom.Bounds(), geom, s.cfg.Tree)
	for i := 0; i < geom.Len(); i++ {
		tree.Insert(i)
	}

	s.geom, s.tree, s.engine = geom, tree, engine
	s.cfg.Width, s.cfg.Height, s.cfg.CellSize = w, h, cellSize
	s.gesture = GestureState{}
	s.hovered = -1
	return nil
}

// Reset kills every cell and drops history, keeping the grid shape.
func (s *Sandbox) Reset() {
	s.engine.Reset()
	s.gesture = GestureState{}
}

// Config returns the current configuration, including rebuilt dimensions.
func (s *Sandbox) Config() Config { return s.cfg }

// Geometry returns the cell geometry.
func (s *Sandbox) Geometry() core.Geometry { return s.geom }

// Tree exposes the spatial index.
func (s *Sandbox) Tree() *quadtree.Tree { return s.tree }

// Engine exposes the automaton.
func (s *Sandbox) Engine() *life.Engine { return s.engine }

// Size returns the grid dimensions in cells.
func (s *Sandbox) Size() core.Size { return s.geom.Size() }

// Len returns the number of cells.
func (s *Sandbox) Len() int { return s.geom.Len() }

// Cells exposes the current flags in row-major order.
func (s *Sandbox) Cells() []uint8 { return s.engine.Cells() }

// Cell returns the bounds and state of cell i.
func (s *Sandbox) Cell(i int) (core.Rect, bool) {
	return s.geom.Rect(i), s.engine.Alive(i)
}

// Rule returns the active rule.
func (s *Sandbox) Rule() life.Rule { return s.rule }

// SetRule switches the rule for future steps.
func (s *Sandbox) SetRule(name string) error {
	r, err := life.LookupRule(name)
	if err != nil {
		return fmt.Errorf("sandbox: %w", err)
	}
	s.rule = r
	s.cfg.Rule = name
	s.engine.SetRule(r)
	return nil
}

// Hover returns the cell under the world point (x, y). Index candidates from
// the quadtree are confirmed with an exact containment test.
func (s *Sandbox) Hover(x, y float64) (int, bool) {
	p := s.cfg.ProbeSize
	s.scratch = s.tree.RetrieveInto(s.scratch[:0], core.R(x, y, p, p))
	for _, idx := range s.scratch {
		if s.geom.Rect(idx).Contains(x, y) {
			return idx, true
		}
	}
	return -1, false
}

// Hovered returns the cell found by the last Pointer call.
func (s *Sandbox) Hovered() (int, bool) {
	return s.hovered, s.hovered >= 0
}

// HoverNeighbors returns the Moore neighbourhood of the hovered cell.
func (s *Sandbox) HoverNeighbors() []int {
	if s.hovered < 0 {
		return nil
	}
	return s.engine.Neighbors(s.hovered)
}

// StepForward advances one generation.
func (s *Sandbox) StepForward() { s.engine.Step() }

// StepBack rewinds one generation; it reports false when there is nothing to
// rewind.
func (s *Sandbox) StepBack() bool { return s.engine.StepBack() }

// Paint sets cell i in the current generation.
func (s *Sandbox) Paint(i int, alive bool) { s.engine.Paint(i, alive) }
