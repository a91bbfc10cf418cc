// Package quadtree implements a region quadtree over integer handles whose
// rectangles are looked up in a separately owned table.
//
// A Tree stores only indices. Rectangles are resolved through a Bounder, so
// the tree never copies or owns cell data. No method is safe for concurrent
// use; callers that share a Tree across goroutines must synchronize.
package quadtree

import (
	"fmt"

	"quadlife/pkg/core"
)

// NoQuadrant is returned by Quadrant for rectangles that straddle a split line.
const NoQuadrant = -1

// Quadrant order: top-left, top-right, bottom-left, bottom-right.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Bounder resolves an index to its world-space rectangle.
type Bounder interface {
	Rect(index int) core.Rect
	Len() int
}

// Config holds the split thresholds of a tree.
type Config struct {
	// MaxObjects is the number of indices a node holds before it splits.
	MaxObjects int
	// MaxLevels is the deepest level that may be created; nodes at this level
	// never split.
	MaxLevels int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{MaxObjects: 4, MaxLevels: 5}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MaxObjects <= 0 {
		c.MaxObjects = d.MaxObjects
	}
	if c.MaxLevels < 0 {
		c.MaxLevels = d.MaxLevels
	}
	return c
}

// Tree is one node of a quadtree. The root owns its whole subtree; children
// are allocated together on the first overflow and never merged back.
type Tree struct {
	bounds   core.Rect
	level    int
	cfg      Config
	src      Bounder
	objects  []int
	children *[4]Tree
}

// New returns an empty root node covering bounds. Zero-area bounds or a nil
// source are programming errors and panic.
func New(bounds core.Rect, src Bounder, cfg Config) *Tree {
	if bounds.Empty() {
		panic(fmt.Sprintf("quadtree: degenerate bounds %+v", bounds))
	}
	if src == nil {
		panic("quadtree: nil Bounder")
	}
	return &Tree{bounds: bounds, cfg: cfg.normalized(), src: src}
}

// Bounds returns the region covered by this node.
func (t *Tree) Bounds() core.Rect { return t.bounds }

// Level returns the depth of this node; the root is level 0.
func (t *Tree) Level() int { return t.level }

// Config returns the thresholds shared by every node of the tree.
func (t *Tree) Config() Config { return t.cfg }

// Objects returns the indices stored directly at this node.
func (t *Tree) Objects() []int { return t.objects }

// Split reports whether this node has children.
func (t *Tree) Split() bool { return t.children != nil }

// Child returns the child node for quadrant q, or nil when not split.
func (t *Tree) Child(q int) *Tree {
	if t.children == nil || q < 0 || q > 3 {
		return nil
	}
	return &t.children[q]
}

func (t *Tree) split() {
	w := t.bounds.Width / 2
	h := t.bounds.Height / 2
	l, top := t.bounds.Left, t.bounds.Top
	quads := [4]core.Rect{
		core.R(l, top, w, h),
		core.R(l+w, top, w, h),
		core.R(l, top+h, w, h),
		core.R(l+w, top+h, w, h),
	}
	t.children = new([4]Tree)
	for i, b := range quads {
		t.children[i] = Tree{bounds: b, level: t.level + 1, cfg: t.cfg, src: t.src}
	}
}

// Quadrant returns which child quadrant fully contains r, or NoQuadrant when
// r touches or crosses either midline. A rectangle whose far edge lands
// exactly on a midline counts as straddling.
func (t *Tree) Quadrant(r core.Rect) int {
	vmid := t.bounds.Left + t.bounds.Width/2
	hmid := t.bounds.Top + t.bounds.Height/2

	top := r.Top < hmid && r.Bottom() < hmid
	bottom := r.Top > hmid

	switch {
	case r.Left < vmid && r.Right() < vmid:
		if top {
			return TopLeft
		}
		if bottom {
			return BottomLeft
		}
	case r.Left > vmid:
		if top {
			return TopRight
		}
		if bottom {
			return BottomRight
		}
	}
	return NoQuadrant
}

func (t *Tree) rect(index int) core.Rect {
	if index < 0 || index >= t.src.Len() {
		panic(fmt.Sprintf("quadtree: index %d out of range [0,%d)", index, t.src.Len()))
	}
	return t.src.Rect(index)
}

// Insert adds index to the tree. It is pushed to the deepest existing node
// whose quadrant fully contains its rectangle; when a node overflows below
// MaxLevels it splits and redistributes what it holds.
func (t *Tree) Insert(index int) {
	r := t.rect(index)
	if t.children != nil {
		if q := t.Quadrant(r); q != NoQuadrant {
			t.children[q].Insert(index)
			return
		}
	}

	t.objects = append(t.objects, index)
	if len(t.objects) <= t.cfg.MaxObjects || t.level >= t.cfg.MaxLevels {
		return
	}
	if t.children == nil {
		t.split()
	}
	kept := t.objects[:0]
	for _, idx := range t.objects {
		if q := t.Quadrant(t.src.Rect(idx)); q != NoQuadrant {
			t.children[q].Insert(idx)
			continue
		}
		kept = append(kept, idx)
	}
	t.objects = kept
}

// Retrieve returns candidate indices for query: the contents of the single
// child quadrant that contains query (recursively), followed by the indices
// held at this node.
//
// A query that straddles a midline does not descend, so indices stored in
// children it overlaps are not returned. Callers must still test each
// candidate against the exact region.
func (t *Tree) Retrieve(query core.Rect) []int {
	return t.RetrieveInto(nil, query)
}

// RetrieveInto is Retrieve appending to dst.
func (t *Tree) RetrieveInto(dst []int, query core.Rect) []int {
	if t.children != nil {
		if q := t.Quadrant(query); q != NoQuadrant {
			dst = t.children[q].RetrieveInto(dst, query)
		}
	}
	return append(dst, t.objects...)
}

// Clear drops every stored index but keeps the node structure.
func (t *Tree) Clear() {
	t.objects = t.objects[:0]
	if t.children == nil {
		return
	}
	for i := range t.children {
		t.children[i].Clear()
	}
}

// Walk visits nodes depth-first, parent before children. Returning false
// from fn skips that node's children.
func (t *Tree) Walk(fn func(n *Tree) bool) {
	if !fn(t) || t.children == nil {
		return
	}
	for i := range t.children {
		t.children[i].Walk(fn)
	}
}

// Depth returns the deepest level present under this node.
func (t *Tree) Depth() int {
	d := t.level
	t.Walk(func(n *Tree) bool {
		if n.level > d {
			d = n.level
		}
		return true
	})
	return d
}

// NodeCount returns the number of nodes including this one.
func (t *Tree) NodeCount() int {
	n := 0
	t.Walk(func(*Tree) bool { n++; return true })
	return n
}

// Len returns the number of indices stored under this node.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(node *Tree) bool { n += len(node.objects); return true })
	return n
}
