package layout

import (
	"errors"
	"fmt"
	"slices"
)

// NodeID identifies one registered layout node for one pass.
// The zero value is never issued and is always invalid.
type NodeID uint64

var (
	// ErrUnknownNode reports an id that was not issued in the current pass.
	ErrUnknownNode = errors.New("unknown layout node")

	// ErrNotSolved reports a geometry query on a node the engine has not
	// solved yet.
	ErrNotSolved = errors.New("layout not solved")
)

// EngineLayout is the solved geometry for one node: its bounds and the
// pre-order paint index assigned during Solve.
type EngineLayout struct {
	Bounds Rect
	Order  uint32
}

type node struct {
	style    Style
	children []NodeID

	intrinsic Size // content-derived size, filled during measure
	solved    bool
	layout    EngineLayout
}

// Engine is a per-pass arena of layout nodes. It is not safe for concurrent
// use; one layout pass registers nodes, Solve runs once, and the paint pass
// reads geometry back.
type Engine struct {
	nodes []node
}

// NewEngine returns an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Register adds a node with the given style and already-registered children
// and returns its id. Children are laid out in the order given here.
func (e *Engine) Register(style Style, children ...NodeID) (NodeID, error) {
	for _, c := range children {
		if !e.valid(c) {
			return 0, fmt.Errorf("register child %d: %w", c, ErrUnknownNode)
		}
	}
	e.nodes = append(e.nodes, node{style: style, children: slices.Clone(children)})
	return NodeID(len(e.nodes)), nil
}

// Computed returns the solved geometry for id.
func (e *Engine) Computed(id NodeID) (EngineLayout, error) {
	if !e.valid(id) {
		return EngineLayout{}, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	n := e.node(id)
	if !n.solved {
		return EngineLayout{}, fmt.Errorf("node %d: %w", id, ErrNotSolved)
	}
	return n.layout, nil
}

// Solve lays out the tree rooted at root within the available space.
// An auto-sized root fills the available space.
func (e *Engine) Solve(root NodeID, availWidth, availHeight int) error {
	if !e.valid(root) {
		return fmt.Errorf("solve root %d: %w", root, ErrUnknownNode)
	}
	e.measure(root, availWidth, availHeight)
	rn := e.node(root)
	w := rn.style.Width.Resolve(availWidth, availWidth)
	h := rn.style.Height.Resolve(availHeight, availHeight)
	var order uint32
	e.place(root, NewRect(0, 0, w, h), &order)
	return nil
}

// Reset discards all nodes and starts a new pass generation. Ids issued
// before Reset fail Computed with ErrUnknownNode.
func (e *Engine) Reset() {
	e.nodes = e.nodes[:0]
}

// Len returns the number of nodes registered in the current pass.
func (e *Engine) Len() int {
	return len(e.nodes)
}

func (e *Engine) valid(id NodeID) bool {
	return id >= 1 && int(id) <= len(e.nodes)
}

func (e *Engine) node(id NodeID) *node {
	return &e.nodes[id-1]
}
