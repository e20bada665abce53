package etch

import (
	"fmt"

	"go.uber.org/zap"
)

// LayoutEngine is the engine capability the core consumes. The reference
// implementation lives in internal/layout; tests substitute stubs.
type LayoutEngine interface {
	// Register adds a layout node with already-registered children and
	// returns a fresh layout id.
	Register(style Style, children ...LayoutID) (LayoutID, error)

	// Computed returns the solved geometry for an id, or an error if the id
	// is unknown or not yet solved.
	Computed(id LayoutID) (EngineLayout, error)
}

// LayoutContext mediates access to the layout engine during one layout pass.
type LayoutContext struct {
	engine LayoutEngine
}

// NewLayoutContext wraps an engine for one layout pass.
func NewLayoutContext(engine LayoutEngine) *LayoutContext {
	return &LayoutContext{engine: engine}
}

// AddLayoutNode registers a node for this element and returns its id.
// Children must have been registered earlier in the same pass.
func (cx *LayoutContext) AddLayoutNode(style Style, children ...LayoutID) (LayoutID, error) {
	id, err := cx.engine.Register(style, children...)
	if err != nil {
		return 0, fmt.Errorf("add layout node: %w", err)
	}
	return id, nil
}

// PaintContext mediates geometry queries and paint output during one paint
// pass.
type PaintContext struct {
	engine LayoutEngine
	canvas *Canvas
	log    *zap.Logger
}

// NewPaintContext wraps an engine and a canvas for one paint pass.
// A nil logger is replaced with a no-op logger.
func NewPaintContext(engine LayoutEngine, canvas *Canvas, log *zap.Logger) *PaintContext {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaintContext{engine: engine, canvas: canvas, log: log}
}

// ComputedLayout returns the engine's solved geometry for id.
func (cx *PaintContext) ComputedLayout(id LayoutID) (EngineLayout, error) {
	return cx.engine.Computed(id)
}

// Canvas returns the paint surface for this pass.
func (cx *PaintContext) Canvas() *Canvas {
	return cx.canvas
}

// Logger returns the pass logger. Never nil.
func (cx *PaintContext) Logger() *zap.Logger {
	return cx.log
}
