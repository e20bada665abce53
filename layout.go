// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package etch

import "github.com/etchline/etch/internal/layout"

// LayoutID is the opaque token the engine assigns to one element instance
// for one pass.
type LayoutID = layout.NodeID

// EngineLayout is the solved geometry for a layout id: bounds plus paint order.
type EngineLayout = layout.EngineLayout

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Edges represents spacing on four sides.
type Edges = layout.Edges

// Style holds the layout properties submitted for a node.
type Style = layout.Style

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how leftover main-axis space is distributed.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

var (
	// ErrUnknownNode reports a layout id that was not issued in the current
	// pass.
	ErrUnknownNode = layout.ErrUnknownNode

	// ErrNotSolved reports a geometry query on a node the engine has not
	// solved yet.
	ErrNotSolved = layout.ErrNotSolved
)

// Engine is the reference layout engine.
type Engine = layout.Engine

// NewEngine creates an empty reference engine.
func NewEngine() *Engine {
	return layout.NewEngine()
}

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
