package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children left-to-right
	Column                  // Children top-to-bottom
)

// Justify specifies how leftover main-axis space is distributed.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch auto-sized children to fill
)

// Style is the full set of layout inputs for one node.
type Style struct {
	Width  Value
	Height Value

	// Container properties
	Direction Direction
	Justify   Justify
	Align     Align
	Gap       int // Space between children on the main axis
	Padding   Edges

	// Item property: share of leftover main-axis space in the parent.
	Grow float64
}

// DefaultStyle returns a Style with auto dimensions, row direction, and
// stretch cross alignment.
func DefaultStyle() Style {
	return Style{
		Width:  Auto(),
		Height: Auto(),
		Align:  AlignStretch,
	}
}

// main returns the main-axis dimension value for the given direction.
func (s Style) main(dir Direction) Value {
	if dir == Row {
		return s.Width
	}
	return s.Height
}

// cross returns the cross-axis dimension value for the given direction.
func (s Style) cross(dir Direction) Value {
	if dir == Row {
		return s.Height
	}
	return s.Width
}
