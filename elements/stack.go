package elements

import (
	"fmt"

	"github.com/etchline/etch"
)

// StackLayout is the payload a Stack produces at layout time: the ids its
// children registered in this pass, in paint order.
type StackLayout struct {
	ChildIDs []etch.LayoutID
}

// Stack is a flex container laying out children along one axis. All style
// setters return the stack for chaining.
type Stack[V any] struct {
	style    etch.Style
	children etch.ChildList[V]
}

// NewStack creates an empty row-direction stack.
func NewStack[V any]() *Stack[V] {
	return &Stack[V]{style: etch.DefaultStyle()}
}

// Direction sets the main axis.
func (s *Stack[V]) Direction(d etch.Direction) *Stack[V] {
	s.style.Direction = d
	return s
}

// Gap sets the spacing between children on the main axis.
func (s *Stack[V]) Gap(n int) *Stack[V] {
	s.style.Gap = n
	return s
}

// Justify sets how leftover main-axis space is distributed.
func (s *Stack[V]) Justify(j etch.Justify) *Stack[V] {
	s.style.Justify = j
	return s
}

// Align sets how children are placed on the cross axis.
func (s *Stack[V]) Align(a etch.Align) *Stack[V] {
	s.style.Align = a
	return s
}

// Grow sets this stack's share of leftover space in its parent.
func (s *Stack[V]) Grow(g float64) *Stack[V] {
	s.style.Grow = g
	return s
}

// Padding insets the content box on all sides.
func (s *Stack[V]) Padding(n int) *Stack[V] {
	s.style.Padding = etch.EdgeAll(n)
	return s
}

// Width sets the declared width.
func (s *Stack[V]) Width(v etch.Value) *Stack[V] {
	s.style.Width = v
	return s
}

// Height sets the declared height.
func (s *Stack[V]) Height(v etch.Value) *Stack[V] {
	s.style.Height = v
	return s
}

// Child appends one child and returns the stack for chaining.
func (s *Stack[V]) Child(kid etch.IntoAnyElement[V]) *Stack[V] {
	s.children.Append(kid)
	return s
}

// Children appends children in order and returns the stack for chaining.
func (s *Stack[V]) Children(kids ...etch.IntoAnyElement[V]) *Stack[V] {
	s.children.Append(kids...)
	return s
}

// AppendChildren implements etch.ParentElement.
func (s *Stack[V]) AppendChildren(kids ...etch.IntoAnyElement[V]) {
	s.children.Append(kids...)
}

// Layout lays out children bottom-up, then registers this stack with their
// ids. A failing child aborts the pass.
func (s *Stack[V]) Layout(view *V, cx *etch.LayoutContext) (*etch.Layout[StackLayout], error) {
	ids := make([]etch.LayoutID, 0, s.children.Len())
	for _, child := range s.children.All() {
		id, err := child.Layout(view, cx)
		if err != nil {
			return nil, fmt.Errorf("stack child %d: %w", len(ids), err)
		}
		ids = append(ids, id)
	}

	id, err := cx.AddLayoutNode(s.style, ids...)
	if err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}
	return etch.NewLayout(id, StackLayout{ChildIDs: ids}), nil
}

// Paint recurses into children in insertion order. The stack itself draws
// nothing.
func (s *Stack[V]) Paint(view *V, layout *etch.Layout[StackLayout], cx *etch.PaintContext) {
	for _, child := range s.children.All() {
		child.Paint(view, cx)
	}
}

// IntoAny converts the element into a dynamic handle.
func (s *Stack[V]) IntoAny() *etch.AnyElement[V] {
	return etch.IntoAny[V, StackLayout](s)
}
