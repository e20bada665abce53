package elements

import (
	"fmt"

	"github.com/etchline/etch"
)

// BoxLayout is the payload a Box produces at layout time: the style it
// registered, kept so paint-time consumers can inspect the declared size.
type BoxLayout struct {
	Style etch.Style
}

// Box is a leaf that fills its solved bounds. Useful as a spacer or a
// placeholder pane.
type Box[V any] struct {
	style etch.Style
}

// NewBox creates an auto-sized box.
func NewBox[V any]() *Box[V] {
	return &Box[V]{style: etch.DefaultStyle()}
}

// Size sets a fixed width and height.
func (b *Box[V]) Size(width, height int) *Box[V] {
	b.style.Width = etch.Fixed(width)
	b.style.Height = etch.Fixed(height)
	return b
}

// Width sets the declared width.
func (b *Box[V]) Width(v etch.Value) *Box[V] {
	b.style.Width = v
	return b
}

// Height sets the declared height.
func (b *Box[V]) Height(v etch.Value) *Box[V] {
	b.style.Height = v
	return b
}

// Grow sets this box's share of leftover space in its parent.
func (b *Box[V]) Grow(g float64) *Box[V] {
	b.style.Grow = g
	return b
}

// Layout registers a node with the box's declared style.
func (b *Box[V]) Layout(view *V, cx *etch.LayoutContext) (*etch.Layout[BoxLayout], error) {
	id, err := cx.AddLayoutNode(b.style)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	return etch.NewLayout(id, BoxLayout{Style: b.style}), nil
}

// Paint fills the solved bounds, unless the box collapsed to zero size.
func (b *Box[V]) Paint(view *V, layout *etch.Layout[BoxLayout], cx *etch.PaintContext) {
	bounds := layout.Bounds(cx)
	if bounds.IsEmpty() {
		return
	}
	cx.Canvas().FillRect(bounds, layout.Order(cx))
}

// IntoAny converts the element into a dynamic handle.
func (b *Box[V]) IntoAny() *etch.AnyElement[V] {
	return etch.IntoAny[V, BoxLayout](b)
}
