package elements

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/etchline/etch"
)

// TextLayout is the payload a Text element produces at layout time: the
// resolved string and its measured cell width.
type TextLayout struct {
	Text  string
	Width int
}

// Text is a single-line text leaf. Its content is either static or derived
// from the view on every layout pass.
type Text[V any] struct {
	text   string
	derive func(*V) string
}

// NewText creates a static text element.
func NewText[V any](text string) *Text[V] {
	return &Text[V]{text: text}
}

// TextFunc creates a text element whose content is derived from the view on
// each layout pass.
func TextFunc[V any](fn func(*V) string) *Text[V] {
	return &Text[V]{derive: fn}
}

// Layout measures the content (wide runes count double) and registers a
// fixed-size node.
func (t *Text[V]) Layout(view *V, cx *etch.LayoutContext) (*etch.Layout[TextLayout], error) {
	text := t.text
	if t.derive != nil {
		text = t.derive(view)
	}
	width := runewidth.StringWidth(text)

	style := etch.DefaultStyle()
	style.Width = etch.Fixed(width)
	style.Height = etch.Fixed(1)

	id, err := cx.AddLayoutNode(style)
	if err != nil {
		return nil, fmt.Errorf("text %q: %w", text, err)
	}
	return etch.NewLayout(id, TextLayout{Text: text, Width: width}), nil
}

// Paint draws the measured text at the solved bounds.
func (t *Text[V]) Paint(view *V, layout *etch.Layout[TextLayout], cx *etch.PaintContext) {
	bounds := layout.Bounds(cx)
	order := layout.Order(cx)
	text := etch.Update(layout, func(_ *etch.Layout[TextLayout], data *TextLayout) string {
		return data.Text
	})
	cx.Canvas().DrawText(bounds, order, text)
}

// IntoAny converts the element into a dynamic handle.
func (t *Text[V]) IntoAny() *etch.AnyElement[V] {
	return etch.IntoAny[V, TextLayout](t)
}
