package etch

import "sort"

// PaintOp is one recorded paint command. Ops carry solved geometry and, for
// text, the content to draw; how ops are ultimately rasterized is up to the
// presentation backend.
type PaintOp struct {
	Bounds Rect
	Order  uint32
	Text   string // empty for fills
}

// Canvas records paint ops in call order. It is the paint surface the
// PaintContext hands to elements; a presentation backend consumes the ops
// after the pass.
type Canvas struct {
	ops []PaintOp
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// FillRect records a fill covering bounds at the given paint order.
func (c *Canvas) FillRect(bounds Rect, order uint32) {
	c.ops = append(c.ops, PaintOp{Bounds: bounds, Order: order})
}

// DrawText records text drawn at bounds with the given paint order.
func (c *Canvas) DrawText(bounds Rect, order uint32, text string) {
	c.ops = append(c.ops, PaintOp{Bounds: bounds, Order: order, Text: text})
}

// Ops returns the recorded ops sorted by paint order. The sort is stable, so
// ops recorded at the same order keep their call order.
func (c *Canvas) Ops() []PaintOp {
	out := make([]PaintOp, len(c.ops))
	copy(out, c.ops)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Len returns the number of recorded ops.
func (c *Canvas) Len() int {
	return len(c.ops)
}

// Reset discards all recorded ops.
func (c *Canvas) Reset() {
	c.ops = c.ops[:0]
}
