package etch

import "go.uber.org/zap"

// Layout wraps an engine-assigned layout id plus an element-specific payload
// and lazily caches the engine's computed geometry on first access during
// paint. The cache lives as long as this instance; re-running layout produces
// a fresh instance and so discards it.
type Layout[D any] struct {
	id     LayoutID
	engine *EngineLayout
	data   *D
}

// NewLayout wraps a fresh layout id and the element's payload.
func NewLayout[D any](id LayoutID, data D) *Layout[D] {
	return &Layout[D]{id: id, data: &data}
}

// ID returns the engine-assigned layout id.
func (l *Layout[D]) ID() LayoutID {
	return l.id
}

// Bounds returns the solved bounds for this layout, fetching and caching
// engine geometry on first access.
func (l *Layout[D]) Bounds(cx *PaintContext) Rect {
	return l.engineLayout(cx).Bounds
}

// Order returns the solved paint order for this layout, fetching and caching
// engine geometry on first access.
func (l *Layout[D]) Order(cx *PaintContext) uint32 {
	return l.engineLayout(cx).Order
}

// Update grants fn exclusive access to both the layout and its payload at
// once. Reentrant calls on the same instance panic. See the package-level
// Update for the form that returns a result.
func (l *Layout[D]) Update(fn func(l *Layout[D], data *D)) {
	Update(l, func(l *Layout[D], data *D) struct{} {
		fn(l, data)
		return struct{}{}
	})
}

// Update grants fn exclusive access to the layout and its payload and
// returns fn's result. The payload is taken out of the layout for the
// duration of the call and restored afterward; a reentrant call would find
// the slot empty, which is a caller bug and panics.
//
// This is a package function rather than a method because Go methods cannot
// introduce the result type parameter.
func Update[D, T any](l *Layout[D], fn func(*Layout[D], *D) T) T {
	data := l.data
	if data == nil {
		panic("etch: reentrant calls to Layout.Update are not supported")
	}
	l.data = nil
	result := fn(l, data)
	l.data = data
	return result
}

// engineLayout is the shared lazy-fetch path behind Bounds and Order. A
// failed lookup is a soft failure: it logs and caches zero geometry, since a
// frame painted with zero-sized bounds beats a crashed frame.
func (l *Layout[D]) engineLayout(cx *PaintContext) EngineLayout {
	if l.engine == nil {
		computed, err := cx.ComputedLayout(l.id)
		if err != nil {
			cx.Logger().Warn("no computed geometry for layout node, painting with zero geometry",
				zap.Uint64("layout_id", uint64(l.id)),
				zap.Error(err),
			)
			computed = EngineLayout{}
		}
		l.engine = &computed
	}
	return *l.engine
}
