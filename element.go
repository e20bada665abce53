package etch

// Element is the capability every concrete element type implements. V is the
// view: the externally owned, mutable state the element reads and mutates
// during both phases. D is the element-specific layout payload, produced at
// layout time and consumed at paint time.
//
// Layout must be called before each Paint that is to reflect current content.
// Painting a handle that was never laid out is a caller bug and panics.
type Element[V, D any] interface {
	// Layout computes the element's sizing inputs (recursing into children's
	// own Layout calls), registers a layout node through cx, and returns a
	// Layout wrapping the fresh id and the element's payload.
	Layout(view *V, cx *LayoutContext) (*Layout[D], error)

	// Paint renders the element using the geometry in layout, recursing into
	// children. Paint never fails; geometry lookups degrade to zero geometry.
	Paint(view *V, layout *Layout[D], cx *PaintContext)
}

// IntoAnyElement is satisfied by anything convertible to a dynamic handle,
// so literals and builders compose as children without boilerplate.
// Concrete elements implement it with a one-line IntoAny method.
type IntoAnyElement[V any] interface {
	IntoAny() *AnyElement[V]
}

// IntoAny erases a concrete element into a dynamic handle, seeding it with
// an empty (unset) layout result.
func IntoAny[V, D any](e Element[V, D]) *AnyElement[V] {
	return &AnyElement[V]{state: &statefulElement[V, D]{element: e}}
}

// anyStatefulElement mirrors the element contract with the payload type
// stripped, so heterogeneous elements can sit behind one interface.
type anyStatefulElement[V any] interface {
	layout(view *V, cx *LayoutContext) (LayoutID, error)
	paint(view *V, cx *PaintContext)
}

// statefulElement couples one concrete element with its layout result.
// The result is nil until the first layout call and replaced wholesale on
// every subsequent one, discarding any cached geometry.
type statefulElement[V, D any] struct {
	element Element[V, D]
	result  *Layout[D]
}

func (s *statefulElement[V, D]) layout(view *V, cx *LayoutContext) (LayoutID, error) {
	result, err := s.element.Layout(view, cx)
	if err != nil {
		return 0, err
	}
	s.result = result
	return result.ID(), nil
}

func (s *statefulElement[V, D]) paint(view *V, cx *PaintContext) {
	if s.result == nil {
		panic("etch: paint called before layout")
	}
	// First access memoizes engine geometry into the result (soft-failing
	// to zero geometry) so the element paints against a stable snapshot.
	s.result.engineLayout(cx)
	s.element.Paint(view, s.result, cx)
}

// AnyElement is the uniform, storable handle for one concrete element. It
// hides the concrete type entirely behind the two dispatch operations.
type AnyElement[V any] struct {
	state anyStatefulElement[V]
}

// Layout runs the held element's layout, stores the full result internally,
// and returns just the layout id for threading to the engine.
func (e *AnyElement[V]) Layout(view *V, cx *LayoutContext) (LayoutID, error) {
	return e.state.layout(view, cx)
}

// Paint renders the held element against its stored layout result.
// It panics if Layout has never been called on this handle.
func (e *AnyElement[V]) Paint(view *V, cx *PaintContext) {
	e.state.paint(view, cx)
}

// IntoAny returns the handle itself, so handles compose as children.
func (e *AnyElement[V]) IntoAny() *AnyElement[V] {
	return e
}
