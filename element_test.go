package etch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testView struct {
	painted int
}

// stubEngine hands out sequential ids and serves canned geometry, counting
// every geometry query.
type stubEngine struct {
	nextID        LayoutID
	layouts       map[LayoutID]EngineLayout
	registerErr   error
	computedCalls int
}

func newStubEngine() *stubEngine {
	return &stubEngine{layouts: map[LayoutID]EngineLayout{}}
}

func (s *stubEngine) Register(style Style, children ...LayoutID) (LayoutID, error) {
	if s.registerErr != nil {
		return 0, s.registerErr
	}
	s.nextID++
	return s.nextID, nil
}

func (s *stubEngine) Computed(id LayoutID) (EngineLayout, error) {
	s.computedCalls++
	l, ok := s.layouts[id]
	if !ok {
		return EngineLayout{}, ErrUnknownNode
	}
	return l, nil
}

type spyPayload struct {
	tag string
}

// spyElement records the dispatch sequence and captures the layout result it
// is painted with.
type spyElement struct {
	events     []string
	layoutErr  error
	lastResult *Layout[spyPayload]
}

func (s *spyElement) Layout(view *testView, cx *LayoutContext) (*Layout[spyPayload], error) {
	s.events = append(s.events, "layout")
	if s.layoutErr != nil {
		return nil, s.layoutErr
	}
	id, err := cx.AddLayoutNode(DefaultStyle())
	if err != nil {
		return nil, err
	}
	return NewLayout(id, spyPayload{tag: "spy"}), nil
}

func (s *spyElement) Paint(view *testView, layout *Layout[spyPayload], cx *PaintContext) {
	s.events = append(s.events, "paint")
	s.lastResult = layout
	view.painted++
}

func TestLayoutContext_AddLayoutNodeWrapsEngineError(t *testing.T) {
	engine := newStubEngine()
	engine.registerErr = errors.New("node arena full")

	_, err := NewLayoutContext(engine).AddLayoutNode(DefaultStyle())
	require.ErrorIs(t, err, engine.registerErr)
	require.ErrorContains(t, err, "add layout node")
}

func TestAnyElement_LayoutThenPaint(t *testing.T) {
	engine := newStubEngine()
	spy := &spyElement{}
	handle := IntoAny[testView, spyPayload](spy)

	view := testView{}
	id, err := handle.Layout(&view, NewLayoutContext(engine))
	require.NoError(t, err)
	require.Equal(t, LayoutID(1), id)

	handle.Paint(&view, NewPaintContext(engine, NewCanvas(), nil))

	require.Equal(t, []string{"layout", "paint"}, spy.events)
	require.Equal(t, 1, view.painted)
}

func TestAnyElement_PaintBeforeLayoutPanics(t *testing.T) {
	engine := newStubEngine()
	handle := IntoAny[testView, spyPayload](&spyElement{})

	view := testView{}
	require.PanicsWithValue(t, "etch: paint called before layout", func() {
		handle.Paint(&view, NewPaintContext(engine, NewCanvas(), nil))
	})
}

func TestAnyElement_LayoutErrorPropagates(t *testing.T) {
	engine := newStubEngine()
	layoutErr := errors.New("engine exploded")
	spy := &spyElement{layoutErr: layoutErr}
	handle := IntoAny[testView, spyPayload](spy)

	view := testView{}
	_, err := handle.Layout(&view, NewLayoutContext(engine))
	require.ErrorIs(t, err, layoutErr)

	// A failed layout stores no result, so painting is still a caller bug.
	require.Panics(t, func() {
		handle.Paint(&view, NewPaintContext(engine, NewCanvas(), nil))
	})
}

func TestAnyElement_GeometryFetchedOnceAndCached(t *testing.T) {
	engine := newStubEngine()
	engine.nextID = 6 // the next registration is assigned id 7
	engine.layouts[7] = EngineLayout{Bounds: NewRect(0, 0, 10, 20), Order: 1}

	spy := &spyElement{}
	handle := IntoAny[testView, spyPayload](spy)

	view := testView{}
	id, err := handle.Layout(&view, NewLayoutContext(engine))
	require.NoError(t, err)
	require.Equal(t, LayoutID(7), id)

	cx := NewPaintContext(engine, NewCanvas(), nil)
	handle.Paint(&view, cx)
	require.NotNil(t, spy.lastResult)

	// Two reads of each accessor resolve through the memoized geometry.
	require.Equal(t, NewRect(0, 0, 10, 20), spy.lastResult.Bounds(cx))
	require.Equal(t, NewRect(0, 0, 10, 20), spy.lastResult.Bounds(cx))
	require.Equal(t, uint32(1), spy.lastResult.Order(cx))
	require.Equal(t, uint32(1), spy.lastResult.Order(cx))
	require.Equal(t, 1, engine.computedCalls)
}

func TestAnyElement_RelayoutDiscardsCachedGeometry(t *testing.T) {
	engine := newStubEngine()
	engine.layouts[1] = EngineLayout{Bounds: NewRect(0, 0, 4, 4), Order: 1}
	engine.layouts[2] = EngineLayout{Bounds: NewRect(5, 5, 8, 8), Order: 2}

	spy := &spyElement{}
	handle := IntoAny[testView, spyPayload](spy)
	view := testView{}

	_, err := handle.Layout(&view, NewLayoutContext(engine))
	require.NoError(t, err)
	cx := NewPaintContext(engine, NewCanvas(), nil)
	handle.Paint(&view, cx)
	require.Equal(t, 1, engine.computedCalls)
	require.Equal(t, NewRect(0, 0, 4, 4), spy.lastResult.Bounds(cx))

	// A second layout starts a fresh generation; paint must re-fetch rather
	// than reuse the stale cache.
	_, err = handle.Layout(&view, NewLayoutContext(engine))
	require.NoError(t, err)
	handle.Paint(&view, cx)
	require.Equal(t, 2, engine.computedCalls)
	require.Equal(t, NewRect(5, 5, 8, 8), spy.lastResult.Bounds(cx))
	require.Equal(t, []string{"layout", "paint", "layout", "paint"}, spy.events)
}
