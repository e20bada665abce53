package etch_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/etchline/etch"
	"github.com/etchline/etch/elements"
)

type appState struct {
	Title  string
	Frames int
}

func TestDriver_RenderFrame(t *testing.T) {
	view := appState{Title: "dashboard"}

	root := elements.NewStack[appState]().
		Direction(etch.Column).
		Children(
			elements.NewStack[appState]().
				Height(etch.Fixed(1)).
				Child(elements.TextFunc(func(v *appState) string { return v.Title })),
			elements.NewBox[appState]().Grow(1),
		).
		IntoAny()

	driver := etch.NewDriver[appState]()
	ops, err := driver.RenderFrame(root, &view, 40, 10)
	require.NoError(t, err)

	// The stacks paint nothing themselves: one text op, one fill op,
	// already sorted by paint order.
	require.Len(t, ops, 2)
	require.Equal(t, "dashboard", ops[0].Text)
	require.Equal(t, etch.NewRect(0, 0, 9, 1), ops[0].Bounds)
	require.Empty(t, ops[1].Text)
	require.Equal(t, etch.NewRect(0, 1, 40, 9), ops[1].Bounds)
	require.Less(t, ops[0].Order, ops[1].Order)
}

func TestDriver_RenderFrameTwiceReflectsViewChanges(t *testing.T) {
	view := appState{}

	root := elements.NewStack[appState]().
		Child(elements.TextFunc(func(v *appState) string {
			v.Frames++
			return fmt.Sprintf("frame %d", v.Frames)
		})).
		IntoAny()

	driver := etch.NewDriver[appState]()

	ops, err := driver.RenderFrame(root, &view, 20, 5)
	require.NoError(t, err)
	require.Equal(t, "frame 1", ops[0].Text)

	// The second frame re-runs layout, so the derived text and its measured
	// geometry are fresh, not reused from the previous generation.
	ops, err = driver.RenderFrame(root, &view, 20, 5)
	require.NoError(t, err)
	require.Equal(t, "frame 2", ops[0].Text)
	require.Equal(t, 2, view.Frames)
}

func TestDriver_ChildPaintOrderMatchesInsertion(t *testing.T) {
	view := appState{}

	root := elements.NewStack[appState]().
		Children(
			elements.NewText[appState]("A"),
			elements.NewText[appState]("B"),
			elements.NewText[appState]("C"),
		).
		IntoAny()

	driver := etch.NewDriver[appState]()
	ops, err := driver.RenderFrame(root, &view, 20, 5)
	require.NoError(t, err)

	var texts []string
	for _, op := range ops {
		texts = append(texts, op.Text)
	}
	require.Equal(t, []string{"A", "B", "C"}, texts)
}
