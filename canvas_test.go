package etch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCanvas_OpsSortedByPaintOrder(t *testing.T) {
	c := NewCanvas()
	c.DrawText(NewRect(0, 2, 5, 1), 2, "late")
	c.FillRect(NewRect(0, 0, 10, 10), 0)
	c.DrawText(NewRect(0, 1, 5, 1), 1, "mid")

	want := []PaintOp{
		{Bounds: NewRect(0, 0, 10, 10), Order: 0},
		{Bounds: NewRect(0, 1, 5, 1), Order: 1, Text: "mid"},
		{Bounds: NewRect(0, 2, 5, 1), Order: 2, Text: "late"},
	}
	if diff := cmp.Diff(want, c.Ops()); diff != "" {
		t.Errorf("Ops() mismatch (-want +got):\n%s", diff)
	}
}

func TestCanvas_SortIsStableWithinOrder(t *testing.T) {
	c := NewCanvas()
	c.DrawText(NewRect(0, 0, 1, 1), 5, "first")
	c.DrawText(NewRect(1, 0, 1, 1), 5, "second")

	ops := c.Ops()
	require.Equal(t, "first", ops[0].Text)
	require.Equal(t, "second", ops[1].Text)
}

func TestCanvas_Reset(t *testing.T) {
	c := NewCanvas()
	c.FillRect(NewRect(0, 0, 1, 1), 0)
	require.Equal(t, 1, c.Len())

	c.Reset()
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Ops())
}
