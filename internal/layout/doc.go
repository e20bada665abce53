// Package layout implements the layout engine: a per-pass registry of
// layout nodes and a single-axis flex solver.
//
// Elements register nodes bottom-up during the layout pass (children first,
// so a parent can hand the engine its children's ids), the frame driver
// solves the tree once, and the paint pass queries computed geometry by id.
// Ids are only meaningful for the pass that issued them; Reset starts a new
// generation.
package layout
