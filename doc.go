// Package etch is the element core of a retained-mode UI toolkit: typed,
// view-bound elements, type-erased into uniform handles and driven through a
// two-phase layout-then-paint protocol with per-element geometry caching.
//
// Users import this single package for the complete public API: the element
// contract, dynamic handles, layout results, contexts, and the frame driver.
// Concrete elements live in the elements subpackage.
package etch
