// Package elements provides the reference element set: a text leaf, a flex
// stack container, and a sized box. They double as the worked examples for
// implementing the etch element contract.
package elements
