package etch

// ChildList is an ordered sequence of dynamic element handles owned by a
// parent element. Insertion order is paint order.
type ChildList[V any] struct {
	children []*AnyElement[V]
}

// Append converts each child to a dynamic handle and appends it.
func (c *ChildList[V]) Append(kids ...IntoAnyElement[V]) {
	for _, kid := range kids {
		c.children = append(c.children, kid.IntoAny())
	}
}

// All returns the handles in insertion order.
func (c *ChildList[V]) All() []*AnyElement[V] {
	return c.children
}

// Len returns the number of children.
func (c *ChildList[V]) Len() int {
	return len(c.children)
}

// ParentElement is implemented by elements that own a child list.
type ParentElement[V any] interface {
	AppendChildren(kids ...IntoAnyElement[V])
}

// Child appends one child to parent and returns parent for chaining.
func Child[V any, P ParentElement[V]](parent P, child IntoAnyElement[V]) P {
	parent.AppendChildren(child)
	return parent
}

// Children appends children to parent in order and returns parent for
// chaining.
func Children[V any, P ParentElement[V]](parent P, kids ...IntoAnyElement[V]) P {
	parent.AppendChildren(kids...)
	return parent
}
