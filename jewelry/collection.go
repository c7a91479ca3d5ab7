package jewelry

// Collection aggregates children and prices itself as their sum.
//
// The name is fixed at construction and does not reflect the children.
// The price is recomputed on every call, never cached. Children cannot be removed.
type Collection struct {
	name     string
	children []Pricer
}

// NewCollection returns an empty collection.
func NewCollection(name string) *Collection {
	return &Collection{name: name}
}

// Add appends children in order and returns the collection for chaining. Nil children are ignored.
func (c *Collection) Add(children ...Pricer) *Collection {
	for _, child := range children {
		if child == nil {
			continue
		}
		c.children = append(c.children, child)
	}
	return c
}

// Name implements Pricer.
func (c *Collection) Name() string { return c.name }

// Price implements Pricer.
func (c *Collection) Price() float64 {
	total := 0.0
	for _, child := range c.children {
		total += child.Price()
	}
	return total
}

// Len returns the number of direct children.
func (c *Collection) Len() int { return len(c.children) }

// Children returns a copy of the direct children.
func (c *Collection) Children() []Pricer {
	out := make([]Pricer, len(c.children))
	copy(out, c.children)
	return out
}
