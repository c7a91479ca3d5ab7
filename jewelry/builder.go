package jewelry

// Builder accumulates Item fields.
//
// Unset fields fall back to their zero values: Build never fails.
// Use BuildValidated when an empty name or a negative price should be rejected.
type Builder struct {
	name  string
	price float64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// SetName stores the name and returns the builder for chaining.
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetPrice stores the price and returns the builder for chaining.
func (b *Builder) SetPrice(price float64) *Builder {
	b.price = price
	return b
}

// Build produces an Item from whatever was set so far.
func (b *Builder) Build() Item {
	return NewItem(b.name, b.price)
}

// BuildValidated produces an Item or a ValidationError.
func (b *Builder) BuildValidated() (Item, error) {
	if b.name == "" {
		return Item{}, ValidationError{Field: "name", Value: b.name, Reason: "must not be empty"}
	}
	item := b.Build()
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}
