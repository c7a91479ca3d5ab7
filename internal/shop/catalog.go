package shop

import (
	"fmt"

	"github.com/google/uuid"
)

// Catalog stores products in insertion order.
//
// Not safe for concurrent use.
type Catalog struct {
	order    []uuid.UUID
	products map[uuid.UUID]Product
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{products: map[uuid.UUID]Product{}}
}

// Add stores p. Adding an id twice replaces the product but keeps its position.
func (c *Catalog) Add(p Product) {
	if _, exists := c.products[p.ID]; !exists {
		c.order = append(c.order, p.ID)
	}
	c.products[p.ID] = p
}

// Remove deletes the product with id.
func (c *Catalog) Remove(id uuid.UUID) error {
	if _, ok := c.products[id]; !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	delete(c.products, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the product with id.
func (c *Catalog) Get(id uuid.UUID) (Product, error) {
	p, ok := c.products[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// List returns all products in insertion order.
func (c *Catalog) List() []Product {
	out := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.order) }

func (c *Catalog) adjustStock(id uuid.UUID, delta int) {
	p := c.products[id]
	p.Stock += delta
	c.products[id] = p
}
