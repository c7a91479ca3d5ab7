package shop

import (
	"fmt"

	"github.com/google/uuid"
)

// CartLine is a product and how many of it.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// Cart collects lines before checkout. Lines for the same product are merged.
type Cart struct {
	Lines []CartLine
}

// Add appends quantity of productID, merging with an existing line.
func (c *Cart) Add(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += quantity
			return nil
		}
	}
	c.Lines = append(c.Lines, CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return c == nil || len(c.Lines) == 0 }
