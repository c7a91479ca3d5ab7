package shop

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// PriceFloat returns the price as float64 so Product satisfies jewelry.Pricer.
func (p Product) PriceFloat() float64 { return p.Price.InexactFloat64() }

// ProductFactory creates products with fresh identifiers.
type ProductFactory struct {
	// NewID defaults to uuid.New; tests may pin it.
	NewID func() uuid.UUID
}

// Create validates the inputs and returns a new Product.
func (f ProductFactory) Create(name, description string, price decimal.Decimal, stock int) (Product, error) {
	if price.IsNegative() {
		return Product{}, fmt.Errorf("%w: price %s is negative", ErrInvalidProduct, price)
	}
	if stock < 0 {
		return Product{}, fmt.Errorf("%w: stock %d is negative", ErrInvalidProduct, stock)
	}
	newID := f.NewID
	if newID == nil {
		newID = uuid.New
	}
	return Product{
		ID:          newID(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// Listing adapts a Product to jewelry.Pricer.
type Listing struct{ Product Product }

// Name implements jewelry.Pricer.
func (l Listing) Name() string { return l.Product.Name }

// Price implements jewelry.Pricer.
func (l Listing) Price() float64 { return l.Product.PriceFloat() }
