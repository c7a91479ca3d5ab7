package shop

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog.
	ErrProductNotFound = errors.New("shop: product not found")

	// ErrInvalidProduct is returned by ProductFactory for negative prices or stock.
	ErrInvalidProduct = errors.New("shop: invalid product")

	// ErrEmptyCart is returned when an order has no lines.
	ErrEmptyCart = errors.New("shop: cart is empty")

	// ErrInvalidQuantity is returned for non-positive cart quantities.
	ErrInvalidQuantity = errors.New("shop: quantity must be positive")

	// ErrInsufficientStock is returned when a line asks for more than is available.
	ErrInsufficientStock = errors.New("shop: insufficient stock")

	// ErrPaymentDeclined is returned by payment processors that refuse a charge.
	ErrPaymentDeclined = errors.New("shop: payment declined")
)
