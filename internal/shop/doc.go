// Package shop implements a small in-memory jewelry storefront: a product catalog,
// carts, pluggable payment processors and a shipping service, tied together by Shop.
//
// Customer-facing capabilities are split into narrow interfaces (Browser, Viewer,
// Purchaser) so callers depend only on what they use.
package shop
