package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Customer places orders.
type Customer struct {
	Name string
}

// OrderLine is a priced cart line.
type OrderLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Order is a paid, shipped purchase.
type Order struct {
	ID        uuid.UUID
	Customer  Customer
	Lines     []OrderLine
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Browser lists what is for sale.
type Browser interface {
	Browse() []Product
}

// Viewer shows a single product.
type Viewer interface {
	View(id uuid.UUID) (Product, error)
}

// Purchaser turns a cart into an order.
type Purchaser interface {
	ProcessOrder(ctx context.Context, customer Customer, cart *Cart) (Order, error)
}

// Shop wires a catalog to payment and shipping.
type Shop struct {
	catalog  *Catalog
	payment  PaymentProcessor
	shipping ShippingService
	logger   *zap.Logger
	now      func() time.Time
	newID    func() uuid.UUID
}

var (
	_ Browser   = (*Shop)(nil)
	_ Viewer    = (*Shop)(nil)
	_ Purchaser = (*Shop)(nil)
)

// New builds a Shop. All collaborators are required except logger.
func New(catalog *Catalog, payment PaymentProcessor, shipping ShippingService, logger *zap.Logger) (*Shop, error) {
	if catalog == nil {
		return nil, fmt.Errorf("shop: missing Catalog wiring")
	}
	if payment == nil {
		return nil, fmt.Errorf("shop: missing PaymentProcessor wiring")
	}
	if shipping == nil {
		return nil, fmt.Errorf("shop: missing ShippingService wiring")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shop{
		catalog:  catalog,
		payment:  payment,
		shipping: shipping,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.New,
	}, nil
}

// AddProduct puts p up for sale.
func (s *Shop) AddProduct(p Product) {
	s.catalog.Add(p)
	s.logger.Debug("product added", zap.String("product", p.Name), zap.String("id", p.ID.String()))
}

// Browse implements Browser.
func (s *Shop) Browse() []Product { return s.catalog.List() }

// View implements Viewer.
func (s *Shop) View(id uuid.UUID) (Product, error) { return s.catalog.Get(id) }

// Total prices cart against the catalog without touching stock.
func (s *Shop) Total(cart *Cart) (decimal.Decimal, error) {
	_, total, err := s.price(cart)
	return total, err
}

// ProcessOrder implements Purchaser.
//
// Stock is only decremented, and the order only shipped, after the payment succeeds.
func (s *Shop) ProcessOrder(ctx context.Context, customer Customer, cart *Cart) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}

	lines, total, err := s.price(cart)
	if err != nil {
		return Order{}, err
	}

	if err := s.payment.ProcessPayment(ctx, total); err != nil {
		s.logger.Warn("payment failed", zap.String("customer", customer.Name), zap.Error(err))
		return Order{}, fmt.Errorf("shop: charge %s: %w", total.StringFixed(2), err)
	}

	for _, line := range lines {
		s.catalog.adjustStock(line.ProductID, -line.Quantity)
	}

	order := Order{
		ID:        s.newID(),
		Customer:  customer,
		Lines:     lines,
		Total:     total,
		CreatedAt: s.now().UTC(),
	}
	if err := s.shipping.Ship(ctx, order); err != nil {
		return order, fmt.Errorf("shop: ship order %s: %w", order.ID, err)
	}

	s.logger.Info("order processed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer", customer.Name),
		zap.Int("lines", len(lines)),
		zap.String("total", total.StringFixed(2)))
	return order, nil
}

// price merges lines for the same product before checking stock, so a cart built
// with repeated lines cannot request more than is available.
func (s *Shop) price(cart *Cart) ([]OrderLine, decimal.Decimal, error) {
	if cart.IsEmpty() {
		return nil, decimal.Zero, ErrEmptyCart
	}

	merged := make([]CartLine, 0, len(cart.Lines))
	index := make(map[uuid.UUID]int, len(cart.Lines))
	for _, cl := range cart.Lines {
		if cl.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: got %d", ErrInvalidQuantity, cl.Quantity)
		}
		if i, ok := index[cl.ProductID]; ok {
			merged[i].Quantity += cl.Quantity
			continue
		}
		index[cl.ProductID] = len(merged)
		merged = append(merged, cl)
	}

	total := decimal.Zero
	lines := make([]OrderLine, 0, len(merged))
	for _, cl := range merged {
		p, err := s.catalog.Get(cl.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if p.Stock < cl.Quantity {
			return nil, decimal.Zero, fmt.Errorf("%w: %q has %d, requested %d", ErrInsufficientStock, p.Name, p.Stock, cl.Quantity)
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(cl.Quantity)))
		lines = append(lines, OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  cl.Quantity,
			UnitPrice: p.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	return lines, total, nil
}
