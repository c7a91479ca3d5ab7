package shop

import (
	"context"

	"go.uber.org/zap"
)

// ShippingService dispatches paid orders.
type ShippingService interface {
	Ship(ctx context.Context, order Order) error
}

// LogShipper records shipments in memory and logs each one.
type LogShipper struct {
	logger    *zap.Logger
	shipments []Order
}

// NewLogShipper returns a shipper logging to logger (nil means no-op).
func NewLogShipper(logger *zap.Logger) *LogShipper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogShipper{logger: logger}
}

// Ship implements ShippingService.
func (s *LogShipper) Ship(ctx context.Context, order Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.shipments = append(s.shipments, order)
	s.logger.Info("order shipped",
		zap.String("order_id", order.ID.String()),
		zap.String("customer", order.Customer.Name),
		zap.String("total", order.Total.StringFixed(2)))
	return nil
}

// Shipments returns the orders shipped so far.
func (s *LogShipper) Shipments() []Order {
	out := make([]Order, len(s.shipments))
	copy(out, s.shipments)
	return out
}
