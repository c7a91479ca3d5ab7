package shop

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentProcessor charges an amount.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal) error
}

// CreditCardProcessor accepts any charge up to Limit.
type CreditCardProcessor struct {
	Limit decimal.Decimal
}

// ProcessPayment implements PaymentProcessor.
func (p CreditCardProcessor) ProcessPayment(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount.GreaterThan(p.Limit) {
		return fmt.Errorf("%w: credit card limit %s exceeded by charge %s", ErrPaymentDeclined, p.Limit, amount)
	}
	return nil
}

// PayPalProcessor debits a running balance.
type PayPalProcessor struct {
	balance decimal.Decimal
}

// NewPayPalProcessor returns a processor holding balance.
func NewPayPalProcessor(balance decimal.Decimal) *PayPalProcessor {
	return &PayPalProcessor{balance: balance}
}

// ProcessPayment implements PaymentProcessor.
func (p *PayPalProcessor) ProcessPayment(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount.GreaterThan(p.balance) {
		return fmt.Errorf("%w: paypal balance %s below charge %s", ErrPaymentDeclined, p.balance, amount)
	}
	p.balance = p.balance.Sub(amount)
	return nil
}

// Balance returns what is left to spend.
func (p *PayPalProcessor) Balance() decimal.Decimal { return p.balance }
