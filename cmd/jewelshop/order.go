package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sghaida/jewelshop/internal/config"
	"github.com/sghaida/jewelshop/internal/shop"
	"github.com/sghaida/jewelshop/jewelry"
)

type sampleProduct struct {
	name, description string
	price             int64
	stock             int
	quantity          int
}

// sampleProducts is the storefront inventory used by the order demo.
var sampleProducts = []sampleProduct{
	{name: "Diamond Ring", description: "Exquisite diamond ring", price: 2500, stock: 10, quantity: 1},
	{name: "Gold Necklace", description: "Elegant gold necklace", price: 1200, stock: 20, quantity: 2},
}

func (a *app) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Run a sample storefront order",
		Long: `Stocks the catalog with a diamond ring and a gold necklace, fills a cart,
charges it with the configured payment method and ships it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOrder(cmd, cmd.OutOrStdout())
		},
	}
}

func paymentFor(cfg config.Shop) shop.PaymentProcessor {
	if cfg.PaymentMethod == config.PaymentPayPal {
		return shop.NewPayPalProcessor(decimal.NewFromFloat(cfg.PayPalBalance))
	}
	return shop.CreditCardProcessor{Limit: decimal.NewFromFloat(cfg.CreditCardLimit)}
}

func (a *app) runOrder(cmd *cobra.Command, w io.Writer) error {
	s, err := shop.New(shop.NewCatalog(), paymentFor(a.cfg.Shop), shop.NewLogShipper(a.logger), a.logger)
	if err != nil {
		return err
	}

	var (
		factory  shop.ProductFactory
		cart     shop.Cart
		listings []jewelry.Pricer
	)
	for _, sp := range sampleProducts {
		p, err := factory.Create(sp.name, sp.description, decimal.NewFromInt(sp.price), sp.stock)
		if err != nil {
			return err
		}
		s.AddProduct(p)
		listings = append(listings, shop.Listing{Product: p})
		if err := cart.Add(p.ID, sp.quantity); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Catalog:")
	if err := jewelry.Print(w, listings...); err != nil {
		return err
	}

	order, err := s.ProcessOrder(cmd.Context(), shop.Customer{Name: a.cfg.Shop.Customer}, &cart)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Order %s for %s\n", order.ID, order.Customer.Name)
	for _, line := range order.Lines {
		fmt.Fprintf(w, "  %d x %s @ $%s = $%s\n", line.Quantity, line.Name, line.UnitPrice, line.Subtotal)
	}
	fmt.Fprintf(w, "Total: $%s\n", order.Total)
	return nil
}
