// Package showcase is the composition root of the pattern walkthrough.
//
// It builds one instance of every jewelry variant from configuration, in a fixed
// order, and prints them. Wiring stays explicit: the logger and the factory registry
// are passed in, never looked up.
package showcase

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sghaida/jewelshop/internal/config"
	"github.com/sghaida/jewelshop/jewelry"
)

// Build constructs, in display order: the built ring, the discounted item, the ring with
// the primary gemstone, the discounted item with the secondary gemstone, the adapted legacy
// item, a collection of the first four, and the proxy ring.
func Build(cfg config.Showcase, registry *jewelry.FactoryRegistry, logger *zap.Logger) ([]jewelry.Pricer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = jewelry.DefaultFactories()
	}

	ring := jewelry.NewBuilder().
		SetName(cfg.Ring.Name).
		SetPrice(cfg.Ring.Price).
		Build()

	factory, err := registry.Build(cfg.Discount.Strategy, jewelry.DiscountParams{
		Amount:    cfg.Discount.Amount,
		BasePrice: cfg.Discount.BasePrice,
		ItemName:  cfg.Discount.ItemName,
	})
	if err != nil {
		return nil, fmt.Errorf("showcase: discount factory: %w", err)
	}
	discounted := factory.CreateDiscounted()

	primary := jewelry.Decorate(ring, jewelry.WithGemstone(cfg.PrimaryGemstone))
	secondary := jewelry.Decorate(discounted, jewelry.WithGemstone(cfg.SecondaryGemstone))

	legacy := jewelry.Adapt(jewelry.NewLegacyItem(cfg.Legacy.Name, cfg.Legacy.Price))

	collection := jewelry.NewCollection(cfg.CollectionName).
		Add(ring, discounted, primary, secondary)

	proxy := jewelry.NewProxy(cfg.Proxy.Name, cfg.Proxy.Price, jewelry.WithLogger(logger))

	logger.Debug("showcase built",
		zap.String("strategy", cfg.Discount.Strategy),
		zap.Int("collection_size", collection.Len()))

	return []jewelry.Pricer{ring, discounted, primary, secondary, legacy, collection, proxy}, nil
}

// Run builds the showcase with the default registry and prints one line per item to w.
func Run(w io.Writer, cfg config.Showcase, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("showcase starting")

	items, err := Build(cfg, jewelry.DefaultFactories(), logger)
	if err != nil {
		return err
	}
	if err := jewelry.Print(w, items...); err != nil {
		return fmt.Errorf("showcase: %w", err)
	}

	logger.Info("showcase finished", zap.Int("items", len(items)))
	return nil
}
