// Package jewelry provides small, explicit building blocks for pricing jewelry items.
//
// Every type in this package satisfies a single capability, Pricer (a name plus a price).
// Variants are independent types composed around that capability rather than layered
// on top of a shared base:
//
//   - Item: the plain value object (leaf).
//   - Builder: accumulates fields and produces an Item.
//   - DiscountFactory: produces discounted Items (PercentageDiscountFactory, FixedDiscountFactory),
//     resolvable by strategy name through a FactoryRegistry.
//   - GemstoneDecorator: augments the displayed name, delegates the price.
//   - Adapt: one-shot conversion of a LegacyItem into an Item.
//   - Collection: aggregates children and sums their prices on every call.
//   - Proxy: lazily constructs its subject, caches it and logs every access.
//
// Constructors are permissive by default (negative prices, out-of-range discounts and empty
// names are accepted). Hardened checks are opt-in via Validate / BuildValidated and report
// ValidationError values you can assert in tests.
//
// Quick guidance
//
// Use Decorate when you want to stack several decorations:
//
//	ring := jewelry.NewBuilder().SetName("Normal Ring").SetPrice(100).Build()
//	fancy := jewelry.Decorate(ring, jewelry.WithGemstone("Diamond"), jewelry.WithGemstone("Ruby"))
//
// Use Print to render the "<name> - Original Price: $<price>" lines.
//
// Import
//
//	"github.com/sghaida/jewelshop/jewelry"
package jewelry
