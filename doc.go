// Package jewelshop demonstrates small, explicit building blocks for pricing jewelry.
//
// The repository is organised like this:
//
//   - jewelry: the library (Item, Builder, discount factories and their registry,
//     gemstone decorators, legacy adapter, collections, proxy, display helpers)
//   - internal/config: viper-backed configuration with YAML defaults
//   - internal/showcase: composition root that builds and prints one of each building block
//   - internal/shop: in-memory storefront (catalog, cart, payment, shipping, orders)
//   - cmd/jewelshop: cobra CLI (showcase, order, config init)
//   - examples/patterns: runnable library-only walkthrough
//
// Wiring is explicit everywhere: loggers and registries are passed in, never looked up
// from globals.
package jewelshop
