package jewelry

import (
	"fmt"
	"sort"
)

const (
	// StrategyPercentage resolves to PercentageDiscountFactory.
	StrategyPercentage = "percentage"

	// StrategyFixed resolves to FixedDiscountFactory.
	StrategyFixed = "fixed"
)

// DiscountParams carries the inputs a FactoryFunc needs.
//
// Amount is a fraction for "percentage" and an absolute value for "fixed".
type DiscountParams struct {
	Amount    float64
	BasePrice float64
	ItemName  string
}

func (p DiscountParams) options() []FactoryOption {
	var opts []FactoryOption
	if p.BasePrice != 0 {
		opts = append(opts, WithBasePrice(p.BasePrice))
	}
	if p.ItemName != "" {
		opts = append(opts, WithItemName(p.ItemName))
	}
	return opts
}

// FactoryFunc constructs a DiscountFactory from params.
type FactoryFunc func(DiscountParams) DiscountFactory

// FactoryRegistry maps strategy names to factory constructors.
//
// It is intentionally:
// - explicit (nothing registers itself)
// - side effect free on lookup
//
// Expected usage:
//
//	f, err := reg.Build("percentage", jewelry.DiscountParams{Amount: 0.2})
type FactoryRegistry struct {
	items map[string]FactoryFunc
}

// NewFactoryRegistry returns an empty registry.
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{items: map[string]FactoryFunc{}}
}

// DefaultFactories returns a registry with the built-in strategies.
func DefaultFactories() *FactoryRegistry {
	return NewFactoryRegistry().
		Provide(StrategyPercentage, func(p DiscountParams) DiscountFactory {
			return NewPercentageDiscountFactory(p.Amount, p.options()...)
		}).
		Provide(StrategyFixed, func(p DiscountParams) DiscountFactory {
			return NewFixedDiscountFactory(p.Amount, p.options()...)
		})
}

// Provide stores fn under name and returns the registry for chaining.
// A nil fn removes the name.
func (r *FactoryRegistry) Provide(name string, fn FactoryFunc) *FactoryRegistry {
	if fn == nil {
		delete(r.items, name)
		return r
	}
	r.items[name] = fn
	return r
}

// Resolve returns the constructor for name or an UnknownStrategyError.
func (r *FactoryRegistry) Resolve(name string) (FactoryFunc, error) {
	if r == nil {
		return nil, UnknownStrategyError{Name: name}
	}
	fn, ok := r.items[name]
	if !ok {
		return nil, UnknownStrategyError{Name: name}
	}
	return fn, nil
}

// Build resolves name and invokes its constructor, converting panics into ErrRegistryPanic.
func (r *FactoryRegistry) Build(name string, params DiscountParams) (f DiscountFactory, err error) {
	fn, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			f = nil
			err = fmt.Errorf("%w: %q: %v", ErrRegistryPanic, name, rec)
		}
	}()

	return fn(params), nil
}

// Names lists the registered strategies in lexical order.
func (r *FactoryRegistry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
