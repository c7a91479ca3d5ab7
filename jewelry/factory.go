package jewelry

const (
	// DefaultBasePrice is the implicit base price discounted by the factories.
	DefaultBasePrice = 100.0

	// DefaultDiscountedName is the name given to items produced by the factories.
	DefaultDiscountedName = "Discounted Jewelry Item"
)

// DiscountFactory produces discounted items.
type DiscountFactory interface {
	CreateDiscounted() Item
}

// FactoryOption tweaks a factory at construction time.
type FactoryOption func(*factoryBase)

type factoryBase struct {
	basePrice float64
	itemName  string
}

func newFactoryBase(opts []FactoryOption) factoryBase {
	fb := factoryBase{basePrice: DefaultBasePrice, itemName: DefaultDiscountedName}
	for _, opt := range opts {
		if opt != nil {
			opt(&fb)
		}
	}
	return fb
}

// WithBasePrice overrides DefaultBasePrice.
func WithBasePrice(price float64) FactoryOption {
	return func(fb *factoryBase) { fb.basePrice = price }
}

// WithItemName overrides DefaultDiscountedName.
func WithItemName(name string) FactoryOption {
	return func(fb *factoryBase) { fb.itemName = name }
}

// PercentageDiscountFactory discounts the base price by a fraction:
//
//	price = basePrice * (1 - fraction)
//
// The fraction is not bounds-checked here; a value above 1 yields a negative price.
// Call Validate to reject such inputs.
type PercentageDiscountFactory struct {
	factoryBase
	fraction float64
}

// NewPercentageDiscountFactory returns a factory applying fraction (0.2 == 20% off).
func NewPercentageDiscountFactory(fraction float64, opts ...FactoryOption) *PercentageDiscountFactory {
	return &PercentageDiscountFactory{factoryBase: newFactoryBase(opts), fraction: fraction}
}

// CreateDiscounted implements DiscountFactory.
func (f *PercentageDiscountFactory) CreateDiscounted() Item {
	return NewItem(f.itemName, f.basePrice*(1-f.fraction))
}

// Validate rejects a negative base price or a fraction outside [0, 1].
func (f *PercentageDiscountFactory) Validate() error {
	if err := nonNegative("base price", f.basePrice); err != nil {
		return err
	}
	return unitInterval("discount", f.fraction)
}

// FixedDiscountFactory subtracts a fixed amount from the base price.
type FixedDiscountFactory struct {
	factoryBase
	amount float64
}

// NewFixedDiscountFactory returns a factory taking amount off the base price.
func NewFixedDiscountFactory(amount float64, opts ...FactoryOption) *FixedDiscountFactory {
	return &FixedDiscountFactory{factoryBase: newFactoryBase(opts), amount: amount}
}

// CreateDiscounted implements DiscountFactory.
func (f *FixedDiscountFactory) CreateDiscounted() Item {
	return NewItem(f.itemName, f.basePrice-f.amount)
}

// Validate rejects a negative base price, a negative amount, or an amount above the base price.
func (f *FixedDiscountFactory) Validate() error {
	if err := nonNegative("base price", f.basePrice); err != nil {
		return err
	}
	if err := nonNegative("discount", f.amount); err != nil {
		return err
	}
	if f.amount > f.basePrice {
		return ValidationError{Field: "discount", Value: formatFloat(f.amount), Reason: "must not exceed the base price"}
	}
	return nil
}
