package jewelry

// GemstoneDecorator appends a gemstone to the wrapped name and delegates the price.
//
// The wrapped Pricer is held by value: wrapping an Item stores a copy of it, so the
// decorator never depends on the lifetime of the caller's variable.
type GemstoneDecorator struct {
	inner    Pricer
	gemstone string
}

// NewGemstoneDecorator wraps p. A nil p behaves like an empty Item.
func NewGemstoneDecorator(p Pricer, gemstone string) GemstoneDecorator {
	if p == nil {
		p = Item{}
	}
	return GemstoneDecorator{inner: p, gemstone: gemstone}
}

// Name implements Pricer.
func (d GemstoneDecorator) Name() string {
	return d.inner.Name() + " with " + d.gemstone
}

// Price implements Pricer; the price is never altered.
func (d GemstoneDecorator) Price() float64 { return d.inner.Price() }

// Gemstone returns the decoration label.
func (d GemstoneDecorator) Gemstone() string { return d.gemstone }

// Unwrap returns the decorated Pricer.
func (d GemstoneDecorator) Unwrap() Pricer { return d.inner }

// Decoration wraps a Pricer in another Pricer.
//
// Decorations are applied via Decorate.
type Decoration func(Pricer) Pricer

// WithGemstone builds a Decoration producing a GemstoneDecorator.
func WithGemstone(gemstone string) Decoration {
	return func(p Pricer) Pricer { return NewGemstoneDecorator(p, gemstone) }
}

// Decorate applies decorations in order, so the last one is outermost.
//
// Nil decorations are skipped.
func Decorate(p Pricer, decorations ...Decoration) Pricer {
	for _, dec := range decorations {
		if dec == nil {
			continue
		}
		p = dec(p)
	}
	return p
}
