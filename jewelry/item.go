package jewelry

// Pricer is the single capability shared by every variant in this package.
type Pricer interface {
	Name() string
	Price() float64
}

// Item is the plain jewelry value object.
//
// It is immutable after construction; copies are cheap and safe to share.
type Item struct {
	name  string
	price float64
}

// NewItem constructs an Item. No validation is performed.
func NewItem(name string, price float64) Item {
	return Item{name: name, price: price}
}

// Name implements Pricer.
func (i Item) Name() string { return i.name }

// Price implements Pricer.
func (i Item) Price() float64 { return i.price }

// Validate reports a ValidationError for a negative price.
func (i Item) Validate() error {
	return nonNegative("price", i.price)
}

// Snapshot copies the current name and price of any Pricer into an Item.
func Snapshot(p Pricer) Item {
	if p == nil {
		return Item{}
	}
	return Item{name: p.Name(), price: p.Price()}
}
