package jewelry

// LegacyItem is the shape used by the old inventory system.
type LegacyItem struct {
	Description string
	Cost        float64
}

// NewLegacyItem is a convenience constructor.
func NewLegacyItem(description string, cost float64) LegacyItem {
	return LegacyItem{Description: description, Cost: cost}
}

// Adapt converts a LegacyItem into an Item.
//
// The result is a snapshot: later changes to legacy are not reflected.
func Adapt(legacy LegacyItem) Item {
	return NewItem(legacy.Description, legacy.Cost)
}

// AdaptAll converts every legacy item, preserving order.
func AdaptAll(legacy []LegacyItem) []Item {
	out := make([]Item, 0, len(legacy))
	for _, l := range legacy {
		out = append(out, Adapt(l))
	}
	return out
}
