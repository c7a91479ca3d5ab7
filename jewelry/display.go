package jewelry

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price rounded to cents without trailing zeros: 100 -> "100", 12.5 -> "12.5".
//
// Rounding hides binary float noise such as 100*(1-0.2) == 80.00000000000001.
// Non-finite prices render as "+Inf", "-Inf" or "NaN".
func FormatPrice(price float64) string {
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return strconv.FormatFloat(price, 'g', -1, 64)
	}
	return decimal.NewFromFloat(price).Round(2).String()
}

// Line renders one display line for p.
func Line(p Pricer) string {
	return p.Name() + " - Original Price: $" + FormatPrice(p.Price())
}

// Print writes one Line per item in order. Nil items are skipped.
func Print(w io.Writer, items ...Pricer) error {
	for _, item := range items {
		if item == nil {
			continue
		}
		if _, err := fmt.Fprintln(w, Line(item)); err != nil {
			return fmt.Errorf("jewelry: print %q: %w", item.Name(), err)
		}
	}
	return nil
}
