package jewelry

import (
	"errors"
	"strconv"
)

var (
	// ErrValidation is the sentinel every ValidationError matches via errors.Is.
	ErrValidation = errors.New("jewelry: validation failed")

	// ErrRegistryPanic is returned if a factory constructor panics while being built.
	ErrRegistryPanic = errors.New("jewelry: panic while building discount factory")
)

// ValidationError reports a rejected field value.
//
// It is only produced by the opt-in checks (Validate, BuildValidated); the plain
// constructors stay permissive.
type ValidationError struct {
	// Field names the rejected input, e.g. "price" or "discount".
	Field string

	// Value is the rejected input rendered as text.
	Value string

	// Reason is a short human description of the rule that failed.
	Reason string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	// Example: jewelry: invalid price "-1": must not be negative
	return "jewelry: invalid " + e.Field + " " + strconv.Quote(e.Value) + ": " + e.Reason
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnknownStrategyError is returned when a discount strategy name is not registered.
type UnknownStrategyError struct{ Name string }

// Error implements the error interface.
func (e UnknownStrategyError) Error() string {
	// Example: jewelry: unknown discount strategy "bogus"
	return "jewelry: unknown discount strategy " + strconv.Quote(e.Name)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return ValidationError{Field: field, Value: formatFloat(v), Reason: "must not be negative"}
	}
	return nil
}

func unitInterval(field string, v float64) error {
	if v < 0 || v > 1 {
		return ValidationError{Field: field, Value: formatFloat(v), Reason: "must be within [0, 1]"}
	}
	return nil
}
