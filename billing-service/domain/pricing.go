package domain

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidPricingInput is returned for negative or overflowing price inputs.
var ErrInvalidPricingInput = errors.New("invalid pricing input")

// ComputeTotal returns unitPrice * quantity.
func ComputeTotal(unitPrice, quantity int64) (int64, error) {
	if unitPrice < 0 {
		return 0, errors.Wrap(ErrInvalidPricingInput, "unit price must not be negative")
	}
	if quantity < 0 {
		return 0, errors.Wrap(ErrInvalidPricingInput, "quantity must not be negative")
	}
	if quantity != 0 && unitPrice > math.MaxInt64/quantity {
		return 0, errors.Wrap(ErrInvalidPricingInput, "order total overflows")
	}
	return unitPrice * quantity, nil
}
