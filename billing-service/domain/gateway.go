package domain

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrPaymentDeclined is returned by a gateway that refused the charge.
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrGatewayUnavailable is returned when the payment provider cannot be reached.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// Confirmation is the provider's receipt for a successful charge
type Confirmation struct {
	ID        string
	Amount    int64
	ChargedAt time.Time
}

// Gateway charges customers through an external payment provider
type Gateway interface {
	Charge(ctx context.Context, userID string, amount int64) (*Confirmation, error)
}
