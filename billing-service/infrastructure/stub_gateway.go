package infrastructure

import (
	"context"
	"time"

	"github.com/bookstore/fulfillment-saga/billing-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/models"
	"github.com/pkg/errors"
)

// StubGateway approves every charge up to an optional limit. It stands in for the
// payment provider until one is integrated.
type StubGateway struct {
	declineAbove int64
	now          func() time.Time
}

// NewStubGateway creates a stub gateway. A positive declineAbove makes charges
// above that amount fail with ErrPaymentDeclined.
func NewStubGateway(declineAbove int64) *StubGateway {
	return &StubGateway{
		declineAbove: declineAbove,
		now:          time.Now,
	}
}

func (g *StubGateway) Charge(ctx context.Context, userID string, amount int64) (*domain.Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(domain.ErrGatewayUnavailable, err.Error())
	}

	if g.declineAbove > 0 && amount > g.declineAbove {
		return nil, errors.Wrapf(domain.ErrPaymentDeclined, "amount %d above limit %d", amount, g.declineAbove)
	}

	return &domain.Confirmation{
		ID:        models.GenerateUUID().String(),
		Amount:    amount,
		ChargedAt: g.now().UTC(),
	}, nil
}
