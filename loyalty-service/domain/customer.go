package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrCustomerMissing is returned by repositories when no record exists for the key.
	ErrCustomerMissing = errors.New("customer record does not exist")
	// ErrPointsChanged is returned when a compare-and-set finds a different balance.
	ErrPointsChanged = errors.New("points balance changed concurrently")
	// ErrOrderTotalNotAbovePoints is returned by Redeem when the order total does
	// not exceed the available points.
	ErrOrderTotalNotAbovePoints = errors.New("order total is not above the available points")
)

// Customer holds a loyalty balance
type Customer struct {
	UserID string `json:"userId" dynamodbav:"userId" db:"user_id"`
	Points int64  `json:"points" dynamodbav:"points" db:"points"`
}

// Redemption is the outcome of redeeming a full balance against an order
type Redemption struct {
	RemainingTotal int64
	PointsRedeemed int64
}

// Redeem spends the whole balance against orderTotal. Redemption only happens
// when the order total is strictly greater than the balance; otherwise the
// balance is kept and ErrOrderTotalNotAbovePoints is returned.
func (c *Customer) Redeem(orderTotal int64) (Redemption, error) {
	if orderTotal <= c.Points {
		return Redemption{}, ErrOrderTotalNotAbovePoints
	}
	return Redemption{
		RemainingTotal: orderTotal - c.Points,
		PointsRedeemed: c.Points,
	}, nil
}

// CustomerRepository is the ledger store for loyalty balances
type CustomerRepository interface {
	// FindByID returns nil, nil when the customer does not exist.
	FindByID(ctx context.Context, userID string) (*Customer, error)
	// CompareAndSetPoints writes points only if the stored balance equals expected.
	// Returns ErrCustomerMissing or ErrPointsChanged without mutating.
	CompareAndSetPoints(ctx context.Context, userID string, expected, points int64) error
	// SetPoints writes an absolute balance. Returns ErrCustomerMissing if the record is gone.
	SetPoints(ctx context.Context, userID string, points int64) error
}
