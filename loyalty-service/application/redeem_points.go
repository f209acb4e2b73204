package application

import (
	"context"

	"github.com/bookstore/fulfillment-saga/loyalty-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// maxRedeemAttempts bounds the compare-and-set retries against a balance that
// keeps changing under concurrent orders.
const maxRedeemAttempts = 3

// RedeemPointsCommand is the step input for the loyalty redemption
type RedeemPointsCommand struct {
	UserID string `json:"userId"`
	Total  int64  `json:"total"`
}

// RedeemPointsResponse carries the amount left to bill and the points spent
type RedeemPointsResponse struct {
	RemainingTotal int64 `json:"total"`
	PointsRedeemed int64 `json:"points"`
}

// RedeemPoints use case applies a customer's whole loyalty balance to an order
type RedeemPoints struct {
	customerRepository domain.CustomerRepository
}

// NewRedeemPoints creates a new RedeemPoints use case
func NewRedeemPoints(customerRepository domain.CustomerRepository) *RedeemPoints {
	return &RedeemPoints{customerRepository: customerRepository}
}

// Execute redeems or rejects. On success the stored balance is zero.
func (uc *RedeemPoints) Execute(ctx context.Context, cmd *RedeemPointsCommand) (resp *RedeemPointsResponse, err error) {
	ctx, finish := telemetry.TrackStep(ctx, saga.StepRedeemPoints,
		attribute.String("user_id", cmd.UserID),
		attribute.Int64("order_total", cmd.Total),
	)
	defer func() { finish(err) }()

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxRedeemAttempts; attempt++ {
		customer, err := uc.customerRepository.FindByID(ctx, cmd.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find customer")
		}

		if customer == nil {
			return nil, saga.NewError(saga.KindUserNotFound, "user %s not found", cmd.UserID)
		}

		redemption, err := customer.Redeem(cmd.Total)
		if err != nil {
			return nil, saga.WrapError(err, saga.KindInsufficientOrderTotal,
				"order total %d does not exceed %d points", cmd.Total, customer.Points)
		}

		err = uc.customerRepository.CompareAndSetPoints(ctx, cmd.UserID, customer.Points, 0)
		switch {
		case err == nil:
			return &RedeemPointsResponse{
				RemainingTotal: redemption.RemainingTotal,
				PointsRedeemed: redemption.PointsRedeemed,
			}, nil
		case errors.Is(err, domain.ErrPointsChanged):
			continue
		case errors.Is(err, domain.ErrCustomerMissing):
			return nil, saga.WrapError(err, saga.KindUserNotFound, "user %s not found", cmd.UserID)
		default:
			return nil, errors.Wrap(err, "failed to redeem points")
		}
	}

	return nil, errors.Wrapf(domain.ErrPointsChanged, "gave up redeeming points after %d attempts", maxRedeemAttempts)
}

func (uc *RedeemPoints) validateCommand(cmd *RedeemPointsCommand) error {
	if cmd.UserID == "" {
		return saga.NewError(saga.KindInvalidInput, "user ID is required")
	}

	if cmd.Total < 0 {
		return saga.NewError(saga.KindInvalidInput, "order total must not be negative")
	}

	return nil
}
