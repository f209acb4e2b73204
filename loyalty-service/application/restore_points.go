package application

import (
	"context"

	"github.com/bookstore/fulfillment-saga/loyalty-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// RestorePointsCommand is the compensation input. Points is the balance that was
// redeemed and is absent when nothing was redeemed.
type RestorePointsCommand struct {
	UserID string `json:"userId"`
	Points *int64 `json:"points,omitempty"`
}

// RestorePointsResponse reports whether a write happened
type RestorePointsResponse struct {
	Restored bool  `json:"restored"`
	Points   int64 `json:"points"`
}

// RestorePoints use case writes a redeemed balance back
type RestorePoints struct {
	customerRepository domain.CustomerRepository
}

// NewRestorePoints creates a new RestorePoints use case
func NewRestorePoints(customerRepository domain.CustomerRepository) *RestorePoints {
	return &RestorePoints{customerRepository: customerRepository}
}

// Execute sets the balance to the supplied value. Absent or zero points is a no-op.
func (uc *RestorePoints) Execute(ctx context.Context, cmd *RestorePointsCommand) (resp *RestorePointsResponse, err error) {
	ctx, finish := telemetry.TrackStep(ctx, saga.StepRestorePoints,
		attribute.String("user_id", cmd.UserID),
	)
	defer func() { finish(err) }()

	if cmd.Points == nil || *cmd.Points == 0 {
		return &RestorePointsResponse{Restored: false}, nil
	}

	if cmd.UserID == "" {
		return nil, saga.NewError(saga.KindInvalidInput, "user ID is required")
	}

	if *cmd.Points < 0 {
		return nil, saga.NewError(saga.KindInvalidInput, "points must not be negative")
	}

	if err := uc.customerRepository.SetPoints(ctx, cmd.UserID, *cmd.Points); err != nil {
		if errors.Is(err, domain.ErrCustomerMissing) {
			return nil, saga.WrapError(err, saga.KindUserNotFound, "user %s not found", cmd.UserID)
		}
		return nil, errors.Wrap(err, "failed to restore points")
	}

	return &RestorePointsResponse{Restored: true, Points: *cmd.Points}, nil
}
