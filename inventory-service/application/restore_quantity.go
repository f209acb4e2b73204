package application

import (
	"context"

	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// RestoreQuantityCommand is the compensation input for a deducted order
type RestoreQuantityCommand struct {
	BookID   string `json:"bookId"`
	Quantity int64  `json:"quantity"`
}

// RestoreQuantityResponse is handed back to the orchestrator
type RestoreQuantityResponse struct {
	Message string `json:"message"`
}

// RestoreQuantity use case puts deducted copies back into stock
type RestoreQuantity struct {
	bookRepository domain.BookRepository
}

// NewRestoreQuantity creates a new RestoreQuantity use case
func NewRestoreQuantity(bookRepository domain.BookRepository) *RestoreQuantity {
	return &RestoreQuantity{bookRepository: bookRepository}
}

// Execute increments the stored quantity regardless of its current value.
func (uc *RestoreQuantity) Execute(ctx context.Context, cmd *RestoreQuantityCommand) (resp *RestoreQuantityResponse, err error) {
	ctx, finish := telemetry.TrackStep(ctx, saga.StepRestoreQuantity,
		attribute.String("book_id", cmd.BookID),
		attribute.Int64("quantity", cmd.Quantity),
	)
	defer func() { finish(err) }()

	if err := validateQuantityCommand(cmd.BookID, cmd.Quantity); err != nil {
		return nil, err
	}

	if err := uc.bookRepository.IncrementQuantity(ctx, cmd.BookID, cmd.Quantity); err != nil {
		if errors.Is(err, domain.ErrBookMissing) {
			return nil, saga.WrapError(err, saga.KindNotFound, "book %s not found", cmd.BookID)
		}
		return nil, errors.Wrap(err, "failed to restore quantity")
	}

	return &RestoreQuantityResponse{Message: "Quantity restored"}, nil
}
