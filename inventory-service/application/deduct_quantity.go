package application

import (
	"context"

	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/pkg/errors"
)

// DeductQuantityCommand removes ordered copies from stock
type DeductQuantityCommand struct {
	BookID   string `json:"bookId"`
	Quantity int64  `json:"quantity"`
}

// DeductQuantity use case decrements stock for a confirmed order. It must only
// run after CheckInventory succeeded for the same saga.
type DeductQuantity struct {
	bookRepository domain.BookRepository
}

// NewDeductQuantity creates a new DeductQuantity use case
func NewDeductQuantity(bookRepository domain.BookRepository) *DeductQuantity {
	return &DeductQuantity{bookRepository: bookRepository}
}

// Execute decrements the stored quantity atomically. A decrement the store
// rejects leaves the record untouched.
func (uc *DeductQuantity) Execute(ctx context.Context, cmd *DeductQuantityCommand) error {
	if err := validateQuantityCommand(cmd.BookID, cmd.Quantity); err != nil {
		return err
	}

	err := uc.bookRepository.DecrementQuantity(ctx, cmd.BookID, cmd.Quantity)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrBookMissing):
		return saga.WrapError(err, saga.KindNotFound, "book %s not found", cmd.BookID)
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return saga.WrapError(err, saga.KindOutOfStock, "cannot deduct %d copies of book %s", cmd.Quantity, cmd.BookID)
	default:
		return errors.Wrap(err, "failed to deduct quantity")
	}
}
