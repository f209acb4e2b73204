package application

import (
	"context"

	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// CheckInventoryCommand is the step input for the availability check
type CheckInventoryCommand struct {
	BookID   string `json:"bookId"`
	Quantity int64  `json:"quantity"`
}

// CheckInventory use case verifies that a book can cover an order
type CheckInventory struct {
	bookRepository domain.BookRepository
}

// NewCheckInventory creates a new CheckInventory use case
func NewCheckInventory(bookRepository domain.BookRepository) *CheckInventory {
	return &CheckInventory{bookRepository: bookRepository}
}

// Execute returns the book snapshot when the order leaves stock behind.
// Any lookup fault is reported as NotFound with the fault attached.
func (uc *CheckInventory) Execute(ctx context.Context, cmd *CheckInventoryCommand) (book *domain.Book, err error) {
	ctx, finish := telemetry.TrackStep(ctx, saga.StepCheckInventory,
		attribute.String("book_id", cmd.BookID),
		attribute.Int64("quantity", cmd.Quantity),
	)
	defer func() { finish(err) }()

	if err := validateQuantityCommand(cmd.BookID, cmd.Quantity); err != nil {
		return nil, err
	}

	book, err = uc.bookRepository.FindByID(ctx, cmd.BookID)
	if err != nil {
		return nil, saga.WrapError(err, saga.KindNotFound, "book %s not found", cmd.BookID)
	}

	if book == nil {
		return nil, saga.NewError(saga.KindNotFound, "book %s not found", cmd.BookID)
	}

	if !book.IsAvailable(cmd.Quantity) {
		return nil, saga.NewError(saga.KindOutOfStock, "the book is out of stock")
	}

	return book, nil
}

func validateQuantityCommand(bookID string, quantity int64) error {
	if bookID == "" {
		return saga.NewError(saga.KindInvalidInput, "book ID is required")
	}

	if quantity < 0 {
		return saga.NewError(saga.KindInvalidInput, "quantity must not be negative")
	}

	return nil
}
