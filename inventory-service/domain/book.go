package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrBookMissing is returned by repositories when no record exists for the key.
	ErrBookMissing = errors.New("book record does not exist")
	// ErrInsufficientQuantity is returned when a conditional decrement is rejected
	// because the stored quantity is lower than the requested one.
	ErrInsufficientQuantity = errors.New("stored quantity is lower than requested")
)

// Book is a stock-keeping record. Price is in minor currency units.
type Book struct {
	BookID   string `json:"bookId" dynamodbav:"bookId" db:"book_id"`
	Quantity int64  `json:"quantity" dynamodbav:"quantity" db:"quantity"`
	Price    int64  `json:"price" dynamodbav:"price" db:"price"`
}

// IsAvailable reports whether an order of the given quantity leaves stock behind.
// An order that would exactly exhaust the stock is not available.
func (b *Book) IsAvailable(quantity int64) bool {
	return b.Quantity-quantity > 0
}

// BookRepository is the ledger store for books. Quantity changes are atomic on
// the store side; implementations never read-modify-write.
type BookRepository interface {
	// FindByID returns nil, nil when the book does not exist.
	FindByID(ctx context.Context, bookID string) (*Book, error)
	// DecrementQuantity subtracts quantity only if the stored quantity covers it.
	// Returns ErrBookMissing or ErrInsufficientQuantity without mutating.
	DecrementQuantity(ctx context.Context, bookID string, quantity int64) error
	// IncrementQuantity adds quantity to whatever is stored. Returns ErrBookMissing
	// if the record is gone.
	IncrementQuantity(ctx context.Context, bookID string, quantity int64) error
}
