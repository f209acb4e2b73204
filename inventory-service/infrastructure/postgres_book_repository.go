package infrastructure

import (
	"context"
	"database/sql"

	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresBookRepository implements BookRepository using PostgreSQL
type PostgresBookRepository struct {
	db *sqlx.DB
}

// NewPostgresBookRepository creates a new PostgresBookRepository
func NewPostgresBookRepository(db *sqlx.DB) *PostgresBookRepository {
	return &PostgresBookRepository{db: db}
}

// FindByID finds a book by ID
func (r *PostgresBookRepository) FindByID(ctx context.Context, bookID string) (*domain.Book, error) {
	query := `
		SELECT book_id, quantity, price
		FROM books
		WHERE book_id = $1`

	var book domain.Book
	err := r.db.GetContext(ctx, &book, query, bookID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find book")
	}

	return &book, nil
}

// DecrementQuantity subtracts quantity in a single conditional UPDATE
func (r *PostgresBookRepository) DecrementQuantity(ctx context.Context, bookID string, quantity int64) error {
	query := `
		UPDATE books
		SET quantity = quantity - $2
		WHERE book_id = $1 AND quantity >= $2`

	res, err := r.db.ExecContext(ctx, query, bookID, quantity)
	if err != nil {
		return errors.Wrap(err, "failed to decrement book quantity")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 1 {
		return nil
	}

	return r.missingOr(ctx, bookID, domain.ErrInsufficientQuantity)
}

// IncrementQuantity adds quantity in a single UPDATE
func (r *PostgresBookRepository) IncrementQuantity(ctx context.Context, bookID string, quantity int64) error {
	query := `
		UPDATE books
		SET quantity = quantity + $2
		WHERE book_id = $1`

	res, err := r.db.ExecContext(ctx, query, bookID, quantity)
	if err != nil {
		return errors.Wrap(err, "failed to increment book quantity")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrBookMissing
	}

	return nil
}

// missingOr tells a rejected conditional update apart from a missing row
func (r *PostgresBookRepository) missingOr(ctx context.Context, bookID string, otherwise error) error {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM books WHERE book_id = $1)`, bookID)
	if err != nil {
		return errors.Wrap(err, "failed to check book existence")
	}
	if !exists {
		return domain.ErrBookMissing
	}
	return otherwise
}
