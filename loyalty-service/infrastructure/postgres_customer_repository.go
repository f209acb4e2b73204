package infrastructure

import (
	"context"
	"database/sql"

	"github.com/bookstore/fulfillment-saga/loyalty-service/domain"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL
type PostgresCustomerRepository struct {
	db *sqlx.DB
}

// NewPostgresCustomerRepository creates a new PostgresCustomerRepository
func NewPostgresCustomerRepository(db *sqlx.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

// FindByID finds a customer by ID
func (r *PostgresCustomerRepository) FindByID(ctx context.Context, userID string) (*domain.Customer, error) {
	query := `
		SELECT user_id, points
		FROM customers
		WHERE user_id = $1`

	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find customer")
	}

	return &customer, nil
}

// CompareAndSetPoints updates points only while the stored balance equals expected
func (r *PostgresCustomerRepository) CompareAndSetPoints(ctx context.Context, userID string, expected, points int64) error {
	query := `
		UPDATE customers
		SET points = :points
		WHERE user_id = :user_id AND points = :expected`

	res, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"user_id":  userID,
		"points":   points,
		"expected": expected,
	})
	if err != nil {
		return errors.Wrap(err, "failed to compare-and-set points")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 1 {
		return nil
	}

	var exists bool
	err = r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM customers WHERE user_id = $1)`, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check customer existence")
	}
	if !exists {
		return domain.ErrCustomerMissing
	}
	return domain.ErrPointsChanged
}

// SetPoints writes an absolute balance
func (r *PostgresCustomerRepository) SetPoints(ctx context.Context, userID string, points int64) error {
	query := `
		UPDATE customers
		SET points = $2
		WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID, points)
	if err != nil {
		return errors.Wrap(err, "failed to set points")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrCustomerMissing
	}

	return nil
}
