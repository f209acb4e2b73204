package infrastructure

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS books (
	book_id  TEXT PRIMARY KEY,
	quantity BIGINT NOT NULL,
	price    BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	user_id TEXT PRIMARY KEY,
	points  BIGINT NOT NULL DEFAULT 0
);`

// ConnectPostgres opens and pings a PostgreSQL pool
func ConnectPostgres(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

// EnsureLedgerSchema creates the ledger tables when they are missing
func EnsureLedgerSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, ledgerSchema); err != nil {
		return errors.Wrap(err, "failed to create ledger schema")
	}
	return nil
}
