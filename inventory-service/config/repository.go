package config

import (
	"fmt"

	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
	"github.com/bookstore/fulfillment-saga/inventory-service/infrastructure"
	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	sharedinfra "github.com/bookstore/fulfillment-saga/shared/infrastructure"
	"github.com/jmoiron/sqlx"
)

// NewBookRepository returns the book store selected by the ledger driver.
// Only the client the driver needs has to be non-nil.
func NewBookRepository(cfg *sharedconfig.Config, ddb sharedinfra.DynamoDBAPI, db *sqlx.DB) (domain.BookRepository, error) {
	switch cfg.Ledger.Driver {
	case sharedconfig.DriverDynamoDB:
		return infrastructure.NewDynamoDBBookRepository(ddb, cfg.Ledger.BookTable), nil
	case sharedconfig.DriverPostgres:
		return infrastructure.NewPostgresBookRepository(db), nil
	case sharedconfig.DriverMemory:
		books := make([]domain.Book, 0, len(cfg.Ledger.Books))
		for _, seed := range cfg.Ledger.Books {
			books = append(books, domain.Book{BookID: seed.BookID, Quantity: seed.Quantity, Price: seed.Price})
		}
		return infrastructure.NewMemoryBookRepository(books...), nil
	default:
		return nil, fmt.Errorf("unknown ledger driver %q", cfg.Ledger.Driver)
	}
}
