package config

import (
	"fmt"

	"github.com/bookstore/fulfillment-saga/loyalty-service/domain"
	"github.com/bookstore/fulfillment-saga/loyalty-service/infrastructure"
	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	sharedinfra "github.com/bookstore/fulfillment-saga/shared/infrastructure"
	"github.com/jmoiron/sqlx"
)

// NewCustomerRepository returns the customer store selected by the ledger driver
func NewCustomerRepository(cfg *sharedconfig.Config, ddb sharedinfra.DynamoDBAPI, db *sqlx.DB) (domain.CustomerRepository, error) {
	switch cfg.Ledger.Driver {
	case sharedconfig.DriverDynamoDB:
		return infrastructure.NewDynamoDBCustomerRepository(ddb, cfg.Ledger.UserTable), nil
	case sharedconfig.DriverPostgres:
		return infrastructure.NewPostgresCustomerRepository(db), nil
	case sharedconfig.DriverMemory:
		customers := make([]domain.Customer, 0, len(cfg.Ledger.Customers))
		for _, seed := range cfg.Ledger.Customers {
			customers = append(customers, domain.Customer{UserID: seed.UserID, Points: seed.Points})
		}
		return infrastructure.NewMemoryCustomerRepository(customers...), nil
	default:
		return nil, fmt.Errorf("unknown ledger driver %q", cfg.Ledger.Driver)
	}
}
