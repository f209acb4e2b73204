package config

import (
	"context"
	"testing"

	"github.com/bookstore/fulfillment-saga/inventory-service/infrastructure"
	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookRepository(t *testing.T) {
	cfg := &sharedconfig.Config{Ledger: sharedconfig.Ledger{
		Driver:    sharedconfig.DriverMemory,
		BookTable: "bookTable",
		Books:     []sharedconfig.SeedBook{{BookID: "B1", Quantity: 3, Price: 20}},
	}}

	repo, err := NewBookRepository(cfg, nil, nil)
	require.NoError(t, err)
	book, err := repo.FindByID(context.Background(), "B1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), book.Quantity)

	cfg.Ledger.Driver = sharedconfig.DriverDynamoDB
	repo, err = NewBookRepository(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &infrastructure.DynamoDBBookRepository{}, repo)

	cfg.Ledger.Driver = sharedconfig.DriverPostgres
	repo, err = NewBookRepository(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &infrastructure.PostgresBookRepository{}, repo)

	cfg.Ledger.Driver = "csv"
	_, err = NewBookRepository(cfg, nil, nil)
	assert.Error(t, err)
}
