package config

import (
	"context"
	"testing"

	"github.com/bookstore/fulfillment-saga/loyalty-service/infrastructure"
	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerRepository(t *testing.T) {
	cfg := &sharedconfig.Config{Ledger: sharedconfig.Ledger{
		Driver:    sharedconfig.DriverMemory,
		UserTable: "userTable",
		Customers: []sharedconfig.SeedCustomer{{UserID: "U1", Points: 50}},
	}}

	repo, err := NewCustomerRepository(cfg, nil, nil)
	require.NoError(t, err)
	customer, err := repo.FindByID(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), customer.Points)

	cfg.Ledger.Driver = sharedconfig.DriverDynamoDB
	repo, err = NewCustomerRepository(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &infrastructure.DynamoDBCustomerRepository{}, repo)

	cfg.Ledger.Driver = "csv"
	_, err = NewCustomerRepository(cfg, nil, nil)
	assert.Error(t, err)
}
