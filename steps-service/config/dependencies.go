package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sfn"
	billing "github.com/bookstore/fulfillment-saga/billing-service/application"
	billinginfra "github.com/bookstore/fulfillment-saga/billing-service/infrastructure"
	inventory "github.com/bookstore/fulfillment-saga/inventory-service/application"
	inventoryconfig "github.com/bookstore/fulfillment-saga/inventory-service/config"
	loyalty "github.com/bookstore/fulfillment-saga/loyalty-service/application"
	loyaltyconfig "github.com/bookstore/fulfillment-saga/loyalty-service/config"
	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	sharedinfra "github.com/bookstore/fulfillment-saga/shared/infrastructure"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/bookstore/fulfillment-saga/steps-service/handlers"
	"go.uber.org/zap"
)

const ServiceName = "saga-steps"

type Dependencies struct {
	Platform *sharedconfig.Platform

	// Use Cases
	CheckInventory  *inventory.CheckInventory
	RestoreQuantity *inventory.RestoreQuantity
	CalculateTotal  *billing.CalculateTotal
	BillCustomer    *billing.BillCustomer
	RedeemPoints    *loyalty.RedeemPoints
	RestorePoints   *loyalty.RestorePoints

	// Handlers
	Registry         *saga.Registry
	StepHTTPHandlers *handlers.StepHTTPHandlers

	// Infrastructure
	ActivityRunner *sharedinfra.SFNActivityRunner
}

func BuildDependencies(ctx context.Context, cfg *sharedconfig.Config) (*Dependencies, error) {
	platform, err := sharedconfig.BuildPlatform(ctx, cfg, telemetry.SagaStepsConfig)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{Platform: platform}

	books, err := inventoryconfig.NewBookRepository(cfg, platform.DynamoDBClient(), platform.DB)
	if err != nil {
		platform.Close()
		return nil, fmt.Errorf("failed to build book repository: %w", err)
	}

	customers, err := loyaltyconfig.NewCustomerRepository(cfg, platform.DynamoDBClient(), platform.DB)
	if err != nil {
		platform.Close()
		return nil, fmt.Errorf("failed to build customer repository: %w", err)
	}

	// Initialize use cases
	deps.CheckInventory = inventory.NewCheckInventory(books)
	deps.RestoreQuantity = inventory.NewRestoreQuantity(books)
	deps.CalculateTotal = billing.NewCalculateTotal()
	deps.BillCustomer = billing.NewBillCustomer(billinginfra.NewStubGateway(cfg.Billing.DeclineAbove))
	deps.RedeemPoints = loyalty.NewRedeemPoints(customers)
	deps.RestorePoints = loyalty.NewRestorePoints(customers)

	// Initialize handlers
	deps.Registry = handlers.NewStepHandlers(
		deps.CheckInventory,
		deps.RestoreQuantity,
		deps.CalculateTotal,
		deps.BillCustomer,
		deps.RedeemPoints,
		deps.RestorePoints,
	).Registry()
	deps.StepHTTPHandlers = handlers.NewStepHTTPHandlers(deps.Registry)

	// Initialize the activity runner for every step with an ARN
	opts := []sharedinfra.ActivityRunnerOption{sharedinfra.WithWorkerName(cfg.Activities.WorkerName)}
	for _, step := range deps.Registry.Names() {
		if arn, ok := cfg.Activities.ARN(step); ok {
			opts = append(opts, sharedinfra.WithActivityARN(step, arn))
		}
	}

	sfnClient := sfn.NewFromConfig(platform.AWS)
	deps.ActivityRunner = sharedinfra.NewSFNActivityRunner(
		sfnClient,
		sharedinfra.NewSFNTaskResumer(sfnClient),
		deps.Registry,
		platform.Logger.Named("activities"),
		opts...,
	)

	platform.Logger.Info("steps_registered", zap.Strings("steps", deps.Registry.Names()))

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	if d.Platform != nil {
		return d.Platform.Close()
	}
	return nil
}
