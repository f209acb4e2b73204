package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/bookstore/fulfillment-saga/courier-service/application"
	"github.com/bookstore/fulfillment-saga/courier-service/domain"
	"github.com/bookstore/fulfillment-saga/courier-service/handlers"
	"github.com/bookstore/fulfillment-saga/courier-service/infrastructure"
	inventory "github.com/bookstore/fulfillment-saga/inventory-service/application"
	inventoryconfig "github.com/bookstore/fulfillment-saga/inventory-service/config"
	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	"github.com/bookstore/fulfillment-saga/shared/events"
	sharedinfra "github.com/bookstore/fulfillment-saga/shared/infrastructure"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const ServiceName = "courier-worker"

type Dependencies struct {
	Platform *sharedconfig.Platform
	Redis    *redis.Client

	// Use Cases
	AssignCourier *application.AssignCourier

	// Event Handlers
	AssignmentRequestHandler *handlers.AssignmentRequestHandler

	// Infrastructure
	EventPublisher  events.Publisher
	EventSubscriber *sharedinfra.SQSSubscriberAdapter
}

func BuildDependencies(ctx context.Context, cfg *sharedconfig.Config) (*Dependencies, error) {
	platform, err := sharedconfig.BuildPlatform(ctx, cfg, telemetry.CourierWorkerConfig)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{Platform: platform}
	logger := platform.Logger

	books, err := inventoryconfig.NewBookRepository(cfg, platform.DynamoDBClient(), platform.DB)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to build book repository: %w", err)
	}

	var tracker domain.DeliveryTracker
	if cfg.Redis.Addr != "" {
		deps.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := deps.Redis.Ping(ctx).Err(); err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		tracker = infrastructure.NewRedisDeliveryTracker(deps.Redis, cfg.Redis.KeyPrefix, cfg.Redis.TTL, cfg.Redis.ClaimTTL)
	} else {
		logger.Warn("delivery_tracker_in_memory")
		tracker = infrastructure.NewMemoryDeliveryTracker()
	}

	couriers := infrastructure.NewStaticCourierDirectory(cfg.Courier.Contacts...)
	if len(cfg.Courier.Contacts) == 0 {
		logger.Warn("no_couriers_configured")
	}

	deps.EventPublisher = sharedinfra.NewEventPublisher(platform.AWS, cfg.AWS.SNSTopicArn)

	// Initialize use cases
	deps.AssignCourier = application.NewAssignCourier(
		infrastructure.NewInventoryStockLedger(inventory.NewDeductQuantity(books), inventory.NewRestoreQuantity(books)),
		couriers,
		sharedinfra.NewSFNTaskResumer(sfn.NewFromConfig(platform.AWS)),
		tracker,
		deps.EventPublisher,
		logger.Named("assign_courier"),
	)

	// Initialize handlers
	deps.AssignmentRequestHandler = handlers.NewAssignmentRequestHandler(deps.AssignCourier)

	deps.EventSubscriber, err = sharedinfra.NewSQSSubscriberAdapter(
		platform.AWS,
		cfg.AWS.SQSQueueURL,
		deps.AssignmentRequestHandler,
		logger.Named("sqs"),
		sharedinfra.WithWorkers(cfg.Courier.Workers),
		sharedinfra.WithBatchSize(cfg.Courier.BatchSize),
		sharedinfra.WithVisibilityTimeout(cfg.Courier.VisibilityTimeout),
	)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}

	logger.Info("courier_worker_ready", zap.String("queue_url", cfg.AWS.SQSQueueURL), zap.Int("couriers", len(cfg.Courier.Contacts)))

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}

	if d.Platform != nil {
		if err := d.Platform.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
