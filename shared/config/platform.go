package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bookstore/fulfillment-saga/shared/infrastructure"
	"github.com/bookstore/fulfillment-saga/shared/logging"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Platform holds the clients every process shares: logger, telemetry, AWS
// config and the ledger store connection for the configured driver.
type Platform struct {
	Logger   *zap.Logger
	AWS      aws.Config
	DynamoDB *dynamodb.Client
	DB       *sqlx.DB

	TelemetryShutdown func()
}

// BuildPlatform wires the shared clients
func BuildPlatform(ctx context.Context, cfg *Config, telConfig telemetry.Config) (*Platform, error) {
	logger, err := logging.NewLogger(cfg.ServiceName, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	p := &Platform{Logger: logger}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTelemetry(ctx, telConfig.WithOTLPEndpoint(cfg.Telemetry.OTLPEndpoint))
		if err != nil {
			// Continue without telemetry rather than failing
			logger.Warn("telemetry_disabled", zap.Error(err))
		} else {
			p.TelemetryShutdown = shutdown
		}
	}

	p.AWS, err = infrastructure.LoadAWSConfig(ctx, infrastructure.AWSOptions{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.Endpoint,
	})
	if err != nil {
		p.Close()
		return nil, err
	}

	switch cfg.Ledger.Driver {
	case DriverDynamoDB:
		p.DynamoDB = dynamodb.NewFromConfig(p.AWS)
	case DriverPostgres:
		p.DB, err = infrastructure.ConnectPostgres(ctx, cfg.GetDatabaseURL())
		if err != nil {
			p.Close()
			return nil, err
		}
		if err := infrastructure.EnsureLedgerSchema(ctx, p.DB); err != nil {
			p.Close()
			return nil, err
		}
	}

	logger.Info("platform_ready", zap.String("ledger_driver", cfg.Ledger.Driver))

	return p, nil
}

// DynamoDBClient returns the DynamoDB client as the ledger interface, or nil
// when the driver does not use it
func (p *Platform) DynamoDBClient() infrastructure.DynamoDBAPI {
	if p.DynamoDB == nil {
		return nil
	}
	return p.DynamoDB
}

// Close releases the shared clients
func (p *Platform) Close() error {
	var errs []error

	if p.DB != nil {
		if err := p.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if p.TelemetryShutdown != nil {
		p.TelemetryShutdown()
	}

	if p.Logger != nil {
		_ = p.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing platform: %v", errs)
	}

	return nil
}
