package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SQSAPI is the subset of the SQS client used by the subscriber
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	ChangeMessageVisibility(ctx context.Context, params *sqs.ChangeMessageVisibilityInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error)
}

var _ SQSAPI = (*sqs.Client)(nil)

// SQSSubscriberAdapter owns an SQS client and the subscriber bound to one queue
type SQSSubscriberAdapter struct {
	subscriber *SQSEventSubscriber
	isRunning  bool
}

// NewSQSSubscriberAdapter creates a subscriber for queueURL using cfg
func NewSQSSubscriberAdapter(cfg aws.Config, queueURL string, handler MessageHandler, logger *zap.Logger, opts ...SQSSubscriberOption) (*SQSSubscriberAdapter, error) {
	if queueURL == "" {
		return nil, errors.New("queue URL is required")
	}

	return &SQSSubscriberAdapter{
		subscriber: NewSQSEventSubscriber(sqs.NewFromConfig(cfg), queueURL, handler, logger, opts...),
	}, nil
}

// Subscribe starts consuming the queue
func (s *SQSSubscriberAdapter) Subscribe(ctx context.Context) error {
	if s.isRunning {
		return errors.New("subscriber is already running")
	}

	if err := s.subscriber.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start SQS subscriber")
	}

	s.isRunning = true
	return nil
}

// Close stops the subscriber
func (s *SQSSubscriberAdapter) Close(ctx context.Context) error {
	if !s.isRunning {
		return nil
	}

	if err := s.subscriber.Stop(ctx); err != nil {
		return errors.Wrap(err, "failed to stop SQS subscriber")
	}

	s.isRunning = false
	return nil
}
