package infrastructure

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/bookstore/fulfillment-saga/shared/events"
)

// NewEventPublisher returns an SNS publisher for topicArn, or a publisher that
// drops events when no topic is configured
func NewEventPublisher(cfg aws.Config, topicArn string) events.Publisher {
	if topicArn == "" {
		return events.NopPublisher{}
	}
	return NewSNSEventPublisher(sns.NewFromConfig(cfg), topicArn)
}
