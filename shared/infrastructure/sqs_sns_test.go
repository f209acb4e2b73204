package infrastructure

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/bookstore/fulfillment-saga/shared/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSQS struct {
	deleted    []*sqs.DeleteMessageInput
	visibility []*sqs.ChangeMessageVisibilityInput
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{}, nil
}

func (f *fakeSQS) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, params)
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) ChangeMessageVisibility(ctx context.Context, params *sqs.ChangeMessageVisibilityInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error) {
	f.visibility = append(f.visibility, params)
	return &sqs.ChangeMessageVisibilityOutput{}, nil
}

func newReceived(body, receiveCount string) sqstypes.Message {
	return sqstypes.Message{
		MessageId:     aws.String("m-1"),
		ReceiptHandle: aws.String("rh-1"),
		Body:          aws.String(body),
		Attributes:    map[string]string{approximateReceiveCount: receiveCount},
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"source": {DataType: aws.String("String"), StringValue: aws.String("orders")},
		},
	}
}

func TestToQueueMessage(t *testing.T) {
	msg := toQueueMessage(newReceived(`{"token":"t"}`, "4"))

	assert.Equal(t, "m-1", msg.ID)
	assert.Equal(t, []byte(`{"token":"t"}`), msg.Body)
	assert.Equal(t, 4, msg.ReceiveCount)
	assert.Equal(t, map[string]string{"source": "orders"}, msg.Attributes)
}

func TestSQSEventSubscriber_SettlesHandledMessages(t *testing.T) {
	tests := []struct {
		name               string
		handlerErr         error
		receiveCount       string
		expectedDeleted    int
		expectedVisibility int32
	}{
		{
			name:            "success deletes the message",
			receiveCount:    "1",
			expectedDeleted: 1,
		},
		{
			name:               "failure extends visibility",
			handlerErr:         errors.New("try again"),
			receiveCount:       "1",
			expectedVisibility: 30,
		},
		{
			name:               "repeated failure backs off",
			handlerErr:         errors.New("try again"),
			receiveCount:       "7",
			expectedVisibility: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSQS{}
			var seen *QueueMessage
			handler := NewMessageHandlerFunc("test", func(ctx context.Context, message *QueueMessage) error {
				seen = message
				return tt.handlerErr
			})
			subscriber := NewSQSEventSubscriber(client, "queue-url", handler, zap.NewNop())
			subscriber.outboundMessages = make(chan *sqsMessage, 1)

			received := newReceived("{}", tt.receiveCount)
			subscriber.handle(context.Background(), &sqsMessage{Message: received, Queued: toQueueMessage(received)})
			require.NoError(t, subscriber.clean(context.Background(), <-subscriber.outboundMessages))

			require.NotNil(t, seen)
			assert.Len(t, client.deleted, tt.expectedDeleted)
			if tt.expectedVisibility > 0 {
				require.Len(t, client.visibility, 1)
				assert.Equal(t, tt.expectedVisibility, client.visibility[0].VisibilityTimeout)
			} else {
				assert.Empty(t, client.visibility)
			}
		})
	}
}

func TestSQSEventSubscriber_BackoffIsCapped(t *testing.T) {
	subscriber := NewSQSEventSubscriber(&fakeSQS{}, "queue-url", NewMessageHandlerFunc("test", nil), zap.NewNop())

	assert.Equal(t, int32(900), subscriber.backoffVisibilityTimeout(1000))
}

type fakeSNS struct {
	inputs []*sns.PublishBatchInput
	failed []snstypes.BatchResultErrorEntry
}

func (f *fakeSNS) PublishBatch(ctx context.Context, params *sns.PublishBatchInput, optFns ...func(*sns.Options)) (*sns.PublishBatchOutput, error) {
	f.inputs = append(f.inputs, params)
	return &sns.PublishBatchOutput{Failed: f.failed}, nil
}

func TestSNSEventPublisher_Publish(t *testing.T) {
	client := &fakeSNS{}
	publisher := NewSNSEventPublisher(client, "arn:topic")

	evts := make([]*events.Event, 0, 12)
	for i := 0; i < 12; i++ {
		evts = append(evts, events.NewEvent("B1", events.CourierAssignedTopic, map[string]int{"n": i}).WithMetadata("source", "test"))
	}

	require.NoError(t, publisher.Publish(context.Background(), evts...))
	require.Len(t, client.inputs, 2)

	entry := client.inputs[0].PublishBatchRequestEntries[0]
	assert.Equal(t, "courier.assigned", aws.ToString(entry.MessageAttributes["topic"].StringValue))
	assert.Equal(t, "test", aws.ToString(entry.MessageAttributes["source"].StringValue))

	var message snsMessage
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Message)), &message))
	assert.Equal(t, "B1", message.AggregateID)
	assert.Equal(t, "courier.assigned", message.Topic)
}

func TestSNSEventPublisher_ReportsRejectedEntries(t *testing.T) {
	event := events.NewEvent("B1", events.CourierAssignedTopic, nil)
	client := &fakeSNS{failed: []snstypes.BatchResultErrorEntry{{Id: aws.String(event.ID.String())}}}

	err := NewSNSEventPublisher(client, "arn:topic").Publish(context.Background(), event)

	assert.EqualError(t, err, "1 of 1 events rejected by SNS")
}

func TestNewEventPublisher_WithoutTopicDrops(t *testing.T) {
	publisher := NewEventPublisher(aws.Config{}, "")

	assert.IsType(t, events.NopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), events.NewEvent("B1", events.CourierAssignedTopic, nil)))
}
