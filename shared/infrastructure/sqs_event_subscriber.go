package infrastructure

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const approximateReceiveCount = "ApproximateReceiveCount"

// QueueMessage is a raw message delivered from a queue
type QueueMessage struct {
	ID           string
	Body         []byte
	ReceiveCount int
	Attributes   map[string]string
}

type sqsMessage struct {
	Message types.Message
	Queued  *QueueMessage
	Err     error
}

// MessageHandler processes queue messages. Returning an error leaves the
// message on the queue for redelivery.
type MessageHandler interface {
	HandlerID() string
	Handle(ctx context.Context, message *QueueMessage) error
}

// MessageHandlerFunc creates a handler from a function
type MessageHandlerFunc struct {
	id string
	fn func(ctx context.Context, message *QueueMessage) error
}

func NewMessageHandlerFunc(id string, fn func(ctx context.Context, message *QueueMessage) error) *MessageHandlerFunc {
	return &MessageHandlerFunc{
		id: id,
		fn: fn,
	}
}

func (h *MessageHandlerFunc) HandlerID() string {
	return h.id
}

func (h *MessageHandlerFunc) Handle(ctx context.Context, message *QueueMessage) error {
	return h.fn(ctx, message)
}

// SQSEventSubscriber consumes an SQS queue with a reader, worker and cleaner pipeline
type SQSEventSubscriber struct {
	mux              sync.RWMutex
	wg               sync.WaitGroup
	inboundMessages  chan *sqsMessage
	outboundMessages chan *sqsMessage
	cancel           context.CancelFunc
	running          atomic.Bool
	options          *sqsSubscriberOptions

	client   SQSAPI
	queueURL string
	handler  MessageHandler
	logger   *zap.Logger
}

type sqsSubscriberOptions struct {
	workers                        int32
	readers                        int32
	cleaners                       int32
	maxNumberOfMessages            int32
	waitTimeSeconds                int32
	visibilityTimeout              int32
	sleepTimeAfterEmptyReceive     time.Duration
	sleepTimeAfterError            time.Duration
	ack                            bool
	extendVisibilityTimeoutOnError bool
	receiveCountRange              int32
	visibilityTimeoutOffset        int32
	maxVisibilityTimeout           int32
}

type SQSSubscriberOption func(*sqsSubscriberOptions)

func WithWorkers(workers int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.workers = workers
	}
}

func WithReaders(readers int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.readers = readers
	}
}

func WithVisibilityTimeout(timeout int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.visibilityTimeout = timeout
	}
}

// WithBatchSize sets how many messages a single receive may return
func WithBatchSize(size int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.maxNumberOfMessages = size
	}
}

func WithWaitTimeSeconds(seconds int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.waitTimeSeconds = seconds
	}
}

func WithSleepTimeAfterEmptyReceive(d time.Duration) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.sleepTimeAfterEmptyReceive = d
	}
}

// NewSQSEventSubscriber creates a new SQS subscriber
func NewSQSEventSubscriber(
	client SQSAPI,
	queueURL string,
	handler MessageHandler,
	logger *zap.Logger,
	opts ...SQSSubscriberOption,
) *SQSEventSubscriber {
	options := &sqsSubscriberOptions{
		workers:                        4,
		readers:                        1,
		cleaners:                       2,
		maxNumberOfMessages:            1,
		waitTimeSeconds:                15,
		visibilityTimeout:              30,
		sleepTimeAfterEmptyReceive:     time.Second,
		sleepTimeAfterError:            20 * time.Second,
		ack:                            true,
		extendVisibilityTimeoutOnError: true,
		receiveCountRange:              3,
		visibilityTimeoutOffset:        30,
		maxVisibilityTimeout:           900, // 15 minutes
	}

	for _, opt := range opts {
		opt(options)
	}

	return &SQSEventSubscriber{
		client:   client,
		queueURL: queueURL,
		handler:  handler,
		logger:   logger.With(zap.String("handler", handler.HandlerID())),
		options:  options,
	}
}

// Start starts the SQS subscriber
func (s *SQSEventSubscriber) Start(ctx context.Context) error {
	if s.running.Load() {
		return nil
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.inboundMessages = make(chan *sqsMessage, 10)
	s.outboundMessages = make(chan *sqsMessage, 10)
	s.cancel = cancel

	s.spawn(ctx, s.options.workers, s.startWorker)
	s.spawn(ctx, s.options.readers, s.startReader)
	s.spawn(ctx, s.options.cleaners, s.startCleaner)

	s.running.Store(true)

	return nil
}

func (s *SQSEventSubscriber) spawn(ctx context.Context, n int32, fn func(context.Context)) {
	for i := 0; i < int(n); i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			fn(ctx)
		}()
	}
}

// Stop cancels the pipeline and waits for in-flight messages to settle
func (s *SQSEventSubscriber) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	s.mux.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = nil
	s.mux.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "timed out stopping SQS subscriber")
	}

	s.running.Store(false)

	return nil
}

func (s *SQSEventSubscriber) startWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.inboundMessages:
			s.handle(ctx, message)
		}
	}
}

func (s *SQSEventSubscriber) startReader(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			if err := s.read(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("sqs_receive_failed", zap.Error(err))
				sleep(ctx, s.options.sleepTimeAfterError)
			}
		}
	}
}

func (s *SQSEventSubscriber) startCleaner(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.outboundMessages:
			// settle with a fresh context so a shutdown does not strand the ack
			if err := s.clean(context.WithoutCancel(ctx), message); err != nil {
				s.logger.Error("sqs_settle_failed", zap.String("message_id", message.Queued.ID), zap.Error(err))
			}
		}
	}
}

func (s *SQSEventSubscriber) read(ctx context.Context) error {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueURL),
		MaxNumberOfMessages: s.options.maxNumberOfMessages,
		WaitTimeSeconds:     s.options.waitTimeSeconds,
		VisibilityTimeout:   s.options.visibilityTimeout,
		MessageSystemAttributeNames: []types.MessageSystemAttributeName{
			types.MessageSystemAttributeNameApproximateReceiveCount,
			types.MessageSystemAttributeNameApproximateFirstReceiveTimestamp,
		},
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to receive message from SQS")
	}

	if len(output.Messages) == 0 {
		sleep(ctx, s.options.sleepTimeAfterEmptyReceive)
		return nil
	}

	for _, message := range output.Messages {
		select {
		case s.inboundMessages <- &sqsMessage{Message: message, Queued: toQueueMessage(message)}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func toQueueMessage(message types.Message) *QueueMessage {
	receiveCount, err := strconv.Atoi(message.Attributes[approximateReceiveCount])
	if err != nil {
		receiveCount = 1
	}

	attrs := make(map[string]string, len(message.MessageAttributes))
	for k, v := range message.MessageAttributes {
		if v.StringValue != nil {
			attrs[k] = *v.StringValue
		}
	}

	return &QueueMessage{
		ID:           aws.ToString(message.MessageId),
		Body:         []byte(aws.ToString(message.Body)),
		ReceiveCount: receiveCount,
		Attributes:   attrs,
	}
}

func (s *SQSEventSubscriber) handle(ctx context.Context, message *sqsMessage) {
	s.mux.RLock()
	handler := s.handler
	s.mux.RUnlock()

	if handler == nil {
		message.Err = errors.New("no handler configured")
	} else {
		message.Err = handler.Handle(ctx, message.Queued)
	}

	select {
	case s.outboundMessages <- message:
	case <-ctx.Done():
	}
}

func (s *SQSEventSubscriber) clean(ctx context.Context, message *sqsMessage) error {
	if message.Err != nil {
		s.logger.Warn("sqs_message_left_for_redelivery",
			zap.String("message_id", message.Queued.ID),
			zap.Int("receive_count", message.Queued.ReceiveCount),
			zap.Error(message.Err),
		)

		if s.options.extendVisibilityTimeoutOnError {
			_, err := s.client.ChangeMessageVisibility(ctx, &sqs.ChangeMessageVisibilityInput{
				QueueUrl:          &s.queueURL,
				ReceiptHandle:     message.Message.ReceiptHandle,
				VisibilityTimeout: s.backoffVisibilityTimeout(message.Queued.ReceiveCount),
			})
			if err != nil {
				return errors.Wrap(err, "failed to extend visibility timeout")
			}
		}
		return nil
	}

	if s.options.ack {
		_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      &s.queueURL,
			ReceiptHandle: message.Message.ReceiptHandle,
		})
		if err != nil {
			return errors.Wrap(err, "failed to delete message from SQS")
		}
	}

	return nil
}

func (s *SQSEventSubscriber) backoffVisibilityTimeout(receiveCount int) int32 {
	visibilityTimeout := s.options.visibilityTimeout
	visibilityTimeout += (int32(receiveCount) / s.options.receiveCountRange) * s.options.visibilityTimeoutOffset

	if visibilityTimeout > s.options.maxVisibilityTimeout {
		visibilityTimeout = s.options.maxVisibilityTimeout
	}
	return visibilityTimeout
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
