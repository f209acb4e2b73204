package application

import (
	"context"
	"fmt"

	"github.com/bookstore/fulfillment-saga/courier-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/events"
	"github.com/bookstore/fulfillment-saga/shared/logging"
	"github.com/bookstore/fulfillment-saga/shared/models"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	noCouriersCause = "No couriers are available"
	eventProducer   = "courier-worker"
)

// AssignCourierCommand carries one raw queue message
type AssignCourierCommand struct {
	MessageID string
	Body      []byte
}

// AssignCourier deducts the ordered copies, picks a courier and resumes the
// waiting saga. Every request with a readable token gets exactly one resume.
type AssignCourier struct {
	ledger    domain.StockLedger
	couriers  domain.CourierDirectory
	resumer   saga.Resumer
	tracker   domain.DeliveryTracker
	publisher events.Publisher
	logger    *zap.Logger
}

// NewAssignCourier creates a new AssignCourier use case
func NewAssignCourier(
	ledger domain.StockLedger,
	couriers domain.CourierDirectory,
	resumer saga.Resumer,
	tracker domain.DeliveryTracker,
	publisher events.Publisher,
	logger *zap.Logger,
) *AssignCourier {
	return &AssignCourier{
		ledger:    ledger,
		couriers:  couriers,
		resumer:   resumer,
		tracker:   tracker,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute processes one message. A returned error leaves the message on the
// queue; a nil error means the message may be deleted.
func (uc *AssignCourier) Execute(ctx context.Context, cmd *AssignCourierCommand) error {
	ctx, span := telemetry.StartSpan(ctx, "AssignCourier")
	defer span.End()

	logger := logging.WithTrace(ctx, uc.logger).With(zap.String("message_id", cmd.MessageID))

	req, err := domain.DecodeAssignmentRequest(cmd.Body)
	if err != nil {
		logger.Error("assignment_request_undecodable", zap.Error(err))
		return errors.Wrap(err, "cannot resume without a token")
	}

	logger = logger.With(zap.String("book_id", req.Input.BookID), zap.Int64("quantity", req.Input.Quantity))

	claimed, err := uc.tracker.Claim(ctx, req.Token)
	if err != nil {
		return errors.Wrap(err, "failed to claim delivery")
	}

	if !claimed {
		// a concurrent copy of this message is being processed; retry after it settles
		logger.Info("assignment_in_progress")
		return domain.ErrAssignmentInProgress
	}
	defer uc.release(ctx, logger, req.Token)

	stage, err := uc.tracker.Stage(ctx, req.Token)
	if err != nil {
		return errors.Wrap(err, "failed to read delivery stage")
	}

	if stage == domain.StageResumed {
		logger.Info("assignment_already_resumed")
		return nil
	}

	if err := req.Validate(); err != nil {
		return uc.fail(ctx, logger, req, err)
	}

	courier, err := uc.couriers.Assign(ctx, req.Input.BookID)
	if err != nil {
		if stage == domain.StageInventoryDeducted {
			// inventory is already gone; failing now would strand it
			return errors.Wrap(err, "failed to assign courier after deduct")
		}
		return uc.fail(ctx, logger, req, err)
	}

	if stage == domain.StageInventoryDeducted {
		logger.Info("assignment_deduct_skipped")
	} else {
		if err := uc.ledger.Deduct(ctx, req.Input.BookID, req.Input.Quantity); err != nil {
			return uc.fail(ctx, logger, req, err)
		}

		if err := uc.tracker.Advance(ctx, req.Token, domain.StageInventoryDeducted); err != nil {
			// an unrecorded deduct would be repeated on redelivery, so undo it first
			return uc.undoDeduct(ctx, logger, req, err)
		}
	}

	result := &domain.AssignmentResult{
		Courier:      courier.Contact,
		AssignmentID: models.GenerateUUID().String(),
	}

	if err := uc.resumer.ResumeSuccess(ctx, req.Token, result); err != nil {
		if !errors.Is(err, saga.ErrTokenConsumed) {
			return errors.Wrap(err, "failed to resume saga")
		}
		logger.Warn("assignment_token_consumed", zap.Error(err))
	}

	uc.markResumed(ctx, logger, req.Token)
	telemetry.RecordCounter(ctx, "courier_assignments_total", "Courier assignment outcomes", 1, attribute.String("outcome", "assigned"))
	logger.Info("courier_assigned", zap.String("courier", result.Courier), zap.String("assignment_id", result.AssignmentID))

	event := events.NewEvent(req.Input.BookID, events.CourierAssignedTopic, &domain.AssignmentEvent{
		BookID:       req.Input.BookID,
		Quantity:     req.Input.Quantity,
		Courier:      result.Courier,
		AssignmentID: result.AssignmentID,
	}).WithCorrelationID(result.AssignmentID)
	uc.publish(ctx, logger, event)

	return nil
}

func (uc *AssignCourier) fail(ctx context.Context, logger *zap.Logger, req *domain.AssignmentRequest, cause error) error {
	logger.Warn("courier_assignment_failed", zap.Error(cause))

	detail := fmt.Sprintf("%s: %v", noCouriersCause, cause)
	if err := uc.resumer.ResumeFailure(ctx, req.Token, saga.KindNoCourierAvailable.String(), detail); err != nil {
		if !errors.Is(err, saga.ErrTokenConsumed) {
			return errors.Wrap(err, "failed to resume saga with failure")
		}
		logger.Warn("assignment_token_consumed", zap.Error(err))
	}

	uc.markResumed(ctx, logger, req.Token)
	telemetry.RecordCounter(ctx, "courier_assignments_total", "Courier assignment outcomes", 1, attribute.String("outcome", "failed"))

	event := events.NewEvent(req.Input.BookID, events.CourierAssignmentFailedTopic, &domain.AssignmentEvent{
		BookID:   req.Input.BookID,
		Quantity: req.Input.Quantity,
		Reason:   cause.Error(),
	})
	uc.publish(ctx, logger, event)

	return nil
}

func (uc *AssignCourier) undoDeduct(ctx context.Context, logger *zap.Logger, req *domain.AssignmentRequest, cause error) error {
	logger.Error("delivery_stage_not_recorded", zap.String("stage", string(domain.StageInventoryDeducted)), zap.Error(cause))

	if err := uc.ledger.Restore(context.WithoutCancel(ctx), req.Input.BookID, req.Input.Quantity); err != nil {
		logger.Error("deducted_inventory_not_restored", zap.Error(err))
		return errors.Wrapf(cause, "failed to record inventory deduction (restore failed: %v)", err)
	}

	return errors.Wrap(cause, "failed to record inventory deduction")
}

func (uc *AssignCourier) release(ctx context.Context, logger *zap.Logger, token string) {
	if err := uc.tracker.Release(context.WithoutCancel(ctx), token); err != nil {
		logger.Warn("delivery_claim_not_released", zap.Error(err))
	}
}

func (uc *AssignCourier) markResumed(ctx context.Context, logger *zap.Logger, token string) {
	if err := uc.tracker.Advance(ctx, token, domain.StageResumed); err != nil {
		logger.Error("delivery_stage_not_recorded", zap.String("stage", string(domain.StageResumed)), zap.Error(err))
	}
}

func (uc *AssignCourier) publish(ctx context.Context, logger *zap.Logger, event *events.Event) {
	event.WithMetadata("producer", eventProducer)
	if err := uc.publisher.Publish(ctx, event); err != nil {
		logger.Error("fulfillment_event_not_published", zap.String("topic", event.Topic.String()), zap.Error(err))
	}
}
