package application

import (
	"context"
	"time"

	"github.com/bookstore/fulfillment-saga/billing-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// BillCustomerCommand is the step input: who pays and the amount left after redemption
type BillCustomerCommand struct {
	UserID string `json:"userId"`
	Total  int64  `json:"total"`
}

// BillCustomerResponse carries the provider confirmation
type BillCustomerResponse struct {
	ConfirmationID string    `json:"confirmationId"`
	Amount         int64     `json:"amount"`
	ChargedAt      time.Time `json:"chargedAt"`
}

// BillCustomer use case charges the final amount through the payment gateway
type BillCustomer struct {
	gateway domain.Gateway
}

// NewBillCustomer creates a new BillCustomer use case
func NewBillCustomer(gateway domain.Gateway) *BillCustomer {
	return &BillCustomer{gateway: gateway}
}

// Execute charges the customer. Provider failures surface as PaymentDeclined or
// GatewayUnavailable so the orchestrator can retry them.
func (uc *BillCustomer) Execute(ctx context.Context, cmd *BillCustomerCommand) (resp *BillCustomerResponse, err error) {
	ctx, finish := telemetry.TrackStep(ctx, saga.StepBillCustomer,
		attribute.String("user_id", cmd.UserID),
		attribute.Int64("amount", cmd.Total),
	)
	defer func() { finish(err) }()

	if cmd.Total < 0 {
		return nil, saga.NewError(saga.KindInvalidInput, "amount must not be negative")
	}

	confirmation, err := uc.gateway.Charge(ctx, cmd.UserID, cmd.Total)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentDeclined) {
			return nil, saga.WrapError(err, saga.KindPaymentDeclined, "charge of %d declined", cmd.Total)
		}
		return nil, saga.WrapError(err, saga.KindGatewayUnavailable, "charge of %d not completed", cmd.Total)
	}

	return &BillCustomerResponse{
		ConfirmationID: confirmation.ID,
		Amount:         confirmation.Amount,
		ChargedAt:      confirmation.ChargedAt,
	}, nil
}
