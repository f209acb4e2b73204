package application

import (
	"context"

	"github.com/bookstore/fulfillment-saga/billing-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// PricedBook is the part of the inventory snapshot pricing needs
type PricedBook struct {
	BookID string `json:"bookId,omitempty"`
	Price  int64  `json:"price"`
}

// CalculateTotalCommand is the step input: the checked book and the ordered quantity
type CalculateTotalCommand struct {
	Book     PricedBook `json:"book"`
	Quantity int64      `json:"quantity"`
}

// CalculateTotalResponse carries the order total
type CalculateTotalResponse struct {
	Total int64 `json:"total"`
}

// CalculateTotal use case prices an order. It has no side effects.
type CalculateTotal struct{}

// NewCalculateTotal creates a new CalculateTotal use case
func NewCalculateTotal() *CalculateTotal {
	return &CalculateTotal{}
}

// Execute computes price * quantity
func (uc *CalculateTotal) Execute(ctx context.Context, cmd *CalculateTotalCommand) (resp *CalculateTotalResponse, err error) {
	_, finish := telemetry.TrackStep(ctx, saga.StepCalculateTotal,
		attribute.Int64("unit_price", cmd.Book.Price),
		attribute.Int64("quantity", cmd.Quantity),
	)
	defer func() { finish(err) }()

	total, err := domain.ComputeTotal(cmd.Book.Price, cmd.Quantity)
	if err != nil {
		return nil, saga.WrapError(err, saga.KindInvalidInput, "cannot price order")
	}

	return &CalculateTotalResponse{Total: total}, nil
}
