package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrNoCouriers = errors.New("no couriers configured")

	// ErrAssignmentInProgress means another worker holds the claim on the token
	ErrAssignmentInProgress = errors.New("assignment already in progress")
)

// Stage records how far a request identified by its token has progressed
type Stage string

const (
	StageReceived          Stage = "Received"
	StageInventoryDeducted Stage = "InventoryDeducted"
	StageResumed           Stage = "Resumed"
)

// DeliveryTracker remembers the stage reached per token across redeliveries.
// Unknown tokens report StageReceived. Claim grants one worker at a time the
// right to move a token forward; it reports false while another holds it.
type DeliveryTracker interface {
	Claim(ctx context.Context, token string) (bool, error)
	Release(ctx context.Context, token string) error
	Stage(ctx context.Context, token string) (Stage, error)
	Advance(ctx context.Context, token string, stage Stage) error
}

// StockLedger deducts ordered copies from inventory and puts them back when a
// deduct cannot be recorded
type StockLedger interface {
	Deduct(ctx context.Context, bookID string, quantity int64) error
	Restore(ctx context.Context, bookID string, quantity int64) error
}

// CourierDirectory picks a courier for a request
type CourierDirectory interface {
	Assign(ctx context.Context, bookID string) (*Courier, error)
}
