package infrastructure

import (
	"context"

	"github.com/bookstore/fulfillment-saga/courier-service/domain"
	inventory "github.com/bookstore/fulfillment-saga/inventory-service/application"
)

var _ domain.StockLedger = (*InventoryStockLedger)(nil)

// InventoryStockLedger deducts and restores through the inventory service's use
// cases so the worker shares their conditional writes and error taxonomy
type InventoryStockLedger struct {
	deduct  *inventory.DeductQuantity
	restore *inventory.RestoreQuantity
}

func NewInventoryStockLedger(deduct *inventory.DeductQuantity, restore *inventory.RestoreQuantity) *InventoryStockLedger {
	return &InventoryStockLedger{deduct: deduct, restore: restore}
}

func (l *InventoryStockLedger) Deduct(ctx context.Context, bookID string, quantity int64) error {
	return l.deduct.Execute(ctx, &inventory.DeductQuantityCommand{BookID: bookID, Quantity: quantity})
}

func (l *InventoryStockLedger) Restore(ctx context.Context, bookID string, quantity int64) error {
	_, err := l.restore.Execute(ctx, &inventory.RestoreQuantityCommand{BookID: bookID, Quantity: quantity})
	return err
}
