package handlers

import (
	billing "github.com/bookstore/fulfillment-saga/billing-service/application"
	inventory "github.com/bookstore/fulfillment-saga/inventory-service/application"
	loyalty "github.com/bookstore/fulfillment-saga/loyalty-service/application"
	"github.com/bookstore/fulfillment-saga/shared/saga"
)

// StepHandlers exposes the saga step use cases under their orchestrator names
type StepHandlers struct {
	checkInventory  *inventory.CheckInventory
	restoreQuantity *inventory.RestoreQuantity
	calculateTotal  *billing.CalculateTotal
	billCustomer    *billing.BillCustomer
	redeemPoints    *loyalty.RedeemPoints
	restorePoints   *loyalty.RestorePoints
}

// NewStepHandlers creates new step handlers
func NewStepHandlers(
	checkInventory *inventory.CheckInventory,
	restoreQuantity *inventory.RestoreQuantity,
	calculateTotal *billing.CalculateTotal,
	billCustomer *billing.BillCustomer,
	redeemPoints *loyalty.RedeemPoints,
	restorePoints *loyalty.RestorePoints,
) *StepHandlers {
	return &StepHandlers{
		checkInventory:  checkInventory,
		restoreQuantity: restoreQuantity,
		calculateTotal:  calculateTotal,
		billCustomer:    billCustomer,
		redeemPoints:    redeemPoints,
		restorePoints:   restorePoints,
	}
}

// Registry builds the step registry served to the orchestrator
func (h *StepHandlers) Registry() *saga.Registry {
	registry := saga.NewRegistry()
	registry.Register(saga.StepCheckInventory, saga.Step(h.checkInventory.Execute))
	registry.Register(saga.StepCalculateTotal, saga.Step(h.calculateTotal.Execute))
	registry.Register(saga.StepRedeemPoints, saga.Step(h.redeemPoints.Execute))
	registry.Register(saga.StepBillCustomer, saga.Step(h.billCustomer.Execute))
	registry.Register(saga.StepRestoreQuantity, saga.Step(h.restoreQuantity.Execute))
	registry.Register(saga.StepRestorePoints, saga.Step(h.restorePoints.Execute))
	return registry
}
