package handlers

import (
	"context"

	"github.com/bookstore/fulfillment-saga/courier-service/application"
	"github.com/bookstore/fulfillment-saga/shared/infrastructure"
)

var _ infrastructure.MessageHandler = (*AssignmentRequestHandler)(nil)

// AssignmentRequestHandler feeds courier assignment requests from the queue
// into the AssignCourier use case
type AssignmentRequestHandler struct {
	assignCourier *application.AssignCourier
}

// NewAssignmentRequestHandler creates a new AssignmentRequestHandler
func NewAssignmentRequestHandler(assignCourier *application.AssignCourier) *AssignmentRequestHandler {
	return &AssignmentRequestHandler{assignCourier: assignCourier}
}

// HandlerID returns the unique identifier for this handler
func (h *AssignmentRequestHandler) HandlerID() string {
	return "courier-assignment-handler"
}

// Handle implements the infrastructure.MessageHandler interface
func (h *AssignmentRequestHandler) Handle(ctx context.Context, message *infrastructure.QueueMessage) error {
	return h.assignCourier.Execute(ctx, &application.AssignCourierCommand{
		MessageID: message.ID,
		Body:      message.Body,
	})
}
