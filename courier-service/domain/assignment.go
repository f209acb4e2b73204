package domain

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// AssignmentRequestVersion is the only schema version the worker understands
const AssignmentRequestVersion = "1"

var (
	// ErrUndecodableRequest means the message carries no usable resume token
	ErrUndecodableRequest = errors.New("undecodable assignment request")

	ErrUnsupportedVersion = errors.New("unsupported assignment request version")
	ErrInvalidAssignment  = errors.New("invalid assignment request")
)

// AssignmentInput is the order slice the worker needs to deduct inventory
type AssignmentInput struct {
	BookID   string `json:"bookId"`
	Quantity int64  `json:"quantity"`
}

// AssignmentRequest is the queue message asking for a courier. Field matching
// is case-insensitive, so the legacy {"Input", "Token"} body decodes as well.
type AssignmentRequest struct {
	Version string          `json:"version,omitempty"`
	Input   AssignmentInput `json:"input"`
	Token   string          `json:"token"`

	// inputErr keeps a malformed input until Validate, so the request can still
	// be resumed through its token
	inputErr error
}

type assignmentEnvelope struct {
	Version string          `json:"version,omitempty"`
	Input   json.RawMessage `json:"input"`
	Token   string          `json:"token"`
}

// DecodeAssignmentRequest parses a queue message body. It fails with
// ErrUndecodableRequest only when no token can be read, since nothing can be
// reported back to the orchestrator in that case. A malformed input is
// reported by Validate instead.
func DecodeAssignmentRequest(body []byte) (*AssignmentRequest, error) {
	var envelope assignmentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(ErrUndecodableRequest, err.Error())
	}

	if strings.TrimSpace(envelope.Token) == "" {
		return nil, errors.Wrap(ErrUndecodableRequest, "missing token")
	}

	req := &AssignmentRequest{
		Version: envelope.Version,
		Token:   envelope.Token,
	}

	if req.Version == "" {
		req.Version = AssignmentRequestVersion
	}

	// fields that do decode are kept for logging and events
	if len(envelope.Input) > 0 {
		if err := json.Unmarshal(envelope.Input, &req.Input); err != nil {
			req.inputErr = errors.Wrapf(ErrInvalidAssignment, "malformed input: %v", err)
		}
	}

	return req, nil
}

// Validate checks the request can be acted upon
func (r *AssignmentRequest) Validate() error {
	if r.Version != AssignmentRequestVersion {
		return errors.Wrapf(ErrUnsupportedVersion, "version %q", r.Version)
	}

	if r.inputErr != nil {
		return r.inputErr
	}

	if r.Input.BookID == "" {
		return errors.Wrap(ErrInvalidAssignment, "book ID is required")
	}

	if r.Input.Quantity <= 0 {
		return errors.Wrap(ErrInvalidAssignment, "quantity must be positive")
	}

	return nil
}

// Courier is someone who can pick up a fulfilled order
type Courier struct {
	ID      string
	Contact string
}

// AssignmentResult is the output handed back to the orchestrator on success
type AssignmentResult struct {
	Courier      string `json:"courier"`
	AssignmentID string `json:"assignmentId"`
}

// AssignmentEvent is the payload of the courier fulfillment events
type AssignmentEvent struct {
	BookID       string `json:"bookId"`
	Quantity     int64  `json:"quantity"`
	Courier      string `json:"courier,omitempty"`
	AssignmentID string `json:"assignmentId,omitempty"`
	Reason       string `json:"reason,omitempty"`
}
