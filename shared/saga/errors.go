package saga

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies a failure the orchestrator can branch on. The string value is
// the error name reported back to the state machine.
type Kind string

const (
	KindNotFound               Kind = "NotFound"
	KindOutOfStock             Kind = "OutOfStock"
	KindInsufficientOrderTotal Kind = "InsufficientOrderTotal"
	KindUserNotFound           Kind = "UserNotFound"
	KindInvalidInput           Kind = "InvalidInput"
	KindPaymentDeclined        Kind = "PaymentDeclined"
	KindGatewayUnavailable     Kind = "GatewayUnavailable"
	KindNoCourierAvailable     Kind = "NoCourierAvailable"
)

// KindInternal is reported for faults that carry no Kind.
const KindInternal Kind = "InternalError"

var kinds = map[Kind]struct{}{
	KindNotFound:               {},
	KindOutOfStock:             {},
	KindInsufficientOrderTotal: {},
	KindUserNotFound:           {},
	KindInvalidInput:           {},
	KindPaymentDeclined:        {},
	KindGatewayUnavailable:     {},
	KindNoCourierAvailable:     {},
}

// Valid reports whether k belongs to the closed set of step failure kinds.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Retryable reports whether the orchestrator may retry a step that failed with k.
func (k Kind) Retryable() bool {
	return k == KindPaymentDeclined || k == KindGatewayUnavailable
}

func (k Kind) String() string {
	return string(k)
}

// Sentinels for errors.Is matching.
var (
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrOutOfStock             = &Error{Kind: KindOutOfStock}
	ErrInsufficientOrderTotal = &Error{Kind: KindInsufficientOrderTotal}
	ErrUserNotFound           = &Error{Kind: KindUserNotFound}
	ErrInvalidInput           = &Error{Kind: KindInvalidInput}
	ErrPaymentDeclined        = &Error{Kind: KindPaymentDeclined}
	ErrGatewayUnavailable     = &Error{Kind: KindGatewayUnavailable}
	ErrNoCourierAvailable     = &Error{Kind: KindNoCourierAvailable}
)

// Error is a typed step failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// NewError creates a step failure of the given kind.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates a step failure of the given kind caused by err.
func WrapError(err error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels above work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the failure kind from err. The second result is false when err
// carries no typed failure.
func KindOf(err error) (Kind, bool) {
	var sagaErr *Error
	if errors.As(err, &sagaErr) {
		return sagaErr.Kind, true
	}
	return "", false
}

// NameOf returns the error name reported to the orchestrator for err.
func NameOf(err error) string {
	if kind, ok := KindOf(err); ok {
		return kind.String()
	}
	return KindInternal.String()
}
