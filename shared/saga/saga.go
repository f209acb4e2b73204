package saga

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// Step names as registered with the orchestrator.
const (
	StepCheckInventory  = "CheckInventory"
	StepCalculateTotal  = "CalculateTotal"
	StepRedeemPoints    = "RedeemPoints"
	StepBillCustomer    = "BillCustomer"
	StepRestoreQuantity = "RestoreQuantity"
	StepRestorePoints   = "RestorePoints"
)

// StepStatus is the outcome of a single step invocation (used for metrics and logs only)
type StepStatus string

const (
	StepStatusSucceeded StepStatus = "succeeded"
	StepStatusFailed    StepStatus = "failed"
)

// StepHandler runs one saga step over a decoded JSON input and returns the
// record handed back to the orchestrator.
type StepHandler func(ctx context.Context, input json.RawMessage) (interface{}, error)

// Step adapts a typed step function to a StepHandler. Inputs that do not decode
// into In fail with InvalidInput.
func Step[In any, Out any](fn func(ctx context.Context, in *In) (*Out, error)) StepHandler {
	return func(ctx context.Context, input json.RawMessage) (interface{}, error) {
		var in In
		if len(input) > 0 {
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, WrapError(err, KindInvalidInput, "malformed step input")
			}
		}
		out, err := fn(ctx, &in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Registry maps step names to handlers.
type Registry struct {
	steps map[string]StepHandler
}

func NewRegistry() *Registry {
	return &Registry{steps: make(map[string]StepHandler)}
}

// Register adds a step. Registering the same name twice is a programming error.
func (r *Registry) Register(name string, handler StepHandler) {
	if _, exists := r.steps[name]; exists {
		panic("saga: step registered twice: " + name)
	}
	r.steps[name] = handler
}

// Lookup returns the handler for name.
func (r *Registry) Lookup(name string) (StepHandler, bool) {
	h, ok := r.steps[name]
	return h, ok
}

// Names returns the registered step names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.steps))
	for name := range r.steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named step.
func (r *Registry) Invoke(ctx context.Context, name string, input json.RawMessage) (interface{}, error) {
	h, ok := r.Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown step %q", name)
	}
	return h(ctx, input)
}
