package saga

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := errors.Wrap(NewError(KindOutOfStock, "book %s is out of stock", "B1"), "check inventory")

	assert.True(t, errors.Is(err, ErrOutOfStock))
	assert.False(t, errors.Is(err, ErrNotFound))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindOutOfStock, kind)
	assert.Equal(t, "OutOfStock", NameOf(err))
}

func TestError_WrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapError(cause, KindNotFound, "book %s not found", "B1")

	assert.Equal(t, "book B1 not found: connection reset", err.Error())
	assert.Equal(t, cause, errors.Cause(err.Unwrap()))
	assert.True(t, errors.Is(err, cause))
}

func TestNameOf_UntypedIsInternal(t *testing.T) {
	assert.Equal(t, "InternalError", NameOf(errors.New("boom")))
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestKind_Retryable(t *testing.T) {
	tests := []struct {
		kind      Kind
		retryable bool
	}{
		{KindNotFound, false},
		{KindOutOfStock, false},
		{KindInsufficientOrderTotal, false},
		{KindUserNotFound, false},
		{KindInvalidInput, false},
		{KindPaymentDeclined, true},
		{KindGatewayUnavailable, true},
		{KindNoCourierAvailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.retryable, tt.kind.Retryable())
		})
	}

	assert.False(t, KindInternal.Valid())
}

type echoInput struct {
	Value int `json:"value"`
}

type echoOutput struct {
	Doubled int `json:"doubled"`
}

func TestRegistry_Invoke(t *testing.T) {
	registry := NewRegistry()
	registry.Register("Double", Step(func(ctx context.Context, in *echoInput) (*echoOutput, error) {
		if in.Value < 0 {
			return nil, NewError(KindInvalidInput, "value must not be negative")
		}
		return &echoOutput{Doubled: in.Value * 2}, nil
	}))

	out, err := registry.Invoke(context.Background(), "Double", json.RawMessage(`{"value":21}`))
	require.NoError(t, err)
	assert.Equal(t, &echoOutput{Doubled: 42}, out)

	_, err = registry.Invoke(context.Background(), "Double", json.RawMessage(`{"value":-1}`))
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = registry.Invoke(context.Background(), "Double", json.RawMessage(`{"value":`))
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = registry.Invoke(context.Background(), "Missing", nil)
	assert.EqualError(t, err, `unknown step "Missing"`)

	assert.Equal(t, []string{"Double"}, registry.Names())
	assert.Panics(t, func() {
		registry.Register("Double", nil)
	})
}
