package application

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/bookstore/fulfillment-saga/billing-service/domain"
	"github.com/bookstore/fulfillment-saga/billing-service/mocks"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotal_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *CalculateTotalCommand
		expectedTotal int64
		expectedError bool
	}{
		{
			name:          "price times quantity",
			command:       &CalculateTotalCommand{Book: PricedBook{BookID: "B1", Price: 20}, Quantity: 3},
			expectedTotal: 60,
		},
		{
			name:          "zero quantity",
			command:       &CalculateTotalCommand{Book: PricedBook{Price: 20}, Quantity: 0},
			expectedTotal: 0,
		},
		{
			name:          "free book",
			command:       &CalculateTotalCommand{Book: PricedBook{Price: 0}, Quantity: 4},
			expectedTotal: 0,
		},
		{
			name:          "negative price",
			command:       &CalculateTotalCommand{Book: PricedBook{Price: -1}, Quantity: 4},
			expectedError: true,
		},
		{
			name:          "negative quantity",
			command:       &CalculateTotalCommand{Book: PricedBook{Price: 20}, Quantity: -4},
			expectedError: true,
		},
		{
			name:          "overflow",
			command:       &CalculateTotalCommand{Book: PricedBook{Price: math.MaxInt64}, Quantity: 2},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewCalculateTotal().Execute(context.Background(), tt.command)

			if tt.expectedError {
				assert.True(t, errors.Is(err, saga.ErrInvalidInput), "got %v", err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, result.Total)
		})
	}
}

func TestComputeTotal_MatchesProduct(t *testing.T) {
	for price := int64(0); price <= 50; price += 7 {
		for quantity := int64(0); quantity <= 12; quantity++ {
			total, err := domain.ComputeTotal(price, quantity)
			require.NoError(t, err)
			assert.Equal(t, price*quantity, total)
		}
	}
}

func TestBillCustomer_Execute(t *testing.T) {
	chargedAt := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		command        *BillCustomerCommand
		setupMocks     func(*mocks.MockGateway)
		expectedKind   saga.Kind
		expectedResult *BillCustomerResponse
	}{
		{
			name:    "successful charge",
			command: &BillCustomerCommand{UserID: "U1", Total: 30},
			setupMocks: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().Charge(mock.Anything, "U1", int64(30)).
					Return(&domain.Confirmation{ID: "conf-1", Amount: 30, ChargedAt: chargedAt}, nil).Once()
			},
			expectedResult: &BillCustomerResponse{ConfirmationID: "conf-1", Amount: 30, ChargedAt: chargedAt},
		},
		{
			name:    "declined charge",
			command: &BillCustomerCommand{UserID: "U1", Total: 30},
			setupMocks: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().Charge(mock.Anything, "U1", int64(30)).
					Return(nil, errors.Wrap(domain.ErrPaymentDeclined, "card expired")).Once()
			},
			expectedKind: saga.KindPaymentDeclined,
		},
		{
			name:    "provider unreachable",
			command: &BillCustomerCommand{UserID: "U1", Total: 30},
			setupMocks: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().Charge(mock.Anything, "U1", int64(30)).
					Return(nil, domain.ErrGatewayUnavailable).Once()
			},
			expectedKind: saga.KindGatewayUnavailable,
		},
		{
			name:    "unknown provider fault",
			command: &BillCustomerCommand{UserID: "U1", Total: 30},
			setupMocks: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().Charge(mock.Anything, "U1", int64(30)).
					Return(nil, errors.New("i/o timeout")).Once()
			},
			expectedKind: saga.KindGatewayUnavailable,
		},
		{
			name:    "validation error - negative amount",
			command: &BillCustomerCommand{UserID: "U1", Total: -30},
			setupMocks: func(gateway *mocks.MockGateway) {
				// No expectations - should fail validation
			},
			expectedKind: saga.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mocks.NewMockGateway(t)
			tt.setupMocks(gateway)

			result, err := NewBillCustomer(gateway).Execute(context.Background(), tt.command)

			if tt.expectedKind != "" {
				kind, ok := saga.KindOf(err)
				require.True(t, ok, "expected typed error, got %v", err)
				assert.Equal(t, tt.expectedKind, kind)
				assert.Equal(t, tt.expectedKind.Retryable(), kind.Retryable())
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}
