package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	billing "github.com/bookstore/fulfillment-saga/billing-service/application"
	billinginfra "github.com/bookstore/fulfillment-saga/billing-service/infrastructure"
	inventory "github.com/bookstore/fulfillment-saga/inventory-service/application"
	inventorydomain "github.com/bookstore/fulfillment-saga/inventory-service/domain"
	inventoryinfra "github.com/bookstore/fulfillment-saga/inventory-service/infrastructure"
	loyalty "github.com/bookstore/fulfillment-saga/loyalty-service/application"
	loyaltydomain "github.com/bookstore/fulfillment-saga/loyalty-service/domain"
	loyaltyinfra "github.com/bookstore/fulfillment-saga/loyalty-service/infrastructure"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgers struct {
	books     *inventoryinfra.MemoryBookRepository
	customers *loyaltyinfra.MemoryCustomerRepository
}

func newRegistry(declineAbove int64) (*saga.Registry, *ledgers) {
	l := &ledgers{
		books:     inventoryinfra.NewMemoryBookRepository(inventorydomain.Book{BookID: "B1", Quantity: 10, Price: 20}),
		customers: loyaltyinfra.NewMemoryCustomerRepository(loyaltydomain.Customer{UserID: "U1", Points: 50}),
	}

	handlers := NewStepHandlers(
		inventory.NewCheckInventory(l.books),
		inventory.NewRestoreQuantity(l.books),
		billing.NewCalculateTotal(),
		billing.NewBillCustomer(billinginfra.NewStubGateway(declineAbove)),
		loyalty.NewRedeemPoints(l.customers),
		loyalty.NewRestorePoints(l.customers),
	)
	return handlers.Registry(), l
}

func invoke(t *testing.T, registry *saga.Registry, step string, input interface{}) (map[string]interface{}, error) {
	payload, err := json.Marshal(input)
	require.NoError(t, err)

	output, err := registry.Invoke(context.Background(), step, payload)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(output)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &record))
	return record, nil
}

func TestStepHandlers_RegistersEveryStep(t *testing.T) {
	registry, _ := newRegistry(0)

	assert.Equal(t, []string{
		saga.StepBillCustomer,
		saga.StepCalculateTotal,
		saga.StepCheckInventory,
		saga.StepRedeemPoints,
		saga.StepRestorePoints,
		saga.StepRestoreQuantity,
	}, registry.Names())
}

func TestStepHandlers_HappyPath(t *testing.T) {
	registry, l := newRegistry(0)

	book, err := invoke(t, registry, saga.StepCheckInventory, map[string]interface{}{"bookId": "B1", "quantity": 4})
	require.NoError(t, err)
	assert.Equal(t, "B1", book["bookId"])
	assert.EqualValues(t, 20, book["price"])

	total, err := invoke(t, registry, saga.StepCalculateTotal, map[string]interface{}{"book": book, "quantity": 4})
	require.NoError(t, err)
	assert.EqualValues(t, 80, total["total"])

	redeemed, err := invoke(t, registry, saga.StepRedeemPoints, map[string]interface{}{"userId": "U1", "total": total["total"]})
	require.NoError(t, err)
	assert.EqualValues(t, 30, redeemed["total"])
	assert.EqualValues(t, 50, redeemed["points"])

	billed, err := invoke(t, registry, saga.StepBillCustomer, map[string]interface{}{"userId": "U1", "total": redeemed["total"]})
	require.NoError(t, err)
	assert.NotEmpty(t, billed["confirmationId"])
	assert.EqualValues(t, 30, billed["amount"])

	customer, _ := l.customers.FindByID(context.Background(), "U1")
	assert.Equal(t, int64(0), customer.Points)
}

func TestStepHandlers_DeclinedChargeIsCompensated(t *testing.T) {
	registry, l := newRegistry(10)

	redeemed, err := invoke(t, registry, saga.StepRedeemPoints, map[string]interface{}{"userId": "U1", "total": 80})
	require.NoError(t, err)

	_, err = invoke(t, registry, saga.StepBillCustomer, map[string]interface{}{"userId": "U1", "total": redeemed["total"]})
	require.Error(t, err)
	assert.Equal(t, "PaymentDeclined", saga.NameOf(err))

	_, err = invoke(t, registry, saga.StepRestorePoints, map[string]interface{}{"userId": "U1", "points": redeemed["points"]})
	require.NoError(t, err)

	restored, err := invoke(t, registry, saga.StepRestoreQuantity, map[string]interface{}{"bookId": "B1", "quantity": 4})
	require.NoError(t, err)
	assert.Equal(t, "Quantity restored", restored["message"])

	customer, _ := l.customers.FindByID(context.Background(), "U1")
	assert.Equal(t, int64(50), customer.Points)
	book, _ := l.books.FindByID(context.Background(), "B1")
	assert.Equal(t, int64(14), book.Quantity)
}

func TestStepHandlers_TypedFailures(t *testing.T) {
	registry, _ := newRegistry(0)

	_, err := invoke(t, registry, saga.StepCheckInventory, map[string]interface{}{"bookId": "B1", "quantity": 10})
	assert.True(t, errors.Is(err, saga.ErrOutOfStock))

	_, err = invoke(t, registry, saga.StepRedeemPoints, map[string]interface{}{"userId": "U1", "total": 30})
	assert.True(t, errors.Is(err, saga.ErrInsufficientOrderTotal))

	_, err = invoke(t, registry, saga.StepRedeemPoints, map[string]interface{}{"userId": "U404", "total": 80})
	assert.True(t, errors.Is(err, saga.ErrUserNotFound))
}

func newRouter(registry *saga.Registry) http.Handler {
	r := chi.NewRouter()
	NewStepHTTPHandlers(registry).RegisterRoutes(r)
	return r
}

func TestStepHTTPHandlers_InvokeStep(t *testing.T) {
	registry, _ := newRegistry(0)
	router := newRouter(registry)

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success returns the step output",
			path:           "/steps/CalculateTotal",
			body:           `{"book":{"bookId":"B1","price":20},"quantity":3}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"total":60}`,
		},
		{
			name:           "typed failure returns its kind",
			path:           "/steps/CheckInventory",
			body:           `{"bookId":"B404","quantity":1}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"NotFound","cause":"book B404 not found"}`,
		},
		{
			name:           "malformed input",
			path:           "/steps/CheckInventory",
			body:           `{"bookId":1}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestStepHTTPHandlers_UnknownStep(t *testing.T) {
	registry, _ := newRegistry(0)
	rec := httptest.NewRecorder()

	newRouter(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/steps/ShipBook", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStepHTTPHandlers_ListSteps(t *testing.T) {
	registry, _ := newRegistry(0)
	rec := httptest.NewRecorder()

	newRouter(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/steps/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Len(t, names, 6)
}
