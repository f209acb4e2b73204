package infrastructure

import (
	"context"
	"sync"

	"github.com/bookstore/fulfillment-saga/loyalty-service/domain"
)

// MemoryCustomerRepository keeps customers in process memory. Used for local runs and tests.
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
}

// NewMemoryCustomerRepository creates a repository seeded with the given customers
func NewMemoryCustomerRepository(customers ...domain.Customer) *MemoryCustomerRepository {
	r := &MemoryCustomerRepository{customers: make(map[string]domain.Customer)}
	for _, c := range customers {
		r.customers[c.UserID] = c
	}
	return r
}

func (r *MemoryCustomerRepository) FindByID(ctx context.Context, userID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[userID]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (r *MemoryCustomerRepository) CompareAndSetPoints(ctx context.Context, userID string, expected, points int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[userID]
	if !ok {
		return domain.ErrCustomerMissing
	}
	if customer.Points != expected {
		return domain.ErrPointsChanged
	}
	customer.Points = points
	r.customers[userID] = customer
	return nil
}

func (r *MemoryCustomerRepository) SetPoints(ctx context.Context, userID string, points int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[userID]
	if !ok {
		return domain.ErrCustomerMissing
	}
	customer.Points = points
	r.customers[userID] = customer
	return nil
}
