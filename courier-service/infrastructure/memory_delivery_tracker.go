package infrastructure

import (
	"context"
	"sync"

	"github.com/bookstore/fulfillment-saga/courier-service/domain"
)

var _ domain.DeliveryTracker = (*MemoryDeliveryTracker)(nil)

// MemoryDeliveryTracker keeps stages and claims in process. Only safe with a
// single worker process; used when no Redis address is configured.
type MemoryDeliveryTracker struct {
	mu     sync.RWMutex
	stages map[string]domain.Stage
	claims map[string]struct{}
}

func NewMemoryDeliveryTracker() *MemoryDeliveryTracker {
	return &MemoryDeliveryTracker{
		stages: make(map[string]domain.Stage),
		claims: make(map[string]struct{}),
	}
}

func (t *MemoryDeliveryTracker) Claim(ctx context.Context, token string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, held := t.claims[token]; held {
		return false, nil
	}
	t.claims[token] = struct{}{}
	return true, nil
}

func (t *MemoryDeliveryTracker) Release(ctx context.Context, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.claims, token)
	return nil
}

func (t *MemoryDeliveryTracker) Stage(ctx context.Context, token string) (domain.Stage, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if stage, ok := t.stages[token]; ok {
		return stage, nil
	}
	return domain.StageReceived, nil
}

func (t *MemoryDeliveryTracker) Advance(ctx context.Context, token string, stage domain.Stage) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stages[token] = stage
	return nil
}
