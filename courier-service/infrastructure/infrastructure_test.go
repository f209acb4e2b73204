package infrastructure

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bookstore/fulfillment-saga/courier-service/domain"
	inventory "github.com/bookstore/fulfillment-saga/inventory-service/application"
	inventorydomain "github.com/bookstore/fulfillment-saga/inventory-service/domain"
	inventoryinfra "github.com/bookstore/fulfillment-saga/inventory-service/infrastructure"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var deleted int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			delete(f.ttls, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func TestRedisDeliveryTracker(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	tracker := NewRedisDeliveryTracker(client, "courier-worker", time.Hour, time.Minute)
	token := strings.Repeat("t", 4096)

	stage, err := tracker.Stage(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.StageReceived, stage)

	require.NoError(t, tracker.Advance(ctx, token, domain.StageInventoryDeducted))
	stage, err = tracker.Stage(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.StageInventoryDeducted, stage)

	require.Len(t, client.values, 1)
	for key, ttl := range client.ttls {
		assert.True(t, strings.HasPrefix(key, "courier-worker:delivery:"))
		assert.Len(t, key, len("courier-worker:delivery:")+64)
		assert.Equal(t, time.Hour, ttl)
	}

	stage, err = tracker.Stage(ctx, "other-token")
	require.NoError(t, err)
	assert.Equal(t, domain.StageReceived, stage)
}

func TestRedisDeliveryTracker_Faults(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")
	tracker := NewRedisDeliveryTracker(client, "courier-worker", time.Hour, time.Minute)

	_, err := tracker.Stage(context.Background(), "tok")
	assert.EqualError(t, err, "failed to read delivery stage: connection refused")

	err = tracker.Advance(context.Background(), "tok", domain.StageResumed)
	assert.EqualError(t, err, "failed to record delivery stage: connection refused")

	_, err = tracker.Claim(context.Background(), "tok")
	assert.EqualError(t, err, "failed to claim delivery: connection refused")

	err = tracker.Release(context.Background(), "tok")
	assert.EqualError(t, err, "failed to release delivery claim: connection refused")
}

func TestRedisDeliveryTracker_Claim(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	tracker := NewRedisDeliveryTracker(client, "courier-worker", time.Hour, time.Minute)

	claimed, err := tracker.Claim(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = tracker.Claim(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, claimed, "second worker must not claim a held token")

	require.Len(t, client.ttls, 1)
	for key, ttl := range client.ttls {
		assert.True(t, strings.HasPrefix(key, "courier-worker:claim:"))
		assert.Equal(t, time.Minute, ttl)
	}

	require.NoError(t, tracker.Release(ctx, "tok"))
	claimed, err = tracker.Claim(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, claimed)

	stage, err := tracker.Stage(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, domain.StageReceived, stage, "claims do not touch the stage")
}

func TestMemoryDeliveryTracker(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryDeliveryTracker()

	stage, _ := tracker.Stage(ctx, "tok")
	assert.Equal(t, domain.StageReceived, stage)

	require.NoError(t, tracker.Advance(ctx, "tok", domain.StageResumed))
	stage, _ = tracker.Stage(ctx, "tok")
	assert.Equal(t, domain.StageResumed, stage)

	claimed, _ := tracker.Claim(ctx, "tok")
	assert.True(t, claimed)
	claimed, _ = tracker.Claim(ctx, "tok")
	assert.False(t, claimed)
	require.NoError(t, tracker.Release(ctx, "tok"))
	claimed, _ = tracker.Claim(ctx, "tok")
	assert.True(t, claimed)
}

func TestStaticCourierDirectory_RoundRobin(t *testing.T) {
	directory := NewStaticCourierDirectory("a@x", "", "b@x")

	var got []string
	for i := 0; i < 4; i++ {
		courier, err := directory.Assign(context.Background(), "B1")
		require.NoError(t, err)
		got = append(got, courier.Contact)
	}

	assert.Equal(t, []string{"a@x", "b@x", "a@x", "b@x"}, got)
}

func TestStaticCourierDirectory_Empty(t *testing.T) {
	_, err := NewStaticCourierDirectory().Assign(context.Background(), "B1")

	assert.True(t, errors.Is(err, domain.ErrNoCouriers))
}

func newStockLedger(repo *inventoryinfra.MemoryBookRepository) *InventoryStockLedger {
	return NewInventoryStockLedger(inventory.NewDeductQuantity(repo), inventory.NewRestoreQuantity(repo))
}

func TestInventoryStockLedger_Deduct(t *testing.T) {
	ctx := context.Background()
	repo := inventoryinfra.NewMemoryBookRepository(inventorydomain.Book{BookID: "B1", Quantity: 5})
	ledger := newStockLedger(repo)

	require.NoError(t, ledger.Deduct(ctx, "B1", 2))
	book, _ := repo.FindByID(ctx, "B1")
	assert.Equal(t, int64(3), book.Quantity)

	err := ledger.Deduct(ctx, "B1", 4)
	assert.True(t, errors.Is(err, saga.ErrOutOfStock))
	book, _ = repo.FindByID(ctx, "B1")
	assert.Equal(t, int64(3), book.Quantity)
}

func TestInventoryStockLedger_Restore(t *testing.T) {
	ctx := context.Background()
	repo := inventoryinfra.NewMemoryBookRepository(inventorydomain.Book{BookID: "B1", Quantity: 5})
	ledger := newStockLedger(repo)

	require.NoError(t, ledger.Deduct(ctx, "B1", 2))
	require.NoError(t, ledger.Restore(ctx, "B1", 2))
	book, _ := repo.FindByID(ctx, "B1")
	assert.Equal(t, int64(5), book.Quantity)

	err := ledger.Restore(ctx, "B404", 1)
	assert.True(t, errors.Is(err, saga.ErrNotFound), "got %v", err)
}
