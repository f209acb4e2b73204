package infrastructure

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/bookstore/fulfillment-saga/courier-service/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ domain.DeliveryTracker = (*RedisDeliveryTracker)(nil)

// RedisAPI is the subset of the go-redis client used by the tracker
type RedisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisDeliveryTracker stores the stage per token with a TTL. Tokens are
// hashed since they can be several kilobytes long. Claims are SET NX keys that
// expire after claimTTL, so a crashed worker cannot block a token for good.
type RedisDeliveryTracker struct {
	client    RedisAPI
	keyPrefix string
	ttl       time.Duration
	claimTTL  time.Duration
}

// NewRedisDeliveryTracker creates a new RedisDeliveryTracker
func NewRedisDeliveryTracker(client RedisAPI, keyPrefix string, ttl, claimTTL time.Duration) *RedisDeliveryTracker {
	return &RedisDeliveryTracker{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		claimTTL:  claimTTL,
	}
}

func (t *RedisDeliveryTracker) Claim(ctx context.Context, token string) (bool, error) {
	ok, err := t.client.SetNX(ctx, t.key("claim", token), "1", t.claimTTL).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim delivery")
	}
	return ok, nil
}

func (t *RedisDeliveryTracker) Release(ctx context.Context, token string) error {
	if err := t.client.Del(ctx, t.key("claim", token)).Err(); err != nil {
		return errors.Wrap(err, "failed to release delivery claim")
	}
	return nil
}

func (t *RedisDeliveryTracker) Stage(ctx context.Context, token string) (domain.Stage, error) {
	value, err := t.client.Get(ctx, t.key("delivery", token)).Result()
	if err == redis.Nil {
		return domain.StageReceived, nil
	}

	if err != nil {
		return "", errors.Wrap(err, "failed to read delivery stage")
	}

	return domain.Stage(value), nil
}

func (t *RedisDeliveryTracker) Advance(ctx context.Context, token string, stage domain.Stage) error {
	if err := t.client.Set(ctx, t.key("delivery", token), string(stage), t.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to record delivery stage")
	}
	return nil
}

func (t *RedisDeliveryTracker) key(kind, token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%s:%s:%s", t.keyPrefix, kind, hex.EncodeToString(sum[:]))
}
