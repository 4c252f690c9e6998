package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"aistudio-backend/internal/models"

	"github.com/go-redis/redis/v8"
)

const (
	formStateKeyPrefix = "form:state:"
	formLockKeyPrefix  = "form:lock:"
	maxUpdateAttempts  = 5
)

// RedisFormStore shares form state between instances through Redis. Updates
// use WATCH/MULTI so concurrent writers never lose each other's changes.
type RedisFormStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFormStore(client *redis.Client, ttl time.Duration) *RedisFormStore {
	return &RedisFormStore{client: client, ttl: ttl}
}

func (s *RedisFormStore) Load(ctx context.Context, key string) (*models.FormState, error) {
	return getState(ctx, s.client, formStateKeyPrefix+key)
}

func (s *RedisFormStore) Update(ctx context.Context, key string, fn UpdateFunc) (*models.FormState, error) {
	stateKey := formStateKeyPrefix + key

	var result *models.FormState
	txf := func(tx *redis.Tx) error {
		current, err := getState(ctx, tx, stateKey)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		if next == nil {
			result = current
			return nil
		}

		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, stateKey, data, s.ttl)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := s.client.Watch(ctx, txf, stateKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, ErrUpdateConflict
}

func (s *RedisFormStore) Acquire(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, formLockKeyPrefix+key, 1, s.ttl).Result()
}

func (s *RedisFormStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, formLockKeyPrefix+key).Err()
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getState(ctx context.Context, cmd stringGetter, key string) (*models.FormState, error) {
	val, err := cmd.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state models.FormState
	if err := json.Unmarshal(val, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
