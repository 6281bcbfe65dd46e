package redis

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// maxUpdateAttempts ограничивает число повторов WATCH/MULTI при конкурентной записи одного ключа.
const maxUpdateAttempts = 16

// KVStore хранит корзины, избранное и адреса в Redis. Ключи получают префикс.
type KVStore struct {
	client *r.Client
	prefix string
}

func NewKVStore(client *r.Client, prefix string) *KVStore {
	return &KVStore{client: client, prefix: prefix}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := get(ctx, s.client, s.prefix+key)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, ok, nil
}

// Set записывает значение; ttl == 0 означает хранение без срока.
func (s *KVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Update читает ключ под WATCH и пишет новое значение в MULTI/EXEC.
// Если ключ изменился между чтением и EXEC, fn вызывается заново.
func (s *KVStore) Update(ctx context.Context, key string, ttl time.Duration, fn usecase.UpdateFunc) error {
	key = s.prefix + key

	txf := func(tx *r.Tx) error {
		current, ok, err := get(ctx, tx, key)
		if err != nil {
			return err
		}

		next, write, err := fn(current, ok)
		if err != nil || !write {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe r.Pipeliner) error {
			pipe.Set(ctx, key, next, ttl)
			return nil
		})
		return err
	}

	for range maxUpdateAttempts {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, r.TxFailedErr) {
			continue
		}
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	}

	return e.Wrap(whereami.WhereAmI(), e.ErrConcurrentUpdate)
}

// getter: общее у *r.Client и *r.Tx.
type getter interface {
	Get(ctx context.Context, key string) *r.StringCmd
}

func get(ctx context.Context, c getter, key string) ([]byte, bool, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return data, true, nil
}
