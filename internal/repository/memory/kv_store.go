package memory

import (
	"context"
	"hash/maphash"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	gocache "github.com/patrickmn/go-cache"
)

const lockStripes = 64

// KVStore держит корзины в памяти процесса. Используется для локального запуска без Redis.
type KVStore struct {
	cache *gocache.Cache
	seed  maphash.Seed
	locks [lockStripes]sync.Mutex
}

func NewKVStore(defaultTTL, cleanupInterval time.Duration) *KVStore {
	return &KVStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
		seed:  maphash.MakeSeed(),
	}
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := s.load(key)
	if !ok {
		return nil, false, nil
	}

	// копия, чтобы вызывающий код не менял сохранённое значение
	return append([]byte(nil), data...), true, nil
}

// Set: при ttl == 0 берётся срок по умолчанию из конструктора.
func (s *KVStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	s.store(key, value, ttl)
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	s.cache.Delete(key)
	return nil
}

// Update держит блокировку ключа на всё время fn, поэтому fn вызывается ровно один раз.
func (s *KVStore) Update(ctx context.Context, key string, ttl time.Duration, fn usecase.UpdateFunc) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	current, ok := s.load(key)
	if ok {
		current = append([]byte(nil), current...)
	}

	next, write, err := fn(current, ok)
	if err != nil || !write {
		return err
	}

	s.store(key, next, ttl)
	return nil
}

func (s *KVStore) load(key string) ([]byte, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

func (s *KVStore) store(key string, value []byte, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	s.cache.Set(key, append([]byte(nil), value...), ttl)
}

func (s *KVStore) lock(key string) *sync.Mutex {
	return &s.locks[maphash.String(s.seed, key)%lockStripes]
}
