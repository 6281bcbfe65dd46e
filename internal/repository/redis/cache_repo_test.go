package redis

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *r.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := r.NewClient(&r.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestCacheRepo_RoundTripKeepsTiers(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewCacheRepo(client, time.Minute, logger.NewNop())
	ctx := context.Background()

	tea := usecase.NewProductInfo(1, "Tea", "Drinks", 100000, 5, []domain.DiscountTier{domain.NewDiscountTier(5, 10)})
	require.NoError(t, repo.SetProducts(ctx, []usecase.ProductInfo{tea}))

	got, err := repo.GetProducts(ctx, []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tea, got[1])

	assert.Equal(t, time.Minute, mr.TTL("product:1"))

	mr.FastForward(2 * time.Minute)
	got, err = repo.GetProducts(ctx, []int64{1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCacheRepo_SkipsCorruptedAndMismatched(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewCacheRepo(client, time.Minute, logger.NewNop())

	require.NoError(t, mr.Set("product:1", "{not json"))
	require.NoError(t, mr.Set("product:2", `{"id":3,"name":"Wrong"}`))

	got, err := repo.GetProducts(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, mr.Exists("product:2"))
}

func TestCacheRepo_InvalidateProducts(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewCacheRepo(client, time.Minute, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.SetProducts(ctx, []usecase.ProductInfo{usecase.NewProductInfo(1, "Tea", "Drinks", 100, 0, nil)}))
	require.NoError(t, repo.InvalidateProducts(ctx, map[int64]int64{1: 2}))

	assert.False(t, mr.Exists("product:1"))
	v, err := mr.Get("product:1:version")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	assert.Equal(t, time.Minute, mr.TTL("product:1:version"))

	// порог не опускается
	require.NoError(t, repo.InvalidateProducts(ctx, map[int64]int64{1: 1}))
	v, err = mr.Get("product:1:version")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

// Чтение из БД началось до изменения скидок, а запись в кэш пришла после инвалидации:
// старые скидки не должны вернуться в кэш.
func TestCacheRepo_StaleWriteAfterInvalidateIgnored(t *testing.T) {
	_, client := newTestClient(t)
	repo := NewCacheRepo(client, time.Minute, logger.NewNop())
	ctx := context.Background()

	stale := usecase.NewProductInfo(1, "Tea", "Drinks", 100000, 0, []domain.DiscountTier{domain.NewDiscountTier(5, 10)})
	stale.Version = 1
	fresh := usecase.NewProductInfo(1, "Tea", "Drinks", 100000, 0, []domain.DiscountTier{domain.NewDiscountTier(5, 30)})
	fresh.Version = 2

	require.NoError(t, repo.InvalidateProducts(ctx, map[int64]int64{1: 2}))
	require.NoError(t, repo.SetProducts(ctx, []usecase.ProductInfo{stale}))

	got, err := repo.GetProducts(ctx, []int64{1})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.SetProducts(ctx, []usecase.ProductInfo{fresh}))
	got, err = repo.GetProducts(ctx, []int64{1})
	require.NoError(t, err)
	require.Contains(t, got, int64(1))
	assert.Equal(t, fresh, got[1])
}

func TestCacheRepo_UnavailableReturnsError(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewCacheRepo(client, time.Minute, logger.NewNop())
	mr.Close()

	_, err := repo.GetProducts(context.Background(), []int64{1})
	require.Error(t, err)
}

func TestKVStore(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewKVStore(client, "storefront:")
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "cart:u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "cart:u1", []byte(`{"items":[]}`), time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("storefront:cart:u1"))

	data, ok, err := store.Get(ctx, "cart:u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"items":[]}`, string(data))

	require.NoError(t, store.Delete(ctx, "cart:u1"))
	assert.False(t, mr.Exists("storefront:cart:u1"))
}

func TestKVStore_UpdateIsAtomic(t *testing.T) {
	_, client := newTestClient(t)
	store := NewKVStore(client, "storefront:")
	ctx := context.Background()

	// каждый писатель проигрывает конфликт не больше writers-1 раз
	const writers = 10
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Update(ctx, "counter", time.Hour, func(cur []byte, ok bool) ([]byte, bool, error) {
				n := 0
				if ok {
					n, _ = strconv.Atoi(string(cur))
				}
				return []byte(strconv.Itoa(n + 1)), true, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, ok, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(writers), string(data))
}

func TestKVStore_UpdateRetriesOnConflict(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewKVStore(client, "storefront:")
	ctx := context.Background()

	calls := 0
	err := store.Update(ctx, "k", 0, func(cur []byte, ok bool) ([]byte, bool, error) {
		calls++
		if calls == 1 {
			// другой клиент успел записать ключ после WATCH
			require.NoError(t, mr.Set("storefront:k", "other"))
			return []byte("mine"), true, nil
		}
		assert.True(t, ok)
		return append(cur, "+mine"...), true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	v, err := mr.Get("storefront:k")
	require.NoError(t, err)
	assert.Equal(t, "other+mine", v)
}
