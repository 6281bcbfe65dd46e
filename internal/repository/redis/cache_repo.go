package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует ProductInfo вместе с оптовыми скидками, чтобы расчёт цены не ходил в БД.
type CacheRepo struct {
	client *r.Client
	conv   converter.ProductInfoConverter
	ttl    time.Duration
	logger logger.Logger
}

func NewCacheRepo(client *r.Client, ttl time.Duration, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProducts возвращает закэшированные продукты по ID, пропуская промахи
func (c *CacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]usecase.ProductInfo, error) {
	result := make(map[int64]usecase.ProductInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := c.buildProductCacheKeys(ids)

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			c.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		var model converter.ProductInfoRedisModel
		if err := json.Unmarshal(data, &model); err != nil {
			c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		if model.ID != ids[i] {
			c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", ids[i], model.ID)
			if err := c.client.Del(ctx, keys[i]).Err(); err != nil {
				c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[ids[i]] = *c.conv.ToUseCase(&model)
	}

	return result, nil
}

// setIfNotStale пишет продукт, только если его версия не ниже порога из versionKey.
// KEYS: productKey, versionKey. ARGV: data, version, ttl_ms.
var setIfNotStale = r.NewScript(`
local floor = tonumber(redis.call('GET', KEYS[2]) or '0')
if tonumber(ARGV[2]) < floor then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// invalidate удаляет продукт и поднимает порог версии.
// KEYS: productKey, versionKey. ARGV: version, ttl_ms.
var invalidate = r.NewScript(`
local floor = tonumber(redis.call('GET', KEYS[2]) or '0')
if tonumber(ARGV[1]) > floor then
	redis.call('SET', KEYS[2], ARGV[1], 'PX', ARGV[2])
end
redis.call('DEL', KEYS[1])
return 1
`)

// SetProducts кэширует несколько продуктов одним pipeline с заданным TTL.
// Продукт, прочитанный до изменения в БД, не перезапишет кэш после InvalidateProducts.
// Ошибки сериализации и записи только логируются.
func (c *CacheRepo) SetProducts(ctx context.Context, products []usecase.ProductInfo) error {
	if len(products) == 0 {
		return nil
	}

	pipeline := c.client.Pipeline()
	for _, model := range c.conv.ToArrRedisModel(products) {
		data, err := json.Marshal(model)
		if err != nil {
			c.logger.Warnf("Failed to marshal product for caching (Product ID: %d): %v", model.ID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		setIfNotStale.Eval(ctx, pipeline,
			[]string{productKey(model.ID), versionKey(model.ID)},
			data, model.Version, c.ttlMillis(),
		)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		c.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// InvalidateProducts удаляет продукты из кэша и запоминает их новые версии на время TTL.
func (c *CacheRepo) InvalidateProducts(ctx context.Context, versions map[int64]int64) error {
	if len(versions) == 0 {
		return nil
	}

	pipeline := c.client.Pipeline()
	for id, version := range versions {
		invalidate.Eval(ctx, pipeline, []string{productKey(id), versionKey(id)}, version, c.ttlMillis())
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		c.logger.Warnf("Cache invalidation failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) ttlMillis() int64 {
	return max(c.ttl.Milliseconds(), 1)
}

func (c *CacheRepo) buildProductCacheKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	return keys
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func versionKey(id int64) string {
	return fmt.Sprintf("product:%d:version", id)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val any, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
