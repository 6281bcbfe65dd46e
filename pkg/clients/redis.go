package clients

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// NewRedisClient создаёт клиент и проверяет соединение. Клиент общий
// для кэша каталога и хранилища корзин.
func NewRedisClient(ctx context.Context, cfg *cfg.RedisCfg) (*r.Client, error) {
	client := r.NewClient(&r.Options{
		Addr:                  cfg.Addr,
		Username:              cfg.User,
		Password:              cfg.Password,
		DB:                    cfg.DB,
		MaxRetries:            cfg.MaxRetries,
		DialTimeout:           cfg.DialTimeout,
		ReadTimeout:           cfg.Timeout,
		WriteTimeout:          cfg.Timeout,
		ContextTimeoutEnabled: true,
	})

	if err := RedisPing(client)(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// RedisPing: проверка доступности для /healthz.
func RedisPing(client *r.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	}
}
