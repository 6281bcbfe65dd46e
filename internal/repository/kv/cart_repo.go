package kv

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/kv/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CartRepo хранит корзину владельца одной JSON-записью в KeyValueStore.
type CartRepo struct {
	store  usecase.KeyValueStore
	ttl    time.Duration
	conv   converter.CartConverter
	logger logger.Logger
}

func NewCartRepo(store usecase.KeyValueStore, ttl time.Duration, logger logger.Logger) *CartRepo {
	return &CartRepo{store: store, ttl: ttl, logger: logger}
}

// Get возвращает пустую корзину, если записи нет или она повреждена.
func (c *CartRepo) Get(ctx context.Context, owner string) (*domain.Cart, error) {
	data, ok, err := c.store.Get(ctx, cartKey(owner))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.load(owner)(data, ok), nil
}

// Update применяет fn к актуальной корзине атомарно относительно других записей того же владельца.
// Запись происходит, только если fn вернула changed.
func (c *CartRepo) Update(ctx context.Context, owner string, fn func(cart *domain.Cart) (bool, error)) (*domain.Cart, error) {
	cart, err := update(ctx, c.store, cartKey(owner), c.ttl, c.load(owner), c.conv.ToModel, fn)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return cart, nil
}

func (c *CartRepo) Delete(ctx context.Context, owner string) error {
	if err := c.store.Delete(ctx, cartKey(owner)); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) load(owner string) func([]byte, bool) *domain.Cart {
	return func(data []byte, ok bool) *domain.Cart {
		model := decode[converter.CartModel](data, ok, c.logger, "cart", owner)
		model.Owner = owner
		return c.conv.ToEntity(model)
	}
}

func cartKey(owner string) string {
	return "cart:" + owner
}
