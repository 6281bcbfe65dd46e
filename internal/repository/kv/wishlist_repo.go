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

type WishlistRepo struct {
	store  usecase.KeyValueStore
	ttl    time.Duration
	conv   converter.WishlistConverter
	logger logger.Logger
}

func NewWishlistRepo(store usecase.KeyValueStore, ttl time.Duration, logger logger.Logger) *WishlistRepo {
	return &WishlistRepo{store: store, ttl: ttl, logger: logger}
}

func (w *WishlistRepo) Get(ctx context.Context, owner string) (*domain.Wishlist, error) {
	data, ok, err := w.store.Get(ctx, wishlistKey(owner))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.load(owner)(data, ok), nil
}

func (w *WishlistRepo) Update(ctx context.Context, owner string, fn func(wishlist *domain.Wishlist) (bool, error)) (*domain.Wishlist, error) {
	wishlist, err := update(ctx, w.store, wishlistKey(owner), w.ttl, w.load(owner), w.conv.ToModel, fn)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return wishlist, nil
}

func (w *WishlistRepo) load(owner string) func([]byte, bool) *domain.Wishlist {
	return func(data []byte, ok bool) *domain.Wishlist {
		model := decode[converter.WishlistModel](data, ok, w.logger, "wishlist", owner)
		model.Owner = owner
		return w.conv.ToEntity(model)
	}
}

func wishlistKey(owner string) string {
	return "wishlist:" + owner
}
