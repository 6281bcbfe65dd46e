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

// AddressRepo хранит адресную книгу владельца. ttl == 0: без срока хранения.
type AddressRepo struct {
	store  usecase.KeyValueStore
	ttl    time.Duration
	conv   converter.AddressConverter
	logger logger.Logger
}

func NewAddressRepo(store usecase.KeyValueStore, ttl time.Duration, logger logger.Logger) *AddressRepo {
	return &AddressRepo{store: store, ttl: ttl, logger: logger}
}

func (a *AddressRepo) Get(ctx context.Context, owner string) (*domain.AddressBook, error) {
	data, ok, err := a.store.Get(ctx, addressKey(owner))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.load(owner)(data, ok), nil
}

func (a *AddressRepo) Update(ctx context.Context, owner string, fn func(book *domain.AddressBook) (bool, error)) (*domain.AddressBook, error) {
	book, err := update(ctx, a.store, addressKey(owner), a.ttl, a.load(owner), a.conv.ToModel, fn)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return book, nil
}

func (a *AddressRepo) load(owner string) func([]byte, bool) *domain.AddressBook {
	return func(data []byte, ok bool) *domain.AddressBook {
		model := decode[converter.AddressBookModel](data, ok, a.logger, "address book", owner)
		model.Owner = owner
		return a.conv.ToEntity(model)
	}
}

func addressKey(owner string) string {
	return "addresses:" + owner
}
