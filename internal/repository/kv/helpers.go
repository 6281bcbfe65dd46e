package kv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// decode разбирает JSON-запись. Отсутствующая или повреждённая запись читается как пустая.
func decode[M any](data []byte, ok bool, log logger.Logger, what, owner string) *M {
	model := new(M)
	if !ok {
		return model
	}

	if err := json.Unmarshal(data, model); err != nil {
		log.Warnf("Corrupted %s for %s, starting empty: %v", what, owner, e.Wrap(whereami.WhereAmI(), err))
		return new(M)
	}

	return model
}

// update делает read-modify-write одной записи через KeyValueStore.Update.
// fn может быть вызвана повторно и каждый раз получает свежую копию записи.
func update[E, M any](
	ctx context.Context,
	store usecase.KeyValueStore,
	key string,
	ttl time.Duration,
	load func(data []byte, ok bool) *E,
	toModel func(*E) *M,
	fn func(*E) (bool, error),
) (*E, error) {
	var result *E
	err := store.Update(ctx, key, ttl, func(data []byte, ok bool) ([]byte, bool, error) {
		entity := load(data, ok)
		changed, err := fn(entity)
		if err != nil {
			return nil, false, err
		}

		result = entity
		if !changed {
			return nil, false, nil
		}

		out, err := json.Marshal(toModel(entity))
		if err != nil {
			return nil, false, err
		}
		return out, true, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
