package kv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/memory"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepo(t *testing.T) {
	store := memory.NewKVStore(time.Hour, time.Minute)
	repo := NewCartRepo(store, time.Hour, logger.NewNop())
	ctx := context.Background()

	cart, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = repo.Update(ctx, "u1", func(cart *domain.Cart) (bool, error) {
		cart.Add(1, 2, 999)
		cart.Add(7, 1, 999)
		return true, nil
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 7, Quantity: 1}}, got.Items)

	require.NoError(t, repo.Delete(ctx, "u1"))
	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartRepo_CorruptedOrInvalidLines(t *testing.T) {
	store := memory.NewKVStore(time.Hour, time.Minute)
	repo := NewCartRepo(store, time.Hour, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart:u1", []byte("[broken"), 0))
	cart, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cart.Owner)
	assert.Empty(t, cart.Items)

	require.NoError(t, store.Set(ctx, "cart:u2", []byte(`{"items":[{"product_id":3,"quantity":0},{"product_id":4,"quantity":2}]}`), 0))
	cart, err = repo.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{{ProductID: 4, Quantity: 2}}, cart.Items)
}

func TestWishlistRepo(t *testing.T) {
	store := memory.NewKVStore(time.Hour, time.Minute)
	repo := NewWishlistRepo(store, time.Hour, logger.NewNop())
	ctx := context.Background()

	_, err := repo.Update(ctx, "u1", func(w *domain.Wishlist) (bool, error) {
		w.Toggle(domain.WishlistItem{ProductID: 1, Name: "Tea", Price: 100, CategoryName: "Drinks"})
		w.Toggle(domain.WishlistItem{ProductID: 2, Name: "Mug", Price: 50, CategoryName: "Kitchen"})
		return true, nil
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Mug", got.Items[0].Name)
	assert.Equal(t, int64(100), got.Items[1].Price)
}

func TestCartRepo_ConcurrentUpdatesKeepEveryLine(t *testing.T) {
	store := memory.NewKVStore(time.Hour, time.Minute)
	repo := NewCartRepo(store, time.Hour, logger.NewNop())
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func(productID int64) {
			defer wg.Done()
			_, err := repo.Update(ctx, "u1", func(cart *domain.Cart) (bool, error) {
				// окно между чтением и записью
				time.Sleep(2 * time.Millisecond)
				cart.Add(productID, 1, 999)
				return true, nil
			})
			assert.NoError(t, err)
		}(int64(i + 1))
	}
	wg.Wait()

	cart, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, writers)
}

func TestCartRepo_UpdateWithoutChangeOrWithErrorDoesNotWrite(t *testing.T) {
	store := memory.NewKVStore(time.Hour, time.Minute)
	repo := NewCartRepo(store, time.Hour, logger.NewNop())
	ctx := context.Background()

	cart, err := repo.Update(ctx, "u1", func(cart *domain.Cart) (bool, error) {
		cart.Add(1, 1, 999)
		return false, nil
	})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "u1", func(cart *domain.Cart) (bool, error) {
		cart.Add(2, 1, 999)
		return true, boom
	})
	require.ErrorIs(t, err, boom)

	_, ok, err := store.Get(ctx, "cart:u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddressRepo(t *testing.T) {
	store := memory.NewKVStore(time.Hour, time.Minute)
	repo := NewAddressRepo(store, 0, logger.NewNop())
	ctx := context.Background()

	home := domain.Address{ID: "a1", ShippingAddress: domain.ShippingAddress{FullName: "Ann", Street: "Main 1", City: "Riga", Phone: "123"}}
	_, err := repo.Update(ctx, "u1", func(book *domain.AddressBook) (bool, error) {
		return book.Add(home), nil
	})
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "addresses:u2", []byte(`{"items":[{"id":""},{"id":"x","city":"Oslo"}]}`), 0))

	book, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, book.Addresses, 1)
	assert.True(t, book.Addresses[0].IsDefault)
	assert.Equal(t, "Main 1", book.Addresses[0].Street)

	other, err := repo.Get(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, other.Addresses, 1)
	assert.Equal(t, "Oslo", other.Addresses[0].City)
}
