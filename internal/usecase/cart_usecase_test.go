package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartUC(products ...ProductInfo) (*CartUseCase, *memoryCarts) {
	carts := newMemoryCarts()
	return NewCartUC(carts, newFakeProducts(products...), logger.NewNop()), carts
}

func TestCart_AddPricesWithQuantityDiscount(t *testing.T) {
	uc, _ := newCartUC(volumeProduct())
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, NewCartItemReq("u1", 1, 3))
	require.NoError(t, err)
	view, err := uc.AddToCart(ctx, NewCartItemReq("u1", 1, 4))
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(7), view.Count)
	assert.Equal(t, "6300", view.Total.String())
	assert.True(t, view.Lines[0].Pricing.HasDiscount)
}

func TestCart_AddCappedAtStock(t *testing.T) {
	uc, _ := newCartUC(NewProductInfo(5, "Vase", "Home", 1000, 2, nil))

	view, err := uc.AddToCart(context.Background(), NewCartItemReq("u1", 5, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.Count)
}

func TestCart_AddValidation(t *testing.T) {
	uc, _ := newCartUC(volumeProduct())
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, NewCartItemReq("u1", 1, 0))
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.AddToCart(ctx, NewCartItemReq("", 1, 1))
	require.ErrorIs(t, err, e.ErrInvalidOwner)

	_, err = uc.AddToCart(ctx, NewCartItemReq("u1", 404, 1))
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCart_ConcurrentAddsKeepEveryProduct(t *testing.T) {
	const writers = 20
	products := make([]ProductInfo, 0, writers)
	for i := range writers {
		products = append(products, NewProductInfo(int64(i+1), "Item", "Misc", 100, 0, nil))
	}
	uc, _ := newCartUC(products...)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, p := range products {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := uc.AddToCart(ctx, NewCartItemReq("u1", id, 1))
			assert.NoError(t, err)
		}(p.ID)
	}
	wg.Wait()

	view, err := uc.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, view.Lines, writers)
	assert.Equal(t, int64(writers), view.Count)
}

func TestCart_UpdateAndRemove(t *testing.T) {
	uc, carts := newCartUC(volumeProduct(), NewProductInfo(2, "Mug", "Kitchen", 500, 0, nil))
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, NewCartItemReq("u1", 1, 1))
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, NewCartItemReq("u1", 2, 1))
	require.NoError(t, err)

	view, err := uc.UpdateQuantity(ctx, NewCartItemReq("u1", 1, 10))
	require.NoError(t, err)
	assert.Equal(t, "8005", view.Total.String())

	view, err = uc.RemoveFromCart(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(2), view.Lines[0].Product.ID)

	require.NoError(t, uc.ClearCart(ctx, "u1"))
	assert.NotContains(t, carts.carts, "u1")

	view, err = uc.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
}

func TestCart_MissingProductsReported(t *testing.T) {
	uc, carts := newCartUC(volumeProduct())
	carts.carts["u1"] = &domain.Cart{Owner: "u1", Items: []domain.CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 77, Quantity: 2}}}

	view, err := uc.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{77}, view.NotFoundProducts)
	assert.Equal(t, int64(1), view.Count)
}

func TestWishlist_Toggle(t *testing.T) {
	uc := NewWishlistUC(&memoryWishlists{wishlists: make(map[string]*domain.Wishlist)}, newFakeProducts(volumeProduct()))
	ctx := context.Background()

	view, err := uc.ToggleWishlist(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Tea", view.Items[0].Name)
	assert.Equal(t, int64(100000), view.Items[0].Price)

	in, err := uc.IsInWishlist(ctx, "u1", 1)
	require.NoError(t, err)
	assert.True(t, in)

	view, err = uc.ToggleWishlist(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	_, err = uc.ToggleWishlist(ctx, "u1", 2)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestWishlist_ConcurrentTogglesKeepEveryProduct(t *testing.T) {
	products := []ProductInfo{volumeProduct(), NewProductInfo(2, "Mug", "Kitchen", 500, 0, nil), NewProductInfo(3, "Vase", "Home", 900, 0, nil)}
	uc := NewWishlistUC(&memoryWishlists{wishlists: make(map[string]*domain.Wishlist)}, newFakeProducts(products...))
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, p := range products {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := uc.ToggleWishlist(ctx, "u1", id)
			assert.NoError(t, err)
		}(p.ID)
	}
	wg.Wait()

	view, err := uc.GetWishlist(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, view.Items, len(products))
}

func TestSettings_GetCreatesDefaults(t *testing.T) {
	uc := NewSettingsUC(&fakeSettingsRepo{}, &fakeOutbox{}, &fakeTx{})

	s, err := uc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStoreName, s.StoreName)
	assert.True(t, s.Notifications.LowStock)
	assert.False(t, s.Notifications.DailyReport)
}

func TestSettings_UpdatePartial(t *testing.T) {
	outbox := &fakeOutbox{}
	uc := NewSettingsUC(&fakeSettingsRepo{}, outbox, &fakeTx{})
	name := "  Corner Shop "
	daily := true

	s, err := uc.UpdateSettings(context.Background(), &UpdateSettingsReq{StoreName: &name, DailyReport: &daily})
	require.NoError(t, err)

	assert.Equal(t, "Corner Shop", s.StoreName)
	assert.Equal(t, domain.DefaultStoreDescription, s.StoreDescription)
	assert.True(t, s.Notifications.DailyReport)
	assert.True(t, s.Notifications.NewOrder)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, SettingsUpdated, outbox.events[0].EventType)
}

func TestSettings_UpdateRejectsEmptyName(t *testing.T) {
	tx := &fakeTx{}
	uc := NewSettingsUC(&fakeSettingsRepo{}, &fakeOutbox{}, tx)
	empty := " "

	_, err := uc.UpdateSettings(context.Background(), &UpdateSettingsReq{StoreName: &empty})
	require.ErrorIs(t, err, e.ErrStoreNameRequired)
	assert.Zero(t, tx.calls)
}
