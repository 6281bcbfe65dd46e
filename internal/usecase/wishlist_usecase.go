package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// WishlistUseCase управляет избранным покупателя.
type WishlistUseCase struct {
	wishlistRepo WishlistRepository
	products     ProductsReader
}

func NewWishlistUC(wishlistRepo WishlistRepository, products ProductsReader) *WishlistUseCase {
	return &WishlistUseCase{wishlistRepo: wishlistRepo, products: products}
}

func (w *WishlistUseCase) GetWishlist(ctx context.Context, owner string) (*WishlistView, error) {
	const op = "WishlistUseCase.GetWishlist"

	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	wishlist, err := w.wishlistRepo.Get(ctx, owner)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &WishlistView{Owner: wishlist.Owner, Items: wishlist.Items}, nil
}

// ToggleWishlist добавляет товар в избранное или убирает его, если он уже там.
func (w *WishlistUseCase) ToggleWishlist(ctx context.Context, owner string, productID int64) (*WishlistView, error) {
	const op = "WishlistUseCase.ToggleWishlist"

	if err := validateItemReq(NewCartItemReq(owner, productID, 0)); err != nil {
		return nil, e.Wrap(op, err)
	}

	// снимок товара читается один раз, даже если Update повторит fn
	var item *domain.WishlistItem
	wishlist, err := w.wishlistRepo.Update(ctx, owner, func(wishlist *domain.Wishlist) (bool, error) {
		if wishlist.Contains(productID) {
			wishlist.Toggle(domain.WishlistItem{ProductID: productID})
			return true, nil
		}

		if item == nil {
			found, err := w.snapshot(ctx, productID)
			if err != nil {
				return false, err
			}
			item = found
		}
		wishlist.Toggle(*item)
		return true, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &WishlistView{Owner: wishlist.Owner, Items: wishlist.Items}, nil
}

func (w *WishlistUseCase) IsInWishlist(ctx context.Context, owner string, productID int64) (bool, error) {
	const op = "WishlistUseCase.IsInWishlist"

	if err := validateOwner(owner); err != nil {
		return false, e.Wrap(op, err)
	}

	wishlist, err := w.wishlistRepo.Get(ctx, owner)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return wishlist.Contains(productID), nil
}

func (w *WishlistUseCase) snapshot(ctx context.Context, productID int64) (*domain.WishlistItem, error) {
	res, err := w.products.GetProductsInfo(ctx, NewGetProductsReq([]int64{productID}))
	if err != nil {
		return nil, err
	}
	if len(res.Products) == 0 {
		return nil, e.ErrProductNotFound
	}

	pr := res.Products[0]
	return &domain.WishlistItem{ProductID: pr.ID, Name: pr.Name, Price: pr.Price, CategoryName: pr.CategoryName}, nil
}
