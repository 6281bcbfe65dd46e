package domain

// WishlistItem — снимок товара на момент добавления в избранное.
type WishlistItem struct {
	ProductID    int64
	Name         string
	Price        int64 // в копейках
	CategoryName string
}

// Wishlist — избранное покупателя, новые товары в начале списка.
type Wishlist struct {
	Owner string
	Items []WishlistItem
}

func NewWishlist(owner string) *Wishlist {
	return &Wishlist{Owner: owner, Items: make([]WishlistItem, 0)}
}

func (w *Wishlist) Contains(productID int64) bool {
	for _, it := range w.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Toggle удаляет товар, если он уже есть, иначе добавляет его в начало.
// Возвращает true, если товар теперь в избранном.
func (w *Wishlist) Toggle(item WishlistItem) bool {
	for i, it := range w.Items {
		if it.ProductID == item.ProductID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return false
		}
	}

	w.Items = append([]WishlistItem{item}, w.Items...)
	if len(w.Items) > WishlistLimit {
		w.Items = w.Items[:WishlistLimit]
	}
	return true
}
