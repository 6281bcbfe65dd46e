package converter

type CartModel struct {
	Owner string          `json:"owner"`
	Items []CartItemModel `json:"items"`
}

type CartItemModel struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type WishlistModel struct {
	Owner string              `json:"owner"`
	Items []WishlistItemModel `json:"items"`
}

type WishlistItemModel struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	CategoryName string `json:"category_name"`
}

type AddressBookModel struct {
	Owner string         `json:"owner"`
	Items []AddressModel `json:"items"`
}

type AddressModel struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default"`
}
