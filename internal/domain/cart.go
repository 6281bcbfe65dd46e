package domain

const (
	// DefaultMaxLineQuantity ограничивает строку корзины, если остаток товара неизвестен.
	DefaultMaxLineQuantity = 999
	// WishlistLimit — максимальное число товаров в избранном.
	WishlistLimit = 50
)

// CartItem — строка корзины.
type CartItem struct {
	ProductID int64
	Quantity  int64
}

// Cart — корзина покупателя. Порядок строк соответствует порядку добавления.
type Cart struct {
	Owner string
	Items []CartItem
}

func NewCart(owner string) *Cart {
	return &Cart{Owner: owner, Items: make([]CartItem, 0)}
}

// Add добавляет товар или увеличивает количество существующей строки.
// Итоговое количество не превышает limit.
func (c *Cart) Add(productID, quantity, limit int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = min(c.Items[i].Quantity+quantity, limit)
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: min(quantity, limit)})
}

// SetQuantity меняет количество; значение меньше 1 удаляет строку.
// Возвращает false, если товара в корзине нет.
func (c *Cart) SetQuantity(productID, quantity int64) bool {
	if quantity < 1 {
		return c.Remove(productID)
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (c *Cart) Remove(productID int64) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Count возвращает общее количество единиц товара в корзине.
func (c *Cart) Count() int64 {
	var n int64
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// LineLimit: максимум единиц товара в одной строке.
func LineLimit(stock int64) int64 {
	if stock > 0 {
		return stock
	}
	return DefaultMaxLineQuantity
}
