package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	AddImages(ctx context.Context, productID int64, keys []string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type DiscountRepository interface {
	// Replace заменяет весь набор правил продукта и возвращает новую версию продукта.
	// found == false, если продукта нет.
	Replace(ctx context.Context, productID int64, tiers []domain.DiscountTier) (version int64, found bool, err error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	// SetProducts не перезаписывает запись, если версия продукта ниже уже известной кэшу.
	SetProducts(ctx context.Context, products []ProductInfo) error
	// InvalidateProducts удаляет записи и запоминает версии, ниже которых писать в кэш нельзя.
	InvalidateProducts(ctx context.Context, versions map[int64]int64) error
}

type SettingsRepository interface {
	// GetOrCreate возвращает настройки, создавая defaults при первом обращении.
	GetOrCreate(ctx context.Context, defaults *domain.Settings) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	MarkAsFailed(ctx context.Context, id int64, retryAt time.Time) error
}

// CartRepository: Get возвращает пустую корзину, если владельца ещё нет.
// Update атомарно применяет fn к текущей корзине; при changed == false запись не меняется.
// fn может быть вызвана повторно, если корзину параллельно изменил другой запрос.
type CartRepository interface {
	Get(ctx context.Context, owner string) (*domain.Cart, error)
	Update(ctx context.Context, owner string, fn func(cart *domain.Cart) (changed bool, err error)) (*domain.Cart, error)
	Delete(ctx context.Context, owner string) error
}

// WishlistRepository устроен так же, как CartRepository.
type WishlistRepository interface {
	Get(ctx context.Context, owner string) (*domain.Wishlist, error)
	Update(ctx context.Context, owner string, fn func(wishlist *domain.Wishlist) (changed bool, err error)) (*domain.Wishlist, error)
}

// AddressRepository хранит адресную книгу владельца.
type AddressRepository interface {
	Get(ctx context.Context, owner string) (*domain.AddressBook, error)
	Update(ctx context.Context, owner string, fn func(book *domain.AddressBook) (changed bool, err error)) (*domain.AddressBook, error)
}

type CouponRepository interface {
	Upsert(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	// GetByCode возвращает e.ErrCouponNotFound, если купона нет.
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// GetByID возвращает e.ErrOrderNotFound, если заказа нет.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByOwner(ctx context.Context, owner string, limit int) ([]*domain.Order, error)
	// UpdateStatus меняет статус, только если текущий равен from. false, если статус уже другой.
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) (bool, error)
}

// KeyValueStore: порт хранения корзин, избранного и адресов. Нет значения, значит ok == false.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Update читает и перезаписывает значение ключа атомарно относительно других Update/Set/Delete.
	// fn может вызываться повторно при конфликте; write == false оставляет значение как есть.
	Update(ctx context.Context, key string, ttl time.Duration, fn UpdateFunc) error
}

// UpdateFunc получает текущее значение ключа (ok == false, если его нет) и возвращает новое.
type UpdateFunc func(current []byte, ok bool) (next []byte, write bool, err error)

// TxManager выполняет fn в транзакции; репозитории берут её из контекста.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
