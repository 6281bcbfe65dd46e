package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

var errBoom = errors.New("boom")

type fakeTx struct {
	calls int
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeCatalog struct {
	mu         sync.Mutex
	products   map[int64]ProductInfo
	images     map[int64][]string
	categories map[string]int64
	nextID     int64
	upsertErr  error
	queries    [][]int64
}

func newFakeCatalog(products ...ProductInfo) *fakeCatalog {
	c := &fakeCatalog{
		products:   make(map[int64]ProductInfo),
		images:     make(map[int64][]string),
		categories: make(map[string]int64),
		nextID:     100,
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *fakeCatalog) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.categories[category.Name]
	if !ok {
		id = int64(len(c.categories) + 1)
		c.categories[category.Name] = id
	}
	return &domain.Category{ID: id, Name: category.Name}, nil
}

func (c *fakeCatalog) Upsert(_ context.Context, product *domain.Product) (*UpsertProductRes, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.upsertErr != nil {
		return nil, c.upsertErr
	}
	for id, p := range c.products {
		if p.Name == product.Name {
			p.Price, p.Stock = product.Price, product.Stock
			c.products[id] = p
			saved := *product
			saved.ID = id
			return NewUpsertProductRes(&saved, false), nil
		}
	}

	c.nextID++
	c.products[c.nextID] = NewProductInfo(c.nextID, product.Name, "", product.Price, product.Stock, nil)
	saved := *product
	saved.ID = c.nextID
	return NewUpsertProductRes(&saved, false), nil
}

func (c *fakeCatalog) GetProductsInfo(_ context.Context, ids []int64) ([]ProductInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queries = append(c.queries, ids)
	res := make([]ProductInfo, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.products[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func (c *fakeCatalog) AddImages(_ context.Context, productID int64, keys []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.images[productID] = append(c.images[productID], keys...)
	return nil
}

func (c *fakeCatalog) Replace(_ context.Context, productID int64, tiers []domain.DiscountTier) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[productID]
	if !ok {
		return 0, false, nil
	}
	p.QuantityDiscounts = tiers
	p.Version++
	c.products[productID] = p
	return p.Version, true, nil
}

type fakeOutbox struct {
	mu     sync.Mutex
	events []*OutboxEvent
	err    error
}

func (o *fakeOutbox) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.err != nil {
		return nil, o.err
	}
	event.ID = int64(len(o.events) + 1)
	o.events = append(o.events, event)
	return event, nil
}

func (o *fakeOutbox) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (o *fakeOutbox) MarkAsProcessed(context.Context, int64) error { return nil }

func (o *fakeOutbox) MarkAsFailed(context.Context, int64, time.Time) error { return nil }

type fakeImages struct {
	mu       sync.Mutex
	uploaded []string
	cleaned  []string
}

func (f *fakeImages) UploadImages(_ context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		keys = append(keys, req.Name+"/"+img.Name)
	}
	f.uploaded = append(f.uploaded, keys...)
	return NewUploadImagesRes(keys), nil
}

func (f *fakeImages) CleanupImages(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cleaned = append(f.cleaned, keys...)
}

type fakeCache struct {
	mu          sync.Mutex
	data        map[int64]ProductInfo
	floors      map[int64]int64
	getErr      error
	invalidated []int64
	sets        chan []ProductInfo
	// gate, если задан, задерживает SetProducts до закрытия канала
	gate chan struct{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data:   make(map[int64]ProductInfo),
		floors: make(map[int64]int64),
		sets:   make(chan []ProductInfo, 10),
	}
}

func (f *fakeCache) GetProducts(_ context.Context, ids []int64) (map[int64]ProductInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	res := make(map[int64]ProductInfo)
	for _, id := range ids {
		if p, ok := f.data[id]; ok {
			res[id] = p
		}
	}
	return res, nil
}

func (f *fakeCache) SetProducts(_ context.Context, products []ProductInfo) error {
	if f.gate != nil {
		<-f.gate
	}

	f.mu.Lock()
	for _, p := range products {
		if p.Version < f.floors[p.ID] {
			continue
		}
		f.data[p.ID] = p
	}
	f.mu.Unlock()

	f.sets <- products
	return nil
}

func (f *fakeCache) InvalidateProducts(_ context.Context, versions map[int64]int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, v := range versions {
		delete(f.data, id)
		f.floors[id] = max(f.floors[id], v)
		f.invalidated = append(f.invalidated, id)
	}
	return nil
}

type fakeProducts struct {
	products map[int64]ProductInfo
}

func newFakeProducts(products ...ProductInfo) *fakeProducts {
	f := &fakeProducts{products: make(map[int64]ProductInfo)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProducts) GetProductsInfo(_ context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	var (
		found    []ProductInfo
		notFound []int64
	)
	for _, id := range req.IDs {
		if p, ok := f.products[id]; ok {
			found = append(found, p)
		} else {
			notFound = append(notFound, id)
		}
	}
	return NewGetProductsRes(found, notFound), nil
}

type memoryCarts struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newMemoryCarts() *memoryCarts {
	return &memoryCarts{carts: make(map[string]*domain.Cart)}
}

func (m *memoryCarts) Get(_ context.Context, owner string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(owner), nil
}

func (m *memoryCarts) get(owner string) *domain.Cart {
	if c, ok := m.carts[owner]; ok {
		cp := *c
		cp.Items = append([]domain.CartItem(nil), c.Items...)
		return &cp
	}
	return domain.NewCart(owner)
}

func (m *memoryCarts) Update(_ context.Context, owner string, fn func(*domain.Cart) (bool, error)) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart := m.get(owner)
	changed, err := fn(cart)
	if err != nil {
		return nil, err
	}
	if changed {
		m.carts[owner] = cart
	}
	return m.get(owner), nil
}

func (m *memoryCarts) Delete(_ context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, owner)
	return nil
}

type memoryWishlists struct {
	mu        sync.Mutex
	wishlists map[string]*domain.Wishlist
}

func (m *memoryWishlists) Get(_ context.Context, owner string) (*domain.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(owner), nil
}

func (m *memoryWishlists) get(owner string) *domain.Wishlist {
	if w, ok := m.wishlists[owner]; ok {
		cp := *w
		cp.Items = append([]domain.WishlistItem(nil), w.Items...)
		return &cp
	}
	return domain.NewWishlist(owner)
}

func (m *memoryWishlists) Update(_ context.Context, owner string, fn func(*domain.Wishlist) (bool, error)) (*domain.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.get(owner)
	changed, err := fn(w)
	if err != nil {
		return nil, err
	}
	if changed {
		m.wishlists[owner] = w
	}
	return m.get(owner), nil
}

type fakeSettingsRepo struct {
	current *domain.Settings
}

func (f *fakeSettingsRepo) GetOrCreate(_ context.Context, defaults *domain.Settings) (*domain.Settings, error) {
	if f.current == nil {
		defaults.ID = 1
		f.current = defaults
	}
	cp := *f.current
	return &cp, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, settings *domain.Settings) (*domain.Settings, error) {
	cp := *settings
	f.current = &cp
	return settings, nil
}

type memoryAddresses struct {
	mu    sync.Mutex
	books map[string]*domain.AddressBook
}

func newMemoryAddresses() *memoryAddresses {
	return &memoryAddresses{books: make(map[string]*domain.AddressBook)}
}

func (m *memoryAddresses) Get(_ context.Context, owner string) (*domain.AddressBook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(owner), nil
}

func (m *memoryAddresses) get(owner string) *domain.AddressBook {
	if b, ok := m.books[owner]; ok {
		cp := *b
		cp.Addresses = append([]domain.Address(nil), b.Addresses...)
		return &cp
	}
	return domain.NewAddressBook(owner)
}

func (m *memoryAddresses) Update(_ context.Context, owner string, fn func(*domain.AddressBook) (bool, error)) (*domain.AddressBook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.get(owner)
	changed, err := fn(b)
	if err != nil {
		return nil, err
	}
	if changed {
		m.books[owner] = b
	}
	return m.get(owner), nil
}

type fakeCoupons struct {
	coupons map[string]*domain.Coupon
}

func newFakeCoupons(coupons ...*domain.Coupon) *fakeCoupons {
	f := &fakeCoupons{coupons: make(map[string]*domain.Coupon)}
	for _, c := range coupons {
		f.coupons[c.Code] = c
	}
	return f
}

func (f *fakeCoupons) Upsert(_ context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	cp := *c
	cp.CreatedAt = time.Now()
	f.coupons[c.Code] = &cp
	return &cp, nil
}

func (f *fakeCoupons) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, e.ErrCouponNotFound
	}
	cp := *c
	return &cp, nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
	nextID int64
	// stale заставляет UpdateStatus сообщить, что статус уже сменили.
	stale bool
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: make(map[int64]*domain.Order)}
}

func (f *fakeOrders) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	cp := *order
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.orders[cp.ID] = &cp
	res := cp
	return &res, nil
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) ListByOwner(_ context.Context, owner string, limit int) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var res []*domain.Order
	for id := f.nextID; id > 0 && len(res) < limit; id-- {
		if o, ok := f.orders[id]; ok && o.Owner == owner {
			cp := *o
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id int64, from, to domain.OrderStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[id]
	if !ok || o.Status != from || f.stale {
		return false, nil
	}
	o.Status = to
	return true, nil
}
