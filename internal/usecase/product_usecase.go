package usecase

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

const maxDiscountTiers = 20

// ProductUseCase реализует бизнес-логику каталога: регистрацию продуктов, оптовые скидки и чтение с кэшем.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	discountRepo DiscountRepository
	outboxRepo   OutboxRepository
	txManager    TxManager
	imagesInfra  ImagesInfra
	logger       logger.Logger
	cacheRepo    CacheRepository
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	discountRepo DiscountRepository,
	outboxRepo OutboxRepository,
	txManager TxManager,
	imagesInfra ImagesInfra,
	logger logger.Logger,
	cacheRepo CacheRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		discountRepo: discountRepo,
		outboxRepo:   outboxRepo,
		txManager:    txManager,
		imagesInfra:  imagesInfra,
		logger:       logger,
		cacheRepo:    cacheRepo,
	}
}

// RegisterNewProduct обрабатывает добавление продукта с категорией, скидками и изображениями.
// Продукт, скидки и событие outbox пишутся в одной транзакции.
func (p *ProductUseCase) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*RegisterProductRes, error) {
	const op = "ProductUseCase.RegisterNewProduct"

	if err := p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		res       *RegisterProductRes
	)

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		// идемпотентное создание категории
		category, err := p.createCategory(ctx, req.CategoryName)
		if err != nil {
			return err
		}

		// идемпотентное создание продукта
		upsert, err := p.productRepo.Upsert(ctx, domain.NewProduct(req.Name, req.Price, category.ID, req.Stock))
		if err != nil {
			return err
		}
		product := upsert.Product

		version, _, err := p.discountRepo.Replace(ctx, product.ID, req.QuantityDiscounts)
		if err != nil {
			return err
		}

		// Сохранение изображений в MinIO
		if len(req.Images) > 0 {
			imagesRes, err = p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Name, req.Images))
			if err != nil {
				return err
			}

			if err := p.productRepo.AddImages(ctx, product.ID, imagesRes.ImagesKeys); err != nil {
				return err
			}
		}

		event, err := p.writeEvent(ctx, ProductUpserted, product.ID, productEventData(product, req.CategoryName, req.QuantityDiscounts))
		if err != nil {
			return err
		}

		res = &RegisterProductRes{ProductID: product.ID, EventID: event.EventID, NoChanges: upsert.NoChanges, version: version}
		return nil
	})
	if err != nil {
		// Транзакция откатилась, изображения в MinIO остались без продукта
		if imagesRes != nil {
			p.logger.Warnf(
				"Cleaning up orphaned images after transaction failure. product_name: %s, error: %v",
				req.Name,
				e.Wrap(op, err),
			)
			p.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
		}

		return nil, e.Wrap(op, err)
	}

	p.evict(ctx, op, res.ProductID, res.version)

	return res, nil
}

// SetQuantityDiscounts заменяет набор оптовых скидок продукта.
func (p *ProductUseCase) SetQuantityDiscounts(ctx context.Context, req *SetDiscountsReq) (*OutboxEvent, error) {
	const op = "ProductUseCase.SetQuantityDiscounts"

	if req.ProductID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}
	if err := validateTiers(req.Tiers); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		event   *OutboxEvent
		version int64
	)
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		var (
			found bool
			err   error
		)
		version, found, err = p.discountRepo.Replace(ctx, req.ProductID, req.Tiers)
		if err != nil {
			return err
		}
		if !found {
			return e.ErrProductNotFound
		}

		event, err = p.writeEvent(ctx, ProductDiscountsChanged, req.ProductID, map[string]any{
			"product_id":         req.ProductID,
			"quantity_discounts": tiersEventData(req.Tiers),
		})
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.evict(ctx, op, req.ProductID, version)

	return event, nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам.
func (p *ProductUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "ProductUseCase.GetProductsInfo"

	// Валидация
	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	// Поиск продуктов в кэше
	cacheProductsMap, err := p.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		cacheProductsMap = nil
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	// Получение продуктов из БД
	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = p.productRepo.GetProductsInfo(ctx, slices.Compact(slices.Sorted(slices.Values(nonCacheable))))
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление продуктов в кэш
		if len(productsInfoFromDB) > 0 {
			go func(products []ProductInfo) {
				bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
				defer cancel()

				if err := p.cacheRepo.SetProducts(bgCtx, products); err != nil {
					p.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
				}
			}(productsInfoFromDB)
		}
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.ID] = productInfo
	}

	// Формирование результата в порядке запроса
	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// createCategory идемпотентно создаёт категорию по имени.
func (p *ProductUseCase) createCategory(ctx context.Context, categoryName string) (*domain.Category, error) {
	return p.categoryRepo.Create(ctx, domain.NewCategory(strings.TrimSpace(categoryName)))
}

func (p *ProductUseCase) writeEvent(ctx context.Context, eventType OutboxEventType, aggregateID int64, data any) (*OutboxEvent, error) {
	return writeOutboxEvent(ctx, p.outboxRepo, eventType, aggregateID, data)
}

// evict удаляет продукт из кэша после коммита. Чтения, начатые до коммита, несут
// версию ниже version и в кэш уже не попадут. Ошибка кэша не ломает запрос.
func (p *ProductUseCase) evict(ctx context.Context, op string, productID, version int64) {
	if err := p.cacheRepo.InvalidateProducts(ctx, map[int64]int64{productID: version}); err != nil {
		p.logger.Warnf("Failed to invalidate products: %v", e.Wrap(op, err))
	}
}

// validateProduct проверяет корректность входных данных запроса на добавление продукта.
func (p *ProductUseCase) validateProduct(req *AddNewProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.CategoryName) == "" {
		return e.ErrCategoryRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.Stock < 0 {
		return e.ErrInvalidQuantity
	}

	return validateTiers(req.QuantityDiscounts)
}

// validateTiers проверяет скидки перед записью в каталог: MinQty >= 1, процент в [0, 100].
func validateTiers(tiers []domain.DiscountTier) error {
	if len(tiers) > maxDiscountTiers {
		return e.ErrTooManyDiscountTiers
	}

	for _, t := range tiers {
		if t.MinQty == nil || t.DiscountPercent == nil {
			return e.ErrInvalidDiscountTier
		}
		pct := *t.DiscountPercent
		if *t.MinQty < 1 || math.IsNaN(pct) || pct < 0 || pct > 100 {
			return e.ErrInvalidDiscountTier
		}
	}

	return nil
}

func productEventData(product *domain.Product, categoryName string, tiers []domain.DiscountTier) map[string]any {
	return map[string]any{
		"product_id":         product.ID,
		"name":               product.Name,
		"category":           categoryName,
		"price":              product.Price,
		"stock":              product.Stock,
		"quantity_discounts": tiersEventData(tiers),
	}
}

func tiersEventData(tiers []domain.DiscountTier) []map[string]any {
	res := make([]map[string]any, 0, len(tiers))
	for _, t := range tiers {
		res = append(res, map[string]any{
			"min_qty":          *t.MinQty,
			"discount_percent": *t.DiscountPercent,
		})
	}
	return res
}
