package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// ProductInfoConverter преобразует ProductInfo в JSON-модель кэша и обратно.
type ProductInfoConverter struct{}

func (c ProductInfoConverter) ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel {
	model := &ProductInfoRedisModel{
		ID:           entity.ID,
		Name:         entity.Name,
		CategoryName: entity.CategoryName,
		Price:        entity.Price,
		Stock:        entity.Stock,
		Version:      entity.Version,
	}
	for _, t := range entity.QuantityDiscounts {
		if t.MinQty == nil || t.DiscountPercent == nil {
			continue
		}
		model.QuantityDiscounts = append(model.QuantityDiscounts, DiscountTierModel{
			MinQty:          *t.MinQty,
			DiscountPercent: *t.DiscountPercent,
		})
	}
	return model
}

func (c ProductInfoConverter) ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo {
	var tiers []domain.DiscountTier
	for _, t := range model.QuantityDiscounts {
		tiers = append(tiers, domain.NewDiscountTier(t.MinQty, t.DiscountPercent))
	}

	info := usecase.NewProductInfo(model.ID, model.Name, model.CategoryName, model.Price, model.Stock, tiers)
	info.Version = model.Version
	return &info
}

func (c ProductInfoConverter) ToArrRedisModel(entities []usecase.ProductInfo) []ProductInfoRedisModel {
	res := make([]ProductInfoRedisModel, 0, len(entities))
	for i := range entities {
		res = append(res, *c.ToRedisModel(&entities[i]))
	}
	return res
}
