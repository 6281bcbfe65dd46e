package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// ProductConverter преобразует Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:         entity.ID,
		Name:       entity.Name,
		Price:      entity.Price,
		CategoryID: entity.CategoryID,
		Stock:      entity.Stock,
		Version:    entity.Version,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
		IsArchived: entity.IsArchived,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:         model.ID,
		Name:       model.Name,
		Price:      model.Price,
		CategoryID: model.CategoryID,
		Stock:      model.Stock,
		Version:    model.Version,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		IsArchived: model.IsArchived,
	}
}

// CategoryConverter преобразует Category между domain и моделью PostgreSQL.
type CategoryConverter struct{}

func (CategoryConverter) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{
		ID:         model.ID,
		Name:       model.Name,
		CreatedAt:  model.CreatedAt,
		IsArchived: model.IsArchived,
	}
}

// DiscountConverter преобразует правила оптовых скидок.
type DiscountConverter struct{}

// ToModels пропускает правила без MinQty или процента.
func (DiscountConverter) ToModels(productID int64, tiers []domain.DiscountTier) []DiscountTierModel {
	res := make([]DiscountTierModel, 0, len(tiers))
	for _, t := range tiers {
		if t.MinQty == nil || t.DiscountPercent == nil {
			continue
		}
		res = append(res, DiscountTierModel{
			ProductID:       productID,
			MinQty:          *t.MinQty,
			DiscountPercent: *t.DiscountPercent,
		})
	}
	return res
}

func (DiscountConverter) ToEntity(model DiscountTierModel) domain.DiscountTier {
	return domain.NewDiscountTier(model.MinQty, model.DiscountPercent)
}

// SettingsConverter преобразует настройки магазина.
type SettingsConverter struct{}

func (SettingsConverter) ToModel(entity *domain.Settings) *SettingsModel {
	return &SettingsModel{
		ID:                       entity.ID,
		StoreName:                entity.StoreName,
		StoreDescription:         entity.StoreDescription,
		EnableEmailNotifications: entity.EnableEmailNotifications,
		NotifyNewOrder:           entity.Notifications.NewOrder,
		NotifyLowStock:           entity.Notifications.LowStock,
		NotifyDailyReport:        entity.Notifications.DailyReport,
		CreatedAt:                entity.CreatedAt,
		UpdatedAt:                entity.UpdatedAt,
	}
}

func (SettingsConverter) ToEntity(model *SettingsModel) *domain.Settings {
	return &domain.Settings{
		ID:                       model.ID,
		StoreName:                model.StoreName,
		StoreDescription:         model.StoreDescription,
		EnableEmailNotifications: model.EnableEmailNotifications,
		Notifications: domain.NotificationSettings{
			NewOrder:    model.NotifyNewOrder,
			LowStock:    model.NotifyLowStock,
			DailyReport: model.NotifyDailyReport,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// OutboxEventConverter преобразует OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		AggregateID: entity.AggregateID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		Attempts:    entity.Attempts,
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		AggregateID: model.AggregateID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		Attempts:    model.Attempts,
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	res := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		res = append(res, c.ToEntity(m))
	}
	return res
}

type CouponConverter struct{}

func (CouponConverter) ToModel(entity *domain.Coupon) *CouponModel {
	return &CouponModel{
		Code:        entity.Code,
		Kind:        string(entity.Kind),
		Value:       entity.Value,
		MinSubtotal: entity.MinSubtotal,
		Active:      entity.Active,
		ExpiresAt:   entity.ExpiresAt,
		CreatedAt:   entity.CreatedAt,
	}
}

func (CouponConverter) ToEntity(model *CouponModel) *domain.Coupon {
	return &domain.Coupon{
		Code:        model.Code,
		Kind:        domain.CouponKind(model.Kind),
		Value:       model.Value,
		MinSubtotal: model.MinSubtotal,
		Active:      model.Active,
		ExpiresAt:   model.ExpiresAt,
		CreatedAt:   model.CreatedAt,
	}
}

type OrderConverter struct{}

func (OrderConverter) ToModel(entity *domain.Order) (*OrderModel, []OrderItemModel) {
	m := &OrderModel{
		ID:            entity.ID,
		Owner:         entity.Owner,
		Status:        string(entity.Status),
		PaymentMethod: string(entity.PaymentMethod),
		CouponCode:    entity.CouponCode,
		SubTotal:      entity.SubTotal,
		Discount:      entity.Discount,
		Total:         entity.Total,
		ShipFullName:  entity.ShippingAddress.FullName,
		ShipAddress:   entity.ShippingAddress.Street,
		ShipCity:      entity.ShippingAddress.City,
		ShipState:     entity.ShippingAddress.State,
		ShipZipCode:   entity.ShippingAddress.ZipCode,
		ShipPhone:     entity.ShippingAddress.Phone,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}

	items := make([]OrderItemModel, 0, len(entity.Items))
	for i, it := range entity.Items {
		items = append(items, OrderItemModel{
			OrderID:         entity.ID,
			Position:        i,
			ProductID:       it.ProductID,
			Name:            it.Name,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
			DiscountPercent: it.DiscountPercent,
		})
	}
	return m, items
}

// ToEntity ожидает позиции в порядке position.
func (OrderConverter) ToEntity(model *OrderModel, items []OrderItemModel) *domain.Order {
	o := &domain.Order{
		ID:            model.ID,
		Owner:         model.Owner,
		Status:        domain.OrderStatus(model.Status),
		Items:         make([]domain.OrderItem, 0, len(items)),
		PaymentMethod: domain.PaymentMethod(model.PaymentMethod),
		CouponCode:    model.CouponCode,
		SubTotal:      model.SubTotal,
		Discount:      model.Discount,
		Total:         model.Total,
		ShippingAddress: domain.ShippingAddress{
			FullName: model.ShipFullName,
			Street:   model.ShipAddress,
			City:     model.ShipCity,
			State:    model.ShipState,
			ZipCode:  model.ShipZipCode,
			Phone:    model.ShipPhone,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	for _, it := range items {
		o.Items = append(o.Items, domain.OrderItem{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
			DiscountPercent: it.DiscountPercent,
		})
	}
	return o
}
