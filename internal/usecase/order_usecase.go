package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// maxOrdersListed ограничивает историю заказов в одном ответе.
const maxOrdersListed = 100

// OrderUseCase оформляет заказы по актуальным ценам каталога и ведёт их статусы.
type OrderUseCase struct {
	orderRepo   OrderRepository
	cartRepo    CartRepository
	addressRepo AddressRepository
	couponRepo  CouponRepository
	outboxRepo  OutboxRepository
	products    ProductsReader
	txManager   TxManager
	logger      logger.Logger
	now         func() time.Time
}

func NewOrderUC(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	addressRepo AddressRepository,
	couponRepo CouponRepository,
	outboxRepo OutboxRepository,
	products ProductsReader,
	txManager TxManager,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		couponRepo:  couponRepo,
		outboxRepo:  outboxRepo,
		products:    products,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// PlaceOrder пересчитывает позиции по каталогу, применяет купон и сохраняет заказ
// вместе с событием order.placed. Заказ из сохранённой корзины её очищает.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	if err := validateOwner(req.Owner); err != nil {
		return nil, e.Wrap(op, err)
	}
	payment, ok := domain.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidPaymentMethod)
	}

	items, fromCart, err := o.orderItems(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	shipping, err := resolveAddress(ctx, o.addressRepo, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	priced, err := priceItems(ctx, o.products, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(priced.NotFoundProducts) > 0 {
		return nil, e.Wrap(fmt.Sprintf("%s: %v", op, priced.NotFoundProducts), e.ErrProductNotFound)
	}

	order := &domain.Order{
		Owner:           req.Owner,
		Status:          domain.OrderPending,
		Items:           make([]domain.OrderItem, 0, len(priced.Lines)),
		ShippingAddress: shipping,
		PaymentMethod:   payment,
		SubTotal:        priced.Subtotal.Round(2),
		Discount:        decimal.Zero,
	}
	for _, line := range priced.Lines {
		if line.Product.Stock > 0 && line.Quantity > line.Product.Stock {
			return nil, e.Wrap(fmt.Sprintf("%s: product %d", op, line.Product.ID), e.ErrInsufficientStock)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:       line.Product.ID,
			Name:            line.Product.Name,
			Quantity:        line.Quantity,
			UnitPrice:       line.Pricing.UnitPrice.Round(2),
			TotalPrice:      line.Pricing.TotalPrice.Round(2),
			DiscountPercent: line.Pricing.DiscountPercent,
		})
	}

	if strings.TrimSpace(req.CouponCode) != "" {
		coupon, discount, err := couponDiscount(ctx, o.couponRepo, req.CouponCode, order.SubTotal, o.now())
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		order.CouponCode = coupon.Code
		order.Discount = discount
	}
	order.Total = domain.AfterDiscount(order.SubTotal, order.Discount)

	var created *domain.Order
	err = o.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = o.orderRepo.Create(ctx, order)
		if err != nil {
			return err
		}

		_, err = writeOutboxEvent(ctx, o.outboxRepo, OrderPlaced, created.ID, orderPayload(created))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if fromCart {
		// заказ уже сохранён, поэтому ошибка очистки только логируется
		if err := o.cartRepo.Delete(ctx, req.Owner); err != nil {
			o.logger.Warnf("%s: clear cart of %s after order %d: %v", op, req.Owner, created.ID, err)
		}
	}

	return created, nil
}

func (o *OrderUseCase) ListOrders(ctx context.Context, owner string) ([]*domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, err := o.orderRepo.ListByOwner(ctx, owner, maxOrdersListed)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// GetOrder: чужой заказ выглядит так же, как несуществующий.
func (o *OrderUseCase) GetOrder(ctx context.Context, owner string, id int64) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	order, err := o.ownOrder(ctx, owner, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// CancelOrder отменяет заказ покупателя, пока он не отправлен.
func (o *OrderUseCase) CancelOrder(ctx context.Context, owner string, id int64) (*domain.Order, error) {
	const op = "OrderUseCase.CancelOrder"

	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	order, err := o.transition(ctx, id, domain.OrderCancelled, func(order *domain.Order) error {
		if order.Owner != owner {
			return e.ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// UpdateOrderStatus: смена статуса из админ-панели по таблице переходов.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateOrderStatus"

	next, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	order, err := o.transition(ctx, id, next, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// transition меняет статус условным UPDATE: если статус успели сменить, возвращается ErrConcurrentUpdate.
func (o *OrderUseCase) transition(ctx context.Context, id int64, next domain.OrderStatus, check func(*domain.Order) error) (*domain.Order, error) {
	if id <= 0 {
		return nil, e.ErrOrderNotFound
	}

	var order *domain.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(current); err != nil {
				return err
			}
		}
		if !current.Status.CanBecome(next) {
			return e.Wrap(fmt.Sprintf("%s -> %s", current.Status, next), e.ErrInvalidOrderStatus)
		}

		updated, err := o.orderRepo.UpdateStatus(ctx, id, current.Status, next)
		if err != nil {
			return err
		}
		if !updated {
			return e.ErrConcurrentUpdate
		}

		_, err = writeOutboxEvent(ctx, o.outboxRepo, OrderStatusChanged, id, map[string]any{
			"owner": current.Owner,
			"from":  current.Status,
			"to":    next,
		})
		if err != nil {
			return err
		}

		current.Status = next
		order = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (o *OrderUseCase) ownOrder(ctx context.Context, owner string, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, e.ErrOrderNotFound
	}

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Owner != owner {
		return nil, e.ErrOrderNotFound
	}

	return order, nil
}

// orderItems возвращает позиции запроса, а если их нет, позиции корзины.
// Повторы одного товара складываются.
func (o *OrderUseCase) orderItems(ctx context.Context, req *PlaceOrderReq) ([]QuoteItem, bool, error) {
	items, fromCart := req.Items, false
	if len(items) == 0 {
		cart, err := o.cartRepo.Get(ctx, req.Owner)
		if err != nil {
			return nil, false, err
		}
		items, fromCart = cartItems(cart), true
	}
	if len(items) == 0 {
		return nil, false, e.ErrEmptyOrder
	}
	if len(items) > maxQuoteItems {
		return nil, false, e.ErrTooManyQuoteItems
	}

	merged := make([]QuoteItem, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		if it.ProductID <= 0 {
			return nil, false, e.ErrInvalidProductID
		}
		if it.Quantity < 1 {
			return nil, false, e.ErrInvalidQuantity
		}
		if i, ok := index[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}

	return merged, fromCart, nil
}

func orderPayload(o *domain.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"product_id":  it.ProductID,
			"quantity":    it.Quantity,
			"unit_price":  it.UnitPrice.StringFixed(2),
			"total_price": it.TotalPrice.StringFixed(2),
		})
	}

	return map[string]any{
		"owner":          o.Owner,
		"status":         o.Status,
		"payment_method": o.PaymentMethod,
		"coupon_code":    o.CouponCode,
		"sub_total":      o.SubTotal.StringFixed(2),
		"discount":       o.Discount.StringFixed(2),
		"total":          o.Total.StringFixed(2),
		"items":          items,
	}
}
