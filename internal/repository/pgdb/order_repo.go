package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

const orderColumns = `id, owner, status, payment_method, coupon_code, sub_total, discount, total,
	ship_full_name, ship_address, ship_city, ship_state, ship_zip_code, ship_phone, created_at, updated_at`

const orderItemColumns = `order_id, position, product_id, name, quantity, unit_price, total_price, discount_percent`

// OrderRepo хранит заказы в orders и их позиции в order_items.
type OrderRepo struct {
	db   DB
	conv converter.OrderConverter
}

func NewOrderRepo(db DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create пишет заказ и позиции в транзакции из контекста.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	m, _ := o.conv.ToModel(order)
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (owner, status, payment_method, coupon_code, sub_total, discount, total,
			ship_full_name, ship_address, ship_city, ship_state, ship_zip_code, ship_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, m.Owner, m.Status, m.PaymentMethod, m.CouponCode, m.SubTotal, m.Discount, m.Total,
		m.ShipFullName, m.ShipAddress, m.ShipCity, m.ShipState, m.ShipZipCode, m.ShipPhone,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created := *order
	created.ID, created.CreatedAt, created.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	_, items := o.conv.ToModel(&created)

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "position", "product_id", "name", "quantity", "unit_price", "total_price", "discount_percent"},
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			it := items[i]
			return []any{it.OrderID, it.Position, it.ProductID, it.Name, it.Quantity, it.UnitPrice, it.TotalPrice, it.DiscountPercent}, nil
		}),
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	db := conn(ctx, o.db)

	m, err := scanOrder(db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrOrderNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := o.items(ctx, db, []int64{id})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(m, items[id]), nil
}

// ListByOwner: новые заказы первыми.
func (o *OrderRepo) ListByOwner(ctx context.Context, owner string, limit int) ([]*domain.Order, error) {
	db := conn(ctx, o.db)

	rows, err := db.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE owner = $1 ORDER BY id DESC LIMIT $2`, owner, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var (
		models []*converter.OrderModel
		ids    []int64
	)
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, m)
		ids = append(ids, m.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orders := make([]*domain.Order, 0, len(models))
	if len(models) == 0 {
		return orders, nil
	}

	items, err := o.items(ctx, db, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	for _, m := range models {
		orders = append(orders, o.conv.ToEntity(m, items[m.ID]))
	}

	return orders, nil
}

// UpdateStatus меняет статус, только если он всё ещё равен from.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) (bool, error) {
	tag, err := conn(ctx, o.db).Exec(ctx, `
		UPDATE orders SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, id, string(from), string(to))
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() == 1, nil
}

func (o *OrderRepo) items(ctx context.Context, db querier, ids []int64) (map[int64][]converter.OrderItemModel, error) {
	rows, err := db.Query(ctx, `
		SELECT `+orderItemColumns+` FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[int64][]converter.OrderItemModel, len(ids))
	for rows.Next() {
		var it converter.OrderItemModel
		if err := rows.Scan(&it.OrderID, &it.Position, &it.ProductID, &it.Name, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &it.DiscountPercent); err != nil {
			return nil, err
		}
		res[it.OrderID] = append(res[it.OrderID], it)
	}

	return res, rows.Err()
}

func scanOrder(row pgx.Row) (*converter.OrderModel, error) {
	var m converter.OrderModel
	err := row.Scan(
		&m.ID, &m.Owner, &m.Status, &m.PaymentMethod, &m.CouponCode, &m.SubTotal, &m.Discount, &m.Total,
		&m.ShipFullName, &m.ShipAddress, &m.ShipCity, &m.ShipState, &m.ShipZipCode, &m.ShipPhone,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
