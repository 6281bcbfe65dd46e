package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

const couponColumns = `code, kind, value, min_subtotal, active, expires_at, created_at`

type CouponRepo struct {
	db   DB
	conv converter.CouponConverter
}

func NewCouponRepo(db DB) *CouponRepo {
	return &CouponRepo{db: db}
}

// Upsert создаёт купон или перезаписывает условия купона с тем же кодом.
func (c *CouponRepo) Upsert(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	m := c.conv.ToModel(coupon)

	row := conn(ctx, c.db).QueryRow(ctx, `
		INSERT INTO coupons (code, kind, value, min_subtotal, active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO UPDATE SET
			kind = EXCLUDED.kind,
			value = EXCLUDED.value,
			min_subtotal = EXCLUDED.min_subtotal,
			active = EXCLUDED.active,
			expires_at = EXCLUDED.expires_at
		RETURNING `+couponColumns,
		m.Code, m.Kind, m.Value, m.MinSubtotal, m.Active, m.ExpiresAt)

	saved, err := c.scan(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return saved, nil
}

func (c *CouponRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	row := conn(ctx, c.db).QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code)

	coupon, err := c.scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(code, e.ErrCouponNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return coupon, nil
}

func (c *CouponRepo) scan(row pgx.Row) (*domain.Coupon, error) {
	var m converter.CouponModel
	if err := row.Scan(&m.Code, &m.Kind, &m.Value, &m.MinSubtotal, &m.Active, &m.ExpiresAt, &m.CreatedAt); err != nil {
		return nil, err
	}

	return c.conv.ToEntity(&m), nil
}
