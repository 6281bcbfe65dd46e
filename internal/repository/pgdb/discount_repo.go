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

// DiscountRepo хранит правила оптовых скидок в таблице quantity_discounts.
type DiscountRepo struct {
	db   DB
	conv converter.DiscountConverter
}

func NewDiscountRepo(db DB) *DiscountRepo {
	return &DiscountRepo{db: db}
}

// Replace поднимает версию продукта (это же блокирует его строку) и заменяет весь набор правил.
func (d *DiscountRepo) Replace(ctx context.Context, productID int64, tiers []domain.DiscountTier) (int64, bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	var version int64
	err = tx.QueryRow(ctx, `
		UPDATE products SET version = version + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING version
	`, productID).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM quantity_discounts WHERE product_id = $1`, productID); err != nil {
		return 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	models := d.conv.ToModels(productID, tiers)
	if len(models) == 0 {
		return version, true, nil
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"quantity_discounts"},
		[]string{"product_id", "min_qty", "discount_percent"},
		pgx.CopyFromSlice(len(models), func(i int) ([]any, error) {
			return []any{models[i].ProductID, models[i].MinQty, models[i].DiscountPercent}, nil
		}),
	)
	if err != nil {
		return 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return version, true, nil
}
