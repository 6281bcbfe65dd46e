package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	db        DB
	conv      converter.ProductConverter
	discounts converter.DiscountConverter
}

func NewProductRepo(db DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Upsert идемпотентно создаёт или обновляет продукт по уникальному имени.
// Запись обновляется только при изменении цены, категории или остатка.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*usecase.UpsertProductRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)

	// VALUES ($1, $2, $3, $4) name, price, category_id, stock
	query := `
		WITH upsert AS (
		INSERT INTO products (name, price, category_id, stock)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name)
		DO UPDATE SET
			price = EXCLUDED.price,
			category_id = EXCLUDED.category_id,
			stock = EXCLUDED.stock,
			version = products.version + 1,
			updated_at = NOW()
		WHERE
			products.price IS DISTINCT FROM EXCLUDED.price OR
			products.category_id IS DISTINCT FROM EXCLUDED.category_id OR
			products.stock IS DISTINCT FROM EXCLUDED.stock
		RETURNING
			id, name, price, category_id, stock, version, created_at, updated_at, is_archived
		)
		SELECT
			id, name, price, category_id, stock, version, created_at, updated_at, is_archived,
			false AS no_changes
		FROM upsert

		UNION ALL

		SELECT
			id, name, price, category_id, stock, version, created_at, updated_at, is_archived,
			true AS no_changes
		FROM products
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var noChanges bool
	err = tx.QueryRow(ctx, query, model.Name, model.Price, model.CategoryID, model.Stock).
		Scan(
			&model.ID, &model.Name, &model.Price, &model.CategoryID, &model.Stock, &model.Version,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived, &noChanges,
		)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewUpsertProductRes(p.conv.ToEntity(model), noChanges), nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам,
// включая название категории, оптовые скидки и версию.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	db := conn(ctx, p.db)

	query := `
		SELECT pr.id, pr.name, pr.price, pr.stock, pr.version, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1) AND NOT pr.is_archived
	`

	rows, err := db.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.Version, &product.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		index[product.ID] = len(result)
		result = append(result, product)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(result) == 0 {
		return result, nil
	}

	tierRows, err := db.Query(ctx, `
		SELECT product_id, min_qty, discount_percent
		FROM quantity_discounts
		WHERE product_id = ANY($1)
		ORDER BY product_id, min_qty
	`, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer tierRows.Close()

	for tierRows.Next() {
		var model converter.DiscountTierModel
		if err := tierRows.Scan(&model.ProductID, &model.MinQty, &model.DiscountPercent); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if i, ok := index[model.ProductID]; ok {
			result[i].QuantityDiscounts = append(result[i].QuantityDiscounts, p.discounts.ToEntity(model))
		}
	}
	if err := tierRows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// AddImages привязывает ключи изображений из MinIO к продукту.
func (p *ProductRepo) AddImages(ctx context.Context, productID int64, keys []string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_images (product_id, object_key)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (object_key) DO NOTHING
	`

	if _, err := tx.Exec(ctx, query, productID, keys); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
