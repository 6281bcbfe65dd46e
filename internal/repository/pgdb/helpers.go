package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// querier: общее подмножество pgx.Tx и *pgxpool.Pool.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB: то, что репозиториям нужно от пула соединений (*pgxpool.Pool).
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// conn возвращает транзакцию из контекста, а без неё пул.
func conn(ctx context.Context, db DB) querier {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}
	return db
}

func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
