package pgdb

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// txCtx открывает транзакцию на моке и кладёт её в контекст, как это делает tr.Manager.
func txCtx(t *testing.T, mock pgxmock.PgxPoolIface) context.Context {
	t.Helper()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	return tr.WithTx(context.Background(), tx)
}
