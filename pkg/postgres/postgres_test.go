package postgres

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	c := &cfg.PGDBCfg{
		Host:     "db",
		Port:     "5432",
		User:     "shop",
		Password: "p@ss word",
		DBName:   "storefront",
		SSLMode:  "disable",
	}

	dsn := DSN(c)
	assert.Equal(t, "postgres://shop:p%40ss%20word@db:5432/storefront?sslmode=disable", dsn)

	parsed, err := pgx.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.Host)
	assert.Equal(t, uint16(5432), parsed.Port)
	assert.Equal(t, "p@ss word", parsed.Password)
	assert.Equal(t, "storefront", parsed.Database)
}
