package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteCreatesTable(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, Config{Driver: "sqlite3", URL: "file::memory:?cache=shared"})
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'customers'`).Scan(&n))
	assert.Equal(t, 1, n)

	// running it again must be a no-op
	assert.NoError(t, EnsureSchema(ctx, conn))
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "postgres"})
	assert.Error(t, err)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "nope", URL: "x"})
	assert.Error(t, err)
}
