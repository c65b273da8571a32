//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) *Adapter {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("tablefill"),
		tcpostgres.WithUsername("tablefill"),
		tcpostgres.WithPassword("tablefill"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	adapter := New(common.WithChunkSize(3))
	require.NoError(t, adapter.Connect(ctx, url))
	t.Cleanup(func() { adapter.Close() })
	require.NoError(t, adapter.Ping(ctx))
	return adapter
}

func TestPostgresSchemaAndInsert(t *testing.T) {
	adapter := startPostgres(t)
	ctx := context.Background()

	_, err := adapter.pool.Exec(ctx, `
		CREATE TABLE accounts (
			id         SERIAL PRIMARY KEY,
			code       INTEGER NOT NULL UNIQUE,
			name       VARCHAR(12) NOT NULL,
			status     VARCHAR(20) DEFAULT 'active',
			active     BOOLEAN,
			ref        UUID,
			created_at TIMESTAMP DEFAULT now(),
			payload    BYTEA,
			meta       JSONB
		)`)
	require.NoError(t, err)

	schema, err := adapter.GetTableSchema(ctx, "accounts")
	require.NoError(t, err)

	assert.True(t, schema.IsIdentity("id"))
	assert.True(t, schema.IsPrimaryKey("id"))
	name, ok := schema.Column("name")
	require.True(t, ok)
	assert.Equal(t, "NVARCHAR", name.DeclaredType)
	assert.Equal(t, 12, name.MaxLength)
	status, ok := schema.Default("status")
	require.True(t, ok)
	assert.Equal(t, "active", status.Str)
	_, ok = schema.Default("created_at")
	assert.True(t, ok)

	gen := generator.New()
	rows := make([]types.Row, 0, 7)
	for i := 0; i < 7; i++ {
		row := types.Row{{Name: "code", Value: types.IntValue(int64(100000 + i))}}
		for _, colName := range []string{"name", "active", "ref", "payload"} {
			col, _ := schema.Column(colName)
			row = append(row, types.Field{Name: colName, Value: gen.Generate(col.Name, col.DeclaredType, col.MaxLength)})
		}
		rows = append(rows, row)
	}

	inserted, err := adapter.InsertRows(ctx, "accounts", rows)
	require.NoError(t, err)
	assert.Equal(t, int64(7), inserted)

	var count int
	require.NoError(t, adapter.pool.QueryRow(ctx, "SELECT count(*) FROM accounts WHERE status = 'active'").Scan(&count))
	assert.Equal(t, 7, count)

	tables, err := adapter.GetAllTableNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, tables, "accounts")

	_, err = adapter.GetTableSchema(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrTableNotFound)
}

func TestPostgresInsertRollsBack(t *testing.T) {
	adapter := startPostgres(t)
	ctx := context.Background()

	_, err := adapter.pool.Exec(ctx, `CREATE TABLE items (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	rows := []types.Row{
		{{Name: "id", Value: types.IntValue(1)}},
		{{Name: "id", Value: types.IntValue(2)}},
		{{Name: "id", Value: types.IntValue(3)}},
		{{Name: "id", Value: types.IntValue(1)}},
	}
	_, err = adapter.InsertRows(ctx, "items", rows)
	require.Error(t, err)

	var count int
	require.NoError(t, adapter.pool.QueryRow(ctx, "SELECT count(*) FROM items").Scan(&count))
	assert.Equal(t, 0, count)
}
