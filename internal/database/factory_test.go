package database

import (
	"context"
	"testing"

	"github.com/Rana718/tablefill/internal/database/mysql"
	"github.com/Rana718/tablefill/internal/database/postgres"
	"github.com/Rana718/tablefill/internal/database/sqlite"
	"github.com/Rana718/tablefill/internal/database/sqlserver"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapter(t *testing.T) {
	tests := []struct {
		provider string
		want     Adapter
	}{
		{"postgresql", &postgres.Adapter{}},
		{"postgres", &postgres.Adapter{}},
		{"mysql", &mysql.Adapter{}},
		{"sqlite", &sqlite.Adapter{}},
		{"sqlite3", &sqlite.Adapter{}},
		{"sqlserver", &sqlserver.Adapter{}},
		{"mssql", &sqlserver.Adapter{}},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			got, err := NewAdapter(tt.provider)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}

	_, err := NewAdapter("oracle")
	assert.Error(t, err)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	a, err := NewAdapter("sqlite", WithChunkSize(10))
	require.NoError(t, err)
	require.NoError(t, a.Connect(ctx, "file:factory_roundtrip?mode=memory&cache=shared"))
	defer a.Close()

	_, err = a.GetTableSchema(ctx, "missing")
	assert.ErrorIs(t, err, ErrTableNotFound)

	_, err = a.InsertRows(ctx, "bad name", []types.Row{{{Name: "x", Value: types.IntValue(1)}}})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
