package sqlserver

import (
	"database/sql"
	"testing"

	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func length(n int64) sql.NullInt64 { return sql.NullInt64{Int64: n, Valid: true} }

func TestDescribeColumn(t *testing.T) {
	tests := []struct {
		dataType string
		length   sql.NullInt64
		want     types.ColumnDescriptor
		category string
	}{
		{"nvarchar", length(40), types.ColumnDescriptor{Name: "c", DeclaredType: "NVARCHAR", MaxLength: 40}, "bounded-string"},
		{"nvarchar", length(-1), types.ColumnDescriptor{Name: "c", DeclaredType: "NVARCHAR(MAX)", MaxLength: -1}, "large-text"},
		{"varbinary", length(-1), types.ColumnDescriptor{Name: "c", DeclaredType: "VARBINARY(MAX)", MaxLength: -1}, "binary"},
		{"xml", length(-1), types.ColumnDescriptor{Name: "c", DeclaredType: "XML", MaxLength: -1}, "xml"},
		{"int", sql.NullInt64{}, types.ColumnDescriptor{Name: "c", DeclaredType: "INT", MaxLength: -1}, "int"},
		{"timestamp", length(8), types.ColumnDescriptor{Name: "c", DeclaredType: "ROWVERSION", MaxLength: 8}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.dataType, func(t *testing.T) {
			got := describeColumn("c", tt.dataType, tt.length)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.category, generator.Category(got.Name, got.DeclaredType))
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, "[Orders]", quoteIdentifier("Orders"))
}

func TestQueriesUseAtPlaceholders(t *testing.T) {
	a := New()
	query, args, err := a.qb.Select("x").From("t").Where("a = ?", 1).ToSql()
	assert.NoError(t, err)
	assert.Equal(t, "SELECT x FROM t WHERE a = @p1", query)
	assert.Equal(t, []interface{}{1}, args)
}

func TestCatalogQueriesScopedToDefaultSchema(t *testing.T) {
	a := New()

	query, args, err := a.columnsQuery("Orders")
	require.NoError(t, err)
	assert.Contains(t, query, "c.TABLE_NAME = @p1")
	assert.Contains(t, query, "c.TABLE_SCHEMA = SCHEMA_NAME()")
	assert.Equal(t, []interface{}{"Orders"}, args)

	query, args, err = a.primaryKeyQuery("Orders")
	require.NoError(t, err)
	assert.Contains(t, query, "tc.TABLE_SCHEMA = SCHEMA_NAME()")
	assert.Contains(t, args, "Orders")
	assert.Contains(t, args, "PRIMARY KEY")
}
