package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/types"
)

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}
	return tables, rows.Err()
}

func (m *Adapter) GetTableSchema(ctx context.Context, table string) (*types.TableSchema, error) {
	if err := common.ValidateIdentifier(table); err != nil {
		return nil, err
	}

	query, args, err := m.qb.
		Select("column_name", "data_type", "column_type", "character_maximum_length", "column_default", "extra", "column_key").
		From("information_schema.columns").
		Where("table_schema = DATABASE()").
		Where(squirrel.Eq{"table_name": table}).
		OrderBy("ordinal_position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	schema := types.NewTableSchema(table)
	for rows.Next() {
		var name, dataType, columnType, extra, columnKey string
		var maxLength sql.NullInt64
		var columnDefault sql.NullString

		if err := rows.Scan(&name, &dataType, &columnType, &maxLength, &columnDefault, &extra, &columnKey); err != nil {
			return nil, err
		}

		col := types.ColumnDescriptor{
			Name:         name,
			DeclaredType: canonicalType(dataType, columnType),
			MaxLength:    -1,
		}
		if maxLength.Valid {
			col.MaxLength = int(maxLength.Int64)
		}
		schema.AddColumn(col)

		if strings.Contains(strings.ToLower(extra), "auto_increment") {
			schema.MarkIdentity(name)
		}
		if columnKey == "PRI" {
			schema.MarkPrimaryKey(name)
		}
		if columnDefault.Valid {
			schema.SetDefault(name, generator.NormalizeDefault(columnDefault.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(schema.Columns) == 0 {
		return nil, common.TableNotFound(table)
	}
	return schema, nil
}

func canonicalType(dataType, columnType string) string {
	if strings.EqualFold(dataType, "tinyint") {
		if strings.Contains(strings.ToLower(columnType), "unsigned") {
			return "TINYINT"
		}
		return "BIT"
	}
	return common.CanonicalType(typeMap, dataType)
}
