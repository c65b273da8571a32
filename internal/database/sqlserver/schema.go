package sqlserver

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

func (a *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_SCHEMA = SCHEMA_NAME()
		ORDER BY TABLE_NAME
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

func (a *Adapter) GetTableSchema(ctx context.Context, table string) (*types.TableSchema, error) {
	if err := common.ValidateIdentifier(table); err != nil {
		return nil, err
	}

	query, args, err := a.columnsQuery(table)
	if err != nil {
		return nil, err
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	schema := types.NewTableSchema(table)
	for rows.Next() {
		var name, dataType string
		var maxLength, isIdentity sql.NullInt64
		var columnDefault sql.NullString

		if err := rows.Scan(&name, &dataType, &maxLength, &isIdentity, &columnDefault); err != nil {
			return nil, err
		}

		schema.AddColumn(describeColumn(name, dataType, maxLength))
		if isIdentity.Valid && isIdentity.Int64 == 1 {
			schema.MarkIdentity(name)
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

	if err := a.loadPrimaryKeys(ctx, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func (a *Adapter) loadPrimaryKeys(ctx context.Context, schema *types.TableSchema) error {
	query, args, err := a.primaryKeyQuery(schema.Name)
	if err != nil {
		return err
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to read primary key of %s: %w", schema.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var column string
		if err := rows.Scan(&column); err != nil {
			return err
		}
		schema.MarkPrimaryKey(column)
	}
	return rows.Err()
}

// describeColumn builds the descriptor; a length of -1 marks a MAX type.
func describeColumn(name, dataType string, maxLength sql.NullInt64) types.ColumnDescriptor {
	col := types.ColumnDescriptor{
		Name:         name,
		DeclaredType: common.CanonicalType(typeMap, dataType),
		MaxLength:    -1,
	}
	if !maxLength.Valid {
		return col
	}
	if maxLength.Int64 == -1 {
		if !strings.EqualFold(dataType, "xml") {
			col.DeclaredType = common.WithMax(col.DeclaredType)
		}
		return col
	}
	col.MaxLength = int(maxLength.Int64)
	return col
}

// Catalog queries are scoped to the caller's default schema.
func (a *Adapter) columnsQuery(table string) (string, []interface{}, error) {
	return a.qb.
		Select(
			"c.COLUMN_NAME",
			"c.DATA_TYPE",
			"c.CHARACTER_MAXIMUM_LENGTH",
			"COLUMNPROPERTY(OBJECT_ID(QUOTENAME(c.TABLE_SCHEMA) + '.' + QUOTENAME(c.TABLE_NAME)), c.COLUMN_NAME, 'IsIdentity')",
			"c.COLUMN_DEFAULT",
		).
		From("INFORMATION_SCHEMA.COLUMNS c").
		Where(squirrel.Eq{"c.TABLE_NAME": table}).
		Where(squirrel.Expr("c.TABLE_SCHEMA = SCHEMA_NAME()")).
		OrderBy("c.ORDINAL_POSITION").
		ToSql()
}

func (a *Adapter) primaryKeyQuery(table string) (string, []interface{}, error) {
	return a.qb.
		Select("kcu.COLUMN_NAME").
		From("INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc").
		Join("INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME AND tc.TABLE_SCHEMA = kcu.TABLE_SCHEMA").
		Where(squirrel.Eq{"tc.CONSTRAINT_TYPE": "PRIMARY KEY", "tc.TABLE_NAME": table}).
		Where(squirrel.Expr("tc.TABLE_SCHEMA = SCHEMA_NAME()")).
		OrderBy("kcu.ORDINAL_POSITION").
		ToSql()
}
