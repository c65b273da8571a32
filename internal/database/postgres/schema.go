package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/types"
)

var castSuffix = regexp.MustCompile(`::[A-Za-z_][A-Za-z0-9_ ."]*(\[\])?$`)

func (p *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]string, 0, 32)
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}
	return tables, rows.Err()
}

func (p *Adapter) GetTableSchema(ctx context.Context, table string) (*types.TableSchema, error) {
	if err := common.ValidateIdentifier(table); err != nil {
		return nil, err
	}

	query, args, err := p.qb.
		Select("column_name", "udt_name", "character_maximum_length", "column_default", "is_identity").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_name": table}).
		Where("table_schema = current_schema()").
		OrderBy("ordinal_position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	schema := types.NewTableSchema(table)
	for rows.Next() {
		var name, udtName, isIdentity string
		var maxLength sql.NullInt64
		var columnDefault sql.NullString

		if err := rows.Scan(&name, &udtName, &maxLength, &columnDefault, &isIdentity); err != nil {
			return nil, err
		}

		col := types.ColumnDescriptor{
			Name:         name,
			DeclaredType: common.CanonicalType(typeMap, udtName),
			MaxLength:    -1,
		}
		if maxLength.Valid {
			col.MaxLength = int(maxLength.Int64)
		}
		schema.AddColumn(col)

		if isIdentity == "YES" {
			schema.MarkIdentity(name)
		}
		if columnDefault.Valid {
			if isSequenceDefault(columnDefault.String) {
				schema.MarkIdentity(name)
				continue
			}
			schema.SetDefault(name, generator.NormalizeDefault(cleanDefaultValue(columnDefault.String)))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(schema.Columns) == 0 {
		return nil, common.TableNotFound(table)
	}

	if err := p.loadPrimaryKeys(ctx, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func (p *Adapter) loadPrimaryKeys(ctx context.Context, schema *types.TableSchema) error {
	rows, err := p.pool.Query(ctx, `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		 AND tc.table_schema = kcu.table_schema
		 AND tc.table_name = kcu.table_name
		WHERE tc.constraint_type = 'PRIMARY KEY'
		  AND tc.table_name = $1
		  AND tc.table_schema = current_schema()
	`, schema.Name)
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

func isSequenceDefault(defaultVal string) bool {
	return strings.Contains(strings.ToLower(defaultVal), "nextval(")
}

// cleanDefaultValue drops trailing ::type casts, e.g. 'active'::character varying.
// An explicit NULL default comes back empty.
func cleanDefaultValue(defaultVal string) string {
	value := strings.TrimSpace(defaultVal)
	for castSuffix.MatchString(value) {
		value = strings.TrimSpace(castSuffix.ReplaceAllString(value, ""))
	}
	if strings.EqualFold(value, "NULL") {
		return ""
	}
	return value
}
