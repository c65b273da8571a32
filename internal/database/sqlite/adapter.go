package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/types"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db       *sql.DB
	qb       squirrel.StatementBuilderType
	settings common.Settings
}

// typeMap folds declared base types onto the generator catalog. Names that
// are already catalog names (UNIQUEIDENTIFIER, XML, ...) pass through.
var typeMap = map[string]string{
	"int": "INT", "integer": "INT", "mediumint": "INT",
	"bigint": "BIGINT", "int8": "BIGINT",
	"smallint": "SMALLINT", "int2": "SMALLINT", "tinyint": "TINYINT",
	"boolean": "BIT", "bool": "BIT",
	"real": "REAL", "double": "FLOAT", "double precision": "FLOAT", "float": "FLOAT",
	"numeric": "DECIMAL", "decimal": "DECIMAL",
	"varchar": "VARCHAR", "character varying": "VARCHAR", "nvarchar": "NVARCHAR",
	"varying character": "VARCHAR", "native character": "NCHAR",
	"char": "CHAR", "character": "CHAR", "nchar": "NCHAR",
	"text": "TEXT", "clob": "TEXT",
	"blob": "VARBINARY",
	"date": "DATE", "datetime": "DATETIME", "timestamp": "DATETIME", "time": "TIME",
	"uuid": "UNIQUEIDENTIFIER",
}

func New(opts ...common.Option) *Adapter {
	return &Adapter{
		qb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		settings: common.Apply(opts),
	}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?cache=shared&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
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

// GetTableSchema reads PRAGMA table_info. PRAGMA takes no bound parameters,
// so the table name is validated before it is quoted into the statement.
func (s *Adapter) GetTableSchema(ctx context.Context, table string) (*types.TableSchema, error) {
	if err := common.ValidateIdentifier(table); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdentifier(table)))
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	schema := types.NewTableSchema(table)
	var pkColumns []string
	declared := make(map[string]string)

	for rows.Next() {
		var cid, notNull, pk int
		var name, dataType string
		var defaultValue sql.NullString

		if err := rows.Scan(&cid, &name, &dataType, &notNull, &defaultValue, &pk); err != nil {
			return nil, err
		}

		base, length := splitDeclaredType(dataType)
		schema.AddColumn(types.ColumnDescriptor{
			Name:         name,
			DeclaredType: common.CanonicalType(typeMap, base),
			MaxLength:    length,
		})
		declared[name] = strings.ToUpper(base)

		if pk > 0 {
			schema.MarkPrimaryKey(name)
			pkColumns = append(pkColumns, name)
		}
		if defaultValue.Valid {
			schema.SetDefault(name, generator.NormalizeDefault(defaultValue.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(schema.Columns) == 0 {
		return nil, common.TableNotFound(table)
	}

	// A single INTEGER primary key aliases the rowid and fills itself.
	if len(pkColumns) == 1 && declared[pkColumns[0]] == "INTEGER" {
		schema.MarkIdentity(pkColumns[0])
	}
	return schema, nil
}

func (s *Adapter) InsertRows(ctx context.Context, table string, rows []types.Row) (int64, error) {
	builder := common.InsertBuilder{
		QB:        s.qb,
		Quote:     quoteIdentifier,
		ChunkSize: s.settings.ChunkSize,
	}
	stmts, err := builder.Build(table, rows)
	if err != nil {
		return 0, err
	}
	return common.ExecInTx(ctx, s.db, table, stmts)
}

func quoteIdentifier(name string) string {
	return `"` + name + `"`
}
