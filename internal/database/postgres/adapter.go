package postgres

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type Adapter struct {
	pool     *pgxpool.Pool
	qb       squirrel.StatementBuilderType
	settings common.Settings
}

// typeMap folds udt names onto the generator catalog. Types with no safe
// generated literal (json, money, geometric types) are left out on purpose.
var typeMap = map[string]string{
	"int2": "SMALLINT", "smallint": "SMALLINT",
	"int4": "INT", "integer": "INT",
	"int8": "BIGINT", "bigint": "BIGINT",
	"numeric": "DECIMAL", "decimal": "DECIMAL",
	"float4": "REAL", "real": "REAL", "float8": "FLOAT", "double precision": "FLOAT",
	"bool": "BIT", "boolean": "BIT", "bit": "BIT",
	"date": "DATE", "timestamp": "DATETIME2", "timestamptz": "DATETIMEOFFSET",
	"time": "TIME", "timetz": "TIME",
	"varchar": "NVARCHAR", "character varying": "NVARCHAR",
	"bpchar": "NCHAR", "character": "NCHAR", "char": "NCHAR",
	"text": "TEXT", "citext": "TEXT",
	"bytea": "VARBINARY", "uuid": "UNIQUEIDENTIFIER", "xml": "XML",
}

func New(opts ...common.Option) *Adapter {
	return &Adapter{
		qb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		settings: common.Apply(opts),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// InsertRows writes all rows in one transaction. Statements go through the
// simple protocol so every value is sent as an untyped literal and coerced by
// the column's input function.
func (p *Adapter) InsertRows(ctx context.Context, table string, rows []types.Row) (int64, error) {
	builder := common.InsertBuilder{
		QB:        p.qb,
		Quote:     pq.QuoteIdentifier,
		Convert:   literal,
		ChunkSize: p.settings.ChunkSize,
	}
	stmts, err := builder.Build(table, rows)
	if err != nil {
		return 0, err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var inserted int64
	for _, stmt := range stmts {
		args := append([]interface{}{pgx.QueryExecModeSimpleProtocol}, stmt.Args...)
		tag, err := tx.Exec(ctx, stmt.SQL, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		inserted += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

func literal(v types.Value) interface{} {
	switch v.Kind {
	case types.KindAbsent:
		return nil
	case types.KindBytes:
		return `\x` + hex.EncodeToString(v.Bytes)
	default:
		return v.String()
	}
}
