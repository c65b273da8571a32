package sqlserver

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/types"
	_ "github.com/microsoft/go-mssqldb"
)

// A request carries at most 2100 parameters and a VALUES list at most 1000
// rows.
const (
	maxParams = 2000
	maxRows   = 1000
)

type Adapter struct {
	db       *sql.DB
	qb       squirrel.StatementBuilderType
	settings common.Settings
}

// SQL Server type names are already catalog names; timestamp is the
// deprecated synonym of rowversion.
var typeMap = map[string]string{
	"timestamp": "ROWVERSION",
}

func New(opts ...common.Option) *Adapter {
	return &Adapter{
		qb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.AtP),
		settings: common.Apply(opts),
	}
}

// Connect takes a sqlserver:// URL or an ADO-style connection string.
func (a *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("sqlserver", url)
	if err != nil {
		return fmt.Errorf("failed to open SQL Server connection: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	a.db = db
	return nil
}

func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *Adapter) InsertRows(ctx context.Context, table string, rows []types.Row) (int64, error) {
	stmts, err := a.buildInserts(table, rows)
	if err != nil {
		return 0, err
	}
	return common.ExecInTx(ctx, a.db, table, stmts)
}

func (a *Adapter) buildInserts(table string, rows []types.Row) ([]common.Statement, error) {
	builder := common.InsertBuilder{
		QB:        a.qb,
		Quote:     quoteIdentifier,
		ChunkSize: a.settings.ChunkSize,
		MaxParams: maxParams,
		MaxRows:   maxRows,
	}
	return builder.Build(table, rows)
}

func quoteIdentifier(name string) string {
	return "[" + name + "]"
}
