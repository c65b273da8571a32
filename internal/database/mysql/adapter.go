package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/types"
	_ "github.com/go-sql-driver/mysql"
)

type Adapter struct {
	db       *sql.DB
	qb       squirrel.StatementBuilderType
	settings common.Settings
}

// typeMap folds data_type onto the generator catalog. Signed tinyint is
// handled in canonicalType since the catalog's TINYINT range is unsigned.
var typeMap = map[string]string{
	"smallint": "SMALLINT", "mediumint": "SMALLINT",
	"int": "INT", "integer": "INT", "bigint": "BIGINT",
	"decimal": "DECIMAL", "numeric": "DECIMAL",
	"float": "REAL", "double": "FLOAT", "bit": "BIT", "bool": "BIT", "boolean": "BIT",
	"date": "DATE", "datetime": "DATETIME", "timestamp": "DATETIME", "time": "TIME",
	"char": "CHAR", "varchar": "VARCHAR",
	"tinytext": "TEXT", "text": "TEXT", "mediumtext": "TEXT", "longtext": "TEXT",
	"binary": "BINARY", "varbinary": "VARBINARY",
	"tinyblob": "VARBINARY", "blob": "VARBINARY", "mediumblob": "VARBINARY", "longblob": "VARBINARY",
}

func New(opts ...common.Option) *Adapter {
	return &Adapter{
		qb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		settings: common.Apply(opts),
	}
}

// Connect accepts a go-sql-driver DSN or a mysql:// URL.
func (m *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("mysql", toDSN(url))
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	return nil
}

func toDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.LastIndex(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=REQUIRED", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=DISABLED", "tls=false")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=require", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=disable", "tls=false")

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) InsertRows(ctx context.Context, table string, rows []types.Row) (int64, error) {
	builder := common.InsertBuilder{
		QB:        m.qb,
		Quote:     quoteIdentifier,
		ChunkSize: m.settings.ChunkSize,
	}
	stmts, err := builder.Build(table, rows)
	if err != nil {
		return 0, err
	}
	return common.ExecInTx(ctx, m.db, table, stmts)
}

func quoteIdentifier(name string) string {
	return "`" + name + "`"
}
