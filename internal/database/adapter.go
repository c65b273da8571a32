package database

import (
	"context"

	"github.com/Rana718/tablefill/internal/database/common"
	"github.com/Rana718/tablefill/internal/types"
)

var (
	ErrTableNotFound     = common.ErrTableNotFound
	ErrInvalidIdentifier = common.ErrInvalidIdentifier
)

// Adapter is both the schema provider and the row sink for one engine.
type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	GetAllTableNames(ctx context.Context) ([]string, error)
	GetTableSchema(ctx context.Context, table string) (*types.TableSchema, error)

	// InsertRows writes rows in a single transaction and returns the count inserted.
	InsertRows(ctx context.Context, table string, rows []types.Row) (int64, error)
}

type Option = common.Option

var WithChunkSize = common.WithChunkSize
