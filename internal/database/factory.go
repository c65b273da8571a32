package database

import (
	"fmt"

	"github.com/Rana718/tablefill/internal/database/mysql"
	"github.com/Rana718/tablefill/internal/database/postgres"
	"github.com/Rana718/tablefill/internal/database/sqlite"
	"github.com/Rana718/tablefill/internal/database/sqlserver"
)

func NewAdapter(provider string, opts ...Option) (Adapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(opts...), nil
	case "mysql":
		return mysql.New(opts...), nil
	case "sqlite", "sqlite3":
		return sqlite.New(opts...), nil
	case "sqlserver", "mssql":
		return sqlserver.New(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
