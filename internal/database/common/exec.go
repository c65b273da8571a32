package common

import (
	"context"
	"database/sql"
	"fmt"
)

// ExecInTx runs stmts in one database/sql transaction and returns the total rows affected.
func ExecInTx(ctx context.Context, db *sql.DB, table string, stmts []Statement) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var inserted int64
	for _, stmt := range stmts {
		res, err := tx.ExecContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			n = int64(stmt.Rows)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}
