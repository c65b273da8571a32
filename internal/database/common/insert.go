package common

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/tablefill/internal/types"
)

const DefaultChunkSize = 100

// RowGroup holds rows that share the same insertable column list.
type RowGroup struct {
	Columns []string
	Rows    []types.Row
}

// GroupRows partitions rows by column list, keeping first-seen order.
func GroupRows(rows []types.Row) []RowGroup {
	var groups []RowGroup
	index := make(map[string]int)

	for _, row := range rows {
		names := row.Names()
		if len(names) == 0 {
			continue
		}
		key := strings.Join(names, "\x00")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, RowGroup{Columns: names})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

type Statement struct {
	SQL  string
	Args []interface{}
	Rows int
}

// InsertBuilder renders multi-row INSERT statements for one engine.
type InsertBuilder struct {
	QB        squirrel.StatementBuilderType
	Quote     func(string) string
	Convert   func(types.Value) interface{}
	ChunkSize int

	// MaxParams and MaxRows cap a single statement; 0 means no cap.
	MaxParams int
	MaxRows   int
}

// Build validates identifiers and renders one statement per chunk of each group.
func (b InsertBuilder) Build(table string, rows []types.Row) ([]Statement, error) {
	if err := ValidateIdentifier(table); err != nil {
		return nil, err
	}

	chunk := b.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	convert := b.Convert
	if convert == nil {
		convert = func(v types.Value) interface{} { return v.Any() }
	}

	var stmts []Statement
	for _, group := range GroupRows(rows) {
		quoted := make([]string, len(group.Columns))
		for i, col := range group.Columns {
			if err := ValidateIdentifier(col); err != nil {
				return nil, err
			}
			quoted[i] = b.Quote(col)
		}

		size := b.groupChunk(chunk, len(group.Columns))
		for start := 0; start < len(group.Rows); start += size {
			end := start + size
			if end > len(group.Rows) {
				end = len(group.Rows)
			}

			q := b.QB.Insert(b.Quote(table)).Columns(quoted...)
			for _, row := range group.Rows[start:end] {
				values := make([]interface{}, len(row))
				for i, f := range row {
					values[i] = convert(f.Value)
				}
				q = q.Values(values...)
			}

			sql, args, err := q.ToSql()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, Statement{SQL: sql, Args: args, Rows: end - start})
		}
	}
	return stmts, nil
}

// groupChunk shrinks chunk so that rows*columns stays within MaxParams and
// rows within MaxRows.
func (b InsertBuilder) groupChunk(chunk, columns int) int {
	if b.MaxParams > 0 && columns > 0 {
		chunk = min(chunk, b.MaxParams/columns)
	}
	if b.MaxRows > 0 {
		chunk = min(chunk, b.MaxRows)
	}
	return max(chunk, 1)
}
