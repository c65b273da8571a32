package seeder

import "github.com/Rana718/tablefill/internal/types"

// Batch is the output of one Assemble call.
type Batch struct {
	Table   string          `json:"table" yaml:"table"`
	Columns []string        `json:"columns" yaml:"columns"`
	Rows    []types.Row     `json:"rows" yaml:"rows"`
	Skipped []SkippedColumn `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// SkippedColumn is a retained column whose declared type produced no value.
type SkippedColumn struct {
	Name         string `json:"name" yaml:"name"`
	DeclaredType string `json:"declared_type" yaml:"declared_type"`
}

// Insertable returns the rows with absent placeholders removed.
func (b *Batch) Insertable() []types.Row {
	rows := make([]types.Row, len(b.Rows))
	for i, r := range b.Rows {
		rows[i] = r.Insertable()
	}
	return rows
}

// Result summarizes one Seed call.
type Result struct {
	Table    string          `json:"table"`
	Inserted int64           `json:"inserted"`
	Skipped  []SkippedColumn `json:"skipped,omitempty"`
}
