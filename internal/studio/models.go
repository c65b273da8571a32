package studio

import "github.com/Rana718/tablefill/internal/types"

const defaultNumRecords = 10

type GenerateRequest struct {
	TableName  string `json:"table_name"`
	NumRecords *int   `json:"num_records"`
}

type PreviewRequest struct {
	NumRecords *int `json:"num_records"`
}

type TableView struct {
	Name    string       `json:"name"`
	Columns []ColumnView `json:"columns"`
}

type ColumnView struct {
	Name         string       `json:"name"`
	DeclaredType string       `json:"declared_type"`
	MaxLength    int          `json:"max_length"`
	Category     string       `json:"category,omitempty"`
	PrimaryKey   bool         `json:"primary_key"`
	Identity     bool         `json:"identity"`
	Default      *types.Value `json:"default,omitempty"`
	Excluded     bool         `json:"excluded,omitempty"`
}

func numRecords(n *int) int {
	if n == nil {
		return defaultNumRecords
	}
	return *n
}
