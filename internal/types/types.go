package types

import "sort"

// ColumnDescriptor is one column of a fetched table. MaxLength <= 0 means unbounded.
type ColumnDescriptor struct {
	Name         string `json:"name" yaml:"name"`
	DeclaredType string `json:"declared_type" yaml:"declared_type"`
	MaxLength    int    `json:"max_length" yaml:"max_length"`
}

type TableSchema struct {
	Name            string              `json:"name" yaml:"name"`
	Columns         []ColumnDescriptor  `json:"columns" yaml:"columns"`
	PrimaryKeys     map[string]struct{} `json:"-" yaml:"-"`
	IdentityColumns map[string]struct{} `json:"-" yaml:"-"`
	Defaults        map[string]Value    `json:"defaults" yaml:"defaults"`
}

func NewTableSchema(name string) *TableSchema {
	return &TableSchema{
		Name:            name,
		PrimaryKeys:     make(map[string]struct{}),
		IdentityColumns: make(map[string]struct{}),
		Defaults:        make(map[string]Value),
	}
}

func (t *TableSchema) AddColumn(col ColumnDescriptor) {
	t.Columns = append(t.Columns, col)
}

func (t *TableSchema) MarkPrimaryKey(name string) {
	if t.PrimaryKeys == nil {
		t.PrimaryKeys = make(map[string]struct{})
	}
	t.PrimaryKeys[name] = struct{}{}
}

func (t *TableSchema) MarkIdentity(name string) {
	if t.IdentityColumns == nil {
		t.IdentityColumns = make(map[string]struct{})
	}
	t.IdentityColumns[name] = struct{}{}
}

// SetDefault records a normalized default. Absent values are ignored.
func (t *TableSchema) SetDefault(name string, v Value) {
	if v.IsAbsent() {
		return
	}
	if t.Defaults == nil {
		t.Defaults = make(map[string]Value)
	}
	t.Defaults[name] = v
}

func (t *TableSchema) IsPrimaryKey(name string) bool {
	_, ok := t.PrimaryKeys[name]
	return ok
}

func (t *TableSchema) IsIdentity(name string) bool {
	_, ok := t.IdentityColumns[name]
	return ok
}

func (t *TableSchema) Default(name string) (Value, bool) {
	v, ok := t.Defaults[name]
	return v, ok
}

func (t *TableSchema) Column(name string) (ColumnDescriptor, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnDescriptor{}, false
}

// PrimaryKeyNames returns the primary key set sorted by name.
func (t *TableSchema) PrimaryKeyNames() []string {
	return sortedKeys(t.PrimaryKeys)
}

// IdentityNames returns the identity column set sorted by name.
func (t *TableSchema) IdentityNames() []string {
	return sortedKeys(t.IdentityColumns)
}

func sortedKeys(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
