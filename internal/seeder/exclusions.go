package seeder

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/Rana718/tablefill/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed exclusions.yaml
var defaultExclusions []byte

// Exclusions lists columns dropped from every generated row, by name or by
// declared base type.
type Exclusions struct {
	Columns []string `yaml:"columns"`
	Types   []string `yaml:"types"`

	columns map[string]struct{}
	types   map[string]struct{}
}

func ParseExclusions(data []byte) (*Exclusions, error) {
	var e Exclusions
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to parse exclusions: %w", err)
	}
	e.index()
	return &e, nil
}

// LoadExclusions reads an exclusions file, or the built-in set when path is empty.
func LoadExclusions(path string) (*Exclusions, error) {
	if path == "" {
		return DefaultExclusions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exclusions file %s: %w", path, err)
	}
	return ParseExclusions(data)
}

func DefaultExclusions() *Exclusions {
	e, err := ParseExclusions(defaultExclusions)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Exclusions) index() {
	e.columns = make(map[string]struct{}, len(e.Columns))
	for _, c := range e.Columns {
		e.columns[c] = struct{}{}
	}
	e.types = make(map[string]struct{}, len(e.Types))
	for _, t := range e.Types {
		e.types[strings.ToUpper(strings.TrimSpace(t))] = struct{}{}
	}
}

func (e *Exclusions) Excludes(col types.ColumnDescriptor) bool {
	if e == nil {
		return false
	}
	if _, ok := e.columns[col.Name]; ok {
		return true
	}
	_, ok := e.types[baseType(col.DeclaredType)]
	return ok
}

func baseType(declared string) string {
	t := strings.ToUpper(strings.TrimSpace(declared))
	if idx := strings.Index(t, "("); idx > 0 {
		t = strings.TrimSpace(t[:idx])
	}
	return t
}
