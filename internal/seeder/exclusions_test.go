package seeder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/tablefill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExclusions(t *testing.T) {
	e := DefaultExclusions()

	for _, name := range []string{
		"RowVersionColumn", "BinaryColumn", "VarBinaryColumn", "ImageColumn", "SqlVariantColumn",
		"GeometryColumn", "GeographyColumn", "XmlColumn", "HierarchyIdColumn",
	} {
		assert.True(t, e.Excludes(types.ColumnDescriptor{Name: name, DeclaredType: "INT"}), name)
	}

	assert.True(t, e.Excludes(types.ColumnDescriptor{Name: "Ver", DeclaredType: "rowversion"}))
	assert.True(t, e.Excludes(types.ColumnDescriptor{Name: "Ts", DeclaredType: "TIMESTAMP"}))
	assert.False(t, e.Excludes(types.ColumnDescriptor{Name: "CreatedAt", DeclaredType: "DATETIME"}))
	assert.False(t, e.Excludes(types.ColumnDescriptor{Name: "xmlcolumn", DeclaredType: "INT"}))
}

func TestLoadExclusionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclusions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [Secret]\ntypes: [money]\n"), 0644))

	e, err := LoadExclusions(path)
	require.NoError(t, err)

	assert.True(t, e.Excludes(types.ColumnDescriptor{Name: "Secret", DeclaredType: "INT"}))
	assert.True(t, e.Excludes(types.ColumnDescriptor{Name: "Price", DeclaredType: "MONEY(19,4)"}))
	assert.False(t, e.Excludes(types.ColumnDescriptor{Name: "RowVersionColumn", DeclaredType: "INT"}))
}

func TestLoadExclusionsErrors(t *testing.T) {
	_, err := LoadExclusions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseExclusions([]byte("columns: {"))
	assert.Error(t, err)
}

func TestNilExclusionsExcludeNothing(t *testing.T) {
	var e *Exclusions
	assert.False(t, e.Excludes(types.ColumnDescriptor{Name: "RowVersionColumn"}))
}
