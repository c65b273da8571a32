package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/Rana718/tablefill/internal/config"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	schemas   map[string]*types.TableSchema
	insertErr error
	inserted  map[string][]types.Row
}

func newFakeStore(schemas ...*types.TableSchema) *fakeStore {
	f := &fakeStore{schemas: make(map[string]*types.TableSchema), inserted: make(map[string][]types.Row)}
	for _, s := range schemas {
		f.schemas[s.Name] = s
	}
	return f
}

var errNoTable = errors.New("table not found")

func (f *fakeStore) GetTableSchema(_ context.Context, table string) (*types.TableSchema, error) {
	s, ok := f.schemas[table]
	if !ok {
		return nil, errNoTable
	}
	return s, nil
}

func (f *fakeStore) InsertRows(_ context.Context, table string, rows []types.Row) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted[table] = append(f.inserted[table], rows...)
	return int64(len(rows)), nil
}

func TestSeedInsertsRows(t *testing.T) {
	schema := peopleSchema()
	schema.AddColumn(types.ColumnDescriptor{Name: "Serial", DeclaredType: "INT"})
	schema.MarkIdentity("Serial")
	store := newFakeStore(schema)

	s, err := NewFromConfig(store, config.Default().Generator)
	require.NoError(t, err)

	res, err := s.Seed(context.Background(), "People", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Inserted)
	assert.Equal(t, "People", res.Table)

	rows := store.inserted["People"]
	require.Len(t, rows, 7)
	for _, row := range rows {
		assert.Equal(t, []string{"Id", "Name"}, row.Names())
	}
}

func TestSeedErrorCategories(t *testing.T) {
	store := newFakeStore(peopleSchema())
	s := New(store, DefaultOptions())
	ctx := context.Background()

	_, err := s.Seed(ctx, "Missing", 1)
	assert.ErrorIs(t, err, ErrSchemaLookup)
	assert.ErrorIs(t, err, errNoTable)

	_, err = s.Seed(ctx, "People", 0)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, ErrInvalidRowCount)

	store.insertErr = errors.New("connection reset")
	_, err = s.Seed(ctx, "People", 2)
	assert.ErrorIs(t, err, ErrInsert)
	assert.NotErrorIs(t, err, ErrGeneration)
}

func TestPreviewDoesNotInsert(t *testing.T) {
	store := newFakeStore(peopleSchema())
	s := New(store, DefaultOptions())

	batch, err := s.Preview(context.Background(), "People", 4)
	require.NoError(t, err)
	assert.Len(t, batch.Rows, 4)
	assert.Empty(t, store.inserted)
}

func TestMaxRecordsLimit(t *testing.T) {
	cfg := config.Default().Generator
	cfg.MaxRecords = 5
	s, err := NewFromConfig(newFakeStore(peopleSchema()), cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, s.MaxRecords())

	_, err = s.Preview(context.Background(), "People", 6)
	assert.ErrorIs(t, err, ErrInvalidRowCount)
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	cfg := config.Default().Generator
	cfg.Seed = 42

	schema := types.NewTableSchema("Notes")
	schema.AddColumn(types.ColumnDescriptor{Name: "Body", DeclaredType: "NVARCHAR", MaxLength: 30})

	first, err := NewFromConfig(newFakeStore(schema), cfg)
	require.NoError(t, err)
	second, err := NewFromConfig(newFakeStore(schema), cfg)
	require.NoError(t, err)

	a, err := first.Preview(context.Background(), "Notes", 3)
	require.NoError(t, err)
	b, err := second.Preview(context.Background(), "Notes", 3)
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)
}

func TestSeededRequestsDrawDistinctKeys(t *testing.T) {
	cfg := config.Default().Generator
	cfg.Seed = 7

	schema := types.NewTableSchema("Accounts")
	schema.AddColumn(types.ColumnDescriptor{Name: "Id", DeclaredType: "INT"})
	schema.MarkPrimaryKey("Id")

	sd, err := NewFromConfig(newFakeStore(schema), cfg)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := sd.Preview(ctx, "Accounts", 5)
	require.NoError(t, err)
	second, err := sd.Preview(ctx, "Accounts", 5)
	require.NoError(t, err)
	assert.NotEqual(t, first.Rows, second.Rows)

	replay, err := NewFromConfig(newFakeStore(schema), cfg)
	require.NoError(t, err)
	again, err := replay.Preview(ctx, "Accounts", 5)
	require.NoError(t, err)
	assert.Equal(t, first.Rows, again.Rows)
}
