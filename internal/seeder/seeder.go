package seeder

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/Rana718/tablefill/internal/config"
	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/fatih/color"
)

// Store is the schema provider and row sink a Seeder works against.
type Store interface {
	GetTableSchema(ctx context.Context, table string) (*types.TableSchema, error)
	InsertRows(ctx context.Context, table string, rows []types.Row) (int64, error)
}

type Seeder struct {
	store      Store
	opts       Options
	genOpts    []generator.Option
	maxRecords int

	// seed, when non-zero, is offset by the request number so repeated
	// requests against one table do not replay the same keys.
	seed     uint64
	requests atomic.Uint64
}

func New(store Store, opts Options, genOpts ...generator.Option) *Seeder {
	return &Seeder{store: store, opts: opts, genOpts: genOpts}
}

func NewFromConfig(store Store, cfg config.Generator) (*Seeder, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	s := New(store, opts, generator.WithStringCap(cfg.DefaultStringCap))
	s.maxRecords = cfg.MaxRecords
	s.seed = cfg.Seed
	return s, nil
}

// MaxRecords is the largest row count accepted per call; 0 means unlimited.
func (s *Seeder) MaxRecords() int {
	return s.maxRecords
}

func (s *Seeder) Describe(ctx context.Context, table string) (*types.TableSchema, error) {
	schema, err := s.store.GetTableSchema(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaLookup, err)
	}
	return schema, nil
}

// Preview fetches the schema and assembles rowCount rows without inserting them.
func (s *Seeder) Preview(ctx context.Context, table string, rowCount int) (*Batch, error) {
	if err := s.checkCount(rowCount); err != nil {
		return nil, err
	}

	schema, err := s.Describe(ctx, table)
	if err != nil {
		return nil, err
	}

	batch, err := s.assembler().Assemble(schema, rowCount)
	if err != nil {
		return nil, err
	}

	for _, sc := range batch.Skipped {
		color.Yellow("⚠️  Skipping column %s.%s: unsupported type %s", table, sc.Name, sc.DeclaredType)
	}
	return batch, nil
}

// Seed generates rowCount rows for table and inserts them in one batch.
func (s *Seeder) Seed(ctx context.Context, table string, rowCount int) (*Result, error) {
	color.Cyan("🌱 Generating %d rows for %s...", rowCount, table)

	batch, err := s.Preview(ctx, table, rowCount)
	if err != nil {
		color.Red("❌ %v", err)
		return nil, err
	}

	inserted, err := s.store.InsertRows(ctx, table, batch.Insertable())
	if err != nil {
		color.Red("❌ Failed to insert into %s: %v", table, err)
		return nil, fmt.Errorf("%w: %w", ErrInsert, err)
	}

	color.Green("✅ Inserted %d records into %s", inserted, table)
	return &Result{Table: table, Inserted: inserted, Skipped: batch.Skipped}, nil
}

func (s *Seeder) checkCount(rowCount int) error {
	if rowCount < 1 {
		return fmt.Errorf("%w: %w: got %d", ErrGeneration, ErrInvalidRowCount, rowCount)
	}
	if s.maxRecords > 0 && rowCount > s.maxRecords {
		return fmt.Errorf("%w: %w: %d exceeds the limit of %d", ErrGeneration, ErrInvalidRowCount, rowCount, s.maxRecords)
	}
	return nil
}

func (s *Seeder) assembler() *Assembler {
	genOpts := s.genOpts
	if s.seed != 0 {
		n := s.requests.Add(1) - 1
		genOpts = append(slices.Clone(genOpts), generator.WithSeed(s.seed+n))
	}
	return NewAssembler(generator.New(genOpts...), s.opts)
}
