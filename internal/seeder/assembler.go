package seeder

import (
	"fmt"

	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/google/uuid"
)

type columnPolicy int

const (
	policyIdentity columnPolicy = iota
	policyKey
	policyGUIDKey
	policyDefault
	policyGenerate
)

// Assembler builds rows for a table. It holds no per-request state; each
// Assemble call owns a fresh KeySpace.
type Assembler struct {
	gen    *generator.Generator
	opts   Options
	unique map[string]struct{}
}

func NewAssembler(gen *generator.Generator, opts Options) *Assembler {
	if opts.MaxKeyAttempts <= 0 {
		opts.MaxKeyAttempts = DefaultOptions().MaxKeyAttempts
	}
	unique := make(map[string]struct{}, len(opts.UniqueColumns))
	for _, name := range opts.UniqueColumns {
		unique[name] = struct{}{}
	}
	return &Assembler{gen: gen, opts: opts, unique: unique}
}

type plannedColumn struct {
	col    types.ColumnDescriptor
	policy columnPolicy
	def    types.Value
}

// Assemble produces rowCount rows for schema. Excluded columns never appear,
// identity columns carry an absent placeholder, and columns whose type has no
// generator are left out of every row and reported in Batch.Skipped.
func (a *Assembler) Assemble(schema *types.TableSchema, rowCount int) (*Batch, error) {
	if rowCount < 1 {
		return nil, fmt.Errorf("%w: %w: got %d", ErrGeneration, ErrInvalidRowCount, rowCount)
	}

	plan := a.plan(schema)
	keys := NewKeySpace(a.opts.KeyMin, a.opts.KeyMax, a.opts.MaxKeyAttempts, a.gen.IntRange)

	for _, p := range plan {
		if p.policy == policyKey && int64(rowCount) > keys.Size() {
			return nil, fmt.Errorf("%w: %w: %d rows requested for column %s but only %d keys in [%d, %d]",
				ErrGeneration, ErrKeySpaceExhausted, rowCount, p.col.Name, keys.Size(), a.opts.KeyMin, a.opts.KeyMax)
		}
	}

	batch := &Batch{
		Table:   schema.Name,
		Columns: make([]string, 0, len(plan)),
		Rows:    make([]types.Row, 0, rowCount),
	}
	for _, p := range plan {
		batch.Columns = append(batch.Columns, p.col.Name)
	}

	skipped := make(map[string]struct{})
	for i := 0; i < rowCount; i++ {
		row := make(types.Row, 0, len(plan))
		for _, p := range plan {
			switch p.policy {
			case policyIdentity:
				row = append(row, types.Field{Name: p.col.Name, Value: types.AbsentValue()})
			case policyKey:
				v, err := keys.Next(p.col.Name)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
				}
				row = append(row, types.Field{Name: p.col.Name, Value: types.IntValue(v)})
			case policyGUIDKey:
				row = append(row, types.Field{Name: p.col.Name, Value: types.StringValue(uuid.NewString())})
			case policyDefault:
				row = append(row, types.Field{Name: p.col.Name, Value: p.def})
			case policyGenerate:
				v := a.gen.Generate(p.col.Name, p.col.DeclaredType, p.col.MaxLength)
				if v.IsAbsent() {
					if _, seen := skipped[p.col.Name]; !seen {
						skipped[p.col.Name] = struct{}{}
						batch.Skipped = append(batch.Skipped, SkippedColumn{Name: p.col.Name, DeclaredType: p.col.DeclaredType})
					}
					continue
				}
				row = append(row, types.Field{Name: p.col.Name, Value: v})
			}
		}
		batch.Rows = append(batch.Rows, row)
	}

	if len(skipped) > 0 {
		kept := batch.Columns[:0]
		for _, name := range batch.Columns {
			if _, ok := skipped[name]; !ok {
				kept = append(kept, name)
			}
		}
		batch.Columns = kept
	}
	return batch, nil
}

func (a *Assembler) plan(schema *types.TableSchema) []plannedColumn {
	plan := make([]plannedColumn, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		if a.opts.Exclusions.Excludes(col) {
			continue
		}
		p := plannedColumn{col: col, policy: policyGenerate}
		switch {
		case schema.IsIdentity(col.Name):
			p.policy = policyIdentity
		case a.isKey(schema, col.Name):
			p.policy = policyKey
			if generator.Category(col.Name, col.DeclaredType) == "guid" {
				p.policy = policyGUIDKey
			}
		default:
			if def, ok := schema.Default(col.Name); ok {
				p.policy = policyDefault
				p.def = def
			}
		}
		plan = append(plan, p)
	}
	return plan
}

func (a *Assembler) isKey(schema *types.TableSchema, name string) bool {
	if _, ok := a.unique[name]; ok {
		return true
	}
	return schema.IsPrimaryKey(name)
}
