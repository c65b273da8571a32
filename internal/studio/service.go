package studio

import (
	"context"

	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/seeder"
)

// Catalog lists the tables a client can pick from.
type Catalog interface {
	GetAllTableNames(ctx context.Context) ([]string, error)
}

type Service struct {
	seeder     *seeder.Seeder
	catalog    Catalog
	exclusions *seeder.Exclusions
}

func NewService(sd *seeder.Seeder, catalog Catalog, exclusions *seeder.Exclusions) *Service {
	return &Service{seeder: sd, catalog: catalog, exclusions: exclusions}
}

func (s *Service) GetTables(ctx context.Context) ([]string, error) {
	tables, err := s.catalog.GetAllTableNames(ctx)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = []string{}
	}
	return tables, nil
}

func (s *Service) DescribeTable(ctx context.Context, name string) (*TableView, error) {
	schema, err := s.seeder.Describe(ctx, name)
	if err != nil {
		return nil, err
	}

	view := &TableView{Name: schema.Name, Columns: make([]ColumnView, 0, len(schema.Columns))}
	for _, col := range schema.Columns {
		cv := ColumnView{
			Name:         col.Name,
			DeclaredType: col.DeclaredType,
			MaxLength:    col.MaxLength,
			Category:     generator.Category(col.Name, col.DeclaredType),
			PrimaryKey:   schema.IsPrimaryKey(col.Name),
			Identity:     schema.IsIdentity(col.Name),
			Excluded:     s.exclusions.Excludes(col),
		}
		if def, ok := schema.Default(col.Name); ok {
			cv.Default = &def
		}
		view.Columns = append(view.Columns, cv)
	}
	return view, nil
}

func (s *Service) Preview(ctx context.Context, name string, n int) (*seeder.Batch, error) {
	return s.seeder.Preview(ctx, name, n)
}

func (s *Service) Generate(ctx context.Context, name string, n int) (*seeder.Result, error) {
	return s.seeder.Seed(ctx, name, n)
}

// MaxRecords is the per-request row limit, 0 when unlimited.
func (s *Service) MaxRecords() int {
	return s.seeder.MaxRecords()
}
