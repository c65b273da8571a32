package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Rana718/tablefill/internal/generator"
	"github.com/Rana718/tablefill/internal/seeder"
	"github.com/Rana718/tablefill/internal/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [table]",
	Short: "Show how each column of a table will be filled",
	Long: `
Print the column metadata tablefill reads for a table, and the generator
category each column falls into. Without a table name, list all tables.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		if len(args) == 0 {
			tables, err := adapter.GetAllTableNames(ctx)
			if err != nil {
				return err
			}
			color.Cyan("📋 %d table(s)", len(tables))
			for _, t := range tables {
				fmt.Printf("  • %s\n", t)
			}
			return nil
		}

		sd, err := seeder.NewFromConfig(adapter, cfg.Generator)
		if err != nil {
			return err
		}
		schema, err := sd.Describe(ctx, args[0])
		if err != nil {
			return err
		}
		exclusions, err := seeder.LoadExclusions(cfg.Generator.ExclusionsFile)
		if err != nil {
			return err
		}

		printSchema(schema, exclusions)
		return nil
	},
}

func printSchema(schema *types.TableSchema, exclusions *seeder.Exclusions) {
	color.New(color.FgCyan, color.Bold).Printf("📋 %s\n", schema.Name)

	width := len("COLUMN")
	for _, col := range schema.Columns {
		width = max(width, len(col.Name))
	}

	header := fmt.Sprintf("  %-*s  %-20s  %-16s  %s", width, "COLUMN", "TYPE", "FILL", "NOTES")
	color.New(color.FgHiBlack).Fprintln(os.Stdout, header)

	for _, col := range schema.Columns {
		declared := col.DeclaredType
		if col.MaxLength > 0 {
			declared = fmt.Sprintf("%s(%d)", declared, col.MaxLength)
		}

		var notes []string
		if schema.IsPrimaryKey(col.Name) {
			notes = append(notes, "primary key")
		}
		if def, ok := schema.Default(col.Name); ok {
			notes = append(notes, "default "+def.String())
		}

		fill := fillLabel(schema, col, exclusions)
		fmt.Printf("  %-*s  %-20s  %-16s  %s\n", width, col.Name, declared, fill, strings.Join(notes, ", "))
	}
}

func fillLabel(schema *types.TableSchema, col types.ColumnDescriptor, exclusions *seeder.Exclusions) string {
	switch {
	case exclusions.Excludes(col):
		return "excluded"
	case schema.IsIdentity(col.Name):
		return "identity"
	}
	if _, ok := schema.Default(col.Name); ok && !schema.IsPrimaryKey(col.Name) {
		return "default"
	}
	if category := generator.Category(col.Name, col.DeclaredType); category != "" {
		return category
	}
	return "skipped"
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
