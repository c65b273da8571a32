package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/Rana718/tablefill/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateCmd = &cobra.Command{
	Use:   "generate <table> [count]",
	Short: "Generate rows for a table and insert them",
	Long: `
Generate rows that fit the table's column metadata and insert them in one
transaction. With --dry-run the rows are printed instead of inserted.

Examples:
  tablefill generate Customers -n 50
  tablefill generate Customers 50
  tablefill generate Orders -n 5 --dry-run --format yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := args[0]
		count, _ := cmd.Flags().GetInt("count")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		format, _ := cmd.Flags().GetString("format")
		if len(args) == 2 {
			n, err := parseCount(args[1])
			if err != nil {
				return err
			}
			count = n
		}

		if format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported format %q (use json or yaml)", format)
		}
		if dryRun {
			// keep stdout clean for the rendered batch
			color.Output = os.Stderr
		}

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

		sd, err := seeder.NewFromConfig(adapter, cfg.Generator)
		if err != nil {
			return err
		}

		if dryRun {
			batch, err := sd.Preview(ctx, table, count)
			if err != nil {
				return err
			}
			return printBatch(batch, format)
		}

		result, err := sd.Seed(ctx, table, count)
		if err != nil {
			return err
		}
		if len(result.Skipped) > 0 {
			color.Yellow("⚠️  %d column(s) left to the database", len(result.Skipped))
		}
		return nil
	},
}

func printBatch(batch *seeder.Batch, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "yaml":
		out, err = yaml.Marshal(batch)
	default:
		out, err = json.MarshalIndent(batch, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to render batch: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("count", "n", 10, "Number of rows to generate")
	generateCmd.Flags().Bool("dry-run", false, "Print generated rows without inserting")
	generateCmd.Flags().String("format", "json", "Dry-run output format (json, yaml)")
}

// parseCount accepts the positional count form `generate <table> <count>`.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid row count %q", s)
	}
	return n, nil
}
