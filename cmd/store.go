package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Rana718/tablefill/internal/config"
	"github.com/Rana718/tablefill/internal/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// loadConfig reads the config and applies the --db and --provider overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.Database.Provider = provider
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if dbURL, _ := cmd.Flags().GetString("db"); dbURL != "" {
		os.Setenv(cfg.Database.URLEnv, dbURL)
		color.New(color.FgCyan).Fprintf(os.Stderr, "📊 Using database: %s\n", maskDBURL(dbURL))
	}
	return cfg, nil
}

func openAdapter(ctx context.Context, cfg *config.Config) (database.Adapter, error) {
	adapter, err := database.NewAdapter(cfg.Database.Provider, database.WithChunkSize(cfg.Generator.InsertChunk))
	if err != nil {
		return nil, err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, fmt.Errorf("failed to get database URL: %w", err)
	}

	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return adapter, nil
}

// maskDBURL masks password in database URL for display
func maskDBURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:10] + "***" + url[len(url)-10:]
}
