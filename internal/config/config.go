package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database  Database  `json:"database" mapstructure:"database"`
	Server    Server    `json:"server" mapstructure:"server"`
	Generator Generator `json:"generator" mapstructure:"generator"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Server struct {
	Port           int           `json:"port" mapstructure:"port"`
	RequestTimeout time.Duration `json:"request_timeout" mapstructure:"request_timeout"`
}

type Generator struct {
	KeyMin           int64    `json:"key_min" mapstructure:"key_min"`
	KeyMax           int64    `json:"key_max" mapstructure:"key_max"`
	MaxKeyAttempts   int      `json:"max_key_attempts" mapstructure:"max_key_attempts"`
	DefaultStringCap int      `json:"default_string_cap" mapstructure:"default_string_cap"`
	UniqueColumns    []string `json:"unique_columns" mapstructure:"unique_columns"`
	MaxRecords       int      `json:"max_records" mapstructure:"max_records"`
	InsertChunk      int      `json:"insert_chunk" mapstructure:"insert_chunk"`
	ExclusionsFile   string   `json:"exclusions_file,omitempty" mapstructure:"exclusions_file"`
	// Seed makes runs reproducible; 0 means random. Request n of a process
	// uses Seed+n, so the first request of every run replays the same rows.
	Seed             uint64   `json:"seed,omitempty" mapstructure:"seed"`
}

var supportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3", "sqlserver", "mssql"}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Provider == "" {
		c.Database.Provider = "postgresql"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 60 * time.Second
	}

	g := &c.Generator
	if g.KeyMin == 0 && g.KeyMax == 0 {
		g.KeyMin, g.KeyMax = 100000, 999999
	}
	if g.MaxKeyAttempts == 0 {
		g.MaxKeyAttempts = 64
	}
	if g.DefaultStringCap == 0 {
		g.DefaultStringCap = 50
	}
	if len(g.UniqueColumns) == 0 {
		g.UniqueColumns = []string{"IntColumn"}
	}
	if g.MaxRecords == 0 {
		g.MaxRecords = 10000
	}
	if g.InsertChunk == 0 {
		g.InsertChunk = 100
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive")
	}

	g := c.Generator
	if g.KeyMin > g.KeyMax {
		return fmt.Errorf("generator.key_min (%d) is greater than generator.key_max (%d)", g.KeyMin, g.KeyMax)
	}
	if g.MaxKeyAttempts <= 0 {
		return fmt.Errorf("generator.max_key_attempts must be positive")
	}
	if g.DefaultStringCap <= 0 {
		return fmt.Errorf("generator.default_string_cap must be positive")
	}
	if g.MaxRecords <= 0 {
		return fmt.Errorf("generator.max_records must be positive")
	}
	if g.InsertChunk <= 0 {
		return fmt.Errorf("generator.insert_chunk must be positive")
	}

	return nil
}

// NormalizedProvider folds provider aliases onto one name per engine.
func (c *Config) NormalizedProvider() string {
	switch c.Database.Provider {
	case "postgresql", "postgres":
		return "postgresql"
	case "sqlite", "sqlite3":
		return "sqlite"
	case "sqlserver", "mssql":
		return "sqlserver"
	default:
		return c.Database.Provider
	}
}
