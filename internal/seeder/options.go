package seeder

import (
	"github.com/Rana718/tablefill/internal/config"
)

type Options struct {
	// UniqueColumns are column names that always receive batch-unique integers,
	// in addition to primary keys.
	UniqueColumns  []string
	KeyMin         int64
	KeyMax         int64
	MaxKeyAttempts int
	Exclusions     *Exclusions
}

func DefaultOptions() Options {
	return Options{
		UniqueColumns:  []string{"IntColumn"},
		KeyMin:         100000,
		KeyMax:         999999,
		MaxKeyAttempts: 64,
		Exclusions:     DefaultExclusions(),
	}
}

func OptionsFromConfig(cfg config.Generator) (Options, error) {
	exclusions, err := LoadExclusions(cfg.ExclusionsFile)
	if err != nil {
		return Options{}, err
	}
	return Options{
		UniqueColumns:  cfg.UniqueColumns,
		KeyMin:         cfg.KeyMin,
		KeyMax:         cfg.KeyMax,
		MaxKeyAttempts: cfg.MaxKeyAttempts,
		Exclusions:     exclusions,
	}, nil
}
