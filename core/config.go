// SPDX-License-Identifier: MIT

package core

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds process-level tuning read from the environment.
//
//	LVLMESH_PARALLEL_MIN  minimum loop length for fan-out (default 1000)
//	LVLMESH_WORKERS       worker cap, 0 = GOMAXPROCS (default 0)
//	LVLMESH_VERBOSE       klog stage summaries (default false)
type Config struct {
	ParallelMin int  `env:"LVLMESH_PARALLEL_MIN" envDefault:"1000"`
	Workers     int  `env:"LVLMESH_WORKERS" envDefault:"0"`
	Verbose     bool `env:"LVLMESH_VERBOSE" envDefault:"false"`
}

// LoadConfig parses Config from the environment.
//
// Errors:
//   - the env parser's error for malformed values (wrapped),
//   - ErrOptionViolation for negative counts.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "core: load config")
	}
	if cfg.ParallelMin < 0 {
		return Config{}, errors.Wrapf(ErrOptionViolation, "LVLMESH_PARALLEL_MIN cannot be negative (%d)", cfg.ParallelMin)
	}
	if cfg.Workers < 0 {
		return Config{}, errors.Wrapf(ErrOptionViolation, "LVLMESH_WORKERS cannot be negative (%d)", cfg.Workers)
	}

	return cfg, nil
}
