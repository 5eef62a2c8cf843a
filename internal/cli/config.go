package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/ordstat/census"
)

var errBadConfig = errors.New("invalid census configuration")

// censusConfig is the resolved configuration of a census run. It is read
// from an optional TOML file; flags set on the command line take
// precedence.
//
//	samples   = 100000
//	seed      = 42
//	workers   = 8
//	networks  = ["Select2Of5", "Select3Of7"]
//	max_range = 8
type censusConfig struct {
	Samples  int      `toml:"samples"`
	Seed     int64    `toml:"seed"`
	Workers  int      `toml:"workers"`
	Networks []string `toml:"networks"`
	MaxRange int      `toml:"max_range"`
}

func defaultCensusConfig() censusConfig {
	return censusConfig{
		Samples:  census.DefaultSamples,
		Seed:     census.DefaultSeed,
		Workers:  census.DefaultWorkers,
		MaxRange: census.DefaultMaxRange,
	}
}

// loadCensusConfig decodes path over the defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func loadCensusConfig(path string) (censusConfig, error) {
	cfg := defaultCensusConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", errBadConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// validate checks ranges before they reach census options, which panic on
// nonsense.
func (c censusConfig) validate() error {
	switch {
	case c.Samples < 0:
		return fmt.Errorf("%w: samples must be >= 0, got %d", errBadConfig, c.Samples)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", errBadConfig, c.Workers)
	case c.MaxRange < 0 || c.MaxRange > 10:
		return fmt.Errorf("%w: max_range must be in 0..10, got %d", errBadConfig, c.MaxRange)
	}
	return nil
}

func (c censusConfig) options() []census.Option {
	return []census.Option{
		census.WithSamples(c.Samples),
		census.WithSeed(c.Seed),
		census.WithWorkers(c.Workers),
		census.WithMaxRange(c.MaxRange),
	}
}
