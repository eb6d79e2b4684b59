package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rvlab/internal/orbit"
	"github.com/san-kum/rvlab/internal/rv"
	"github.com/san-kum/rvlab/internal/solver"
)

const (
	DefaultNT        = 1000
	DefaultN         = 1000
	DefaultSolver    = "newton"
	DefaultTolerance = 1e-12
	DefaultMaxIter   = 50
)

type Config struct {
	Solver string         `yaml:"solver"`
	Orbit  orbit.Elements `yaml:"orbit"`
	Grid   GridConfig     `yaml:"grid"`
	Solve  SolveConfig    `yaml:"solve"`
}

type GridConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	NT    int     `yaml:"nt"`
	N     int     `yaml:"n"`
}

type SolveConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
}

// DefaultConfig is the HD 156846 b discovery orbit, one observing
// season at full resolution.
func DefaultConfig() *Config {
	return &Config{
		Solver: DefaultSolver,
		Orbit: orbit.Elements{
			K:         0.464,
			Period:    359.51,
			Tperi:     3998.1,
			Omega:     52.2,
			Ecc:       0.847,
			SemiMajor: 0.9930,
			Vsys:      -68.54,
		},
		Grid: GridConfig{
			Start: 3600,
			End:   4200,
			NT:    DefaultNT,
			N:     DefaultN,
		},
		Solve: SolveConfig{
			Tolerance: DefaultTolerance,
			MaxIter:   DefaultMaxIter,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SolverOptions translates the solve section into solver options.
func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		Tolerance: c.Solve.Tolerance,
		MaxIter:   c.Solve.MaxIter,
	}
}

// GenerateConfig translates the grid section into a pipeline config.
func (c *Config) GenerateConfig() rv.Config {
	return rv.Config{
		Start: c.Grid.Start,
		End:   c.Grid.End,
		NT:    c.Grid.NT,
		N:     c.Grid.N,
	}
}
