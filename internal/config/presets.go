package config

import "github.com/san-kum/rvlab/internal/orbit"

// Presets are well-studied spectroscopic orbits. Epochs are JD-2450000,
// periods in days, velocities in km/s, semi-major axes in AU.
var Presets = map[string]*Config{
	"hd156846b": {
		Solver: "newton",
		Orbit: orbit.Elements{
			K: 0.464, Period: 359.51, Tperi: 3998.1, Omega: 52.2,
			Ecc: 0.847, SemiMajor: 0.9930, Vsys: -68.54,
		},
		Grid:  GridConfig{Start: 3600, End: 4200, NT: 1000, N: 1000},
		Solve: SolveConfig{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter},
	},
	"51pegb": {
		Solver: "newton",
		Orbit: orbit.Elements{
			K: 0.0559, Period: 4.2308, Tperi: 50.05, Omega: 58.0,
			Ecc: 0.013, SemiMajor: 0.0527, Vsys: -33.25,
		},
		Grid:  GridConfig{Start: 48, End: 61, NT: 500, N: 800},
		Solve: SolveConfig{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter},
	},
	"hd80606b": {
		// Near the practical eccentricity ceiling for the newton guess;
		// bisection is a safer pick when pushing e further.
		Solver: "newton",
		Orbit: orbit.Elements{
			K: 0.472, Period: 111.437, Tperi: 4424.86, Omega: 300.8,
			Ecc: 0.934, SemiMajor: 0.455, Vsys: 3.95,
		},
		Grid:  GridConfig{Start: 4380, End: 4600, NT: 2000, N: 1500},
		Solve: SolveConfig{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter},
	},
	"16cygbb": {
		Solver: "newton",
		Orbit: orbit.Elements{
			K: 0.0508, Period: 798.5, Tperi: 6549.1, Omega: 85.8,
			Ecc: 0.68, SemiMajor: 1.68, Vsys: -27.7,
		},
		Grid:  GridConfig{Start: 6400, End: 8000, NT: 1500, N: 1500},
		Solve: SolveConfig{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
