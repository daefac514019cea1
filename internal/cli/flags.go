package cli

import "techstore/internal/config"

// Flags holds command-line flags
type Flags struct {
	Smoke       bool
	Integration bool
	E2E         bool
	Regression  bool
	All         bool
	Browser     string
	Headless    bool
	Parallel    bool
	Coverage    bool
	HTML        bool
	Slow        bool
	Verbose     bool
	Filter      string
	TestCases   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Smoke:       f.Smoke,
		Integration: f.Integration,
		E2E:         f.E2E,
		Regression:  f.Regression,
		All:         f.All,
		Browser:     f.Browser,
		Headless:    f.Headless,
		Parallel:    f.Parallel,
		Coverage:    f.Coverage,
		HTML:        f.HTML,
		Slow:        f.Slow,
		Verbose:     f.Verbose,
		NameFilter:  f.Filter,
		TestCases:   f.TestCases,
	}
}
