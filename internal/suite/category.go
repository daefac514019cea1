package suite

import (
	"path/filepath"

	"techstore/internal/config"
)

// Category identifies which part of the test suite a run targets.
type Category int

const (
	CategoryAll Category = iota
	CategorySmoke
	CategoryIntegration
	CategoryE2E
	CategoryRegression
)

// Select picks exactly one category from the parsed flags.
// Precedence: smoke > integration > e2e > regression > all (default).
func Select(flags config.Flags) Category {
	switch {
	case flags.Smoke:
		return CategorySmoke
	case flags.Integration:
		return CategoryIntegration
	case flags.E2E:
		return CategoryE2E
	case flags.Regression:
		return CategoryRegression
	default:
		return CategoryAll
	}
}

func (c Category) String() string {
	switch c {
	case CategorySmoke:
		return "smoke"
	case CategoryIntegration:
		return "integration"
	case CategoryE2E:
		return "e2e"
	case CategoryRegression:
		return "regression"
	default:
		return "all"
	}
}

// Description returns the label printed in run banners.
func (c Category) Description() string {
	switch c {
	case CategorySmoke:
		return "Smoke Tests"
	case CategoryIntegration:
		return "Integration Tests"
	case CategoryE2E:
		return "End-to-End Tests"
	case CategoryRegression:
		return "Regression Tests"
	default:
		return "All Tests"
	}
}

// Target returns the pytest target for this category relative to testsDir.
// The all category targets the whole suite directory.
func (c Category) Target(testsDir string) string {
	switch c {
	case CategorySmoke:
		return filepath.Join(testsDir, "test_smoke.py")
	case CategoryIntegration:
		return filepath.Join(testsDir, "test_integration.py")
	case CategoryE2E:
		return filepath.Join(testsDir, "test_e2e.py")
	case CategoryRegression:
		return filepath.Join(testsDir, "test_regression.py")
	default:
		return testsDir + "/"
	}
}

// ReportFile returns the HTML report file name for this category.
func (c Category) ReportFile() string {
	switch c {
	case CategorySmoke:
		return "smoke_report.html"
	case CategoryIntegration:
		return "integration_report.html"
	case CategoryE2E:
		return "e2e_report.html"
	case CategoryRegression:
		return "regression_report.html"
	default:
		return "all_tests_report.html"
	}
}
