package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.PythonBin != DefaultPythonBin {
		t.Errorf("expected PythonBin %s, got %s", DefaultPythonBin, cfg.PythonBin)
	}
	if cfg.Flags.Browser != DefaultBrowser {
		t.Errorf("expected default browser %s, got %s", DefaultBrowser, cfg.Flags.Browser)
	}
	if len(cfg.CoverageSources) != len(DefaultCoverageSources) {
		t.Errorf("expected %d coverage sources, got %d", len(DefaultCoverageSources), len(cfg.CoverageSources))
	}
	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func TestConfig_Browser(t *testing.T) {
	t.Run("uses flag value", func(t *testing.T) {
		cfg := New()
		cfg.Flags.Browser = "firefox"
		if got := cfg.Browser(); got != "firefox" {
			t.Errorf("expected firefox, got %s", got)
		}
	})

	t.Run("falls back to default when empty", func(t *testing.T) {
		cfg := New()
		cfg.Flags.Browser = ""
		if got := cfg.Browser(); got != DefaultBrowser {
			t.Errorf("expected %s, got %s", DefaultBrowser, got)
		}
	})
}

func TestConfig_GetTestsPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/project"
	expected := filepath.Join("/project", "tests")
	if got := cfg.GetTestsPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = t.TempDir()

	path := cfg.GetOutputPath()
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %s", path)
	}
	if !strings.HasSuffix(path, filepath.Join("reports", "test-results.json")) {
		t.Errorf("expected path under reports/, got %s", path)
	}
}

func TestConfig_GetReportPath(t *testing.T) {
	cfg := New()
	if got := cfg.GetReportPath("smoke_report.html"); got != filepath.Join("reports", "smoke_report.html") {
		t.Errorf("unexpected report path: %s", got)
	}
}
