package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	PythonBin   string
	TestsDir    string

	// Output settings
	ScreenshotsDir   string
	ReportsDir       string
	CoverageDir      string
	RequirementsFile string
	OutputJSONFile   string

	// Coverage settings
	CoverageSources []string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

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
	NameFilter  string
	TestCases   bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:      DefaultProjectPath,
		PythonBin:        DefaultPythonBin,
		TestsDir:         DefaultTestsDir,
		ScreenshotsDir:   DefaultScreenshotsDir,
		ReportsDir:       DefaultReportsDir,
		CoverageDir:      DefaultCoverageDir,
		RequirementsFile: DefaultRequirementsFile,
		OutputJSONFile:   DefaultOutputJSONFile,
		Flags:            Flags{Browser: DefaultBrowser},
	}
	cfg.CoverageSources = make([]string, len(DefaultCoverageSources))
	copy(cfg.CoverageSources, DefaultCoverageSources)
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config with defaults and applies .env / environment overrides
func Load() *Config {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	cfg := New()
	if v := os.Getenv("RUNTESTS_PYTHON"); v != "" {
		cfg.PythonBin = v
	}
	if v := os.Getenv("RUNTESTS_PROJECT_PATH"); v != "" {
		cfg.ProjectPath = v
	}
	return cfg
}

// Browser returns the requested browser, falling back to the default.
func (c *Config) Browser() string {
	if c.Flags.Browser != "" {
		return c.Flags.Browser
	}
	return DefaultBrowser
}

// GetTestsPath returns the test suite directory under the project path.
func (c *Config) GetTestsPath() string {
	return filepath.Join(c.ProjectPath, c.TestsDir)
}

// GetReportPath returns the path of a report file under the reports directory.
// Kept relative to the project so the built command lines stay readable.
func (c *Config) GetReportPath(name string) string {
	return filepath.Join(c.ReportsDir, name)
}

// GetCoverageHTMLDir returns the directory for the HTML coverage report.
func (c *Config) GetCoverageHTMLDir() string {
	return filepath.Join(c.CoverageDir, "html")
}

// GetOutputPath returns the full path to the stored results JSON file.
// Resolves to an absolute path so run and faills always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.ReportsDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
