package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultPythonBin is the interpreter used to invoke pytest and pip
	DefaultPythonBin = "python3"
	// DefaultTestsDir is the directory containing the Selenium test suite
	DefaultTestsDir = "tests"
	// DefaultBrowser is the browser used when none is requested
	DefaultBrowser = "chrome"
	// DefaultScreenshotsDir holds failure screenshots taken by the suite
	DefaultScreenshotsDir = "screenshots"
	// DefaultReportsDir holds HTML reports and stored run results
	DefaultReportsDir = "reports"
	// DefaultCoverageDir holds coverage data and the HTML coverage report
	DefaultCoverageDir = "coverage"
	// DefaultRequirementsFile is the dependency manifest installed before runs
	DefaultRequirementsFile = "requirements.txt"
	// DefaultOutputJSONFile is the stored results file name
	DefaultOutputJSONFile = "test-results.json"
)

// DefaultCoverageSources are the packages measured by the coverage pass
var DefaultCoverageSources = []string{"shop", "accounts"}

// DefaultPathsToIgnore are the directories skipped when scanning for tests
var DefaultPathsToIgnore = []string{
	"venv",
	".venv",
	"node_modules",
	"__pycache__",
	"staticfiles",
	"media",
	"screenshots",
	"reports",
	"coverage",
}
