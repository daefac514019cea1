package execution

import (
	"strings"

	"techstore/internal/config"
	"techstore/internal/suite"
)

// BuildCommand builds the pytest argv for a category. Pure: the same config
// and category always produce the same token sequence.
func BuildCommand(cfg *config.Config, cat suite.Category) []string {
	command := []string{
		cfg.PythonBin, "-m", "pytest",
		cat.Target(cfg.TestsDir),
		"-v",
		"--browser=" + cfg.Browser(),
	}

	if cfg.Flags.Headless {
		command = append(command, "--headless")
	}

	if cfg.Flags.Parallel {
		command = append(command, "-n", "auto")
	}

	if cfg.Flags.HTML {
		command = append(command,
			"--html="+cfg.GetReportPath(cat.ReportFile()),
			"--self-contained-html",
		)
	}

	// Inline coverage measurement only applies to the full suite.
	if cat == suite.CategoryAll && cfg.Flags.Coverage {
		for _, src := range cfg.CoverageSources {
			command = append(command, "--cov="+src)
		}
		command = append(command,
			"--cov-report=html:"+cfg.GetCoverageHTMLDir(),
			"--cov-report=term-missing",
		)
	}

	return command
}

// BuildCoverageRun builds the full-suite invocation under the coverage wrapper.
func BuildCoverageRun(cfg *config.Config) []string {
	return []string{
		cfg.PythonBin, "-m", "coverage",
		"run", "--source=" + strings.Join(cfg.CoverageSources, ","),
		"-m", "pytest", cfg.TestsDir + "/",
	}
}

// BuildCoverageHTML builds the HTML coverage report invocation.
func BuildCoverageHTML(cfg *config.Config) []string {
	return []string{
		cfg.PythonBin, "-m", "coverage",
		"html", "-d", cfg.GetCoverageHTMLDir(),
	}
}
