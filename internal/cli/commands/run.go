package commands

import (
	"errors"
	"fmt"

	"techstore/internal/config"
	"techstore/internal/domain"
	"techstore/internal/environment"
	"techstore/internal/execution"
	"techstore/internal/parser"
	"techstore/internal/storage"
	"techstore/internal/suite"
	"techstore/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrTestsFailed reports that at least one test invocation exited non-zero.
// The entry point maps it to exit code 1 without printing a second error.
var ErrTestsFailed = errors.New("some tests failed")

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	setup   *environment.Setup
	runner  execution.Runner
	parser  *parser.PytestParser
	storage storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	setup *environment.Setup,
	runner execution.Runner,
	pytestParser *parser.PytestParser,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:  cfg,
		setup:   setup,
		runner:  runner,
		parser:  pytestParser,
		storage: st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := rc.setup.Ensure(); err != nil {
		return err
	}

	category := suite.Select(rc.config.Flags)
	argv := execution.BuildCommand(rc.config, category)

	result := rc.invoke(argv, category.Description())
	success := result.Success

	passed, failed := rc.parser.ParseCounts(result)
	failures := rc.parser.ParseFailures(result)

	meta := domain.RunMeta{
		Category:        category.String(),
		Browser:         rc.config.Browser(),
		PassedTestCases: passed,
		FailedTestCases: failed,
		ExitCode:        result.ExitCode,
		Duration:        result.Duration.String(),
		DurationSeconds: result.Duration.Seconds(),
	}
	if err := rc.storage.Save(meta, failures); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	// The standalone coverage pass only runs on the bare default path.
	if rc.config.Flags.Coverage && category == suite.CategoryAll {
		success = rc.runCoverageReport() && success
	}

	ui.PrintFinalBanner(success)
	if !success {
		return ErrTestsFailed
	}
	return nil
}

// invoke runs one external command with banner, spinner and report.
func (rc *RunCommand) invoke(argv []string, description string) domain.CommandResult {
	ui.PrintRunHeader(description, argv)

	spinner := ui.NewSpinner("Running " + description)
	spinner.Start()
	result := rc.runner.Run(argv, description)
	spinner.Stop()

	ui.PrintCommandReport(result)
	return result
}

// runCoverageReport runs the full suite under the coverage wrapper and, on
// success, generates the HTML report. The HTML pass is best-effort.
func (rc *RunCommand) runCoverageReport() bool {
	result := rc.invoke(execution.BuildCoverageRun(rc.config), "Coverage Analysis")
	if !result.Success {
		return false
	}

	htmlResult := rc.invoke(execution.BuildCoverageHTML(rc.config), "Coverage HTML Report")
	if htmlResult.Success {
		color.White("\nCoverage report generated in %s/", rc.config.GetCoverageHTMLDir())
	}
	return true
}
