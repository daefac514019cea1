package commands

import (
	"techstore/internal/cli"
	"techstore/internal/config"
	"techstore/internal/discovery"
	"techstore/internal/environment"
	"techstore/internal/execution"
	"techstore/internal/parser"
	"techstore/internal/storage"
	"techstore/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Results *ResultsCommand
	Faills  *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	caseParser := discovery.NewParser()
	setup := environment.NewSetup(cfg)
	runner := execution.NewExecRunner(cfg)
	pytestParser := parser.NewPytestParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, caseParser)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:     NewRunCommand(cfg, setup, runner, pytestParser, jsonStorage),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		Results: NewResultsCommand(cfg, jsonStorage, formatter),
		Faills:  NewFaillsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra. The run behavior lives on the
// root command so the documented flag surface works directly:
// runtests --e2e --browser firefox --headless
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}
	rootCmd.Flags().BoolVar(&flags.Smoke, "smoke", false, "Run smoke tests only")
	rootCmd.Flags().BoolVar(&flags.Integration, "integration", false, "Run integration tests only")
	rootCmd.Flags().BoolVar(&flags.E2E, "e2e", false, "Run end-to-end tests only")
	rootCmd.Flags().BoolVar(&flags.Regression, "regression", false, "Run regression tests only")
	rootCmd.Flags().BoolVar(&flags.All, "all", false, "Run all tests (default)")
	rootCmd.Flags().StringVar(&flags.Browser, "browser", config.DefaultBrowser, "Browser to use (chrome, firefox)")
	rootCmd.Flags().BoolVar(&flags.Headless, "headless", false, "Run in headless mode")
	rootCmd.Flags().BoolVar(&flags.Parallel, "parallel", false, "Run tests in parallel")
	rootCmd.Flags().BoolVar(&flags.Coverage, "coverage", false, "Generate coverage report")
	rootCmd.Flags().BoolVar(&flags.HTML, "html", false, "Generate HTML report")
	rootCmd.Flags().BoolVar(&flags.Slow, "slow", false, "Include slow tests")
	rootCmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Verbose output")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Scan and list all pytest files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'test_smoke.py' or '*checkout*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases instead of test files")
	rootCmd.AddCommand(listCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "Show statistics of the last test run",
		Long:  "Display the stored statistics and failures of the most recent test run",
		RunE:  c.Results.Execute,
	}
	rootCmd.AddCommand(resultsCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last test run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)
}
