package main

import (
	"errors"
	"fmt"
	"os"

	"techstore/internal/cli"
	"techstore/internal/cli/commands"
	"techstore/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "runtests",
		Short:   "Test runner for the TechStore e-commerce project",
		Long:    `Runner for the TechStore Selenium WebDriver test suite. Supports running different test categories (smoke, integration, e2e, regression) with various browser and reporting configurations.`,
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Load config (defaults + .env overrides)
	cfg := config.Load()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
