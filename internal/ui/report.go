package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"techstore/internal/domain"
)

const separatorWidth = 60

func separator() string {
	return strings.Repeat("=", separatorWidth)
}

// PrintRunHeader prints the banner shown before an external command runs.
func PrintRunHeader(description string, argv []string) {
	fmt.Println()
	color.Cyan(separator())
	color.Cyan("Running: %s", description)
	fmt.Printf("Command: %s\n", strings.Join(argv, " "))
	color.Cyan(separator())
}

// PrintCommandReport prints exit code, duration and the captured streams of a
// finished command.
func PrintCommandReport(result domain.CommandResult) {
	fmt.Println()
	if result.Success {
		color.Green("Exit Code: %d", result.ExitCode)
	} else {
		color.Red("Exit Code: %d", result.ExitCode)
	}
	fmt.Printf("Duration: %.2f seconds\n", result.Duration.Seconds())

	if result.Stdout != "" {
		color.White("\nSTDOUT:")
		fmt.Println(result.Stdout)
	}
	if result.Stderr != "" {
		color.Yellow("\nSTDERR:")
		fmt.Println(result.Stderr)
	}
}

// PrintFinalBanner prints the overall pass/fail summary.
func PrintFinalBanner(success bool) {
	fmt.Println()
	color.Cyan(separator())
	if success {
		color.Green("✅ All tests passed successfully!")
	} else {
		color.Red("❌ Some tests failed!")
	}
	color.Cyan(separator())
}
