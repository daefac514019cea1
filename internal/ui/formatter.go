package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"techstore/internal/config"
	"techstore/internal/discovery"
	"techstore/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintRunStats displays the statistics of a stored test run.
func (f *Formatter) PrintRunStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Category")
	color.White("%-27s │\n", meta.Category)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Browser")
	color.White("%-27s │\n", meta.Browser)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Test Cases")
	color.Green("%-27d │\n", meta.PassedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Exit Code")
	color.White("%-27d │\n", meta.ExitCode)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTestCases == 0 {
		color.Green("✓ All tests passed!")
		return
	}
	color.Red("✗ %d test case failure(s)", meta.FailedTestCases)
	fmt.Println()
	f.printFailures(output.Failures)
}

// printFailures lists failures grouped by file.
func (f *Formatter) printFailures(failures []domain.TestFailure) {
	byFile := make(map[string][]domain.TestFailure)
	for _, failure := range failures {
		byFile[failure.FilePath] = append(byFile[failure.FilePath], failure)
	}

	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		color.Yellow("%s", file)
		for _, failure := range byFile[file] {
			if failure.Message != "" {
				color.Red("  ✗ %s - %s", failure.TestName, failure.Message)
			} else {
				color.Red("  ✗ %s", failure.TestName)
			}
		}
	}
}

// PrintTestList prints a list of discovered test files, optionally with test cases.
func (f *Formatter) PrintTestList(tests []string, showTestCases bool) error {
	if showTestCases {
		color.Green("Found %d test file(s) with test cases:\n", len(tests))
	} else {
		color.Green("Found %d test file(s):\n", len(tests))
	}

	for i, test := range tests {
		relPath, err := filepath.Rel(f.config.ProjectPath, test)
		if err != nil {
			relPath = test
		}

		isLastFile := i == len(tests)-1
		if isLastFile {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}

		if !showTestCases {
			continue
		}

		testCases, err := f.parser.FindTestCases(test)
		if err != nil {
			color.Red("Error reading test file %s: %v", test, err)
			continue
		}

		for j, testCase := range testCases {
			isLastCase := j == len(testCases)-1
			var prefix string
			switch {
			case isLastFile && isLastCase:
				prefix = "    └── "
			case isLastFile:
				prefix = "    ├── "
			case isLastCase:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(testCase))
		}
		if len(testCases) == 0 {
			prefix := "│   └── "
			if isLastFile {
				prefix = "    └── "
			}
			fmt.Printf("%s%s\n", prefix, color.RedString("(no test cases found)"))
		}
	}

	return nil
}
