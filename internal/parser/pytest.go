package parser

import (
	"regexp"
	"strconv"
	"strings"

	"techstore/internal/domain"
)

// PytestParser parses pytest console output
type PytestParser struct{}

// NewPytestParser creates a new PytestParser
func NewPytestParser() *PytestParser {
	return &PytestParser{}
}

var (
	// Summary line tokens: "3 failed, 12 passed, 1 error in 42.10s"
	passedPattern = regexp.MustCompile(`(\d+) passed`)
	failedPattern = regexp.MustCompile(`(\d+) failed`)
	errorPattern  = regexp.MustCompile(`(\d+) errors?\b`)

	// Short summary lines: "FAILED tests/test_e2e.py::test_checkout - AssertionError: ..."
	failedLinePattern = regexp.MustCompile(`(?m)^FAILED\s+(\S+?)::(\S+)(?:\s+-\s+(.*))?$`)
	errorLinePattern  = regexp.MustCompile(`(?m)^ERROR\s+(\S+?)(?:::(\S+))?(?:\s+-\s+(.*))?$`)
)

// ParseCounts extracts passed and failed test case counts from pytest output.
// Errors count as failures. If no summary line is found, falls back to one
// case per invocation based on the exit code.
func (p *PytestParser) ParseCounts(result domain.CommandResult) (passed, failed int) {
	output := result.Stdout

	passed = matchCount(passedPattern, output)
	failed = matchCount(failedPattern, output) + matchCount(errorPattern, output)
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	if result.Success {
		return 1, 0
	}
	return 0, 1
}

func matchCount(pattern *regexp.Regexp, output string) int {
	match := pattern.FindStringSubmatch(output)
	if len(match) < 2 {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return n
}

// ParseFailures extracts structured failures from pytest's short test summary.
func (p *PytestParser) ParseFailures(result domain.CommandResult) []domain.TestFailure {
	var failures []domain.TestFailure

	for _, match := range failedLinePattern.FindAllStringSubmatch(result.Stdout, -1) {
		failures = append(failures, domain.TestFailure{
			TestName: match[2],
			FilePath: match[1],
			Message:  strings.TrimSpace(match[3]),
		})
	}

	for _, match := range errorLinePattern.FindAllStringSubmatch(result.Stdout, -1) {
		name := match[2]
		if name == "" {
			name = "(collection error)"
		}
		failures = append(failures, domain.TestFailure{
			TestName: name,
			FilePath: match[1],
			Message:  strings.TrimSpace(match[3]),
		})
	}

	return failures
}
