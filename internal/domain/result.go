package domain

import "time"

// CommandResult represents the outcome of a single external command invocation.
type CommandResult struct {
	Argv        []string      // Executable plus arguments, as invoked
	Description string        // Human-readable label for the invocation
	ExitCode    int           // Exit code of the child process
	Stdout      string        // Captured standard output
	Stderr      string        // Captured standard error
	Duration    time.Duration // Wall-clock time of the invocation
	Success     bool          // True iff the exit code was zero
}

// TestFailure represents a single failed test case parsed from runner output.
type TestFailure struct {
	TestName string `json:"test_name"`
	FilePath string `json:"file_path"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved,omitempty"` // Track if test case is marked as resolved
}

// RunMeta contains metadata about a test run.
type RunMeta struct {
	Category        string  `json:"category"`
	Browser         string  `json:"browser"`
	PassedTestCases int     `json:"passed_test_cases"`
	FailedTestCases int     `json:"failed_test_cases"`
	ExitCode        int     `json:"exit_code"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete stored structure for a test run.
type RunOutput struct {
	Meta     RunMeta       `json:"meta"`
	Failures []TestFailure `json:"failures"`
}
