package execution

import (
	"bytes"
	"errors"
	"os/exec"
	"time"

	"techstore/internal/config"
	"techstore/internal/domain"
)

// Runner executes external commands and captures their output.
type Runner interface {
	Run(argv []string, description string) domain.CommandResult
}

// ExecRunner runs commands via os/exec, blocking until the child exits.
type ExecRunner struct {
	config *config.Config
}

// NewExecRunner creates a new ExecRunner
func NewExecRunner(cfg *config.Config) *ExecRunner {
	return &ExecRunner{config: cfg}
}

// Run executes the given argv with stdout/stderr captured and returns the
// result. Success is exit code zero; failing to start the child also counts
// as failure.
func (r *ExecRunner) Run(argv []string, description string) domain.CommandResult {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.config.ProjectPath
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if err != nil {
		exitCode = 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
	}

	return domain.CommandResult{
		Argv:        argv,
		Description: description,
		ExitCode:    exitCode,
		Stdout:      stdout.String(),
		Stderr:      stderr.String(),
		Duration:    duration,
		Success:     err == nil,
	}
}
