package environment

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"
	"techstore/internal/config"
)

// Setup prepares the working directory for a test run.
type Setup struct {
	config *config.Config
}

// NewSetup creates a new Setup
func NewSetup(cfg *config.Config) *Setup {
	return &Setup{config: cfg}
}

// Ensure creates the output directories and installs declared dependencies.
// Directory creation is idempotent. Installer failures are reported but not
// fatal; the test run proceeds either way.
func (s *Setup) Ensure() error {
	color.White("Setting up testing environment...")

	dirs := []string{
		s.config.ScreenshotsDir,
		s.config.ReportsDir,
		s.config.CoverageDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(s.config.ProjectPath, dir), 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	s.installRequirements()

	color.White("Environment setup complete!")
	return nil
}

// installRequirements runs pip against the dependency manifest when present.
func (s *Setup) installRequirements() {
	reqPath := filepath.Join(s.config.ProjectPath, s.config.RequirementsFile)
	if _, err := os.Stat(reqPath); err != nil {
		return
	}

	color.White("Installing dependencies...")
	cmd := exec.Command(s.config.PythonBin, "-m", "pip", "install", "-r", s.config.RequirementsFile)
	cmd.Dir = s.config.ProjectPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		color.Yellow("Dependency install failed: %v", err)
	}
}
