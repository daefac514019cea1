package environment

import (
	"os"
	"path/filepath"
	"testing"

	"techstore/internal/config"
)

func TestSetup_Ensure(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	setup := NewSetup(cfg)

	if err := setup.Ensure(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, dir := range []string{"screenshots", "reports", "coverage"} {
		info, err := os.Stat(filepath.Join(cfg.ProjectPath, dir))
		if err != nil {
			t.Errorf("expected directory %s to exist: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("expected %s to be a directory", dir)
		}
	}

	// Second run must be a no-op, not an error.
	if err := setup.Ensure(); err != nil {
		t.Fatalf("expected idempotent setup, got error: %v", err)
	}
}

func TestSetup_Ensure_NoRequirements(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	// No requirements.txt present: the installer must not run and Ensure
	// must still succeed.
	if err := NewSetup(cfg).Ensure(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetup_Ensure_InstallerFailureIgnored(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	cfg.PythonBin = "definitely-not-a-real-binary-xyz"

	reqPath := filepath.Join(cfg.ProjectPath, cfg.RequirementsFile)
	if err := os.WriteFile(reqPath, []byte("selenium\n"), 0644); err != nil {
		t.Fatalf("failed to write requirements file: %v", err)
	}

	if err := NewSetup(cfg).Ensure(); err != nil {
		t.Fatalf("installer failure must not fail setup: %v", err)
	}
}
