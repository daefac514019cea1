package storage

import (
	"os"
	"path/filepath"
	"testing"

	"techstore/internal/config"
	"techstore/internal/domain"
)

func newTestStorage(t *testing.T) (*JSONStorage, *config.Config) {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg), cfg
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st, cfg := newTestStorage(t)

	meta := domain.RunMeta{
		Category:        "e2e",
		Browser:         "firefox",
		PassedTestCases: 7,
		FailedTestCases: 2,
		ExitCode:        1,
		Duration:        "42s",
		DurationSeconds: 42,
	}
	failures := []domain.TestFailure{
		{TestName: "test_checkout_flow", FilePath: "tests/test_e2e.py", Message: "boom"},
	}

	if err := st.Save(meta, failures); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	// The file lives under the reports directory.
	if _, err := os.Stat(filepath.Join(cfg.ProjectPath, "reports", "test-results.json")); err != nil {
		t.Fatalf("expected results file under reports/: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if output.Meta.Category != "e2e" {
		t.Errorf("expected category e2e, got %s", output.Meta.Category)
	}
	if output.Meta.Browser != "firefox" {
		t.Errorf("expected browser firefox, got %s", output.Meta.Browser)
	}
	if output.Meta.Timestamp == "" {
		t.Error("expected a timestamp to be stamped on save")
	}
	if len(output.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(output.Failures))
	}
	if output.Failures[0].TestName != "test_checkout_flow" {
		t.Errorf("unexpected failure name: %s", output.Failures[0].TestName)
	}
}

func TestJSONStorage_SaveNilFailures(t *testing.T) {
	st, _ := newTestStorage(t)

	if err := st.Save(domain.RunMeta{Category: "smoke"}, nil); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if output.Failures == nil {
		t.Error("expected failures to be an empty slice, not nil")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st, _ := newTestStorage(t)

	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
