package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	testDirs := []string{
		"tests",
		"tests/pages",
		"venv/lib",
		"__pycache__",
		".git",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	testFiles := []string{
		"tests/test_smoke.py",
		"tests/test_e2e.py",
		"tests/pages/test_checkout.py",
		"tests/conftest.py",
		"tests/helpers.py",
		"venv/lib/test_vendor.py",
		"__pycache__/test_cached.py",
		".git/test_hidden.py",
		"manage.py",
	}
	for _, file := range testFiles {
		if err := os.WriteFile(filepath.Join(tmpDir, file), []byte("# test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"venv", "__pycache__"})

	t.Run("scans test files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Only the three test_*.py files outside skipped/hidden dirs.
		if len(results) != 3 {
			t.Errorf("expected 3 test files, got %d: %v", len(results), results)
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		if _, err := scanner.Scan("/non/existent/path"); err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		if _, err := scanner.Scan(filepath.Join(tmpDir, "manage.py")); err == nil {
			t.Error("expected error for file path")
		}
	})
}
