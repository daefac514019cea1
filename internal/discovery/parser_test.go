package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()

	testFile := filepath.Join(t.TempDir(), "test_cart.py")
	pyContent := `import pytest

from pages.cart_page import CartPage


class TestCart:
    def test_add_single_item(self, driver):
        pass

    def test_add_multiple_items(self, driver):
        pass

    async def test_cart_badge_updates(self, driver):
        pass

    def _helper(self):
        pass


def test_clear_cart(driver):
    pass


def build_cart():
    pass
`
	if err := os.WriteFile(testFile, []byte(pyContent), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds test functions and methods", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			"test_add_multiple_items",
			"test_add_single_item",
			"test_cart_badge_updates",
			"test_clear_cart",
		}
		if len(testCases) != len(expected) {
			t.Fatalf("expected %d test cases, got %d: %v", len(expected), len(testCases), testCases)
		}
		for i, name := range expected {
			if testCases[i] != name {
				t.Errorf("expected %s at index %d, got %s", name, i, testCases[i])
			}
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		if _, err := parser.FindTestCases("/no/such/file.py"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
