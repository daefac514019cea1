package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Parser parses test files to extract test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Matches pytest test functions and methods:
//   - def test_checkout(self):
//   - async def test_cart_badge():
var testCasePattern = regexp.MustCompile(`(?m)^\s*(?:async\s+)?def\s+(test_?\w+)\s*\(`)

// FindTestCases finds all test cases in a pytest file
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	seen := make(map[string]bool)
	for _, match := range testCasePattern.FindAllStringSubmatch(string(content), -1) {
		if len(match) > 1 {
			seen[match[1]] = true
		}
	}

	testCases := make([]string, 0, len(seen))
	for testCase := range seen {
		testCases = append(testCases, testCase)
	}
	sort.Strings(testCases)
	return testCases, nil
}
