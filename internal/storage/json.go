package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"techstore/internal/domain"
)

// Save writes run metadata and failures to the configured JSON output file.
// The timestamp is stamped here so callers only describe the run itself.
func (s *JSONStorage) Save(meta domain.RunMeta, failures []domain.TestFailure) error {
	meta.Timestamp = time.Now().Format(time.RFC3339)
	if failures == nil {
		failures = []domain.TestFailure{}
	}
	return s.SaveOutput(&domain.RunOutput{
		Meta:     meta,
		Failures: failures,
	})
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
