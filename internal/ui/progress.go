package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Spinner shows activity while a blocking child process runs.
type Spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

// NewSpinner creates a new indeterminate spinner with the given description
func NewSpinner(description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
	)
	return &Spinner{bar: bar, done: make(chan struct{})}
}

// Start begins animating the spinner until Stop is called.
func (s *Spinner) Start() {
	go func() {
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	close(s.done)
	_ = s.bar.Finish()
	fmt.Fprint(os.Stderr, "\r\033[K")
}
