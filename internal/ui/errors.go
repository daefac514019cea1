package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"techstore/internal/config"
	"techstore/internal/domain"
	"techstore/internal/storage"
)

// ErrorViewer displays test failures in an interactive TUI
type ErrorViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config, st storage.Storage) *ErrorViewer {
	return &ErrorViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the failures of a run in an interactive TUI
func (ev *ErrorViewer) View(results *domain.RunOutput) error {
	if len(results.Failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range results.Failures {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range results.Failures {
			results.Failures[i].Resolved = resolved[i]
		}
		return ev.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		failure := results.Failures[index]
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, failure.TestName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.TestName)
	}

	for i := range results.Failures {
		list.AddItem(itemText(i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnresolved := func() int {
		count := 0
		for i := range results.Failures {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(results.Failures), countUnresolved(),
		))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Failures) {
			detailsView.SetText(ev.formatFailureDetails(results.Failures[index], index+1))
		}
	}
	updateDetails()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Failures) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					_ = saveResolved()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// List on the left third, details on the right two thirds.
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a test failure using tview color tags.
func (ev *ErrorViewer) formatFailureDetails(failure domain.TestFailure, number int) string {
	var builder strings.Builder

	testName := failure.TestName
	if testName == "" {
		testName = fmt.Sprintf("Test %d", number)
	}

	fmt.Fprintf(&builder, "[red]✗ Test: %s[white]\n\n", testName)
	fmt.Fprintf(&builder, "[cyan]File: %s[white]\n\n", failure.FilePath)
	if failure.Message != "" {
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n", failure.Message)
	}

	return builder.String()
}
