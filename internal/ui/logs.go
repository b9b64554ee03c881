package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"itr/internal/domain"
)

// LogViewer browses the build logs of test cases in an interactive TUI
type LogViewer struct{}

// NewLogViewer creates a new LogViewer
func NewLogViewer() *LogViewer {
	return &LogViewer{}
}

// View displays the given results: names on the left, the log on the right
func (lv *LogViewer) View(results []domain.TestResult) error {
	if len(results) == 0 {
		color.Green("✓ No failing build logs found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, result := range results {
		list.AddItem(listItemText(i, result), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetScrollable(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 3, false)

	failed := 0
	for _, result := range results {
		if !result.Success {
			failed++
		}
	}
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Build Logs (%d shown, %d failed) | ↑↓ navigate, → view log, ← back, [yellow]X[white] excerpt only, Q to exit ", len(results), failed))

	excerptOnly := false
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results) {
			return
		}
		statsView.SetText(formatLogStats(results[index]))
		if excerptOnly {
			detailsView.SetText(formatExcerpt(results[index]))
		} else {
			detailsView.SetText(tview.TranslateANSI(tview.Escape(results[index].Output)))
		}
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'x', 'X':
				excerptOnly = !excerptOnly
				updateDetails()
				return nil
			case 'q', 'Q':
				app.Stop()
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
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(index int, result domain.TestResult) string {
	if result.Success {
		return fmt.Sprintf("[green]✓[white] [yellow]%d.[white] %s", index+1, tview.Escape(result.Case.Name))
	}
	return fmt.Sprintf("[red]✗[white] [yellow]%d.[white] %s", index+1, tview.Escape(result.Case.Name))
}

// formatLogStats formats the header above a log using tview color tags
func formatLogStats(result domain.TestResult) string {
	status := "[green]passed[white]"
	if !result.Success {
		status = "[red]failed[white]"
	}
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]  [cyan]goals:[white] %s  [cyan]status:[white] %s\n[gray]%s[white]",
		tview.Escape(result.Case.Name), tview.Escape(result.Case.Goals), status, tview.Escape(result.Case.Dir))
}

// formatExcerpt formats the error lines of a failed build using tview color tags
func formatExcerpt(result domain.TestResult) string {
	if len(result.Excerpt) == 0 {
		return "[gray]no error lines found[white]"
	}

	var builder strings.Builder
	builder.WriteString("[yellow]Error lines:[white]\n\n")
	for _, line := range result.Excerpt {
		fmt.Fprintf(&builder, "  [red]%s[white]\n", tview.Escape(line))
	}
	return builder.String()
}
