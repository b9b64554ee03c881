package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"itr/internal/domain"
)

// Formatter prints per-case progress and the run summary as plain console lines
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// CaseStarted prints the test case and the goals it is built with
func (f *Formatter) CaseStarted(tc domain.TestCase) {
	color.New(color.FgCyan).Fprintf(f.out, "Running %s", tc.Name)
	fmt.Fprintf(f.out, " [%s]\n", tc.Goals)
}

// CaseFinished prints the success marker, or the full build output followed by
// the error marker
func (f *Formatter) CaseFinished(result domain.TestResult) {
	if result.Success {
		color.New(color.FgGreen).Fprintf(f.out, "  ✓ %s (%s)\n", result.Case.Name, formatDuration(result.Duration))
		return
	}

	fmt.Fprint(f.out, result.Output)
	if result.Output != "" && result.Output[len(result.Output)-1] != '\n' {
		fmt.Fprintln(f.out)
	}
	if result.Error != nil && result.ExitCode < 0 {
		color.New(color.FgYellow).Fprintf(f.out, "  build did not run: %v\n", result.Error)
	}
	color.New(color.FgRed).Fprintf(f.out, "  ✗ %s (%s)\n", result.Case.Name, formatDuration(result.Duration))
}

// PrintSummary prints the failed test cases. Nothing is printed when all passed.
func (f *Formatter) PrintSummary(summary *domain.RunSummary) {
	if !summary.HasFailures() {
		return
	}

	fmt.Fprintln(f.out)
	color.New(color.FgRed).Fprintf(f.out, "%d test case(s) failed:\n", len(summary.Failed))
	for _, name := range summary.Failed {
		fmt.Fprintf(f.out, "  * %s\n", name)
	}
}

// CaseRow is one line of the case table
type CaseRow struct {
	Name   string
	Goals  string
	Status string
}

const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusNotRun  = "not run"
	StatusMissing = "missing"
)

// PrintCaseTable prints the selected test cases with their goals and last logged status
func (f *Formatter) PrintCaseTable(rows []CaseRow) {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetTitle(fmt.Sprintf("Integration Tests (%d)", len(rows)))
	t.AppendHeader(table.Row{"#", "Test Case", "Goals", "Last Run"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Goals", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
	})

	passed, failed := 0, 0
	for i, row := range rows {
		t.AppendRow(table.Row{i + 1, row.Name, row.Goals, statusString(row.Status)})
		switch row.Status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		}
	}

	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d passed / %d failed", passed, failed)})
	t.Render()
}

// PrintUnlisted prints discovered test-case directories missing from the manifest
func (f *Formatter) PrintUnlisted(names []string) {
	if len(names) == 0 {
		color.New(color.FgGreen).Fprintln(f.out, "Every test-case directory is listed in the manifest")
		return
	}

	color.New(color.FgYellow).Fprintf(f.out, "%d test-case director(ies) not in the manifest:\n", len(names))
	for i, name := range names {
		if i == len(names)-1 {
			fmt.Fprintf(f.out, "└── %s\n", name)
		} else {
			fmt.Fprintf(f.out, "├── %s\n", name)
		}
	}
}

func statusString(status string) string {
	switch status {
	case StatusPassed:
		return color.GreenString("✓ " + status)
	case StatusFailed:
		return color.RedString("✗ " + status)
	case StatusMissing:
		return color.YellowString("! " + status)
	}
	return status
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
