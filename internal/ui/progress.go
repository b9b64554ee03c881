package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"itr/internal/domain"
)

// ProgressBar reports test cases on a progress bar, printing only the output
// of failed builds
type ProgressBar struct {
	bar            *progressbar.ProgressBar
	out            io.Writer
	passed, failed int
}

// NewProgressBar creates a new progress bar for count test cases
func NewProgressBar(count int, out io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe("", 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, out: out}
}

// CaseStarted shows the running test case in the bar description
func (p *ProgressBar) CaseStarted(tc domain.TestCase) {
	p.bar.Describe(describe(tc.Name, p.passed, p.failed))
}

// CaseFinished advances the bar. The output of a failed build is printed above it.
func (p *ProgressBar) CaseFinished(result domain.TestResult) {
	if result.Success {
		p.passed++
	} else {
		p.failed++
		_ = p.bar.Clear()
		fmt.Fprint(p.out, result.Output)
		color.New(color.FgRed).Fprintf(p.out, "\n  ✗ %s\n", result.Case.Name)
	}

	p.bar.Describe(describe("", p.passed, p.failed))
	_ = p.bar.Set(p.passed + p.failed)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// Counts returns the passed and failed test cases seen so far
func (p *ProgressBar) Counts() (passed, failed int) {
	return p.passed, p.failed
}

func describe(current string, passed, failed int) string {
	desc := color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
	if current != "" {
		desc += " " + current
	}
	return desc
}
