package commands

import (
	"fmt"
	"io"

	"itr/internal/config"
	"itr/internal/discovery"
	"itr/internal/execution"
	"itr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	executor  *execution.SequentialExecutor
	formatter *ui.Formatter
	out       io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	executor *execution.SequentialExecutor,
	formatter *ui.Formatter,
	out io.Writer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		filter:    filter,
		executor:  executor,
		formatter: formatter,
		out:       out,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest := discovery.NewManifest(rc.config.GetManifestPath())
	cases := rc.filter.FilterSeq(discovery.Select(args, manifest), rc.config.Flags.NameFilter)

	// The progress bar needs the total up front, so the selection is read eagerly.
	var progress *ui.ProgressBar
	if rc.config.Flags.Progress {
		names, err := discovery.Collect(cases)
		if err != nil {
			return err
		}
		progress = ui.NewProgressBar(len(names), rc.out)
		rc.executor.SetReporter(progress)
		cases = discovery.Args(names)
	} else {
		rc.executor.SetReporter(rc.formatter)
	}

	summary, err := rc.executor.Execute(cmd.Context(), cases)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}

	if len(summary.Results) == 0 {
		color.New(color.FgYellow).Fprintln(rc.out, "No test cases to run")
		return nil
	}

	rc.formatter.PrintSummary(summary)
	if summary.HasFailures() {
		return fmt.Errorf("%d of %d test case(s) failed", len(summary.Failed), len(summary.Results))
	}
	return nil
}
