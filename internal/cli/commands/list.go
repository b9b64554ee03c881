package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itr/internal/config"
	"itr/internal/discovery"
	"itr/internal/execution"
	"itr/internal/parser"
	"itr/internal/storage"
	"itr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	runner    *execution.Runner
	parser    parser.Parser
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	runner *execution.Runner,
	p parser.Parser,
	st storage.Storage,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		runner:    runner,
		parser:    p,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest := discovery.NewManifest(lc.config.GetManifestPath())
	names, err := discovery.Collect(lc.filter.FilterSeq(discovery.Select(args, manifest), lc.config.Flags.NameFilter))
	if err != nil {
		return err
	}

	if len(names) == 0 {
		color.Yellow("No test cases selected")
	} else {
		rows := make([]ui.CaseRow, 0, len(names))
		for _, name := range names {
			row, err := lc.row(name)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
		lc.formatter.PrintCaseTable(rows)
	}

	if !lc.config.Flags.Discover {
		return nil
	}

	listed, err := discovery.Collect(manifest.Cases())
	if err != nil {
		return err
	}
	scanner := discovery.NewScanner(lc.config.BuildFile, lc.config.PathsToIgnore)
	discovered, err := scanner.Scan(lc.config.BaseDir)
	if err != nil {
		return err
	}
	lc.formatter.PrintUnlisted(discovery.Unlisted(discovered, listed))
	return nil
}

func (lc *ListCommand) row(name string) (ui.CaseRow, error) {
	tc, err := lc.runner.Prepare(name)
	if err != nil {
		// listing is informational; a broken case is shown rather than aborting
		return ui.CaseRow{Name: name, Goals: "-", Status: ui.StatusMissing}, nil
	}

	result, ok, err := loggedResult(lc.parser, lc.storage, tc)
	if err != nil {
		return ui.CaseRow{}, err
	}

	row := ui.CaseRow{Name: tc.Name, Goals: tc.Goals, Status: ui.StatusNotRun}
	if ok {
		row.Status = ui.StatusFailed
		if result.Success {
			row.Status = ui.StatusPassed
		}
	}
	return row, nil
}
