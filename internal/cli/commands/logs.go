package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"itr/internal/config"
	"itr/internal/discovery"
	"itr/internal/domain"
	"itr/internal/execution"
	"itr/internal/parser"
	"itr/internal/storage"
	"itr/internal/ui"
)

// LogsCommand handles the logs command
type LogsCommand struct {
	config  *config.Config
	filter  *discovery.Filter
	runner  *execution.Runner
	parser  parser.Parser
	storage storage.Storage
	viewer  ui.Viewer
}

// NewLogsCommand creates a new LogsCommand
func NewLogsCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	runner *execution.Runner,
	p parser.Parser,
	st storage.Storage,
	viewer ui.Viewer,
) *LogsCommand {
	return &LogsCommand{
		config:  cfg,
		filter:  filter,
		runner:  runner,
		parser:  p,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (lc *LogsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := lc.collect(args)
	if err != nil {
		return err
	}
	return lc.viewer.View(results)
}

// collect returns the logged results of the selected test cases, only the
// failed ones unless all were requested. Test cases without a log are skipped.
func (lc *LogsCommand) collect(args []string) ([]domain.TestResult, error) {
	manifest := discovery.NewManifest(lc.config.GetManifestPath())
	cases := lc.filter.FilterSeq(discovery.Select(args, manifest), lc.config.Flags.NameFilter)

	var results []domain.TestResult
	for name, err := range cases {
		if err != nil {
			return nil, err
		}

		tc, err := lc.runner.Prepare(name)
		if err != nil {
			return nil, err
		}

		result, ok, err := loggedResult(lc.parser, lc.storage, tc)
		if err != nil {
			return nil, fmt.Errorf("test case %s: %w", tc.Name, err)
		}
		if !ok || (result.Success && !lc.config.Flags.All) {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
