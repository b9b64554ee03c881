package commands

import (
	"io"

	"itr/internal/cli"
	"itr/internal/config"
	"itr/internal/discovery"
	"itr/internal/execution"
	"itr/internal/parser"
	"itr/internal/storage"
	"itr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Logs *LogsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, out io.Writer) *Commands {
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	buildParser := parser.NewBuildOutputParser(cfg)
	logStorage := storage.NewLogStorage(cfg)
	executor := execution.NewSequentialExecutor(cfg, runner, buildParser, logStorage)
	formatter := ui.NewFormatter(out)
	viewer := ui.NewLogViewer()

	return &Commands{
		Run:  NewRunCommand(cfg, filter, executor, formatter, out),
		List: NewListCommand(cfg, filter, runner, buildParser, logStorage, formatter),
		Logs: NewLogsCommand(cfg, filter, runner, buildParser, logStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		return cfg.Apply(flags.ToConfigFlags())
	}

	rootCmd.PersistentFlags().StringVarP(&flags.BaseDir, "base-dir", "d", "", "Directory holding the manifest and the test-case directories (default \".\")")
	rootCmd.PersistentFlags().StringVar(&flags.Manifest, "manifest", "", "Manifest file, relative to the base dir (default \"integration-tests.txt\")")
	rootCmd.PersistentFlags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test cases by name pattern (supports wildcards, e.g., 'it-*' or '*deploy*')")

	// Run command
	runCmd := &cobra.Command{
		Use:     "run [test-case...]",
		Short:   "Build the integration test cases",
		Long:    "Build every test case from the manifest, or the given test cases, and report the ones whose output lacks the success marker",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Command, "command", "c", "", "Build command the goals are appended to (default \"mvn\")")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test case failure")
	runCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Also require the build tool to exit with status 0")
	runCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar instead of a line per test case")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list [test-case...]",
		Short:   "List selected test cases",
		Long:    "List the selected test cases with their goals and the outcome recorded in their last log",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().BoolVar(&flags.Discover, "discover", false, "Also report test-case directories missing from the manifest")
	rootCmd.AddCommand(listCmd)

	// Logs command
	logsCmd := &cobra.Command{
		Use:     "logs [test-case...]",
		Short:   "View build logs interactively",
		Long:    "Display the build logs of failed test cases from the last run in an interactive viewer",
		RunE:    c.Logs.Execute,
		PreRunE: applyFlags,
	}
	logsCmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Show passing test cases too")
	rootCmd.AddCommand(logsCmd)
}
