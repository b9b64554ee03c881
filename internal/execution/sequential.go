package execution

import (
	"context"
	"fmt"
	"iter"
	"time"

	"itr/internal/config"
	"itr/internal/domain"
	"itr/internal/parser"
	"itr/internal/storage"
)

// SequentialExecutor builds test cases one at a time in the order they are yielded
type SequentialExecutor struct {
	config   *config.Config
	runner   *Runner
	parser   parser.Parser
	storage  storage.Storage
	reporter Reporter
}

// NewSequentialExecutor creates a new SequentialExecutor
func NewSequentialExecutor(cfg *config.Config, runner *Runner, p parser.Parser, st storage.Storage) *SequentialExecutor {
	return &SequentialExecutor{
		config:  cfg,
		runner:  runner,
		parser:  p,
		storage: st,
	}
}

// SetReporter sets the reporter notified around each test case
func (e *SequentialExecutor) SetReporter(reporter Reporter) {
	e.reporter = reporter
}

// Execute builds every yielded test case, writes its log and records failures.
// A failed build does not stop the run unless fail-fast is set. Selection
// errors, missing test-case directories and log write errors end the run and
// are returned along with the summary so far.
func (e *SequentialExecutor) Execute(ctx context.Context, cases iter.Seq2[string, error]) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{}
	start := time.Now()
	defer func() {
		summary.Duration = time.Since(start)
	}()

	for name, err := range cases {
		if err != nil {
			return summary, err
		}

		tc, err := e.runner.Prepare(name)
		if err != nil {
			return summary, err
		}

		if e.reporter != nil {
			e.reporter.CaseStarted(tc)
		}

		result := e.runner.Run(ctx, tc)
		if err := e.storage.Save(tc.Dir, result.Output); err != nil {
			return summary, fmt.Errorf("test case %s: %w", tc.Name, err)
		}

		result.Success = e.parser.Evaluate(result)
		if !result.Success {
			result.Excerpt = e.parser.ParseFailure(result)
			summary.Failed = append(summary.Failed, tc.Name)
		}
		summary.Results = append(summary.Results, result)

		if e.reporter != nil {
			e.reporter.CaseFinished(result)
		}

		if !result.Success && e.config.Flags.FailFast {
			break
		}
	}

	return summary, nil
}
