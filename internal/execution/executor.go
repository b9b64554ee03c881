package execution

import (
	"context"
	"iter"

	"itr/internal/domain"
)

// Executor runs test cases and returns the run summary
type Executor interface {
	Execute(ctx context.Context, cases iter.Seq2[string, error]) (*domain.RunSummary, error)
}

// Reporter is notified around each test case
type Reporter interface {
	CaseStarted(tc domain.TestCase)
	CaseFinished(result domain.TestResult)
}
