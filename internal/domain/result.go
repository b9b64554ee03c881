package domain

import "time"

// TestResult represents the result of building a test case
type TestResult struct {
	Case     TestCase
	Success  bool          // Whether the build passed
	Output   string        // Combined stdout and stderr of the build
	ExitCode int           // Exit code of the build tool, -1 if it never ran to completion
	Error    error         // Error returned by the build invocation
	Excerpt  []string      // Error lines pulled from the output of a failed build
	Duration time.Duration // Time taken to execute
}

// RunSummary is the outcome of one harness invocation
type RunSummary struct {
	Results  []TestResult
	Failed   []string // Names of failed test cases in processing order
	Duration time.Duration
}

// Passed returns the number of passing test cases
func (s *RunSummary) Passed() int {
	return len(s.Results) - len(s.Failed)
}

// HasFailures reports whether any test case failed
func (s *RunSummary) HasFailures() bool {
	return len(s.Failed) > 0
}
