package commands

import (
	"itr/internal/domain"
	"itr/internal/parser"
	"itr/internal/storage"
)

// loggedResult rebuilds the outcome of the last run of a test case from its log.
// ok is false when the test case has no log yet.
func loggedResult(p parser.Parser, st storage.Storage, tc domain.TestCase) (result domain.TestResult, ok bool, err error) {
	if !st.Exists(tc.Dir) {
		return domain.TestResult{Case: tc}, false, nil
	}

	output, err := st.Load(tc.Dir)
	if err != nil {
		return domain.TestResult{}, false, err
	}

	result = domain.TestResult{Case: tc, Output: output}
	result.Success = p.Evaluate(result)
	if !result.Success {
		result.Excerpt = p.ParseFailure(result)
	}
	return result, true, nil
}
