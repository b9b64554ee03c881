package parser

import "itr/internal/domain"

// Parser decides the outcome of a build from its result
type Parser interface {
	Evaluate(result domain.TestResult) bool
	ParseFailure(result domain.TestResult) []string
}
