package ui

import "itr/internal/domain"

// Viewer displays build logs in an interactive TUI
type Viewer interface {
	View(results []domain.TestResult) error
}
