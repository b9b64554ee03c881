package parser

import (
	"strings"

	"github.com/acarl005/stripansi"

	"itr/internal/config"
	"itr/internal/domain"
)

// maxExcerptLines caps the lines kept by ParseFailure
const maxExcerptLines = 20

// failurePrefixes mark the lines of a build log worth showing for a failed case
var failurePrefixes = []string{
	"[ERROR]",
	"[FATAL]",
	"BUILD FAILURE",
	"BUILD ERROR",
	"FAILURE:",
	"Tests in error",
	"Failed tests",
}

// BuildOutputParser checks build output for the configured success marker
type BuildOutputParser struct {
	config *config.Config
}

// NewBuildOutputParser creates a new BuildOutputParser
func NewBuildOutputParser(cfg *config.Config) *BuildOutputParser {
	return &BuildOutputParser{config: cfg}
}

// Evaluate reports whether the build passed. The marker is matched against the
// raw output, anywhere in it. With the strict flag the build tool must also
// have exited with status 0.
func (p *BuildOutputParser) Evaluate(result domain.TestResult) bool {
	if !strings.Contains(result.Output, p.config.SuccessMarker) {
		return false
	}
	if p.config.Flags.Strict {
		return result.Error == nil && result.ExitCode == 0
	}
	return true
}

// ParseFailure extracts the error lines of a failed build, without color codes.
// When the log holds none, the last non-empty lines are returned instead.
func (p *BuildOutputParser) ParseFailure(result domain.TestResult) []string {
	lines := strings.Split(stripansi.Strip(result.Output), "\n")

	var excerpt []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, prefix := range failurePrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				excerpt = append(excerpt, trimmed)
				break
			}
		}
		if len(excerpt) == maxExcerptLines {
			return excerpt
		}
	}
	if len(excerpt) > 0 {
		return excerpt
	}

	return tail(lines, 5)
}

func tail(lines []string, n int) []string {
	var out []string
	for i := len(lines) - 1; i >= 0 && len(out) < n; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			out = append([]string{trimmed}, out...)
		}
	}
	return out
}
