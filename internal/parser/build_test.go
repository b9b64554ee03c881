package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"itr/internal/config"
	"itr/internal/domain"
)

func TestBuildOutputParser_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		strict   bool
		result   domain.TestResult
		expected bool
	}{
		{
			name:     "marker present",
			result:   domain.TestResult{Output: "[INFO] ...\n[INFO] BUILD SUCCESSFUL\n[INFO] Total time: 3s\n"},
			expected: true,
		},
		{
			name:     "marker inside a line",
			result:   domain.TestResult{Output: "xxBUILD SUCCESSFULxx"},
			expected: true,
		},
		{
			name:     "marker absent",
			result:   domain.TestResult{Output: "[ERROR] BUILD FAILURE\n"},
			expected: false,
		},
		{
			name:     "exit code ignored by default",
			result:   domain.TestResult{Output: "BUILD SUCCESSFUL", ExitCode: 1, Error: errors.New("exit status 1")},
			expected: true,
		},
		{
			name:     "strict requires clean exit",
			strict:   true,
			result:   domain.TestResult{Output: "BUILD SUCCESSFUL", ExitCode: 1, Error: errors.New("exit status 1")},
			expected: false,
		},
		{
			name:     "strict with clean exit",
			strict:   true,
			result:   domain.TestResult{Output: "BUILD SUCCESSFUL"},
			expected: true,
		},
		{
			name:     "clean exit without marker",
			strict:   true,
			result:   domain.TestResult{Output: "done"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Flags.Strict = tt.strict
			p := NewBuildOutputParser(cfg)
			assert.Equal(t, tt.expected, p.Evaluate(tt.result))
		})
	}
}

func TestBuildOutputParser_ParseFailure(t *testing.T) {
	p := NewBuildOutputParser(config.New())

	t.Run("error lines", func(t *testing.T) {
		output := "[INFO] Scanning\n\x1b[1;31m[ERROR]\x1b[m Failed to execute goal\n[INFO] ---\n  [ERROR] Cannot resolve dependency\n"
		excerpt := p.ParseFailure(domain.TestResult{Output: output})
		assert.Equal(t, []string{
			"[ERROR] Failed to execute goal",
			"[ERROR] Cannot resolve dependency",
		}, excerpt)
	})

	t.Run("falls back to tail", func(t *testing.T) {
		output := "one\ntwo\n\nthree\nfour\nfive\nsix\n\n"
		excerpt := p.ParseFailure(domain.TestResult{Output: output})
		assert.Equal(t, []string{"two", "three", "four", "five", "six"}, excerpt)
	})

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, p.ParseFailure(domain.TestResult{}))
	})
}
