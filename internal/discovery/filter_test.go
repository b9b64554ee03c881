package discovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern returns all",
			cases:    []string{"it-deploy", "it-install", "mwar-191"},
			pattern:  "",
			expected: []string{"it-deploy", "it-install", "mwar-191"},
		},
		{
			name:     "prefix wildcard",
			cases:    []string{"it-deploy", "it-install", "mwar-191"},
			pattern:  "it-*",
			expected: []string{"it-deploy", "it-install"},
		},
		{
			name:     "substring wildcard",
			cases:    []string{"it-deploy", "deploy-snapshot", "mwar-191"},
			pattern:  "*deploy*",
			expected: []string{"it-deploy", "deploy-snapshot"},
		},
		{
			name:     "simple contains match",
			cases:    []string{"it-deploy", "it-install"},
			pattern:  "install",
			expected: []string{"it-install"},
		},
		{
			name:     "nested case names",
			cases:    []string{"group/it-deploy-1", "group/it-install"},
			pattern:  "*deploy*",
			expected: []string{"group/it-deploy-1"},
		},
		{
			name:     "parts must appear in order",
			cases:    []string{"group/a-then-b", "group/b-then-a"},
			pattern:  "*a*then*b*",
			expected: []string{"group/a-then-b"},
		},
		{
			name:     "no matches",
			cases:    []string{"it-deploy"},
			pattern:  "*nothing*",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.FilterByName(tt.cases, tt.pattern))
		})
	}
}

func TestFilter_FilterSeq(t *testing.T) {
	filter := NewFilter()
	boom := errors.New("boom")

	seq := func(yield func(string, error) bool) {
		for _, name := range []string{"it-a", "other", "it-b"} {
			if !yield(name, nil) {
				return
			}
		}
		yield("", boom)
	}

	var names []string
	var gotErr error
	for name, err := range filter.FilterSeq(seq, "it-*") {
		if err != nil {
			gotErr = err
			break
		}
		names = append(names, name)
	}

	assert.Equal(t, []string{"it-a", "it-b"}, names)
	require.ErrorIs(t, gotErr, boom)
}
