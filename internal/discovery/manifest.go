package discovery

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"regexp"
	"strings"
)

// commentMarker matches a '#' preceded by any run of word characters, so every
// line containing a '#' counts as a comment, not only lines starting with one.
var commentMarker = regexp.MustCompile(`\w*#`)

// Manifest reads test-case names from a manifest file
type Manifest struct {
	path string
}

// NewManifest creates a Manifest for the file at path
func NewManifest(path string) *Manifest {
	return &Manifest{path: path}
}

// Path returns the manifest file path
func (m *Manifest) Path() string {
	return m.path
}

// Cases lazily yields the test-case names of the manifest. The file is opened
// on first iteration; a missing or unreadable file is yielded as an error.
func (m *Manifest) Cases() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(m.path)
		if err != nil {
			yield("", fmt.Errorf("open manifest: %w", err))
			return
		}
		defer f.Close()

		for name, err := range Parse(f) {
			if !yield(name, err) {
				return
			}
		}
	}
}

// Parse yields the trimmed lines of r, skipping blank and comment lines
func Parse(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || commentMarker.MatchString(line) {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("read manifest: %w", err))
		}
	}
}

// Args yields command-line test-case names in order. Blank arguments are dropped.
func Args(args []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, arg := range args {
			name := strings.TrimSpace(arg)
			if name == "" {
				continue
			}
			if !yield(name, nil) {
				return
			}
		}
	}
}

// Select returns the explicit arguments when any are given, otherwise the
// manifest cases. The manifest is not touched when arguments are present.
func Select(args []string, manifest *Manifest) iter.Seq2[string, error] {
	if len(args) > 0 {
		return Args(args)
	}
	return manifest.Cases()
}

// Collect drains seq into a slice, stopping at the first error
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var names []string
	for name, err := range seq {
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
