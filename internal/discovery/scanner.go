package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds test-case directories below a base directory
type Scanner struct {
	buildFile string
	skipDirs  map[string]bool
}

// NewScanner creates a Scanner treating directories that contain buildFile as
// test cases and skipping the given directory names
func NewScanner(buildFile string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{buildFile: buildFile, skipDirs: skipMap}
}

// Scan returns the test-case names (paths relative to root, slash separated)
// of every directory below root holding the build file. Directories nested in
// a test case are not descended into.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("base dir does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base dir is not a directory: %s", root)
	}

	var cases []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") || s.skipDirs[name] {
			return filepath.SkipDir
		}

		if _, err := os.Stat(filepath.Join(path, s.buildFile)); err == nil {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			cases = append(cases, filepath.ToSlash(rel))
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(cases)
	return cases, nil
}

// Unlisted returns the discovered names missing from listed
func Unlisted(discovered, listed []string) []string {
	known := make(map[string]bool, len(listed))
	for _, name := range listed {
		known[filepath.ToSlash(filepath.Clean(name))] = true
	}

	var missing []string
	for _, name := range discovered {
		if !known[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
