package execution

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"itr/internal/config"
	"itr/internal/domain"
)

// Runner builds a single test case
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Prepare resolves the directory and goals of a test case. A missing
// directory or an unreadable goals file is an error.
func (r *Runner) Prepare(name string) (domain.TestCase, error) {
	name = strings.TrimRightFunc(name, unicode.IsSpace)
	dir := r.config.GetCaseDir(name)

	info, err := os.Stat(dir)
	if err != nil {
		return domain.TestCase{}, fmt.Errorf("test case %s: %w", name, err)
	}
	if !info.IsDir() {
		return domain.TestCase{}, fmt.Errorf("test case %s: %s is not a directory", name, dir)
	}

	goals, err := r.goals(dir)
	if err != nil {
		return domain.TestCase{}, fmt.Errorf("test case %s: %w", name, err)
	}

	return domain.TestCase{Name: name, Dir: dir, Goals: goals}, nil
}

// goals returns the trimmed goals file of dir, or the default goals when there is none
func (r *Runner) goals(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, r.config.GoalsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return r.config.DefaultGoals, nil
	}
	if err != nil {
		return "", fmt.Errorf("read goals: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Command returns the argv used to build tc
func (r *Runner) Command(tc domain.TestCase) []string {
	return append(slices.Clone(r.config.BuildCommand), strings.Fields(tc.Goals)...)
}

// Run executes the build tool in the test-case directory and waits for it to exit
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) domain.TestResult {
	argv := r.Command(tc)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = tc.Dir

	start := time.Now()
	output, err := cmd.CombinedOutput()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	return domain.TestResult{
		Case:     tc,
		Output:   string(output),
		ExitCode: exitCode,
		Error:    err,
		Duration: time.Since(start),
	}
}
