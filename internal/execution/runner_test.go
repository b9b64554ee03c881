package execution

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itr/internal/config"
)

// shellBuild prints out.txt of the case directory followed by the goals it got
var shellBuild = []string{"sh", "-c", `cat out.txt 2>/dev/null; echo "goals: $*"`, "build"}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	cfg := config.New()
	cfg.BaseDir = t.TempDir()
	cfg.BuildCommand = shellBuild
	return cfg
}

// writeCase creates a test-case directory with the given files
func writeCase(t *testing.T, cfg *config.Config, name string, files map[string]string) {
	t.Helper()
	dir := cfg.GetCaseDir(name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
	}
}

func TestRunner_Prepare(t *testing.T) {
	cfg := newTestConfig(t)
	runner := NewRunner(cfg)

	t.Run("default goals", func(t *testing.T) {
		writeCase(t, cfg, "plain", nil)

		tc, err := runner.Prepare("plain")
		require.NoError(t, err)
		assert.Equal(t, "clean verify", tc.Goals)
		assert.Equal(t, filepath.Join(cfg.BaseDir, "plain"), tc.Dir)
	})

	t.Run("goals file overrides", func(t *testing.T) {
		writeCase(t, cfg, "override", map[string]string{"goals.txt": "package\n"})

		tc, err := runner.Prepare("override")
		require.NoError(t, err)
		assert.Equal(t, "package", tc.Goals)
	})

	t.Run("multi-line goals trimmed as a whole", func(t *testing.T) {
		writeCase(t, cfg, "multi", map[string]string{"goals.txt": "\n  clean\ninstall  \n\n"})

		tc, err := runner.Prepare("multi")
		require.NoError(t, err)
		assert.Equal(t, "clean\ninstall", tc.Goals)
		assert.Equal(t, []string{"sh", "-c", shellBuild[2], "build", "clean", "install"}, runner.Command(tc))
	})

	t.Run("trailing whitespace stripped from name", func(t *testing.T) {
		writeCase(t, cfg, "spaced", nil)

		tc, err := runner.Prepare("spaced \n")
		require.NoError(t, err)
		assert.Equal(t, "spaced", tc.Name)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := runner.Prepare("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.BaseDir, "afile"), nil, 0644))
		_, err := runner.Prepare("afile")
		assert.Error(t, err)
	})

	t.Run("unreadable goals file", func(t *testing.T) {
		// a directory named goals.txt exists but cannot be read as a file
		writeCase(t, cfg, "badgoals", nil)
		require.NoError(t, os.Mkdir(filepath.Join(cfg.GetCaseDir("badgoals"), "goals.txt"), 0755))

		_, err := runner.Prepare("badgoals")
		assert.Error(t, err)
	})
}

func TestRunner_Run(t *testing.T) {
	cfg := newTestConfig(t)
	runner := NewRunner(cfg)

	t.Run("runs in the case directory", func(t *testing.T) {
		writeCase(t, cfg, "caseA", map[string]string{"out.txt": "BUILD SUCCESSFUL\n", "goals.txt": "package"})
		tc, err := runner.Prepare("caseA")
		require.NoError(t, err)

		result := runner.Run(context.Background(), tc)
		require.NoError(t, result.Error)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "BUILD SUCCESSFUL\ngoals: package\n", result.Output)
		assert.Equal(t, tc, result.Case)
	})

	t.Run("goals are passed as arguments, not shell text", func(t *testing.T) {
		writeCase(t, cfg, "quoted", map[string]string{"goals.txt": "verify;echo-injected $(id)"})
		tc, err := runner.Prepare("quoted")
		require.NoError(t, err)

		result := runner.Run(context.Background(), tc)
		assert.Equal(t, "goals: verify;echo-injected $(id)\n", result.Output)
	})

	t.Run("captures stderr and exit code", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.BuildCommand = []string{"sh", "-c", "echo oops >&2; exit 3"}
		writeCase(t, cfg, "broken", nil)

		runner := NewRunner(cfg)
		tc, err := runner.Prepare("broken")
		require.NoError(t, err)

		result := runner.Run(context.Background(), tc)
		assert.Error(t, result.Error)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "oops\n", result.Output)
	})

	t.Run("missing build tool", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.BuildCommand = []string{"itr-no-such-build-tool"}
		writeCase(t, cfg, "nobuild", nil)

		runner := NewRunner(cfg)
		tc, err := runner.Prepare("nobuild")
		require.NoError(t, err)

		result := runner.Run(context.Background(), tc)
		assert.Error(t, result.Error)
		assert.Equal(t, -1, result.ExitCode)
		assert.Empty(t, result.Output)
	})
}
