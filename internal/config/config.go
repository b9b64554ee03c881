package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	envBuildCommand  = "ITR_BUILD_COMMAND"
	envDefaultGoals  = "ITR_DEFAULT_GOALS"
	envSuccessMarker = "ITR_SUCCESS_MARKER"
)

// Config holds all configuration for the application
type Config struct {
	// Layout settings
	BaseDir      string
	ManifestFile string
	GoalsFile    string
	LogFile      string

	// Build settings
	BuildCommand  []string
	DefaultGoals  string
	SuccessMarker string

	// Discovery settings
	BuildFile     string
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	BaseDir    string
	Manifest   string
	Command    string
	NameFilter string
	FailFast   bool
	Strict     bool
	Progress   bool
	Discover   bool
	All        bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		BaseDir:       DefaultBaseDir,
		ManifestFile:  DefaultManifestFile,
		GoalsFile:     DefaultGoalsFile,
		LogFile:       DefaultLogFile,
		DefaultGoals:  DefaultGoals,
		SuccessMarker: DefaultSuccessMarker,
		BuildFile:     DefaultBuildFile,
	}
	cfg.BuildCommand = make([]string, len(DefaultBuildCommand))
	copy(cfg.BuildCommand, DefaultBuildCommand)
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config for the given flags, layering the settings file,
// the environment and the flags over the defaults.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.Apply(flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply layers the settings file, the environment and the given flags over the
// current values. The base dir flag is applied first since both files live there.
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}

	if err := c.loadSettingsFile(filepath.Join(c.BaseDir, SettingsFile)); err != nil {
		return err
	}
	if err := c.loadEnv(filepath.Join(c.BaseDir, EnvFile)); err != nil {
		return err
	}

	if flags.Manifest != "" {
		c.ManifestFile = flags.Manifest
	}
	if cmd := strings.Fields(flags.Command); len(cmd) > 0 {
		c.BuildCommand = cmd
	}
	return c.Validate()
}

// Validate reports settings the runner cannot work with
func (c *Config) Validate() error {
	if len(c.BuildCommand) == 0 {
		return fmt.Errorf("build command is empty")
	}
	if c.SuccessMarker == "" {
		return fmt.Errorf("success marker is empty")
	}
	if c.LogFile == "" || c.GoalsFile == "" {
		return fmt.Errorf("goals and log file names must be set")
	}
	return nil
}

// GetManifestPath returns the manifest path, relative to the base dir unless absolute
func (c *Config) GetManifestPath() string {
	if filepath.IsAbs(c.ManifestFile) {
		return c.ManifestFile
	}
	return filepath.Join(c.BaseDir, c.ManifestFile)
}

// GetCaseDir returns the working directory of a test case
func (c *Config) GetCaseDir(name string) string {
	return filepath.Join(c.BaseDir, name)
}

func (c *Config) applyEnv() {
	if cmd := strings.Fields(os.Getenv(envBuildCommand)); len(cmd) > 0 {
		c.BuildCommand = cmd
	}
	if goals := strings.TrimSpace(os.Getenv(envDefaultGoals)); goals != "" {
		c.DefaultGoals = goals
	}
	if marker := os.Getenv(envSuccessMarker); marker != "" {
		c.SuccessMarker = marker
	}
}
