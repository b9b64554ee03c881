package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// settings mirrors the itr.yaml file. Empty fields keep the current value.
type settings struct {
	Manifest      string   `yaml:"manifest"`
	GoalsFile     string   `yaml:"goals_file"`
	LogFile       string   `yaml:"log_file"`
	BuildCommand  []string `yaml:"build_command"`
	DefaultGoals  string   `yaml:"default_goals"`
	SuccessMarker string   `yaml:"success_marker"`
	BuildFile     string   `yaml:"build_file"`
	Ignore        []string `yaml:"ignore"`
}

func (c *Config) loadSettingsFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}

	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse settings file %s: %w", path, err)
	}

	if s.Manifest != "" {
		c.ManifestFile = s.Manifest
	}
	if s.GoalsFile != "" {
		c.GoalsFile = s.GoalsFile
	}
	if s.LogFile != "" {
		c.LogFile = s.LogFile
	}
	if len(s.BuildCommand) > 0 {
		c.BuildCommand = s.BuildCommand
	}
	if s.DefaultGoals != "" {
		c.DefaultGoals = s.DefaultGoals
	}
	if s.SuccessMarker != "" {
		c.SuccessMarker = s.SuccessMarker
	}
	if s.BuildFile != "" {
		c.BuildFile = s.BuildFile
	}
	if len(s.Ignore) > 0 {
		c.PathsToIgnore = s.Ignore
	}
	return nil
}

// loadEnv reads the dotenv file into the process environment, then picks up
// the ITR_* overrides. Variables already set in the environment win.
func (c *Config) loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	c.applyEnv()
	return nil
}
