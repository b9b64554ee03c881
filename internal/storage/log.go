package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path returns the log file path of the test case in dir.
func (s *LogStorage) Path(dir string) string {
	return filepath.Join(dir, s.cfg.LogFile)
}

// Save writes output verbatim to the log file, replacing earlier content.
func (s *LogStorage) Save(dir, output string) error {
	if err := os.WriteFile(s.Path(dir), []byte(output), 0644); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// Load reads the log written by the last run of the test case in dir.
func (s *LogStorage) Load(dir string) (string, error) {
	data, err := os.ReadFile(s.Path(dir))
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	return string(data), nil
}

// Exists reports whether the test case in dir has a log file.
func (s *LogStorage) Exists(dir string) bool {
	info, err := os.Stat(s.Path(dir))
	return err == nil && info.Mode().IsRegular()
}
