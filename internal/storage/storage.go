package storage

import "itr/internal/config"

// Storage persists the captured build output of a test case
type Storage interface {
	Save(dir, output string) error
	Load(dir string) (string, error)
	// Exists reports whether a log was written for the test case.
	Exists(dir string) bool
}

// LogStorage keeps the output in the configured log file inside the test-case directory.
type LogStorage struct {
	cfg *config.Config
}

// NewLogStorage returns a Storage writing the config's log file name.
func NewLogStorage(cfg *config.Config) *LogStorage {
	return &LogStorage{cfg: cfg}
}
