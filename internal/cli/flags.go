package cli

import "itr/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BaseDir:    f.BaseDir,
		Manifest:   f.Manifest,
		Command:    f.Command,
		NameFilter: f.NameFilter,
		FailFast:   f.FailFast,
		Strict:     f.Strict,
		Progress:   f.Progress,
		Discover:   f.Discover,
		All:        f.All,
	}
}
