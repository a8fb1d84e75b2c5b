package domain

import (
	"runtime"
	"time"
)

const (
	// DefaultSweepInterval is how often the periodic zombie sweep runs.
	DefaultSweepInterval = 10 * time.Minute

	// DefaultWatchDebounce is the window used to coalesce cache root changes.
	DefaultWatchDebounce = 500 * time.Millisecond
)

// Config holds the runtime settings of xclean.
type Config struct {
	// DerivedData overrides the DerivedData root. Empty means the Xcode default.
	DerivedData string
	// SweepInterval is the period of the automatic zombie sweep.
	SweepInterval time.Duration
	// WatchDebounce coalesces bursts of cache root changes into one reload.
	WatchDebounce time.Duration
	// Parallelism bounds the number of concurrent size scans.
	Parallelism int
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		SweepInterval: DefaultSweepInterval,
		WatchDebounce: DefaultWatchDebounce,
		Parallelism:   runtime.NumCPU(),
	}
}
