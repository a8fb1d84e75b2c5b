package ports

import "time"

// Preferences is the small user preference store.
//
//go:generate mockgen -source=preferences.go -destination=mocks/mock_preferences.go -package=mocks
type Preferences interface {
	// AutoClean reports whether the periodic zombie sweep is enabled.
	AutoClean() bool
	// SetAutoClean enables or disables the periodic zombie sweep.
	SetAutoClean(enabled bool) error
	// LastStart returns the time of the previous interactive launch, if any.
	LastStart() (time.Time, bool)
	// SetLastStart records an interactive launch.
	SetLastStart(t time.Time) error
}
