package config

// File represents the structure of the xclean config.yaml file.
type File struct {
	// DerivedData overrides the DerivedData root. "~/" expands to the home directory,
	// and relative paths are resolved against the directory of the config file.
	DerivedData string `yaml:"derived_data"`
	// SweepInterval is a Go duration string such as "10m".
	SweepInterval string `yaml:"sweep_interval"`
	// WatchDebounce is a Go duration string such as "500ms".
	WatchDebounce string `yaml:"watch_debounce"`
	// Parallelism bounds concurrent size scans. Zero keeps the default.
	Parallelism int `yaml:"parallelism"`
}
