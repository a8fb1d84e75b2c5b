// Package config provides the configuration loader for xclean.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvDerivedData overrides the DerivedData root regardless of the config file.
const EnvDerivedData = "XCLEAN_DERIVED_DATA"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path. An empty path selects the default
// location, which may be absent. An explicit path must exist.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := path != ""
	if !explicit {
		defaultPath, err := domain.DefaultConfigPath()
		if err != nil {
			l.Logger.Debug(fmt.Sprintf("no user config directory, using defaults: %v", err))
			return l.applyEnv(cfg)
		}
		path = defaultPath
	}

	//nolint:gosec // Path is user-supplied configuration
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		l.Logger.Debug("no config file at " + path + ", using defaults")
		return l.applyEnv(cfg)
	case errors.Is(err, fs.ErrNotExist):
		return cfg, zerr.With(domain.ErrConfigNotFound, "path", path)
	case err != nil:
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := apply(&cfg, &file, filepath.Dir(path)); err != nil {
		return cfg, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded config from " + path)
	return l.applyEnv(cfg)
}

func (l *Loader) applyEnv(cfg domain.Config) (domain.Config, error) {
	if v := os.Getenv(EnvDerivedData); v != "" {
		root, err := expandPath(v, "")
		if err != nil {
			return cfg, err
		}
		l.Logger.Debug(fmt.Sprintf("%s overrides the DerivedData root: %s", EnvDerivedData, root))
		cfg.DerivedData = root
	}
	return cfg, nil
}

func apply(cfg *domain.Config, file *File, baseDir string) error {
	if file.DerivedData != "" {
		root, err := expandPath(file.DerivedData, baseDir)
		if err != nil {
			return err
		}
		cfg.DerivedData = root
	}

	if file.SweepInterval != "" {
		d, err := parseDuration("sweep_interval", file.SweepInterval)
		if err != nil {
			return err
		}
		cfg.SweepInterval = d
	}

	if file.WatchDebounce != "" {
		d, err := parseDuration("watch_debounce", file.WatchDebounce)
		if err != nil {
			return err
		}
		cfg.WatchDebounce = d
	}

	switch {
	case file.Parallelism < 0:
		return zerr.With(domain.ErrInvalidParallelism, "parallelism", file.Parallelism)
	case file.Parallelism > 0:
		cfg.Parallelism = file.Parallelism
	}

	return nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, zerr.With(zerr.With(domain.ErrInvalidDuration, "key", key), "value", value)
	}
	return d, nil
}

// expandPath resolves "~/" against the home directory and relative paths
// against baseDir.
func expandPath(path, baseDir string) (string, error) {
	if path == "~" {
		path = "~/"
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrLibraryUnavailable.Error())
		}
		return filepath.Join(home, rest), nil
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		return filepath.Join(baseDir, path), nil
	}
	return filepath.Clean(path), nil
}
