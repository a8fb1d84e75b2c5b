package ports

import "go.trai.ch/xclean/internal/core/domain"

// ConfigLoader defines the interface for loading the xclean configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. An empty path selects the default location,
	// where a missing file yields the default configuration.
	Load(path string) (domain.Config, error)
}
