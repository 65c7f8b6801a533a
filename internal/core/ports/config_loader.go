package ports

import "github.com/wtsi-hgi/bam2cram-check/internal/core/domain"

// ConfigLoader defines the interface for loading the check configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path selects the default
	// file in cwd, which may be absent; an explicit path must exist.
	Load(cwd, path string) (domain.Config, error)
}
