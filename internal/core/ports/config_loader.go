package ports

import "go.trai.ch/cook/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads cook.yaml or cook.toml from the given directory and returns the validated config.
	Load(cwd string) (*domain.Config, error)
}
