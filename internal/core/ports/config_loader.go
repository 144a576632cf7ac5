package ports

import "go.trai.ch/modkit/internal/core/domain"

//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader defines the interface for loading the project configuration.
type ConfigLoader interface {
	// Load discovers modkit.yaml starting at cwd and walking up, and resolves it.
	Load(cwd string) (*domain.Config, error)
}
