package ports

import "go.trai.ch/rig/internal/core/domain"

// ConfigLoader defines the interface for loading the task manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at the given path and returns the declared
	// tasks and variables.
	Load(path string) (*domain.Manifest, error)
}
