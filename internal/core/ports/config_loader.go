package ports

import "go.trai.ch/ukbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the build settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings supplied by the environment and the optional
	// configuration file in the application directory.
	Load(appDir string) (domain.Settings, error)
}
