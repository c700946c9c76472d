package ports

import "go.trai.ch/mason/internal/core/domain"

// ConfigLoader defines the interface for loading task definitions from a
// task file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the task file at path and returns the declared tasks in
	// file order.
	Load(path string) ([]*domain.Task, error)
}
