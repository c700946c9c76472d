package ports

import "context"

// CommandRunner runs a host command. It backs the actions the config loader
// builds from cmd entries in a task file.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes argv with the given extra environment (KEY=VALUE) in dir.
	// An empty dir runs in the current working directory.
	Run(ctx context.Context, argv []string, env map[string]string, dir string) error
}
