package ports

// Logger defines the interface for logging. The scheduler logs at verbose,
// information and error levels; logging never fails the run.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Verbose(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
