// Package host backs the execution context with the real process
// environment, filesystem and logger.
package host

import (
	"os"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
)

// Context is the OS-backed domain.ExecutionContext handed to tasks.
type Context struct {
	env  environment
	args arguments
	fs   filesystem
	log  ports.Logger
}

// New creates an execution context over the current process. Extra CLI
// arguments of the form key=value become run arguments.
func New(logger ports.Logger, extras []string) *Context {
	return &Context{
		args: parseArguments(extras),
		log:  logger,
	}
}

func (c *Context) Environment() domain.Environment { return c.env }
func (c *Context) Arguments() domain.Arguments     { return c.args }
func (c *Context) Filesystem() domain.Filesystem   { return c.fs }
func (c *Context) Log() domain.Log                 { return c.log }

type environment struct{}

func (environment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

type arguments map[string]string

// parseArguments splits key=value pairs. A bare key maps to the empty
// string so Has still reports it.
func parseArguments(extras []string) arguments {
	args := make(arguments, len(extras))
	for _, extra := range extras {
		key, value, _ := strings.Cut(extra, "=")
		args[key] = value
	}
	return args
}

func (a arguments) Get(name string) (string, bool) {
	value, ok := a[name]
	return value, ok
}

func (a arguments) Has(name string) bool {
	_, ok := a[name]
	return ok
}

type filesystem struct{}

func (filesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
