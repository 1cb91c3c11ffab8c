package executor

import (
	"context"
	"errors"
)

// ErrNotFound is returned by LookPath when a binary cannot be resolved.
var ErrNotFound = errors.New("executable not found")

// Executor defines the interface for executing external commands
type Executor interface {
	LookPath(name string) (string, error)
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
