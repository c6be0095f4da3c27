package device

import "context"

// Agent defines the minimal lifecycle contract for the runnable device
// application.
type Agent interface {
	// Run executes one agent command and blocks until it finishes. The
	// daemon command blocks until ctx is cancelled.
	Run(ctx context.Context, command string, args []string) error

	// Close releases the local store.
	Close() error
}
