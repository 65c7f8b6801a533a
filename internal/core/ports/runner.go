// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
)

// CommandRunner defines the interface for invoking an external program.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes args[0] with the remaining arguments and waits for it to exit.
	//
	// The returned result is populated whenever the process was started. The error is
	// non-nil when the program could not be started, exited non-zero, or wrote to stderr.
	Run(ctx context.Context, args []string) (domain.CommandResult, error)
}
