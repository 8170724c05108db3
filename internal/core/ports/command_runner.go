// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandRunner is the single subprocess abstraction: action steps and
// variable extractions both go through it, so timeout or cancellation policy
// can later be added in one place.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command line and streams its output. It returns an
	// error carrying the exit code when the command exits non-zero.
	Run(ctx context.Context, command string) error

	// Capture executes the command line and returns its standard output.
	Capture(ctx context.Context, command string) (string, error)
}
