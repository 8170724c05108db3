// Package main is the entry point for the rig task runner.
package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/cmd/rig/commands"
	"go.trai.ch/rig/internal/app"
	_ "go.trai.ch/rig/internal/wiring"
)

// exitFailure is the reserved exit code for failures that have no subprocess
// exit code of their own: unknown tasks, dependency cycles, variable errors.
const exitFailure = 2

func main() {
	os.Exit(run())
}

func run() int {
	// An interrupt cancels the context, which kills the currently running
	// subprocess instead of orphaning it.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return exitFailure
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)

		// A failing action step surfaces its own exit code.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return exitFailure
	}
	return 0
}
