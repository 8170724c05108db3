// Package app implements the application layer for rig.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/runner"
	"go.trai.ch/rig/internal/ui/listing"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	runner *runner.Runner
	lister *listing.Renderer
	out    io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, r *runner.Runner, lister *listing.Renderer) *App {
	return &App{
		loader: loader,
		runner: r,
		lister: lister,
		out:    os.Stdout,
	}
}

// SetOutput redirects listing output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes the requested tasks from the manifest at path, in the order
// given. With no targets the manifest's default task runs; when the default
// names no declared task the listing renders instead, so a bare invocation
// always produces something useful.
func (a *App) Run(ctx context.Context, path string, targets []string) error {
	m, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	if len(targets) == 0 {
		if _, err := m.Registry.Lookup(m.Default); err != nil {
			return a.lister.Render(a.out, m.Registry)
		}
		targets = []string{m.Default.String()}
	}

	return a.runner.Run(ctx, m, targets)
}

// List renders the listing of documented tasks from the manifest at path.
func (a *App) List(path string) error {
	m, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}
	return a.lister.Render(a.out, m.Registry)
}
