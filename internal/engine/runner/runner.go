// Package runner implements the sequential task execution engine.
package runner

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a task within one run.
type TaskStatus string

const (
	// StatusPending indicates the task has not started.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task's steps are executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates every step finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates a step exited non-zero.
	StatusFailed TaskStatus = "Failed"
)

// Runner executes task plans strictly sequentially. Action steps have
// order-sensitive side effects (a shared filesystem, one container daemon,
// one package index credential), so tasks never run in parallel even when
// the graph would allow it.
type Runner struct {
	exec   ports.CommandRunner
	logger ports.Logger

	mu     sync.RWMutex
	status map[domain.InternedString]TaskStatus
}

// NewRunner creates a new Runner with the given command runner and logger.
func NewRunner(exec ports.CommandRunner, logger ports.Logger) *Runner {
	return &Runner{
		exec:   exec,
		logger: logger,
		status: make(map[domain.InternedString]TaskStatus),
	}
}

// Run executes the named target tasks in the order given. One done set spans
// the whole batch, so two targets sharing a prerequisite, or the same target
// named twice, still execute shared work exactly once. The first failing
// step aborts everything; completed steps are not rolled back.
func (r *Runner) Run(ctx context.Context, m *domain.Manifest, targets []string) error {
	resolver := domain.NewResolver(m.Vars, r.exec)
	done := make(map[domain.InternedString]bool)

	r.mu.Lock()
	r.status = make(map[domain.InternedString]TaskStatus)
	r.mu.Unlock()

	for _, target := range targets {
		plan, err := m.Registry.Plan(domain.NewInternedString(target), done)
		if err != nil {
			return err
		}

		for task := range plan.Tasks() {
			r.setStatus(task.Name, StatusRunning)
			if err := r.runTask(ctx, resolver, &task); err != nil {
				r.setStatus(task.Name, StatusFailed)
				return zerr.With(err, "task", task.Name.String())
			}
			r.setStatus(task.Name, StatusCompleted)
		}
	}
	return nil
}

// runTask runs the task's steps in declared order, expanding variables in
// each command line before execution and echoing it through the logger.
func (r *Runner) runTask(ctx context.Context, resolver *domain.Resolver, task *domain.Task) error {
	for _, step := range task.Cmds {
		command, err := resolver.Expand(ctx, step)
		if err != nil {
			return err
		}

		r.logger.Info(command)
		if err := r.exec.Run(ctx, command); err != nil {
			return zerr.With(errors.Join(domain.ErrStepFailed, err), "command", command)
		}
	}
	return nil
}

// Status returns the last observed status of the named task.
func (r *Runner) Status(name domain.InternedString) TaskStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.status[name]; ok {
		return s
	}
	return StatusPending
}

func (r *Runner) setStatus(name domain.InternedString, status TaskStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[name] = status
}
