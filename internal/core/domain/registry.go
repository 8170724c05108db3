// Package domain contains the core domain models for the task runner:
// the task registry, the execution planner and the variable resolver.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry holds the set of declared tasks keyed by name, preserving
// declaration order for listing purposes.
type Registry struct {
	tasks map[InternedString]Task
	order []InternedString
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[InternedString]Task),
	}
}

// Declare adds a task to the registry. Declaring a name that already exists
// replaces the prior body (last declaration wins) while keeping the task's
// original declaration-order slot, so listing order stays stable across
// redeclarations.
func (r *Registry) Declare(t *Task) {
	if _, exists := r.tasks[t.Name]; !exists {
		r.order = append(r.order, t.Name)
	}
	r.tasks[t.Name] = *t
}

// Lookup returns the task with the given name.
func (r *Registry) Lookup(name InternedString) (Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return Task{}, zerr.With(ErrUnknownTask, "task", name.String())
	}
	return t, nil
}

// Len returns the number of declared tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// Tasks returns an iterator over all tasks in declaration order.
func (r *Registry) Tasks() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, name := range r.order {
			if !yield(r.tasks[name]) {
				return
			}
		}
	}
}

// ListPublic returns the tasks that carry a non-empty description, in
// declaration order. These are the tasks the listing generator shows.
func (r *Registry) ListPublic() []Task {
	var public []Task
	for t := range r.Tasks() {
		if t.Desc != "" {
			public = append(public, t)
		}
	}
	return public
}
