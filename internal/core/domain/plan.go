package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Plan is the linearized, deduplicated order in which tasks run for a given
// root: every prerequisite appears before its dependent and no task appears
// twice. Built fresh per invocation, never persisted.
type Plan struct {
	Root  InternedString
	tasks []Task
}

// Len returns the number of tasks in the plan.
func (p *Plan) Len() int {
	return len(p.tasks)
}

// Tasks returns an iterator over the planned tasks in execution order.
func (p *Plan) Tasks() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range p.tasks {
			if !yield(t) {
				return
			}
		}
	}
}

// Names returns the planned task names in execution order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		names[i] = t.Name.String()
	}
	return names
}

// Plan computes the execution plan for root via depth-first traversal of the
// prerequisite graph. Tasks already present in done are skipped and newly
// planned tasks are added to it, so passing the same set across several calls
// deduplicates shared work within one command-line batch. A nil done plans
// the root in isolation.
//
// A prerequisite reference to an undeclared task fails with ErrUnknownTask;
// a cycle fails with ErrCycleDetected carrying the cycle path in metadata.
func (r *Registry) Plan(root InternedString, done map[InternedString]bool) (*Plan, error) {
	if done == nil {
		done = make(map[InternedString]bool)
	}

	plan := &Plan{Root: root}
	inProgress := make(map[InternedString]bool)
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		task, exists := r.tasks[u]
		if !exists {
			return zerr.With(ErrUnknownTask, "task", u.String())
		}

		inProgress[u] = true
		path = append(path, u)

		for _, dep := range task.Deps {
			if inProgress[dep] {
				return cycleError(path, dep)
			}
			if done[dep] {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		delete(inProgress, u)
		path = path[:len(path)-1]
		done[u] = true
		plan.tasks = append(plan.tasks, task)
		return nil
	}

	if done[root] {
		return plan, nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return plan, nil
}

// cycleError constructs an ErrCycleDetected with the cycle path in metadata.
func cycleError(path []InternedString, dep InternedString) error {
	return zerr.With(ErrCycleDetected, "cycle", formatCycle(path, dep))
}

// formatCycle renders the portion of path that closes the cycle at node as
// "a -> b -> a".
func formatCycle(path []InternedString, node InternedString) string {
	startIdx := 0
	for i, p := range path {
		if p == node {
			startIdx = i
			break
		}
	}
	cyclePath := ""
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	return cyclePath + node.String()
}
