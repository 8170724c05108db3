package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTask is returned when a requested or referenced task was never declared.
	ErrUnknownTask = zerr.New("unknown task")

	// ErrCycleDetected is returned when the prerequisite graph contains a cycle.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrUndefinedVariable is returned when a variable reference names no declared variable.
	ErrUndefinedVariable = zerr.New("undefined variable")

	// ErrCyclicVariable is returned when a variable transitively references itself.
	ErrCyclicVariable = zerr.New("cyclic variable reference")

	// ErrVariableExtraction is returned when the command computing a variable's value fails.
	ErrVariableExtraction = zerr.New("variable extraction failed")

	// ErrStepFailed is returned when a task's action step exits non-zero.
	ErrStepFailed = zerr.New("step execution failed")
)
