package domain

// Manifest is the in-memory form of one parsed task file: the task registry,
// the variable declarations and the name of the task substituted when the
// CLI is invoked without arguments. Declared once at startup and immutable
// for the remainder of the run.
type Manifest struct {
	Registry *Registry
	Vars     *VarSet
	// Default is the task to run when no task names are given. When it
	// names no declared task the built-in listing renders instead.
	Default InternedString
}
