package domain

// Task is a declared phony task: it has no associated artifact and is always
// eligible to run when requested.
type Task struct {
	Name InternedString
	// Desc is the one-line description shown by the listing. Tasks without
	// one are considered internal and are omitted from the listing.
	Desc string
	// Deps are prerequisite task names, in declared order.
	Deps []InternedString
	// Cmds are the action steps, one shell command line each, run in
	// declared order after variable expansion.
	Cmds []string
}
