package domain

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// Variable is a named configuration value. The raw value is either a literal
// string or, when Shell is set, a command whose captured standard output
// becomes the resolved value. Either form may reference other variables with
// ${name}; $$ escapes a literal dollar sign.
type Variable struct {
	Name  InternedString
	Value string
	Shell bool
}

// VarSet holds the declared variables in declaration order. It is pure data;
// evaluation state lives in Resolver so a VarSet stays reusable across runs.
type VarSet struct {
	vars  map[InternedString]Variable
	order []InternedString
}

// NewVarSet creates a new empty VarSet.
func NewVarSet() *VarSet {
	return &VarSet{
		vars: make(map[InternedString]Variable),
	}
}

// Declare adds a variable. Redeclaring a name replaces the prior value,
// keeping the original declaration-order slot, matching Registry.Declare.
func (s *VarSet) Declare(v Variable) {
	if _, exists := s.vars[v.Name]; !exists {
		s.order = append(s.order, v.Name)
	}
	s.vars[v.Name] = v
}

// Lookup returns the variable with the given name.
func (s *VarSet) Lookup(name InternedString) (Variable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Len returns the number of declared variables.
func (s *VarSet) Len() int {
	return len(s.vars)
}

// Capturer runs an external command and captures its standard output.
// The shell adapter satisfies it; the domain stays free of os/exec.
type Capturer interface {
	Capture(ctx context.Context, command string) (string, error)
}

// Resolver evaluates variables lazily. Each variable resolves at most once
// per Resolver: resolved values are memoized, so re-resolving within a run is
// idempotent and extraction commands run exactly once.
type Resolver struct {
	set      *VarSet
	capturer Capturer

	resolved  map[InternedString]string
	resolving map[InternedString]bool
	path      []InternedString
}

// NewResolver creates a Resolver over the given variable set.
func NewResolver(set *VarSet, capturer Capturer) *Resolver {
	return &Resolver{
		set:       set,
		capturer:  capturer,
		resolved:  make(map[InternedString]string),
		resolving: make(map[InternedString]bool),
	}
}

// Resolve returns the resolved value of the named variable.
//
// It fails with ErrUndefinedVariable for unknown names, ErrCyclicVariable
// when a variable transitively references itself, and ErrVariableExtraction
// when an extraction command exits non-zero (the subprocess error stays in
// the chain, so exit-code metadata survives).
func (r *Resolver) Resolve(ctx context.Context, name InternedString) (string, error) {
	if v, ok := r.resolved[name]; ok {
		return v, nil
	}

	variable, ok := r.set.Lookup(name)
	if !ok {
		return "", zerr.With(ErrUndefinedVariable, "variable", name.String())
	}

	if r.resolving[name] {
		return "", zerr.With(ErrCyclicVariable, "chain", formatCycle(r.path, name))
	}
	r.resolving[name] = true
	r.path = append(r.path, name)
	defer func() {
		delete(r.resolving, name)
		r.path = r.path[:len(r.path)-1]
	}()

	value, err := r.Expand(ctx, variable.Value)
	if err != nil {
		return "", err
	}

	if variable.Shell {
		out, err := r.capturer.Capture(ctx, value)
		if err != nil {
			return "", zerr.With(errors.Join(ErrVariableExtraction, err), "variable", name.String())
		}
		value = strings.TrimRight(out, " \t\r\n")
	}

	r.resolved[name] = value
	return value, nil
}

// Expand substitutes ${name} references in s with their resolved values.
// $$ produces a literal $; a bare $ not followed by { passes through
// unchanged so shell constructs like $HOME keep working.
func (r *Resolver) Expand(ctx context.Context, s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '$' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}
		if i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return "", zerr.With(zerr.New("unterminated variable reference"), "value", s)
			}
			name := s[i+2 : i+2+end]
			val, err := r.Resolve(ctx, NewInternedString(name))
			if err != nil {
				return "", err
			}
			b.WriteString(val)
			i += end + 3
			continue
		}
		b.WriteByte('$')
		i++
	}
	return b.String(), nil
}
