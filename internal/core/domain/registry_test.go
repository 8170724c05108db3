package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRegistry_DeclareAndLookup(t *testing.T) {
	r := domain.NewRegistry()
	r.Declare(&domain.Task{
		Name: domain.NewInternedString("test"),
		Cmds: []string{"pytest tests"},
	})

	task, err := r.Lookup(domain.NewInternedString("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(task.Cmds) != 1 || task.Cmds[0] != "pytest tests" {
		t.Errorf("unexpected task body: %+v", task)
	}
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	r := domain.NewRegistry()

	_, err := r.Lookup(domain.NewInternedString("nope"))
	if err == nil {
		t.Fatal("expected error for unknown task, got nil")
	}
	if !errors.Is(err, domain.ErrUnknownTask) {
		t.Errorf("expected ErrUnknownTask, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["task"].(string); !ok || name != "nope" {
		t.Errorf("expected metadata task=nope, got %v", meta["task"])
	}
}

func TestRegistry_Declare_LastWins(t *testing.T) {
	r := domain.NewRegistry()
	r.Declare(&domain.Task{
		Name: domain.NewInternedString("build"),
		Desc: "first",
		Cmds: []string{"echo first"},
	})
	r.Declare(&domain.Task{
		Name: domain.NewInternedString("lint"),
		Desc: "Run the linter",
	})
	r.Declare(&domain.Task{
		Name: domain.NewInternedString("build"),
		Desc: "second",
		Cmds: []string{"echo second"},
	})

	if r.Len() != 2 {
		t.Fatalf("expected 2 tasks after redeclaration, got %d", r.Len())
	}

	task, err := r.Lookup(domain.NewInternedString("build"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Desc != "second" || task.Cmds[0] != "echo second" {
		t.Errorf("expected second declaration to win, got %+v", task)
	}

	// The redeclared task keeps its original declaration-order slot.
	public := r.ListPublic()
	if len(public) != 2 {
		t.Fatalf("expected 2 public tasks, got %d", len(public))
	}
	if public[0].Name.String() != "build" || public[1].Name.String() != "lint" {
		t.Errorf("unexpected listing order: %v, %v", public[0].Name, public[1].Name)
	}
}

func TestRegistry_ListPublic_DeclarationOrder(t *testing.T) {
	r := domain.NewRegistry()
	// Deliberately non-alphabetical declaration order, with one private task.
	r.Declare(&domain.Task{Name: domain.NewInternedString("wheel"), Desc: "Build the wheel"})
	r.Declare(&domain.Task{Name: domain.NewInternedString("clean")})
	r.Declare(&domain.Task{Name: domain.NewInternedString("install"), Desc: "Install dependencies"})
	r.Declare(&domain.Task{Name: domain.NewInternedString("publish"), Desc: "Publish the package"})

	public := r.ListPublic()
	if len(public) != 3 {
		t.Fatalf("expected 3 public tasks, got %d", len(public))
	}
	want := []string{"wheel", "install", "publish"}
	for i, name := range want {
		if public[i].Name.String() != name {
			t.Errorf("position %d: expected %s, got %s", i, name, public[i].Name)
		}
	}
}

func TestRegistry_Tasks_IncludesPrivate(t *testing.T) {
	r := domain.NewRegistry()
	r.Declare(&domain.Task{Name: domain.NewInternedString("a"), Desc: "A"})
	r.Declare(&domain.Task{Name: domain.NewInternedString("b")})

	count := 0
	for range r.Tasks() {
		count++
	}
	if count != 2 {
		t.Errorf("expected iterator to yield 2 tasks, got %d", count)
	}
}
