package sqlbuild_test

import (
	"reflect"
	"testing"

	"jobboard/api-service/internal/apperr"
	"jobboard/api-service/internal/sqlbuild"
)

// ── Binder ─────────────────────────────────────────────────────────────────

func TestBinder_SequentialPlaceholders(t *testing.T) {
	b := sqlbuild.NewBinder()

	if got := b.Bind("a"); got != "$1" {
		t.Errorf("first Bind = %q, want $1", got)
	}
	if got := b.Bind(2); got != "$2" {
		t.Errorf("second Bind = %q, want $2", got)
	}
	if got := b.Bind(nil); got != "$3" {
		t.Errorf("third Bind = %q, want $3", got)
	}

	want := []any{"a", 2, nil}
	if !reflect.DeepEqual(b.Args(), want) {
		t.Errorf("Args() = %v, want %v", b.Args(), want)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

// ── BuildSetClause ─────────────────────────────────────────────────────────

func TestBuildSetClause_SingleField(t *testing.T) {
	b := sqlbuild.NewBinder()
	clause, err := sqlbuild.BuildSetClause(b, map[string]any{"name": "Acme"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != `"name"=$1` {
		t.Errorf("clause = %q, want %q", clause, `"name"=$1`)
	}
	if !reflect.DeepEqual(b.Args(), []any{"Acme"}) {
		t.Errorf("args = %v, want [Acme]", b.Args())
	}
}

func TestBuildSetClause_MultipleFieldsSortedAndTranslated(t *testing.T) {
	b := sqlbuild.NewBinder()
	fields := map[string]any{
		"numEmployees": 40,
		"name":         "Acme",
		"logoUrl":      "http://x/logo.png",
	}
	colFor := map[string]string{
		"numEmployees": "num_employees",
		"logoUrl":      "logo_url",
	}

	clause, err := sqlbuild.BuildSetClause(b, fields, colFor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sorted logical names: logoUrl, name, numEmployees.
	want := `"logo_url"=$1, "name"=$2, "num_employees"=$3`
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	wantArgs := []any{"http://x/logo.png", "Acme", 40}
	if !reflect.DeepEqual(b.Args(), wantArgs) {
		t.Errorf("args = %v, want %v", b.Args(), wantArgs)
	}
}

func TestBuildSetClause_NilValuePassesThrough(t *testing.T) {
	b := sqlbuild.NewBinder()
	clause, err := sqlbuild.BuildSetClause(b, map[string]any{"salary": nil}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != `"salary"=$1` {
		t.Errorf("clause = %q, want %q", clause, `"salary"=$1`)
	}
	if len(b.Args()) != 1 || b.Args()[0] != nil {
		t.Errorf("args = %v, want [nil]", b.Args())
	}
}

func TestBuildSetClause_EmptyMappingRejected(t *testing.T) {
	b := sqlbuild.NewBinder()
	_, err := sqlbuild.BuildSetClause(b, map[string]any{}, nil)
	if !apperr.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput, got %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("binder should stay empty on rejection, has %d args", b.Len())
	}
}

func TestBuildSetClause_PrimaryKeyFollowsAssignments(t *testing.T) {
	// The repository binds the WHERE key on the same binder; it must get
	// the next index after the last assignment.
	b := sqlbuild.NewBinder()
	_, err := sqlbuild.BuildSetClause(b, map[string]any{"a": 1, "b": 2}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Bind("pk"); got != "$3" {
		t.Errorf("key placeholder = %q, want $3", got)
	}
}
