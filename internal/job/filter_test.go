package job

import (
	"reflect"
	"testing"

	"jobboard/api-service/internal/apperr"
	"jobboard/api-service/internal/sqlbuild"
)

func TestBuildFilter_TitleAndMinSalary(t *testing.T) {
	b := sqlbuild.NewBinder()
	where, err := buildFilter(b, map[string]any{"title": "j1", "minSalary": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := " WHERE title ILIKE $1 AND salary >= $2"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if !reflect.DeepEqual(b.Args(), []any{"%j1%", 1}) {
		t.Errorf("args = %v, want [%%j1%% 1]", b.Args())
	}
}

func TestBuildFilter_HasEquityTrue(t *testing.T) {
	b := sqlbuild.NewBinder()
	where, err := buildFilter(b, map[string]any{"hasEquity": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if where != " WHERE equity > 0" {
		t.Errorf("where = %q, want %q", where, " WHERE equity > 0")
	}
	// The equity predicate binds no value.
	if b.Len() != 0 {
		t.Errorf("binder has %d args, want 0", b.Len())
	}
}

func TestBuildFilter_HasEquityFalseAddsNothing(t *testing.T) {
	b := sqlbuild.NewBinder()
	where, err := buildFilter(b, map[string]any{"hasEquity": false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if where != "" {
		t.Errorf("where = %q, want empty", where)
	}
}

func TestBuildFilter_HasEquityNonBoolRejected(t *testing.T) {
	// The job filter's strict policy extends to value shapes: a non-bool
	// hasEquity is rejected, not silently treated as false.
	b := sqlbuild.NewBinder()
	_, err := buildFilter(b, map[string]any{"hasEquity": "true"})
	if !apperr.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput, got %v", err)
	}
}

func TestBuildFilter_EmptyFilter(t *testing.T) {
	b := sqlbuild.NewBinder()
	where, err := buildFilter(b, map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if where != "" {
		t.Errorf("where = %q, want empty", where)
	}
}

func TestBuildFilter_UnknownKeyRejected(t *testing.T) {
	// Unlike the company filter, the job filter rejects the whole request
	// on any unrecognized key.
	b := sqlbuild.NewBinder()
	_, err := buildFilter(b, map[string]any{"invalidFilter": "x", "title": "j1"})
	if !apperr.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput, got %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("binder has %d args after rejection, want 0", b.Len())
	}
}
