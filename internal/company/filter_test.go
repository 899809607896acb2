package company

import (
	"reflect"
	"testing"

	"jobboard/api-service/internal/sqlbuild"
)

func TestBuildFilter_NameLike(t *testing.T) {
	b := sqlbuild.NewBinder()
	where := buildFilter(b, map[string]any{"nameLike": "hall"})

	if where != " WHERE name ILIKE $1" {
		t.Errorf("where = %q, want %q", where, " WHERE name ILIKE $1")
	}
	if !reflect.DeepEqual(b.Args(), []any{"%hall%"}) {
		t.Errorf("args = %v, want [%%hall%%]", b.Args())
	}
}

func TestBuildFilter_NameLikeAndMinEmployees(t *testing.T) {
	b := sqlbuild.NewBinder()
	where := buildFilter(b, map[string]any{"nameLike": "hall", "minEmployees": 3})

	want := " WHERE name ILIKE $1 AND num_employees >= $2"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if !reflect.DeepEqual(b.Args(), []any{"%hall%", 3}) {
		t.Errorf("args = %v, want [%%hall%% 3]", b.Args())
	}
}

func TestBuildFilter_AllKeys(t *testing.T) {
	b := sqlbuild.NewBinder()
	where := buildFilter(b, map[string]any{
		"nameLike":     "net",
		"minEmployees": 10,
		"maxEmployees": 500,
	})

	want := " WHERE name ILIKE $1 AND num_employees >= $2 AND num_employees <= $3"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if !reflect.DeepEqual(b.Args(), []any{"%net%", 10, 500}) {
		t.Errorf("args = %v, want [%%net%% 10 500]", b.Args())
	}
}

func TestBuildFilter_EmptyFilter(t *testing.T) {
	b := sqlbuild.NewBinder()
	if where := buildFilter(b, map[string]any{}); where != "" {
		t.Errorf("where = %q, want empty", where)
	}
	if b.Len() != 0 {
		t.Errorf("binder has %d args, want 0", b.Len())
	}
}

func TestBuildFilter_UnknownKeysSilentlyDropped(t *testing.T) {
	// The company filter kept the legacy lenient policy: unrecognized keys
	// simply produce no predicate.
	b := sqlbuild.NewBinder()
	where := buildFilter(b, map[string]any{"color": "red", "minEmployees": 2})

	want := " WHERE num_employees >= $1"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if !reflect.DeepEqual(b.Args(), []any{2}) {
		t.Errorf("args = %v, want [2]", b.Args())
	}
}
