// Package sqlbuild contains the dynamic query construction helpers shared
// by the company and job services: a positional placeholder allocator and
// the partial-update (SET clause) builder.
//
// Both the filter builders and the repositories thread the same Binder
// through a statement, so placeholder indices and the bound value list can
// never drift apart — the caller-bound primary-key predicate always lands
// on the next index after the last assignment.
package sqlbuild

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"jobboard/api-service/internal/apperr"
)

// Binder allocates sequential positional placeholders ($1, $2, …) and
// accumulates the values bound to them.
type Binder struct {
	args []any
}

// NewBinder returns an empty Binder.
func NewBinder() *Binder {
	return &Binder{}
}

// Bind appends v to the value list and returns the placeholder token
// for it, e.g. "$3".
func (b *Binder) Bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// Args returns the values bound so far, in placeholder order.
func (b *Binder) Args() []any {
	return b.args
}

// Len returns the number of placeholders allocated so far.
func (b *Binder) Len() int {
	return len(b.args)
}

// BuildSetClause lowers a partial-update mapping into an assignment clause
// like `"name"=$1, "num_employees"=$2` plus matching bound values on b.
//
// colFor translates a logical field name to its physical column; fields
// without an entry use the logical name verbatim. Values pass through
// untouched — a nil value is a deliberate column clear, not an error.
// Fields are emitted in sorted name order so the generated statement is
// deterministic.
func BuildSetClause(b *Binder, fields map[string]any, colFor map[string]string) (string, error) {
	if len(fields) == 0 {
		return "", apperr.InvalidInput("no fields to update")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	frags := make([]string, 0, len(names))
	for _, name := range names {
		col, ok := colFor[name]
		if !ok {
			col = name
		}
		frags = append(frags, fmt.Sprintf("%q=%s", col, b.Bind(fields[name])))
	}
	return strings.Join(frags, ", "), nil
}
