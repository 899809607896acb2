package job

import (
	"fmt"
	"sort"
	"strings"

	"jobboard/api-service/internal/apperr"
	"jobboard/api-service/internal/sqlbuild"
)

// filterKeys is the recognized job filter vocabulary.
var filterKeys = map[string]bool{
	"title":     true,
	"minSalary": true,
	"hasEquity": true,
}

// buildFilter lowers the job filter keys into an AND-joined WHERE clause,
// binding values on b. Returns "" for an empty filter.
//
// Recognized keys: title (case-insensitive substring, wildcarded here),
// minSalary, hasEquity (true restricts to equity > 0; false or absent adds
// nothing). Unlike the company filter, any unrecognized key fails the whole
// request with InvalidInput — no silent partial application.
func buildFilter(b *sqlbuild.Binder, filter map[string]any) (string, error) {
	unknown := make([]string, 0)
	for key := range filter {
		if !filterKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return "", apperr.InvalidInput("invalid filter key: %s", strings.Join(unknown, ", "))
	}

	var preds []string
	if v, ok := filter["title"]; ok {
		preds = append(preds, "title ILIKE "+b.Bind(fmt.Sprintf("%%%v%%", v)))
	}
	if v, ok := filter["minSalary"]; ok {
		preds = append(preds, "salary >= "+b.Bind(v))
	}
	if v, ok := filter["hasEquity"]; ok {
		hv, ok := v.(bool)
		if !ok {
			return "", apperr.InvalidInput("hasEquity must be a boolean")
		}
		// A NULL equity never satisfies the comparison, so presence and
		// positivity come from the one predicate.
		if hv {
			preds = append(preds, "equity > 0")
		}
	}

	if len(preds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(preds, " AND "), nil
}

// toInt coerces a raw filter value to int, accepting the integer shapes a
// caller might supply directly alongside handler-parsed ints.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
