package company

import (
	"fmt"
	"strings"

	"jobboard/api-service/internal/sqlbuild"
)

// buildFilter lowers the recognized company filter keys into an AND-joined
// WHERE clause, binding values on b. Returns "" for an empty filter.
//
// Recognized keys: nameLike (case-insensitive substring — the wildcard
// wrapping happens here, not in the caller), minEmployees, maxEmployees.
// Unrecognized keys are silently dropped; the company filter kept the
// legacy lenient policy, unlike the job filter.
func buildFilter(b *sqlbuild.Binder, filter map[string]any) string {
	var preds []string

	if v, ok := filter["nameLike"]; ok {
		preds = append(preds, "name ILIKE "+b.Bind(fmt.Sprintf("%%%v%%", v)))
	}
	if v, ok := filter["minEmployees"]; ok {
		preds = append(preds, "num_employees >= "+b.Bind(v))
	}
	if v, ok := filter["maxEmployees"]; ok {
		preds = append(preds, "num_employees <= "+b.Bind(v))
	}

	if len(preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(preds, " AND ")
}

// toInt coerces a raw filter value to int. Handlers deliver parsed ints,
// but the range check also accepts the other integer shapes a caller might
// hand the service directly.
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
