package company

// Company is the JSON shape returned to clients. Nullable columns map to
// pointer fields; Jobs is attached only by Get.
type Company struct {
	Handle       string       `json:"handle"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	NumEmployees *int32       `json:"numEmployees"`
	LogoURL      *string      `json:"logoUrl"`
	Jobs         []JobSummary `json:"jobs,omitempty"`
}

// JobSummary is the nested job shape inside a Company — no company
// back-reference.
type JobSummary struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Salary *int32  `json:"salary"`
	Equity *string `json:"equity"`
}

// CreateParams holds the fields required to create a company. Keeping the
// input type separate from the domain model keeps the handle immutable
// after creation.
type CreateParams struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int32  `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// updateColumns translates updatable logical field names to their physical
// columns. Fields not listed here use the logical name verbatim.
var updateColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}
