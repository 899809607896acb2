package job

// Job is the JSON shape returned to clients. Salary and equity are
// nullable; equity is a decimal string in [0,1] surfaced from NUMERIC.
type Job struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int32  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// CreateParams holds the fields required to create a job. The id is
// store-assigned and the company handle is immutable after creation.
type CreateParams struct {
	Title         string  `json:"title"`
	Salary        *int32  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}
