// Package job contains the business logic and HTTP handlers for the jobs
// resource. The Service is transport-agnostic; the Handler maps it onto
// REST routes.
package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"jobboard/api-service/internal/apperr"
	"jobboard/api-service/internal/db"
	"jobboard/api-service/internal/sqlbuild"
)

// jobCols is the column list every job query selects or returns. Equity is
// cast to text so the NUMERIC scans into a plain decimal string.
const jobCols = `id, title, salary, equity::text, company_handle`

// Service encapsulates all job persistence logic.
type Service struct {
	db db.Querier
}

// NewService returns a configured Service.
func NewService(q db.Querier) *Service {
	return &Service{db: q}
}

// Create inserts a new job. The company handle must resolve to an existing
// company, checked before the insert; a missing company fails with
// InvalidInput.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Job, error) {
	var handle string
	err := s.db.QueryRow(ctx,
		`SELECT handle FROM companies WHERE handle = $1`, p.CompanyHandle,
	).Scan(&handle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.InvalidInput("no such company: %s", p.CompanyHandle)
	}
	if err != nil {
		return nil, fmt.Errorf("create job company check: %w", err)
	}

	var j Job
	err = s.db.QueryRow(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+jobCols,
		p.Title, p.Salary, p.Equity, p.CompanyHandle,
	).Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &j, nil
}

// Get returns a single job by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Job, error) {
	var j Job
	err := s.db.QueryRow(ctx,
		`SELECT `+jobCols+` FROM jobs WHERE id = $1`, id,
	).Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// List returns jobs matching the optional filter, ordered by title.
// A negative minSalary is rejected with InvalidInput before the filter
// builder runs; the builder itself rejects unrecognized keys.
func (s *Service) List(ctx context.Context, filter map[string]any) ([]Job, error) {
	if v, ok := toInt(filter["minSalary"]); ok && v < 0 {
		return nil, apperr.InvalidInput("minSalary cannot be negative")
	}

	b := sqlbuild.NewBinder()
	where, err := buildFilter(b, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+jobCols+` FROM jobs`+where+` ORDER BY title`,
		b.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
			return nil, fmt.Errorf("list jobs scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs rows: %w", err)
	}
	return jobs, nil
}

// Update applies a partial update to a job. The id and company handle are
// immutable; attempting to set either fails with InvalidInput before any
// statement runs, regardless of whether the job exists.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (*Job, error) {
	for _, immutable := range []string{"id", "companyHandle"} {
		if _, ok := fields[immutable]; ok {
			return nil, apperr.InvalidInput("%s cannot be updated", immutable)
		}
	}

	b := sqlbuild.NewBinder()
	// Updatable job fields map 1:1 to their columns — no translation table.
	set, err := sqlbuild.BuildSetClause(b, fields, nil)
	if err != nil {
		return nil, err
	}

	var j Job
	err = s.db.QueryRow(ctx,
		`UPDATE jobs SET `+set+` WHERE id = `+b.Bind(id)+` RETURNING `+jobCols,
		b.Args()...,
	).Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &j, nil
}

// Delete removes a job, or returns ErrNotFound when the id does not
// resolve.
func (s *Service) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
