// Package company contains the business logic and HTTP handlers for the
// companies resource. The Service is transport-agnostic; the Handler maps
// it onto REST routes.
package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"jobboard/api-service/internal/apperr"
	"jobboard/api-service/internal/db"
	"jobboard/api-service/internal/sqlbuild"
)

// companyCols is the column list every company query selects or returns.
const companyCols = `handle, name, description, num_employees, logo_url`

// Service encapsulates all company persistence logic.
type Service struct {
	db db.Querier
}

// NewService returns a configured Service.
func NewService(q db.Querier) *Service {
	return &Service{db: q}
}

// Create inserts a new company. A duplicate handle fails with Conflict.
// The existence pre-check only produces the friendlier error shape; the
// unique constraint on handle remains the real guard under concurrent
// writers.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Company, error) {
	var existing string
	err := s.db.QueryRow(ctx,
		`SELECT handle FROM companies WHERE handle = $1`, p.Handle,
	).Scan(&existing)
	switch {
	case err == nil:
		return nil, apperr.Conflict("duplicate company: %s", p.Handle)
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("create company pre-check: %w", err)
	}

	var c Company
	err = s.db.QueryRow(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+companyCols,
		p.Handle, p.Name, p.Description, p.NumEmployees, p.LogoURL,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return &c, nil
}

// Get returns a single company with its jobs attached, or ErrNotFound.
func (s *Service) Get(ctx context.Context, handle string) (*Company, error) {
	var c Company
	err := s.db.QueryRow(ctx,
		`SELECT `+companyCols+` FROM companies WHERE handle = $1`, handle,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, title, salary, equity::text
		 FROM jobs
		 WHERE company_handle = $1
		 ORDER BY id`,
		handle,
	)
	if err != nil {
		return nil, fmt.Errorf("get company jobs: %w", err)
	}
	defer rows.Close()

	c.Jobs = make([]JobSummary, 0)
	for rows.Next() {
		var j JobSummary
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity); err != nil {
			return nil, fmt.Errorf("get company jobs scan: %w", err)
		}
		c.Jobs = append(c.Jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get company jobs rows: %w", err)
	}
	return &c, nil
}

// List returns companies matching the optional filter, ordered by name.
// A minEmployees bound above maxEmployees is contradictory and fails with
// InvalidInput before any query executes.
func (s *Service) List(ctx context.Context, filter map[string]any) ([]Company, error) {
	minV, hasMin := toInt(filter["minEmployees"])
	maxV, hasMax := toInt(filter["maxEmployees"])
	if hasMin && hasMax && minV > maxV {
		return nil, apperr.InvalidInput("minEmployees cannot exceed maxEmployees")
	}

	b := sqlbuild.NewBinder()
	where := buildFilter(b, filter)

	rows, err := s.db.Query(ctx,
		`SELECT `+companyCols+` FROM companies`+where+` ORDER BY name`,
		b.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
			return nil, fmt.Errorf("list companies scan: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies rows: %w", err)
	}
	return companies, nil
}

// Update applies a partial update to a company. The handle is immutable;
// any attempt to set it fails with InvalidInput before a statement runs.
func (s *Service) Update(ctx context.Context, handle string, fields map[string]any) (*Company, error) {
	if _, ok := fields["handle"]; ok {
		return nil, apperr.InvalidInput("handle cannot be updated")
	}

	b := sqlbuild.NewBinder()
	set, err := sqlbuild.BuildSetClause(b, fields, updateColumns)
	if err != nil {
		return nil, err
	}

	var c Company
	err = s.db.QueryRow(ctx,
		`UPDATE companies SET `+set+` WHERE handle = `+b.Bind(handle)+` RETURNING `+companyCols,
		b.Args()...,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

// Delete removes a company, or returns ErrNotFound when the handle does
// not resolve.
func (s *Service) Delete(ctx context.Context, handle string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
