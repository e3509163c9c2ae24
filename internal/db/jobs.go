package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobradar/internal/types"
)

// JobFilter narrows ListJobs. Zero values mean "no constraint".
type JobFilter struct {
	Source     string
	RoleFamily string
	Limit      int
	Offset     int
}

// CreateJob inserts a captured posting and returns it with the generated ID
// and timestamps filled in.
func (db *DB) CreateJob(ctx context.Context, job *types.Job) (*types.Job, error) {
	query := `
		INSERT INTO jobs (source, url, title, company, location, jd_text, role_family, seniority)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		RETURNING id, captured_at
	`

	created := *job
	err := db.pool.QueryRow(ctx, query,
		job.Source,
		job.URL,
		job.Title,
		job.Company,
		job.Location,
		job.JDText,
		string(job.RoleFamily),
		string(job.Seniority),
	).Scan(&created.ID, &created.CapturedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return &created, nil
}

// GetJob retrieves a job by ID. Returns (nil, nil) when no job exists.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	query := `
		SELECT id, source, COALESCE(url, ''), title, company, COALESCE(location, ''),
		       jd_text, COALESCE(role_family, ''), COALESCE(seniority, ''), captured_at
		FROM jobs
		WHERE id = $1
	`

	var job types.Job
	err := db.pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Source,
		&job.URL,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.JDText,
		&job.RoleFamily,
		&job.Seniority,
		&job.CapturedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// ListJobs returns jobs matching the filter, newest first, plus the total
// count before limit/offset.
func (db *DB) ListJobs(ctx context.Context, filter JobFilter) ([]*types.Job, int, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	if filter.Source != "" {
		whereClause += fmt.Sprintf(" AND source = $%d", argIndex)
		args = append(args, filter.Source)
		argIndex++
	}
	if filter.RoleFamily != "" {
		whereClause += fmt.Sprintf(" AND role_family = $%d", argIndex)
		args = append(args, filter.RoleFamily)
		argIndex++
	}

	countQuery := "SELECT COUNT(*) FROM jobs WHERE 1=1" + whereClause
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := `
		SELECT id, source, COALESCE(url, ''), title, company, COALESCE(location, ''),
		       jd_text, COALESCE(role_family, ''), COALESCE(seniority, ''), captured_at
		FROM jobs
		WHERE 1=1` + whereClause + `
		ORDER BY captured_at DESC
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*types.Job
	for rows.Next() {
		var job types.Job
		err := rows.Scan(
			&job.ID,
			&job.Source,
			&job.URL,
			&job.Title,
			&job.Company,
			&job.Location,
			&job.JDText,
			&job.RoleFamily,
			&job.Seniority,
			&job.CapturedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, total, nil
}

// UpdateJobRole records the inferred role family and seniority for a job.
func (db *DB) UpdateJobRole(ctx context.Context, id uuid.UUID, family types.RoleFamily, seniority types.Seniority) error {
	query := `
		UPDATE jobs
		SET role_family = $2, seniority = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := db.pool.Exec(ctx, query, id, string(family), string(seniority))
	if err != nil {
		return fmt.Errorf("failed to update job role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s not found", id)
	}

	return nil
}

// DeleteJob removes a job and, via cascade, its extraction.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s not found", id)
	}

	return nil
}
