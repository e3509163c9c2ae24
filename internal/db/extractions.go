package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobradar/internal/types"
)

// Extraction is one stored extraction result. A job has at most one: the
// job_id column carries a unique constraint and ReplaceExtraction upserts.
type Extraction struct {
	ID          uuid.UUID               `json:"id"`
	JobID       uuid.UUID               `json:"job_id"`
	Result      *types.ExtractionResult `json:"result"`
	Method      types.ExtractionMethod  `json:"method"`
	ExtractedAt time.Time               `json:"extracted_at"`
}

// ReplaceExtraction stores the result for a job, replacing any prior row in a
// single statement so readers never observe a job with zero or two results.
func (db *DB) ReplaceExtraction(ctx context.Context, jobID uuid.UUID, result *types.ExtractionResult) (*Extraction, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extraction result: %w", err)
	}

	query := `
		INSERT INTO extractions (job_id, result, method, extracted_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (job_id) DO UPDATE
		SET result = EXCLUDED.result,
		    method = EXCLUDED.method,
		    extracted_at = EXCLUDED.extracted_at
		RETURNING id, extracted_at
	`

	stored := &Extraction{
		JobID:  jobID,
		Result: result,
		Method: result.Method,
	}
	err = db.pool.QueryRow(ctx, query, jobID, payload, string(result.Method)).
		Scan(&stored.ID, &stored.ExtractedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to replace extraction: %w", err)
	}

	return stored, nil
}

// GetExtraction retrieves the live extraction for a job.
// Returns (nil, nil) when the job has not been extracted.
func (db *DB) GetExtraction(ctx context.Context, jobID uuid.UUID) (*Extraction, error) {
	query := `
		SELECT id, job_id, result, method, extracted_at
		FROM extractions
		WHERE job_id = $1
	`

	var (
		extraction Extraction
		payload    []byte
	)
	err := db.pool.QueryRow(ctx, query, jobID).Scan(
		&extraction.ID,
		&extraction.JobID,
		&payload,
		&extraction.Method,
		&extraction.ExtractedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get extraction: %w", err)
	}

	var result types.ExtractionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction result: %w", err)
	}
	extraction.Result = &result

	return &extraction, nil
}

// ListUnextractedJobIDs returns IDs of jobs with no stored extraction,
// oldest capture first. Used by batch re-extraction.
func (db *DB) ListUnextractedJobIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT j.id
		FROM jobs j
		LEFT JOIN extractions e ON e.job_id = j.id
		WHERE e.id IS NULL
		ORDER BY j.captured_at ASC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list unextracted jobs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan job id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job ids: %w", err)
	}

	return ids, nil
}

// ListJobIDs returns every job ID, oldest capture first. Used when a batch
// re-extraction targets the whole corpus.
func (db *DB) ListJobIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx, "SELECT id FROM jobs ORDER BY captured_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list job ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan job id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job ids: %w", err)
	}

	return ids, nil
}
