// Package pipeline runs batch re-extraction over stored jobs.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobradar/internal/db"
	"github.com/jonathan/jobradar/internal/extraction"
	"github.com/jonathan/jobradar/internal/types"
)

// DefaultConcurrency bounds how many jobs are extracted at once.
const DefaultConcurrency = 4

// Store is the storage surface the runner needs.
type Store interface {
	GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error)
	ReplaceExtraction(ctx context.Context, jobID uuid.UUID, result *types.ExtractionResult) (*db.Extraction, error)
	UpdateJobRole(ctx context.Context, id uuid.UUID, family types.RoleFamily, seniority types.Seniority) error
	ListJobIDs(ctx context.Context) ([]uuid.UUID, error)
	ListUnextractedJobIDs(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// JobError records a single job's failure within a batch.
type JobError struct {
	JobID uuid.UUID
	Err   error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s: %v", e.JobID, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
	Errors    []*JobError
}

// Runner re-extracts stored jobs with a bounded worker group.
type Runner struct {
	store       Store
	engine      *extraction.Engine
	concurrency int
}

// NewRunner builds a runner. Concurrency below 1 falls back to the default.
func NewRunner(store Store, engine *extraction.Engine, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Runner{store: store, engine: engine, concurrency: concurrency}
}

// Run re-extracts the given jobs. One job failing does not stop the rest;
// cancelling ctx stops scheduling new jobs and cancels in-flight extractions.
func (r *Runner) Run(ctx context.Context, jobIDs []uuid.UUID) (*Summary, error) {
	summary := &Summary{}
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, jobID := range jobIDs {
		if err := gCtx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			err := r.extractOne(gCtx, jobID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				summary.Errors = append(summary.Errors, &JobError{JobID: jobID, Err: err})
				log.Printf("[reextract] job %s failed: %v", jobID, err)
			} else {
				summary.Processed++
			}
			// Job-level failures are recorded, not propagated, so one bad
			// job never cancels the group.
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	return summary, nil
}

// RunAll re-extracts every stored job.
func (r *Runner) RunAll(ctx context.Context) (*Summary, error) {
	ids, err := r.store.ListJobIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return r.Run(ctx, ids)
}

// RunMissing extracts only jobs that have no stored result yet.
func (r *Runner) RunMissing(ctx context.Context, limit int) (*Summary, error) {
	ids, err := r.store.ListUnextractedJobIDs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unextracted jobs: %w", err)
	}
	return r.Run(ctx, ids)
}

// extractOne loads, extracts, and atomically replaces one job's result.
func (r *Runner) extractOne(ctx context.Context, jobID uuid.UUID) error {
	job, err := r.store.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return fmt.Errorf("job not found")
	}

	result := r.engine.ExtractJob(ctx, job)

	if _, err := r.store.ReplaceExtraction(ctx, jobID, result); err != nil {
		return fmt.Errorf("failed to store extraction: %w", err)
	}

	if result.RoleFamily != "" {
		family := types.RoleFamily(result.RoleFamily)
		seniority := types.Seniority(result.Seniority)
		if types.ValidRoleFamily(family) && types.ValidSeniority(seniority) {
			if err := r.store.UpdateJobRole(ctx, jobID, family, seniority); err != nil {
				return fmt.Errorf("failed to update job role: %w", err)
			}
		}
	}

	return nil
}
