package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"plinth/internal/catalog"
	"plinth/internal/config"
	"plinth/internal/infer"
	"plinth/internal/logging"
)

// ErrRunInProgress indicates another apply run holds the lock.
var ErrRunInProgress = errors.New("another apply run is in progress")

// Change is one record's pending change set.
type Change struct {
	RecordID int64
	Path     string
	Fields   []FieldChange

	update catalog.FieldUpdate
}

// Result summarizes one enrichment run.
type Result struct {
	RunID     string
	Applied   bool
	Processed int
	Changed   int
	Changes   []Change
	Elapsed   time.Duration
}

// Runner pages the catalog through the inference engine.
type Runner struct {
	store      *catalog.Store
	engine     *infer.Engine
	logger     *slog.Logger
	batchSize  int
	maxRecords int
	lockPath   string
	force      bool
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithForce lets assignments overwrite stored non-empty fields.
func WithForce(force bool) RunnerOption {
	return func(r *Runner) { r.force = force }
}

// WithMaxRecords caps the number of records a run visits. Zero means no cap.
func WithMaxRecords(limit int) RunnerOption {
	return func(r *Runner) {
		if limit >= 0 {
			r.maxRecords = limit
		}
	}
}

// WithLogger attaches a logger for per-run progress.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner builds a runner over an open store and engine. Batch size and
// record cap default from the config.
func NewRunner(store *catalog.Store, engine *infer.Engine, cfg *config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		store:      store,
		engine:     engine,
		logger:     logging.NewNop(),
		batchSize:  cfg.Enrich.BatchSize,
		maxRecords: cfg.Enrich.MaxRecords,
		lockPath:   cfg.LockPath(),
	}
	if r.batchSize <= 0 {
		r.batchSize = 1
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DryRun computes change sets without writing anything.
func (r *Runner) DryRun(ctx context.Context) (*Result, error) {
	return r.run(ctx, false)
}

// Apply computes and persists change sets. A file lock guards against
// concurrent apply runs; a held lock fails the run immediately.
func (r *Runner) Apply(ctx context.Context) (*Result, error) {
	lock := flock.New(r.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire apply lock: %w", err)
	}
	if !locked {
		return nil, ErrRunInProgress
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return r.run(ctx, true)
}

func (r *Runner) run(ctx context.Context, apply bool) (*Result, error) {
	started := time.Now()
	result := &Result{RunID: uuid.NewString(), Applied: apply}

	r.logger.Info("enrichment run started",
		logging.String("run_id", result.RunID),
		logging.Bool("apply", apply),
		logging.Int("batch_size", r.batchSize))

	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		limit := r.batchSize
		if r.maxRecords > 0 {
			remaining := r.maxRecords - result.Processed
			if remaining <= 0 {
				break
			}
			if remaining < limit {
				limit = remaining
			}
		}

		page, err := r.store.List(ctx, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		if len(page) == 0 {
			break
		}
		offset += len(page)

		var updates []catalog.FieldUpdate
		for _, record := range page {
			result.Processed++
			change, err := r.plan(record)
			if err != nil {
				return nil, err
			}
			if change == nil {
				continue
			}
			result.Changed++
			result.Changes = append(result.Changes, *change)
			if apply {
				updates = append(updates, change.update)
			}
		}

		if apply && len(updates) > 0 {
			if err := r.store.UpdateBatch(ctx, updates); err != nil {
				return nil, fmt.Errorf("apply batch: %w", err)
			}
		}
	}

	result.Elapsed = time.Since(started)
	r.logger.Info("enrichment run finished",
		logging.String("run_id", result.RunID),
		logging.Int("processed", result.Processed),
		logging.Int("changed", result.Changed),
		logging.Duration("elapsed", result.Elapsed))

	return result, nil
}

// One runs the pipeline for a single record, applying the change set when
// requested.
func (r *Runner) One(ctx context.Context, id int64, apply bool) (*Change, error) {
	record, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	change, err := r.plan(record)
	if err != nil {
		return nil, err
	}
	if change == nil {
		return &Change{RecordID: record.ID, Path: record.Path}, nil
	}
	if apply {
		if err := r.store.UpdateFields(ctx, record.ID, change.update.Fields); err != nil {
			return nil, err
		}
	}
	return change, nil
}

func (r *Runner) plan(record *catalog.Record) (*Change, error) {
	assignment := r.engine.Infer(record.Path)
	update, fields, err := Plan(record, assignment, r.force)
	if err != nil {
		return nil, fmt.Errorf("plan record %d: %w", record.ID, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return &Change{
		RecordID: record.ID,
		Path:     record.Path,
		Fields:   fields,
		update:   update,
	}, nil
}
