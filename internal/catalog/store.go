package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"plinth/internal/config"
	"plinth/internal/tokenize"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// Open initializes or connects to the catalog database and applies
// migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// AddPath inserts a new record for a library path. The file name is the
// last hierarchy component. Adding an already cataloged path fails with
// ErrDuplicatePath.
func (s *Store) AddPath(ctx context.Context, path string) (*Record, error) {
	ctx = ensureContext(ctx)
	trimmed := strings.TrimSpace(path)
	components := tokenize.SplitPath(trimmed)
	if len(components) == 0 {
		return nil, fmt.Errorf("add path: empty path")
	}
	fileName := components[len(components)-1]
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO records (path, file_name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		trimmed,
		fileName,
		timestamp,
		timestamp,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, trimmed)
		}
		return nil, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

const recordColumns = `id, path, file_name, franchise, character_name, lineage_family,
    faction_hints, scale_ratio_denominator, height_mm, segmentation,
    internal_volume, support_state, part_pack_type, content_flag,
    residual_tokens, normalization_warnings, token_version, created_at, updated_at`

// GetByID fetches a record by identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (*Record, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	return record, nil
}

// FindByPath fetches a record by its exact path.
func (s *Store) FindByPath(ctx context.Context, path string) (*Record, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE path = ?`, strings.TrimSpace(path))
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("find record by path: %w", err)
	}
	return record, nil
}

// List returns records ordered by identifier. A non-positive limit means
// no bound.
func (s *Store) List(ctx context.Context, limit, offset int) ([]*Record, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM records ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Count returns the number of cataloged records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// FieldUpdate is one record's pending column changes.
type FieldUpdate struct {
	ID     int64
	Fields map[string]any
}

// UpdateFields writes the given columns of one record. Column names are
// checked against the updatable set; updated_at is always refreshed.
func (s *Store) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		return applyUpdate(ctx, s.db, FieldUpdate{ID: id, Fields: fields})
	})
}

// UpdateBatch applies a set of record updates in a single transaction.
func (s *Store) UpdateBatch(ctx context.Context, updates []FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin update tx: %w", err)
		}
		defer func() {
			_ = tx.Rollback()
		}()

		for _, update := range updates {
			if err := applyUpdate(ctx, tx, update); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit updates: %w", err)
		}
		return nil
	})
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func applyUpdate(ctx context.Context, db execer, update FieldUpdate) error {
	if len(update.Fields) == 0 {
		return nil
	}

	columns := make([]string, 0, len(update.Fields))
	for column := range update.Fields {
		if _, ok := updatableColumns[column]; !ok {
			return fmt.Errorf("column %q is not updatable", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+2)
	for _, column := range columns {
		assignments = append(assignments, column+" = ?")
		args = append(args, update.Fields[column])
	}
	assignments = append(assignments, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339Nano))
	args = append(args, update.ID)

	query := "UPDATE records SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update record %d: %w", update.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, update.ID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		record        Record
		franchise     sql.NullString
		character     sql.NullString
		lineage       sql.NullString
		factionHints  string
		scaleRatio    sql.NullInt64
		heightMM      sql.NullInt64
		segmentation  sql.NullString
		internalVol   sql.NullString
		supportState  sql.NullString
		partPackType  sql.NullString
		contentFlag   sql.NullString
		residual      string
		warnings      string
		createdAtText string
		updatedAtText string
	)

	if err := row.Scan(
		&record.ID,
		&record.Path,
		&record.FileName,
		&franchise,
		&character,
		&lineage,
		&factionHints,
		&scaleRatio,
		&heightMM,
		&segmentation,
		&internalVol,
		&supportState,
		&partPackType,
		&contentFlag,
		&residual,
		&warnings,
		&record.TokenVersion,
		&createdAtText,
		&updatedAtText,
	); err != nil {
		return nil, err
	}

	record.Franchise = franchise.String
	record.CharacterName = character.String
	record.LineageFamily = lineage.String
	record.ScaleRatioDenominator = int(scaleRatio.Int64)
	record.HeightMM = int(heightMM.Int64)
	record.Segmentation = segmentation.String
	record.InternalVolume = internalVol.String
	record.SupportState = supportState.String
	record.PartPackType = partPackType.String
	record.ContentFlag = contentFlag.String

	var err error
	if record.FactionHints, err = unmarshalList(factionHints); err != nil {
		return nil, err
	}
	if record.ResidualTokens, err = unmarshalList(residual); err != nil {
		return nil, err
	}
	if record.Warnings, err = unmarshalList(warnings); err != nil {
		return nil, err
	}
	if record.CreatedAt, err = parseTimestamp(createdAtText); err != nil {
		return nil, err
	}
	if record.UpdatedAt, err = parseTimestamp(updatedAtText); err != nil {
		return nil, err
	}
	return &record, nil
}

func parseTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return parsed, nil
}
