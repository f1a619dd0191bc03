package worksheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS worksheets (
	id         TEXT PRIMARY KEY,
	world_id   TEXT NOT NULL DEFAULT '',
	tool_type  TEXT NOT NULL,
	title      TEXT NOT NULL DEFAULT '',
	data       TEXT NOT NULL DEFAULT '{}',
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_worksheets_world ON worksheets(world_id, updated_at);
`

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is a Store backed by a local SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	now    func() time.Time
	logger *zap.Logger
}

// SQLiteOption configures a SQLiteStore.
type SQLiteOption func(*SQLiteStore)

// WithStoreClock sets the clock used for UpdatedAt.
func WithStoreClock(now func() time.Time) SQLiteOption {
	return func(s *SQLiteStore) { s.now = now }
}

// WithStoreLogger sets the logger.
func WithStoreLogger(logger *zap.Logger) SQLiteOption {
	return func(s *SQLiteStore) { s.logger = logger }
}

// OpenSQLite opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway store.
func OpenSQLite(ctx context.Context, path string, opts ...SQLiteOption) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open worksheet database %s: %w", path, err)
	}

	// A single connection keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize worksheet schema: %w", err)
	}

	s := &SQLiteStore{db: db, now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("worksheet store opened", zap.String("path", path))

	return s, nil
}

// Create inserts w, assigning an id and timestamp when unset.
func (s *SQLiteStore) Create(ctx context.Context, w *Worksheet) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	if len(w.Data) == 0 {
		w.Data = json.RawMessage("{}")
	}

	if !json.Valid(w.Data) {
		return fmt.Errorf("worksheet %s: data is not valid JSON", w.ID)
	}

	w.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO worksheets (id, world_id, tool_type, title, data, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.WorldID, w.ToolType, w.Title, string(w.Data), w.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to create worksheet %s: %w", w.ID, err)
	}

	return nil
}

// Get returns the worksheet with id, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Worksheet, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, world_id, tool_type, title, data, updated_at FROM worksheets WHERE id = ?`, id)

	w, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load worksheet %s: %w", id, err)
	}

	return w, nil
}

// List returns worksheets, most recently updated first. An empty worldID
// lists every world.
func (s *SQLiteStore) List(ctx context.Context, worldID string) ([]*Worksheet, error) {
	query := `SELECT id, world_id, tool_type, title, data, updated_at FROM worksheets`
	args := []any{}

	if worldID != "" {
		query += ` WHERE world_id = ?`
		args = append(args, worldID)
	}

	query += ` ORDER BY updated_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}
	defer rows.Close()

	var out []*Worksheet

	for rows.Next() {
		w, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read worksheet row: %w", err)
		}

		out = append(out, w)
	}

	return out, rows.Err()
}

// Update replaces a worksheet's data and bumps UpdatedAt.
func (s *SQLiteStore) Update(ctx context.Context, id string, data json.RawMessage) error {
	if !json.Valid(data) {
		return fmt.Errorf("worksheet %s: data is not valid JSON", id)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE worksheets SET data = ?, updated_at = ? WHERE id = ?`,
		string(data), s.now().UTC().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("failed to update worksheet %s: %w", id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.logger.Debug("worksheet updated", zap.String("id", id), zap.Int("bytes", len(data)))

	return nil
}

// Delete removes a worksheet.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM worksheets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worksheet %s: %w", id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*Worksheet, error) {
	var (
		w         Worksheet
		data      string
		updatedAt int64
	)

	if err := row.Scan(&w.ID, &w.WorldID, &w.ToolType, &w.Title, &data, &updatedAt); err != nil {
		return nil, err
	}

	w.Data = json.RawMessage(data)
	w.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &w, nil
}
