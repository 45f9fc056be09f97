// Package store keeps hardware report history in a local SQLite database.
// Identity columns are lifted out of the report payload so listings and
// filters never have to decode JSON.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Snapshot is one stored hardware report row.
type Snapshot struct {
	ID          int64
	Hostname    string
	Distro      string
	Kernel      string
	CollectedAt time.Time
	StoredAt    time.Time
	ReportJSON  string
}

// ListFilter holds optional query parameters for listing snapshots.
type ListFilter struct {
	Hostname        string
	Distro          string
	Kernel          string
	CollectedAfter  *time.Time
	CollectedBefore *time.Time
	PageSize        int
	Page            int
}

// Store provides CRUD operations for snapshot rows.
type Store struct {
	db *sql.DB
}

// New opens the SQLite database at path and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const snapshotColumns = "id, hostname, distro, kernel, collected_at, stored_at, report_json"

// Insert stores a snapshot and returns the new ID and stored_at time.
func (s *Store) Insert(ctx context.Context, snap *Snapshot) (int64, time.Time, error) {
	storedAt := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (hostname, distro, kernel, collected_at, stored_at, report_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.Hostname,
		snap.Distro,
		snap.Kernel,
		snap.CollectedAt.UTC().Format(time.RFC3339),
		storedAt.Format(time.RFC3339),
		snap.ReportJSON,
	)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("insert snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("get last insert id: %w", err)
	}

	return id, storedAt, nil
}

// Get retrieves a snapshot by ID.
func (s *Store) Get(ctx context.Context, id int64) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots WHERE id = ?`, id)

	return scanSnapshot(row)
}

// GetLatestByHostname retrieves the most recent snapshot for a hostname.
func (s *Store) GetLatestByHostname(ctx context.Context, hostname string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots
		 WHERE hostname = ? ORDER BY collected_at DESC, id DESC LIMIT 1`, hostname)

	return scanSnapshot(row)
}

// Delete removes a snapshot by ID. Returns sql.ErrNoRows when the ID does
// not exist.
func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// List returns snapshot summaries matching the given filter, newest first,
// along with the total match count. Summaries carry no report payload.
func (s *Store) List(ctx context.Context, f ListFilter) ([]Snapshot, int, error) {
	where, args := buildWhere(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM snapshots" + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count snapshots: %w", err)
	}

	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize

	query := `SELECT id, hostname, distro, kernel, collected_at, stored_at, ''
		FROM snapshots` + where + ` ORDER BY collected_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, pageSize, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, 0, err
		}
		snapshots = append(snapshots, *snap)
	}

	return snapshots, total, rows.Err()
}

// Purge deletes snapshots collected earlier than the given age and returns
// how many rows went away.
func (s *Store) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339)
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE collected_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge snapshots: %w", err)
	}
	return result.RowsAffected()
}

func buildWhere(f ListFilter) (string, []any) {
	var conditions []string
	var args []any

	if f.Hostname != "" {
		conditions = append(conditions, "hostname = ?")
		args = append(args, f.Hostname)
	}
	if f.Distro != "" {
		conditions = append(conditions, "distro = ?")
		args = append(args, f.Distro)
	}
	if f.Kernel != "" {
		conditions = append(conditions, "kernel = ?")
		args = append(args, f.Kernel)
	}
	if f.CollectedAfter != nil {
		conditions = append(conditions, "collected_at >= ?")
		args = append(args, f.CollectedAfter.UTC().Format(time.RFC3339))
	}
	if f.CollectedBefore != nil {
		conditions = append(conditions, "collected_at <= ?")
		args = append(args, f.CollectedBefore.UTC().Format(time.RFC3339))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var snap Snapshot
	var collectedAt, storedAt string
	err := row.Scan(&snap.ID, &snap.Hostname, &snap.Distro, &snap.Kernel, &collectedAt, &storedAt, &snap.ReportJSON)
	if err != nil {
		return nil, err
	}

	snap.CollectedAt, _ = time.Parse(time.RFC3339, collectedAt)
	snap.StoredAt, _ = time.Parse(time.RFC3339, storedAt)

	return &snap, nil
}
