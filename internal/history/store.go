// Package history records project launches in a local SQLite database.
//
// History is usage metadata only: nothing here feeds back into project
// discovery or resolution, which rescan the filesystem on every call.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/callie/launchpad/internal/filelock"
)

//go:embed schema.sql
var schemaSQL string

// Launch represents a single recorded project launch
type Launch struct {
	ID          string        `json:"id"`
	ProjectName string        `json:"project_name"`
	ProjectPath string        `json:"project_path"`
	Args        []string      `json:"args,omitempty"`
	ExitCode    int           `json:"exit_code"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
}

// Store manages the SQLite database for launch history
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new Store instance and initializes the database
func NewStore(dbPath string) (*Store, error) {
	// Ensure parent directory exists for file-based databases
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so subsequent statements wait on locks held by a
	// concurrent launchpad process instead of failing immediately.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordLaunch records one launch. A zero ID is filled with a fresh UUID.
func (s *Store) RecordLaunch(ctx context.Context, launch *Launch) error {
	if launch.ID == "" {
		launch.ID = uuid.New().String()
	}
	if launch.StartedAt.IsZero() {
		launch.StartedAt = time.Now()
	}

	args := ""
	if len(launch.Args) > 0 {
		data, err := json.Marshal(launch.Args)
		if err != nil {
			return fmt.Errorf("marshal args: %w", err)
		}
		args = string(data)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO launches (id, project_name, project_path, args, exit_code, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		launch.ID,
		launch.ProjectName,
		launch.ProjectPath,
		args,
		launch.ExitCode,
		launch.StartedAt,
		launch.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record launch: %w", err)
	}

	return nil
}

// Recent returns the most recent launches, newest first, up to limit.
func (s *Store) Recent(ctx context.Context, limit int) ([]Launch, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_name, project_path, args, exit_code, started_at, duration_ms
		FROM launches
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query launches: %w", err)
	}
	defer rows.Close()

	var launches []Launch
	for rows.Next() {
		var (
			launch     Launch
			args       string
			durationMS int64
		)
		if err := rows.Scan(
			&launch.ID,
			&launch.ProjectName,
			&launch.ProjectPath,
			&args,
			&launch.ExitCode,
			&launch.StartedAt,
			&durationMS,
		); err != nil {
			return nil, fmt.Errorf("scan launch: %w", err)
		}

		if strings.TrimSpace(args) != "" {
			if err := json.Unmarshal([]byte(args), &launch.Args); err != nil {
				return nil, fmt.Errorf("unmarshal args for %s: %w", launch.ID, err)
			}
		}
		launch.Duration = time.Duration(durationMS) * time.Millisecond

		launches = append(launches, launch)
	}

	return launches, rows.Err()
}

// Clear removes all recorded launches and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM launches`)
	if err != nil {
		return 0, fmt.Errorf("clear launches: %w", err)
	}
	return result.RowsAffected()
}

// Export writes all recorded launches to path as indented JSON. The write is
// atomic and guarded by a file lock so concurrent exports never interleave.
func (s *Store) Export(ctx context.Context, path string) (int, error) {
	launches, err := s.all(ctx)
	if err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(launches, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal launches: %w", err)
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return 0, err
	}

	return len(launches), nil
}

// all returns every recorded launch, newest first.
func (s *Store) all(ctx context.Context) ([]Launch, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM launches`).Scan(&count); err != nil {
		return nil, fmt.Errorf("count launches: %w", err)
	}
	if count == 0 {
		return []Launch{}, nil
	}
	return s.Recent(ctx, count)
}
