// Package scenedb persists analysis runs and their frame and sequence
// summaries in SQLite, so repeated runs over the same dataset can be
// compared without reparsing the JSON outputs.
package scenedb

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps the sqlite handle with the summary stores.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the database at path and migrates it to the
// latest schema version.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db := &DB{sqlDB}
	if err := db.migrateUp(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// migrateUp applies all pending embedded migrations.
func (db *DB) migrateUp() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	// Note: not closing m; that would close the underlying DB connection.

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Run is one invocation of the pipeline over a dataset.
type Run struct {
	RunID       string `json:"run_id"`
	DatasetRoot string `json:"dataset_root"`
	Notes       string `json:"notes,omitempty"`
	CreatedAtNs int64  `json:"created_at_ns"`
}

// InsertRun records a new analysis run. An empty RunID gets a fresh UUID;
// a zero CreatedAtNs gets the current time.
func (db *DB) InsertRun(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAtNs == 0 {
		run.CreatedAtNs = time.Now().UnixNano()
	}

	_, err := db.Exec(`
		INSERT INTO analysis_runs (run_id, dataset_root, notes, created_at_ns)
		VALUES (?, ?, ?, ?)
	`, run.RunID, run.DatasetRoot, run.Notes, run.CreatedAtNs)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// InsertSequenceResult stores a completed sequence's frame summaries and
// sequence summary in one transaction.
func (db *DB) InsertSequenceResult(runID, sequenceID string, res scene.SequenceResult) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	frameStmt, err := tx.Prepare(`
		INSERT INTO frame_summaries (run_id, sequence_id, frame_id, timestamp, speed, acceleration, direction, summary_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare frame insert: %w", err)
	}
	defer frameStmt.Close()

	for _, f := range res.Frames {
		blob, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("marshal frame %s: %w", f.FrameID, err)
		}
		if _, err := frameStmt.Exec(runID, sequenceID, f.FrameID, f.Timestamp,
			f.EgoMotion.Speed, f.EgoMotion.Acceleration, f.EgoMotion.Direction, string(blob)); err != nil {
			return fmt.Errorf("insert frame %s: %w", f.FrameID, err)
		}
	}

	blob, err := json.Marshal(res.Summary)
	if err != nil {
		return fmt.Errorf("marshal sequence summary: %w", err)
	}
	_, err = tx.Exec(`
		INSERT INTO sequence_summaries (run_id, sequence_id, total_frames, total_duration, total_distance,
			average_speed, min_speed, max_speed, average_speed_from_frames, summary_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, sequenceID, res.Summary.TotalFrames, res.Summary.TotalDuration, res.Summary.TotalDistance,
		res.Summary.AverageSpeed, res.Summary.MinSpeed, res.Summary.MaxSpeed,
		res.Summary.AverageSpeedFromFrames, string(blob))
	if err != nil {
		return fmt.Errorf("insert sequence summary: %w", err)
	}

	return tx.Commit()
}

// SequenceSummary loads one sequence's stored summary.
func (db *DB) SequenceSummary(runID, sequenceID string) (scene.SequenceSummary, error) {
	var blob string
	err := db.QueryRow(`
		SELECT summary_json FROM sequence_summaries WHERE run_id = ? AND sequence_id = ?
	`, runID, sequenceID).Scan(&blob)
	if err != nil {
		return scene.SequenceSummary{}, fmt.Errorf("query sequence summary: %w", err)
	}

	var s scene.SequenceSummary
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return scene.SequenceSummary{}, fmt.Errorf("decode sequence summary: %w", err)
	}
	return s, nil
}

// FrameSummaries loads one sequence's stored frame summaries in frame
// order.
func (db *DB) FrameSummaries(runID, sequenceID string) ([]scene.FrameSummary, error) {
	rows, err := db.Query(`
		SELECT summary_json FROM frame_summaries
		WHERE run_id = ? AND sequence_id = ?
		ORDER BY frame_id
	`, runID, sequenceID)
	if err != nil {
		return nil, fmt.Errorf("query frame summaries: %w", err)
	}
	defer rows.Close()

	var frames []scene.FrameSummary
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("scan frame summary: %w", err)
		}
		var f scene.FrameSummary
		if err := json.Unmarshal([]byte(blob), &f); err != nil {
			return nil, fmt.Errorf("decode frame summary: %w", err)
		}
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// Runs lists all recorded analysis runs, newest first.
func (db *DB) Runs() ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, dataset_root, COALESCE(notes, ''), created_at_ns
		FROM analysis_runs ORDER BY created_at_ns DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.DatasetRoot, &r.Notes, &r.CreatedAtNs); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
