// Package storage persists property-sweep runs: a SQLite index of run
// metadata plus a points.csv per run directory.
package storage

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS sweeps (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	field      TEXT NOT NULL,
	start      REAL NOT NULL,
	stop       REAL NOT NULL,
	steps      INTEGER NOT NULL,
	scenario   TEXT NOT NULL
);
`

type Store struct {
	baseDir string
	db      *sql.DB
}

// SweepRun is one persisted sweep: the swept field in its canonical
// unit, the range, and the yaml scenario it ran under.
type SweepRun struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Field     string    `json:"field"`
	Start     float64   `json:"start"`
	Stop      float64   `json:"stop"`
	Steps     int       `json:"steps"`
	Scenario  string    `json:"scenario"`
}

// SweepPoint is one row of a sweep: the swept value and the two derived
// properties at that value.
type SweepPoint struct {
	X            float64 `json:"x"`
	Viscosity    float64 `json:"dynamic_viscosity"`
	MeanFreePath float64 `json:"mean_free_path"`
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Open creates the data directory and the index database.
func (s *Store) Open(ctx context.Context) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("storage: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(s.baseDir, "runs.db")+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("storage: open index: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return fmt.Errorf("storage: init schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSweep indexes the run and writes its points to
// <baseDir>/<id>/points.csv.
func (s *Store) SaveSweep(ctx context.Context, run SweepRun, points []SweepPoint) (string, error) {
	if run.ID == "" {
		run.ID = fmt.Sprintf("%s_%d", run.Field, time.Now().Unix())
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	runDir := filepath.Join(s.baseDir, run.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{run.Field, "dynamic_viscosity", "mean_free_path"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Viscosity, 'g', -1, 64),
			strconv.FormatFloat(p.MeanFreePath, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sweeps (id, created_at, field, start, stop, steps, scenario)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.Format(time.RFC3339), run.Field,
		run.Start, run.Stop, run.Steps, run.Scenario)
	if err != nil {
		return "", fmt.Errorf("storage: index run: %w", err)
	}
	return run.ID, nil
}

// List returns all indexed runs, newest first.
func (s *Store) List(ctx context.Context) ([]SweepRun, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, field, start, stop, steps, scenario
		 FROM sweeps ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []SweepRun
	for rows.Next() {
		var run SweepRun
		var created string
		if err := rows.Scan(&run.ID, &created, &run.Field, &run.Start, &run.Stop, &run.Steps, &run.Scenario); err != nil {
			return nil, err
		}
		run.CreatedAt, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Load returns one indexed run.
func (s *Store) Load(ctx context.Context, id string) (*SweepRun, error) {
	var run SweepRun
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, field, start, stop, steps, scenario FROM sweeps WHERE id = ?`, id).
		Scan(&run.ID, &created, &run.Field, &run.Start, &run.Stop, &run.Steps, &run.Scenario)
	if err != nil {
		return nil, err
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &run, nil
}

// Points reads a run's points.csv back.
func (s *Store) Points(id string) ([]SweepPoint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	points := make([]SweepPoint, 0, len(records))
	for i, rec := range records {
		if i == 0 || len(rec) < 3 {
			continue // header
		}
		x, err1 := strconv.ParseFloat(rec[0], 64)
		mu, err2 := strconv.ParseFloat(rec[1], 64)
		mfp, err3 := strconv.ParseFloat(rec[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		points = append(points, SweepPoint{X: x, Viscosity: mu, MeanFreePath: mfp})
	}
	return points, nil
}

// ExportJSON writes a run and its points as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, id string, w io.Writer) error {
	run, err := s.Load(ctx, id)
	if err != nil {
		return err
	}
	points, err := s.Points(id)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		SweepRun
		Points []SweepPoint `json:"points"`
	}{*run, points})
}
