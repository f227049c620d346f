// Package recorder stores per-tick statistics of headless flock runs in a
// SQLite database. It is an analysis log: nothing stored here is ever
// loaded back into a simulation.
package recorder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// Run is one row of the runs table.
type Run struct {
	ID         string `db:"id"`
	Seed       uint64 `db:"seed"` // stored as TEXT, SQLite integers are signed
	NumAgents  int    `db:"num_agents"`
	Workers    int    `db:"workers"`
	Ticks      int64  `db:"ticks"`
	StartedAt  int64  `db:"started_at"` // unix nanoseconds
	FinishedAt int64  `db:"finished_at"`
	ConfigJSON string `db:"config_json"`
}

func (r *Run) Started() time.Time {
	return time.Unix(0, r.StartedAt)
}

// Duration is zero for a run that never finished.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt == 0 {
		return 0
	}
	return time.Duration(r.FinishedAt - r.StartedAt)
}

// TickStat is one row of the tick_stats table.
type TickStat struct {
	RunID           string  `db:"run_id"`
	Tick            int64   `db:"tick"`
	Agents          int     `db:"agents"`
	MeanSpeed       float64 `db:"mean_speed"`
	Polarization    float64 `db:"polarization"`
	CentroidX       float64 `db:"centroid_x"`
	CentroidY       float64 `db:"centroid_y"`
	AttractorActive bool    `db:"attractor_active"`
}

// DB wraps a SQLite connection for run statistics.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
// ":memory:" gives a private in-memory database.
func Open(path string) (*DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		dsn = path
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// an in-memory database lives and dies with its connection
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed TEXT NOT NULL,
		num_agents INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		ticks INTEGER NOT NULL DEFAULT 0,
		started_at INTEGER NOT NULL,
		finished_at INTEGER NOT NULL DEFAULT 0,
		config_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tick_stats (
		run_id TEXT NOT NULL REFERENCES runs(id),
		tick INTEGER NOT NULL,
		agents INTEGER NOT NULL,
		mean_speed REAL NOT NULL,
		polarization REAL NOT NULL,
		centroid_x REAL NOT NULL,
		centroid_y REAL NOT NULL,
		attractor_active INTEGER NOT NULL,
		PRIMARY KEY (run_id, tick)
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// BeginRun inserts a new run for cfg and returns it. cfg.Seed should be the
// effective seed, as reported by Simulation.Config.
func (db *DB) BeginRun(cfg flock.Config) (*Run, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	run := &Run{
		ID:         uuid.NewString(),
		Seed:       cfg.Seed,
		NumAgents:  cfg.NumAgents,
		Workers:    cfg.Workers,
		StartedAt:  time.Now().UnixNano(),
		ConfigJSON: string(cfgJSON),
	}
	_, err = db.conn.Exec(`INSERT INTO runs (id, seed, num_agents, workers, started_at, config_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, strconv.FormatUint(run.Seed, 10), run.NumAgents, run.Workers, run.StartedAt, run.ConfigJSON)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// SaveTickStats writes a batch of rows in one transaction.
func (db *DB) SaveTickStats(rows []TickStat) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(`INSERT INTO tick_stats
		(run_id, tick, agents, mean_speed, polarization, centroid_x, centroid_y, attractor_active)
		VALUES (:run_id, :tick, :agents, :mean_speed, :polarization, :centroid_x, :centroid_y, :attractor_active)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range rows {
		if _, err := stmt.Exec(&rows[i]); err != nil {
			return fmt.Errorf("insert tick %d: %w", rows[i].Tick, err)
		}
	}
	return tx.Commit()
}

// FinishRun stamps the run with its tick count and end time.
func (db *DB) FinishRun(runID string, ticks int64) error {
	res, err := db.conn.Exec(`UPDATE runs SET ticks = ?, finished_at = ? WHERE id = ?`,
		ticks, time.Now().UnixNano(), runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish run: unknown run %s", runID)
	}
	return nil
}

// Runs lists every recorded run, most recent first.
func (db *DB) Runs() ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs, `SELECT * FROM runs ORDER BY started_at DESC`)
	return runs, err
}

// GetRun loads one run by ID.
func (db *DB) GetRun(runID string) (*Run, error) {
	var run Run
	if err := db.conn.Get(&run, `SELECT * FROM runs WHERE id = ?`, runID); err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return &run, nil
}

// TickStats returns the rows of one run in tick order.
func (db *DB) TickStats(runID string) ([]TickStat, error) {
	var rows []TickStat
	err := db.conn.Select(&rows, `SELECT * FROM tick_stats WHERE run_id = ? ORDER BY tick`, runID)
	return rows, err
}
