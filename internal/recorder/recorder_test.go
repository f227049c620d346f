package recorder

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newSim(t *testing.T) *flock.Simulation {
	t.Helper()
	cfg := flock.DefaultConfig()
	cfg.Seed = 2024
	cfg.NumAgents = 50
	sim, err := flock.New(cfg)
	if err != nil {
		t.Fatalf("flock.New() error = %v", err)
	}
	return sim
}

func TestDB_BeginAndFinishRun(t *testing.T) {
	db := openTestDB(t)
	cfg := flock.DefaultConfig()
	cfg.Seed = 1<<63 + 5 // does not fit a signed SQLite integer

	run, err := db.BeginRun(*cfg)
	if err != nil {
		t.Fatalf("BeginRun() error = %v", err)
	}
	if run.ID == "" {
		t.Fatal("BeginRun() returned an empty ID")
	}
	if err := db.FinishRun(run.ID, 42); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}

	got, err := db.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Seed != cfg.Seed {
		t.Errorf("Seed = %d; want %d", got.Seed, cfg.Seed)
	}
	if got.Ticks != 42 || got.NumAgents != cfg.NumAgents {
		t.Errorf("GetRun() = %+v", got)
	}
	if got.FinishedAt < got.StartedAt || got.Duration() < 0 {
		t.Errorf("finished_at %d before started_at %d", got.FinishedAt, got.StartedAt)
	}
}

func TestDB_FinishUnknownRun(t *testing.T) {
	db := openTestDB(t)
	if err := db.FinishRun("does-not-exist", 1); err == nil {
		t.Error("FinishRun() on an unknown run should fail")
	}
}

func TestRecorder_Record(t *testing.T) {
	db := openTestDB(t)
	rec := New(db, nil)
	sim := newSim(t)

	run, err := rec.Record(context.Background(), sim, Options{
		Ticks:        250,
		BatchSize:    64,
		PressAt:      100,
		ReleaseAt:    200,
		AttractorPos: geometry.Vector2D{X: 400, Y: 300},
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if run.Ticks != 250 {
		t.Errorf("run.Ticks = %d; want 250", run.Ticks)
	}

	rows, err := db.TickStats(run.ID)
	if err != nil {
		t.Fatalf("TickStats() error = %v", err)
	}
	if len(rows) != 250 {
		t.Fatalf("len(rows) = %d; want 250", len(rows))
	}
	for i, row := range rows {
		if row.Tick != int64(i+1) {
			t.Fatalf("row %d has tick %d", i, row.Tick)
		}
		if row.Agents != 50 {
			t.Errorf("tick %d: agents = %d; want 50", row.Tick, row.Agents)
		}
		if row.MeanSpeed < 0 || row.MeanSpeed > 5 {
			t.Errorf("tick %d: mean speed %v out of range", row.Tick, row.MeanSpeed)
		}
		if row.Polarization < 0 || row.Polarization > 1+1e-9 {
			t.Errorf("tick %d: polarization %v out of range", row.Tick, row.Polarization)
		}
		wantActive := row.Tick >= 100 && row.Tick < 200
		if row.AttractorActive != wantActive {
			t.Errorf("tick %d: attractor active = %v; want %v", row.Tick, row.AttractorActive, wantActive)
		}
	}

	runs, err := db.Runs()
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Errorf("Runs() = %+v; want the single recorded run", runs)
	}
}

func TestRecorder_SameSeedSameStats(t *testing.T) {
	db := openTestDB(t)
	rec := New(db, nil)

	a, err := rec.Record(context.Background(), newSim(t), Options{Ticks: 50})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	b, err := rec.Record(context.Background(), newSim(t), Options{Ticks: 50})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("two runs share an ID")
	}

	rowsA, _ := db.TickStats(a.ID)
	rowsB, _ := db.TickStats(b.ID)
	for i := range rowsA {
		ra, rb := rowsA[i], rowsB[i]
		ra.RunID, rb.RunID = "", ""
		if ra != rb {
			t.Fatalf("tick %d differs: %+v vs %+v", i+1, ra, rb)
		}
	}
}

func TestRecorder_Cancelled(t *testing.T) {
	db := openTestDB(t)
	rec := New(db, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, err := rec.Record(ctx, newSim(t), Options{Ticks: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Record() error = %v; want context.Canceled", err)
	}
	if run == nil || run.Ticks != 0 {
		t.Errorf("interrupted run = %+v; want a finished run with 0 ticks", run)
	}
}

func TestRecorder_NoTicks(t *testing.T) {
	rec := New(openTestDB(t), nil)
	if _, err := rec.Record(context.Background(), newSim(t), Options{}); !errors.Is(err, ErrNoTicks) {
		t.Errorf("Record() error = %v; want ErrNoTicks", err)
	}
}
