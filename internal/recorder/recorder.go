package recorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	golog "github.com/tochemey/goakt/v3/log"
)

// ErrNoTicks is returned when Options asks for a run of zero ticks.
var ErrNoTicks = errors.New("recorder: ticks must be > 0")

// Options scripts one headless run.
type Options struct {
	Ticks int
	// BatchSize rows are buffered before each write, 0 means 100
	BatchSize int

	// When PressAt > 0 the attractor is pressed at AttractorPos before
	// tick PressAt and released before tick ReleaseAt (never if 0).
	PressAt      int
	ReleaseAt    int
	AttractorPos geometry.Vector2D
}

// Recorder drives a simulation without a window and logs its statistics.
type Recorder struct {
	db     *DB
	logger golog.Logger
}

func New(db *DB, logger golog.Logger) *Recorder {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Recorder{db: db, logger: logger}
}

// Record runs sim for opts.Ticks ticks and stores one TickStat per tick
// under a new run. The run is finished with the ticks actually done, also
// when ctx is cancelled half way.
func (r *Recorder) Record(ctx context.Context, sim *flock.Simulation, opts Options) (*Run, error) {
	if opts.Ticks <= 0 {
		return nil, ErrNoTicks
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	run, err := r.db.BeginRun(sim.Config())
	if err != nil {
		return nil, err
	}
	r.logger.Infof("Recording run %s: %s for %d ticks", run.ID, sim, opts.Ticks)

	batch := make([]TickStat, 0, batchSize)
	flush := func() error {
		if err := r.db.SaveTickStats(batch); err != nil {
			return fmt.Errorf("save tick stats: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	var runErr error
	done := 0
	for i := 1; i <= opts.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if opts.PressAt > 0 && i == opts.PressAt {
			r.logger.Debugf("Tick %d: attractor pressed at %s", i, opts.AttractorPos)
			sim.PressPointer(opts.AttractorPos)
		}
		if opts.ReleaseAt > 0 && i == opts.ReleaseAt {
			r.logger.Debugf("Tick %d: attractor released", i)
			sim.ReleasePointer()
		}

		sim.Step(flock.Input{})
		done++

		batch = append(batch, statRow(run.ID, sim))
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if err := r.db.FinishRun(run.ID, int64(done)); err != nil {
		return nil, err
	}
	run, err = r.db.GetRun(run.ID)
	if err != nil {
		return nil, err
	}
	if runErr != nil {
		r.logger.Warnf("Run %s interrupted after %d ticks: %v", run.ID, done, runErr)
		return run, runErr
	}
	r.logger.Infof("Run %s finished: %d ticks in %s", run.ID, done, run.Duration())
	return run, nil
}

func statRow(runID string, sim *flock.Simulation) TickStat {
	st := flock.Measure(sim.Agents())
	return TickStat{
		RunID:           runID,
		Tick:            int64(sim.Tick()),
		Agents:          st.Agents,
		MeanSpeed:       st.MeanSpeed,
		Polarization:    st.Polarization,
		CentroidX:       st.Centroid.X,
		CentroidY:       st.Centroid.Y,
		AttractorActive: sim.Attractor().Active,
	}
}
