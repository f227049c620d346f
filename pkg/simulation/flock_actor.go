package simulation

import (
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// FlockActor owns the simulation. Its mailbox serializes ticks, pointer
// events, rule toggles and population changes, so a command can never land
// in the middle of a tick.
type FlockActor struct {
	cfg *flock.Config
	sim *flock.Simulation
	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot
	// --- Benchmark Stats ---
	tickCount    int
	droppedCount int
	lastLogTime  time.Time
}

// NewFlockActor creates the actor. The simulation itself is built in
// PreStart so a bad config fails the spawn.
func NewFlockActor(snapshotCh chan<- *pb.FlockSnapshot, cfg *flock.Config) *FlockActor {
	return &FlockActor{
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (f *FlockActor) PreStart(ctx *actor.Context) error {
	sim, err := flock.New(f.cfg)
	if err != nil {
		return fmt.Errorf("failed to create flock: %w", err)
	}
	f.sim = sim
	ctx.ActorSystem().Logger().Infof("Flock created: %s", sim)
	return nil
}

func (f *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("Flock started with %d agents (seed %d)", f.sim.Len(), f.sim.Config().Seed)

	// The main simulation step, driven by the game loop or the recorder
	case *pb.Tick:
		f.logBenchmarks(ctx)
		f.sim.Step(flock.Input{
			Pointer:    fromProtoVector(msg.GetPointer()),
			HasPointer: msg.GetHasPointer(),
		})
		f.tickCount++
		f.pushSnapshot()

	case *pb.PointerPressed:
		f.sim.PressPointer(fromProtoVector(msg.GetPosition()))

	case *pb.PointerReleased:
		f.sim.ReleasePointer()

	case *pb.Behaviors:
		f.sim.SetBehaviors(fromProtoBehaviors(msg))
		ctx.Logger().Debugf("Behaviors now %+v", f.sim.Behaviors())

	case *pb.AdjustPopulation:
		applied := f.sim.Adjust(int(msg.GetDelta()))
		ctx.Logger().Debugf("Population adjusted by %d of %d requested, now %d", applied, msg.GetDelta(), f.sim.Len())

	case *pb.GetSnapshot:
		ctx.Response(BuildSnapshot(f.sim))

	default:
		ctx.Unhandled()
	}
}

func (f *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(f.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec (dropped frames: %d) | Agents: %d",
			f.tickCount, f.droppedCount, f.sim.Len())
		f.tickCount = 0
		f.droppedCount = 0
		f.lastLogTime = time.Now()
	}
}

func (f *FlockActor) pushSnapshot() {
	if f.snapshotCh == nil {
		return
	}
	select {
	case f.snapshotCh <- BuildSnapshot(f.sim):
	default:
		// UI busy, skip frame
		f.droppedCount++
	}
}

func (f *FlockActor) PostStop(ctx *actor.Context) error {
	if f.sim != nil {
		ctx.ActorSystem().Logger().Infof("Flock is shutdown after %d ticks", f.sim.Tick())
	}
	return nil
}
