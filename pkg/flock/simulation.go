package flock

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// Input is what the presentation layer hands to one Step.
type Input struct {
	Pointer    geometry.Vector2D
	HasPointer bool
}

// Simulation ties the population, the grid and the attractor together.
// It is not safe for concurrent use: every method, Step included, must be
// called from one goroutine (the FlockActor mailbox in the interactive
// program), which keeps population commands strictly between ticks.
type Simulation struct {
	cfg       Config
	rng       *rand.Rand
	pop       *Population
	grid      *Grid
	attractor Attractor
	behaviors Behaviors
	tick      uint64

	// one neighbor buffer per worker, reused every tick
	scratch [][]int
}

// New validates cfg, seeds the process-wide generator once and spawns
// cfg.NumAgents agents from it.
func New(cfg *Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	workers := max(cfg.Workers, 1)
	s := &Simulation{
		cfg:       *cfg,
		rng:       rng,
		pop:       NewPopulation(rng, cfg.WorldWidth, cfg.WorldHeight),
		grid:      NewGrid(cfg.WorldWidth, cfg.WorldHeight, cfg.CellSize, cfg.WrapNeighborhood),
		behaviors: cfg.Behaviors,
		scratch:   make([][]int, workers),
	}
	s.cfg.Seed = seed
	for i := 0; i < cfg.NumAgents; i++ {
		s.pop.Spawn()
	}
	return s, nil
}

// Step runs one tick: rebuild the grid, steer every agent against that
// snapshot, then integrate every agent. Integration never starts before
// the whole steering pass is done.
func (s *Simulation) Step(in Input) {
	agents := s.pop.Agents()
	s.grid.Rebuild(agents)

	field := Field{
		Pointer:    in.Pointer,
		HasPointer: in.HasPointer,
		Attractor:  s.attractor.State(),
		Behaviors:  s.behaviors,
	}
	s.steerAll(agents, &field)

	for i := range agents {
		Advance(&agents[i], s.cfg.WorldWidth, s.cfg.WorldHeight, s.cfg.MaxSpeed)
	}
	s.tick++
}

func (s *Simulation) steerAll(agents []Agent, field *Field) {
	workers := len(s.scratch)
	if workers == 1 || len(agents) < 2*workers {
		s.scratch[0] = s.steerRange(agents, 0, len(agents), field, s.scratch[0])
		return
	}

	// contiguous chunks, each worker writes only the Acc of its own slots
	chunk := (len(agents) + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(agents))
		if start >= end {
			break
		}
		g.Go(func() error {
			s.scratch[w] = s.steerRange(agents, start, end, field, s.scratch[w])
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}

func (s *Simulation) steerRange(agents []Agent, start, end int, field *Field, buf []int) []int {
	for i := start; i < end; i++ {
		buf = s.grid.Query(agents[i].Pos, buf[:0])
		agents[i].Acc = Steer(i, agents, buf, field, &s.cfg)
	}
	return buf
}

// PressPointer activates the attractor at p.
func (s *Simulation) PressPointer(p geometry.Vector2D) {
	s.attractor.Press(p)
}

// ReleasePointer deactivates the attractor.
func (s *Simulation) ReleasePointer() {
	s.attractor.Release()
}

func (s *Simulation) Attractor() AttractorState {
	return s.attractor.State()
}

func (s *Simulation) SetBehaviors(b Behaviors) {
	s.behaviors = b
}

func (s *Simulation) Behaviors() Behaviors {
	return s.behaviors
}

// AddAgent spawns one agent at a random position and returns its ID.
func (s *Simulation) AddAgent() uint32 {
	return s.pop.Spawn()
}

// RemoveAgent removes one agent, reporting false on an empty population.
func (s *Simulation) RemoveAgent() bool {
	return s.pop.Remove()
}

// Adjust applies delta add (delta > 0) or remove (delta < 0) commands one
// at a time and returns how many took effect.
func (s *Simulation) Adjust(delta int) int {
	applied := 0
	for ; delta > 0; delta-- {
		s.pop.Spawn()
		applied++
	}
	for ; delta < 0; delta++ {
		if !s.pop.Remove() {
			break
		}
		applied++
	}
	return applied
}

// Agents is the live agent slice, valid until the next population command.
func (s *Simulation) Agents() []Agent {
	return s.pop.Agents()
}

func (s *Simulation) Len() int {
	return s.pop.Len()
}

func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Config returns the configuration in use, with the effective seed.
func (s *Simulation) Config() Config {
	return s.cfg
}

func (s *Simulation) String() string {
	return fmt.Sprintf("flock{tick=%d agents=%d seed=%d}", s.tick, s.pop.Len(), s.cfg.Seed)
}
