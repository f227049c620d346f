// Package flock is the boids simulation engine: a uniform grid neighbor
// index, the per-agent steering rules, the kinematic integrator and the
// attractor field, tied together by Simulation.Step.
//
// The package never logs and never blocks. Degenerate inputs (zero vectors,
// empty neighborhoods, removing from an empty population) are absorbed
// locally instead of being reported as errors.
package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Color is the fill color an agent is drawn with.
type Color struct {
	R, G, B uint8
}

// RGB packs the color as 0xRRGGBB.
func (c Color) RGB() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ColorFromRGB is the inverse of Color.RGB.
func ColorFromRGB(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Agent is one boid. Acc is an accumulator: it is rebuilt by the steering
// pass and zeroed by Advance, it never carries over between ticks.
type Agent struct {
	ID  uint32
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	Acc geometry.Vector2D

	// fixed at creation
	SizeScale float64
	Color     Color
}

// Heading is the direction of travel in degrees, derived from Vel.
func (a *Agent) Heading() float64 {
	return a.Vel.AngleDegrees()
}

// Population owns the agents. Slot indices into Agents() are only stable
// between two population commands, which is why they must never be issued
// in the middle of a tick.
type Population struct {
	agents        []Agent
	nextID        uint32
	rng           *rand.Rand
	width, height float64
}

// NewPopulation creates an empty population that draws every random value
// from rng, in a fixed order per agent.
func NewPopulation(rng *rand.Rand, width, height float64) *Population {
	return &Population{
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Spawn adds one agent at a random position within the world bounds and
// returns its ID.
func (p *Population) Spawn() uint32 {
	r := p.rng
	a := Agent{
		ID:  p.nextID,
		Pos: geometry.Vector2D{X: r.Float64() * p.width, Y: r.Float64() * p.height},
		Vel: geometry.Vector2D{X: r.Float64()*4 - 2, Y: r.Float64()*4 - 2},
	}
	a.SizeScale = 0.8 + r.Float64()*0.4
	a.Color = Color{R: uint8(r.IntN(256)), G: uint8(r.IntN(256)), B: uint8(r.IntN(256))}

	p.nextID++
	p.agents = append(p.agents, a)
	return a.ID
}

// Remove drops the most recently added agent. It reports false, and does
// nothing, when the population is already empty.
func (p *Population) Remove() bool {
	if len(p.agents) == 0 {
		return false
	}
	p.agents = p.agents[:len(p.agents)-1]
	return true
}

func (p *Population) Len() int {
	return len(p.agents)
}

// Agents exposes the backing slice. Callers may mutate agents in place but
// must not keep the slice across a Spawn or Remove.
func (p *Population) Agents() []Agent {
	return p.agents
}
