package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Field is the environment seen by every agent during one steering pass.
// It is read-only for the whole pass.
type Field struct {
	Pointer    geometry.Vector2D
	HasPointer bool // false when no pointer is over the world (headless runs)
	Attractor  AttractorState
	Behaviors  Behaviors
}

// Steer computes the acceleration of agents[self] for this tick.
//
// neighbors are slot indices returned by Grid.Query for the agent's
// position; self may be among them and is skipped. Steer reads positions
// and velocities of the neighbors and never writes anything, so any number
// of agents can be steered concurrently against the same snapshot.
//
// Precedence:
//  1. an active attractor that has the agent within its radius pulls it in,
//     and nothing else applies to that agent this tick;
//  2. otherwise, with the attractor inactive and the pointer within its
//     radius, the agent flees the pointer and skips flocking;
//  3. otherwise the enabled flocking rules apply.
//
// The sum is clamped to cfg.MaxAccel.
func Steer(self int, agents []Agent, neighbors []int, field *Field, cfg *Config) geometry.Vector2D {
	me := &agents[self]
	acc := me.Acc

	switch {
	case captured(me, field, cfg):
		toward := field.Attractor.Pos.Sub(me.Pos)
		acc = acc.Add(toward.Normalize().Mul(cfg.AttractorStrength))

	case !field.Attractor.Active && field.HasPointer &&
		me.Pos.DistanceSquaredTo(field.Pointer) < cfg.PointerRepelRadius*cfg.PointerRepelRadius:
		flee := me.Pos.Sub(field.Pointer)
		acc = acc.Add(flee.Normalize().Mul(cfg.PointerRepelStrength))

	default:
		acc = acc.Add(flocking(self, agents, neighbors, field.Behaviors, cfg))
	}

	return acc.Limit(cfg.MaxAccel)
}

func captured(me *Agent, field *Field, cfg *Config) bool {
	if !field.Attractor.Active {
		return false
	}
	return me.Pos.DistanceSquaredTo(field.Attractor.Pos) < cfg.AttractorRadius*cfg.AttractorRadius
}

// flocking sums cohesion, separation and alignment over one neighbor set.
func flocking(self int, agents []Agent, neighbors []int, b Behaviors, cfg *Config) geometry.Vector2D {
	if !b.Cohesion && !b.Separation && !b.Alignment {
		return geometry.Vector2D{}
	}

	me := &agents[self]
	sepRadiusSq := cfg.SeparationRadius * cfg.SeparationRadius

	var (
		posSum, velSum, separation geometry.Vector2D
		count                      float64
	)
	for _, j := range neighbors {
		if j == self {
			continue
		}
		other := &agents[j]
		posSum = posSum.Add(other.Pos)
		velSum = velSum.Add(other.Vel)
		count++

		// each close neighbor pushes on its own, pushes are not averaged
		if b.Separation && me.Pos.DistanceSquaredTo(other.Pos) < sepRadiusSq {
			away := me.Pos.Sub(other.Pos)
			separation = separation.Add(away.Normalize().Mul(cfg.SeparationWeight))
		}
	}
	if count == 0 {
		return geometry.Vector2D{}
	}

	var force geometry.Vector2D
	if b.Cohesion {
		centroid := posSum.Mul(1 / count)
		force = force.Add(centroid.Sub(me.Pos).Normalize().Mul(cfg.CohesionWeight))
	}
	if b.Separation {
		force = force.Add(separation)
	}
	if b.Alignment {
		avgVel := velSum.Mul(1 / count)
		force = force.Add(avgVel.Sub(me.Vel).Normalize().Mul(cfg.AlignmentWeight))
	}
	return force
}
