package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Advance moves a by one tick: the accumulated acceleration is applied,
// the speed is capped at maxSpeed, the position wraps around the torus and
// the accumulator is zeroed so forces never leak into the next tick.
//
// The wrap is a single fold, which is enough as long as maxSpeed is below
// the world size.
func Advance(a *Agent, width, height, maxSpeed float64) {
	a.Vel = a.Vel.Add(a.Acc).Limit(maxSpeed)
	a.Pos = a.Pos.Add(a.Vel).Wrap(width, height)
	a.Acc = geometry.Vector2D{}
}
