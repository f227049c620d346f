package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Stats summarises the flock at one instant.
type Stats struct {
	Agents    int
	MeanSpeed float64
	// Polarization is the length of the mean unit heading: 1 when every
	// agent flies the same way, near 0 for a disordered flock.
	Polarization float64
	Centroid     geometry.Vector2D
}

// Measure computes Stats over agents. The centroid is the plain mean of
// positions, it ignores the wraparound.
func Measure(agents []Agent) Stats {
	st := Stats{Agents: len(agents)}
	if len(agents) == 0 {
		return st
	}

	var speed float64
	var heading, pos geometry.Vector2D
	for i := range agents {
		speed += agents[i].Vel.Len()
		heading = heading.Add(agents[i].Vel.Normalize())
		pos = pos.Add(agents[i].Pos)
	}
	n := float64(len(agents))
	st.MeanSpeed = speed / n
	st.Polarization = heading.Mul(1 / n).Len()
	st.Centroid = pos.Mul(1 / n)
	return st
}
