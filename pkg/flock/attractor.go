package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// AttractorState is the observable state of the black hole field.
// Pos is meaningful only while Active.
type AttractorState struct {
	Active bool
	Pos    geometry.Vector2D
}

// Attractor is the press/release driven black hole.
//
//	Inactive --Press(p)--> Active(p)
//	Active   --Release-->  Inactive
//
// The position is pinned at the press point; it does not follow the pointer.
// The zero value is Inactive.
type Attractor struct {
	state AttractorState
}

// Press activates the field at p. A press while already active is ignored,
// the field stays where it was first pinned.
func (a *Attractor) Press(p geometry.Vector2D) {
	if a.state.Active {
		return
	}
	a.state = AttractorState{Active: true, Pos: p}
}

// Release deactivates the field. Releasing an inactive field is a no-op.
func (a *Attractor) Release() {
	a.state = AttractorState{}
}

func (a *Attractor) State() AttractorState {
	return a.state
}

func (a *Attractor) Active() bool {
	return a.state.Active
}
