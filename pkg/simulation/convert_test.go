package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func TestBuildSnapshot(t *testing.T) {
	sim, err := flock.New(testConfig())
	if err != nil {
		t.Fatalf("flock.New() error = %v", err)
	}
	sim.Step(flock.Input{})
	sim.PressPointer(geometry.Vector2D{X: 7, Y: 8})

	snap := BuildSnapshot(sim)

	if snap.GetTick() != 1 {
		t.Errorf("Tick = %d; want 1", snap.GetTick())
	}
	if !snap.GetAttractor().GetActive() || snap.GetAttractor().GetPosition().GetX() != 7 {
		t.Errorf("Attractor = %v; want active at (7,8)", snap.GetAttractor())
	}
	if got := fromProtoBehaviors(snap.GetBehaviors()); got != sim.Behaviors() {
		t.Errorf("Behaviors = %+v; want %+v", got, sim.Behaviors())
	}

	agents := sim.Agents()
	if len(snap.GetAgents()) != len(agents) {
		t.Fatalf("len(Agents) = %d; want %d", len(snap.GetAgents()), len(agents))
	}
	for i, st := range snap.GetAgents() {
		a := agents[i]
		if st.GetId() != a.ID {
			t.Errorf("agent %d: Id = %d; want %d", i, st.GetId(), a.ID)
		}
		if fromProtoVector(st.GetPosition()) != a.Pos || fromProtoVector(st.GetVelocity()) != a.Vel {
			t.Errorf("agent %d: kinematics do not match", i)
		}
		if st.GetHeading() != a.Heading() || st.GetSizeScale() != a.SizeScale {
			t.Errorf("agent %d: heading or size do not match", i)
		}
		if flock.ColorFromRGB(st.GetColor()) != a.Color {
			t.Errorf("agent %d: Color = %#06x; want %+v", i, st.GetColor(), a.Color)
		}
	}
}

func TestBuildSnapshot_InactiveAttractorHasNoPosition(t *testing.T) {
	sim, err := flock.New(testConfig())
	if err != nil {
		t.Fatalf("flock.New() error = %v", err)
	}
	if att := BuildSnapshot(sim).GetAttractor(); att.GetActive() || att.GetPosition() != nil {
		t.Errorf("Attractor = %v; want inactive without position", att)
	}
}

func TestFromProtoVector_Nil(t *testing.T) {
	var v *pb.Vector2D
	if got := fromProtoVector(v); got != (geometry.Vector2D{}) {
		t.Errorf("fromProtoVector(nil) = %v; want origin", got)
	}
}
