package simulation

import (
	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func toProtoVector(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

// fromProtoVector maps a missing vector to the origin.
func fromProtoVector(v *pb.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

func toProtoBehaviors(b flock.Behaviors) *pb.Behaviors {
	return &pb.Behaviors{
		Cohesion:   b.Cohesion,
		Separation: b.Separation,
		Alignment:  b.Alignment,
	}
}

func fromProtoBehaviors(b *pb.Behaviors) flock.Behaviors {
	return flock.Behaviors{
		Cohesion:   b.GetCohesion(),
		Separation: b.GetSeparation(),
		Alignment:  b.GetAlignment(),
	}
}

func toAgentState(a *flock.Agent) *pb.AgentState {
	return &pb.AgentState{
		Id:        a.ID,
		Position:  toProtoVector(a.Pos),
		Velocity:  toProtoVector(a.Vel),
		Heading:   a.Heading(),
		SizeScale: a.SizeScale,
		Color:     a.Color.RGB(),
	}
}

// BuildSnapshot copies the observable state of sim into a message the
// presentation layer can keep after the next tick.
func BuildSnapshot(sim *flock.Simulation) *pb.FlockSnapshot {
	agents := sim.Agents()
	snapshot := &pb.FlockSnapshot{
		Tick:      sim.Tick(),
		Agents:    make([]*pb.AgentState, 0, len(agents)),
		Behaviors: toProtoBehaviors(sim.Behaviors()),
	}
	for i := range agents {
		snapshot.Agents = append(snapshot.Agents, toAgentState(&agents[i]))
	}

	att := sim.Attractor()
	snapshot.Attractor = &pb.AttractorState{Active: att.Active}
	if att.Active {
		snapshot.Attractor.Position = toProtoVector(att.Pos)
	}
	return snapshot
}
