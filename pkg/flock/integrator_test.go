package flock

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func TestAdvance(t *testing.T) {
	const (
		width, height, maxSpeed = 800.0, 600.0, 5.0
	)
	tests := []struct {
		name    string
		agent   Agent
		wantPos geometry.Vector2D
		wantVel geometry.Vector2D
	}{
		{
			name:    "plain move",
			agent:   Agent{Pos: geometry.Vector2D{X: 100, Y: 100}, Vel: geometry.Vector2D{X: 1, Y: 2}},
			wantPos: geometry.Vector2D{X: 101, Y: 102},
			wantVel: geometry.Vector2D{X: 1, Y: 2},
		},
		{
			name:    "acceleration is applied before the move",
			agent:   Agent{Pos: geometry.Vector2D{X: 100, Y: 100}, Vel: geometry.Vector2D{X: 1}, Acc: geometry.Vector2D{X: 0.5, Y: 0.5}},
			wantPos: geometry.Vector2D{X: 101.5, Y: 100.5},
			wantVel: geometry.Vector2D{X: 1.5, Y: 0.5},
		},
		{
			name:    "speed is capped",
			agent:   Agent{Pos: geometry.Vector2D{X: 100, Y: 100}, Vel: geometry.Vector2D{X: 4}, Acc: geometry.Vector2D{X: 3}},
			wantPos: geometry.Vector2D{X: 105, Y: 100},
			wantVel: geometry.Vector2D{X: 5},
		},
		{
			name:    "wraps past the right edge",
			agent:   Agent{Pos: geometry.Vector2D{X: width - 0.5, Y: 300}, Vel: geometry.Vector2D{X: 2}},
			wantPos: geometry.Vector2D{X: 1.5, Y: 300},
			wantVel: geometry.Vector2D{X: 2},
		},
		{
			name:    "wraps past the top edge",
			agent:   Agent{Pos: geometry.Vector2D{X: 10, Y: 1}, Vel: geometry.Vector2D{Y: -3}},
			wantPos: geometry.Vector2D{X: 10, Y: height - 2},
			wantVel: geometry.Vector2D{Y: -3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.agent
			Advance(&a, width, height, maxSpeed)
			if !closeTo(a.Pos, tt.wantPos) {
				t.Errorf("Pos = %v; want %v", a.Pos, tt.wantPos)
			}
			if !closeTo(a.Vel, tt.wantVel) {
				t.Errorf("Vel = %v; want %v", a.Vel, tt.wantVel)
			}
			if !a.Acc.IsZero() {
				t.Errorf("Acc = %v; want zero after Advance", a.Acc)
			}
		})
	}
}

func TestAdvance_KeepsAgentsInsideWorld(t *testing.T) {
	const (
		width, height, maxSpeed, maxAccel = 800.0, 600.0, 5.0, 0.5
	)
	rng := rand.New(rand.NewPCG(42, 42))
	a := Agent{Pos: geometry.Vector2D{X: 400, Y: 300}}

	for i := 0; i < 10000; i++ {
		a.Acc = geometry.NewVectorPolar(rng.Float64()*maxAccel, rng.Float64()*2*math.Pi)
		Advance(&a, width, height, maxSpeed)

		if a.Vel.Len() > maxSpeed+tolerance {
			t.Fatalf("step %d: speed %v exceeds %v", i, a.Vel.Len(), maxSpeed)
		}
		if a.Pos.X < 0 || a.Pos.X >= width || a.Pos.Y < 0 || a.Pos.Y >= height {
			t.Fatalf("step %d: position %v escaped the world", i, a.Pos)
		}
	}
}

func TestAgent_Heading(t *testing.T) {
	tests := []struct {
		vel  geometry.Vector2D
		want float64
	}{
		{geometry.Vector2D{X: 1}, 0},
		{geometry.Vector2D{Y: 1}, 90},
		{geometry.Vector2D{X: -1}, 180},
		{geometry.Vector2D{Y: -1}, -90},
	}
	for _, tt := range tests {
		a := Agent{Vel: tt.vel}
		if got := a.Heading(); math.Abs(got-tt.want) > tolerance {
			t.Errorf("Heading() for %v = %v; want %v", tt.vel, got, tt.want)
		}
	}
}
