package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const (
	// agents added or removed per button click or key press
	populationStep = 10
	// DrawTriangles takes uint16 indices
	maxAgentsPerBatch = 65535 / 3
)

var (
	whiteImage      = ebiten.NewImage(3, 3)
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	attractorFill   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	attractorRing   = color.RGBA{R: 150, G: 80, B: 220, A: 160}
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	flockPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetCohesion   *ui.Checkbox
	widgetSeparation *ui.Checkbox
	widgetAlignment  *ui.Checkbox

	// true between a press that started on the world and its release
	attracting bool

	cfg *flock.Config

	// reused every frame
	vertices []ebiten.Vertex
	indices  []uint16

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// GetNewGame spawns the flock actor on system and builds the control panel.
func GetNewGame(ctx context.Context, cfg *flock.Config, system actor.ActorSystem) (*Game, error) {
	// 1. Create Channels for communication
	snapshotCh := make(chan *pb.FlockSnapshot, 10) // Buffer to avoid blocking

	// 2. Spawn Flock Actor, it pushes a snapshot after every tick
	flockPID, err := system.Spawn(ctx, "flock", NewFlockActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		flockPID:   flockPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.FlockSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
	}

	// 3. Initialize UI Panel
	panel := ui.NewUIPanel("Flock", 10, 10, 200, 0)

	panel.AddSection("Rules (C/S/A)")
	g.widgetCohesion = panel.AddCheckbox("Cohesion", cfg.Behaviors.Cohesion)
	g.widgetSeparation = panel.AddCheckbox("Separation", cfg.Behaviors.Separation)
	g.widgetAlignment = panel.AddCheckbox("Alignment", cfg.Behaviors.Alignment)
	panel.EndSection()

	panel.AddSection("Population (+/-)")
	panel.AddButtonRow("",
		[]string{fmt.Sprintf("+%d", populationStep), fmt.Sprintf("-%d", populationStep)},
		[]func(){
			func() { g.adjustPopulation(populationStep) },
			func() { g.adjustPopulation(-populationStep) },
		})
	panel.EndSection()
	panel.FitHeight()

	for _, cb := range []*ui.Checkbox{g.widgetCohesion, g.widgetSeparation, g.widgetAlignment} {
		cb.OnToggle = func(bool) { g.sendBehaviors() }
	}
	g.panel = panel

	return g, nil
}

func (g *Game) sendBehaviors() {
	actor.Tell(g.ctx, g.flockPID, &pb.Behaviors{
		Cohesion:   g.widgetCohesion.Value,
		Separation: g.widgetSeparation.Value,
		Alignment:  g.widgetAlignment.Value,
	})
}

func (g *Game) adjustPopulation(delta int32) {
	actor.Tell(g.ctx, g.flockPID, &pb.AdjustPopulation{Delta: delta})
}

// overUI reports whether a widget hit-tests the cursor.
func (g *Game) overUI(x, y float64) bool {
	return g.panel.Contains(x, y)
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel, widget callbacks talk to the actor directly
	g.panel.Update()
	g.handleKeys()

	// 2. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 3. Mouse: a press on the world pins the attractor until release
	mx, my := ebiten.CursorPosition()
	cursor := flock.Input{}
	x, y := float64(mx), float64(my)
	onWorld := x >= 0 && y >= 0 && x < g.cfg.WorldWidth && y < g.cfg.WorldHeight && !g.overUI(x, y)
	if onWorld {
		cursor.Pointer.X, cursor.Pointer.Y = x, y
		cursor.HasPointer = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onWorld && !g.attracting {
		g.attracting = true
		actor.Tell(g.ctx, g.flockPID, &pb.PointerPressed{Position: toProtoVector(cursor.Pointer)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.attracting {
		g.attracting = false
		actor.Tell(g.ctx, g.flockPID, &pb.PointerReleased{})
	}

	// 4. Trigger Simulation Step
	actor.Tell(g.ctx, g.flockPID, &pb.Tick{
		DeltaTime:  1,
		Pointer:    toProtoVector(cursor.Pointer),
		HasPointer: cursor.HasPointer,
	})

	return nil
}

func (g *Game) handleKeys() {
	toggles := []struct {
		key ebiten.Key
		cb  *ui.Checkbox
	}{
		{ebiten.KeyC, g.widgetCohesion},
		{ebiten.KeyS, g.widgetSeparation},
		{ebiten.KeyA, g.widgetAlignment},
	}
	for _, t := range toggles {
		if inpututil.IsKeyJustPressed(t.key) {
			t.cb.Toggle()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.adjustPopulation(populationStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.adjustPopulation(-populationStep)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	// 1. Attractor below the flock
	if att := g.lastState.GetAttractor(); att.GetActive() {
		p := att.GetPosition()
		vector.FillCircle(screen, float32(p.GetX()), float32(p.GetY()), 12, attractorFill, true)
		vector.StrokeCircle(screen, float32(p.GetX()), float32(p.GetY()), float32(g.cfg.AttractorRadius), 1, attractorRing, true)
	}

	// 2. All agents from the last known snapshot
	g.drawAgents(screen, g.lastState.GetAgents())

	// 3. Draw UI Panel
	g.panel.Draw(screen)

	// Display performance stats on the right side, clear of the panel
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nAgents: %d\nTick: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		len(g.lastState.GetAgents()),
		g.lastState.GetTick(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

// drawAgents batches every agent into as few DrawTriangles calls as the
// uint16 indices allow.
func (g *Game) drawAgents(screen *ebiten.Image, agents []*pb.AgentState) {
	for len(agents) > 0 {
		n := min(len(agents), maxAgentsPerBatch)
		g.vertices = g.vertices[:0]
		g.indices = g.indices[:0]
		for i, a := range agents[:n] {
			g.vertices = appendBoid(g.vertices, a)
			base := uint16(i * 3)
			g.indices = append(g.indices, base, base+1, base+2)
		}
		screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
		agents = agents[n:]
	}
}

// appendBoid appends the three vertices of a triangle pointing along the
// agent's heading, scaled by its size and tinted with its color.
func appendBoid(dst []ebiten.Vertex, a *pb.AgentState) []ebiten.Vertex {
	angle := a.GetHeading() * math.Pi / 180
	scale := a.GetSizeScale()
	x, y := a.GetPosition().GetX(), a.GetPosition().GetY()

	c := flock.ColorFromRGB(a.GetColor())
	r, gr, b := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255

	points := [3][2]float64{
		{x + math.Cos(angle)*6*scale, y + math.Sin(angle)*6*scale},         // tip
		{x + math.Cos(angle+2.5)*5*scale, y + math.Sin(angle+2.5)*5*scale}, // right
		{x + math.Cos(angle-2.5)*5*scale, y + math.Sin(angle-2.5)*5*scale}, // left
	}
	for _, p := range points {
		dst = append(dst, ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: 1,
		})
	}
	return dst
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }

func init() {
	whiteImage.Fill(color.White)
}
