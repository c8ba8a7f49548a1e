package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/younwookim/vaultcore/internal/application/arena"
	"github.com/younwookim/vaultcore/internal/application/input"
	"github.com/younwookim/vaultcore/internal/application/replay"
	"github.com/younwookim/vaultcore/internal/application/state"
	"github.com/younwookim/vaultcore/internal/application/vertical"
	"github.com/younwookim/vaultcore/internal/domain/entity"
	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
	"github.com/younwookim/vaultcore/internal/infrastructure/telemetry"
)

const (
	screenW     = 640
	screenH     = 360
	windowScale = 2
	tps         = 60
	pixelsPer   = 32.0 // Pixels per world unit
	maxHealth   = 100
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorFacing   = color.RGBA{255, 255, 255, 200}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorFuel     = color.RGBA{255, 170, 60, 255}

	surfaceColors = map[world.Surface]color.RGBA{
		world.SurfaceDefault: {80, 80, 100, 255},
		world.SurfaceMetal:   {120, 130, 150, 255},
		world.SurfaceRock:    {110, 95, 80, 255},
		world.SurfaceOrganic: {90, 140, 70, 255},
		world.SurfaceIce:     {170, 210, 240, 255},
	}
)

// session is one character moving through one arena
type session struct {
	arena *arena.Arena
	cfg   *config.MovementConfig
	char  *entity.Character
	ctrl  *vertical.Controller
	input *input.System
}

func newSession(cfg *config.MovementConfig, a *arena.Arena) *session {
	s := &session{
		arena: a,
		char:  entity.NewCharacter(a.Spawn, a.Facing, maxHealth),
	}
	s.reconfigure(cfg)
	return s
}

// reconfigure swaps in a new movement config. The character keeps its place.
func (s *session) reconfigure(cfg *config.MovementConfig) {
	parts := vertical.NewParts(cfg, s.arena.World)
	s.cfg = cfg
	s.ctrl = vertical.NewController(cfg, parts)
	s.input = input.NewSystem(cfg, s.arena.World, parts.Ignore)
}

// respawn puts the character back at the spawn point with full health
func (s *session) respawn() {
	s.char.Teleport(s.arena.Spawn)
	s.char.Face(s.arena.Facing)
	s.char.Health = s.char.MaxHealth
	s.ctrl.Reset()
}

// Game implements ebiten.Game interface
type Game struct {
	*session

	dt       float64
	paused   bool
	queue    *vertical.Queue
	observer vertical.Observer
	metrics  *telemetry.MetricsObserver
	watcher  *config.Watcher

	// Feedback
	lastLanding string

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// NewGame creates a new game instance. metrics and watcher may be nil.
func NewGame(s *session, metrics *telemetry.MetricsObserver, watcher *config.Watcher, recordFilename string) *Game {
	g := &Game{
		session:        s,
		dt:             1.0 / tps,
		queue:          vertical.NewQueue(),
		metrics:        metrics,
		watcher:        watcher,
		recordFilename: recordFilename,
	}

	fan := vertical.Fanout{g.queue, telemetry.NewLogObserver(nil)}
	if metrics != nil {
		fan = append(fan, metrics)
	}
	g.observer = fan
	g.ctrl.SetObserver(g.observer)

	if recordFilename != "" {
		g.recorder = replay.NewRecorder(s.arena.ID, g.dt)
		log.Printf("Recording enabled: %s", recordFilename)
	}
	return g
}

// Update proceeds the game state
func (g *Game) Update() error {
	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && g.recorder != nil {
		g.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.respawn()
	}

	in := g.input.GetInput()
	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}

	g.input.UpdateCharacter(g.ctrl, g.char, in, g.dt)
	g.handleEvents(g.queue.Drain())

	if g.metrics != nil {
		g.metrics.ObserveState(g.ctrl.State())
	}

	if g.char.IsDead() {
		if g.recorder != nil {
			g.saveRecording()
		}
		g.respawn()
	}
	return nil
}

func (g *Game) handleEvents(events []vertical.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case vertical.FallDamageEvent:
			g.char.TakeDamage(ev.Damage)
		case vertical.LandEvent:
			g.lastLanding = fmt.Sprintf("%.1f u/s on %s", ev.Velocity, ev.Surface)
		}
	}
}

// pollConfig applies a hot-reloaded movement config without blocking the frame
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if !ok {
			g.watcher = nil
			return
		}
		g.reconfigure(cfg)
		g.ctrl.SetObserver(g.observer)
		log.Printf("Movement config reloaded")
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Config reload failed: %v", err)
		}
	default:
	}
}

// saveRecording saves the current recording to file
func (g *Game) saveRecording() {
	if g.recorder == nil {
		return
	}

	filename := g.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := g.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, g.recorder.FrameCount())
	}
}

// camera returns the world point drawn at the screen centre
func (g *Game) camera() mgl64.Vec3 {
	cam := g.char.Position
	cam[1] += g.ctrl.LandingOffset()
	sx, sy := g.ctrl.CameraShake()
	cam[0] += sx
	cam[1] += sy
	return cam
}

// toScreen maps a side-on world point (X right, Y up) to pixels
func toScreen(p, cam mgl64.Vec3) (float32, float32) {
	x := (p.X()-cam.X())*pixelsPer + screenW/2
	y := screenH/2 - (p.Y()-cam.Y())*pixelsPer
	return float32(x), float32(y)
}

// Draw renders the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	cam := g.camera()

	for _, b := range g.arena.Boxes {
		x0, y0 := toScreen(mgl64.Vec3{b.Min.X(), b.Max.Y(), 0}, cam)
		x1, y1 := toScreen(mgl64.Vec3{b.Max.X(), b.Min.Y(), 0}, cam)
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, surfaceColors[b.Surface], false)
	}

	g.drawCharacter(screen, cam)
	g.drawUI(screen)

	if g.paused {
		vector.DrawFilledRect(screen, 0, 0, screenW, screenH, color.RGBA{0, 0, 0, 128}, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", screenW/2-50, screenH/2-20)
	}
}

func (g *Game) drawCharacter(screen *ebiten.Image, cam mgl64.Vec3) {
	half := g.cfg.Ground.FeetOffset()
	r := g.cfg.Locomotion.BodyRadius
	p := g.char.Position

	x0, y0 := toScreen(mgl64.Vec3{p.X() - r, p.Y() + half, 0}, cam)
	x1, y1 := toScreen(mgl64.Vec3{p.X() + r, p.Y() - half, 0}, cam)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colorPlayer, false)

	cx, cy := toScreen(p, cam)
	fx, fy := toScreen(p.Add(g.char.Forward.Mul(0.6)), cam)
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, colorFacing, false)
}

func (g *Game) drawUI(screen *ebiten.Image) {
	st := g.ctrl.State()

	// Health bar
	barX, barY := float32(10), float32(screenH-20)
	barW, barH := float32(100), float32(8)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	ratio := float32(g.char.Health) / float32(g.char.MaxHealth)
	vector.DrawFilledRect(screen, barX, barY, barW*ratio, barH, colorHealthFG, false)

	// Fuel bar
	vector.DrawFilledRect(screen, barX, barY-12, barW, barH, colorHealthBG, false)
	vector.DrawFilledRect(screen, barX, barY-12, barW*float32(st.Fuel), barH, colorFuel, false)

	hud := fmt.Sprintf("Mode: %s\nVY: %.2f\nGround: %s (%.0f deg)\nLast landing: %s",
		st.Mode(), st.VelocityY, st.Ground.Surface, st.Ground.SlopeAngle, g.lastLanding)
	if st.Mode() == state.ModeMantling {
		hud += fmt.Sprintf("\nMantle: %s %.0f%%", st.LedgePhase, st.LedgeProgress*100)
	}
	ebitenutil.DebugPrintAt(screen, hud, 10, 20)

	debugText := "A/D/W/S: Move | Space: Jump | Shift: Jetpack | E: Mantle | R: Pull up | Q: Drop | X: Cancel | F1: Respawn"
	ebitenutil.DebugPrint(screen, debugText)
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// openLoader reads from dir, or from the embedded configs when dir is empty
func openLoader(dir string) (*config.Loader, error) {
	if dir == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, err
		}
		return config.NewFSLoader(fsys, "configs"), nil
	}
	return config.NewLoader(dir), nil
}

// loadSession loads both config files and builds a session from them
func loadSession(loader *config.Loader, movementName, arenaName string) (*session, error) {
	cfg, err := loader.LoadMovement(movementName)
	if err != nil {
		return nil, err
	}
	arenaCfg, err := loader.LoadArena(arenaName)
	if err != nil {
		return nil, err
	}
	return newSession(cfg, arena.LoadArena(arenaCfg)), nil
}

// startMetrics serves a fresh registry on addr in the background
func startMetrics(addr string) (*telemetry.MetricsObserver, *http.Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m, err := telemetry.NewMetricsObserver(reg)
	if err != nil {
		return nil, nil, err
	}

	srv := telemetry.NewMetricsServer(addr, reg)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()
	return m, srv, nil
}

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	movementName := flag.String("movement", "movement.json", "Movement config file inside the config directory")
	arenaName := flag.String("arena", "arena.yaml", "Arena file inside the config directory")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print a summary")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g., :9100)")
	watch := flag.Bool("watch", false, "Reload the movement config when it changes (requires -config)")
	flag.Parse()

	loader, err := openLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(os.Stdout, loader, *movementName, *arenaName, *replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	s, err := loadSession(loader, *movementName, *arenaName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var metrics *telemetry.MetricsObserver
	if *metricsAddr != "" {
		m, srv, err := startMetrics(*metricsAddr)
		if err != nil {
			log.Fatalf("Failed to start metrics: %v", err)
		}
		defer srv.Close()
		metrics = m
		log.Printf("Serving metrics on %s/metrics", *metricsAddr)
	}

	var watcher *config.Watcher
	if *watch {
		if *configDir == "" {
			log.Fatal("-watch needs -config pointing at a directory on disk")
		}
		watcher, err = config.NewWatcher(*configDir, *movementName)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer watcher.Close()
	}

	game := NewGame(s, metrics, watcher, *recordFlag)

	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle(fmt.Sprintf("Vault Core - %s", s.arena.Name))
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.saveRecording()
}
