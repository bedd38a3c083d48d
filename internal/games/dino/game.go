// Package dino implements CapyDino, a Chrome Dino-style endless runner.
// The player jumps over cacti and ducks under birds while the world scrolls
// ever faster. All state lives in Game; nothing is package-global.
package dino

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/capydino/internal/config"
	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/raster"
)

// ID identifies the game in score storage.
const ID = "capydino"

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
}

// Sprite draws the player's image into a canvas rectangle. Draw returns
// false when no image is available yet.
type Sprite interface {
	Draw(dc *gg.Context, r core.Rect) bool
}

// Option configures a Game.
type Option func(*Game)

// WithRand injects the random source. Reset will not reseed it.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRng = true
	}
}

// WithHighScoreStore sets where the high score is read from and written to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) { g.hiStore = s }
}

// WithSprite sets the player image.
func WithSprite(s Sprite) Option {
	return func(g *Game) { g.sprite = s }
}

// WithLogger sets the logger for recoverable failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game implements the runner's state and per-tick update.
type Game struct {
	cfg      config.Config
	rng      Rand
	fixedRng bool
	hiStore  HighScoreStore
	sprite   Sprite
	logger   *log.Logger
	colors   palette

	phase   core.Phase
	paused  bool
	groundY float64
	player  Player

	// A duck release seen while paused, applied on resume
	pendingRelease bool

	obstacles   *Pool[Obstacle]
	clouds      *Pool[Cloud]
	decorations *Pool[Decoration]

	obstacleTimer    int
	obstacleInterval float64
	cloudTimer       int

	score     float64
	speed     float64
	ramp      speedRamp
	highScore int
	newHigh   bool
	ticks     int

	events []core.Event

	canvas *gg.Context
	raster *raster.Rasterizer
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:         cfg,
		colors:      newPalette(cfg.Palette),
		obstacles:   NewPool(obstacleBody),
		clouds:      NewPool(cloudBody),
		decorations: NewPool(decorationBody),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.hiStore == nil {
		g.hiStore = &MemoryHighScore{}
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "CapyDino Runner"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset initializes the game into the start screen: fresh world, high score
// read from the store, scenery scattered over the canvas.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedRng {
		g.rng = rand.New(rand.NewSource(runtime.Seed))
	}

	g.groundY = float64(g.cfg.Canvas.Height) - g.cfg.Ground.Height
	g.phase = core.PhaseStart
	g.ticks = 0
	g.clouds.Reset()
	g.decorations.Reset()
	g.cloudTimer = 0
	g.resetRun()
	g.seedScenery()

	hi, err := g.hiStore.LoadHighScore()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		hi = 0
	}
	g.highScore = hi
}

// resetRun clears the per-run state shared by Reset and Restart.
func (g *Game) resetRun() {
	g.paused = false
	g.pendingRelease = false
	g.score = 0
	g.speed = g.cfg.Physics.BaseSpeed
	g.ramp = speedRamp{every: g.cfg.Score.SpeedUpEvery, factor: g.cfg.Score.SpeedUpFactor}
	g.newHigh = false
	g.obstacles.Reset()
	g.obstacleTimer = 0
	g.obstacleInterval = g.cfg.Obstacles.InitialInterval
	g.standPlayer()
}

// Restart begins a new run straight away. Clouds and grass patches are kept.
func (g *Game) Restart() {
	g.resetRun()
	g.phase = core.PhasePlaying
	g.emit(core.EventRestarted)
}

// Step applies one frame of input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionPause) && g.phase == core.PhasePlaying {
		g.paused = !g.paused
	}

	if !g.paused {
		if g.pendingRelease {
			g.pendingRelease = false
			g.Duck(false)
		}
		if in.Has(core.ActionRestart) && g.phase == core.PhaseGameOver {
			g.Restart()
		} else if in.Has(core.ActionJump) {
			g.Jump()
		}
		if in.Has(core.ActionDuck) {
			g.Duck(true)
		}
	}
	if in.Has(core.ActionDuckRelease) {
		if g.paused {
			g.pendingRelease = true
		} else {
			g.Duck(false)
		}
	}

	if !g.paused {
		g.Update()
	}

	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// Update advances the world by one tick. It does nothing unless playing.
func (g *Game) Update() {
	if g.phase != core.PhasePlaying {
		return
	}

	g.ticks++
	g.updateScore()
	g.updatePlayer()
	g.updateObstacles()
	g.updateClouds()
	g.updateDecorations()
	g.checkCollisions()
}

// gameOver ends the run and records a new high score.
func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.emit(core.EventCrashed)

	final := int(math.Floor(g.score))
	if final <= g.highScore {
		return
	}

	g.highScore = final
	g.newHigh = true
	g.emit(core.EventNewHighScore)
	if err := g.hiStore.SaveHighScore(final); err != nil {
		g.logger.Error("could not save high score", "score", final, "error", err)
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     int(math.Floor(g.score)),
		HighScore: g.highScore,
		Phase:     g.phase,
		Paused:    g.paused,
	}
}

// Snapshot is a read-only copy of the game state.
type Snapshot struct {
	Phase       core.Phase
	Paused      bool
	Score       float64
	Speed       float64
	SpeedUps    int
	HighScore   int
	NewHigh     bool
	Ticks       int
	GroundY     float64
	Player      Player
	Obstacles   []Obstacle
	Clouds      []Cloud
	Decorations []Decoration
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:       g.phase,
		Paused:      g.paused,
		Score:       g.score,
		Speed:       g.speed,
		SpeedUps:    g.ramp.fired,
		HighScore:   g.highScore,
		NewHigh:     g.newHigh,
		Ticks:       g.ticks,
		GroundY:     g.groundY,
		Player:      g.player,
		Obstacles:   g.obstacles.Snapshot(),
		Clouds:      g.clouds.Snapshot(),
		Decorations: g.decorations.Snapshot(),
	}
}
