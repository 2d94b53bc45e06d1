// Package maze3d implements a first-person maze explorer: level sequencing,
// collision and the menu/play/pause/win state machine. It performs no I/O;
// frontends feed it input frames and draw the Frame it describes.
package maze3d

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/registry"
)

// Game is the state machine context. All mutable game state lives here.
type Game struct {
	log       *log.Logger
	audio     Audio
	table     []LevelConfig
	levelOpts []LevelOption
	collider  Collider
	tuning    Tuning
	fov       float64
	maxDepth  float64

	levels   *LevelManager
	state    State
	menuSel  int
	pauseSel int

	level  *Level
	player Player

	tick       uint64
	levelTicks uint64
	runTicks   uint64
	fps        int
	err        error

	cfg core.RuntimeConfig
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for transitions and failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithAudio sets the audio collaborator.
func WithAudio(a Audio) Option {
	return func(g *Game) { g.audio = a }
}

// WithLevels replaces the level table.
func WithLevels(levels []LevelConfig) Option {
	return func(g *Game) { g.table = levels }
}

// WithLevelOptions passes options through to the LevelManager built on Reset.
func WithLevelOptions(opts ...LevelOption) Option {
	return func(g *Game) { g.levelOpts = append(g.levelOpts, opts...) }
}

// WithTuning sets the movement constants.
func WithTuning(t Tuning) Option {
	return func(g *Game) { g.tuning = t }
}

// WithRadius sets the player's collision radius.
func WithRadius(r float64) Option {
	return func(g *Game) { g.collider.Radius = r }
}

// WithView sets the field of view in radians and the draw distance used by
// the character renderer.
func WithView(fov, maxDepth float64) Option {
	return func(g *Game) {
		g.fov = fov
		g.maxDepth = maxDepth
	}
}

// New creates a game sitting in the menu.
func New(opts ...Option) *Game {
	g := &Game{
		log:      log.New(io.Discard),
		audio:    NopAudio{},
		table:    DefaultLevels,
		collider: Collider{Radius: 0.25},
		tuning:   DefaultTuning(),
		fov:      math.Pi / 3,
		maxDepth: 15,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register("maze3d", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze3d"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze 3D"
}

// Reset returns to the menu with no level loaded. cfg.Seed fixes the base
// seed of every level when it is non-zero or cfg.FixedSeed is set; otherwise
// each level seeds from the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	opts := append([]LevelOption(nil), g.levelOpts...)
	if cfg.FixedSeed || cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	g.levels = NewLevelManager(g.table, opts...)

	g.state = StateMenu
	g.menuSel = MenuStart
	g.pauseSel = PauseResume
	g.level = nil
	g.player = DefaultStart
	g.tick = 0
	g.levelTicks = 0
	g.runTicks = 0
	g.err = nil
}

// Step advances the state machine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var events []core.Event
	switch g.state {
	case StateMenu:
		events = g.stepMenu(in)
	case StateGame:
		events = g.stepGame(in)
	case StatePause:
		events = g.stepPause(in)
	case StateLevelComplete:
		events = g.stepLevelComplete(in)
	case StateWin:
		events = g.stepWin(in)
	case StateQuit:
	}

	return core.StepResult{State: g.State(), Events: events}
}

// cycle moves a two-item selection on every Up or Down edge.
func (g *Game) cycle(in core.InputFrame, sel *int) {
	for _, b := range []core.Button{core.ButtonUp, core.ButtonDown} {
		if in.Pressed(b) {
			*sel = (*sel + 1) % menuItems
			g.audio.PlaySelect()
		}
	}
}

func (g *Game) stepMenu(in core.InputFrame) []core.Event {
	g.cycle(in, &g.menuSel)
	if !in.Pressed(core.ButtonConfirm) {
		return nil
	}

	if g.menuSel == MenuQuit {
		g.log.Info("quit from menu")
		g.state = StateQuit
		return []core.Event{{Kind: core.EventQuit}}
	}

	g.runTicks = 0
	ev, ok := g.loadLevel(0)
	if !ok {
		return ev
	}
	g.state = StateGame
	g.audio.StartMusic()
	return ev
}

func (g *Game) stepGame(in core.InputFrame) []core.Event {
	g.levelTicks++
	g.runTicks++

	angle, dx, dy := MoveIntent(in.Current, g.player, g.tuning)
	g.player.Angle = angle
	res := g.collider.ResolveMove(g.player, dx, dy, g.level.Maze.Grid)
	g.player = res.Player

	if res.ReachedExit {
		return g.exitReached()
	}

	if in.Pressed(core.ButtonStart) {
		g.state = StatePause
		g.pauseSel = PauseResume
		return []core.Event{{Kind: core.EventPaused, Level: g.level.Index}}
	}
	return nil
}

func (g *Game) exitReached() []core.Event {
	g.audio.PlayWin()
	idx := g.level.Index
	events := []core.Event{{
		Kind:     core.EventLevelComplete,
		Level:    idx,
		Ticks:    g.levelTicks,
		RunTicks: g.runTicks,
		Seed:     g.level.Maze.Seed,
	}}

	if g.levels.IsLast(idx) {
		g.state = StateWin
		g.log.Info("run complete", "levels", g.levels.Count(), "ticks", g.runTicks)
		return append(events, core.Event{Kind: core.EventWin, Level: idx, RunTicks: g.runTicks})
	}

	g.state = StateLevelComplete
	g.log.Info("level complete", "level", idx+1, "ticks", g.levelTicks)
	return events
}

func (g *Game) stepPause(in core.InputFrame) []core.Event {
	g.cycle(in, &g.pauseSel)

	resumed := []core.Event{{Kind: core.EventResumed, Level: g.levelIndex()}}
	if in.Pressed(core.ButtonConfirm) {
		if g.pauseSel == PauseResume {
			g.state = StateGame
			return resumed
		}
		g.state = StateMenu
		g.audio.StopMusic()
		return []core.Event{{Kind: core.EventMenuReturn, Level: g.levelIndex()}}
	}
	if in.Pressed(core.ButtonStart) {
		g.state = StateGame
		return resumed
	}
	return nil
}

func (g *Game) stepLevelComplete(in core.InputFrame) []core.Event {
	if !in.Pressed(core.ButtonConfirm) {
		return nil
	}
	ev, ok := g.loadLevel(g.levelIndex() + 1)
	if ok {
		g.state = StateGame
	}
	return ev
}

func (g *Game) stepWin(in core.InputFrame) []core.Event {
	if !in.Pressed(core.ButtonConfirm) {
		return nil
	}
	g.state = StateMenu
	g.menuSel = MenuStart
	g.audio.StopMusic()
	return []core.Event{{Kind: core.EventMenuReturn, Level: g.levelIndex()}}
}

// loadLevel builds level n and publishes it only once complete. A failure is
// fatal: the game records the error and moves to StateQuit.
func (g *Game) loadLevel(n int) ([]core.Event, bool) {
	lvl, err := g.levels.Load(n)
	if err != nil {
		g.err = err
		g.state = StateQuit
		g.audio.StopMusic()
		g.log.Error("level load failed", "level", n, "err", err)
		return []core.Event{{Kind: core.EventQuit, Level: n}}, false
	}

	g.level = lvl
	g.player = lvl.Start
	g.levelTicks = 0
	g.log.Debug("level loaded", "level", n+1, "size", lvl.Config, "seed", lvl.Maze.Seed,
		"segments", len(lvl.Maze.Segments))
	return []core.Event{{Kind: core.EventLevelLoaded, Level: n, Seed: lvl.Maze.Seed}}, true
}

// State returns the coarse status for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.state.String(),
		Level:  g.levelIndex(),
		Levels: g.levelCount(),
		Paused: g.state == StatePause,
		Won:    g.state == StateWin,
		Quit:   g.state == StateQuit,
	}
}

// Current returns the state machine node.
func (g *Game) Current() State {
	return g.state
}

// Player returns the current pose.
func (g *Game) Player() Player {
	return g.player
}

// Level returns the published level, or nil before the first load.
func (g *Game) Level() *Level {
	return g.level
}

// Err returns the fatal error that moved the game to StateQuit, if any.
func (g *Game) Err() error {
	return g.err
}

// SetFPS records the frontend's measured frame rate for the HUD.
func (g *Game) SetFPS(fps int) {
	g.fps = fps
}

func (g *Game) levelIndex() int {
	if g.level == nil {
		return 0
	}
	return g.level.Index
}

func (g *Game) levelCount() int {
	if g.levels == nil {
		return len(g.table)
	}
	return g.levels.Count()
}
