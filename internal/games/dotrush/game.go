// Package dotrush implements the dot-rush reflex game. Colored dots
// stream in from the screen edges; the player steers a crosshair and
// taps dots matching the current target color while avoiding bombs.
// All entity simulation lives in internal/sim; this package adds the
// session rules (lives, combo, scoring) and terminal rendering.
package dotrush

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dot-rush/internal/config"
	"github.com/vovakirdan/dot-rush/internal/core"
	"github.com/vovakirdan/dot-rush/internal/sim"
)

// Crosshair movement per input action, in cells. Horizontal steps are
// doubled to compensate for terminal cell aspect ratio.
const (
	moveStepY = 1.0
	moveStepX = 2.0
)

// Glyphs for rendering.
const (
	CrosshairChar = '+'
	DotChar       = '●'
	BombChar      = '✸'
	SlowMoChar    = '◐'
	DoubleChar    = '◆'
	LifeChar      = '♥'
)

// Game wraps a sim.World with session rules and implements
// registry.Game.
type Game struct {
	id    string
	title string

	// cfgFn produces the mode's simulation config on every reset, so a
	// restart never inherits tweaked state.
	cfgFn func() config.Config

	cfg     config.Config
	runtime core.RuntimeConfig
	world   *sim.World

	crosshair core.Vec2

	score     int
	combo     int
	bestCombo int
	lives     int
	gameOver  bool
	paused    bool
	debug     bool

	tickCount int
}

// New creates a game instance for one mode. The config function is
// evaluated on each Reset.
func New(id, title string, cfgFn func() config.Config) *Game {
	return &Game{id: id, title: title, cfgFn: cfgFn}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.cfg = g.cfgFn()

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	viewport := core.NewRect(0, 0, float64(rc.ScreenW), float64(rc.ScreenH))
	if g.world == nil {
		w, err := sim.NewWorld(g.cfg, viewport, seed)
		if err != nil {
			// Mode configs are static and validated by tests; a bad one
			// is a programming error.
			panic(fmt.Sprintf("dotrush: bad mode config: %v", err))
		}
		g.world = w
	} else {
		g.world.SetViewport(viewport)
		g.world.Reset(seed)
	}

	g.crosshair = viewport.Center()
	g.score = 0
	g.combo = 0
	g.bestCombo = 0
	g.lives = g.cfg.Gameplay.Lives
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.moveCrosshair(in)

	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.world.Advance(1.0 / float64(tickRate))

	if in.Has(core.ActionTap) {
		g.applyTap(g.world.TapAt(g.crosshair))
	}

	if g.lives <= 0 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// moveCrosshair applies movement input, clamped to the playfield.
func (g *Game) moveCrosshair(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.crosshair.Y -= moveStepY
	}
	if in.Has(core.ActionDown) {
		g.crosshair.Y += moveStepY
	}
	if in.Has(core.ActionLeft) {
		g.crosshair.X -= moveStepX
	}
	if in.Has(core.ActionRight) {
		g.crosshair.X += moveStepX
	}
	g.crosshair.X = core.ClampF(g.crosshair.X, 0, float64(g.runtime.ScreenW-1))
	g.crosshair.Y = core.ClampF(g.crosshair.Y, 0, float64(g.runtime.ScreenH-1))
}

// applyTap converts a tap outcome into score, combo, and life changes.
func (g *Game) applyTap(res sim.TapResult) {
	switch res.Outcome {
	case sim.TapCorrect:
		g.combo++
		if g.combo > g.bestCombo {
			g.bestCombo = g.combo
		}
		g.score += g.combo * g.world.ScoreMultiplier()
	case sim.TapWrong:
		g.combo = 0
		g.loseLife()
	case sim.TapBomb:
		g.combo = 0
		g.loseLife()
	case sim.TapSlowMo, sim.TapDouble:
		// Effect applied inside the world; combo carries through.
	case sim.TapMiss:
		// Whiffs are free.
	}
}

func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Combo returns the current consecutive correct tap streak.
func (g *Game) Combo() int {
	return g.combo
}

// BestCombo returns the longest streak of this session.
func (g *Game) BestCombo() int {
	return g.bestCombo
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// DurationSecs returns the session length in whole seconds.
func (g *Game) DurationSecs() int {
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return g.tickCount / tickRate
}
