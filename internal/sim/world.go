package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dot-rush/internal/config"
	"github.com/vovakirdan/dot-rush/internal/core"
)

// Extra reach added to an entity's radius during tap hit-testing, so
// terminal-cell aiming stays forgiving.
const tapSlack = 0.75

// TapOutcome classifies what a tap hit.
type TapOutcome int

const (
	TapMiss    TapOutcome = iota // Nothing under the crosshair
	TapCorrect                   // Dot in the target color
	TapWrong                     // Dot in any other color
	TapBomb                      // Bomb - hazard
	TapSlowMo                    // Slow-motion power-up collected
	TapDouble                    // Double-score power-up collected
)

// TapResult reports the outcome of a tap and, for dots, the tapped color.
type TapResult struct {
	Outcome TapOutcome
	Color   core.Color
}

// PoolStats pairs a pool label with its occupancy for telemetry.
type PoolStats struct {
	Name  string
	Stats Stats
}

// World owns the three kind pools, the spawner, and the collision
// resolver, and drives them in a fixed per-frame order. It is the only
// mutator of pool state; collaborators receive transient references via
// ForEachActive and the lifecycle hooks.
type World struct {
	cfg        config.Config
	difficulty *config.DifficultyModel
	limits     *config.GameLimits

	dots     *Pool
	bombs    *Pool
	powerUps *Pool
	spawner  *Spawner
	resolver *Resolver

	rng      *rand.Rand
	viewport core.Rect

	nowMs float64

	// Slow-motion effect: scales entity motion only, never the spawner
	// clock. The only cross-cutting mutation a collaborator can trigger.
	timeScale        float64
	timeScaleUntilMs float64

	doubleUntilMs float64

	targetColor core.Color
	correctTaps int
}

// NewWorld builds a simulation over the given viewport. Configuration is
// validated up front; a bad config fails fast rather than corrupting the
// session later.
func NewWorld(cfg config.Config, viewport core.Rect, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if viewport.W <= 0 || viewport.H <= 0 {
		return nil, fmt.Errorf("sim: viewport must have positive dimensions, got %vx%v", viewport.W, viewport.H)
	}

	w := &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyModel(cfg.Difficulty),
		limits:     config.NewGameLimits(cfg.Limits),
		rng:        rand.New(rand.NewSource(seed)),
		viewport:   viewport,
		timeScale:  1,
	}

	var err error
	if w.dots, err = NewPool("dots", cfg.Capacities.Dots, viewport, cfg.Gameplay.CullMargin); err != nil {
		return nil, err
	}
	if w.bombs, err = NewPool("bombs", cfg.Capacities.Bombs, viewport, cfg.Gameplay.CullMargin); err != nil {
		return nil, err
	}
	if w.powerUps, err = NewPool("powerups", cfg.Capacities.PowerUps, viewport, cfg.Gameplay.CullMargin); err != nil {
		return nil, err
	}
	w.powerUps.SetLifetime(cfg.Gameplay.PowerUpLifetimeMs)

	w.targetColor = core.DotPalette[w.rng.Intn(len(core.DotPalette))]

	w.spawner, err = NewSpawner(
		cfg.Spawn, w.rng, w.difficulty, w.limits,
		w.dots, w.bombs, w.powerUps,
		viewport, w.TargetColor,
	)
	if err != nil {
		return nil, err
	}

	w.resolver = NewResolver(cfg.Collision, viewport)
	return w, nil
}

// Advance runs one frame: entity movement and culling, then the spawn
// attempt, then collision resolution. The order is fixed; no component
// runs concurrently with another.
func (w *World) Advance(dtSecs float64) {
	w.nowMs += dtSecs * 1000

	if w.timeScaleUntilMs > 0 && w.nowMs >= w.timeScaleUntilMs {
		w.timeScale = 1
		w.timeScaleUntilMs = 0
	}
	if w.doubleUntilMs > 0 && w.nowMs >= w.doubleUntilMs {
		w.doubleUntilMs = 0
	}

	scaled := dtSecs * w.timeScale
	w.dots.Update(scaled)
	w.bombs.Update(scaled)
	w.powerUps.Update(scaled)

	w.spawner.Tick(w.nowMs, w.nowMs/1000)
	w.resolver.Resolve(w.nowMs, w.dots, w.powerUps)
}

// TapAt hit-tests the position against all active entities and applies
// the outcome: dots are consumed, bombs detonate, power-ups start their
// effect. The nearest overlapping entity wins when several overlap.
func (w *World) TapAt(pos core.Vec2) TapResult {
	var hit *Entity
	var hitPool *Pool
	best := -1.0

	check := func(pool *Pool) {
		pool.ForEach(func(e *Entity) {
			d := core.Dist(e.Pos, pos)
			if d > e.Radius()+tapSlack {
				return
			}
			if hit == nil || d < best {
				hit = e
				hitPool = pool
				best = d
			}
		})
	}
	check(w.dots)
	check(w.bombs)
	check(w.powerUps)

	if hit == nil {
		return TapResult{Outcome: TapMiss}
	}

	result := TapResult{Color: hit.Color}
	switch hit.Kind {
	case KindDot:
		if hit.Color == w.targetColor {
			result.Outcome = TapCorrect
			w.correctTaps++
			if w.cfg.Gameplay.TargetSwitchTaps > 0 && w.correctTaps%w.cfg.Gameplay.TargetSwitchTaps == 0 {
				w.rotateTarget()
			}
		} else {
			result.Outcome = TapWrong
		}
	case KindBomb:
		result.Outcome = TapBomb
		w.detonate(hit)
	case KindSlowMo:
		result.Outcome = TapSlowMo
		w.SetTimeScale(w.cfg.Gameplay.SlowMoFactor, w.cfg.Gameplay.SlowMoDurationMs)
	case KindDouble:
		result.Outcome = TapDouble
		w.doubleUntilMs = w.nowMs + w.cfg.Gameplay.DoubleDurationMs
	}

	hitPool.Release(hit)
	return result
}

// detonate releases every dot inside the bomb's blast radius.
func (w *World) detonate(bomb *Entity) {
	var caught []*Entity
	w.dots.ForEach(func(e *Entity) {
		if core.Dist(e.Pos, bomb.Pos) <= bomb.ExplosionRadius {
			caught = append(caught, e)
		}
	})
	for _, e := range caught {
		w.dots.Release(e)
	}
}

// rotateTarget switches the target to a different palette color.
func (w *World) rotateTarget() {
	next := core.DotPalette[w.rng.Intn(len(core.DotPalette))]
	for next == w.targetColor {
		next = core.DotPalette[w.rng.Intn(len(core.DotPalette))]
	}
	w.targetColor = next
}

// SetTimeScale applies a motion time-scale for the given duration in
// milliseconds. Passing duration <= 0 clears the effect.
func (w *World) SetTimeScale(factor, durationMs float64) {
	if durationMs <= 0 || factor <= 0 {
		w.timeScale = 1
		w.timeScaleUntilMs = 0
		return
	}
	w.timeScale = factor
	w.timeScaleUntilMs = w.nowMs + durationMs
}

// TimeScale returns the current motion time-scale.
func (w *World) TimeScale() float64 {
	return w.timeScale
}

// ScoreMultiplier returns 2 while a double-score power-up is active.
func (w *World) ScoreMultiplier() int {
	if w.doubleUntilMs > 0 {
		return 2
	}
	return 1
}

// TargetColor returns the color the player must currently match.
func (w *World) TargetColor() core.Color {
	return w.targetColor
}

// NowMs returns the simulation clock in milliseconds.
func (w *World) NowMs() float64 {
	return w.nowMs
}

// Spawner exposes spawn-rate and probability configuration, forwarded
// for UI tweaking.
func (w *World) Spawner() *Spawner {
	return w.spawner
}

// SetHooks attaches lifecycle callbacks to all three pools. The renderer
// distinguishes kinds via the entity's tag.
func (w *World) SetHooks(h Hooks) {
	w.dots.SetHooks(h)
	w.bombs.SetHooks(h)
	w.powerUps.SetHooks(h)
}

// ForEachActive visits every active entity across all pools. References
// must not be held beyond the current frame.
func (w *World) ForEachActive(fn func(*Entity)) {
	w.dots.ForEach(fn)
	w.bombs.ForEach(fn)
	w.powerUps.ForEach(fn)
}

// Stats returns occupancy for each kind pool.
func (w *World) Stats() []PoolStats {
	return []PoolStats{
		{Name: w.dots.Name(), Stats: w.dots.Stats()},
		{Name: w.bombs.Name(), Stats: w.bombs.Stats()},
		{Name: w.powerUps.Name(), Stats: w.powerUps.Stats()},
	}
}

// SetViewport propagates a viewport change to every component.
func (w *World) SetViewport(v core.Rect) {
	w.viewport = v
	w.dots.SetViewport(v)
	w.bombs.SetViewport(v)
	w.powerUps.SetViewport(v)
	w.spawner.SetViewport(v)
	w.resolver.SetViewport(v)
}

// Clear releases all active entities and cancels running effects. Safe
// to call mid-frame; the pools' reentrancy guards make nested updates
// no-ops during teardown.
func (w *World) Clear() {
	w.dots.Clear()
	w.bombs.Clear()
	w.powerUps.Clear()
	w.timeScale = 1
	w.timeScaleUntilMs = 0
	w.doubleUntilMs = 0
}

// Reset clears the world and restarts the session clock with a new seed.
func (w *World) Reset(seed int64) {
	w.Clear()
	w.nowMs = 0
	w.correctTaps = 0
	w.rng = rand.New(rand.NewSource(seed))
	w.targetColor = core.DotPalette[w.rng.Intn(len(core.DotPalette))]
	w.spawner.rng = w.rng
	w.spawner.lastSpawnMs = 0
	w.spawner.redrawDelay(0)
}
