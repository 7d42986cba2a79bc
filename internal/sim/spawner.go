package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dot-rush/internal/config"
	"github.com/vovakirdan/dot-rush/internal/core"
)

// Rand is the randomness source injected into the spawner. *math/rand.Rand
// satisfies it; tests substitute a scripted source to pin down spawn
// decisions exactly.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Angular jitter bounds applied to the canonical inward spawn direction.
const (
	dotJitterRad   = 15 * math.Pi / 180
	otherJitterRad = 10 * math.Pi / 180
)

// Kind-specific multipliers applied to the difficulty-supplied base speed.
const (
	bombSpeedFactor    = 0.9
	powerUpSpeedFactor = 1.0
	dotSpeedFactorMin  = 1.5
	dotSpeedFactorMax  = 2.0
)

// Bomb blast radius as a multiple of the bomb's own diameter.
const bombBlastFactor = 3.0

// spawnEdge is one of the 8 canonical emission points: side midpoints and
// corners, each with a fixed inward unit direction.
type spawnEdge struct {
	anchor func(v core.Rect, m float64) core.Vec2
	dir    core.Vec2
}

var invSqrt2 = 1 / math.Sqrt2

var spawnEdges = [8]spawnEdge{
	// Sides: top, bottom, left, right
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.X+v.W/2, v.Y-m) }, core.Vec2{X: 0, Y: 1}},
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.X+v.W/2, v.Bottom()+m) }, core.Vec2{X: 0, Y: -1}},
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.X-m, v.Y+v.H/2) }, core.Vec2{X: 1, Y: 0}},
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.Right()+m, v.Y+v.H/2) }, core.Vec2{X: -1, Y: 0}},
	// Corners: top-left, top-right, bottom-left, bottom-right
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.X-m, v.Y-m) }, core.Vec2{X: invSqrt2, Y: invSqrt2}},
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.Right()+m, v.Y-m) }, core.Vec2{X: -invSqrt2, Y: invSqrt2}},
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.X-m, v.Bottom()+m) }, core.Vec2{X: invSqrt2, Y: -invSqrt2}},
	{func(v core.Rect, m float64) core.Vec2 { return core.NewVec2(v.Right()+m, v.Bottom()+m) }, core.Vec2{X: -invSqrt2, Y: -invSqrt2}},
}

// Spawner decides, once per eligible tick, whether to spawn and which
// kind, subject to probability weights and live capacity caps. Pool
// exhaustion aborts a spawn silently: that is backpressure, not failure.
type Spawner struct {
	cfg        config.SpawnConfig
	rng        Rand
	difficulty *config.DifficultyModel
	limits     *config.GameLimits

	dots     *Pool
	bombs    *Pool
	powerUps *Pool

	viewport    core.Rect
	targetColor func() core.Color

	lastSpawnMs float64
	nextDelayMs float64
}

// NewSpawner creates a spawner over the three kind pools. The
// targetColor callback supplies the current color the player must match.
// Inverted rate bounds fail fast.
func NewSpawner(
	cfg config.SpawnConfig,
	rng Rand,
	difficulty *config.DifficultyModel,
	limits *config.GameLimits,
	dots, bombs, powerUps *Pool,
	viewport core.Rect,
	targetColor func() core.Color,
) (*Spawner, error) {
	if cfg.MinRateMs <= 0 || cfg.MaxRateMs < cfg.MinRateMs {
		return nil, fmt.Errorf("sim: spawn rate bounds inverted: min=%v max=%v", cfg.MinRateMs, cfg.MaxRateMs)
	}
	s := &Spawner{
		cfg:         cfg,
		rng:         rng,
		difficulty:  difficulty,
		limits:      limits,
		dots:        dots,
		bombs:       bombs,
		powerUps:    powerUps,
		viewport:    viewport,
		targetColor: targetColor,
	}
	s.redrawDelay(0)
	return s, nil
}

// SetViewport updates the spawn anchors, e.g. after a terminal resize.
func (s *Spawner) SetViewport(v core.Rect) {
	s.viewport = v
}

// RateBounds returns the current spawn delay bounds in milliseconds.
func (s *Spawner) RateBounds() (minMs, maxMs float64) {
	return s.cfg.MinRateMs, s.cfg.MaxRateMs
}

// SetRateBounds updates the spawn delay bounds.
func (s *Spawner) SetRateBounds(minMs, maxMs float64) error {
	if minMs <= 0 || maxMs < minMs {
		return fmt.Errorf("sim: spawn rate bounds inverted: min=%v max=%v", minMs, maxMs)
	}
	s.cfg.MinRateMs = minMs
	s.cfg.MaxRateMs = maxMs
	return nil
}

// Chances returns the current kind probability weights.
func (s *Spawner) Chances() (bomb, slowMo, double float64) {
	return s.cfg.BombChance, s.cfg.SlowMoChance, s.cfg.DoubleChance
}

// SetChances updates the kind probability weights.
func (s *Spawner) SetChances(bomb, slowMo, double float64) error {
	if bomb < 0 || slowMo < 0 || double < 0 || bomb+slowMo+double > 1 {
		return fmt.Errorf("sim: spawn chances must be non-negative and sum to at most 1")
	}
	s.cfg.BombChance = bomb
	s.cfg.SlowMoChance = slowMo
	s.cfg.DoubleChance = double
	return nil
}

// Tick runs one spawn attempt if the current delay has elapsed.
//
// The composite admission order is deliberate: a bomb roll that fails the
// time-based capacity gate falls through to the dot branch rather than
// being retried or dropped. Power-up rolls sit between the two.
func (s *Spawner) Tick(nowMs, elapsedSecs float64) {
	if nowMs < s.lastSpawnMs+s.nextDelayMs {
		return
	}

	// Every attempt consumes the window, spawn or not.
	s.lastSpawnMs = nowMs
	s.redrawDelay(elapsedSecs)

	roll := s.rng.Float64()
	powerUpChance := s.cfg.SlowMoChance + s.cfg.DoubleChance

	switch {
	case roll < s.cfg.BombChance:
		// A bomb roll over the live cap demotes to a dot; the spawn
		// window is spent either way.
		if s.bombs.ActiveCount() < s.limits.BombCap(elapsedSecs) {
			s.spawn(KindBomb, nowMs, elapsedSecs)
		} else {
			s.spawn(KindDot, nowMs, elapsedSecs)
		}
	case roll < s.cfg.BombChance+powerUpChance:
		s.spawn(s.pickPowerUp(), nowMs, elapsedSecs)
	default:
		s.spawn(KindDot, nowMs, elapsedSecs)
	}
}

// redrawDelay draws the next inter-spawn delay from [minRate, maxRate],
// shrinks it by the elapsed-time intensity term, and floors it at the
// minimum gap.
func (s *Spawner) redrawDelay(elapsedSecs float64) {
	delay := s.cfg.MinRateMs + s.rng.Float64()*(s.cfg.MaxRateMs-s.cfg.MinRateMs)

	ramp := s.cfg.IntensityRampSecs
	if ramp > 0 {
		level := core.ClampF(elapsedSecs/ramp, 0, 1)
		delay *= 1 - s.cfg.IntensityFactor*level
	}

	if delay < s.cfg.MinGapMs {
		delay = s.cfg.MinGapMs
	}
	s.nextDelayMs = delay
}

// pickPowerUp chooses between the two power-up kinds proportionally to
// their configured weights.
func (s *Spawner) pickPowerUp() Kind {
	total := s.cfg.SlowMoChance + s.cfg.DoubleChance
	if total <= 0 || s.rng.Float64()*total < s.cfg.SlowMoChance {
		return KindSlowMo
	}
	return KindDouble
}

// spawn acquires a slot of the right pool, computes spawn parameters, and
// activates the entity. A nil acquire aborts silently.
func (s *Spawner) spawn(kind Kind, nowMs, elapsedSecs float64) {
	pool := s.poolFor(kind)
	e := pool.Acquire()
	if e == nil {
		return
	}

	edge := spawnEdges[s.rng.Intn(len(spawnEdges))]
	pos := edge.anchor(s.viewport, s.cfg.EdgeMargin)

	jitter := otherJitterRad
	if kind == KindDot {
		jitter = dotJitterRad
	}
	angle := (s.rng.Float64()*2 - 1) * jitter
	dir := edge.dir.Rotate(angle).Normalized()

	metrics := s.difficulty.Metrics(elapsedSecs)
	size := s.difficulty.ResponsiveSize(elapsedSecs, s.viewport.W, s.viewport.H)

	var speed float64
	var limits config.KindLimits
	switch kind {
	case KindBomb:
		speed = metrics.Speed * bombSpeedFactor
		limits = s.limits.Bomb()
	case KindSlowMo, KindDouble:
		speed = metrics.Speed * powerUpSpeedFactor
		limits = s.limits.PowerUp()
	default:
		factor := dotSpeedFactorMin + s.rng.Float64()*(dotSpeedFactorMax-dotSpeedFactorMin)
		speed = metrics.Speed * factor
		limits = s.limits.Dot()
	}
	size, speed = limits.Clamp(size, speed)

	e.Kind = kind
	e.Pos = pos
	e.Dir = dir
	e.Speed = speed
	e.Size = size

	switch kind {
	case KindDot:
		e.Color = s.pickDotColor()
	case KindBomb:
		e.ExplosionRadius = size * bombBlastFactor
	}

	pool.Activate(e)
}

// pickDotColor uses the target color with probability correctColorRatio,
// otherwise picks uniformly from the palette excluding the target.
func (s *Spawner) pickDotColor() core.Color {
	target := s.targetColor()
	if s.rng.Float64() < s.cfg.CorrectColorRatio {
		return target
	}

	// Uniform pick over the palette minus the target.
	idx := s.rng.Intn(len(core.DotPalette) - 1)
	for _, c := range core.DotPalette {
		if c == target {
			continue
		}
		if idx == 0 {
			return c
		}
		idx--
	}
	return core.DotPalette[0]
}

// poolFor maps a kind to its owning pool.
func (s *Spawner) poolFor(kind Kind) *Pool {
	switch {
	case kind == KindBomb:
		return s.bombs
	case kind.IsPowerUp():
		return s.powerUps
	default:
		return s.dots
	}
}
