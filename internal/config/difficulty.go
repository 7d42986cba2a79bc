package config

import "math"

// Metrics is the output of the difficulty curve at one point in time.
type Metrics struct {
	Speed float64 // Base entity speed in cells per second
	Size  float64 // Base entity diameter in cells
}

// DifficultyModel calculates the time-based speed/size ramp.
// The simulation consumes it as a black box: it never inspects the curve,
// only the metrics at the current elapsed time.
type DifficultyModel struct {
	cfg DifficultyConfig
}

// NewDifficultyModel creates a difficulty model from configuration.
func NewDifficultyModel(cfg DifficultyConfig) *DifficultyModel {
	return &DifficultyModel{cfg: cfg}
}

// Level returns progression through the ramp in [0, 1].
func (d *DifficultyModel) Level(elapsedSecs float64) float64 {
	ramp := d.cfg.RampSecs
	if ramp <= 0 {
		ramp = 1 // Prevent division by zero
	}
	return clampF(elapsedSecs/ramp, 0, 1)
}

// Metrics returns the base speed and size for the given elapsed time.
// Speed grows and size shrinks as the session progresses.
func (d *DifficultyModel) Metrics(elapsedSecs float64) Metrics {
	level := d.Level(elapsedSecs)
	return Metrics{
		Speed: d.cfg.BaseSpeed * (1 + level*d.cfg.SpeedGain),
		Size:  d.cfg.BaseSize * (1 - level*d.cfg.SizeShrink),
	}
}

// ResponsiveSize scales the difficulty-supplied size to the actual
// viewport, so entities keep a comparable share of small and large
// screens. The result is not clamped; per-kind limits apply downstream.
func (d *DifficultyModel) ResponsiveSize(elapsedSecs, viewportW, viewportH float64) float64 {
	size := d.Metrics(elapsedSecs).Size
	refMin := math.Min(d.cfg.ReferenceW, d.cfg.ReferenceH)
	if refMin <= 0 {
		return size
	}
	scale := math.Min(viewportW, viewportH) / refMin
	return size * scale
}

// GameLimits exposes per-kind clamps and the time-based bomb admission
// ceiling.
type GameLimits struct {
	cfg LimitsConfig
}

// NewGameLimits creates limits from configuration.
func NewGameLimits(cfg LimitsConfig) *GameLimits {
	return &GameLimits{cfg: cfg}
}

// Dot returns the clamps for dots.
func (g *GameLimits) Dot() KindLimits { return g.cfg.Dot }

// Bomb returns the clamps for bombs.
func (g *GameLimits) Bomb() KindLimits { return g.cfg.Bomb }

// PowerUp returns the clamps for power-ups.
func (g *GameLimits) PowerUp() KindLimits { return g.cfg.PowerUp }

// BombCap returns the bomb admission ceiling for the given elapsed time.
// The cap starts at the configured base and gains one slot every step
// interval, monotonically non-decreasing, saturating at the configured max.
func (g *GameLimits) BombCap(elapsedSecs float64) int {
	limit := g.cfg.BombCapBase
	if g.cfg.BombCapStepSecs > 0 && elapsedSecs > 0 {
		limit += int(elapsedSecs / g.cfg.BombCapStepSecs)
	}
	if g.cfg.BombCapMax > 0 && limit > g.cfg.BombCapMax {
		limit = g.cfg.BombCapMax
	}
	return limit
}

// Clamp applies the limits to a proposed size and speed.
func (k KindLimits) Clamp(size, speed float64) (float64, float64) {
	if k.MinSize > 0 && size < k.MinSize {
		size = k.MinSize
	}
	if k.MaxSize > 0 && size > k.MaxSize {
		size = k.MaxSize
	}
	if k.MaxSpeed > 0 && speed > k.MaxSpeed {
		speed = k.MaxSpeed
	}
	return size, speed
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
