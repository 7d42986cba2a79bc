// Package config provides YAML-based game configuration loading and
// difficulty management for dot-rush.
package config

// Config contains all tunable parameters for a dot-rush session.
type Config struct {
	Spawn      SpawnConfig      `yaml:"spawn"`
	Collision  CollisionConfig  `yaml:"collision"`
	Capacities CapacityConfig   `yaml:"capacities"`
	Limits     LimitsConfig     `yaml:"limits"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpawnConfig defines spawn timing and admission probabilities.
type SpawnConfig struct {
	MinRateMs         float64 `yaml:"min_rate_ms"`         // Lower bound for the re-drawn spawn delay
	MaxRateMs         float64 `yaml:"max_rate_ms"`         // Upper bound for the re-drawn spawn delay
	MinGapMs          float64 `yaml:"min_gap_ms"`          // Absolute floor between two spawns
	IntensityRampSecs float64 `yaml:"intensity_ramp_secs"` // Elapsed time at which the delay shrink maxes out
	IntensityFactor   float64 `yaml:"intensity_factor"`    // Max fraction shaved off the delay at full ramp
	BombChance        float64 `yaml:"bomb_chance"`         // P(bomb) per spawn roll
	SlowMoChance      float64 `yaml:"slowmo_chance"`       // P(slow-mo power-up) per spawn roll
	DoubleChance      float64 `yaml:"double_chance"`       // P(double-score power-up) per spawn roll
	CorrectColorRatio float64 `yaml:"correct_color_ratio"` // P(dot spawns in the current target color)
	EdgeMargin        float64 `yaml:"edge_margin"`         // Distance outside the viewport entities spawn at
}

// CollisionConfig defines collision detection and response parameters.
type CollisionConfig struct {
	Buffer            float64 `yaml:"buffer"`              // Overlap slack damping float-precision false positives
	Dampening         float64 `yaml:"dampening"`           // Fraction of the overlap used for positional correction
	MinSeparation     float64 `yaml:"min_separation"`      // Separation floor applied even for tiny overlaps
	DotCooldownMs     float64 `yaml:"dot_cooldown_ms"`     // Per-entity cooldown for dot-dot pairs
	PowerUpCooldownMs float64 `yaml:"powerup_cooldown_ms"` // Per-entity cooldown for pairs involving a power-up
	OffscreenMargin   float64 `yaml:"offscreen_margin"`    // Cheap-reject margin beyond the viewport
}

// CapacityConfig fixes the per-kind pool capacities.
type CapacityConfig struct {
	Dots     int `yaml:"dots"`
	Bombs    int `yaml:"bombs"`
	PowerUps int `yaml:"powerups"`
}

// KindLimits clamps size and speed for one entity kind.
type KindLimits struct {
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// LimitsConfig holds per-kind clamps plus the time-based bomb admission
// ceiling.
type LimitsConfig struct {
	Dot     KindLimits `yaml:"dot"`
	Bomb    KindLimits `yaml:"bomb"`
	PowerUp KindLimits `yaml:"powerup"`

	BombCapBase     int     `yaml:"bomb_cap_base"`      // Bomb cap at session start
	BombCapMax      int     `yaml:"bomb_cap_max"`       // Bomb cap once fully ramped
	BombCapStepSecs float64 `yaml:"bomb_cap_step_secs"` // Seconds per +1 cap step
}

// GameplayConfig defines session rules outside the simulation core.
type GameplayConfig struct {
	Lives             int     `yaml:"lives"`
	SlowMoDurationMs  float64 `yaml:"slowmo_duration_ms"`
	SlowMoFactor      float64 `yaml:"slowmo_factor"`
	DoubleDurationMs  float64 `yaml:"double_duration_ms"`
	PowerUpLifetimeMs float64 `yaml:"powerup_lifetime_ms"` // Active lifetime before auto-release
	CullMargin        float64 `yaml:"cull_margin"`         // Off-screen distance before an entity is culled
	TargetSwitchTaps  int     `yaml:"target_switch_taps"`  // Correct taps before the target color rotates
}

// DifficultyConfig defines the time-based speed/size ramp.
type DifficultyConfig struct {
	BaseSpeed  float64 `yaml:"base_speed"`  // Cells per second at session start
	SpeedGain  float64 `yaml:"speed_gain"`  // Multiplier added at full ramp (1.0 = double)
	BaseSize   float64 `yaml:"base_size"`   // Entity diameter in cells at session start
	SizeShrink float64 `yaml:"size_shrink"` // Fraction removed from size at full ramp
	RampSecs   float64 `yaml:"ramp_secs"`   // Elapsed seconds at which the ramp maxes out
	ReferenceW float64 `yaml:"reference_w"` // Viewport width the base size is tuned for
	ReferenceH float64 `yaml:"reference_h"` // Viewport height the base size is tuned for
}
