package config

import (
	_ "embed"
)

//go:embed defaults/dotrush.yaml
var defaultYAML []byte

// Default returns the default dot-rush configuration, tuned for an
// 80x24 terminal at 60 ticks per second.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			MinRateMs:         350,
			MaxRateMs:         900,
			MinGapMs:          120,
			IntensityRampSecs: 60,
			IntensityFactor:   0.6,
			BombChance:        0.12,
			SlowMoChance:      0.04,
			DoubleChance:      0.04,
			CorrectColorRatio: 0.45,
			EdgeMargin:        2,
		},
		Collision: CollisionConfig{
			Buffer:            0.05,
			Dampening:         0.7,
			MinSeparation:     0.05,
			DotCooldownMs:     100,
			PowerUpCooldownMs: 500,
			OffscreenMargin:   4,
		},
		Capacities: CapacityConfig{
			Dots:     50,
			Bombs:    20,
			PowerUps: 10,
		},
		Limits: LimitsConfig{
			Dot:     KindLimits{MinSize: 1, MaxSize: 3, MaxSpeed: 30},
			Bomb:    KindLimits{MinSize: 1, MaxSize: 3, MaxSpeed: 20},
			PowerUp: KindLimits{MinSize: 1, MaxSize: 3, MaxSpeed: 15},

			BombCapBase:     2,
			BombCapMax:      20,
			BombCapStepSecs: 15,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			SlowMoDurationMs:  5000,
			SlowMoFactor:      0.5,
			DoubleDurationMs:  7000,
			PowerUpLifetimeMs: 12000,
			CullMargin:        3,
			TargetSwitchTaps:  5,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:  6,
			SpeedGain:  1.2,
			BaseSize:   2,
			SizeShrink: 0.4,
			RampSecs:   90,
			ReferenceW: 80,
			ReferenceH: 24,
		},
	}
}
