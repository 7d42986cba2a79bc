package dotrush

import (
	"github.com/vovakirdan/dot-rush/internal/config"
	"github.com/vovakirdan/dot-rush/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// baseConfig resolves the shared tuning all modes build on. A broken
// custom file falls back to the compiled defaults; the CLI validates
// explicit --config paths before the game starts.
func baseConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// classicConfig is the stock experience: bombs, power-ups, and the full
// difficulty ramp.
func classicConfig() config.Config {
	return baseConfig()
}

// zenConfig removes bombs and slows the ramp for a relaxed session. The
// freed probability mass goes to power-ups.
func zenConfig() config.Config {
	cfg := baseConfig()
	cfg.Spawn.BombChance = 0
	cfg.Spawn.SlowMoChance = 0.06
	cfg.Spawn.DoubleChance = 0.06
	cfg.Spawn.IntensityFactor = 0.3
	cfg.Difficulty.SpeedGain = 0.6
	cfg.Difficulty.RampSecs = 180
	return cfg
}

// rushConfig is the sweaty variant: tighter spawn windows, more bombs,
// a single life.
func rushConfig() config.Config {
	cfg := baseConfig()
	cfg.Spawn.MinRateMs = 200
	cfg.Spawn.MaxRateMs = 550
	cfg.Spawn.MinGapMs = 80
	cfg.Spawn.IntensityFactor = 0.7
	cfg.Spawn.BombChance = 0.2
	cfg.Difficulty.RampSecs = 45
	cfg.Gameplay.Lives = 1
	return cfg
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New("classic", "Dot Rush", classicConfig)
	})
	registry.Register("zen", func() registry.Game {
		return New("zen", "Dot Rush: Zen", zenConfig)
	})
	registry.Register("rush", func() registry.Game {
		return New("rush", "Dot Rush: Rush Hour", rushConfig)
	})
}
