package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the dot-rush configuration.
// Search order: customPath -> ~/.dotrush/configs/dotrush.yaml ->
// ./configs/dotrush.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dotrush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dotrush.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a config file in the user's
// ~/.dotrush/configs directory, or empty string if home cannot be resolved.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dotrush", "configs", name)
}

// Validate fails fast on misconfiguration that would corrupt the
// simulation: non-positive capacities, inverted rate bounds, or
// probability weights outside [0, 1].
func (c Config) Validate() error {
	if c.Capacities.Dots <= 0 || c.Capacities.Bombs <= 0 || c.Capacities.PowerUps <= 0 {
		return fmt.Errorf("config: pool capacities must be positive, got dots=%d bombs=%d powerups=%d",
			c.Capacities.Dots, c.Capacities.Bombs, c.Capacities.PowerUps)
	}
	if c.Spawn.MinRateMs <= 0 || c.Spawn.MaxRateMs < c.Spawn.MinRateMs {
		return fmt.Errorf("config: spawn rate bounds inverted: min=%v max=%v",
			c.Spawn.MinRateMs, c.Spawn.MaxRateMs)
	}
	total := c.Spawn.BombChance + c.Spawn.SlowMoChance + c.Spawn.DoubleChance
	if c.Spawn.BombChance < 0 || c.Spawn.SlowMoChance < 0 || c.Spawn.DoubleChance < 0 || total > 1 {
		return fmt.Errorf("config: spawn chances must be non-negative and sum to at most 1, got %v", total)
	}
	if c.Spawn.CorrectColorRatio < 0 || c.Spawn.CorrectColorRatio > 1 {
		return fmt.Errorf("config: correct_color_ratio must be in [0,1], got %v", c.Spawn.CorrectColorRatio)
	}
	if c.Collision.Dampening <= 0 || c.Collision.Dampening > 1 {
		return fmt.Errorf("config: collision dampening must be in (0,1], got %v", c.Collision.Dampening)
	}
	return nil
}
