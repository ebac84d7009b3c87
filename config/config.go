// Package config loads the TOML configuration for breach.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/breach/entity"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Player  PlayerConfig  `toml:"player"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Level   LevelConfig   `toml:"level"`
}

type EngineConfig struct {
	TickRate    time.Duration `toml:"tick_rate"`
	IntentQueue int           `toml:"intent_queue"` // pending intents before new ones are dropped
}

type PlayerConfig struct {
	Health        int     `toml:"health"`
	FOV           float64 `toml:"fov"`
	BlinkCooldown int     `toml:"blink_cooldown"` // ticks
	BlinkRange    float64 `toml:"blink_range"`    // columns
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Path   string `toml:"path"`
}

type LevelConfig struct {
	Path string `toml:"path"` // empty selects the built-in arena
}

// Load reads path over the defaults. An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Audio.Volume = min(max(cfg.Audio.Volume, 0), 1)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Engine.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("engine.tick_rate must be positive, got %v", c.Engine.TickRate))
	}
	if c.Engine.IntentQueue <= 0 {
		errs = append(errs, fmt.Errorf("engine.intent_queue must be positive, got %d", c.Engine.IntentQueue))
	}
	if c.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be positive, got %d", c.Player.Health))
	}
	if c.Player.FOV < 0 {
		errs = append(errs, fmt.Errorf("player.fov must not be negative, got %v", c.Player.FOV))
	}
	if c.Player.BlinkCooldown < 0 {
		errs = append(errs, fmt.Errorf("player.blink_cooldown must not be negative, got %d", c.Player.BlinkCooldown))
	}
	if c.Player.BlinkRange < 0 {
		errs = append(errs, fmt.Errorf("player.blink_range must not be negative, got %v", c.Player.BlinkRange))
	}
	return errors.Join(errs...)
}

// PlayerStats converts the player section for entity construction
func (c *Config) PlayerStats() entity.PlayerStats {
	return entity.PlayerStats{
		Health:        c.Player.Health,
		FOV:           c.Player.FOV,
		BlinkCooldown: c.Player.BlinkCooldown,
		BlinkRange:    c.Player.BlinkRange,
	}
}

func defaults() *Config {
	stats := entity.DefaultPlayerStats()
	return &Config{
		Engine: EngineConfig{
			TickRate:    8 * time.Millisecond,
			IntentQueue: 64,
		},
		Player: PlayerConfig{
			Health:        stats.Health,
			FOV:           stats.FOV,
			BlinkCooldown: stats.BlinkCooldown,
			BlinkRange:    stats.BlinkRange,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Path:   "logs/breach.log",
		},
	}
}
