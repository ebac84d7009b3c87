package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breach.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.TickRate != 8*time.Millisecond {
		t.Errorf("Expected tick rate 8ms, got %v", cfg.Engine.TickRate)
	}
	if cfg.Engine.IntentQueue != 64 {
		t.Errorf("Expected queue 64, got %d", cfg.Engine.IntentQueue)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.3 {
		t.Errorf("Expected audio on at 0.3, got %v at %v", cfg.Audio.Enabled, cfg.Audio.Volume)
	}
	if cfg.Logging.Path != "logs/breach.log" {
		t.Errorf("Expected default log path, got %q", cfg.Logging.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[engine]
tick_rate = "16ms"

[player]
health = 50
blink_range = 6.0

[audio]
enabled = false
volume = 4.0

[level]
path = "levels/custom.yaml"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.TickRate != 16*time.Millisecond {
		t.Errorf("Expected tick rate 16ms, got %v", cfg.Engine.TickRate)
	}
	if cfg.Engine.IntentQueue != 64 {
		t.Errorf("Expected unset queue to keep default, got %d", cfg.Engine.IntentQueue)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.Volume)
	}
	if cfg.Level.Path != "levels/custom.yaml" {
		t.Errorf("Expected level path override, got %q", cfg.Level.Path)
	}

	stats := cfg.PlayerStats()
	if stats.Health != 50 || stats.BlinkRange != 6 {
		t.Errorf("Expected health 50 range 6, got %d and %v", stats.Health, stats.BlinkRange)
	}
	if stats.BlinkCooldown != 90 {
		t.Errorf("Expected default cooldown 90, got %d", stats.BlinkCooldown)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
[engine]
intent_queue = 0

[player]
health = -1
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"intent_queue", "player.health"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestLoadRejectsNegativePlayerStats(t *testing.T) {
	path := writeConfig(t, `
[player]
fov = -5
blink_cooldown = -1
blink_range = -3
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"player.fov", "player.blink_cooldown", "player.blink_range"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestValidateAllowsZeroPlayerStats(t *testing.T) {
	cfg := defaults()
	cfg.Player.FOV = 0
	cfg.Player.BlinkCooldown = 0
	cfg.Player.BlinkRange = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected zero fov, cooldown and range accepted, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "[engine\ntick_rate = ")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}
