package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelConfig is the static level table: world dimensions, spawn point and
// the platform/collectible layout. It is immutable after load; a session
// restart re-reads nothing and rebuilds entities from this struct.
type LevelConfig struct {
	Name        string  `yaml:"name"`        // level display name
	WorldWidth  float64 `yaml:"worldWidth"`  // world width in pixels
	WorldHeight float64 `yaml:"worldHeight"` // world height in pixels, defaults to window height
	SpawnX      float64 `yaml:"spawnX"`      // player spawn, top-left
	SpawnY      float64 `yaml:"spawnY"`

	Platforms    []PlatformConfig    `yaml:"platforms"`
	Collectibles []CollectibleConfig `yaml:"collectibles"`
}

// PlatformConfig describes one solid rectangle.
type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Kind   string  `yaml:"kind"` // "ground", "platform", "landmark", "tree"
}

// CollectibleConfig describes one biographical fact card.
type CollectibleConfig struct {
	ID       string  `yaml:"id"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Category string  `yaml:"category"` // "personality", "hobby", "background", "skill"
	Title    string  `yaml:"title"`
	Message  string  `yaml:"message"`
	Points   int     `yaml:"points"`
}

// LoadLevelConfig loads and validates a level table from a YAML file.
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseLevelConfig parses and validates a level table from YAML bytes.
// Used for the embedded default level.
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateLevelConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills optional fields so older level files keep loading.
func applyDefaults(cfg *LevelConfig) {
	if cfg.WorldHeight == 0 {
		cfg.WorldHeight = GameWindowHeight
	}
	for i := range cfg.Platforms {
		if cfg.Platforms[i].Kind == "" {
			cfg.Platforms[i].Kind = "platform"
		}
	}
	for i := range cfg.Collectibles {
		if cfg.Collectibles[i].Width == 0 {
			cfg.Collectibles[i].Width = 24
		}
		if cfg.Collectibles[i].Height == 0 {
			cfg.Collectibles[i].Height = 24
		}
		if cfg.Collectibles[i].Points == 0 {
			cfg.Collectibles[i].Points = 10
		}
	}
}

var validPlatformKinds = map[string]bool{
	"ground":   true,
	"platform": true,
	"landmark": true,
	"tree":     true,
}

var validCategories = map[string]bool{
	"personality": true,
	"hobby":       true,
	"background":  true,
	"skill":       true,
}

// validateLevelConfig fails fast on malformed level data so the simulation
// never starts from degenerate rectangles.
func validateLevelConfig(cfg *LevelConfig) error {
	if cfg.WorldWidth < GameWindowWidth {
		return fmt.Errorf("worldWidth %.0f is smaller than the viewport width %d", cfg.WorldWidth, GameWindowWidth)
	}
	if len(cfg.Platforms) == 0 {
		return fmt.Errorf("level has no platforms")
	}

	for i, p := range cfg.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d has degenerate size %.0fx%.0f", i, p.Width, p.Height)
		}
		if !validPlatformKinds[p.Kind] {
			return fmt.Errorf("platform %d has unknown kind %q", i, p.Kind)
		}
	}

	seen := make(map[string]bool)
	for i, c := range cfg.Collectibles {
		if c.ID == "" {
			return fmt.Errorf("collectible %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate collectible id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("collectible %q has degenerate size %.0fx%.0f", c.ID, c.Width, c.Height)
		}
		if !validCategories[c.Category] {
			return fmt.Errorf("collectible %q has unknown category %q", c.ID, c.Category)
		}
	}

	if !hasGroundUnderSpawn(cfg) {
		return fmt.Errorf("no ground platform under spawn point (%.0f, %.0f)", cfg.SpawnX, cfg.SpawnY)
	}
	return nil
}

// hasGroundUnderSpawn checks that some platform lies below the spawn point
// within its horizontal span, so a fresh session does not immediately fall
// off the world.
func hasGroundUnderSpawn(cfg *LevelConfig) bool {
	for _, p := range cfg.Platforms {
		if cfg.SpawnX >= p.X && cfg.SpawnX <= p.X+p.Width && p.Y >= cfg.SpawnY {
			return true
		}
	}
	return false
}
