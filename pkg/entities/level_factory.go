package entities

import (
	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
)

// Player collision box size in pixels.
const (
	PlayerWidth  = 28.0
	PlayerHeight = 44.0
)

// NewPlayer creates the player entity at the level's spawn point.
func NewPlayer(manager *ecs.EntityManager, spawnX, spawnY float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: spawnX,
		Y: spawnY,
	})
	manager.AddComponent(id, &components.VelocityComponent{})
	manager.AddComponent(id, &components.ColliderComponent{
		Width:  PlayerWidth,
		Height: PlayerHeight,
	})
	manager.AddComponent(id, &components.PlayerComponent{
		FacingRight: true,
		SpawnX:      spawnX,
		SpawnY:      spawnY,
	})

	return id
}

// NewPlatform creates a solid platform entity from the level table.
func NewPlatform(manager *ecs.EntityManager, cfg config.PlatformConfig) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: cfg.X,
		Y: cfg.Y,
	})
	manager.AddComponent(id, &components.ColliderComponent{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	manager.AddComponent(id, &components.PlatformComponent{
		Kind: components.PlatformKind(cfg.Kind),
	})

	return id
}

// NewCollectible creates a fact-card entity from the level table.
func NewCollectible(manager *ecs.EntityManager, cfg config.CollectibleConfig) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: cfg.X,
		Y: cfg.Y,
	})
	manager.AddComponent(id, &components.ColliderComponent{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	manager.AddComponent(id, &components.CollectibleComponent{
		ID:       cfg.ID,
		Category: components.CollectibleCategory(cfg.Category),
		Title:    cfg.Title,
		Message:  cfg.Message,
		Points:   cfg.Points,
	})

	return id
}

// BuildLevel creates the player, all platforms and all collectibles from
// the level table. Returns the player entity ID.
func BuildLevel(manager *ecs.EntityManager, level *config.LevelConfig) ecs.EntityID {
	playerID := NewPlayer(manager, level.SpawnX, level.SpawnY)
	for _, p := range level.Platforms {
		NewPlatform(manager, p)
	}
	for _, c := range level.Collectibles {
		NewCollectible(manager, c)
	}
	return playerID
}
