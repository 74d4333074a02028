package entities

import (
	"testing"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
)

func TestNewPlayerComponents(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewPlayer(em, 100, 400)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 100 || pos.Y != 400 {
		t.Errorf("position = %+v, want (100, 400)", pos)
	}

	col, ok := ecs.GetComponent[*components.ColliderComponent](em, id)
	if !ok || col.Width != PlayerWidth || col.Height != PlayerHeight {
		t.Errorf("collider = %+v, want %vx%v", col, PlayerWidth, PlayerHeight)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("player component missing")
	}
	if player.SpawnX != 100 || player.SpawnY != 400 {
		t.Errorf("spawn = (%v, %v), want (100, 400)", player.SpawnX, player.SpawnY)
	}
	if !player.FacingRight {
		t.Error("player should start facing right")
	}
	if player.Grounded {
		t.Error("player should start airborne until physics settles it")
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok || vel.VX != 0 || vel.VY != 0 {
		t.Errorf("velocity = %+v, want zero", vel)
	}
}

func TestNewCollectibleCarriesCardData(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewCollectible(em, config.CollectibleConfig{
		ID: "card", X: 10, Y: 20, Width: 24, Height: 24,
		Category: "skill", Title: "Title", Message: "Message", Points: 15,
	})

	item, ok := ecs.GetComponent[*components.CollectibleComponent](em, id)
	if !ok {
		t.Fatal("collectible component missing")
	}
	if item.ID != "card" || item.Category != components.CategorySkill ||
		item.Title != "Title" || item.Message != "Message" || item.Points != 15 {
		t.Errorf("collectible = %+v", item)
	}
}

func TestBuildLevelPopulatesWorld(t *testing.T) {
	level := &config.LevelConfig{
		Name:       "build",
		WorldWidth: 1600,
		SpawnX:     100,
		SpawnY:     400,
		Platforms: []config.PlatformConfig{
			{X: 0, Y: 520, Width: 1600, Height: 80, Kind: "ground"},
			{X: 400, Y: 420, Width: 140, Height: 20, Kind: "platform"},
			{X: 900, Y: 440, Width: 26, Height: 80, Kind: "tree"},
		},
		Collectibles: []config.CollectibleConfig{
			{ID: "a", X: 200, Y: 470, Width: 24, Height: 24, Category: "hobby"},
			{ID: "b", X: 600, Y: 470, Width: 24, Height: 24, Category: "skill"},
		},
	}

	em := ecs.NewEntityManager()
	playerID := BuildLevel(em, level)

	if !em.EntityExists(playerID) {
		t.Fatal("player entity missing")
	}
	if got := len(ecs.GetEntitiesWith1[*components.PlatformComponent](em)); got != 3 {
		t.Errorf("platform entities = %d, want 3", got)
	}
	if got := len(ecs.GetEntitiesWith1[*components.CollectibleComponent](em)); got != 2 {
		t.Errorf("collectible entities = %d, want 2", got)
	}

	// Platform kinds come through as typed values.
	platforms := ecs.GetEntitiesWith1[*components.PlatformComponent](em)
	kinds := make(map[components.PlatformKind]int)
	for _, id := range platforms {
		p, _ := ecs.GetComponent[*components.PlatformComponent](em, id)
		kinds[p.Kind]++
	}
	if kinds[components.PlatformGround] != 1 || kinds[components.PlatformTree] != 1 {
		t.Errorf("platform kinds = %v", kinds)
	}
}
