package systems

import (
	"testing"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
	"github.com/gonewx/stroll/pkg/entities"
	"github.com/gonewx/stroll/pkg/game"
)

func newProgressWorld(t *testing.T, items ...config.CollectibleConfig) (*ecs.EntityManager, *game.Session, *ProgressSystem, ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	playerID := entities.NewPlayer(em, 100, 400)
	for _, c := range items {
		entities.NewCollectible(em, c)
	}
	session := game.NewSession(len(items))
	session.Start()
	sys := NewProgressSystem(em, session, nil, NewParticleSystem())
	return em, session, sys, playerID
}

func itemAt(id string, x, y float64, points int) config.CollectibleConfig {
	return config.CollectibleConfig{
		ID: id, X: x, Y: y, Width: 24, Height: 24,
		Category: "hobby", Title: "t-" + id, Message: "m-" + id, Points: points,
	}
}

func TestPickupOnOverlap(t *testing.T) {
	// One item on the player, one far away.
	em, session, sys, _ := newProgressWorld(t,
		itemAt("near", 105, 410, 10),
		itemAt("far", 2000, 410, 10),
	)

	sys.Update(tick)
	em.RemoveMarkedEntities()

	if got := session.CollectedCount(); got != 1 {
		t.Fatalf("collected = %d, want 1", got)
	}
	if !session.IsCollected("near") {
		t.Error("near item not collected")
	}
	if session.IsCollected("far") {
		t.Error("far item collected without overlap")
	}
	if got := session.Score(); got != 10 {
		t.Errorf("score = %d, want 10", got)
	}

	remaining := ecs.GetEntitiesWith1[*components.CollectibleComponent](em)
	if len(remaining) != 1 {
		t.Errorf("remaining collectible entities = %d, want 1", len(remaining))
	}
}

func TestPickupSetsMessage(t *testing.T) {
	_, session, sys, _ := newProgressWorld(t, itemAt("a", 105, 410, 10))

	sys.Update(tick)

	title, text := session.Message()
	if title != "t-a" || text != "m-a" {
		t.Errorf("message = (%q, %q), want (t-a, m-a)", title, text)
	}
}

func TestPickupNotDoubleCountedBeforeRemoval(t *testing.T) {
	em, session, sys, _ := newProgressWorld(t, itemAt("a", 105, 410, 10))

	// Two updates before the deferred removal runs: the entity still exists
	// on the second pass but the session rejects the duplicate id.
	sys.Update(tick)
	sys.Update(tick)
	em.RemoveMarkedEntities()

	if got := session.Score(); got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
	if got := session.CollectedCount(); got != 1 {
		t.Errorf("collected = %d, want 1", got)
	}
}

func TestNoPickupWhileSessionNotPlaying(t *testing.T) {
	em := ecs.NewEntityManager()
	entities.NewPlayer(em, 100, 400)
	entities.NewCollectible(em, itemAt("a", 105, 410, 10))
	session := game.NewSession(1) // stays ready
	sys := NewProgressSystem(em, session, nil, nil)

	sys.Update(tick)
	em.RemoveMarkedEntities()

	if got := session.CollectedCount(); got != 0 {
		t.Errorf("collected = %d in ready phase, want 0", got)
	}
	if got := len(ecs.GetEntitiesWith1[*components.CollectibleComponent](em)); got != 1 {
		t.Errorf("collectible entities = %d, want 1 untouched", got)
	}
}

func TestCollectingAllTriggersWinPath(t *testing.T) {
	em, session, sys, playerID := newProgressWorld(t,
		itemAt("a", 105, 410, 10),
		itemAt("b", 500, 410, 15),
	)

	sys.Update(tick)
	em.RemoveMarkedEntities()

	// Move the player onto the second item.
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	pos.X = 495

	sys.Update(tick)
	em.RemoveMarkedEntities()

	if got := session.Score(); got != 25 {
		t.Errorf("score = %d, want 25", got)
	}
	if title, _ := session.Message(); title != "That's everything!" {
		t.Errorf("final message title = %q", title)
	}
	session.Advance(config.EndGameDelay + 0.1)
	if got := session.Phase(); got != game.PhaseEnded {
		t.Errorf("phase = %v, want ended", got)
	}
}

func TestCategoryColorsAreDistinct(t *testing.T) {
	categories := []components.CollectibleCategory{
		components.CategoryPersonality,
		components.CategoryHobby,
		components.CategoryBackground,
		components.CategorySkill,
	}
	seen := make(map[[4]uint8]components.CollectibleCategory)
	for _, c := range categories {
		clr := CategoryColor(c)
		key := [4]uint8{clr.R, clr.G, clr.B, clr.A}
		if prev, dup := seen[key]; dup {
			t.Errorf("categories %q and %q share color %v", prev, c, clr)
		}
		seen[key] = c
	}
}
