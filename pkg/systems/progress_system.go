package systems

import (
	"image/color"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/ecs"
	"github.com/gonewx/stroll/pkg/game"
)

// CategoryColor returns the accent color of a collectible category, shared
// by pickup bursts and the collectible glow.
func CategoryColor(category components.CollectibleCategory) color.RGBA {
	switch category {
	case components.CategoryPersonality:
		return color.RGBA{R: 255, G: 170, B: 80, A: 255}
	case components.CategoryHobby:
		return color.RGBA{R: 120, G: 200, B: 255, A: 255}
	case components.CategoryBackground:
		return color.RGBA{R: 180, G: 140, B: 255, A: 255}
	case components.CategorySkill:
		return color.RGBA{R: 130, G: 230, B: 150, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// ProgressSystem checks the player against the remaining collectibles each
// tick and feeds pickups into the session. The session guarantees each id
// is accepted at most once; the entity is destroyed on acceptance so the
// remaining set shrinks monotonically until restart rebuilds it.
type ProgressSystem struct {
	em           *ecs.EntityManager
	session      *game.Session
	audioManager *game.AudioManager
	particles    *ParticleSystem
}

// NewProgressSystem creates the progress system. audioManager and
// particles may be nil (tests).
func NewProgressSystem(em *ecs.EntityManager, session *game.Session, audioManager *game.AudioManager, particles *ParticleSystem) *ProgressSystem {
	return &ProgressSystem{
		em:           em,
		session:      session,
		audioManager: audioManager,
		particles:    particles,
	}
}

// Update performs pickup detection. Only runs while the session is playing.
func (s *ProgressSystem) Update(deltaTime float64) {
	if s.session.Phase() != game.PhasePlaying {
		return
	}

	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.ColliderComponent,
	](s.em)
	if len(players) == 0 {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, players[0])
	playerCol, _ := ecs.GetComponent[*components.ColliderComponent](s.em, players[0])
	if playerPos == nil || playerCol == nil {
		return
	}

	items := ecs.GetEntitiesWith3[
		*components.CollectibleComponent,
		*components.PositionComponent,
		*components.ColliderComponent,
	](s.em)

	for _, id := range items {
		item, _ := ecs.GetComponent[*components.CollectibleComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](s.em, id)
		if item == nil || pos == nil || col == nil {
			continue
		}

		if !Overlaps(playerPos.X, playerPos.Y, playerCol.Width, playerCol.Height,
			pos.X, pos.Y, col.Width, col.Height) {
			continue
		}

		if !s.session.Collect(*item) {
			// Already collected (entity still pending removal this frame).
			continue
		}

		s.em.DestroyEntity(id)

		if s.particles != nil {
			s.particles.EmitBurst(pos.X+col.Width/2, pos.Y+col.Height/2, CategoryColor(item.Category), 14)
		}
		if s.audioManager != nil {
			s.audioManager.PlayPickupSound()
			if s.session.CollectedCount() == s.session.TotalItems() {
				s.audioManager.PlaySound(game.SoundWin)
			}
		}
	}
}
