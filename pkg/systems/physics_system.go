package systems

import (
	"log"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
	"github.com/gonewx/stroll/pkg/game"
)

// Overlaps is the standard AABB test: rectangles overlap iff both axis
// intervals intersect. Touching edges do not count as overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// PhysicsSystem applies gravity, integrates motion and resolves the player
// against platforms. Discrete collision only; velocities are bounded well
// below platform thickness, so no tunneling correction is needed.
type PhysicsSystem struct {
	em      *ecs.EntityManager
	session *game.Session
}

// NewPhysicsSystem creates the physics system.
func NewPhysicsSystem(em *ecs.EntityManager, session *game.Session) *PhysicsSystem {
	return &PhysicsSystem{
		em:      em,
		session: session,
	}
}

// Update advances the player one tick: gravity, integration, collision
// resolution and the fall-off-world respawn rule.
func (ps *PhysicsSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](ps.em)

	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](ps.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		col, ok := ecs.GetComponent[*components.ColliderComponent](ps.em, id)
		if player == nil || pos == nil || vel == nil || !ok {
			continue
		}

		ps.step(player, pos, vel, col)
	}
}

// step runs one simulation tick for a single player entity.
func (ps *PhysicsSystem) step(
	player *components.PlayerComponent,
	pos *components.PositionComponent,
	vel *components.VelocityComponent,
	col *components.ColliderComponent,
) {
	// Gravity is applied before integration; grounded is recomputed from
	// scratch so leaving a platform immediately becomes airborne.
	vel.VY += config.Gravity
	player.Grounded = false

	preTop := pos.Y
	pos.X += vel.VX
	pos.Y += vel.VY

	ps.resolveCollisions(player, pos, vel, col, preTop)

	// Fell off the world: teleport back to spawn with zeroed velocity.
	// Score and collected items are untouched; this is recovery, not reset.
	if ps.session.Phase() == game.PhasePlaying &&
		pos.Y > config.GameWindowHeight+config.FallRespawnMargin {
		log.Printf("[Physics] player fell off the world, respawning at (%.0f, %.0f)", player.SpawnX, player.SpawnY)
		pos.X = player.SpawnX
		pos.Y = player.SpawnY
		vel.VX = 0
		vel.VY = 0
	}
}

// resolveCollisions pushes the player out of every overlapping platform.
// Vertical rules take precedence over the horizontal push so that corner
// contacts feel like landings, not wall hits.
func (ps *PhysicsSystem) resolveCollisions(
	player *components.PlayerComponent,
	pos *components.PositionComponent,
	vel *components.VelocityComponent,
	col *components.ColliderComponent,
	preTop float64,
) {
	platforms := ecs.GetEntitiesWith3[
		*components.PlatformComponent,
		*components.PositionComponent,
		*components.ColliderComponent,
	](ps.em)

	for _, platID := range platforms {
		platPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, platID)
		platCol, _ := ecs.GetComponent[*components.ColliderComponent](ps.em, platID)
		if platPos == nil || platCol == nil {
			continue
		}

		if !Overlaps(pos.X, pos.Y, col.Width, col.Height,
			platPos.X, platPos.Y, platCol.Width, platCol.Height) {
			continue
		}

		switch {
		case vel.VY > 0 && preTop < platPos.Y:
			// Falling onto the platform: land on top.
			pos.Y = platPos.Y - col.Height
			vel.VY = 0
			player.Grounded = true

		case vel.VY < 0 && preTop > platPos.Y:
			// Rising into the platform: ceiling bump.
			pos.Y = platPos.Y + platCol.Height
			vel.VY = 0

		case vel.VX > 0:
			pos.X = platPos.X - col.Width
			vel.VX = 0

		case vel.VX < 0:
			pos.X = platPos.X + platCol.Width
			vel.VX = 0
		}
	}
}
