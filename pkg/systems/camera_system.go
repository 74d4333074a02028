package systems

import (
	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
	"github.com/gonewx/stroll/pkg/game"
	"github.com/gonewx/stroll/pkg/utils"
)

// CameraSystem keeps the horizontal view offset tracking the player.
// The offset is low-pass filtered toward the follow target every tick and
// clamped to the world bounds; the smoothed value is written to the session
// so the render path and restart handling share it. No vertical movement.
type CameraSystem struct {
	em           *ecs.EntityManager
	session      *game.Session
	worldWidth   float64
	cameraEntity ecs.EntityID
}

// NewCameraSystem creates the camera system and its camera entity.
func NewCameraSystem(em *ecs.EntityManager, session *game.Session, worldWidth float64) *CameraSystem {
	cs := &CameraSystem{
		em:         em,
		session:    session,
		worldWidth: worldWidth,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Smoothing: config.CameraSmoothing,
	})

	return cs
}

// Update recomputes the follow target from the player position and eases
// the offset toward it.
func (cs *CameraSystem) Update(deltaTime float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.em, cs.cameraEntity)
	if !ok {
		return
	}

	players := ecs.GetEntitiesWith2[
		*components.PlayerComponent,
		*components.PositionComponent,
	](cs.em)
	if len(players) == 0 {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](cs.em, players[0])
	if !ok {
		return
	}

	camera.TargetX = pos.X - config.GameWindowWidth/2

	offset := cs.session.CameraX()
	offset += (camera.TargetX - offset) * camera.Smoothing
	offset = utils.Clamp(offset, 0, cs.worldWidth-config.GameWindowWidth)

	cs.session.SetCameraX(offset)
}
