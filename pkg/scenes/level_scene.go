package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
	"github.com/gonewx/stroll/pkg/entities"
	"github.com/gonewx/stroll/pkg/game"
	"github.com/gonewx/stroll/pkg/systems"
	"github.com/gonewx/stroll/pkg/utils"
)

// LevelScene runs the actual platforming session. It owns the entity
// manager and all systems, and drives them in a fixed order each tick:
// input -> physics -> progress -> camera, then particles and the deferred
// entity removal. The render system reads the same state afterwards.
type LevelScene struct {
	level           *config.LevelConfig
	session         *game.Session
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager

	em       *ecs.EntityManager
	playerID ecs.EntityID

	inputSystem    *systems.InputSystem
	physicsSystem  *systems.PhysicsSystem
	progressSystem *systems.ProgressSystem
	cameraSystem   *systems.CameraSystem
	particleSystem *systems.ParticleSystem
	renderSystem   *systems.RenderSystem

	// Wall-clock animation time for the render pass. Never reset on
	// restart; it only feeds decorative motion.
	elapsed float64
}

// NewLevelScene builds the ECS world from the level table and wires every
// system. The session starts (or stays) in the ready phase.
func NewLevelScene(level *config.LevelConfig, session *game.Session, audioManager *game.AudioManager, settingsManager *game.SettingsManager) *LevelScene {
	s := &LevelScene{
		level:           level,
		session:         session,
		audioManager:    audioManager,
		settingsManager: settingsManager,
	}
	s.buildWorld()
	log.Printf("[LevelScene] level %q loaded: %d platforms, %d collectibles",
		level.Name, len(level.Platforms), len(level.Collectibles))
	return s
}

// buildWorld (re)creates the entity manager, entities and systems. Called
// at construction and on restart, so the collectible set is regenerated
// from the immutable level table.
func (s *LevelScene) buildWorld() {
	s.em = ecs.NewEntityManager()
	s.playerID = entities.BuildLevel(s.em, s.level)

	s.particleSystem = systems.NewParticleSystem()
	s.inputSystem = systems.NewInputSystem(s.em, s.session, s.audioManager)
	s.physicsSystem = systems.NewPhysicsSystem(s.em, s.session)
	s.progressSystem = systems.NewProgressSystem(s.em, s.session, s.audioManager, s.particleSystem)
	s.cameraSystem = systems.NewCameraSystem(s.em, s.session, s.level.WorldWidth)
	s.renderSystem = systems.NewRenderSystem(s.em, s.session, s.level, s.particleSystem)
}

// Controls returns the programmatic control surface, for on-screen button
// overlays.
func (s *LevelScene) Controls() *systems.InputSystem {
	return s.inputSystem
}

// Update advances the scene by one tick.
func (s *LevelScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	s.handleSessionKeys()

	if s.session.Phase() == game.PhasePlaying {
		s.inputSystem.Update(deltaTime)
		s.physicsSystem.Update(deltaTime)
		s.progressSystem.Update(deltaTime)
		s.cameraSystem.Update(deltaTime)
		s.emitRunDust()
		s.session.Advance(deltaTime)
	}

	// Particles are visual only and keep settling through ready/ended.
	s.particleSystem.Update(deltaTime)

	s.em.RemoveMarkedEntities()
}

// handleSessionKeys maps the UI-level inputs: start, restart, mute and
// message dismissal.
func (s *LevelScene) handleSessionKeys() {
	switch s.session.Phase() {
	case game.PhaseReady:
		clicked, _, _ := utils.IsJustTouchedOrClicked()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) || clicked {
			s.session.Start()
			if s.audioManager != nil {
				s.audioManager.StartMusic()
			}
		}
	case game.PhasePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyX) {
			s.session.DismissMessage()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.toggleMute()
	}
}

// restart resets the session and rebuilds the world from the level table.
func (s *LevelScene) restart() {
	log.Printf("[LevelScene] restart requested")
	s.session.Restart()
	s.buildWorld()
}

// toggleMute flips both audio switches together and persists the choice.
func (s *LevelScene) toggleMute() {
	if s.settingsManager == nil {
		return
	}
	enabled := !s.settingsManager.GetSettings().SoundEnabled
	s.settingsManager.SetSoundEnabled(enabled)
	s.settingsManager.SetMusicEnabled(enabled)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[LevelScene] Warning: failed to save settings: %v", err)
	}
	if s.audioManager != nil {
		s.audioManager.ApplySettings()
	}
}

// emitRunDust leaves a dust trail while the player runs on the ground.
func (s *LevelScene) emitRunDust() {
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, s.playerID)
	col, _ := ecs.GetComponent[*components.ColliderComponent](s.em, s.playerID)
	if player == nil || pos == nil || vel == nil || col == nil {
		return
	}
	if player.Grounded && vel.VX != 0 {
		s.particleSystem.EmitDust(pos.X+col.Width/2, pos.Y+col.Height)
	}
}

// Draw renders the frame plus the phase overlays.
func (s *LevelScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.elapsed)

	switch s.session.Phase() {
	case game.PhaseReady:
		ebitenutil.DebugPrintAt(screen, "Press Enter (or tap) to start walking",
			config.GameWindowWidth/2-140, config.GameWindowHeight/2-20)
		ebitenutil.DebugPrintAt(screen, "Arrows/WASD move, Space jumps, M mutes",
			config.GameWindowWidth/2-140, config.GameWindowHeight/2)
	case game.PhaseEnded:
		ebitenutil.DebugPrintAt(screen, "The end. Press R to walk again.",
			config.GameWindowWidth/2-110, config.GameWindowHeight/2-20)
	}
}
