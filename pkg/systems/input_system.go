package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
	"github.com/gonewx/stroll/pkg/game"
	"github.com/gonewx/stroll/pkg/utils"
)

// InputSystem is the player controller: it turns keyboard, pointer/touch
// and programmatic control calls into velocity mutations on the player
// entity. Horizontal velocity is rewritten from scratch every tick; jump
// only fires while grounded.
//
// Pointer input takes precedence over the keyboard within a tick; the
// programmatic surface is consulted when neither is active, so on-screen
// button overlays behave exactly like held keys.
type InputSystem struct {
	em           *ecs.EntityManager
	session      *game.Session
	audioManager *game.AudioManager

	// Programmatic control state (MoveLeft/MoveRight/Jump/Stop).
	progLeft  bool
	progRight bool
	progJump  bool
}

// NewInputSystem creates the input system. audioManager may be nil (tests).
func NewInputSystem(em *ecs.EntityManager, session *game.Session, audioManager *game.AudioManager) *InputSystem {
	return &InputSystem{
		em:           em,
		session:      session,
		audioManager: audioManager,
	}
}

// MoveLeft starts leftward movement until Stop or an opposite call.
func (is *InputSystem) MoveLeft() {
	is.progLeft = true
	is.progRight = false
}

// MoveRight starts rightward movement until Stop or an opposite call.
func (is *InputSystem) MoveRight() {
	is.progRight = true
	is.progLeft = false
}

// Stop halts programmatic horizontal movement.
func (is *InputSystem) Stop() {
	is.progLeft = false
	is.progRight = false
}

// Jump queues a jump for the next tick. Ignored unless the player is
// grounded when the tick runs.
func (is *InputSystem) Jump() {
	is.progJump = true
}

// Update reads the input sources and mutates the player's velocity.
func (is *InputSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[
		*components.PlayerComponent,
		*components.VelocityComponent,
	](is.em)

	left, right, jump := is.readIntents()

	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](is.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](is.em, id)
		if player == nil || vel == nil {
			continue
		}

		// Fixed check order: left first, then right, so holding both
		// yields rightward motion.
		vel.VX = 0
		if left {
			vel.VX = -config.MoveSpeed
			player.FacingRight = false
		}
		if right {
			vel.VX = config.MoveSpeed
			player.FacingRight = true
		}

		if jump && player.Grounded {
			vel.VY = config.JumpImpulse
			if is.audioManager != nil {
				is.audioManager.PlaySound(game.SoundJump)
			}
		}
	}
}

// readIntents merges the input sources for this tick.
func (is *InputSystem) readIntents() (left, right, jump bool) {
	// Pointer/touch first; it is mutually exclusive with the keyboard.
	if pressed, x, y := utils.PointerState(); pressed {
		w := config.GameWindowWidth
		h := config.GameWindowHeight
		if x < w/3 {
			left = true
		} else if x > w*2/3 {
			right = true
		}
		if y < h/2 && utils.PointerJustPressed() {
			jump = true
		}
		jump = jump || is.consumeProgJump()
		return left, right, jump
	}

	left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	jump = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)

	// Programmatic surface fills in when keys are idle.
	if !left && !right {
		left = is.progLeft
		right = is.progRight
	}
	jump = jump || is.consumeProgJump()
	return left, right, jump
}

func (is *InputSystem) consumeProgJump() bool {
	j := is.progJump
	is.progJump = false
	return j
}
