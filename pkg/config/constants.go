package config

// Window dimensions (logical pixels, independent of the actual window size).
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// Simulation tuning. Velocities are in pixels per tick at 60 ticks per
// second, matching the discrete integration in the physics system.
const (
	Gravity     = 0.8   // added to VY every tick before integration
	MoveSpeed   = 5.0   // horizontal speed while a direction is held
	JumpImpulse = -15.0 // VY set on jump (negative = up)

	// Falling below GameWindowHeight+FallRespawnMargin teleports the player
	// back to spawn without touching score or progress.
	FallRespawnMargin = 100.0
)

// Camera tuning.
const (
	CameraSmoothing = 0.1 // low-pass factor toward the follow target
)

// Session timing (seconds).
const (
	MessageDuration = 4.0 // collectible message auto-clear delay
	EndGameDelay    = 3.0 // congratulation display before phase -> ended
)

// Particle pool size. The pool is allocated once; sustained play never
// allocates per frame.
const MaxParticles = 256
