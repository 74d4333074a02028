package components

// PlayerComponent marks the player entity and stores its movement state.
// Grounded is recomputed by the physics system every tick; jump input is
// only honored while it is true.
type PlayerComponent struct {
	Grounded    bool
	FacingRight bool

	// Respawn point, used when the player falls off the world.
	SpawnX float64
	SpawnY float64
}
