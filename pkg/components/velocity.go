package components

// VelocityComponent stores an entity's velocity in pixels per tick.
type VelocityComponent struct {
	VX float64
	VY float64
}
