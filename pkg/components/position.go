package components

// PositionComponent stores an entity's top-left corner in world coordinates.
type PositionComponent struct {
	X float64
	Y float64
}
