package components

// ColliderComponent defines an entity's axis-aligned collision box.
// The box's top-left corner coincides with the entity's PositionComponent.
type ColliderComponent struct {
	Width  float64 // box width in pixels
	Height float64 // box height in pixels
}
