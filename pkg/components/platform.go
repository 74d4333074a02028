package components

// PlatformKind selects the visual style of a platform. All kinds collide
// identically; the kind is a render hint only.
type PlatformKind string

const (
	PlatformGround   PlatformKind = "ground"
	PlatformElevated PlatformKind = "platform"
	PlatformLandmark PlatformKind = "landmark"
	PlatformTree     PlatformKind = "tree"
)

// PlatformComponent marks an entity as a solid, immutable collision surface.
type PlatformComponent struct {
	Kind PlatformKind
}
