package components

// CollectibleCategory groups collectibles for icon and color selection.
type CollectibleCategory string

const (
	CategoryPersonality CollectibleCategory = "personality"
	CategoryHobby       CollectibleCategory = "hobby"
	CategoryBackground  CollectibleCategory = "background"
	CategorySkill       CollectibleCategory = "skill"
)

// CollectibleComponent is a biographical fact card placed in the level.
// The entity is destroyed on first pickup and never recreated within a
// session; a restart rebuilds the full set from the level table.
type CollectibleComponent struct {
	ID       string
	Category CollectibleCategory
	Title    string
	Message  string
	Points   int
}
