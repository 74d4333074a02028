package ecs

import "reflect"

// EntityID is the unique identifier of an entity.
type EntityID uint64

// EntityManager owns all entities and their components.
type EntityManager struct {
	nextID uint64
	// Entity-component mapping: EntityID -> component type -> instance
	components map[EntityID]map[reflect.Type]interface{}
	// Entities marked for deferred removal
	entitiesToDestroy []EntityID
}

// NewEntityManager creates a new EntityManager instance.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // IDs start at 1, 0 is reserved as invalid
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity creates a new entity and returns its unique ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks an entity for removal (not removed immediately).
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent attaches a component to an entity.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent detaches the component of the given type from an entity.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the entity's component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity has a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// EntityExists reports whether the entity is currently alive.
func (em *EntityManager) EntityExists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// RemoveMarkedEntities removes every entity marked by DestroyEntity.
// Called once per frame after all systems have updated, so a system never
// observes an entity disappearing mid-update.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWith returns all entities that have every listed component type.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
