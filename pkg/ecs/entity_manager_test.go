package ecs

import (
	"reflect"
	"testing"
)

type posComp struct{ X, Y float64 }
type velComp struct{ VX, VY float64 }
type tagComp struct{}

func TestCreateEntityAssignsUniqueIDs(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()

	if a == b {
		t.Errorf("two entities share id %d", a)
	}
	if a == 0 || b == 0 {
		t.Error("entity id 0 is reserved as invalid")
	}
	if !em.EntityExists(a) || !em.EntityExists(b) {
		t.Error("created entities should exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &posComp{X: 3, Y: 4})

	comp, ok := em.GetComponent(id, reflect.TypeOf(&posComp{}))
	if !ok {
		t.Fatal("component not found")
	}
	pos := comp.(*posComp)
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("component = %+v, want {3 4}", pos)
	}

	if _, ok := em.GetComponent(id, reflect.TypeOf(&velComp{})); ok {
		t.Error("found a component that was never added")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComp{})

	em.RemoveComponent(id, reflect.TypeOf(&posComp{}))

	if em.HasComponent(id, reflect.TypeOf(&posComp{})) {
		t.Error("component still present after removal")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComp{})

	em.DestroyEntity(id)
	if !em.EntityExists(id) {
		t.Error("entity removed before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("entity still exists after RemoveMarkedEntities")
	}
}

func TestGetEntitiesWithFiltersByAllTypes(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &posComp{})
	em.AddComponent(both, &velComp{})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &posComp{})

	got := em.GetEntitiesWith(reflect.TypeOf(&posComp{}), reflect.TypeOf(&velComp{}))
	if len(got) != 1 || got[0] != both {
		t.Errorf("GetEntitiesWith = %v, want [%d]", got, both)
	}

	all := em.GetEntitiesWith(reflect.TypeOf(&posComp{}))
	if len(all) != 2 {
		t.Errorf("entities with posComp = %d, want 2", len(all))
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &posComp{X: 7})
	AddComponent(em, id, &tagComp{})

	pos, ok := GetComponent[*posComp](em, id)
	if !ok || pos.X != 7 {
		t.Errorf("GetComponent = %+v, %v; want X=7, true", pos, ok)
	}

	if _, ok := GetComponent[*velComp](em, id); ok {
		t.Error("GetComponent found a missing component")
	}

	if !HasComponent[*tagComp](em, id) {
		t.Error("HasComponent[*tagComp] = false, want true")
	}

	if got := GetEntitiesWith1[*posComp](em); len(got) != 1 {
		t.Errorf("GetEntitiesWith1 = %v, want one entity", got)
	}
	if got := GetEntitiesWith2[*posComp, *tagComp](em); len(got) != 1 {
		t.Errorf("GetEntitiesWith2 = %v, want one entity", got)
	}
	if got := GetEntitiesWith2[*posComp, *velComp](em); len(got) != 0 {
		t.Errorf("GetEntitiesWith2 with missing type = %v, want none", got)
	}
}
