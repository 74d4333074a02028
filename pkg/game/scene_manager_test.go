package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type stubScene struct {
	updates int
	draws   int
}

func (s *stubScene) Update(deltaTime float64)  { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) { s.draws++ }

func TestSceneManagerStartsEmpty(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("new manager should have no active scene")
	}
	// Must not panic with no scene set.
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &stubScene{}
	second := &stubScene{}

	sm.SwitchTo(first)
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)

	if first.updates != 1 || first.draws != 1 {
		t.Errorf("first scene got %d updates, %d draws; want 1, 1", first.updates, first.draws)
	}

	sm.SwitchTo(second)
	sm.Update(1.0 / 60.0)

	if first.updates != 1 {
		t.Errorf("first scene updated after switch: %d", first.updates)
	}
	if second.updates != 1 {
		t.Errorf("second scene updates = %d, want 1", second.updates)
	}
	if sm.GetCurrentScene() != second {
		t.Error("GetCurrentScene did not return the switched scene")
	}
}
