package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.MusicVolume != 0.6 {
		t.Errorf("MusicVolume = %v, want 0.6", s.MusicVolume)
	}
	if s.SoundVolume != 0.8 {
		t.Errorf("SoundVolume = %v, want 0.8", s.SoundVolume)
	}
	if !s.MusicEnabled || !s.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if s.Fullscreen {
		t.Error("Fullscreen should be off by default")
	}
}

func TestSettingsManagerDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings().MusicVolume != 0.6 {
		t.Errorf("degraded mode should use defaults, got %+v", sm.GetSettings())
	}

	sm.SetMusicVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode returned error: %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.3 {
		t.Errorf("MusicVolume = %v, want 0.3", sm.GetSettings().MusicVolume)
	}
}

func TestSettingsVolumeClamped(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetMusicVolume(1.7)
	if got := sm.GetSettings().MusicVolume; got != 1.0 {
		t.Errorf("MusicVolume = %v, want 1.0", got)
	}
	sm.SetSoundVolume(-0.4)
	if got := sm.GetSettings().SoundVolume; got != 0.0 {
		t.Errorf("SoundVolume = %v, want 0.0", got)
	}
}

func TestSettingsSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m, err := gdata.Open(gdata.Config{AppName: "stroll-test"})
	if err != nil {
		t.Skipf("gdata storage unavailable: %v", err)
	}

	sm := NewSettingsManager(m)
	sm.SetMusicVolume(0.25)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sm2 := NewSettingsManager(m)
	got := sm2.GetSettings()
	if got.MusicVolume != 0.25 {
		t.Errorf("MusicVolume = %v, want 0.25", got.MusicVolume)
	}
	if got.SoundEnabled {
		t.Error("SoundEnabled = true, want false")
	}
	if !got.Fullscreen {
		t.Error("Fullscreen = false, want true")
	}
	if !got.MusicEnabled {
		t.Error("MusicEnabled = false, want true (untouched default)")
	}
}
