package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings are the device-level settings. They are not part of session
// progress and survive across runs; gameplay state is never persisted.
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`

	Fullscreen bool `yaml:"fullscreen"` // start in fullscreen
}

// DefaultSettings returns the default settings.
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.6,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager loads and saves settings through gdata. A nil gdata
// manager puts it in degraded mode: settings live in memory only.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// Storage keys.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a settings manager and loads any saved
// settings. A load failure is not fatal; defaults are used instead.
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load reads settings from gdata. Missing storage or a missing settings
// blob falls back to defaults without error.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded GameSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save writes the current settings to gdata. In degraded mode it is a
// silent no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings returns the live settings instance.
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume sets the music volume, clamped to 0.0 ~ 1.0.
// In-memory only; call Save to persist.
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume sets the effect volume, clamped to 0.0 ~ 1.0.
// In-memory only; call Save to persist.
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetMusicEnabled toggles music. In-memory only; call Save to persist.
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled toggles effects. In-memory only; call Save to persist.
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen records the fullscreen preference. In-memory only; call
// Save to persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
