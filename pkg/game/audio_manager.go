package game

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sound IDs understood by AudioManager.
const (
	SoundPickup = "pickup"
	SoundJump   = "jump"
	SoundWin    = "win"
)

// AudioManager centralizes playback of effects and the ambient music loop.
// Volumes come from the SettingsManager on every play, so settings changes
// apply without restarting players. All tones are synthesized to PCM at
// construction; the repository ships no audio files.
//
// Playback failures degrade gracefully: they are logged and never reach the
// simulation loop.
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player
	musicPlayer     *audio.Player
}

// NewAudioManager creates an audio manager bound to the given context.
// settingsManager may be nil, in which case full volume is used.
func NewAudioManager(audioContext *audio.Context, settingsManager *SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    audioContext,
		settingsManager: settingsManager,
		soundPlayers:    make(map[string]*audio.Player),
	}

	sampleRate := audioContext.SampleRate()
	am.addSound(SoundPickup, pickupPCM(sampleRate))
	am.addSound(SoundJump, jumpPCM(sampleRate))
	am.addSound(SoundWin, winPCM(sampleRate))

	music := musicPCM(sampleRate)
	loop := audio.NewInfiniteLoop(bytes.NewReader(music), int64(len(music)))
	player, err := audioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to create music player: %v", err)
	} else {
		am.musicPlayer = player
	}

	return am
}

func (am *AudioManager) addSound(id string, pcm []byte) {
	player, err := am.audioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to create player for %s: %v", id, err)
		return
	}
	am.soundPlayers[id] = player
}

// PlaySound plays an effect once. Returns false if effects are disabled or
// the player is unavailable.
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player, ok := am.soundPlayers[soundID]
	if !ok {
		return false
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayPickupSound is the fire-and-forget hook called on each successful
// collection.
func (am *AudioManager) PlayPickupSound() {
	am.PlaySound(SoundPickup)
}

// StartMusic begins (or resumes) the ambient loop if music is enabled.
func (am *AudioManager) StartMusic() {
	if am.musicPlayer == nil {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return
	}
	am.musicPlayer.SetVolume(am.musicVolume())
	if !am.musicPlayer.IsPlaying() {
		am.musicPlayer.Play()
	}
}

// StopMusic pauses the ambient loop.
func (am *AudioManager) StopMusic() {
	if am.musicPlayer != nil {
		am.musicPlayer.Pause()
	}
}

// ApplySettings re-reads volumes and the music toggle. Call after the
// settings change.
func (am *AudioManager) ApplySettings() {
	if am.musicPlayer == nil {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		am.musicPlayer.Pause()
		return
	}
	am.musicPlayer.SetVolume(am.musicVolume())
	if !am.musicPlayer.IsPlaying() {
		am.musicPlayer.Play()
	}
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().SoundVolume
}

func (am *AudioManager) musicVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().MusicVolume
}
