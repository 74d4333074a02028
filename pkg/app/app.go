// Package app provides the core application wrapper.
//
// It extracts game initialization from the main package so the desktop
// entry point stays a thin shell around ebiten.RunGame.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/game"
	"github.com/gonewx/stroll/pkg/scenes"
)

// Config defines application startup options.
type Config struct {
	// Verbose enables log output; the default discards it.
	Verbose bool
	// LevelPath loads an alternate level file instead of the embedded one.
	LevelPath string
	// DefaultLevelData is the embedded level table, used when LevelPath
	// is empty.
	DefaultLevelData []byte
	// Fullscreen starts the window in fullscreen, overriding the saved
	// setting.
	Fullscreen bool
}

// App is the application wrapper implementing ebiten.Game. One Update call
// performs exactly one simulation tick; one Draw call performs exactly one
// render pass.
type App struct {
	sceneManager *game.SceneManager
	verbose      bool

	// Exiting fullscreen needs a few frames before the window manager
	// accepts a new window size.
	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp creates and wires the game application.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	audioContext := audio.NewContext(48000)

	gdataManager, err := gdata.Open(gdata.Config{AppName: "stroll"})
	if err != nil {
		// Settings fall back to in-memory defaults; not fatal.
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	audioManager := game.NewAudioManager(audioContext, settingsManager)

	var level *config.LevelConfig
	if cfg.LevelPath != "" {
		level, err = config.LoadLevelConfig(cfg.LevelPath)
	} else {
		level, err = config.ParseLevelConfig(cfg.DefaultLevelData)
	}
	if err != nil {
		return nil, fmt.Errorf("level load failed: %w", err)
	}
	log.Printf("[App] level %q: world %.0fx%.0f, %d collectibles",
		level.Name, level.WorldWidth, level.WorldHeight, len(level.Collectibles))

	session := game.NewSession(len(level.Collectibles))

	sceneManager := game.NewSceneManager()
	titleScene := scenes.NewTitleScene(sceneManager, func() game.Scene {
		return scenes.NewLevelScene(level, session, audioManager, settingsManager)
	})
	sceneManager.SwitchTo(titleScene)

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update runs one simulation tick (typically 60 per second).
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 toggles fullscreen.
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw renders one frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen implements ebiten.FinalScreenDrawer: black letterbox bars
// and linear filtering when the window is scaled.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical screen size, independent of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager returns the scene manager.
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
