package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/game"
	"github.com/gonewx/stroll/pkg/utils"
)

var (
	titleSky   = color.RGBA{R: 130, G: 185, B: 235, A: 255}
	titleHills = color.RGBA{R: 100, G: 155, B: 115, A: 255}
)

// TitleScene is the splash screen shown before the level loads. Any start
// input switches to the level scene produced by the factory.
type TitleScene struct {
	sceneManager *game.SceneManager
	levelFactory func() game.Scene
	elapsed      float64
}

// NewTitleScene creates the title scene. levelFactory builds the gameplay
// scene lazily, keeping scene construction out of app wiring.
func NewTitleScene(sceneManager *game.SceneManager, levelFactory func() game.Scene) *TitleScene {
	return &TitleScene{
		sceneManager: sceneManager,
		levelFactory: levelFactory,
	}
}

// Update waits for a start input.
func (s *TitleScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) || clicked {
		s.sceneManager.SwitchTo(s.levelFactory())
	}
}

// Draw renders the splash.
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(titleSky)

	// A row of soft hills so the title matches the in-game horizon.
	for i := 0; i < 6; i++ {
		x := float32(i)*160 - 40
		vector.DrawFilledCircle(screen, x, 560, 90, titleHills, true)
	}

	ebitenutil.DebugPrintAt(screen, "S T R O L L", config.GameWindowWidth/2-44, 200)
	ebitenutil.DebugPrintAt(screen, "a short walk through who I am", config.GameWindowWidth/2-116, 230)

	if math.Mod(s.elapsed, 1.2) < 0.8 {
		ebitenutil.DebugPrintAt(screen, "press Enter or tap to begin", config.GameWindowWidth/2-104, 330)
	}
}
