package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/stroll/pkg/app"
	"github.com/gonewx/stroll/pkg/config"
)

const defaultLevelPath = "assets/levels/intro.yaml"

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	levelPath := flag.String("level", "", "path to an alternate level file")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	levelData, err := levelsFS.ReadFile(defaultLevelPath)
	if err != nil {
		log.Fatalf("embedded level missing: %v", err)
	}

	a, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		LevelPath:        *levelPath,
		DefaultLevelData: levelData,
		Fullscreen:       *fullscreen,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Stroll")

	if err := ebiten.RunGameWithOptions(a, nil); err != nil {
		log.Fatal(err)
	}
}
