package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
	"github.com/gonewx/stroll/pkg/ecs"
	"github.com/gonewx/stroll/pkg/game"
)

// Parallax damping per background layer. Smaller = farther away.
const (
	parallaxMountains = 0.2
	parallaxClouds    = 0.3
	parallaxHills     = 0.45
	parallaxFog       = 0.55
)

// Draw-order palette.
var (
	skyTop        = color.RGBA{R: 110, G: 170, B: 230, A: 255}
	skyBottom     = color.RGBA{R: 205, G: 230, B: 250, A: 255}
	mountainColor = color.RGBA{R: 140, G: 160, B: 195, A: 255}
	hillColor     = color.RGBA{R: 115, G: 165, B: 125, A: 255}
	fogColor      = color.RGBA{R: 235, G: 240, B: 245, A: 90}
	cloudColor    = color.RGBA{R: 250, G: 252, B: 255, A: 220}

	groundTop    = color.RGBA{R: 95, G: 175, B: 95, A: 255}
	groundBody   = color.RGBA{R: 125, G: 95, B: 70, A: 255}
	platformBody = color.RGBA{R: 150, G: 115, B: 85, A: 255}
	trunkColor   = color.RGBA{R: 110, G: 80, B: 55, A: 255}
	canopyColor  = color.RGBA{R: 70, G: 140, B: 80, A: 255}
	towerColor   = color.RGBA{R: 200, G: 195, B: 185, A: 255}
	flagColor    = color.RGBA{R: 230, G: 80, B: 80, A: 255}

	playerBody = color.RGBA{R: 60, G: 90, B: 160, A: 255}
	playerSkin = color.RGBA{R: 245, G: 215, B: 180, A: 255}
	capeColor  = color.RGBA{R: 180, G: 50, B: 60, A: 255}

	hudCardColor = color.RGBA{R: 20, G: 30, B: 45, A: 200}
)

// RenderSystem paints one frame from the current state. It is a pure
// reader: gameplay state is never mutated here, so it is safe to call every
// animation frame regardless of the simulation tick rate. Decorative motion
// (floating collectibles, swaying trees, drifting clouds) is computed from
// the elapsed wall-clock time and world position, never stored.
type RenderSystem struct {
	em        *ecs.EntityManager
	session   *game.Session
	level     *config.LevelConfig
	particles *ParticleSystem
}

// NewRenderSystem creates the render system.
func NewRenderSystem(em *ecs.EntityManager, session *game.Session, level *config.LevelConfig, particles *ParticleSystem) *RenderSystem {
	return &RenderSystem{
		em:        em,
		session:   session,
		level:     level,
		particles: particles,
	}
}

// Draw paints the full frame. elapsed is the wall-clock animation time in
// seconds; it keeps advancing through ready/ended so the world never
// freezes visually.
func (rs *RenderSystem) Draw(screen *ebiten.Image, elapsed float64) {
	cameraX := rs.session.CameraX()

	rs.drawSky(screen)
	rs.drawMountains(screen, cameraX)
	rs.drawClouds(screen, cameraX, elapsed)
	rs.drawHills(screen, cameraX)
	rs.drawFog(screen, cameraX, elapsed)
	rs.drawPlatforms(screen, cameraX, elapsed)
	rs.drawCollectibles(screen, cameraX, elapsed)
	rs.drawPlayer(screen, cameraX, elapsed)
	rs.drawParticles(screen, cameraX)
	rs.drawHUD(screen)
}

// drawSky fills the background with a vertical gradient in coarse bands.
func (rs *RenderSystem) drawSky(screen *ebiten.Image) {
	const bands = 24
	bandH := float32(config.GameWindowHeight) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		clr := lerpRGBA(skyTop, skyBottom, t)
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, config.GameWindowWidth, bandH+1, clr, false)
	}
}

// drawMountains draws the farthest parallax layer as rounded peaks.
func (rs *RenderSystem) drawMountains(screen *ebiten.Image, cameraX float64) {
	offset := cameraX * parallaxMountains
	const spacing = 260.0
	for i := -1; i < int(rs.level.WorldWidth/spacing)+2; i++ {
		baseX := float64(i)*spacing - offset
		if baseX < -400 || baseX > config.GameWindowWidth+400 {
			continue
		}
		h := 90 + hashAt(i)*120
		vector.DrawFilledCircle(screen, float32(baseX), float32(430+h/3), float32(h), mountainColor, true)
	}
}

// drawClouds drifts slowly with time on top of the camera parallax.
func (rs *RenderSystem) drawClouds(screen *ebiten.Image, cameraX, elapsed float64) {
	offset := cameraX*parallaxClouds + elapsed*8
	const spacing = 340.0
	for i := -1; i < int(rs.level.WorldWidth/spacing)+4; i++ {
		x := math.Mod(float64(i)*spacing-offset, rs.level.WorldWidth+spacing)
		if x < -200 {
			x += rs.level.WorldWidth + spacing
		}
		if x > config.GameWindowWidth+200 {
			continue
		}
		y := 60 + hashAt(i)*140
		r := float32(18 + hashAt(i*3)*14)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, cloudColor, true)
		vector.DrawFilledCircle(screen, float32(x)+r*0.9, float32(y)+4, r*0.8, cloudColor, true)
		vector.DrawFilledCircle(screen, float32(x)-r*0.9, float32(y)+5, r*0.7, cloudColor, true)
	}
}

// drawHills draws the near green layer.
func (rs *RenderSystem) drawHills(screen *ebiten.Image, cameraX float64) {
	offset := cameraX * parallaxHills
	const spacing = 190.0
	for i := -1; i < int(rs.level.WorldWidth/spacing)+2; i++ {
		baseX := float64(i)*spacing - offset
		if baseX < -300 || baseX > config.GameWindowWidth+300 {
			continue
		}
		h := 50 + hashAt(i*7)*70
		vector.DrawFilledCircle(screen, float32(baseX), float32(520+h/4), float32(h), hillColor, true)
	}
}

// drawFog lays translucent bands over the hills for depth.
func (rs *RenderSystem) drawFog(screen *ebiten.Image, cameraX, elapsed float64) {
	offset := cameraX * parallaxFog
	for i := 0; i < 3; i++ {
		x := math.Mod(float64(i)*300-offset*0.5+elapsed*12, 900) - 150
		y := float32(440 + i*30)
		vector.DrawFilledRect(screen, float32(x), y, 260, 26, fogColor, true)
	}
}

// drawPlatforms renders every solid rectangle, styled by kind.
func (rs *RenderSystem) drawPlatforms(screen *ebiten.Image, cameraX, elapsed float64) {
	platforms := ecs.GetEntitiesWith3[
		*components.PlatformComponent,
		*components.PositionComponent,
		*components.ColliderComponent,
	](rs.em)

	for _, id := range platforms {
		plat, _ := ecs.GetComponent[*components.PlatformComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](rs.em, id)
		if plat == nil || pos == nil || col == nil {
			continue
		}

		x := float32(pos.X - cameraX)
		y := float32(pos.Y)
		w := float32(col.Width)
		h := float32(col.Height)
		if x+w < -50 || x > config.GameWindowWidth+50 {
			continue
		}

		switch plat.Kind {
		case components.PlatformGround:
			vector.DrawFilledRect(screen, x, y, w, h, groundBody, false)
			vector.DrawFilledRect(screen, x, y, w, 8, groundTop, false)

		case components.PlatformTree:
			// Trunk is the collision box; the canopy sways above it.
			vector.DrawFilledRect(screen, x, y, w, h, trunkColor, false)
			sway := float32(math.Sin(elapsed*1.3+pos.X*0.02) * 4)
			cx := x + w/2 + sway
			vector.DrawFilledCircle(screen, cx, y-14, w*1.6, canopyColor, true)
			vector.DrawFilledCircle(screen, cx-w, y+2, w*1.1, canopyColor, true)
			vector.DrawFilledCircle(screen, cx+w, y+2, w*1.1, canopyColor, true)

		case components.PlatformLandmark:
			vector.DrawFilledRect(screen, x, y, w, h, towerColor, false)
			vector.DrawFilledRect(screen, x-4, y, w+8, 10, groundBody, false)
			// Flag pole and a gently waving flag.
			poleX := x + w/2
			vector.DrawFilledRect(screen, poleX-1, y-46, 2, 46, trunkColor, false)
			wave := float32(math.Sin(elapsed*4) * 3)
			vector.DrawFilledRect(screen, poleX, y-44, 24+wave, 12, flagColor, false)

		default:
			vector.DrawFilledRect(screen, x, y, w, h, platformBody, false)
			vector.DrawFilledRect(screen, x, y, w, 5, groundTop, false)
		}
	}
}

// drawCollectibles renders the remaining fact cards: a pulsing glow, the
// category-colored core, and a letter icon. Bobbing is a pure function of
// time and x so every card floats with its own phase.
func (rs *RenderSystem) drawCollectibles(screen *ebiten.Image, cameraX, elapsed float64) {
	items := ecs.GetEntitiesWith3[
		*components.CollectibleComponent,
		*components.PositionComponent,
		*components.ColliderComponent,
	](rs.em)

	for _, id := range items {
		item, _ := ecs.GetComponent[*components.CollectibleComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](rs.em, id)
		if item == nil || pos == nil || col == nil {
			continue
		}

		bob := math.Sin(elapsed*2+pos.X*0.05) * 5
		cx := float32(pos.X + col.Width/2 - cameraX)
		cy := float32(pos.Y + col.Height/2 + bob)
		if cx < -50 || cx > config.GameWindowWidth+50 {
			continue
		}

		clr := CategoryColor(item.Category)
		pulse := 0.35 + 0.2*math.Sin(elapsed*3+pos.X*0.1)
		glow := clr
		glow.A = uint8(255 * pulse)
		vector.DrawFilledCircle(screen, cx, cy, float32(col.Width)*0.95, glow, true)
		vector.DrawFilledCircle(screen, cx, cy, float32(col.Width)*0.5, clr, true)

		ebitenutil.DebugPrintAt(screen, categoryIcon(item.Category), int(cx)-3, int(cy)-8)
	}
}

// categoryIcon returns the single-letter icon drawn on a collectible.
func categoryIcon(category components.CollectibleCategory) string {
	switch category {
	case components.CategoryPersonality:
		return "P"
	case components.CategoryHobby:
		return "H"
	case components.CategoryBackground:
		return "B"
	case components.CategorySkill:
		return "S"
	}
	return "?"
}

// drawPlayer renders the character with a cloak that flips with facing.
func (rs *RenderSystem) drawPlayer(screen *ebiten.Image, cameraX, elapsed float64) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.ColliderComponent,
	](rs.em)
	if len(players) == 0 {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](rs.em, players[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, players[0])
	col, _ := ecs.GetComponent[*components.ColliderComponent](rs.em, players[0])
	vel, _ := ecs.GetComponent[*components.VelocityComponent](rs.em, players[0])
	if player == nil || pos == nil || col == nil {
		return
	}

	x := float32(pos.X - cameraX)
	y := float32(pos.Y)
	w := float32(col.Width)
	h := float32(col.Height)

	// Cape trails behind the facing direction and flutters while moving.
	flutter := float32(0)
	if vel != nil && vel.VX != 0 && player.Grounded {
		flutter = float32(math.Sin(elapsed*14) * 3)
	}
	capeW := w * 0.5
	if player.FacingRight {
		vector.DrawFilledRect(screen, x-capeW+2, y+6, capeW+flutter, h*0.65, capeColor, false)
	} else {
		vector.DrawFilledRect(screen, x+w-2, y+6, capeW+flutter, h*0.65, capeColor, false)
	}

	// Body and head.
	vector.DrawFilledRect(screen, x, y+10, w, h-10, playerBody, false)
	vector.DrawFilledCircle(screen, x+w/2, y+9, w*0.42, playerSkin, true)

	// Eye on the facing side.
	eyeX := x + w*0.32
	if player.FacingRight {
		eyeX = x + w*0.68
	}
	vector.DrawFilledCircle(screen, eyeX, y+8, 2, color.RGBA{R: 30, G: 30, B: 40, A: 255}, true)
}

// drawParticles renders every live slot of the pool.
func (rs *RenderSystem) drawParticles(screen *ebiten.Image, cameraX float64) {
	if rs.particles == nil {
		return
	}
	for _, p := range rs.particles.Particles() {
		if p.Life <= 0 {
			continue
		}
		clr := p.Color
		clr.A = uint8(255 * p.Life / p.MaxLife)
		vector.DrawFilledCircle(screen, float32(p.X-cameraX), float32(p.Y), float32(p.Size), clr, true)
	}
}

// drawHUD renders score, progress and the transient message card.
func (rs *RenderSystem) drawHUD(screen *ebiten.Image) {
	score := fmt.Sprintf("Score: %d   Facts: %d/%d",
		rs.session.Score(), rs.session.CollectedCount(), rs.session.TotalItems())
	ebitenutil.DebugPrintAt(screen, score, 10, 8)

	title, text := rs.session.Message()
	if title == "" && text == "" {
		return
	}

	lines := wrapText(text, 56)
	cardH := float32(34 + len(lines)*14)
	cardY := float32(config.GameWindowHeight) - cardH - 16
	vector.DrawFilledRect(screen, 12, cardY, config.GameWindowWidth-24, cardH, hudCardColor, false)

	ebitenutil.DebugPrintAt(screen, title, 24, int(cardY)+8)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 24, int(cardY)+26+i*14)
	}
}

// wrapText splits text into lines of at most width characters, breaking on
// spaces.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// lerpRGBA interpolates two colors component-wise.
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// hashAt derives a stable pseudo-random value in [0, 1) from an index, so
// decorative layers look varied without storing any state.
func hashAt(i int) float64 {
	v := math.Sin(float64(i)*127.1) * 43758.5453
	return v - math.Floor(v)
}
