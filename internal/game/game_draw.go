package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"halloweenhaunt/internal/entities"
	"halloweenhaunt/internal/feature"
)

var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 40, A: 255}

	playerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bossColor   = color.RGBA{R: 120, G: 0, B: 160, A: 255}

	candyColors = map[entities.CandyKind]color.RGBA{
		entities.CandyNormal: {R: 255, G: 165, B: 0, A: 255},
		entities.CandyCursed: {R: 140, G: 60, B: 180, A: 255},
		entities.CandyBonus:  {R: 255, G: 215, B: 0, A: 255},
	}

	ghostColors = map[entities.GhostState]color.RGBA{
		entities.GhostPatrol: {R: 170, G: 170, B: 220, A: 255},
		entities.GhostChase:  {R: 230, G: 60, B: 60, A: 255},
		entities.GhostReturn: {R: 120, G: 120, B: 140, A: 255},
	}

	eggColor     = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	puzzleColor  = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	digColor     = color.RGBA{R: 150, G: 100, B: 50, A: 255}
	trapColor    = color.RGBA{R: 255, G: 120, B: 0, A: 255}
	hudColor     = color.White
	messageColor = color.RGBA{R: 255, G: 230, B: 150, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	off := ebiten.NewImage(screenWidth, screenHeight)
	off.Fill(backgroundColor)

	switch g.state {
	case StateMainMenu:
		g.drawMainMenu(off)
	case StateTutorial:
		g.drawWorld(off)
		g.drawTutorial(off)
	case StatePlaying:
		g.drawWorld(off)
	case StateCemetery:
		g.drawCemetery(off)
	case StatePaused:
		if g.prev == StateCemetery {
			g.drawCemetery(off)
		} else {
			g.drawWorld(off)
		}
		drawCentered(off, "PAUSED", screenHeight/2)
		drawCentered(off, "ESC to resume, R to restart level", screenHeight/2+20)
	case StateGameOver:
		drawCentered(off, "GAME OVER", screenHeight/2-20)
		drawCentered(off, fmt.Sprintf("Final score: %d", g.playerScore()), screenHeight/2)
		drawCentered(off, "ENTER for menu, R to retry", screenHeight/2+20)
		g.drawHighScores(off, screenHeight/2+60)
	case StateVictory:
		drawCentered(off, "VICTORY! The haunt is over.", screenHeight/2-20)
		drawCentered(off, fmt.Sprintf("Final score: %d", g.playerScore()), screenHeight/2)
		drawCentered(off, "ENTER for menu", screenHeight/2+20)
		g.drawHighScores(off, screenHeight/2+60)
	case StateSettings:
		g.drawSettings(off)
	}

	op := &ebiten.DrawImageOptions{}
	s := float64(g.cfg.WindowScale)
	op.GeoM.Scale(s, s)
	screen.DrawImage(off, op)
}

func (g *Game) playerScore() int {
	if g.player == nil {
		return 0
	}
	return g.player.Score
}

func (g *Game) shakeOffset() (float64, float64) {
	if g.shakeTimer <= 0 {
		return 0, 0
	}
	return float64(g.rng.Intn(2*shakeIntensity+1) - shakeIntensity),
		float64(g.rng.Intn(2*shakeIntensity+1) - shakeIntensity)
}

func (g *Game) drawMainMenu(dst *ebiten.Image) {
	drawCentered(dst, "HALLOWEEN HAUNT: CANDY QUEST", 140)
	drawCentered(dst, "ENTER - new game", screenHeight/2)
	drawCentered(dst, "L - continue saved game", screenHeight/2+20)
	drawCentered(dst, "O - settings", screenHeight/2+40)
	drawCentered(dst, "Q - quit", screenHeight/2+60)
	g.drawHighScores(dst, screenHeight/2+110)
}

func (g *Game) drawSettings(dst *ebiten.Image) {
	drawCentered(dst, "SETTINGS", 140)
	entries := []string{
		fmt.Sprintf("Music volume: %2.0f%%", g.cfg.MusicVolume*100),
		fmt.Sprintf("Sound volume: %2.0f%%", g.cfg.SFXVolume*100),
	}
	for i, e := range entries {
		if i == g.settingsSel {
			e = "> " + e
		}
		drawCentered(dst, e, screenHeight/2+20*i)
	}
	drawCentered(dst, "W/S - select   A/D - adjust   ESC - back", screenHeight-60)
}

func (g *Game) drawHighScores(dst *ebiten.Image, y int) {
	list := LoadHighScores()
	if len(list) == 0 {
		return
	}
	drawCentered(dst, "High Scores", y)
	for i, hs := range list {
		line := fmt.Sprintf("%d. %-12s %6d", i+1, hs.Name, hs.Score)
		drawCentered(dst, line, y+14*(i+1))
	}
}

func (g *Game) drawWorld(dst *ebiten.Image) {
	sx, sy := g.shakeOffset()
	camX, camY := g.cam.X+sx, g.cam.Y+sy

	g.lvl.Map.Draw(dst, camX, camY)

	for _, c := range g.lvl.Candies {
		if c.Collected {
			continue
		}
		vector.DrawFilledCircle(dst, float32(c.X-camX), float32(c.Y-camY), 6, candyColors[c.Kind], true)
	}
	for _, e := range g.lvl.Eggs {
		if !e.Visible || e.Activated {
			continue
		}
		vector.DrawFilledCircle(dst, float32(e.X-camX), float32(e.Y-camY), 5, eggColor, true)
	}
	g.drawFeatureSites(dst, camX, camY, g.features)
	for _, gh := range g.lvl.Ghosts {
		drawGhost(dst, gh, camX, camY)
	}
	g.drawPlayer(dst, camX, camY)

	if g.nightActive {
		vector.DrawFilledRect(dst, 0, 0, screenWidth, screenHeight,
			color.RGBA{R: 10, G: 10, B: 40, A: 110}, false)
	}

	g.drawHUD(dst)
}

func (g *Game) drawCemetery(dst *ebiten.Image) {
	sx, sy := g.shakeOffset()
	camX, camY := g.cam.X+sx, g.cam.Y+sy

	g.cemetery.Map.Draw(dst, camX, camY)

	for _, c := range g.cemetery.Candies {
		if c.Collected {
			continue
		}
		vector.DrawFilledCircle(dst, float32(c.X-camX), float32(c.Y-camY), 6, candyColors[c.Kind], true)
	}
	for _, e := range g.cemetery.Eggs {
		if !e.Visible || e.Activated {
			continue
		}
		vector.DrawFilledCircle(dst, float32(e.X-camX), float32(e.Y-camY), 5, eggColor, true)
	}
	g.drawFeatureSites(dst, camX, camY, g.cemeteryFeatures)
	for _, gh := range g.cemetery.Ghosts {
		drawGhost(dst, gh, camX, camY)
	}
	g.drawPlayer(dst, camX, camY)

	// The cemetery is always dark.
	vector.DrawFilledRect(dst, 0, 0, screenWidth, screenHeight,
		color.RGBA{R: 5, G: 5, B: 25, A: 130}, false)

	g.drawHUD(dst)
}

func (g *Game) drawFeatureSites(dst *ebiten.Image, camX, camY float64, m *feature.Manager) {
	for _, p := range m.Puzzles {
		if p.Completed {
			continue
		}
		vector.DrawFilledRect(dst, float32(p.X-camX-6), float32(p.Y-camY-6), 12, 12, puzzleColor, true)
	}
	for _, d := range m.DigSites {
		if d.Completed {
			continue
		}
		vector.DrawFilledRect(dst, float32(d.X-camX-6), float32(d.Y-camY-6), 12, 12, digColor, true)
	}
	for _, t := range m.Traps {
		c := trapColor
		if t.Triggered {
			c = color.RGBA{R: 255, G: 40, B: 40, A: 255}
		}
		vector.DrawFilledCircle(dst, float32(t.X-camX), float32(t.Y-camY), 6, c, true)
	}

	// Puzzle UI while one is active.
	if p := m.ActivePuzzle(); p != nil {
		g.drawPuzzleOverlay(dst, p)
	}
	if d := m.ActiveDig(); d != nil && !d.Completed {
		line := fmt.Sprintf("Digging... %d/%d (SPACE)", d.Progress, feature.RequiredDigs)
		drawCentered(dst, line, screenHeight-70)
	}
}

func (g *Game) drawPuzzleOverlay(dst *ebiten.Image, p *feature.SymbolPuzzle) {
	parts := make([]string, len(p.Order))
	for i, s := range p.Order {
		if i == p.Selected {
			parts[i] = "[" + s.String() + "]"
		} else {
			parts[i] = s.String()
		}
	}
	drawCentered(dst, "Altar: "+strings.Join(parts, "  "), screenHeight-90)
	drawCentered(dst, "A/D - swap   SPACE - confirm", screenHeight-70)
}

func drawGhost(dst *ebiten.Image, gh *entities.Ghost, camX, camY float64) {
	c := ghostColors[gh.State]
	if gh.Radius > entities.GhostRadius {
		c = bossColor
	}
	vector.DrawFilledCircle(dst, float32(gh.X-camX), float32(gh.Y-camY), float32(gh.Radius), c, true)
}

func (g *Game) drawPlayer(dst *ebiten.Image, camX, camY float64) {
	// Blink while invincible.
	if g.player.InvincibleTimer > 0 && (g.tick/6)%2 == 0 {
		return
	}
	c := playerColor
	if g.player.Has(entities.PowerInvisibility) {
		c = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	}
	vector.DrawFilledCircle(dst, float32(g.player.X-camX), float32(g.player.Y-camY),
		float32(g.player.Radius), c, true)
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	hearts := strings.Repeat("<3 ", g.player.Health)
	night := ""
	if g.nightActive || g.state == StateCemetery {
		night = "  NIGHT"
	}
	line := fmt.Sprintf("Level %d  Score: %d  Candy: %d/%d  %s%s",
		g.levels.Current, g.player.Score, g.player.Candies, g.lvl.CandyQuota, hearts, night)
	text.Draw(dst, line, basicfont.Face7x13, 4, 14, hudColor)

	if g.player.Candies >= g.lvl.CandyQuota && g.state != StateCemetery {
		text.Draw(dst, "Quota met! Head home.", basicfont.Face7x13, 4, 30, messageColor)
	}

	for i, pu := range g.player.PowerUps() {
		seconds := float64(pu.Duration) / updatesPerSecond
		line := fmt.Sprintf("%s %.1fs", pu.Kind, seconds)
		text.Draw(dst, line, basicfont.Face7x13, 4, 50+14*i, messageColor)
	}

	if g.message != "" {
		drawCentered(dst, g.message, screenHeight-40)
	}
}

func (g *Game) drawTutorial(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, float32(screenHeight-120), screenWidth, 120,
		color.RGBA{A: 170}, false)
	drawCentered(dst, g.tutorial.Text(), screenHeight-80)
	drawCentered(dst, "SPACE - next   ESC - skip tutorial", screenHeight-50)
}

// drawCentered draws one line of HUD text centered horizontally. The 7px
// advance matches basicfont.Face7x13.
func drawCentered(dst *ebiten.Image, s string, y int) {
	w := len(s) * 7
	text.Draw(dst, s, basicfont.Face7x13, (screenWidth-w)/2, y, hudColor)
}
