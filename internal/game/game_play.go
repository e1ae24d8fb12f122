package game

import (
	"math"

	"halloweenhaunt/internal/entities"
	"halloweenhaunt/internal/feature"
	"halloweenhaunt/internal/level"
	"halloweenhaunt/internal/tilemap"
)

func (g *Game) updatePlaying(in frameInput) {
	g.updateEntities(in)
	if g.state != StatePlaying {
		// Entity updates can transition away (cemetery entry, game over).
		return
	}
	g.updateDayNight()
	if g.lvl.CheckCompletion(g.player.X, g.player.Y, g.player.Candies) {
		g.completeLevel()
	}
}

// updateEntities runs one simulation tick for the overworld. Shared with the
// tutorial so the world moves behind the overlay.
func (g *Game) updateEntities(in frameInput) {
	g.player.Update(in.dir, g.lvl.Map)

	if g.lvl.Update(g.player) > 0 {
		g.audio.PlayChase()
	}

	if msg := g.features.Update(g.player, in.swap, in.interact); msg != "" {
		g.showMessage(msg)
	}

	g.cam.Update(g.player.X, g.player.Y, g.lvl.Map)

	if g.player.Has(entities.PowerCandyMagnet) {
		g.applyCandyMagnet(g.lvl.Candies)
	}

	g.updateCemeteryGate(in)
	if in.interact {
		g.handleInteractions()
	}

	g.checkGhostCollisions(g.lvl.Ghosts, false)
}

// handleInteractions is the SPACE action in the overworld: collect candy,
// open easter eggs, activate feature sites.
func (g *Game) handleInteractions() {
	for _, c := range g.lvl.Candies {
		if c.Collected {
			continue
		}
		if math.Hypot(g.player.X-c.X, g.player.Y-c.Y) <= collectRadius {
			if c.Collect(g.player) {
				g.audio.PlayCollect()
				if g.player.Candies >= g.lvl.CandyQuota {
					g.showMessage("Return to house to complete the level!")
				}
			}
		}
	}

	for _, e := range g.lvl.Eggs {
		if e.Activated {
			continue
		}
		if ok, msg := e.Interact(g.player); ok {
			g.audio.PlayEasterEgg()
			g.showMessage(msg)
		}
	}

	if msg := g.features.HandleInteraction(g.player); msg != "" {
		g.showMessage(msg)
	}
}

// applyCandyMagnet auto-collects nearby candy while the magnet is active.
func (g *Game) applyCandyMagnet(candies []*entities.Candy) {
	for _, c := range candies {
		if c.Collected {
			continue
		}
		if math.Hypot(g.player.X-c.X, g.player.Y-c.Y) <= magnetRadius {
			if c.Collect(g.player) {
				g.audio.PlayCollect()
			}
		}
	}
}

// updateCemeteryGate shows the entry prompt when the player stands on the
// gate tile and enters on a held SPACE. Both flags reset once the player
// steps off the tile, so exiting never bounces straight back in.
func (g *Game) updateCemeteryGate(in frameInput) {
	tx := int(g.player.X) / level.TileSize
	ty := int(g.player.Y) / level.TileSize
	if g.lvl.Map.Get(tx, ty) != tilemap.KindCemeteryGate {
		g.gatePrompted = false
		g.gateEntered = false
		return
	}
	if !g.gatePrompted {
		g.showMessage("Press SPACE to enter the cemetery...")
		g.gatePrompted = true
	}
	if in.interactHeld && !g.gateEntered {
		g.enterCemetery()
		g.gateEntered = true
	}
}

func (g *Game) enterCemetery() {
	g.cemetery = level.NewCemeteryArea(g.player.X, g.player.Y, g.rng)
	g.cemeteryFeatures = feature.NewManager()
	for _, s := range g.cemetery.DigSites {
		g.cemeteryFeatures.AddDigSite(s.X, s.Y)
	}
	g.cam.Snap(g.player.X, g.player.Y, g.cemetery.Map)
	g.exitPrompted = false
	g.state = StateCemetery
	g.showMessage("You entered the haunted cemetery!")
}

func (g *Game) exitCemetery() {
	g.state = StatePlaying
	g.cemetery = nil
	g.cemeteryFeatures = nil
	g.cam.Snap(g.player.X, g.player.Y, g.lvl.Map)
	g.showMessage("Exited the cemetery")
	g.audio.PlayGameplayMusic()
}

func (g *Game) updateCemetery(in frameInput) {
	if in.escape {
		g.Pause()
		return
	}

	g.player.Update(in.dir, g.cemetery.Map)

	if g.cemetery.Update(g.player) > 0 {
		g.audio.PlayChase()
	}

	if msg := g.cemeteryFeatures.Update(g.player, in.swap, in.interact); msg != "" {
		g.showMessage(msg)
	}

	if g.player.Has(entities.PowerCandyMagnet) {
		g.applyCandyMagnet(g.cemetery.Candies)
	}

	if in.interact {
		g.handleCemeteryInteractions()
	}

	g.checkGhostCollisions(g.cemetery.Ghosts, true)
	if g.state != StateCemetery {
		return
	}

	if g.cemetery.CheckExit(g.player.X, g.player.Y) {
		if !g.exitPrompted {
			g.showMessage("Press SPACE to exit the cemetery")
			g.exitPrompted = true
		}
		if in.interactHeld {
			g.exitCemetery()
			return
		}
	} else {
		g.exitPrompted = false
	}

	g.cam.Update(g.player.X, g.player.Y, g.cemetery.Map)
}

func (g *Game) handleCemeteryInteractions() {
	for _, c := range g.cemetery.Candies {
		if c.Collected {
			continue
		}
		if math.Hypot(g.player.X-c.X, g.player.Y-c.Y) <= collectRadius {
			if c.Collect(g.player) {
				g.audio.PlayCollect()
			}
		}
	}

	for _, e := range g.cemetery.Eggs {
		if e.Activated {
			continue
		}
		if ok, msg := e.Interact(g.player); ok {
			g.audio.PlayEasterEgg()
			g.showMessage(msg)
		}
	}

	if msg := g.cemeteryFeatures.HandleInteraction(g.player); msg != "" {
		g.showMessage(msg)
	}
}

// checkGhostCollisions damages the player on contact. Ghost repel always
// protects; zombie power additionally protects inside the cemetery.
func (g *Game) checkGhostCollisions(ghosts []*entities.Ghost, zombieImmune bool) {
	for _, gh := range ghosts {
		dx := g.player.X - gh.X
		dy := g.player.Y - gh.Y
		r := g.player.Radius + gh.Radius
		if dx*dx+dy*dy > r*r {
			continue
		}
		if g.player.Has(entities.PowerGhostRepel) {
			continue
		}
		if zombieImmune && g.player.Has(entities.PowerZombiePower) {
			continue
		}
		if g.player.TakeDamage() {
			g.audio.PlayHit()
			g.triggerShake()
			if g.player.Health <= 0 {
				g.gameOver()
			}
		}
		return
	}
}

// updateDayNight advances the day timer until night falls. Levels flagged as
// permanent night skip the cycle. Night falls once; day never returns.
func (g *Game) updateDayNight() {
	if g.lvl.NightMode {
		g.nightActive = true
		return
	}
	g.nightTimer++
	if g.nightTimer >= g.cfg.NightModeDelay && !g.nightActive {
		g.nightActive = true
		g.showMessage("Night has fallen... more ghosts appear!")
		g.spawnNightGhosts()
	}
}

// spawnNightGhosts adds extra patrols at random open tiles away from the
// player. Rejection sampling gives up quietly after a fixed number of tries.
func (g *Game) spawnNightGhosts() {
	for i := 0; i < nightGhostCount; i++ {
		for attempt := 0; attempt < nightGhostTries; attempt++ {
			tx := 2 + g.rng.Intn(level.MapWidth-3)
			ty := 2 + g.rng.Intn(level.MapHeight-3)
			x := float64(tx*level.TileSize + level.TileSize/2)
			y := float64(ty*level.TileSize + level.TileSize/2)

			if g.lvl.Map.IsSolid(tx, ty) {
				continue
			}
			if math.Hypot(x-g.player.X, y-g.player.Y) <= nightGhostMinDist {
				continue
			}

			route := []entities.Waypoint{
				{X: x, Y: y},
				{X: x + 64, Y: y},
				{X: x, Y: y + 64},
				{X: x - 64, Y: y},
			}
			g.lvl.Ghosts = append(g.lvl.Ghosts, entities.NewGhost(x, y, route))
			break
		}
	}
}

func (g *Game) completeLevel() {
	g.audio.PlayWin()

	timeBonus := 300 - g.nightTimer/updatesPerSecond
	if timeBonus < 0 {
		timeBonus = 0
	}
	healthBonus := g.player.Health * 50
	g.player.Score += timeBonus + healthBonus

	_ = SaveProgress(Progress{
		Level:             g.levels.Current + 1,
		Score:             g.player.Score,
		TutorialCompleted: g.tutorial.Completed,
	})

	if g.levels.IsFinal() {
		g.state = StateVictory
		_ = SaveHighScore("Champion", g.player.Score)
		return
	}

	next := g.levels.Next()
	if next == nil {
		g.state = StateVictory
		return
	}
	g.startLevel(next)
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	_ = SaveHighScore("Player", g.player.Score)
}
