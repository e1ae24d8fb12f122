package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"halloweenhaunt/internal/config"
	"halloweenhaunt/internal/entities"
	"halloweenhaunt/internal/feature"
	"halloweenhaunt/internal/level"
)

const (
	screenWidth      = 800
	screenHeight     = 600
	updatesPerSecond = 60

	collectRadius = 25.0
	magnetRadius  = 50.0

	messageTicks = 180

	shakeIntensity = 10
	shakeTicks     = 5

	nightGhostCount   = 2
	nightGhostMinDist = 5 * level.TileSize
	nightGhostTries   = 50

	settingsEntries = 2
)

type Game struct {
	cfg config.Config

	state State
	prev  State

	settingsReturn State
	settingsSel    int

	levels   *level.Manager
	lvl      *level.Level
	cemetery *level.CemeteryArea
	player   *entities.Player

	features         *feature.Manager
	cemeteryFeatures *feature.Manager

	cam   Camera
	audio *AudioManager
	rng   *rand.Rand

	tutorial Tutorial

	tick        int
	nightTimer  int
	nightActive bool

	message      string
	messageTimer int

	shakeTimer int

	// Cemetery gate entry is a two-step handshake: the prompt shows once
	// per visit to the gate tile, and entry happens at most once until the
	// player steps off it.
	gatePrompted bool
	gateEntered  bool
	exitPrompted bool

	fullscreen bool
}

func New(cfg config.Config) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		cfg:    cfg,
		state:  StateMainMenu,
		levels: level.NewManager(cfg.CandiesPerLevel, cfg.TotalLevels, rng),
		audio:  NewAudioManager("", cfg.MusicVolume, cfg.SFXVolume),
		rng:    rng,
	}
	g.tutorial.Completed = LoadProgress().TutorialCompleted
	g.audio.PlayMenuMusic()
	return g
}

func (g *Game) ScreenWidth() int  { return screenWidth * g.cfg.WindowScale }
func (g *Game) ScreenHeight() int { return screenHeight * g.cfg.WindowScale }

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func (g *Game) Update() error {
	g.tick++
	in := readInput()

	if in.fullscreen {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if in.quitRequested {
		g.saveOnExit()
		return ebiten.Termination
	}

	g.tickTimers()

	switch g.state {
	case StateMainMenu:
		if in.confirm {
			g.StartNewGame()
		} else if in.load {
			g.LoadGame()
		} else if in.settings {
			g.ShowSettings()
		}
	case StateTutorial:
		g.updateTutorial(in)
	case StatePlaying:
		if in.escape {
			g.Pause()
			return nil
		}
		g.updatePlaying(in)
	case StatePaused:
		if in.escape {
			g.Resume()
		} else if in.restart {
			g.RestartLevel()
		} else if in.settings {
			g.ShowSettings()
		}
	case StateSettings:
		g.updateSettings(in)
	case StateCemetery:
		g.updateCemetery(in)
	case StateGameOver:
		if in.confirm {
			g.ReturnToMainMenu()
		} else if in.restart {
			g.RestartLevel()
		}
	case StateVictory:
		if in.confirm {
			g.ReturnToMainMenu()
		}
	}
	return nil
}

func (g *Game) updateTutorial(in frameInput) {
	if in.escape {
		g.tutorial.Completed = true
		g.finishTutorial()
		return
	}
	if in.interact {
		if g.tutorial.Advance() {
			g.finishTutorial()
			return
		}
		// SPACE advances the overlay; don't let it interact too.
		in.interact = false
		in.interactHeld = false
	}
	// The world keeps simulating behind the overlay.
	g.updateEntities(in)
}

func (g *Game) finishTutorial() {
	g.state = StatePlaying
	_ = SaveProgress(Progress{Level: 1, Score: 0, TutorialCompleted: true})
}

// StartNewGame builds a fresh player on level 1.
func (g *Game) StartNewGame() {
	g.player = entities.NewPlayer(0, 0)
	g.startLevel(g.levels.Load(1))
	if g.tutorial.Completed {
		g.state = StatePlaying
	} else {
		g.tutorial.Step = 0
		g.state = StateTutorial
	}
	g.audio.PlayGameplayMusic()
}

// LoadGame resumes from the saved progress file.
func (g *Game) LoadGame() {
	p := LoadProgress()
	g.player = entities.NewPlayer(0, 0)
	g.player.Score = p.Score
	num := p.Level
	if num > g.cfg.TotalLevels {
		num = g.cfg.TotalLevels
	}
	g.startLevel(g.levels.Load(num))
	g.state = StatePlaying
	g.audio.PlayGameplayMusic()
}

func (g *Game) startLevel(lvl *level.Level) {
	g.lvl = lvl
	g.player.X, g.player.Y = lvl.SpawnX, lvl.SpawnY
	g.player.Candies = 0
	g.cam.Snap(g.player.X, g.player.Y, lvl.Map)

	g.nightTimer = 0
	g.nightActive = false
	g.cemetery = nil
	g.cemeteryFeatures = nil
	g.gatePrompted, g.gateEntered, g.exitPrompted = false, false, false

	g.setupFeatures(lvl)
	g.showMessage(fmt.Sprintf("Level %d - Good luck!", g.levels.Current))
}

func (g *Game) setupFeatures(lvl *level.Level) {
	g.features = feature.NewManager()
	for _, s := range lvl.PuzzleSites {
		g.features.AddPuzzle(s.X, s.Y, g.rng)
	}
	for _, s := range lvl.DigSites {
		g.features.AddDigSite(s.X, s.Y)
	}
	for _, s := range lvl.TrapSites {
		g.features.AddTrap(s.X, s.Y)
	}
}

// Pause suspends play. Only gameplay can be paused.
func (g *Game) Pause() {
	if g.state == StatePlaying || g.state == StateCemetery {
		g.prev = g.state
		g.state = StatePaused
	}
}

func (g *Game) Resume() {
	if g.state == StatePaused {
		g.state = g.prev
	}
}

// ShowSettings opens the settings screen, remembering where to return.
func (g *Game) ShowSettings() {
	g.settingsReturn = g.state
	g.state = StateSettings
}

func (g *Game) updateSettings(in frameInput) {
	if in.escape {
		g.state = g.settingsReturn
		return
	}
	if in.navUp && g.settingsSel > 0 {
		g.settingsSel--
	}
	if in.navDown && g.settingsSel < settingsEntries-1 {
		g.settingsSel++
	}

	delta := 0.0
	if in.swap.Left {
		delta = -0.1
	}
	if in.swap.Right {
		delta = 0.1
	}
	if delta == 0 {
		return
	}
	switch g.settingsSel {
	case 0:
		g.cfg.MusicVolume = clamp(g.cfg.MusicVolume+delta, 0, 1)
	case 1:
		g.cfg.SFXVolume = clamp(g.cfg.SFXVolume+delta, 0, 1)
	}
	g.audio.SetVolumes(g.cfg.MusicVolume, g.cfg.SFXVolume)
}

// RestartLevel regenerates the current level and resets the player.
func (g *Game) RestartLevel() {
	if g.player == nil {
		return
	}
	g.player.Health = entities.PlayerStartHealth
	g.startLevel(g.levels.Restart())
	g.state = StatePlaying
}

func (g *Game) ReturnToMainMenu() {
	if g.player != nil && g.lvl != nil {
		_ = SaveProgress(Progress{
			Level:             g.levels.Current,
			Score:             g.player.Score,
			TutorialCompleted: g.tutorial.Completed,
		})
	}
	g.state = StateMainMenu
	g.audio.PlayMenuMusic()
}

func (g *Game) saveOnExit() {
	if g.player != nil && g.lvl != nil {
		_ = SaveProgress(Progress{
			Level:             g.levels.Current,
			Score:             g.player.Score,
			TutorialCompleted: g.tutorial.Completed,
		})
	}
}

func (g *Game) showMessage(text string) {
	g.message = text
	g.messageTimer = messageTicks
}

func (g *Game) triggerShake() {
	g.shakeTimer = shakeTicks
}

func (g *Game) tickTimers() {
	if g.messageTimer > 0 {
		g.messageTimer--
		if g.messageTimer == 0 {
			g.message = ""
		}
	}
	if g.shakeTimer > 0 {
		g.shakeTimer--
	}
}
