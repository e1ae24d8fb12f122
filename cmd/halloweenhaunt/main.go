package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"halloweenhaunt/internal/config"
	"halloweenhaunt/internal/game"
)

func main() {
	// Optional .env for HAUNT_* overrides (audio, config paths).
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	g := game.New(cfg)
	ebiten.SetWindowTitle("Halloween Haunt: Candy Quest")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetFullscreen(cfg.Fullscreen)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
