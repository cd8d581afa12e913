package main

import (
	"fmt"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/audio"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/logging"
	"gridsnake/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:], config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(2)
	}

	logFile, err := logging.Setup(cfg.Debug, cfg.LogDir, os.Stderr)
	if err != nil {
		log.Printf("logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(1280, 800, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	session := cfg.Session
	if !cfg.SkipWelcome {
		welcome := ui.NewWelcome(session.PlayerName, cfg.Difficulty)
		for !welcome.Done() {
			if rl.WindowShouldClose() {
				return
			}
			welcome.Update()
			welcome.Draw()
		}
		session = welcome.Session()
	}

	grid := ui.GridForWindow(rl.GetScreenWidth(), rl.GetScreenHeight(), cfg.CellSize)
	g := game.NewGame(grid, session, cfg.Seed)

	scores := manager.NewScoreBoard(cfg.ScoresFile)
	g.SetLeaderboard(scores)

	renderer := ui.NewRenderer(scores)
	g.AddSink(renderer)

	cues := audio.NewCues()
	if err := cues.Init(); err != nil {
		// Non-fatal, play without sound
		log.Printf("audio: %v", err)
	}
	defer cues.Close()
	g.AddSink(cues)

	for !rl.WindowShouldClose() {
		if !ui.HandleInput(g) {
			break
		}

		if rl.IsWindowResized() {
			grid := ui.GridForWindow(rl.GetScreenWidth(), rl.GetScreenHeight(), cfg.CellSize)
			g.OnResize(grid.Width, grid.Height)
		}

		g.Update(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
		renderer.Draw()
	}
}
