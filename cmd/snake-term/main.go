// Command snake-term plays the game in a terminal.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/audio"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/logging"
	"gridsnake/terminal"
)

const frameInterval = 16 * time.Millisecond

func main() {
	cfg, err := config.Load(os.Args[1:], config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(2)
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	logFile, err := logging.Setup(cfg.Debug, cfg.LogDir, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	session := cfg.Session
	if !cfg.SkipWelcome {
		var ok bool
		if session, ok = runPrompt(screen, events, cfg); !ok {
			return
		}
	}

	run(screen, events, cfg, session)
}

func runPrompt(screen tcell.Screen, events <-chan tcell.Event, cfg config.Config) (config.Session, bool) {
	prompt := terminal.NewPrompt(screen, cfg.Session.PlayerName, cfg.Difficulty)
	for {
		prompt.Draw()
		screen.Show()

		switch ev := (<-events).(type) {
		case *tcell.EventKey:
			prompt.HandleKey(ev.Key(), ev.Rune())
		case *tcell.EventResize:
			screen.Sync()
		}
		if prompt.Cancelled() {
			return config.Session{}, false
		}
		if prompt.Done() {
			return prompt.Session(), true
		}
	}
}

func run(screen tcell.Screen, events <-chan tcell.Event, cfg config.Config, session config.Session) {
	g := game.NewGame(terminal.GridForScreen(screen.Size()), session, cfg.Seed)

	scores := manager.NewScoreBoard(cfg.ScoresFile)
	g.SetLeaderboard(scores)

	renderer := terminal.NewRenderer(screen, scores)
	g.AddSink(renderer)

	cues := audio.NewCues()
	if err := cues.Init(); err != nil {
		log.Printf("audio: %v", err)
	}
	defer cues.Close()
	g.AddSink(cues)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := terminal.KeyCommand(ev.Key(), ev.Rune())
				switch {
				case cmd.Quit:
					return
				case cmd.Toggle:
					g.Toggle()
				case cmd.Direction.Valid():
					g.ChangeDirection(cmd.Direction)
				}
			case *tcell.EventResize:
				grid := terminal.GridForScreen(screen.Size())
				g.OnResize(grid.Width, grid.Height)
				screen.Sync()
			}

		case now := <-ticker.C:
			g.Update(now.Sub(last))
			last = now
			renderer.Draw()
			screen.Show()
		}
	}
}
