// cmd/tdterm/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-tower-defense/internal/app"
	"go-tower-defense/internal/config"
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/term"
)

func main() {
	defsPath := flag.String("defs", "", "JSON file with enemy and tower definitions")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	preset := flag.String("map", "open", "map preset")
	logPath := flag.String("log", "", "write the session log to this file")
	flag.Parse()

	// терминал занят экраном, лог уходит в файл или никуда
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	game, err := newGame(*defsPath, *preset, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, term.NewView(screen, game))
}

func newGame(defsPath, preset string, seed int64) (*app.Game, error) {
	lib := defs.DefaultLibrary()
	if defsPath != "" {
		loaded, err := defs.LoadLibrary(defsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load definitions: %w", err)
		}
		lib = loaded
	}
	blocked, ok := config.Presets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown map preset %q", preset)
	}
	cfg := config.Default()
	cfg.Seed = seed
	cfg.Blocked = blocked
	return app.NewGame(cfg, lib)
}

func run(screen tcell.Screen, view *term.View) {
	ticker := time.NewTicker(time.Second / config.FPS)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	view.Draw()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !view.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				// экран закрыт
				return
			}
		case <-ticker.C:
			view.Update()
			view.Draw()
		}
	}
}
