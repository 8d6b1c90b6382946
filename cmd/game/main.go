// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-tower-defense/internal/app"
	"go-tower-defense/internal/config"
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "JSON file with enemy and tower definitions")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	preset := flag.String("map", "", "start directly on this map preset instead of the menu")
	flag.Parse()

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		loaded, err := defs.LoadLibrary(*defsPath)
		if err != nil {
			log.Fatalf("failed to load definitions: %v", err)
		}
		lib = loaded
	}

	newGame := func(name string) (*app.Game, error) {
		blocked, ok := config.Presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown map preset %q", name)
		}
		cfg := config.Default()
		cfg.Seed = *seed
		cfg.Blocked = blocked
		return app.NewGame(cfg, lib)
	}

	sm := state.NewStateMachine()
	if *preset != "" {
		game, err := newGame(*preset)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(state.NewGameState(sm, game))
	} else {
		sm.SetState(state.NewMenuState(sm, newGame))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	ebiten.SetTPS(config.FPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
