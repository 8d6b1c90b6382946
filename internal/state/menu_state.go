// internal/state/menu_state.go
package state

import (
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-tower-defense/internal/app"
	"go-tower-defense/internal/config"
)

// GameFactory builds a session for the named map preset.
type GameFactory func(preset string) (*app.Game, error)

// MenuState — выбор карты перед началом игры
type MenuState struct {
	sm       *StateMachine
	newGame  GameFactory
	presets  []string
	selected int
}

func NewMenuState(sm *StateMachine, newGame GameFactory) *MenuState {
	presets := make([]string, 0, len(config.Presets))
	for name := range config.Presets {
		presets = append(presets, name)
	}
	sort.Strings(presets)
	return &MenuState{sm: sm, newGame: newGame, presets: presets}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		m.selected = (m.selected - 1 + len(m.presets)) % len(m.presets)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.selected = (m.selected + 1) % len(m.presets)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		game, err := m.newGame(m.presets[m.selected])
		if err != nil {
			log.Printf("cannot start %q: %v", m.presets[m.selected], err)
			return nil
		}
		m.sm.SetState(NewGameState(m.sm, game))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	x, y := config.ScreenWidth/2-80, config.ScreenHeight/3
	text.Draw(screen, "Choose a map (Enter to start)", fontFace, x, y, config.PanelTextColor)
	for i, name := range m.presets {
		clr := config.PanelTextColor
		prefix := "  "
		if i == m.selected {
			clr = config.MoneyTextColor
			prefix = "> "
		}
		text.Draw(screen, prefix+name, fontFace, x, y+(i+2)*20, clr)
	}
}

func (m *MenuState) Exit() {}
