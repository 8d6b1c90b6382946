// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует игру под затемнением.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {
	s.previous.pauseButton.SetPaused(true)
}

func (s *PauseState) Update() error {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previous.pauseButton.IsClicked(x, y)
	}
	if unpause {
		s.previous.pauseButton.TogglePause()
		s.sm.SetState(s.previous)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	const pauseText = "PAUSED"
	x := (config.ScreenWidth - len(pauseText)*config.TextCharWidth) / 2
	text.Draw(screen, pauseText, fontFace, x, config.ScreenHeight/2, config.PanelTextColor)
	s.previous.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
