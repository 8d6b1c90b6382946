// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-defense/internal/component"
	"go-tower-defense/internal/config"
)

const (
	healthBarWidth  = 160
	healthBarHeight = 12
)

// PlayerHealthIndicator — полоска здоровья и счётчик денег в левом верхнем углу.
type PlayerHealthIndicator struct {
	X, Y      float32
	MaxHealth int
	fontFace  font.Face
}

func NewPlayerHealthIndicator(x, y float32, maxHealth int, fontFace font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, MaxHealth: maxHealth, fontFace: fontFace}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, player *component.Player) {
	frac := float32(0)
	if i.MaxHealth > 0 && player.Health > 0 {
		frac = float32(player.Health) / float32(i.MaxHealth)
		if frac > 1 {
			frac = 1
		}
	}
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.PanelColor, false)
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth*frac, healthBarHeight, config.HealthTextColor, false)
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, config.PanelTextColor, false)

	textY := int(i.Y) + healthBarHeight + 16
	text.Draw(screen, fmt.Sprintf("HP %d/%d", player.Health, i.MaxHealth), i.fontFace, int(i.X), textY, config.HealthTextColor)
	text.Draw(screen, fmt.Sprintf("$%d", player.Money), i.fontFace, int(i.X)+healthBarWidth-8*config.TextCharWidth, textY, config.MoneyTextColor)
}
