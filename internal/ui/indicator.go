// internal/ui/indicator.go
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-defense/internal/config"
	"go-tower-defense/internal/defs"
)

// StateIndicator показывает выбранный тип башни; клик переключает тип.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	Selected      defs.TowerType
	fontFace      font.Face
}

func NewStateIndicator(x, y, radius float32, fontFace font.Face) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, Selected: defs.TowerBasic, fontFace: fontFace}
}

// Draw рисует индикатор с ценой выбранной башни.
func (i *StateIndicator) Draw(screen *ebiten.Image, lib *defs.Library) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	clr := config.UnknownColor
	if int(i.Selected) < len(config.TypeColors) {
		clr = config.TypeColors[i.Selected]
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.PanelTextColor, true)

	label := i.Selected.String()
	if def, ok := lib.Tower(i.Selected); ok {
		label = fmt.Sprintf("%s $%d", label, def.BuyPrice)
	}
	x := int(i.X) - len(label)*config.TextCharWidth - int(i.Radius) - 8
	text.Draw(screen, label, i.fontFace, x, int(i.Y)+4, config.PanelTextColor)
}

func (i *StateIndicator) IsClicked(x, y int) bool {
	return insideCircle(x, y, i.X, i.Y, i.Radius)
}

// Select switches to tower type t.
func (i *StateIndicator) Select(t defs.TowerType) {
	i.Selected = t
	i.LastClickTime = time.Now()
}

// Cycle moves to the next tower type.
func (i *StateIndicator) Cycle() {
	i.Select(defs.TowerTypes[(int(i.Selected)+1)%len(defs.TowerTypes)])
}
