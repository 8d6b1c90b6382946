// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-defense/internal/component"
	"go-tower-defense/internal/config"
	"go-tower-defense/internal/system"
	"go-tower-defense/pkg/grid"
)

const (
	panelHeight    = 80
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 220
)

// InfoPanel выезжает снизу и показывает башню под курсором
// или причину, по которой сюда нельзя строить.
type InfoPanel struct {
	IsVisible bool
	fontFace  font.Face
	currentY  float64
	targetY   float64

	tower  *component.Tower
	tile   grid.Pos
	result system.PlacementResult
}

func NewInfoPanel(fontFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: fontFace,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

// ShowTower shows the stats of t.
func (p *InfoPanel) ShowTower(t *component.Tower) {
	p.tower = t
	p.tile = t.Pos
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

// ShowTile shows the placement verdict for an empty tile.
func (p *InfoPanel) ShowTile(tile grid.Pos, r system.PlacementResult) {
	p.tower = nil
	p.tile = tile
	p.result = r
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.tower = nil
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	rect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, config.RangeColor, true)

	x, y := rect.Min.X+15, rect.Min.Y+20
	if p.tower == nil {
		text.Draw(screen, fmt.Sprintf("Tile %d,%d", p.tile.X, p.tile.Y), p.fontFace, x, y, config.PanelTextColor)
		clr := config.PanelTextColor
		if !p.result.OK() {
			clr = config.HealthTextColor
		}
		text.Draw(screen, "Build: "+p.result.String(), p.fontFace, x, y+lineHeight, clr)
		return
	}

	t := p.tower
	text.Draw(screen, fmt.Sprintf("%s tower at %d,%d", t.Type, t.Pos.X, t.Pos.Y), p.fontFace, x, y, config.PanelTextColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %.2f", t.Damage), p.fontFace, x, y, config.PanelTextColor)
	text.Draw(screen, fmt.Sprintf("Range: %.1f", t.Range), p.fontFace, x+columnSpacing, y, config.PanelTextColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Reload: %.3fs", t.Reload), p.fontFace, x, y, config.PanelTextColor)
	text.Draw(screen, fmt.Sprintf("State: %s", t.State()), p.fontFace, x+columnSpacing, y, config.PanelTextColor)
	text.Draw(screen, fmt.Sprintf("Sell: $%d", t.SellPrice), p.fontFace, x+2*columnSpacing, y, config.MoneyTextColor)
}
