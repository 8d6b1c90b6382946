// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-defense/internal/config"
	"go-tower-defense/internal/entity"
	"go-tower-defense/pkg/grid"
	"go-tower-defense/pkg/render"
)

// RenderSystem рисует сущности: башни, врагов и лучи выстрелов
type RenderSystem struct {
	ecs   *entity.ECS
	field *render.GridRenderer
}

func NewRenderSystem(ecs *entity.ECS, field *render.GridRenderer) *RenderSystem {
	return &RenderSystem{ecs: ecs, field: field}
}

// Draw renders every tower and enemy. hovered, if it holds a tower, gets its range circle.
func (s *RenderSystem) Draw(screen *ebiten.Image, hovered grid.Pos) {
	radius := float32(config.TileSize) / 3

	for _, pos := range s.ecs.TowerOrder {
		tower := s.ecs.Towers[pos]
		cx, cy := s.field.WorldToScreen(float64(pos.X), float64(pos.Y))
		vector.DrawFilledCircle(screen, cx, cy, radius, typeColor(int(tower.Type)), true)

		if pos == hovered {
			vector.StrokeCircle(screen, cx, cy, float32(tower.Range)*config.TileSize, 2, config.RangeColor, true)
		}
	}

	for _, enemy := range s.ecs.Enemies {
		ex, ey := s.field.WorldToScreen(enemy.X, enemy.Y)
		vector.DrawFilledCircle(screen, ex, ey, radius/2, typeColor(int(enemy.Type)), true)
	}

	// Лучи поверх всего
	for _, pos := range s.ecs.TowerOrder {
		tower := s.ecs.Towers[pos]
		target, ok := s.ecs.Enemy(tower.Target)
		if !ok {
			continue
		}
		beam := config.BeamIdleColor
		if tower.FiredThisTick {
			beam = config.BeamFireColor
		}
		cx, cy := s.field.WorldToScreen(float64(pos.X), float64(pos.Y))
		ex, ey := s.field.WorldToScreen(target.X, target.Y)
		vector.StrokeLine(screen, cx, cy, ex, ey, config.LineWidth, beam, true)
	}
}

func typeColor(i int) color.RGBA {
	if i < 0 || i >= len(config.TypeColors) {
		return config.UnknownColor
	}
	return config.TypeColors[i]
}
