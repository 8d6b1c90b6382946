// internal/interfaces/game_context.go
package interfaces

import (
	"go-tower-defense/internal/component"
	"go-tower-defense/internal/defs"
	"go-tower-defense/pkg/grid"
)

// GameContext is the read-only view renderers draw from.
type GameContext interface {
	Grid() *grid.Grid
	FlowField() *grid.FlowField
	PreviewField() *grid.FlowField
	Enemies() []*component.Enemy
	Towers() []*component.Tower
	TowerAt(p grid.Pos) (*component.Tower, bool)
	Player() *component.Player
	Library() *defs.Library
	Start() grid.Pos
	Goal() grid.Pos
	Ticks() uint64
}
