// internal/interfaces/game.go
package interfaces

import (
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/system"
	"go-tower-defense/internal/types"
	"go-tower-defense/pkg/grid"
)

// Game — команды, которые фронтенд отправляет сессии
type Game interface {
	GameContext

	Tick()
	RequestPlacement(p grid.Pos, t defs.TowerType) system.PlacementResult
	Preview(p grid.Pos) system.PlacementResult
	SpawnRandom() (types.EntityID, error)
}
