// internal/event/payload.go
package event

import (
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/types"
	"go-tower-defense/pkg/grid"
)

// TowerPlacedData accompanies TowerPlaced.
type TowerPlacedData struct {
	Pos   grid.Pos
	Type  defs.TowerType
	Price int
}

// PlacementRejectedData accompanies PlacementRejected. Reason holds the
// string form of the validator's result.
type PlacementRejectedData struct {
	Pos    grid.Pos
	Type   defs.TowerType
	Reason string
}

// EnemyData accompanies the enemy lifecycle events.
type EnemyData struct {
	ID     types.EntityID
	Type   defs.EnemyType
	Tile   grid.Pos
	Amount int // bounty for EnemyKilled, damage for EnemyReachedGoal
}
