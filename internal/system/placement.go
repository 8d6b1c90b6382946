// internal/system/placement.go
package system

import (
	"go-tower-defense/internal/component"
	"go-tower-defense/internal/config"
	"go-tower-defense/pkg/grid"
)

// PlacementResult — итог проверки размещения башни
type PlacementResult int

const (
	PlacementOK PlacementResult = iota
	PlacementOutOfBounds
	PlacementReserved // start or goal tile
	PlacementOccupied
	PlacementBlocksPath
	PlacementTrapsEnemy
	PlacementInsufficientFunds
	PlacementUnknownType
)

func (r PlacementResult) String() string {
	switch r {
	case PlacementOK:
		return "ok"
	case PlacementOutOfBounds:
		return "out of bounds"
	case PlacementReserved:
		return "start or goal tile"
	case PlacementOccupied:
		return "tile occupied"
	case PlacementBlocksPath:
		return "would block the path"
	case PlacementTrapsEnemy:
		return "would trap an enemy"
	case PlacementInsufficientFunds:
		return "not enough money"
	case PlacementUnknownType:
		return "unknown tower type"
	}
	return "unknown"
}

// OK reports whether the placement may proceed.
func (r PlacementResult) OK() bool {
	return r == PlacementOK
}

// CanPlace reports whether a tower on p keeps start connected to goal.
// The tower is written into g only for the duration of the check; scratch
// receives the speculative flow field and the real field is never touched.
func CanPlace(g *grid.Grid, scratch *grid.FlowField, p, start, goal grid.Pos) bool {
	if !g.InBounds(p) {
		return false
	}
	if p == start || p == goal {
		return false
	}
	tile := g.At(p)
	if tile != grid.Empty {
		return false
	}

	g.Set(p, grid.Tower)
	defer g.Set(p, tile)

	return grid.Recompute(g, scratch, start, goal)
}

// TrapsEnemy reports whether the speculative field in scratch would leave an
// enemy with nowhere to go. scratch must come from CanPlace for the same tile.
//
// An enemy is trapped when its last tile has no direction, unless it is
// already past the midpoint of its move and its next tile still has one.
func TrapsEnemy(scratch *grid.FlowField, enemies []*component.Enemy) bool {
	cleared := make(map[grid.Pos]struct{}, len(enemies))
	for _, enemy := range enemies {
		if _, ok := cleared[enemy.Last]; ok {
			continue
		}
		if scratch.At(enemy.Last) == grid.None {
			if enemy.PercentTravelled < config.TransitMidpoint {
				return true
			}
			if scratch.At(enemy.Next) == grid.None {
				return true
			}
		}
		cleared[enemy.Last] = struct{}{}
	}
	return false
}

// ValidatePlacement runs both checks and explains a rejection.
// Neither g nor the live flow field is changed.
func ValidatePlacement(g *grid.Grid, scratch *grid.FlowField, p, start, goal grid.Pos, enemies []*component.Enemy) PlacementResult {
	switch {
	case !g.InBounds(p):
		return PlacementOutOfBounds
	case p == start || p == goal:
		return PlacementReserved
	case g.At(p) != grid.Empty:
		return PlacementOccupied
	}
	if !CanPlace(g, scratch, p, start, goal) {
		return PlacementBlocksPath
	}
	if TrapsEnemy(scratch, enemies) {
		return PlacementTrapsEnemy
	}
	return PlacementOK
}
