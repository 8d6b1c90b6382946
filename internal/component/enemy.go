// internal/component/enemy.go
package component

import (
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/types"
	"go-tower-defense/pkg/grid"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID     types.EntityID
	Type   defs.EnemyType
	Health float64
	Speed  float64 // клеток за тик
	Damage int
	Bounty int

	// Last is the tile centre most recently occupied, Next the tile being entered.
	// Both are kept so a reroute behind the enemy can be undone by swapping them.
	Last grid.Pos
	Next grid.Pos

	// Continuous position in tile units, used for drawing and range checks.
	X, Y float64

	Direction        grid.Direction
	PercentTravelled float64
}

// NewEnemy builds an enemy standing on start and heading in dir.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, start grid.Pos, dir grid.Direction) *Enemy {
	return &Enemy{
		ID:        id,
		Type:      def.ID,
		Health:    def.Health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		Bounty:    def.Bounty,
		Last:      start,
		Next:      start.Add(dir),
		X:         float64(start.X),
		Y:         float64(start.Y),
		Direction: dir,
	}
}

// IsDead reports whether health has run out.
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}
