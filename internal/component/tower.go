// internal/component/tower.go
package component

import (
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/types"
	"go-tower-defense/pkg/grid"
)

// TowerState — состояние башни
type TowerState int

const (
	TowerIdle TowerState = iota
	TowerEngaged
)

func (s TowerState) String() string {
	if s == TowerEngaged {
		return "Engaged"
	}
	return "Idle"
}

type Tower struct {
	Type         defs.TowerType
	Pos          grid.Pos
	BuyPrice     int
	SellPrice    int
	Range        float64
	RangeSquared float64
	Reload       float64 // интервал перезарядки
	Damage       float64

	// Target is a non-owning handle into the enemy collection, zero when idle.
	Target      types.EntityID
	ReloadTimer float64
	// FiredThisTick is set on the tick the tower dealt damage; overlays use it for the beam colour.
	FiredThisTick bool
}

// NewTower creates an idle tower from its definition.
func NewTower(def defs.TowerDefinition, pos grid.Pos) *Tower {
	return &Tower{
		Type:         def.ID,
		Pos:          pos,
		BuyPrice:     def.BuyPrice,
		SellPrice:    def.SellPrice,
		Range:        def.Range,
		RangeSquared: def.RangeSquared(),
		Reload:       def.Reload,
		Damage:       def.Damage,
	}
}

// State reports whether the tower currently holds a target.
func (t *Tower) State() TowerState {
	if t.Target != 0 {
		return TowerEngaged
	}
	return TowerIdle
}

// InRange reports whether point (x, y) lies within the tower's range.
func (t *Tower) InRange(x, y float64) bool {
	return t.Pos.DistanceSquared(x, y) <= t.RangeSquared
}
