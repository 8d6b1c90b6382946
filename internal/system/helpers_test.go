package system

import (
	"testing"

	"go-tower-defense/internal/component"
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/entity"
	"go-tower-defense/pkg/grid"
)

// world bundles the state a session would own, for driving systems directly.
type world struct {
	grid     *grid.Grid
	field    *grid.FlowField
	scratch  *grid.FlowField
	ecs      *entity.ECS
	player   *component.Player
	movement *MovementSystem
	combat   *CombatSystem
	start    grid.Pos
	goal     grid.Pos
}

func newWorld(t *testing.T, width, height int, start, goal grid.Pos) *world {
	t.Helper()
	w := &world{
		grid:    grid.NewGrid(width, height),
		field:   grid.NewFlowField(width, height),
		scratch: grid.NewFlowField(width, height),
		ecs:     entity.NewECS(),
		player:  &component.Player{Health: 100, Money: 999},
		start:   start,
		goal:    goal,
	}
	if !grid.Recompute(w.grid, w.field, start, goal) {
		t.Fatal("goal unreachable on a fresh grid")
	}
	w.movement = NewMovementSystem(w.ecs, w.player, w.field, goal, nil)
	w.combat = NewCombatSystem(w.ecs)
	return w
}

// classic is the 20×11 layout with start and goal on the middle row.
func classic(t *testing.T) *world {
	return newWorld(t, 20, 11, grid.Pos{X: 0, Y: 5}, grid.Pos{X: 19, Y: 5})
}

// place commits a tower the way the session does: tile, field, backtracking.
func (w *world) place(t *testing.T, p grid.Pos, def defs.TowerDefinition) *component.Tower {
	t.Helper()
	if r := ValidatePlacement(w.grid, w.scratch, p, w.start, w.goal, w.ecs.Enemies); !r.OK() {
		t.Fatalf("placement at %v rejected: %v", p, r)
	}
	w.grid.Set(p, grid.Tower)
	tower := component.NewTower(def, p)
	w.ecs.AddTower(tower)
	grid.Recompute(w.grid, w.field, w.start, w.goal)
	w.movement.Backtrack()
	return tower
}

func enemyDef(speed float64) defs.EnemyDefinition {
	return defs.EnemyDefinition{ID: defs.EnemyBasic, Health: 10, Speed: speed, Damage: 3, Bounty: 4}
}

func towerDef(rng, reload, damage float64) defs.TowerDefinition {
	return defs.TowerDefinition{ID: defs.TowerBasic, BuyPrice: 3, Range: rng, Reload: reload, Damage: damage}
}
