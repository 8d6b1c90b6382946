// internal/entity/ecs.go
package entity

import (
	"go-tower-defense/internal/component"
	"go-tower-defense/internal/types"
	"go-tower-defense/pkg/grid"
)

// ECS owns enemy and tower lifetimes for one session.
// Enemies keep spawn order because towers pick the first enemy found in range.
type ECS struct {
	NextID     types.EntityID
	Enemies    []*component.Enemy
	EnemyByID  map[types.EntityID]*component.Enemy
	Towers     map[grid.Pos]*component.Tower
	TowerOrder []grid.Pos // порядок постройки
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		EnemyByID: make(map[types.EntityID]*component.Enemy),
		Towers:    make(map[grid.Pos]*component.Tower),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy appends e to the end of the enemy list.
func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.EnemyByID[e.ID] = e
}

// RemoveEnemyAt removes the enemy at index i, keeping the order of the rest.
// Callers iterating the list must walk it back to front.
func (ecs *ECS) RemoveEnemyAt(i int) *component.Enemy {
	e := ecs.Enemies[i]
	copy(ecs.Enemies[i:], ecs.Enemies[i+1:])
	ecs.Enemies[len(ecs.Enemies)-1] = nil
	ecs.Enemies = ecs.Enemies[:len(ecs.Enemies)-1]
	delete(ecs.EnemyByID, e.ID)
	return e
}

// Enemy resolves a handle. A removed enemy is a miss.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	if id == 0 {
		return nil, false
	}
	e, ok := ecs.EnemyByID[id]
	return e, ok
}

// AddTower registers t at its position. The caller guarantees the tile is free.
func (ecs *ECS) AddTower(t *component.Tower) {
	if _, exists := ecs.Towers[t.Pos]; !exists {
		ecs.TowerOrder = append(ecs.TowerOrder, t.Pos)
	}
	ecs.Towers[t.Pos] = t
}

// TowerAt returns the tower on p, if any.
func (ecs *ECS) TowerAt(p grid.Pos) (*component.Tower, bool) {
	t, ok := ecs.Towers[p]
	return t, ok
}
