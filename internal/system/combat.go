// internal/system/combat.go
package system

import (
	"go-tower-defense/internal/component"
	"go-tower-defense/internal/entity"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update runs target upkeep and firing for every tower, in build order.
// Damage only lowers health; dead enemies are reaped by MovementSystem next tick.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, pos := range s.ecs.TowerOrder {
		tower, ok := s.ecs.Towers[pos]
		if !ok {
			continue
		}
		tower.FiredThisTick = false

		target := s.validTarget(tower)
		if target == nil {
			tower.Target = 0
			target = s.acquireTarget(tower)
		}

		tower.ReloadTimer -= deltaTime

		if target != nil && tower.ReloadTimer <= 0 {
			target.Health -= tower.Damage
			tower.ReloadTimer = tower.Reload
			tower.FiredThisTick = true
		}
	}
}

// validTarget re-resolves the tower's handle and checks it is still alive and in range.
func (s *CombatSystem) validTarget(tower *component.Tower) *component.Enemy {
	if tower.Target == 0 {
		return nil
	}
	enemy, ok := s.ecs.Enemy(tower.Target)
	if !ok || enemy.IsDead() || !tower.InRange(enemy.X, enemy.Y) {
		return nil
	}
	return enemy
}

// acquireTarget picks the first live enemy in spawn order that is in range,
// not the nearest one.
func (s *CombatSystem) acquireTarget(tower *component.Tower) *component.Enemy {
	for _, enemy := range s.ecs.Enemies {
		if enemy.IsDead() {
			continue
		}
		if tower.InRange(enemy.X, enemy.Y) {
			tower.Target = enemy.ID
			return enemy
		}
	}
	return nil
}
