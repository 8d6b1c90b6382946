// internal/system/movement.go
package system

import (
	"go-tower-defense/internal/component"
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/entity"
	"go-tower-defense/internal/event"
	"go-tower-defense/pkg/grid"
)

// MovementSystem двигает врагов по полю потока и убирает мёртвых.
type MovementSystem struct {
	ecs             *entity.ECS
	player          *component.Player
	field           *grid.FlowField
	goal            grid.Pos
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, player *component.Player, field *grid.FlowField, goal grid.Pos, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		player:          player,
		field:           field,
		goal:            goal,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn creates an enemy on start, heading wherever the flow field points.
func (s *MovementSystem) Spawn(def defs.EnemyDefinition, start grid.Pos) *component.Enemy {
	enemy := component.NewEnemy(s.ecs.NewEntity(), def, start, s.field.At(start))
	s.ecs.AddEnemy(enemy)
	s.dispatch(event.EnemySpawned, enemy, 0)
	return enemy
}

// Update advances every enemy by one tick. The list is walked back to front
// so removals never skip or revisit an entry.
func (s *MovementSystem) Update() {
	for i := len(s.ecs.Enemies) - 1; i >= 0; i-- {
		enemy := s.ecs.Enemies[i]

		if enemy.IsDead() {
			s.player.Money += enemy.Bounty
			s.ecs.RemoveEnemyAt(i)
			s.dispatch(event.EnemyKilled, enemy, enemy.Bounty)
			continue
		}

		dx, dy := enemy.Direction.Vector()
		enemy.X += float64(dx) * enemy.Speed
		enemy.Y += float64(dy) * enemy.Speed
		enemy.PercentTravelled += enemy.Speed

		if enemy.PercentTravelled < 1 {
			continue
		}

		// Snap to the tile centre in case speed is not a unit fraction
		enemy.X = float64(enemy.Next.X)
		enemy.Y = float64(enemy.Next.Y)

		if enemy.Next == s.goal {
			s.player.Health -= enemy.Damage
			s.ecs.RemoveEnemyAt(i)
			s.dispatch(event.EnemyReachedGoal, enemy, enemy.Damage)
			continue
		}

		enemy.Last = enemy.Next
		enemy.Direction = s.field.At(enemy.Last)
		enemy.Next = enemy.Last.Add(enemy.Direction)
		enemy.PercentTravelled = 0
	}
}

// Backtrack fixes up enemies whose route was rerouted behind them by the
// last flow-field recompute. Must run right after every recompute.
//
// Such an enemy turns around: last and next swap and the progress is
// mirrored, so its continuous position stays where it is.
func (s *MovementSystem) Backtrack() {
	for _, enemy := range s.ecs.Enemies {
		d := s.field.At(enemy.Last)
		if d == grid.None || d == enemy.Direction {
			continue
		}
		enemy.Last, enemy.Next = enemy.Next, enemy.Last
		enemy.Direction = enemy.Direction.Opposite()
		enemy.PercentTravelled = 1 - enemy.PercentTravelled
	}
}

func (s *MovementSystem) dispatch(t event.EventType, enemy *component.Enemy, amount int) {
	if s.eventDispatcher == nil {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.EnemyData{ID: enemy.ID, Type: enemy.Type, Tile: enemy.Last, Amount: amount},
	})
}
