// internal/app/tower_management.go
package app

import (
	"go-tower-defense/internal/component"
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/event"
	"go-tower-defense/internal/system"
	"go-tower-defense/pkg/grid"
)

// RequestPlacement пытается поставить башню типа t на клетку p.
// A rejection leaves the grid, the flow field, money and towers untouched.
func (g *Game) RequestPlacement(p grid.Pos, t defs.TowerType) system.PlacementResult {
	def, ok := g.lib.Tower(t)
	if !ok {
		return g.reject(p, t, system.PlacementUnknownType)
	}

	r := system.ValidatePlacement(g.grid, g.preview, p, g.cfg.Start, g.cfg.Goal, g.ECS.Enemies)
	g.previewCached = false
	if !r.OK() {
		return g.reject(p, t, r)
	}
	if !g.player.CanAfford(def.BuyPrice) {
		return g.reject(p, t, system.PlacementInsufficientFunds)
	}

	g.player.Money -= def.BuyPrice
	g.grid.Set(p, grid.Tower)
	g.ECS.AddTower(component.NewTower(def, p))
	g.reroute()

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{Pos: p, Type: t, Price: def.BuyPrice},
	})
	return system.PlacementOK
}

// SetBlocked turns p into static terrain. It is held to the same rules as a
// tower, so it can never cut the goal off or trap an enemy.
func (g *Game) SetBlocked(p grid.Pos) system.PlacementResult {
	r := system.ValidatePlacement(g.grid, g.preview, p, g.cfg.Start, g.cfg.Goal, g.ECS.Enemies)
	g.previewCached = false
	if !r.OK() {
		return r
	}
	g.grid.Set(p, grid.Blocked)
	g.reroute()
	return system.PlacementOK
}

// Preview validates p for hover feedback and leaves the speculative field in
// PreviewField. Repeated calls for the same tile and world state are free.
func (g *Game) Preview(p grid.Pos) system.PlacementResult {
	if g.previewCached && g.previewPos == p {
		return g.previewResult
	}
	g.previewPos = p
	g.previewResult = system.ValidatePlacement(g.grid, g.preview, p, g.cfg.Start, g.cfg.Goal, g.ECS.Enemies)
	g.previewCached = true
	return g.previewResult
}

// reroute refreshes the live field after the grid changed and turns around
// enemies whose route now lies behind them.
func (g *Game) reroute() {
	grid.Recompute(g.grid, g.field, g.cfg.Start, g.cfg.Goal)
	g.MovementSystem.Backtrack()
	g.touch()
}

func (g *Game) reject(p grid.Pos, t defs.TowerType, r system.PlacementResult) system.PlacementResult {
	g.log.Printf("placement of %v at %v rejected: %s", t, p, r)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlacementRejected,
		Data: event.PlacementRejectedData{Pos: p, Type: t, Reason: r.String()},
	})
	return r
}
