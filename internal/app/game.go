// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-tower-defense/internal/component"
	"go-tower-defense/internal/config"
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/entity"
	"go-tower-defense/internal/event"
	"go-tower-defense/internal/interfaces"
	"go-tower-defense/internal/system"
	"go-tower-defense/internal/types"
	"go-tower-defense/internal/utils"
	"go-tower-defense/pkg/grid"
)

var (
	ErrInvalidDimensions = errors.New("field dimensions must be positive")
	ErrInvalidEndpoints  = errors.New("start and goal must be distinct tiles inside the field")
	ErrUnreachableGoal   = errors.New("goal is unreachable from start")
	ErrUnknownEnemy      = errors.New("unknown enemy type")
	ErrEmptySpawnTable   = errors.New("spawn table is empty")
)

// Game — одна игровая сессия: поле, поток, враги, башни и игрок.
// Все методы вызываются из одной горутины.
type Game struct {
	id   uuid.UUID
	cfg  config.Settings
	lib  *defs.Library
	log  *log.Logger
	grid *grid.Grid

	field   *grid.FlowField
	preview *grid.FlowField // speculative field of the last validation

	ECS             *entity.ECS
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	player *component.Player
	ticks  uint64

	// кэш превью, сбрасывается при любом изменении мира
	previewPos    grid.Pos
	previewResult system.PlacementResult
	previewCached bool
}

// NewGame validates cfg, lays down its static terrain and computes the first
// flow field. A nil library means the built-in definitions.
func NewGame(cfg config.Settings, lib *defs.Library) (*Game, error) {
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}

	g := &Game{
		id:              uuid.New(),
		cfg:             cfg,
		lib:             lib,
		grid:            grid.NewGrid(cfg.Width, cfg.Height),
		field:           grid.NewFlowField(cfg.Width, cfg.Height),
		preview:         grid.NewFlowField(cfg.Width, cfg.Height),
		ECS:             entity.NewECS(),
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(cfg.Seed),
		player: &component.Player{
			Health: cfg.StartingHealth,
			Money:  cfg.StartingMoney,
		},
	}
	g.log = log.New(log.Writer(), fmt.Sprintf("[%s] ", g.id.String()[:8]), log.LstdFlags|log.Lmsgprefix)

	if !g.grid.InBounds(cfg.Start) || !g.grid.InBounds(cfg.Goal) || cfg.Start == cfg.Goal {
		return nil, fmt.Errorf("%w: start %v, goal %v", ErrInvalidEndpoints, cfg.Start, cfg.Goal)
	}
	if !g.grid.IsPassable(cfg.Start) || !g.grid.IsPassable(cfg.Goal) {
		return nil, fmt.Errorf("%w: start %v, goal %v", ErrInvalidEndpoints, cfg.Start, cfg.Goal)
	}
	if !grid.Recompute(g.grid, g.field, cfg.Start, cfg.Goal) {
		return nil, ErrUnreachableGoal
	}

	g.MovementSystem = system.NewMovementSystem(g.ECS, g.player, g.field, cfg.Goal, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.ECS)

	for _, p := range cfg.Blocked {
		if r := g.SetBlocked(p); !r.OK() {
			return nil, fmt.Errorf("static terrain at %v: %s", p, r)
		}
	}

	g.log.Printf("session started: %dx%d, start %v, goal %v, %d blocked tiles",
		cfg.Width, cfg.Height, cfg.Start, cfg.Goal, len(cfg.Blocked))
	return g, nil
}

// Tick advances the simulation by one fixed step: movement first, then towers.
func (g *Game) Tick() {
	g.MovementSystem.Update()
	g.CombatSystem.Update(g.cfg.TickDuration)
	g.ticks++
	g.touch()
}

// RequestSpawn puts a new enemy of type t on the start tile.
func (g *Game) RequestSpawn(t defs.EnemyType) (types.EntityID, error) {
	def, ok := g.lib.Enemy(t)
	if !ok {
		g.log.Printf("spawn of unknown enemy type %v", t)
		return 0, fmt.Errorf("%w: %v", ErrUnknownEnemy, t)
	}
	enemy := g.MovementSystem.Spawn(def, g.cfg.Start)
	g.touch()
	return enemy.ID, nil
}

// SpawnRandom spawns an enemy drawn from the library's spawn table.
func (g *Game) SpawnRandom() (types.EntityID, error) {
	t, ok := g.Rng.ChooseWeighted(g.lib.SpawnTable)
	if !ok {
		return 0, ErrEmptySpawnTable
	}
	return g.RequestSpawn(t)
}

// touch invalidates anything derived from the current world state.
func (g *Game) touch() {
	g.previewCached = false
}

func (g *Game) ID() uuid.UUID { return g.id }
func (g *Game) Settings() config.Settings { return g.cfg }
func (g *Game) Library() *defs.Library { return g.lib }
func (g *Game) Grid() *grid.Grid { return g.grid }
func (g *Game) FlowField() *grid.FlowField { return g.field }
func (g *Game) Player() *component.Player { return g.player }
func (g *Game) Start() grid.Pos { return g.cfg.Start }
func (g *Game) Goal() grid.Pos { return g.cfg.Goal }
func (g *Game) Ticks() uint64 { return g.ticks }
func (g *Game) Enemies() []*component.Enemy { return g.ECS.Enemies }
func (g *Game) PreviewField() *grid.FlowField { return g.preview }

// TowerAt returns the tower on p. A miss never fabricates a tower.
func (g *Game) TowerAt(p grid.Pos) (*component.Tower, bool) {
	return g.ECS.TowerAt(p)
}

// Towers returns every tower in the order it was built.
func (g *Game) Towers() []*component.Tower {
	towers := make([]*component.Tower, 0, len(g.ECS.TowerOrder))
	for _, p := range g.ECS.TowerOrder {
		towers = append(towers, g.ECS.Towers[p])
	}
	return towers
}

var _ interfaces.Game = (*Game)(nil)
