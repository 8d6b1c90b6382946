// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-defense/internal/app"
	"go-tower-defense/internal/config"
	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/event"
	"go-tower-defense/internal/system"
	"go-tower-defense/internal/ui"
	"go-tower-defense/pkg/grid"
	"go-tower-defense/pkg/render"
)

const statusDuration = 2 * time.Second

// GameState — состояние игры
type GameState struct {
	sm           *StateMachine
	game         *app.Game
	renderer     *render.GridRenderer
	renderSystem *system.RenderSystem
	health       *ui.PlayerHealthIndicator
	indicator    *ui.StateIndicator
	infoPanel    *ui.InfoPanel
	pauseButton  *ui.PauseButton
	speedButton  *ui.SpeedButton

	hovered       grid.Pos
	previewResult system.PlacementResult
	showArrows    bool
	status        string
	statusTime    time.Time
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	mapColors := &render.MapColors{
		BackgroundColor:   config.BackgroundColor,
		EmptyLightColor:   config.EmptyTileLightColor,
		EmptyDarkColor:    config.EmptyTileDarkColor,
		WalkableColor:     config.WalkableTileColor,
		BlockedColor:      config.BlockedTileColor,
		TowerColor:        config.TowerTileColor,
		EndpointTextColor: config.EndpointTextColor,
		ArrowColor:        config.ArrowColor,
		StrokeWidth:       2,
	}
	renderer := render.NewGridRenderer(config.TileSize, config.MapOffsetX, config.MapOffsetY, fontFace, mapColors)

	gs := &GameState{
		sm:           sm,
		game:         game,
		renderer:     renderer,
		renderSystem: system.NewRenderSystem(game.ECS, renderer),
		health:       ui.NewPlayerHealthIndicator(config.MapOffsetX, 16, game.Settings().StartingHealth, fontFace),
		indicator:    ui.NewStateIndicator(config.ScreenWidth-160, 32, 14, fontFace),
		infoPanel:    ui.NewInfoPanel(fontFace),
		pauseButton:  ui.NewPauseButton(config.ScreenWidth-50, 32, 10, config.PauseColor, config.PlayColor),
		speedButton:  ui.NewSpeedButton(config.ScreenWidth-100, 32, 12, config.SpeedColors),
		hovered:      grid.Pos{X: -1, Y: -1},
	}
	game.EventDispatcher.Subscribe(gs, event.TowerPlaced, event.PlacementRejected, event.EnemyReachedGoal)
	return gs
}

// OnEvent реагирует на события сессии: перерисовка карты и строка статуса.
func (g *GameState) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.TowerPlacedData:
		g.renderer.Invalidate()
		g.setStatus(fmt.Sprintf("%s tower built for $%d", data.Type, data.Price))
	case event.PlacementRejectedData:
		g.setStatus("Cannot build here: " + data.Reason)
	case event.EnemyData:
		g.setStatus(fmt.Sprintf("%s enemy got through: -%d HP", data.Type, data.Amount))
	}
}

func (g *GameState) setStatus(s string) {
	g.status = s
	g.statusTime = time.Now()
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	g.infoPanel.Update()

	if g.game.Player().IsDefeated() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}
	g.handleKeys()

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && time.Since(g.lastClickTime) >= config.ClickCooldown*time.Millisecond {
		g.lastClickTime = time.Now()
		if g.handleUIClick(x, y) {
			return nil
		}
		if tile := g.renderer.ScreenToTile(x, y); g.game.Grid().InBounds(tile) {
			g.game.RequestPlacement(tile, g.indicator.Selected)
		}
	}

	for i := 0; i < g.speedButton.Multiplier(); i++ {
		g.game.Tick()
	}

	g.updateHover(x, y)
	return nil
}

func (g *GameState) handleKeys() {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) && i < len(defs.TowerTypes) {
			g.indicator.Select(defs.TowerTypes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showArrows = !g.showArrows
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if _, err := g.game.SpawnRandom(); err != nil {
			log.Printf("spawn failed: %v", err)
		}
	}
}

// handleUIClick reports whether the click landed on a HUD control.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.pauseButton.IsClicked(x, y):
		g.pauseButton.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
	case g.speedButton.IsClicked(x, y):
		g.speedButton.ToggleState()
	case g.indicator.IsClicked(x, y):
		g.indicator.Cycle()
	default:
		return false
	}
	return true
}

func (g *GameState) updateHover(x, y int) {
	g.hovered = g.renderer.ScreenToTile(x, y)
	if !g.game.Grid().InBounds(g.hovered) {
		g.infoPanel.Hide()
		return
	}
	if tower, ok := g.game.TowerAt(g.hovered); ok {
		g.infoPanel.ShowTower(tower)
		return
	}
	g.previewResult = g.game.Preview(g.hovered)
	g.infoPanel.ShowTile(g.hovered, g.previewResult)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	game := g.game

	g.renderer.Draw(screen, game.Grid(), game.Start(), game.Goal())
	if g.showArrows {
		g.renderer.DrawArrows(screen, game.FlowField())
	}

	_, onTower := game.TowerAt(g.hovered)
	previewing := game.Grid().InBounds(g.hovered) && !onTower
	path := game.FlowField().Path(game.Start())
	if previewing && g.previewResult.OK() {
		path = game.PreviewField().Path(game.Start())
	}
	g.renderer.DrawPath(screen, path, config.PathColor)

	if previewing {
		ring := config.PreviewValidColor
		if !g.previewResult.OK() {
			ring = config.PreviewInvalidColor
		}
		g.renderer.DrawPreview(screen, g.hovered, ring)
	}

	g.renderSystem.Draw(screen, g.hovered)

	g.health.Draw(screen, game.Player())
	g.indicator.Draw(screen, game.Library())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen)

	info := fmt.Sprintf("Enemies: %d  Towers: %d  Tick: %d", len(game.Enemies()), len(game.Towers()), game.Ticks())
	text.Draw(screen, info, fontFace, config.ScreenWidth/2-len(info)*config.TextCharWidth/2, 20, config.PanelTextColor)
	if g.status != "" && time.Since(g.statusTime) < statusDuration {
		text.Draw(screen, g.status, fontFace, config.ScreenWidth/2-len(g.status)*config.TextCharWidth/2, 44, config.MoneyTextColor)
	}

	if game.Player().IsDefeated() {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		const over = "GAME OVER - Esc to quit"
		text.Draw(screen, over, fontFace, (config.ScreenWidth-len(over)*config.TextCharWidth)/2, config.ScreenHeight/2, config.HealthTextColor)
	}
}

func (g *GameState) Exit() {}
