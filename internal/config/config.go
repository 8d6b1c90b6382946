// internal/config/config.go
package config

import (
	"image/color"

	"go-tower-defense/pkg/grid"
)

const (
	FieldWidth  = 20
	FieldHeight = 11
	TileSize    = 48

	ScreenWidth  = 1024
	ScreenHeight = 680

	FPS = 60
	DT  = 1.0 / FPS // фиксированная длительность тика

	StartingHealth = 100
	StartingMoney  = 999

	LineWidth     = TileSize / 8
	HalfTileSize  = TileSize / 2
	TextCharWidth = 7

	MapOffsetX = (ScreenWidth - FieldWidth*TileSize) / 2
	MapOffsetY = 64

	ClickCooldown = 150 // ms

	// Placement must not orphan an enemy that has not crossed the middle of its tile transition.
	TransitMidpoint = 0.5
)

// Settings — параметры сессии, которые задаёт внешний код
type Settings struct {
	Width, Height  int
	Start, Goal    grid.Pos
	TickDuration   float64
	StartingHealth int
	StartingMoney  int
	Seed           int64
	// Blocked is static terrain laid down before play.
	Blocked []grid.Pos
}

// Default returns the classic 20×11 layout with start and goal on the middle row.
func Default() Settings {
	return Settings{
		Width:          FieldWidth,
		Height:         FieldHeight,
		Start:          grid.Pos{X: 0, Y: FieldHeight / 2},
		Goal:           grid.Pos{X: FieldWidth - 1, Y: FieldHeight / 2},
		TickDuration:   DT,
		StartingHealth: StartingHealth,
		StartingMoney:  StartingMoney,
	}
}

// Presets — готовые раскладки препятствий для Default()
var Presets = map[string][]grid.Pos{
	"open": nil,
	"pillars": {
		{X: 4, Y: 2}, {X: 4, Y: 8},
		{X: 9, Y: 4}, {X: 9, Y: 6},
		{X: 14, Y: 2}, {X: 14, Y: 8},
	},
	"gate": {
		{X: 10, Y: 0}, {X: 10, Y: 1}, {X: 10, Y: 2}, {X: 10, Y: 3},
		{X: 10, Y: 7}, {X: 10, Y: 8}, {X: 10, Y: 9}, {X: 10, Y: 10},
	},
}

var (
	BackgroundColor     = color.RGBA{0, 0, 0, 255}
	EmptyTileLightColor = color.RGBA{0, 255, 0, 255}
	EmptyTileDarkColor  = color.RGBA{0, 200, 0, 255}
	BlockedTileColor    = color.RGBA{0, 255, 255, 255}
	WalkableTileColor   = color.RGBA{150, 150, 150, 255}
	TowerTileColor      = color.RGBA{100, 100, 100, 255}
	UnknownColor        = color.RGBA{255, 0, 255, 255}
	PathColor           = color.RGBA{255, 255, 0, 150}
	BeamFireColor       = color.RGBA{255, 255, 0, 255}
	BeamIdleColor       = color.RGBA{100, 100, 100, 255}
	PreviewValidColor   = color.RGBA{100, 100, 100, 150}
	PreviewInvalidColor = color.RGBA{255, 0, 0, 150}
	RangeColor          = color.RGBA{255, 255, 255, 150}
	HealthTextColor     = color.RGBA{255, 0, 0, 255}
	MoneyTextColor      = color.RGBA{255, 255, 0, 255}
	ArrowColor          = color.RGBA{0, 0, 0, 200}
	EndpointTextColor   = color.RGBA{255, 255, 255, 255}
	PanelColor          = color.RGBA{20, 20, 20, 220}
	PanelTextColor      = color.RGBA{230, 230, 230, 255}
	PauseColor          = color.RGBA{255, 165, 0, 255}
	PlayColor           = color.RGBA{0, 200, 0, 255}
	OverlayColor        = color.RGBA{0, 0, 0, 128}

	// Цвета кнопки скорости для 1x, 2x, 4x
	SpeedColors = []color.RGBA{
		{0, 200, 0, 255},
		{255, 200, 0, 255},
		{255, 80, 0, 255},
	}

	// Цвета по типам (Basic, Heavy, Speedy)
	TypeColors = []color.RGBA{
		{150, 150, 150, 255},
		{0, 0, 255, 255},
		{255, 0, 0, 255},
	}
)
