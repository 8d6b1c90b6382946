// internal/term/view.go
package term

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"go-tower-defense/internal/defs"
	"go-tower-defense/internal/interfaces"
	"go-tower-defense/internal/system"
	"go-tower-defense/pkg/grid"
)

// Поле рисуется со сдвигом: строка HUD сверху, рамка слева.
const (
	OriginX   = 1
	OriginY   = 2
	TileWidth = 2
)

var (
	styleDefault  = tcell.StyleDefault
	styleEmpty    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBlocked  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleWalkable = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleArrow    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleWarn     = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var towerStyles = map[defs.TowerType]tcell.Style{
	defs.TowerBasic:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	defs.TowerHeavy:  tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	defs.TowerSpeedy: tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
}

var arrowGlyphs = map[grid.Direction]rune{
	grid.East:  '>',
	grid.North: '^',
	grid.South: 'v',
	grid.West:  '<',
}

// View is the terminal front-end: one character pair per tile.
type View struct {
	screen tcell.Screen
	game   interfaces.Game

	Cursor     grid.Pos
	Selected   defs.TowerType
	Paused     bool
	ShowArrows bool
	status     string
}

func NewView(screen tcell.Screen, game interfaces.Game) *View {
	return &View{
		screen:   screen,
		game:     game,
		Cursor:   game.Start(),
		Selected: defs.TowerBasic,
	}
}

// Update advances the simulation one tick unless paused or lost.
func (v *View) Update() {
	if v.Paused || v.game.Player().IsDefeated() {
		return
	}
	v.game.Tick()
}

// HandleKey applies one key press. It returns false when the user asked to quit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)
	case tcell.KeyEnter:
		v.place()
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return true
}

func (v *View) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case '1', '2', '3':
		if i := int(r - '1'); i < len(defs.TowerTypes) {
			v.Selected = defs.TowerTypes[i]
		}
	case ' ':
		if _, err := v.game.SpawnRandom(); err != nil {
			log.Printf("spawn failed: %v", err)
			v.status = err.Error()
		}
	case 'p':
		v.Paused = !v.Paused
	case 'f':
		v.ShowArrows = !v.ShowArrows
	case 'h':
		v.moveCursor(-1, 0)
	case 'j':
		v.moveCursor(0, 1)
	case 'k':
		v.moveCursor(0, -1)
	case 'l':
		v.moveCursor(1, 0)
	}
	return true
}

func (v *View) moveCursor(dx, dy int) {
	next := grid.Pos{X: v.Cursor.X + dx, Y: v.Cursor.Y + dy}
	if v.game.Grid().InBounds(next) {
		v.Cursor = next
	}
}

func (v *View) place() {
	if v.game.Player().IsDefeated() {
		return
	}
	r := v.game.RequestPlacement(v.Cursor, v.Selected)
	if r.OK() {
		v.status = fmt.Sprintf("%s tower built at %d,%d", v.Selected, v.Cursor.X, v.Cursor.Y)
	} else {
		v.status = "cannot build: " + r.String()
	}
}

// Draw repaints the whole screen and shows it.
func (v *View) Draw() {
	v.screen.Clear()
	g := v.game

	_, onTower := g.TowerAt(v.Cursor)
	preview := system.PlacementOK
	if !onTower {
		preview = g.Preview(v.Cursor)
	}

	v.drawTiles()
	if v.ShowArrows {
		v.drawArrows()
	}
	path := g.FlowField().Path(g.Start())
	if !onTower && preview.OK() {
		path = g.PreviewField().Path(g.Start())
	}
	v.drawPath(path)
	v.drawEndpoints()
	v.drawEnemies()
	v.drawCursor(preview)
	v.drawHUD(preview)

	v.screen.Show()
}

// Cell returns the screen column and row of tile p.
func Cell(p grid.Pos) (int, int) {
	return OriginX + p.X*TileWidth, OriginY + p.Y
}

func (v *View) put(p grid.Pos, r rune, style tcell.Style) {
	x, y := Cell(p)
	v.screen.SetContent(x, y, r, nil, style)
	v.screen.SetContent(x+1, y, ' ', nil, style)
}

func (v *View) drawTiles() {
	g := v.game.Grid()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Pos{X: x, Y: y}
			switch g.At(p) {
			case grid.Empty:
				v.put(p, '.', styleEmpty)
			case grid.Blocked:
				v.put(p, '#', styleBlocked)
			case grid.Walkable:
				v.put(p, ':', styleWalkable)
			case grid.Tower:
				v.put(p, '?', styleDefault)
			}
		}
	}
	for _, t := range v.game.Towers() {
		v.put(t.Pos, TowerGlyph(t.Type), towerStyles[t.Type])
	}
}

// TowerGlyph is the first letter of the tower type name.
func TowerGlyph(t defs.TowerType) rune {
	return rune(t.String()[0])
}

func (v *View) drawArrows() {
	ff := v.game.FlowField()
	g := v.game.Grid()
	for y := 0; y < ff.Height; y++ {
		for x := 0; x < ff.Width; x++ {
			p := grid.Pos{X: x, Y: y}
			r, ok := arrowGlyphs[ff.At(p)]
			if !ok || g.At(p) == grid.Tower {
				continue
			}
			v.put(p, r, styleArrow)
		}
	}
}

func (v *View) drawPath(path []grid.Pos) {
	for _, p := range path {
		v.put(p, '*', stylePath)
	}
}

func (v *View) drawEndpoints() {
	v.put(v.game.Start(), 'S', styleEndpoint)
	v.put(v.game.Goal(), 'G', styleEndpoint)
}

func (v *View) drawEnemies() {
	for _, e := range v.game.Enemies() {
		// ближайшая клетка к непрерывной позиции
		p := grid.Pos{X: int(e.X + 0.5), Y: int(e.Y + 0.5)}
		v.put(p, 'o', styleEnemy)
	}
}

func (v *View) drawCursor(preview system.PlacementResult) {
	x, y := Cell(v.Cursor)
	mainc, _, style, _ := v.screen.GetContent(x, y)
	style = style.Reverse(true)
	if !preview.OK() {
		style = style.Foreground(tcell.ColorRed)
	}
	v.screen.SetContent(x, y, mainc, nil, style)
	v.screen.SetContent(x+1, y, ' ', nil, style)
}

func (v *View) drawHUD(preview system.PlacementResult) {
	g := v.game
	p := g.Player()
	hud := fmt.Sprintf("HP %d  $%d  tower %s  enemies %d  tick %d", p.Health, p.Money, v.Selected, len(g.Enemies()), g.Ticks())
	if v.Paused {
		hud += "  [PAUSED]"
	}
	drawText(v.screen, OriginX, 0, styleHUD, hud)

	bottom := OriginY + g.Grid().Height + 1
	info := fmt.Sprintf("cursor %d,%d: ", v.Cursor.X, v.Cursor.Y)
	if t, ok := g.TowerAt(v.Cursor); ok {
		info += fmt.Sprintf("%s tower, dmg %.2f range %.1f reload %.3fs %s", t.Type, t.Damage, t.Range, t.Reload, t.State())
		drawText(v.screen, OriginX, bottom, styleDefault, info)
	} else if preview.OK() {
		drawText(v.screen, OriginX, bottom, styleDefault, info+"can build")
	} else {
		drawText(v.screen, OriginX, bottom, styleWarn, info+preview.String())
	}

	if p.IsDefeated() {
		drawText(v.screen, OriginX, bottom+1, styleWarn, "GAME OVER - q to quit")
	} else if v.status != "" {
		drawText(v.screen, OriginX, bottom+1, styleDefault, v.status)
	}
	drawText(v.screen, OriginX, bottom+2, styleEmpty, "arrows move  enter build  1-3 type  space spawn  f arrows  p pause  q quit")
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
