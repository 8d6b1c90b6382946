// pkg/render/grid_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-defense/pkg/grid"
)

// GridRenderer рисует поле: тайлы, стрелки потока и путь.
// Тайлы кэшируются в mapImage и перерисовываются только после Invalidate.
type GridRenderer struct {
	tileSize float32
	offsetX  float32
	offsetY  float32
	colors   *MapColors
	fontFace font.Face
	mapImage *ebiten.Image
	dirty    bool
}

func NewGridRenderer(tileSize, offsetX, offsetY float32, fontFace font.Face, colors *MapColors) *GridRenderer {
	return &GridRenderer{
		tileSize: tileSize,
		offsetX:  offsetX,
		offsetY:  offsetY,
		colors:   colors,
		fontFace: fontFace,
		dirty:    true,
	}
}

// Invalidate marks the cached map image stale, e.g. after a tower went up.
func (r *GridRenderer) Invalidate() {
	r.dirty = true
}

// TileOrigin returns the top-left screen corner of tile p.
func (r *GridRenderer) TileOrigin(p grid.Pos) (float32, float32) {
	return r.offsetX + float32(p.X)*r.tileSize, r.offsetY + float32(p.Y)*r.tileSize
}

// WorldToScreen maps continuous tile coordinates to the screen; (x, y) is a tile centre.
func (r *GridRenderer) WorldToScreen(x, y float64) (float32, float32) {
	return r.offsetX + (float32(x)+0.5)*r.tileSize, r.offsetY + (float32(y)+0.5)*r.tileSize
}

// ScreenToTile maps a screen point to the tile under it. The result may be out of bounds.
func (r *GridRenderer) ScreenToTile(x, y int) grid.Pos {
	return grid.Pos{
		X: int(math.Floor(float64((float32(x) - r.offsetX) / r.tileSize))),
		Y: int(math.Floor(float64((float32(y) - r.offsetY) / r.tileSize))),
	}
}

// Draw blits the tile layer, re-rendering it first if it is stale.
func (r *GridRenderer) Draw(screen *ebiten.Image, g *grid.Grid, start, goal grid.Pos) {
	if r.mapImage == nil || r.dirty {
		r.renderMapImage(g, start, goal)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.offsetX), float64(r.offsetY))
	screen.DrawImage(r.mapImage, op)
}

func (r *GridRenderer) renderMapImage(g *grid.Grid, start, goal grid.Pos) {
	w, h := int(float32(g.Width)*r.tileSize), int(float32(g.Height)*r.tileSize)
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Pos{X: x, Y: y}
			vector.DrawFilledRect(r.mapImage, float32(x)*r.tileSize, float32(y)*r.tileSize,
				r.tileSize, r.tileSize, r.tileColor(g.At(p), x, y), false)
		}
	}

	r.drawLabel(start, "S")
	r.drawLabel(goal, "G")
	r.dirty = false
}

func (r *GridRenderer) tileColor(t grid.Tile, x, y int) color.RGBA {
	switch t {
	case grid.Empty:
		if (x+y)%2 == 0 {
			return r.colors.EmptyLightColor
		}
		return r.colors.EmptyDarkColor
	case grid.Walkable:
		return r.colors.WalkableColor
	case grid.Blocked:
		return r.colors.BlockedColor
	case grid.Tower:
		return r.colors.TowerColor
	}
	return DarkenColor(r.colors.BackgroundColor)
}

func (r *GridRenderer) drawLabel(p grid.Pos, label string) {
	if r.fontFace == nil {
		return
	}
	x := int(float32(p.X)*r.tileSize + r.tileSize/2 - 3)
	y := int(float32(p.Y)*r.tileSize + r.tileSize/2 + 4)
	text.Draw(r.mapImage, label, r.fontFace, x, y, r.colors.EndpointTextColor)
}

// DrawArrows draws one arrow per tile that has a direction.
func (r *GridRenderer) DrawArrows(screen *ebiten.Image, ff *grid.FlowField) {
	half := r.tileSize / 2
	shaft := r.tileSize * 0.35
	head := r.tileSize * 0.15
	for y := 0; y < ff.Height; y++ {
		for x := 0; x < ff.Width; x++ {
			d := ff.At(grid.Pos{X: x, Y: y})
			if d == grid.None {
				continue
			}
			dx, dy := d.Vector()
			ox, oy := r.TileOrigin(grid.Pos{X: x, Y: y})
			cx, cy := ox+half, oy+half
			tx, ty := cx+float32(dx)*shaft, cy+float32(dy)*shaft
			vector.StrokeLine(screen, cx-float32(dx)*shaft, cy-float32(dy)*shaft, tx, ty, r.colors.StrokeWidth, r.colors.ArrowColor, true)
			// наконечник: два отрезка под 45° назад от острия
			px, py := float32(-dy), float32(dx)
			vector.StrokeLine(screen, tx, ty, tx-float32(dx)*head+px*head, ty-float32(dy)*head+py*head, r.colors.StrokeWidth, r.colors.ArrowColor, true)
			vector.StrokeLine(screen, tx, ty, tx-float32(dx)*head-px*head, ty-float32(dy)*head-py*head, r.colors.StrokeWidth, r.colors.ArrowColor, true)
		}
	}
}

// DrawPath connects the centres of consecutive tiles.
func (r *GridRenderer) DrawPath(screen *ebiten.Image, path []grid.Pos, clr color.Color) {
	for i := 1; i < len(path); i++ {
		x0, y0 := r.WorldToScreen(float64(path[i-1].X), float64(path[i-1].Y))
		x1, y1 := r.WorldToScreen(float64(path[i].X), float64(path[i].Y))
		vector.StrokeLine(screen, x0, y0, x1, y1, r.colors.StrokeWidth*2, clr, true)
	}
}

// DrawPreview outlines the hovered tile.
func (r *GridRenderer) DrawPreview(screen *ebiten.Image, p grid.Pos, clr color.Color) {
	cx, cy := r.WorldToScreen(float64(p.X), float64(p.Y))
	vector.StrokeCircle(screen, cx, cy, r.tileSize/2-r.colors.StrokeWidth, r.colors.StrokeWidth*2, clr, true)
}
