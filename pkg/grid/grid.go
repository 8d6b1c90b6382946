// pkg/grid/grid.go
package grid

import "fmt"

// Tile — классификация клетки поля
type Tile uint8

const (
	Empty Tile = iota
	Tower
	Walkable
	Blocked
)

func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Tower:
		return "Tower"
	case Walkable:
		return "Walkable"
	case Blocked:
		return "Blocked"
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Pos is a tile coordinate.
type Pos struct {
	X, Y int
}

// Add returns the neighbouring position in direction d.
func (p Pos) Add(d Direction) Pos {
	dx, dy := d.Vector()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSquared returns the squared euclidean distance between tile centres.
func (p Pos) DistanceSquared(x, y float64) float64 {
	dx := float64(p.X) - x
	dy := float64(p.Y) - y
	return dx*dx + dy*dy
}

// Grid is a fixed-size Width × Height matrix of tiles stored row-major.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// NewGrid creates a grid with every tile Empty.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p. Out-of-bounds positions read as Blocked.
func (g *Grid) At(p Pos) Tile {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.tiles[p.Y*g.Width+p.X]
}

// Set writes a tile. Writes outside the grid are ignored.
func (g *Grid) Set(p Pos, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.tiles[p.Y*g.Width+p.X] = t
}

// IsPassable reports whether agents may walk through p.
func (g *Grid) IsPassable(p Pos) bool {
	switch g.At(p) {
	case Empty, Walkable:
		return true
	case Tower, Blocked:
		return false
	}
	return false
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Equal reports whether two grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}
