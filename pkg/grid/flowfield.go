// pkg/grid/flowfield.go
package grid

import "fmt"

// FlowField хранит для каждой клетки направление к цели.
// A cell holds a non-None direction iff it is reachable from the goal.
type FlowField struct {
	Width, Height int
	dirs          []Direction

	// Reusable BFS buffers to avoid allocations across recomputes
	queue   []int
	visited []bool
}

// NewFlowField creates an all-None flow field.
func NewFlowField(width, height int) *FlowField {
	size := width * height
	return &FlowField{
		Width:   width,
		Height:  height,
		dirs:    make([]Direction, size),
		queue:   make([]int, 0, size),
		visited: make([]bool, size),
	}
}

// At returns the stored direction at p, None for out-of-bounds positions.
func (f *FlowField) At(p Pos) Direction {
	if p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
		return None
	}
	return f.dirs[p.Y*f.Width+p.X]
}

// CopyFrom overwrites f with the contents of src.
func (f *FlowField) CopyFrom(src *FlowField) {
	if f.Width != src.Width || f.Height != src.Height {
		panic(fmt.Sprintf("grid: flow field size mismatch %dx%d vs %dx%d", f.Width, f.Height, src.Width, src.Height))
	}
	copy(f.dirs, src.dirs)
}

// Equal reports whether two fields hold identical directions.
func (f *FlowField) Equal(other *FlowField) bool {
	if f.Width != other.Width || f.Height != other.Height {
		return false
	}
	for i := range f.dirs {
		if f.dirs[i] != other.dirs[i] {
			return false
		}
	}
	return true
}

// Recompute rebuilds ff by a breadth-first flood fill seeded at goal and
// reports whether start ended up with a direction.
//
// Every neighbour reached from the current tile stores the opposite of the
// step used to reach it, so following stored directions walks back toward the goal.
func Recompute(g *Grid, ff *FlowField, start, goal Pos) bool {
	if g.Width != ff.Width || g.Height != ff.Height {
		panic(fmt.Sprintf("grid: grid %dx%d and flow field %dx%d differ", g.Width, g.Height, ff.Width, ff.Height))
	}

	w := g.Width
	for i := range ff.dirs {
		ff.dirs[i] = None
		ff.visited[i] = false
	}
	if !g.InBounds(goal) {
		return false
	}

	goalIdx := goal.Y*w + goal.X
	ff.queue = append(ff.queue[:0], goalIdx)
	ff.visited[goalIdx] = true

	for head := 0; head < len(ff.queue); head++ {
		idx := ff.queue[head]
		cur := Pos{X: idx % w, Y: idx / w}
		for _, d := range FlowDirections {
			n := cur.Add(d)
			if !g.InBounds(n) {
				continue
			}
			if !g.IsPassable(n) {
				continue
			}
			nIdx := n.Y*w + n.X
			if ff.visited[nIdx] {
				continue
			}
			ff.visited[nIdx] = true
			ff.queue = append(ff.queue, nIdx)
			ff.dirs[nIdx] = d.Opposite()
		}
	}

	return ff.At(start) != None
}

// Path follows the field from start and returns every tile visited,
// start included. It stops at the first None and never takes more than
// Width*Height steps.
func (f *FlowField) Path(start Pos) []Pos {
	path := []Pos{start}
	cur := start
	for steps := 0; steps < f.Width*f.Height; steps++ {
		d := f.At(cur)
		if d == None {
			break
		}
		cur = cur.Add(d)
		path = append(path, cur)
	}
	return path
}
