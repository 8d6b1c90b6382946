package grid

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRecompute_OpenField(t *testing.T) {
	g := NewGrid(20, 11)
	ff := NewFlowField(20, 11)
	start := Pos{X: 0, Y: 5}
	goal := Pos{X: 19, Y: 5}

	if !Recompute(g, ff, start, goal) {
		t.Fatal("expected start to be reachable on an empty field")
	}
	if d := ff.At(start); d != East {
		t.Errorf("direction at start = %v, want E", d)
	}
	if d := ff.At(goal); d != None {
		t.Errorf("direction at goal = %v, want None", d)
	}

	path := ff.Path(start)
	if len(path) != 20 {
		t.Fatalf("path length = %d, want 20", len(path))
	}
	for i, p := range path {
		if p.Y != 5 || p.X != i {
			t.Errorf("path[%d] = %v, want (%d, 5)", i, p, i)
		}
	}
}

func TestRecompute_CompleteWall(t *testing.T) {
	g := NewGrid(20, 11)
	ff := NewFlowField(20, 11)
	start := Pos{X: 0, Y: 5}
	goal := Pos{X: 19, Y: 5}

	for y := 0; y < 11; y++ {
		g.Set(Pos{X: 10, Y: y}, Tower)
	}

	if Recompute(g, ff, start, goal) {
		t.Fatal("expected start to be unreachable behind a full wall")
	}
	for y := 0; y < 11; y++ {
		for x := 0; x <= 10; x++ {
			if d := ff.At(Pos{X: x, Y: y}); d != None {
				t.Errorf("direction at (%d, %d) = %v, want None", x, y, d)
			}
		}
	}
	if d := ff.At(Pos{X: 11, Y: 5}); d != East {
		t.Errorf("direction right of the wall = %v, want E", d)
	}
}

func TestRecompute_BlockedStart(t *testing.T) {
	g := NewGrid(5, 5)
	ff := NewFlowField(5, 5)
	start := Pos{X: 0, Y: 0}
	g.Set(start, Blocked)

	if Recompute(g, ff, start, Pos{X: 4, Y: 4}) {
		t.Error("blocked start reported reachable")
	}
}

func TestRecompute_WalkableTilesArePassable(t *testing.T) {
	g := NewGrid(3, 1)
	ff := NewFlowField(3, 1)
	g.Set(Pos{X: 1, Y: 0}, Walkable)

	if !Recompute(g, ff, Pos{X: 0, Y: 0}, Pos{X: 2, Y: 0}) {
		t.Error("walkable tile should not block the route")
	}
}

func TestRecompute_DimensionMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on grid/flow field size mismatch")
		}
	}()
	Recompute(NewGrid(4, 4), NewFlowField(5, 4), Pos{}, Pos{X: 3, Y: 3})
}

func TestFlowField_PathStopsAtNone(t *testing.T) {
	ff := NewFlowField(4, 4)
	path := ff.Path(Pos{X: 1, Y: 1})
	if len(path) != 1 || path[0] != (Pos{X: 1, Y: 1}) {
		t.Errorf("path = %v, want just the start tile", path)
	}
}

// randomField draws a grid with scattered obstacles and distinct start/goal tiles.
func randomField(t *rapid.T) (*Grid, Pos, Pos) {
	w := rapid.IntRange(2, 12).Draw(t, "width")
	h := rapid.IntRange(2, 12).Draw(t, "height")
	g := NewGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch rapid.IntRange(0, 9).Draw(t, "tile") {
			case 0, 1:
				g.Set(Pos{X: x, Y: y}, Tower)
			case 2:
				g.Set(Pos{X: x, Y: y}, Blocked)
			case 3:
				g.Set(Pos{X: x, Y: y}, Walkable)
			}
		}
	}

	start := Pos{X: rapid.IntRange(0, w-1).Draw(t, "startX"), Y: rapid.IntRange(0, h-1).Draw(t, "startY")}
	goal := Pos{X: rapid.IntRange(0, w-1).Draw(t, "goalX"), Y: rapid.IntRange(0, h-1).Draw(t, "goalY")}
	if start == goal {
		goal.X = (goal.X + 1) % w
	}
	g.Set(start, Empty)
	g.Set(goal, Empty)
	return g, start, goal
}

// bfsDistances is an independent reference: plain BFS over passable tiles.
func bfsDistances(g *Grid, goal Pos) map[Pos]int {
	dist := map[Pos]int{goal: 0}
	queue := []Pos{goal}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{North, East, South, West} {
			n := cur.Add(d)
			if !g.IsPassable(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

func TestRecompute_FollowingDirectionsReachesGoal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, start, goal := randomField(t)
		ff := NewFlowField(g.Width, g.Height)
		reachable := Recompute(g, ff, start, goal)

		if reachable != (ff.At(start) != None) {
			t.Fatalf("reachable = %v but direction at start is %v", reachable, ff.At(start))
		}

		dist := bfsDistances(g, goal)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				p := Pos{X: x, Y: y}
				_, wantReachable := dist[p]
				wantReachable = wantReachable && p != goal
				if got := ff.At(p) != None; got != wantReachable {
					t.Fatalf("cell %v: has direction = %v, reachable = %v", p, got, wantReachable)
				}
				if !wantReachable {
					continue
				}

				seen := map[Pos]bool{}
				cur := p
				steps := 0
				for cur != goal {
					if seen[cur] {
						t.Fatalf("cycle through %v starting from %v", cur, p)
					}
					seen[cur] = true
					d := ff.At(cur)
					if !d.IsCardinal() {
						t.Fatalf("non-cardinal direction %v at %v", d, cur)
					}
					next := cur.Add(d)
					if dist[next] != dist[cur]-1 {
						t.Fatalf("step %v -> %v does not shorten the route", cur, next)
					}
					cur = next
					steps++
					if steps > g.Width*g.Height {
						t.Fatalf("route from %v exceeds %d steps", p, g.Width*g.Height)
					}
				}
				if steps != dist[p] {
					t.Fatalf("route from %v took %d steps, shortest is %d", p, steps, dist[p])
				}
			}
		}
	})
}

func TestRecompute_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, start, goal := randomField(t)
		a := NewFlowField(g.Width, g.Height)
		b := NewFlowField(g.Width, g.Height)
		Recompute(g, a, start, goal)
		Recompute(g, b, start, goal)
		if !a.Equal(b) {
			t.Fatal("two recomputes of the same grid disagree")
		}
	})
}
