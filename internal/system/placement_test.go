package system

import (
	"testing"

	"pgregory.net/rapid"

	"go-tower-defense/internal/component"
	"go-tower-defense/pkg/grid"
)

func TestCanPlace_RejectsWallCompletion(t *testing.T) {
	w := classic(t)
	for y := 0; y < 10; y++ {
		w.grid.Set(grid.Pos{X: 10, Y: y}, grid.Tower)
	}
	grid.Recompute(w.grid, w.field, w.start, w.goal)

	last := grid.Pos{X: 10, Y: 10}
	if CanPlace(w.grid, w.scratch, last, w.start, w.goal) {
		t.Error("closing the wall was allowed")
	}
	if got := ValidatePlacement(w.grid, w.scratch, last, w.start, w.goal, nil); got != PlacementBlocksPath {
		t.Errorf("ValidatePlacement = %v, want %v", got, PlacementBlocksPath)
	}
	if w.grid.At(last) != grid.Empty {
		t.Errorf("tile left as %v after the check", w.grid.At(last))
	}
}

func TestValidatePlacement_Reasons(t *testing.T) {
	w := classic(t)
	w.grid.Set(grid.Pos{X: 3, Y: 3}, grid.Tower)
	w.grid.Set(grid.Pos{X: 4, Y: 3}, grid.Blocked)
	w.grid.Set(grid.Pos{X: 5, Y: 3}, grid.Walkable)
	grid.Recompute(w.grid, w.field, w.start, w.goal)

	tests := []struct {
		name string
		p    grid.Pos
		want PlacementResult
	}{
		{"empty tile", grid.Pos{X: 8, Y: 8}, PlacementOK},
		{"start", w.start, PlacementReserved},
		{"goal", w.goal, PlacementReserved},
		{"negative", grid.Pos{X: -1, Y: 0}, PlacementOutOfBounds},
		{"past the edge", grid.Pos{X: 20, Y: 11}, PlacementOutOfBounds},
		{"tower", grid.Pos{X: 3, Y: 3}, PlacementOccupied},
		{"blocked", grid.Pos{X: 4, Y: 3}, PlacementOccupied},
		{"walkable", grid.Pos{X: 5, Y: 3}, PlacementOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePlacement(w.grid, w.scratch, tt.p, w.start, w.goal, nil); got != tt.want {
				t.Errorf("ValidatePlacement(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestValidatePlacement_LeavesStateUntouched(t *testing.T) {
	w := classic(t)
	w.place(t, grid.Pos{X: 6, Y: 5}, towerDef(1, 1, 1))
	g := w.grid.Clone()
	field := grid.NewFlowField(20, 11)
	field.CopyFrom(w.field)

	for _, p := range []grid.Pos{{X: 7, Y: 5}, {X: 7, Y: 5}, {X: 6, Y: 5}, {X: 0, Y: 5}} {
		ValidatePlacement(w.grid, w.scratch, p, w.start, w.goal, w.ecs.Enemies)
	}

	if !w.grid.Equal(g) {
		t.Error("grid changed by validation")
	}
	if !w.field.Equal(field) {
		t.Error("live flow field changed by validation")
	}
}

func TestTrapsEnemy(t *testing.T) {
	// (4,5) becomes a tower; neighbours of it keep their directions
	tile := grid.Pos{X: 4, Y: 5}

	tests := []struct {
		name    string
		last    grid.Pos
		next    grid.Pos
		percent float64
		want    bool
	}{
		{"standing on the tile", tile, grid.Pos{X: 5, Y: 5}, 0.2, true},
		{"leaving the tile past midpoint", tile, grid.Pos{X: 5, Y: 5}, 0.7, false},
		{"exactly at midpoint", tile, grid.Pos{X: 5, Y: 5}, 0.5, false},
		{"entering the tile", grid.Pos{X: 3, Y: 5}, tile, 0.7, false},
		{"elsewhere", grid.Pos{X: 9, Y: 9}, grid.Pos{X: 10, Y: 9}, 0.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := classic(t)
			e := w.movement.Spawn(enemyDef(0.05), w.start)
			e.Last, e.Next, e.PercentTravelled = tt.last, tt.next, tt.percent

			if !CanPlace(w.grid, w.scratch, tile, w.start, w.goal) {
				t.Fatal("placement unexpectedly blocks the path")
			}
			if got := TrapsEnemy(w.scratch, w.ecs.Enemies); got != tt.want {
				t.Errorf("TrapsEnemy = %v, want %v", got, tt.want)
			}

			want := PlacementOK
			if tt.want {
				want = PlacementTrapsEnemy
			}
			if got := ValidatePlacement(w.grid, w.scratch, tile, w.start, w.goal, w.ecs.Enemies); got != want {
				t.Errorf("ValidatePlacement = %v, want %v", got, want)
			}
		})
	}
}

func TestTrapsEnemy_NextTileWithoutDirection(t *testing.T) {
	w := newWorld(t, 5, 1, grid.Pos{X: 0, Y: 0}, grid.Pos{X: 4, Y: 0})
	w.grid.Set(grid.Pos{X: 3, Y: 0}, grid.Tower)
	grid.Recompute(w.grid, w.scratch, w.start, w.goal)

	// both ends of the move are cut off from the goal
	enemies := []*component.Enemy{{
		Last:             grid.Pos{X: 1, Y: 0},
		Next:             grid.Pos{X: 2, Y: 0},
		PercentTravelled: 0.9,
	}}
	if !TrapsEnemy(w.scratch, enemies) {
		t.Error("enemy heading into a dead end was not reported")
	}
}

func TestTrapsEnemy_ChecksEachTileOnce(t *testing.T) {
	w := classic(t)
	tile := grid.Pos{X: 4, Y: 5}
	CanPlace(w.grid, w.scratch, tile, w.start, w.goal)

	leaving := &component.Enemy{Last: tile, Next: grid.Pos{X: 5, Y: 5}, PercentTravelled: 0.9}
	stuck := &component.Enemy{Last: tile, Next: grid.Pos{X: 5, Y: 5}, PercentTravelled: 0.1}

	// the first enemy on a tile decides for everyone standing there
	if TrapsEnemy(w.scratch, []*component.Enemy{leaving, stuck}) {
		t.Error("tile cleared by the first enemy was checked again")
	}
	if !TrapsEnemy(w.scratch, []*component.Enemy{stuck, leaving}) {
		t.Error("enemy before its midpoint not reported")
	}
}

func TestCanPlace_MatchesReachability(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		width := rapid.IntRange(2, 10).Draw(rt, "width")
		height := rapid.IntRange(1, 10).Draw(rt, "height")
		g := grid.NewGrid(width, height)
		start := grid.Pos{X: 0, Y: rapid.IntRange(0, height-1).Draw(rt, "startY")}
		goal := grid.Pos{X: width - 1, Y: rapid.IntRange(0, height-1).Draw(rt, "goalY")}

		for i, n := 0, rapid.IntRange(0, width*height/2).Draw(rt, "towers"); i < n; i++ {
			p := grid.Pos{
				X: rapid.IntRange(0, width-1).Draw(rt, "tx"),
				Y: rapid.IntRange(0, height-1).Draw(rt, "ty"),
			}
			if p != start && p != goal {
				g.Set(p, grid.Tower)
			}
		}
		field := grid.NewFlowField(width, height)
		scratch := grid.NewFlowField(width, height)
		grid.Recompute(g, field, start, goal)
		before := g.Clone()

		p := grid.Pos{
			X: rapid.IntRange(0, width-1).Draw(rt, "px"),
			Y: rapid.IntRange(0, height-1).Draw(rt, "py"),
		}
		got := CanPlace(g, scratch, p, start, goal)

		if !g.Equal(before) {
			rt.Fatal("grid changed by CanPlace")
		}

		want := false
		if p != start && p != goal && g.At(p) == grid.Empty {
			probe := g.Clone()
			probe.Set(p, grid.Tower)
			ff := grid.NewFlowField(width, height)
			grid.Recompute(probe, ff, start, goal)
			want = ff.At(start) != grid.None
		}
		if got != want {
			rt.Fatalf("CanPlace(%v) = %v, want %v", p, got, want)
		}
	})
}
