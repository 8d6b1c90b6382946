package system

import (
	"testing"

	"go-tower-defense/internal/component"
	"go-tower-defense/pkg/grid"
)

// parked puts an enemy at (x, y) without moving it through the field.
func (w *world) parked(x, y float64) *component.Enemy {
	e := w.movement.Spawn(enemyDef(0.05), w.start)
	e.X, e.Y = x, y
	return e
}

func TestCombat_AcquiresEnemyInRange(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 1, 1))
	e := w.parked(7, 5)

	w.combat.Update(0.25)

	if tower.Target != e.ID {
		t.Fatalf("target = %d, want %d", tower.Target, e.ID)
	}
	if tower.State() != component.TowerEngaged {
		t.Errorf("state = %v, want Engaged", tower.State())
	}
	if !tower.FiredThisTick || e.Health != 9 {
		t.Errorf("fired = %v health = %v, want a hit on the first tick", tower.FiredThisTick, e.Health)
	}
}

func TestCombat_NothingInRange(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 1, 1))
	e := w.parked(8, 5)

	w.combat.Update(0.25)

	if tower.Target != 0 || tower.State() != component.TowerIdle {
		t.Errorf("target = %d state = %v, want idle", tower.Target, tower.State())
	}
	if e.Health != 10 || tower.FiredThisTick {
		t.Error("tower fired without a target")
	}
}

func TestCombat_PicksFirstInListNotNearest(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 1, 1))
	far := w.parked(7, 5)
	w.parked(5, 4)

	w.combat.Update(0.25)

	if tower.Target != far.ID {
		t.Errorf("target = %d, want the earlier spawned %d", tower.Target, far.ID)
	}
}

func TestCombat_RetargetsInSameTickWhenTargetLeaves(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 0.25, 1))
	first := w.parked(6, 5)
	second := w.parked(5, 6)

	w.combat.Update(0.25)
	if tower.Target != first.ID {
		t.Fatalf("target = %d, want %d", tower.Target, first.ID)
	}

	first.X = 12
	w.combat.Update(0.25)

	if tower.Target != second.ID {
		t.Errorf("target = %d, want %d", tower.Target, second.ID)
	}
	if second.Health != 9 {
		t.Errorf("second health = %v, want 9", second.Health)
	}
}

func TestCombat_StaleHandleIsDropped(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 1, 1))
	e := w.parked(6, 5)

	w.combat.Update(0.25)
	w.ecs.RemoveEnemyAt(0)
	w.combat.Update(0.25)

	if tower.Target != 0 {
		t.Errorf("target = %d after %d was removed, want 0", tower.Target, e.ID)
	}
}

func TestCombat_SkipsDeadEnemies(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 1, 1))
	dead := w.parked(6, 5)
	dead.Health = 0
	alive := w.parked(4, 5)

	w.combat.Update(0.25)

	if tower.Target != alive.ID {
		t.Errorf("target = %d, want live enemy %d", tower.Target, alive.ID)
	}
}

func TestCombat_ReloadGatesFiring(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 0.5, 1))
	e := w.parked(6, 5)

	fired := 0
	for i := 0; i < 5; i++ {
		w.combat.Update(0.25)
		if tower.FiredThisTick {
			fired++
		}
	}

	if fired != 3 {
		t.Errorf("fired %d times in five ticks, want 3", fired)
	}
	if e.Health != 7 {
		t.Errorf("health = %v, want 7", e.Health)
	}
}

func TestCombat_TimerRunsWhileIdle(t *testing.T) {
	w := classic(t)
	tower := w.place(t, grid.Pos{X: 5, Y: 5}, towerDef(2.5, 0.5, 1))
	e := w.parked(6, 5)

	w.combat.Update(0.25)
	e.X = 15
	w.combat.Update(0.25)
	e.X = 6

	w.combat.Update(0.25)
	if !tower.FiredThisTick {
		t.Error("reload did not elapse while the tower was idle")
	}
}

func TestCombat_KillIsReapedNextTick(t *testing.T) {
	w := classic(t)
	w.place(t, grid.Pos{X: 1, Y: 4}, towerDef(2.5, 1, 10))
	e := w.movement.Spawn(enemyDef(0.05), w.start)

	w.combat.Update(0.25)
	if !e.IsDead() {
		t.Fatalf("health = %v, want dead", e.Health)
	}
	if len(w.ecs.Enemies) != 1 {
		t.Fatal("combat removed the enemy itself")
	}

	w.movement.Update()
	if len(w.ecs.Enemies) != 0 {
		t.Error("dead enemy not reaped by movement")
	}
	if w.player.Money != 1003 {
		t.Errorf("money = %d, want 1003", w.player.Money)
	}
}

func TestCombat_TowersRunInBuildOrder(t *testing.T) {
	w := classic(t)
	a := w.place(t, grid.Pos{X: 5, Y: 4}, towerDef(2.5, 1, 10))
	b := w.place(t, grid.Pos{X: 5, Y: 6}, towerDef(2.5, 1, 10))
	e := w.parked(5, 5)

	w.combat.Update(0.25)

	if !a.FiredThisTick || !e.IsDead() {
		t.Fatalf("first tower fired = %v, enemy health = %v", a.FiredThisTick, e.Health)
	}
	// the kill lands before the second tower looks for a target
	if b.Target != 0 || b.FiredThisTick {
		t.Errorf("second tower target = %d fired = %v, want idle", b.Target, b.FiredThisTick)
	}
}
