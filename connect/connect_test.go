package connect_test

import (
	"testing"

	"github.com/Bassie1994/Towerz-sub001/connect"
	"github.com/Bassie1994/Towerz-sub001/core"
	"github.com/Bassie1994/Towerz-sub001/grid"
)

func mustGrid(t *testing.T, cfg core.ZoneConfig) *grid.Grid {
	t.Helper()
	g, err := grid.New(cfg)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

// TestAllSpawnsReachGoal_EmptyGrid verifies the trivially connected case.
func TestAllSpawnsReachGoal_EmptyGrid(t *testing.T) {
	g := mustGrid(t, core.ZoneConfig{Width: 10, Height: 6, SpawnCols: 1, GoalCols: 2, GoalRows: 4})
	if !connect.AllSpawnsReachGoal(g) {
		t.Fatal("empty grid must be connected")
	}
}

// TestAllSpawnsReachGoal_FullWall severs the grid with a complete
// vertical wall and expects false; opening one gap restores true.
func TestAllSpawnsReachGoal_FullWall(t *testing.T) {
	g := mustGrid(t, core.ZoneConfig{Width: 10, Height: 6, SpawnCols: 1, GoalCols: 2, GoalRows: 4})
	for row := 0; row < 6; row++ {
		g.PlaceObstacle(core.Coord{Col: 4, Row: row})
	}
	if connect.AllSpawnsReachGoal(g) {
		t.Fatal("full wall must sever connectivity")
	}

	g.RemoveObstacle(core.Coord{Col: 4, Row: 3})
	if !connect.AllSpawnsReachGoal(g) {
		t.Fatal("one gap must restore connectivity")
	}
}

// TestAllSpawnsReachGoal_ObstaclesNearSpawn verifies the gate holds as
// long as some path survives: crowding the spawn column's exits leaves
// the validator true while any opening remains.
func TestAllSpawnsReachGoal_ObstaclesNearSpawn(t *testing.T) {
	g := mustGrid(t, core.ZoneConfig{Width: 10, Height: 6, SpawnCols: 1, GoalCols: 2, GoalRows: 4})
	for row := 0; row < 5; row++ {
		g.PlaceObstacle(core.Coord{Col: 1, Row: row})
	}
	// Only (1,5) still leads out of the spawn column.
	if !connect.AllSpawnsReachGoal(g) {
		t.Fatal("one exit remains; validator must report true")
	}

	g.PlaceObstacle(core.Coord{Col: 1, Row: 5})
	if connect.AllSpawnsReachGoal(g) {
		t.Fatal("all exits blocked; validator must report false")
	}
}

// TestAllSpawnsReachGoal_SeedDedup exercises duplicate goal seeds via a
// goal region wider than one cell.
func TestAllSpawnsReachGoal_SeedDedup(t *testing.T) {
	g := mustGrid(t, core.ZoneConfig{Width: 6, Height: 4, SpawnCols: 2, GoalCols: 2, GoalRows: 2})
	if !connect.AllSpawnsReachGoal(g) {
		t.Fatal("expected connected")
	}
}
