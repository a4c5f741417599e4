package flowfield_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bassie1994/Towerz-sub001/astar"
	"github.com/Bassie1994/Towerz-sub001/core"
	"github.com/Bassie1994/Towerz-sub001/flowfield"
	"github.com/Bassie1994/Towerz-sub001/grid"
)

// Scenario geometry from the navigation engine's reference arena: 10×6,
// spawn on the left edge, goal in the bottom-right 2×4 corner.
var testCfg = core.ZoneConfig{Width: 10, Height: 6, SpawnCols: 1, GoalCols: 2, GoalRows: 4}

func mustGrid(t *testing.T, cfg core.ZoneConfig) *grid.Grid {
	t.Helper()
	g, err := grid.New(cfg)
	require.NoError(t, err)
	return g
}

// signum maps a unit-vector component back to a lattice offset.
func signum(v float64) int {
	switch {
	case v > 1e-6:
		return 1
	case v < -1e-6:
		return -1
	default:
		return 0
	}
}

// TestCompute_EmptyGridDistances verifies concrete scenario 1: on an
// empty grid each cell's hop distance equals its Manhattan distance to
// the nearest goal cell, and nothing is unreachable.
func TestCompute_EmptyGridDistances(t *testing.T) {
	g := mustGrid(t, testCfg)
	f := flowfield.Compute(g)

	goals := g.Goals()
	for row := 0; row < testCfg.Height; row++ {
		for col := 0; col < testCfg.Width; col++ {
			c := core.Coord{Col: col, Row: row}
			want := math.MaxInt
			for _, gl := range goals {
				if d := c.Manhattan(gl); d < want {
					want = d
				}
			}
			require.True(t, f.Reachable(c), "cell %v unreachable on empty grid", c)
			assert.Equal(t, want, f.Distance(c), "distance at %v", c)
		}
	}

	// Top-left spawn cell in particular.
	topLeft := core.Coord{Col: 0, Row: 0}
	assert.Equal(t, 10, f.Distance(topLeft))
}

// TestCompute_Determinism recomputes the field for identical occupancy
// and requires byte-identical tables.
func TestCompute_Determinism(t *testing.T) {
	g := mustGrid(t, testCfg)
	g.PlaceObstacle(core.Coord{Col: 4, Row: 1})
	g.PlaceObstacle(core.Coord{Col: 4, Row: 2})
	g.PlaceObstacle(core.Coord{Col: 6, Row: 3})

	a := flowfield.Compute(g)
	b := flowfield.Compute(g)
	assert.Equal(t, a.Distances(), b.Distances())
	assert.Equal(t, a.Directions(), b.Directions())
}

// TestCompute_MonotonicDescent checks the central field invariant: every
// reachable non-goal cell's direction points at a neighbor with a
// strictly smaller distance.
func TestCompute_MonotonicDescent(t *testing.T) {
	g := mustGrid(t, testCfg)
	obstacles := []core.Coord{
		{Col: 2, Row: 1}, {Col: 2, Row: 2}, {Col: 2, Row: 3},
		{Col: 5, Row: 2}, {Col: 5, Row: 3}, {Col: 5, Row: 4}, {Col: 5, Row: 5},
		{Col: 7, Row: 0}, {Col: 7, Row: 1},
	}
	for _, c := range obstacles {
		g.PlaceObstacle(c)
	}
	f := g.FlowField()

	for row := 0; row < testCfg.Height; row++ {
		for col := 0; col < testCfg.Width; col++ {
			c := core.Coord{Col: col, Row: row}
			if !f.Reachable(c) || g.Zone(c) == core.ZoneGoal {
				continue
			}
			dir, ok := f.Direction(c)
			require.True(t, ok, "reachable cell %v must carry a direction", c)
			require.False(t, dir.IsZero(), "non-goal cell %v must move", c)

			nb := c.Add(signum(dir.X), signum(dir.Y))
			assert.Less(t, f.Distance(nb), f.Distance(c),
				"direction at %v points to %v without descent", c, nb)
		}
	}
}

// TestCompute_EnclosedPocket verifies concrete scenario 3: cells inside
// a sealed pocket report unreachable and carry no direction.
func TestCompute_EnclosedPocket(t *testing.T) {
	g := mustGrid(t, testCfg)
	// Wall in the 3-cell pocket {(2,1),(3,1),(2,2)} with no opening.
	wall := []core.Coord{
		{Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0}, {Col: 4, Row: 0},
		{Col: 1, Row: 1}, {Col: 4, Row: 1},
		{Col: 1, Row: 2}, {Col: 3, Row: 2}, {Col: 4, Row: 2},
		{Col: 1, Row: 3}, {Col: 2, Row: 3}, {Col: 3, Row: 3},
	}
	for _, c := range wall {
		g.PlaceObstacle(c)
	}
	f := g.FlowField()

	pocket := []core.Coord{{Col: 2, Row: 1}, {Col: 3, Row: 1}, {Col: 2, Row: 2}}
	for _, c := range pocket {
		assert.False(t, f.Reachable(c), "pocket cell %v must be unreachable", c)
		assert.Equal(t, flowfield.Unreachable, f.Distance(c))
		dir, ok := f.Direction(c)
		assert.False(t, ok, "pocket cell %v must have no direction", c)
		assert.True(t, dir.IsZero())
	}

	// The rest of the grid still flows.
	assert.True(t, f.Reachable(core.Coord{Col: 0, Row: 0}))
}

// TestDirection_GoalArrival expects the fixed zero arrival vector with
// ok=true inside the goal zone.
func TestDirection_GoalArrival(t *testing.T) {
	g := mustGrid(t, testCfg)
	f := g.FlowField()
	dir, ok := f.Direction(core.Coord{Col: 9, Row: 5})
	require.True(t, ok)
	assert.True(t, dir.IsZero())
	assert.Equal(t, 0, f.Distance(core.Coord{Col: 9, Row: 5}))
}

// TestDirection_InvalidCoordinate treats boundary probes as ordinary
// sentinel outcomes.
func TestDirection_InvalidCoordinate(t *testing.T) {
	g := mustGrid(t, testCfg)
	f := g.FlowField()

	outside := core.Coord{Col: -1, Row: 2}
	assert.Equal(t, flowfield.Unreachable, f.Distance(outside))
	assert.False(t, f.Reachable(outside))
	_, ok := f.Direction(outside)
	assert.False(t, ok)
	assert.True(t, f.DirectionAt(-3.5, 2.0).IsZero())
}

// TestDirectionAt_ExactCell verifies concrete scenario 4: a zero
// fractional offset degenerates interpolation to the exact table value.
func TestDirectionAt_ExactCell(t *testing.T) {
	g := mustGrid(t, testCfg)
	g.PlaceObstacle(core.Coord{Col: 4, Row: 3})
	f := g.FlowField()

	for _, c := range []core.Coord{{Col: 2, Row: 2}, {Col: 6, Row: 1}, {Col: 3, Row: 5}} {
		want, ok := f.Direction(c)
		require.True(t, ok)
		got := f.DirectionAt(float64(c.Col), float64(c.Row))
		assert.InDelta(t, want.X, got.X, 1e-9, "X at %v", c)
		assert.InDelta(t, want.Y, got.Y, 1e-9, "Y at %v", c)
	}
}

// TestDirectionAt_Interpolated checks that a mid-cell position blends
// its corners into a unit vector.
func TestDirectionAt_Interpolated(t *testing.T) {
	g := mustGrid(t, testCfg)
	f := g.FlowField()

	v := f.DirectionAt(3.5, 2.5)
	assert.InDelta(t, 1.0, v.Len(), 1e-9, "interpolated vector must renormalize to unit length")
}

// TestDirectionAt_EscapeHeuristic encloses the home cell and expects a
// sane move toward the nearest reachable neighbor instead of a freeze.
func TestDirectionAt_EscapeHeuristic(t *testing.T) {
	g := mustGrid(t, testCfg)
	home := core.Coord{Col: 3, Row: 2}
	// Occupy the home cell itself: the agent stands on a cell that just
	// received an obstacle.
	g.PlaceObstacle(home)
	f := g.FlowField()

	require.False(t, f.Reachable(home))
	v := f.DirectionAt(3.0, 2.0)
	assert.False(t, v.IsZero(), "enclosed agent must still receive a move")
	assert.InDelta(t, 1.0, v.Len(), 1e-9)
}

// TestField_ExportIsolation verifies the debug export is a copy with no
// feedback into the field.
func TestField_ExportIsolation(t *testing.T) {
	g := mustGrid(t, testCfg)
	f := g.FlowField()

	dists := f.Distances()
	dirs := f.Directions()
	dists[0] = -42
	dirs[0] = core.Vec2{X: 99, Y: 99}

	assert.Equal(t, 10, f.Distance(core.Coord{Col: 0, Row: 0}))
	dir, _ := f.Direction(core.Coord{Col: 0, Row: 0})
	assert.NotEqual(t, core.Vec2{X: 99, Y: 99}, dir)
}

// TestSearchFieldAgreement cross-checks the two algorithms: along an
// unobstructed straight line toward the goal, the A* path length equals
// the field distance delta.
func TestSearchFieldAgreement(t *testing.T) {
	g := mustGrid(t, testCfg)
	f := g.FlowField()

	a := core.Coord{Col: 2, Row: 5}
	b := core.Coord{Col: 6, Row: 5}
	require.Greater(t, f.Distance(a), f.Distance(b))

	path, err := astar.FindPath(g, a, b)
	require.NoError(t, err)
	assert.Equal(t, f.Distance(a)-f.Distance(b), len(path)-1)
}
