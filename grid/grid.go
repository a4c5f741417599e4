package grid

import (
	"sync"

	"github.com/Bassie1994/Towerz-sub001/connect"
	"github.com/Bassie1994/Towerz-sub001/core"
	"github.com/Bassie1994/Towerz-sub001/flowfield"
)

// Grid is the walkability grid for one level. Created once per level,
// mutated through obstacle placement and removal, discarded when the
// level ends. The zero value is not usable; construct with New.
type Grid struct {
	mu    sync.RWMutex
	zones core.ZoneConfig

	// walkable[row*Width+col] is false iff the cell holds an obstacle.
	// occupied mirrors the false entries for O(1) set queries; the two
	// must never diverge.
	walkable []bool
	occupied map[core.Coord]struct{}

	// Fixed at construction, never mutated afterwards.
	spawns []core.Coord
	goals  []core.Coord

	// Cached derived field, rebuilt lazily when dirty.
	field      *flowfield.Field
	dirty      bool
	recomputes uint64
}

// New constructs an all-walkable grid from cfg. Returns the
// configuration's validation error for degenerate geometry.
// Complexity: O(W×H).
func New(cfg core.ZoneConfig) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := cfg.Width * cfg.Height
	g := &Grid{
		zones:    cfg,
		walkable: make([]bool, size),
		occupied: make(map[core.Coord]struct{}),
		spawns:   cfg.SpawnCells(),
		goals:    cfg.GoalCells(),
		dirty:    true,
	}
	for i := range g.walkable {
		g.walkable[i] = true
	}
	return g, nil
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.zones.Width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.zones.Height }

// Zones returns the zone configuration the grid was built from.
func (g *Grid) Zones() core.ZoneConfig { return g.zones }

// Zone classifies c. Complexity: O(1).
func (g *Grid) Zone(c core.Coord) core.Zone { return g.zones.Classify(c) }

// Spawns returns a copy of the spawn cell list computed at construction.
func (g *Grid) Spawns() []core.Coord {
	out := make([]core.Coord, len(g.spawns))
	copy(out, g.spawns)
	return out
}

// Goals returns a copy of the goal cell list computed at construction.
func (g *Grid) Goals() []core.Coord {
	out := make([]core.Coord, len(g.goals))
	copy(out, g.goals)
	return out
}

// IsValidPosition reports whether c lies inside the grid.
// Complexity: O(1).
func (g *Grid) IsValidPosition(c core.Coord) bool {
	return g.zones.InBounds(c)
}

// IsWalkable reports whether a ground mover may occupy c: false for
// invalid or occupied coordinates. Goal cells are never occupied and so
// always walkable. Complexity: O(1).
func (g *Grid) IsWalkable(c core.Coord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.walkableLocked(c)
}

// IsWalkableFor reports walkability for the given movement capability:
// flying movers ignore occupancy and respect only the grid bounds.
// Complexity: O(1).
func (g *Grid) IsWalkableFor(c core.Coord, mode core.MoveMode) bool {
	if mode == core.Flying {
		return g.zones.InBounds(c)
	}
	return g.IsWalkable(c)
}

// HasObstacleAt reports whether c currently holds an obstacle.
// Complexity: O(1).
func (g *Grid) HasObstacleAt(c core.Coord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.occupied[c]
	return ok
}

// PlaceObstacle marks c occupied and invalidates the cached field.
// Invalid, spawn-zone, goal-zone, and already-occupied coordinates are
// silently ignored — callers validate legality through TestPlacement
// first. Complexity: O(1).
func (g *Grid) PlaceObstacle(c core.Coord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.zones.InBounds(c) || g.zones.Classify(c) != core.ZoneInterior {
		return
	}
	if _, ok := g.occupied[c]; ok {
		return
	}
	g.walkable[c.Row*g.zones.Width+c.Col] = false
	g.occupied[c] = struct{}{}
	g.dirty = true
}

// RemoveObstacle clears the obstacle at c, if any, and invalidates the
// cached field. Complexity: O(1).
func (g *Grid) RemoveObstacle(c core.Coord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.occupied[c]; !ok {
		return
	}
	g.walkable[c.Row*g.zones.Width+c.Col] = true
	delete(g.occupied, c)
	g.dirty = true
}

// TestPlacement speculatively occupies c, runs the connectivity
// validator, restores the prior occupancy, and reports whether some
// spawn-to-goal path survives the placement. The temporary mutation and
// its restoration bracket the validator call inside one critical
// section: no other operation can observe the grid mid-check.
//
// Placements on invalid, spawn, or goal coordinates are never legal and
// report false without touching the grid. Complexity: O(W×H).
func (g *Grid) TestPlacement(c core.Coord) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.zones.InBounds(c) || g.zones.Classify(c) != core.ZoneInterior {
		return false
	}
	idx := c.Row*g.zones.Width + c.Col
	prior := g.walkable[idx]
	g.walkable[idx] = false
	ok := connect.AllSpawnsReachGoal(unlocked{g})
	g.walkable[idx] = prior
	return ok
}

// FlowField returns the cached field, rebuilding it first when a
// mutation has invalidated it. The returned field is immutable; agents
// may query it concurrently. Complexity: O(1) on a clean cache,
// O(W×H) on rebuild.
func (g *Grid) FlowField() *flowfield.Field {
	g.mu.RLock()
	if !g.dirty && g.field != nil {
		f := g.field
		g.mu.RUnlock()
		return f
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dirty || g.field == nil {
		g.field = flowfield.Compute(unlocked{g})
		g.dirty = false
		g.recomputes++
	}
	return g.field
}

// Recomputes returns how many times the flow field has been rebuilt —
// observable cache behavior for tests and diagnostics.
func (g *Grid) Recomputes() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.recomputes
}

// walkableLocked is the lock-free walkability predicate; callers hold
// at least the read lock.
func (g *Grid) walkableLocked(c core.Coord) bool {
	if !g.zones.InBounds(c) {
		return false
	}
	return g.walkable[c.Row*g.zones.Width+c.Col]
}

// unlocked adapts a locked Grid for the algorithm packages. The grid's
// RWMutex is not reentrant, so validator and field builds running
// inside a critical section read the underlying state directly.
type unlocked struct {
	g *Grid
}

func (u unlocked) Width() int { return u.g.zones.Width }

func (u unlocked) Height() int { return u.g.zones.Height }

func (u unlocked) IsWalkable(c core.Coord) bool { return u.g.walkableLocked(c) }

func (u unlocked) Zone(c core.Coord) core.Zone { return u.g.zones.Classify(c) }

func (u unlocked) Goals() []core.Coord { return u.g.goals }
