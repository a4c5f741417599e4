package core

import "errors"

// Sentinel errors for zone configuration.
var (
	// ErrBadDimensions indicates non-positive grid width or height.
	ErrBadDimensions = errors.New("core: grid dimensions must be positive")
	// ErrBadZones indicates spawn/goal bands that are non-positive or do
	// not fit inside the grid.
	ErrBadZones = errors.New("core: zone bands must be positive and fit inside the grid")
)

// Zone classifies a coordinate's role on the grid.
type Zone int

const (
	// ZoneInterior covers every cell outside the spawn and goal bands.
	ZoneInterior Zone = iota
	// ZoneSpawn covers the leftmost SpawnCols columns, all rows.
	ZoneSpawn
	// ZoneGoal covers the rightmost GoalCols columns intersected with the
	// bottom GoalRows rows — a corner region, not the full right edge.
	ZoneGoal
)

// String implements fmt.Stringer for diagnostics.
func (z Zone) String() string {
	switch z {
	case ZoneSpawn:
		return "spawn"
	case ZoneGoal:
		return "goal"
	default:
		return "interior"
	}
}

// ZoneConfig fixes the grid dimensions and the spawn/goal band geometry
// for a level. It is a pure value: classification never mutates and
// depends only on the coordinate and these five integers.
type ZoneConfig struct {
	// Width and Height bound valid coordinates to [0,Width)×[0,Height).
	Width, Height int
	// SpawnCols is the number of leftmost columns forming the spawn zone.
	SpawnCols int
	// GoalCols and GoalRows describe the goal corner: the rightmost
	// GoalCols columns intersected with the bottom GoalRows rows.
	GoalCols, GoalRows int
}

// Validate reports whether the configuration describes a usable grid:
// positive dimensions, positive bands, and spawn/goal columns that do
// not overlap. Complexity: O(1).
func (zc ZoneConfig) Validate() error {
	if zc.Width <= 0 || zc.Height <= 0 {
		return ErrBadDimensions
	}
	if zc.SpawnCols <= 0 || zc.GoalCols <= 0 || zc.GoalRows <= 0 {
		return ErrBadZones
	}
	if zc.SpawnCols+zc.GoalCols > zc.Width || zc.GoalRows > zc.Height {
		return ErrBadZones
	}
	return nil
}

// InBounds reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (zc ZoneConfig) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < zc.Width && c.Row >= 0 && c.Row < zc.Height
}

// Classify returns the zone of c. Out-of-bounds coordinates classify as
// interior; callers gate on InBounds first. Complexity: O(1).
func (zc ZoneConfig) Classify(c Coord) Zone {
	if !zc.InBounds(c) {
		return ZoneInterior
	}
	if c.Col < zc.SpawnCols {
		return ZoneSpawn
	}
	if c.Col >= zc.Width-zc.GoalCols && c.Row >= zc.Height-zc.GoalRows {
		return ZoneGoal
	}
	return ZoneInterior
}

// SpawnCells enumerates every spawn-zone coordinate in row-major order.
// Complexity: O(SpawnCols×Height).
func (zc ZoneConfig) SpawnCells() []Coord {
	cells := make([]Coord, 0, zc.SpawnCols*zc.Height)
	for row := 0; row < zc.Height; row++ {
		for col := 0; col < zc.SpawnCols; col++ {
			cells = append(cells, Coord{Col: col, Row: row})
		}
	}
	return cells
}

// GoalCells enumerates every goal-zone coordinate in row-major order.
// Complexity: O(GoalCols×GoalRows).
func (zc ZoneConfig) GoalCells() []Coord {
	cells := make([]Coord, 0, zc.GoalCols*zc.GoalRows)
	for row := zc.Height - zc.GoalRows; row < zc.Height; row++ {
		for col := zc.Width - zc.GoalCols; col < zc.Width; col++ {
			cells = append(cells, Coord{Col: col, Row: row})
		}
	}
	return cells
}
