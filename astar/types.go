package astar

import (
	"errors"

	"github.com/Bassie1994/Towerz-sub001/core"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidEndpoint is returned when start or end lies out of bounds.
	ErrInvalidEndpoint = errors.New("astar: endpoint outside the grid")
	// ErrNoPath is returned when the open set exhausts without reaching
	// the target (or, with WithNearbyGoal, any goal-zone cell). Distinct
	// from a found empty path: FindPath(c, c) returns []core.Coord{c}.
	ErrNoPath = errors.New("astar: no path between endpoints")
)

// Surface is the read-only grid view the search traverses.
type Surface interface {
	Width() int
	Height() int
	// IsWalkable reports whether a ground mover may occupy c. Goal cells
	// are always walkable; the grid never occupies them.
	IsWalkable(c core.Coord) bool
	// Zone classifies c for goal-zone termination.
	Zone(c core.Coord) core.Zone
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the tunable search parameters.
type Options struct {
	// NearbyGoal also terminates the search on any goal-zone cell, not
	// only the literal end coordinate.
	NearbyGoal bool
}

// DefaultOptions returns the baseline configuration: exact-target
// termination only.
func DefaultOptions() Options {
	return Options{NearbyGoal: false}
}

// WithNearbyGoal accepts any goal-zone cell as a successful terminal.
func WithNearbyGoal() Option {
	return func(o *Options) { o.NearbyGoal = true }
}
