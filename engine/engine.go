package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Bassie1994/Towerz-sub001/core"
	"github.com/Bassie1994/Towerz-sub001/grid"
)

// Option configures an Engine via functional arguments.
type Option func(*Engine)

// WithLogger routes the engine's structured mutation log to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithCellSize sets the world-units-per-cell scale applied to
// continuous-position queries. Values ≤ 0 keep the default of 1.
func WithCellSize(size float64) Option {
	return func(e *Engine) {
		if size > 0 {
			e.cellSize = size
		}
	}
}

// Engine exposes the navigation core to the simulation loop. One engine
// owns one grid for the lifetime of a level.
type Engine struct {
	grid     *grid.Grid
	log      logrus.FieldLogger
	cellSize float64
}

// New builds a level grid from cfg and wraps it. Returns the
// configuration's validation error for degenerate geometry.
func New(cfg core.ZoneConfig, opts ...Option) (*Engine, error) {
	g, err := grid.New(cfg)
	if err != nil {
		return nil, err
	}
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	e := &Engine{
		grid:     g,
		log:      silent,
		cellSize: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Grid returns the underlying grid for trusted setup and diagnostics.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// RequestObstaclePlacement validates the placement at c against the
// connectivity gate and performs it on acceptance. On rejection the
// grid is guaranteed unchanged and the method returns false.
func (e *Engine) RequestObstaclePlacement(c core.Coord) bool {
	if !e.grid.TestPlacement(c) {
		e.log.WithFields(logrus.Fields{"col": c.Col, "row": c.Row}).
			Debug("obstacle placement rejected")
		return false
	}
	e.grid.PlaceObstacle(c)
	e.log.WithFields(logrus.Fields{"col": c.Col, "row": c.Row}).
		Info("obstacle placed, flow field invalidated")
	return true
}

// RequestObstacleRemoval clears the obstacle at c, if any. Removal can
// only widen connectivity, so no validation applies.
func (e *Engine) RequestObstacleRemoval(c core.Coord) {
	if !e.grid.HasObstacleAt(c) {
		return
	}
	e.grid.RemoveObstacle(c)
	e.log.WithFields(logrus.Fields{"col": c.Col, "row": c.Row}).
		Info("obstacle removed, flow field invalidated")
}

// QueryDirection returns the movement vector for an agent at the
// continuous world position (x, y). Out-of-bounds and enclosed
// positions yield the zero vector.
func (e *Engine) QueryDirection(x, y float64) core.Vec2 {
	return e.grid.FlowField().DirectionAt(x/e.cellSize, y/e.cellSize)
}

// QueryDistance returns the hop distance from c to the goal zone, or
// flowfield.Unreachable for invalid or enclosed cells.
func (e *Engine) QueryDistance(c core.Coord) int {
	return e.grid.FlowField().Distance(c)
}

// QueryReachable reports whether an agent at c can reach the goal zone.
// Placement UIs use it to pre-flag cells.
func (e *Engine) QueryReachable(c core.Coord) bool {
	return e.grid.FlowField().Reachable(c)
}

// FieldSnapshot is the read-only diagnostic export of one field build:
// dense row-major copies of both tables. Mutating a snapshot never
// feeds back into the core.
type FieldSnapshot struct {
	Width, Height int
	Distances     []int
	Directions    []core.Vec2
}

// Snapshot copies the current field tables for external visualization,
// rebuilding the field first if a mutation invalidated it.
func (e *Engine) Snapshot() FieldSnapshot {
	f := e.grid.FlowField()
	return FieldSnapshot{
		Width:      f.Width(),
		Height:     f.Height(),
		Distances:  f.Distances(),
		Directions: f.Directions(),
	}
}
