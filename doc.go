// Package towerz is a real-time, obstacle-aware grid navigation engine
// for lane-defense style games: a walkability grid with spawn and goal
// zones, a goal-seeking flow field, point-to-point A* search, and a
// connectivity gate that keeps every obstacle placement from sealing the
// spawns off from the goal.
//
// 🚀 What does it give you?
//
//	A thread-safe navigation core built from small, composable packages:
//		• Core primitives: coordinates, zone geometry, movement vectors
//		• Connectivity: multi-source BFS spawn-to-goal reachability gate
//		• Flow field: per-cell hop distances + steepest-descent directions,
//		  with bilinear interpolation for agents between cell centers
//		• A* search: optimal 4-connected paths with a nearby-goal fallback
//		• Grid: obstacle occupancy, speculative placement validation, and
//		  a lazily rebuilt flow-field cache
//		• Engine: the single façade the simulation loop talks to
//
// ✨ Why this layout?
//
//   - Deterministic – fixed neighbor ordering makes every table and path
//     reproducible across runs
//   - Rock-solid guarantees – R/W locks on the grid, immutable published
//     fields, copy-only diagnostic exports
//   - Minimal coupling – each algorithm package consumes a tiny Surface
//     interface that *grid.Grid satisfies
//
// Under the hood, everything is organized under six packages:
//
//	core/      — coordinates, zones, connectivity tables, vectors
//	connect/   — spawn-to-goal reachability (the placement gate)
//	astar/     — point-to-point shortest path search
//	flowfield/ — distance + direction tables over the whole grid
//	grid/      — occupancy state, validation, flow-field cache
//	engine/    — game-facing façade with structured mutation logging
//
// Quick ASCII example (S spawn, G goal, # obstacle, arrows flow):
//
//	S → → ↓ #
//	S → # ↓ G
//	S → → → G
//
// cmd/fieldview renders the live tables in a terminal and lets you probe
// the placement gate interactively.
//
//	go get github.com/Bassie1994/Towerz-sub001
package towerz
