// Package core defines the coordinate model shared by every navigation
// package in this module: lattice coordinates, zone classification,
// neighbor connectivity tables, and 2D float vectors.
//
// What:
//
//   - Coord — immutable (Col, Row) cell address with value equality.
//   - ZoneConfig — grid dimensions plus spawn/goal band geometry;
//     classifies any coordinate as Spawn, Goal, or Interior.
//   - Connectivity — Conn4 (orthogonal) or Conn8 (with diagonals);
//     Offsets returns the matching neighbor offset table.
//   - Vec2 — float vector used for movement directions.
//
// Why:
//
//   - Every algorithm package (connect, astar, flowfield) reasons about
//     the same lattice; keeping the pure coordinate functions here keeps
//     those packages free of grid state.
//
// All functions are pure and allocation-free except the zone cell
// enumerations, which allocate their result slices.
//
// Complexity: every classification and offset lookup is O(1);
// SpawnCells/GoalCells are O(n) in the number of cells returned.
package core
