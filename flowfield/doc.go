// Package flowfield builds and queries the shared distance/direction
// field that steers every agent toward the goal zone without per-agent
// search.
//
// What:
//
//   - Compute — two-phase build: a multi-source breadth-first search
//     from all goal cells records per-cell hop distance, then a
//     steepest-descent pass derives one unit direction vector per cell.
//   - Direction/Distance/Reachable — grid-resolution lookups.
//   - DirectionAt — bilinear interpolation over the four surrounding
//     cells for smooth continuous-space movement, with a local escape
//     scan when the home cell is enclosed.
//
// Why:
//
//   - For n agents and one goal region, one field build replaces n
//     searches; agents read the immutable field concurrently.
//
// Determinism: the descent pass scans neighbors in the fixed Conn8
// order (cardinals N,E,S,W before diagonals) and keeps the first strict
// improvement, so the same occupancy always yields identical tables.
// Diagonal directions are admitted only when both flanking cardinal
// cells are walkable, so vectors never cut through a blocking corner.
//
// Failure semantics: queries on invalid or unreachable coordinates
// return the Unreachable sentinel or a zero vector with ok=false —
// ordinary outcomes near boundaries, never errors.
//
// Complexity:
//
//   - Compute: O(W×H) time and memory.
//   - Every query: O(1); the escape scan is O(1) (bounded radius).
package flowfield
