// Package grid owns the mutable walkability state of one level: the
// dense occupancy table, the occupied-coordinate set, the fixed spawn
// and goal cell lists, and the cached flow field derived from them.
//
// What:
//
//   - Grid — construction from a core.ZoneConfig; query operations
//     (IsValidPosition, IsWalkable, HasObstacleAt); mutation operations
//     (PlaceObstacle, RemoveObstacle) that invalidate the cached field;
//     TestPlacement — the transactional connectivity check gating
//     placement; FlowField — lazy cached rebuild of the derived field.
//
// Invariants:
//
//   - A coordinate is occupied iff it is in the occupied set iff the
//     occupancy table is false there; the two representations never
//     diverge.
//   - Spawn and goal cells are never occupied; PlaceObstacle silently
//     ignores them, as it does invalid and already-occupied cells.
//   - The cached field is rebuilt in full on first query after any
//     mutation — no incremental patching, no partially-built field is
//     ever published.
//
// Concurrency: mutations, speculative placement checks, and cache
// rebuilds run under the grid's write lock; queries take the read lock.
// A published flowfield.Field is immutable and safe for concurrent
// reads without locks.
package grid
