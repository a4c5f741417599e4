// Package engine is the surface the surrounding simulation talks to:
// validated obstacle placement, per-tick direction and distance queries,
// and the read-only diagnostic export of the field tables.
//
// What:
//
//   - Engine — wraps one grid.Grid; RequestObstaclePlacement gates every
//     untrusted mutation through the connectivity check, QueryDirection/
//     QueryDistance/QueryReachable serve agents each tick, Snapshot
//     copies the full distance and direction tables for an external
//     renderer.
//
// Why:
//
//   - The grid's unvalidated PlaceObstacle stays available for trusted
//     level setup, but everything outside this module mutates only
//     through the validated entry point, so the spawn-to-goal
//     connectivity invariant can never break from the outside.
//
// Placements, rejections, and removals log through logrus at debug and
// info levels; the default logger discards everything.
package engine
