// Package astar implements point-to-point informed search on a
// walkability grid, used for diagnostics and for existence checks that
// do not need the full flow field.
//
// What:
//
//   - FindPath — A* with the Manhattan heuristic over 4-connected,
//     unit-cost steps; ties on total estimate break toward the smaller
//     heuristic remainder. WithNearbyGoal also accepts any goal-zone
//     cell as a terminal, supporting "path to the exit region" queries.
//   - PathExists — plain breadth-first reachability, unconditionally
//     cheaper when only existence matters.
//
// Why:
//
//   - The Manhattan heuristic never overestimates true 4-connected grid
//     distance, so returned paths are length-optimal.
//
// Errors:
//
//   - ErrInvalidEndpoint: start or end lies outside the grid.
//   - ErrNoPath: the open set exhausted without reaching a terminal.
//     Both are expected outcomes, not faults.
//
// Complexity:
//
//   - Time:   O(W×H log(W×H)) worst case (lazy decrease-key heap).
//   - Memory: O(W×H).
package astar
