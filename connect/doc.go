// Package connect decides whether a grid state keeps the spawn zone
// connected to the goal zone — the safety gate consulted before every
// obstacle placement.
//
// What:
//
//   - AllSpawnsReachGoal runs one breadth-first search seeded from every
//     goal cell over the walkable adjacency and succeeds as soon as any
//     frontier cell classifies as spawn.
//
// Why:
//
//   - The placement gate only needs "some spawn-to-goal path survives";
//     a single reverse multi-source BFS answers that without one search
//     per spawn cell. The adjacency is undirected on walkable cells, so
//     goal→spawn reachability equals spawn→goal reachability.
//
// Complexity:
//
//   - Time:   O(W×H) expansions, 4-connected.
//   - Memory: O(W×H) for the visited table and queue.
package connect
