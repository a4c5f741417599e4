package astar

import (
	"container/heap"

	"github.com/Bassie1994/Towerz-sub001/core"
)

// node is one open-set entry: coordinate, cost from start, and heuristic
// remainder. Entries live only for the duration of one search.
type node struct {
	c    core.Coord
	g, h int
}

// openSet is a min-heap ordered by f = g+h, breaking ties toward the
// smaller heuristic remainder so the search hugs the target. Stale
// duplicates are pushed rather than decreased in place and skipped on
// pop (lazy decrease-key).
type openSet []node

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	fi, fj := s[i].g+s[i].h, s[j].g+s[j].h
	if fi != fj {
		return fi < fj
	}
	return s[i].h < s[j].h
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(node)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	e := old[n-1]
	*s = old[:n-1]
	return e
}

// FindPath computes a shortest 4-connected path from start to end over
// walkable (or goal-zone) cells with unit step cost. The returned path
// runs start→terminal inclusive. With WithNearbyGoal, reaching any
// goal-zone cell also terminates successfully.
//
// Returns ErrInvalidEndpoint when either endpoint lies outside the grid
// and ErrNoPath when no terminal is reachable; both are ordinary
// outcomes, never panics.
//
// Time: O(W×H log(W×H)), Memory: O(W×H).
func FindPath(s Surface, start, end core.Coord, opts ...Option) ([]core.Coord, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !inBounds(s, start) || !inBounds(s, end) {
		return nil, ErrInvalidEndpoint
	}
	if !traversable(s, start) {
		return nil, ErrNoPath
	}

	gScore := map[core.Coord]int{start: 0}
	parent := make(map[core.Coord]core.Coord)
	closed := make(map[core.Coord]bool)

	open := make(openSet, 0, 64)
	heap.Push(&open, node{c: start, g: 0, h: start.Manhattan(end)})

	offsets := core.Offsets(core.Conn4)
	for open.Len() > 0 {
		cur := heap.Pop(&open).(node)
		if closed[cur.c] {
			continue // stale entry
		}
		closed[cur.c] = true

		if cur.c == end || (cfg.NearbyGoal && s.Zone(cur.c) == core.ZoneGoal) {
			return reconstruct(parent, start, cur.c), nil
		}

		for _, d := range offsets {
			nb := cur.c.Add(d[0], d[1])
			if !inBounds(s, nb) || closed[nb] || !traversable(s, nb) {
				continue
			}
			tentative := cur.g + 1
			if best, seen := gScore[nb]; seen && tentative >= best {
				continue
			}
			gScore[nb] = tentative
			parent[nb] = cur.c
			heap.Push(&open, node{c: nb, g: tentative, h: nb.Manhattan(end)})
		}
	}
	return nil, ErrNoPath
}

// PathExists reports 4-connected reachability from start to end via a
// plain breadth-first search — no heuristic, no path reconstruction.
// With WithNearbyGoal, any goal-zone cell counts as the target.
//
// Time: O(W×H), Memory: O(W×H).
func PathExists(s Surface, start, end core.Coord, opts ...Option) bool {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !inBounds(s, start) || !inBounds(s, end) || !traversable(s, start) {
		return false
	}

	w := s.Width()
	visited := make([]bool, w*s.Height())
	visited[start.Row*w+start.Col] = true
	queue := []core.Coord{start}

	offsets := core.Offsets(core.Conn4)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == end || (cfg.NearbyGoal && s.Zone(cur) == core.ZoneGoal) {
			return true
		}
		for _, d := range offsets {
			nb := cur.Add(d[0], d[1])
			if !inBounds(s, nb) || !traversable(s, nb) {
				continue
			}
			idx := nb.Row*w + nb.Col
			if visited[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, nb)
		}
	}
	return false
}

func inBounds(s Surface, c core.Coord) bool {
	return c.Col >= 0 && c.Col < s.Width() && c.Row >= 0 && c.Row < s.Height()
}

// traversable admits walkable cells and goal-zone cells; the grid keeps
// goal cells unoccupied, but the explicit zone check keeps search and
// flow field consistent should that guard ever relax.
func traversable(s Surface, c core.Coord) bool {
	return s.IsWalkable(c) || s.Zone(c) == core.ZoneGoal
}

// reconstruct walks parent links from terminal back to start and
// reverses the result into start→terminal order.
func reconstruct(parent map[core.Coord]core.Coord, start, terminal core.Coord) []core.Coord {
	path := []core.Coord{terminal}
	for cur := terminal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
