package connect

import (
	"github.com/Bassie1994/Towerz-sub001/core"
)

// Surface is the read-only grid view the validator traverses. grid.Grid
// satisfies it; so does the grid's internal unlocked view used inside
// speculative placement checks.
type Surface interface {
	// Width and Height bound the lattice.
	Width() int
	Height() int
	// IsWalkable reports whether a ground mover may occupy c.
	IsWalkable(c core.Coord) bool
	// Zone classifies c; out-of-bounds coordinates classify interior.
	Zone(c core.Coord) core.Zone
	// Goals enumerates the goal-zone coordinates.
	Goals() []core.Coord
}

// AllSpawnsReachGoal reports whether at least one walkable path connects
// the spawn zone to the goal zone on s. It seeds a breadth-first search
// from every goal cell simultaneously and returns true the moment a
// spawn cell joins the frontier; false once the frontier exhausts.
//
// The guarantee is deliberately the weaker "some path survives": the
// placement gate rejects exactly the mutations that would wall the goal
// region off from every spawn.
//
// Time: O(W×H), Memory: O(W×H).
func AllSpawnsReachGoal(s Surface) bool {
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 {
		return false
	}

	visited := make([]bool, w*h)
	queue := make([]core.Coord, 0, w*h/4)

	// Seed from every goal cell; goal cells are never occupied.
	for _, g := range s.Goals() {
		idx := g.Row*w + g.Col
		if visited[idx] {
			continue
		}
		visited[idx] = true
		queue = append(queue, g)
	}

	offsets := core.Offsets(core.Conn4)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if s.Zone(cur) == core.ZoneSpawn {
			return true
		}
		for _, d := range offsets {
			nb := cur.Add(d[0], d[1])
			if nb.Col < 0 || nb.Col >= w || nb.Row < 0 || nb.Row >= h {
				continue
			}
			idx := nb.Row*w + nb.Col
			if visited[idx] || !s.IsWalkable(nb) {
				continue
			}
			visited[idx] = true
			queue = append(queue, nb)
		}
	}
	return false
}
