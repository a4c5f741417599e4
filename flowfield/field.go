package flowfield

import (
	"math"

	"github.com/Bassie1994/Towerz-sub001/core"
)

// Unreachable is the sentinel distance reported for cells no goal can
// reach, and for invalid coordinates.
const Unreachable = math.MaxInt

// escapeRadius bounds the neighborhood scan used when an agent's home
// cell has no field entry (for example, it stands next to a just-placed
// obstacle that enclosed it).
const escapeRadius = 2

// Surface is the read-only grid view a field is computed from.
type Surface interface {
	Width() int
	Height() int
	// IsWalkable reports whether a ground mover may occupy c.
	IsWalkable(c core.Coord) bool
	// Zone classifies c; goal cells receive the arrival direction.
	Zone(c core.Coord) core.Zone
	// Goals enumerates the goal-zone coordinates seeding the build.
	Goals() []core.Coord
}

// Field is the immutable result of one build: a dense hop-distance table
// and a dense unit direction table over the grid it was computed from.
// A Field never outlives its grid's occupancy state — the grid discards
// it wholesale on every mutation.
type Field struct {
	width, height int
	zones         []core.Zone
	dist          []int
	dir           []core.Vec2
	reach         []bool
}

// Compute builds a complete field from s in two phases.
//
// Phase 1 seeds distance 0 at every goal cell and expands a 4-connected
// breadth-first frontier through walkable cells, recording minimum hops
// to any goal. Phase 2 assigns each reachable non-goal cell the unit
// vector toward its neighbor with the strictly smallest distance,
// scanning the fixed Conn8 order; goal cells keep the zero "arrival"
// vector. Cells the frontier never reached keep the Unreachable
// sentinel and no direction.
//
// Time: O(W×H), Memory: O(W×H).
func Compute(s Surface) *Field {
	w, h := s.Width(), s.Height()
	size := w * h
	f := &Field{
		width:  w,
		height: h,
		zones:  make([]core.Zone, size),
		dist:   make([]int, size),
		dir:    make([]core.Vec2, size),
		reach:  make([]bool, size),
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			f.zones[row*w+col] = s.Zone(core.Coord{Col: col, Row: row})
		}
	}

	// Phase 1: multi-source BFS from the goal zone.
	queue := make([]core.Coord, 0, size/4)
	for _, g := range s.Goals() {
		idx := g.Row*w + g.Col
		if f.dist[idx] == 0 && f.reach[idx] {
			continue
		}
		f.dist[idx] = 0
		f.reach[idx] = true
		queue = append(queue, g)
	}

	cardinals := core.Offsets(core.Conn4)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := f.dist[cur.Row*w+cur.Col]
		for _, o := range cardinals {
			nb := cur.Add(o[0], o[1])
			if nb.Col < 0 || nb.Col >= w || nb.Row < 0 || nb.Row >= h {
				continue
			}
			idx := nb.Row*w + nb.Col
			if f.reach[idx] || !s.IsWalkable(nb) {
				continue
			}
			f.dist[idx] = d + 1
			f.reach[idx] = true
			queue = append(queue, nb)
		}
	}

	// Phase 2: steepest descent over 8 neighbors, cardinals first.
	all := core.Offsets(core.Conn8)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			if !f.reach[idx] || f.zones[idx] == core.ZoneGoal {
				continue // unreachable keeps no direction; goal keeps arrival
			}
			cur := core.Coord{Col: col, Row: row}
			best := f.dist[idx]
			var bestVec core.Vec2
			for _, o := range all {
				nb := cur.Add(o[0], o[1])
				if nb.Col < 0 || nb.Col >= w || nb.Row < 0 || nb.Row >= h {
					continue
				}
				nIdx := nb.Row*w + nb.Col
				if !f.reach[nIdx] || f.dist[nIdx] >= best {
					continue
				}
				// A diagonal step needs both flanking cardinals open.
				if o[0] != 0 && o[1] != 0 {
					if !s.IsWalkable(cur.Add(o[0], 0)) || !s.IsWalkable(cur.Add(0, o[1])) {
						continue
					}
				}
				best = f.dist[nIdx]
				bestVec = core.Vec2{X: float64(o[0]), Y: float64(o[1])}.Normalize()
			}
			f.dir[idx] = bestVec
		}
	}
	return f
}

// Width returns the field's column count.
func (f *Field) Width() int { return f.width }

// Height returns the field's row count.
func (f *Field) Height() int { return f.height }

// Distance returns the hop count from c to the nearest goal cell, or
// Unreachable for invalid or enclosed coordinates. Complexity: O(1).
func (f *Field) Distance(c core.Coord) int {
	if !f.inBounds(c) {
		return Unreachable
	}
	return f.dist[c.Row*f.width+c.Col]
}

// Reachable reports whether any goal cell can reach c. Complexity: O(1).
func (f *Field) Reachable(c core.Coord) bool {
	return f.inBounds(c) && f.reach[c.Row*f.width+c.Col]
}

// Direction returns the unit movement vector at c. ok is false for
// invalid or unreachable coordinates; goal cells report the zero
// "arrival" vector with ok=true. Complexity: O(1).
func (f *Field) Direction(c core.Coord) (core.Vec2, bool) {
	if !f.Reachable(c) {
		return core.Vec2{}, false
	}
	return f.dir[c.Row*f.width+c.Col], true
}

// DirectionAt returns a smoothed movement vector for the continuous
// position (x, y) in cell units. The position's enclosing cell and
// fractional offset select the four surrounding cells, whose direction
// vectors blend by area overlap and renormalize to unit length. A
// fractional offset of (0,0) degenerates to the exact table value.
//
// When the home cell has no field entry the method falls back to a
// bounded neighborhood scan toward the nearest cell with a smaller
// distance, so an enclosed agent still receives a sane move. Invalid
// positions return the zero vector. Complexity: O(1).
func (f *Field) DirectionAt(x, y float64) core.Vec2 {
	col := int(math.Floor(x))
	row := int(math.Floor(y))
	home := core.Coord{Col: col, Row: row}
	if !f.inBounds(home) {
		return core.Vec2{}
	}
	if !f.reach[row*f.width+col] {
		return f.escape(home, x, y)
	}

	fx := x - float64(col)
	fy := y - float64(row)
	corners := [4]struct {
		c core.Coord
		w float64
	}{
		{core.Coord{Col: col, Row: row}, (1 - fx) * (1 - fy)},
		{core.Coord{Col: col + 1, Row: row}, fx * (1 - fy)},
		{core.Coord{Col: col, Row: row + 1}, (1 - fx) * fy},
		{core.Coord{Col: col + 1, Row: row + 1}, fx * fy},
	}

	var sum core.Vec2
	for _, corner := range corners {
		if corner.w == 0 || !f.Reachable(corner.c) {
			continue
		}
		sum = sum.Add(f.dir[corner.c.Row*f.width+corner.c.Col].Scale(corner.w))
	}
	return sum.Normalize()
}

// escape scans rings of growing radius around home for the reachable
// cell with the smallest distance and points the agent at it. Returns
// the zero vector when the whole neighborhood is enclosed.
func (f *Field) escape(home core.Coord, x, y float64) core.Vec2 {
	best := Unreachable
	var target core.Coord
	found := false
	for radius := 1; radius <= escapeRadius && !found; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if maxAbs(dc, dr) != radius {
					continue // ring cells only
				}
				nb := home.Add(dc, dr)
				if !f.Reachable(nb) {
					continue
				}
				if d := f.dist[nb.Row*f.width+nb.Col]; d < best {
					best = d
					target = nb
					found = true
				}
			}
		}
	}
	if !found {
		return core.Vec2{}
	}
	return core.Vec2{X: float64(target.Col) - x, Y: float64(target.Row) - y}.Normalize()
}

// Distances returns a copy of the dense distance table in row-major
// order — the read-only debug export. Complexity: O(W×H).
func (f *Field) Distances() []int {
	out := make([]int, len(f.dist))
	copy(out, f.dist)
	return out
}

// Directions returns a copy of the dense direction table in row-major
// order — the read-only debug export. Complexity: O(W×H).
func (f *Field) Directions() []core.Vec2 {
	out := make([]core.Vec2, len(f.dir))
	copy(out, f.dir)
	return out
}

func (f *Field) inBounds(c core.Coord) bool {
	return c.Col >= 0 && c.Col < f.width && c.Row >= 0 && c.Row < f.height
}

func maxAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
