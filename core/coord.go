package core

// Coord addresses one cell of the lattice as (Col, Row), column-major in
// name only: Col grows rightward, Row grows downward. Coords compare by
// value and may be used as map keys.
type Coord struct {
	Col, Row int
}

// Add returns the coordinate displaced by (dc, dr). Complexity: O(1).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Manhattan returns the L1 distance between c and o — the exact number of
// 4-connected steps on an unobstructed grid, hence an admissible
// heuristic for unit-cost informed search. Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	return absInt(c.Col-o.Col) + absInt(c.Row-o.Row)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, cardinals first.
	Conn8
)

// Neighbor offset tables. Cardinals precede diagonals in the Conn8 table
// so scans that take the first strict improvement resolve equal-distance
// ties to a cardinal step; the fixed order makes every scan
// deterministic.
var (
	offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [8][2]int{
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
		{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
	}
)

// Offsets returns the (dc, dr) neighbor offset table for conn.
// The returned slice is shared and must not be mutated.
// Complexity: O(1).
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8[:]
	}
	return offsets4[:]
}

// MoveMode distinguishes ground movers, which obstacles block, from
// flying movers, which only the grid boundary constrains.
type MoveMode int

const (
	// Ground movement is blocked by occupied cells.
	Ground MoveMode = iota
	// Flying movement ignores occupancy and respects only grid bounds.
	Flying
)
