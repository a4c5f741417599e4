package flowfield_test

import (
	"testing"

	"github.com/Bassie1994/Towerz-sub001/core"
	"github.com/Bassie1994/Towerz-sub001/flowfield"
	"github.com/Bassie1994/Towerz-sub001/grid"
)

// benchGrid builds a W×H arena with a deterministic obstacle pattern:
// every third column walled except one passage, forcing long detours.
func benchGrid(b *testing.B, w, h int) *grid.Grid {
	b.Helper()
	g, err := grid.New(core.ZoneConfig{Width: w, Height: h, SpawnCols: 1, GoalCols: 2, GoalRows: h / 2})
	if err != nil {
		b.Fatalf("grid.New: %v", err)
	}
	for col := 2; col < w-2; col += 3 {
		for row := 0; row < h; row++ {
			if row == (col % h) {
				continue // one passage per wall
			}
			g.PlaceObstacle(core.Coord{Col: col, Row: row})
		}
	}
	return g
}

// BenchmarkCompute_100x100 measures a full two-phase field build.
func BenchmarkCompute_100x100(b *testing.B) {
	g := benchGrid(b, 100, 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flowfield.Compute(g)
	}
}

// BenchmarkDirectionAt measures the continuous-position query, the
// hottest per-agent call in a simulation tick.
func BenchmarkDirectionAt(b *testing.B) {
	g := benchGrid(b, 100, 100)
	f := flowfield.Compute(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.DirectionAt(float64(i%97)+0.25, float64(i%89)+0.75)
	}
}
