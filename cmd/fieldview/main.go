// Command fieldview renders the navigation engine's distance and
// direction tables in a terminal and lets you probe the placement gate
// interactively. It is a pure read-only consumer of the engine's
// diagnostic snapshot: every mutation goes through the validated
// placement entry point.
//
// Keys: arrows or hjkl move the cursor, space toggles an obstacle,
// d switches between direction and distance view, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Bassie1994/Towerz-sub001/core"
	"github.com/Bassie1994/Towerz-sub001/engine"
	"github.com/Bassie1994/Towerz-sub001/flowfield"
)

// arrow glyphs indexed by (sign(dx)+1, sign(dy)+1)
var arrows = [3][3]rune{
	{'↖', '←', '↙'},
	{'↑', '·', '↓'},
	{'↗', '→', '↘'},
}

type view struct {
	screen tcell.Screen
	eng    *engine.Engine

	cfg       core.ZoneConfig
	cursor    core.Coord
	distances bool // false: direction glyphs, true: distance digits
	status    string
}

func newView(cfg core.ZoneConfig) (*view, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &view{
		screen: screen,
		eng:    eng,
		cfg:    cfg,
		cursor: core.Coord{Col: cfg.Width / 2, Row: cfg.Height / 2},
		status: "space: toggle obstacle  d: distances  q: quit",
	}, nil
}

func (v *view) run() {
	defer v.screen.Fini()
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

func (v *view) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return false
	case ev.Key() == tcell.KeyUp:
		v.moveCursor(0, -1)
	case ev.Key() == tcell.KeyDown:
		v.moveCursor(0, 1)
	case ev.Key() == tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case ev.Key() == tcell.KeyRight:
		v.moveCursor(1, 0)
	case ev.Key() == tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.moveCursor(0, -1)
		case 'j':
			v.moveCursor(0, 1)
		case 'h':
			v.moveCursor(-1, 0)
		case 'l':
			v.moveCursor(1, 0)
		case 'd':
			v.distances = !v.distances
		case ' ':
			v.toggleObstacle()
		}
	}
	return true
}

func (v *view) moveCursor(dc, dr int) {
	next := v.cursor.Add(dc, dr)
	if v.cfg.InBounds(next) {
		v.cursor = next
	}
}

func (v *view) toggleObstacle() {
	g := v.eng.Grid()
	if g.HasObstacleAt(v.cursor) {
		v.eng.RequestObstacleRemoval(v.cursor)
		v.status = fmt.Sprintf("removed obstacle at (%d,%d)", v.cursor.Col, v.cursor.Row)
		return
	}
	if v.eng.RequestObstaclePlacement(v.cursor) {
		v.status = fmt.Sprintf("placed obstacle at (%d,%d)", v.cursor.Col, v.cursor.Row)
	} else {
		v.status = fmt.Sprintf("REJECTED at (%d,%d): placement would sever spawn-goal connectivity", v.cursor.Col, v.cursor.Row)
	}
}

func (v *view) draw() {
	v.screen.Clear()
	snap := v.eng.Snapshot()
	g := v.eng.Grid()

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			c := core.Coord{Col: col, Row: row}
			r, style := v.cell(c, snap)
			if c == v.cursor {
				style = style.Reverse(true)
			}
			// Two columns per cell keep the aspect ratio near square.
			v.screen.SetContent(col*2, row, r, nil, style)
			v.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	line := fmt.Sprintf("(%d,%d) dist=%s rebuilds=%d  %s",
		v.cursor.Col, v.cursor.Row, distLabel(v.eng.QueryDistance(v.cursor)), g.Recomputes(), v.status)
	for i, r := range line {
		v.screen.SetContent(i, snap.Height+1, r, nil, statusStyle)
	}
	v.screen.Show()
}

// cell picks the glyph and color for one grid cell.
func (v *view) cell(c core.Coord, snap engine.FieldSnapshot) (rune, tcell.Style) {
	g := v.eng.Grid()
	idx := c.Row*snap.Width + c.Col

	switch {
	case g.HasObstacleAt(c):
		return '█', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case g.Zone(c) == core.ZoneSpawn:
		return 'S', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case g.Zone(c) == core.ZoneGoal:
		return 'G', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case snap.Distances[idx] == flowfield.Unreachable:
		return '·', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}

	if v.distances {
		return digit(snap.Distances[idx]), tcell.StyleDefault.Foreground(tcell.ColorTeal)
	}
	d := snap.Directions[idx]
	return arrows[sign(d.X)+1][sign(d.Y)+1], tcell.StyleDefault.Foreground(tcell.ColorTeal)
}

// digit compresses a distance into one rune: 0-9, then a-z, then '+'.
func digit(d int) rune {
	switch {
	case d < 10:
		return rune('0' + d)
	case d < 36:
		return rune('a' + d - 10)
	default:
		return '+'
	}
}

func sign(v float64) int {
	switch {
	case v > 1e-6:
		return 1
	case v < -1e-6:
		return -1
	default:
		return 0
	}
}

func distLabel(d int) string {
	if d == flowfield.Unreachable {
		return "∞"
	}
	return fmt.Sprintf("%d", d)
}

func main() {
	width := flag.Int("width", 24, "grid columns")
	height := flag.Int("height", 16, "grid rows")
	spawnCols := flag.Int("spawn", 1, "spawn zone width in columns")
	goalCols := flag.Int("goalcols", 3, "goal zone width in columns")
	goalRows := flag.Int("goalrows", 5, "goal zone height in rows")
	flag.Parse()

	cfg := core.ZoneConfig{
		Width:     *width,
		Height:    *height,
		SpawnCols: *spawnCols,
		GoalCols:  *goalCols,
		GoalRows:  *goalRows,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	v, err := newView(cfg)
	if err != nil {
		log.Fatalf("fieldview: %v", err)
	}
	v.run()
}
