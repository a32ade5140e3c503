package game

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"neon-snake/game/types"
	"neon-snake/store"
)

// newTestGame returns a running game with a fixed seed and an in-memory
// store.
func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore(0)
	}
	if opts.Now == nil {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		step := 0
		opts.Now = func() time.Time {
			step++
			return base.Add(time.Duration(step) * time.Second)
		}
	}
	g := NewGame(context.Background(), opts)
	g.Reset()
	return g
}

// placeFood pins the food tile.
func (g *Game) placeFood(p types.Point) {
	g.foodMgr.SetFood(p)
}

// placeSnake replaces the body and heading and clears the turn lock.
func (g *Game) placeSnake(body []types.Point, dir types.Direction) {
	g.snake.Body = append([]types.Point(nil), body...)
	g.snake.Direction = dir
	g.snake.UnlockTurn()
}

func pts(xy ...int) []types.Point {
	out := make([]types.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func dumpState(g *Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "State=%s Score=%d Best=%d Speed=%.1f Dir=%s\n",
		g.State(), g.Score(), g.BestScore(), g.Speed(), g.GetSnake().Direction)
	fmt.Fprintf(&b, "Food: (%d,%d)\nBody:", g.GetFood().X, g.GetFood().Y)
	for _, p := range g.GetSnake().Body {
		fmt.Fprintf(&b, " (%d,%d)", p.X, p.Y)
	}
	b.WriteString("\n")

	if g.Grid().Width > 40 || g.Grid().Height > 40 {
		return b.String()
	}
	occ := make(map[types.Point]int)
	for i, p := range g.GetSnake().Body {
		occ[p] = i + 1
	}
	for y := 0; y < g.Grid().Height; y++ {
		for x := 0; x < g.Grid().Width; x++ {
			p := types.Point{X: x, Y: y}
			switch {
			case occ[p] == 1:
				b.WriteByte('H')
			case occ[p] > 1:
				b.WriteByte('o')
			case p == g.GetFood():
				b.WriteByte('F')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func equalBody(a, b []types.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
