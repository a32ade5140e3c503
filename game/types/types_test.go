package types

import "testing"

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		dir      Direction
		want     Point
		opposite Direction
	}{
		{Up, Point{0, -1}, Down},
		{Down, Point{0, 1}, Up},
		{Left, Point{-1, 0}, Right},
		{Right, Point{1, 0}, Left},
		{None, Point{0, 0}, None},
	}
	for _, tt := range tests {
		if got := tt.dir.ToPoint(); got != tt.want {
			t.Fatalf("%s: expected %+v, got %+v", tt.dir, tt.want, got)
		}
		if got := tt.dir.Opposite(); got != tt.opposite {
			t.Fatalf("%s: expected opposite %s, got %s", tt.dir, tt.opposite, got)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: TileCount, Height: TileCount}
	if g.Cells() != 400 {
		t.Fatalf("expected 400 cells, got %d", g.Cells())
	}
	for _, p := range []Point{{0, 0}, {19, 19}, {10, 0}} {
		if !g.Contains(p) {
			t.Fatalf("%+v should be inside", p)
		}
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {20, 5}, {5, 20}} {
		if g.Contains(p) {
			t.Fatalf("%+v should be outside", p)
		}
	}
	if got := StartPosition.Add(Up); got != (Point{10, 9}) {
		t.Fatalf("unexpected step from start: %+v", got)
	}
}
