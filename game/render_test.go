package game

import (
	"context"
	"reflect"
	"testing"

	"neon-snake/game/types"
)

func TestRenderReady(t *testing.T) {
	g := NewGame(context.Background(), Options{Seed: 3, GridLines: true})
	f := g.Render()

	if f.Width != 400 || f.Height != 400 || f.TileSize != types.TileSize {
		t.Fatalf("unexpected frame size %dx%d", f.Width, f.Height)
	}
	// The start strip and first food sit under the prompt.
	if len(f.Rects) != 4 {
		t.Fatalf("expected 3 body rects and food, got %d", len(f.Rects))
	}
	if f.Rects[0].Layer != LayerHead || f.Rects[0].X != 201 || f.Rects[0].Y != 201 {
		t.Fatalf("unexpected head rect %+v", f.Rects[0])
	}
	if food := f.Rects[3]; food.Layer != LayerFood {
		t.Fatalf("expected food last, got %+v", food)
	}
	if g.GetSnake().Occupies(g.GetFood()) {
		t.Fatalf("start food inside the snake")
	}
	if len(f.Texts) != 1 || f.Texts[0].Text != "PRESS ENTER TO START" {
		t.Fatalf("unexpected texts %+v", f.Texts)
	}
	if len(f.Lines) != 42 {
		t.Fatalf("expected 42 grid lines, got %d", len(f.Lines))
	}
}

func TestRenderRunning(t *testing.T) {
	g := newTestGame(t, Options{})
	g.placeFood(types.Point{X: 3, Y: 4})
	f := g.Render()

	if len(f.Lines) != 0 {
		t.Fatalf("grid lines drawn while disabled")
	}
	if len(f.Rects) != 4 {
		t.Fatalf("expected 3 body rects and food, got %d", len(f.Rects))
	}

	head := f.Rects[0]
	if head.Layer != LayerHead || !head.Glow || head.Color != ColorHead {
		t.Fatalf("unexpected head rect %+v", head)
	}
	if head.X != 201 || head.Y != 201 || head.W != 18 || head.H != 18 {
		t.Fatalf("head rect not on tile (10,10): %+v", head)
	}
	for i, r := range f.Rects[1:3] {
		if r.Layer != LayerBody || r.Color != BodyColor(i+1) {
			t.Fatalf("segment %d: unexpected rect %+v", i+1, r)
		}
	}
	food := f.Rects[3]
	if food.Layer != LayerFood || food.X != 61 || food.Y != 81 {
		t.Fatalf("unexpected food rect %+v", food)
	}
	if f.HUD.Score != 0 || f.HUD.State != "running" {
		t.Fatalf("unexpected hud %+v", f.HUD)
	}
	if len(f.Texts) != 0 {
		t.Fatalf("running frame has overlay text")
	}
}

func TestRenderParticlesFirst(t *testing.T) {
	g := newTestGame(t, Options{})
	g.placeFood(types.Point{X: 10, Y: 9})
	g.Tick()
	f := g.Render()

	for i := 0; i < 15; i++ {
		if f.Rects[i].Layer != LayerParticle {
			t.Fatalf("rect %d: expected particle, got layer %d", i, f.Rects[i].Layer)
		}
		if f.Rects[i].W != 6 {
			t.Fatalf("unexpected particle size %v", f.Rects[i].W)
		}
	}
	if f.Rects[15].Layer != LayerHead {
		t.Fatalf("head should follow the particles")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Pause()
	f := g.Render()
	last := f.Rects[len(f.Rects)-1]
	if last.Layer != LayerShade || last.Color.A != 127 {
		t.Fatalf("expected half shade, got %+v", last)
	}
	if len(f.Texts) != 1 || f.Texts[0].Text != "PAUSED" {
		t.Fatalf("unexpected paused texts %+v", f.Texts)
	}

	g.Resume()
	g.placeSnake(pts(0, 0, 0, 1, 0, 2), types.Up)
	g.Tick()
	f = g.Render()
	if len(f.Texts) != 3 || f.Texts[0].Text != "GAME OVER" || f.Texts[1].Text != "SCORE 0" {
		t.Fatalf("unexpected game over texts %+v", f.Texts)
	}
	if f.Rects[len(f.Rects)-1].Color.A != 178 {
		t.Fatalf("expected 0.7 shade")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(t, Options{GridLines: true})
	g.placeFood(types.Point{X: 10, Y: 9})
	g.Tick()

	body := g.GetSnake().Segments()
	a := g.Render()
	b := g.Render()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("consecutive renders differ")
	}
	if !equalBody(body, g.GetSnake().Body) || g.Steps() != 1 {
		t.Fatalf("render changed state\n%s", dumpState(g))
	}
}

func TestBodyColorHue(t *testing.T) {
	// hsl(160, 100%, 50%) is a pure green-cyan.
	c := BodyColor(0)
	if c.R != 0 || c.G != 255 || c.B != 170 {
		t.Fatalf("unexpected hue 160 color %+v", c)
	}
	// Hue wraps past 360: segment 100 is back at red.
	if c := BodyColor(100); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("unexpected wrapped hue color %+v", c)
	}
	if BodyColor(1) == BodyColor(2) {
		t.Fatalf("segments should shift hue")
	}
}
