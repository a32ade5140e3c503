package game

import (
	"fmt"
	"math"

	"neon-snake/game/effects"
	"neon-snake/game/types"
)

// Render describes the current state as draw primitives. It reads state
// only.
func (g *Game) Render() Frame {
	ts := types.TileSize
	f := Frame{
		Width:      g.grid.Width * ts,
		Height:     g.grid.Height * ts,
		TileSize:   ts,
		Background: ColorBackground,
		HUD: HUD{
			Score: g.stateMgr.GetScore(),
			Best:  g.stateMgr.GetHighScore(),
			Speed: g.stateMgr.Speed(),
			State: g.state.String(),
		},
	}

	if g.gridLines {
		f.Lines = g.gridLineSet(f.Width, f.Height)
	}

	parts := g.particles.Particles()
	body := g.snake.Body
	f.Rects = make([]Rect, 0, len(parts)+len(body)+2)

	for _, p := range parts {
		f.Rects = append(f.Rects, particleRect(p))
	}

	for i, part := range body {
		r := tileRect(part, ts)
		if i == 0 {
			r.Color = ColorHead
			r.Layer = LayerHead
			r.Glow = true
		} else {
			r.Color = BodyColor(i)
			r.Layer = LayerBody
		}
		f.Rects = append(f.Rects, r)
	}

	food := tileRect(g.foodMgr.GetFood(), ts)
	food.Color = ColorFood
	food.Layer = LayerFood
	food.Glow = true
	f.Rects = append(f.Rects, food)

	switch g.state {
	case types.Ready:
		f.Texts = append(f.Texts, centerText(&f, "PRESS ENTER TO START", 24, 0))
	case types.Paused:
		f.Rects = append(f.Rects, shade(&f, 0.5))
		f.Texts = append(f.Texts, centerText(&f, "PAUSED", 30, 0))
	case types.Over:
		f.Rects = append(f.Rects, shade(&f, 0.7))
		f.Texts = append(f.Texts,
			centerText(&f, "GAME OVER", 40, -30),
			centerText(&f, fmt.Sprintf("SCORE %d", g.stateMgr.GetScore()), 20, 15),
			centerText(&f, "PRESS ENTER", 16, 45),
		)
	}

	return f
}

// tileRect leaves a one pixel gap around each tile.
func tileRect(p types.Point, ts int) Rect {
	return Rect{
		X: float32(p.X*ts + 1),
		Y: float32(p.Y*ts + 1),
		W: float32(ts - 2),
		H: float32(ts - 2),
	}
}

func particleRect(p effects.Particle) Rect {
	alpha := math.Max(0, math.Min(1, p.Life))
	return Rect{
		X:     float32(p.X),
		Y:     float32(p.Y),
		W:     effects.ParticleSize,
		H:     effects.ParticleSize,
		Color: Color{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(alpha * 255)},
		Layer: LayerParticle,
	}
}

func shade(f *Frame, alpha float64) Rect {
	return Rect{
		W:     float32(f.Width),
		H:     float32(f.Height),
		Color: Color{A: uint8(alpha * 255)},
		Layer: LayerShade,
	}
}

func centerText(f *Frame, s string, size int32, dy float32) Text {
	return Text{
		Text:     s,
		X:        float32(f.Width) / 2,
		Y:        float32(f.Height)/2 + dy,
		Size:     size,
		Color:    ColorText,
		Centered: true,
	}
}

func (g *Game) gridLineSet(w, h int) []Line {
	ts := types.TileSize
	lines := make([]Line, 0, g.grid.Width+g.grid.Height+2)
	for x := 0; x <= w; x += ts {
		lines = append(lines, Line{X1: float32(x), Y1: 0, X2: float32(x), Y2: float32(h), Color: ColorGrid})
	}
	for y := 0; y <= h; y += ts {
		lines = append(lines, Line{X1: 0, Y1: float32(y), X2: float32(w), Y2: float32(y), Color: ColorGrid})
	}
	return lines
}
