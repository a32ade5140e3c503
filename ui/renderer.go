package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"neon-snake/game"
	"neon-snake/game/manager"
)

const (
	hudHeight     = 36 // Band above the board for score and best
	borderPadding = 10
	statsWidth    = 170 // Session stats panel right of the board
	targetFPS     = 60
)

// Renderer is the raylib display surface. It must be used from the
// goroutine that opened the window.
type Renderer struct {
	offsetX int32
	offsetY int32
	stats   *manager.SessionStats
}

// OpenWindow creates a window sized for a boardW x boardH pixel board.
func OpenWindow(boardW, boardH int, title string, stats *manager.SessionStats) *Renderer {
	w := int32(boardW) + borderPadding*3 + statsWidth
	h := int32(boardH) + hudHeight + borderPadding*2
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(targetFPS)
	return &Renderer{
		offsetX: borderPadding,
		offsetY: borderPadding + hudHeight,
		stats:   stats,
	}
}

// ShouldClose reports the window close button or Esc.
func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

var raylibKeys = []struct {
	key    int32
	intent game.Intent
}{
	{rl.KeyUp, game.IntentUp},
	{rl.KeyW, game.IntentUp},
	{rl.KeyDown, game.IntentDown},
	{rl.KeyS, game.IntentDown},
	{rl.KeyLeft, game.IntentLeft},
	{rl.KeyA, game.IntentLeft},
	{rl.KeyRight, game.IntentRight},
	{rl.KeyD, game.IntentRight},
	{rl.KeySpace, game.IntentPause},
	{rl.KeyP, game.IntentPause},
	{rl.KeyEnter, game.IntentRestart},
	{rl.KeyQ, game.IntentQuit},
}

// PollIntents returns the intents pressed since the previous frame, in
// key table order.
func (r *Renderer) PollIntents() []game.Intent {
	var out []game.Intent
	for _, k := range raylibKeys {
		if rl.IsKeyPressed(k.key) {
			out = append(out, k.intent)
		}
	}
	return out
}

// Draw renders one frame and the HUD.
func (r *Renderer) Draw(f game.Frame) error {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, int32(f.Width)+2, int32(f.Height)+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, int32(f.Width), int32(f.Height), toRaylib(f.Background))

	for _, l := range f.Lines {
		rl.DrawLine(
			r.offsetX+int32(l.X1), r.offsetY+int32(l.Y1),
			r.offsetX+int32(l.X2), r.offsetY+int32(l.Y2),
			toRaylib(l.Color))
	}

	// Breathing glow for lit cells.
	pulse := float32(math.Abs(math.Sin(rl.GetTime() * 5)))
	for _, rect := range f.Rects {
		rec := rl.Rectangle{
			X:      float32(r.offsetX) + rect.X,
			Y:      float32(r.offsetY) + rect.Y,
			Width:  rect.W,
			Height: rect.H,
		}
		if rect.Glow {
			spread := 3 + pulse*3
			halo := rl.Rectangle{X: rec.X - spread, Y: rec.Y - spread, Width: rec.Width + spread*2, Height: rec.Height + spread*2}
			rl.DrawRectangleRec(halo, rl.Fade(toRaylib(rect.Color), 0.25))
		}
		rl.DrawRectangleRec(rec, toRaylib(rect.Color))
	}

	for _, t := range f.Texts {
		x := r.offsetX + int32(t.X)
		y := r.offsetY + int32(t.Y)
		if t.Centered {
			x -= rl.MeasureText(t.Text, t.Size) / 2
			y -= t.Size / 2
		}
		rl.DrawText(t.Text, x, y, t.Size, toRaylib(t.Color))
	}

	r.drawHUD(f)
	r.drawStatsPanel(f)
	return nil
}

func (r *Renderer) drawHUD(f game.Frame) {
	fontSize := int32(20)
	y := int32(borderPadding)
	rl.DrawText(fmt.Sprintf("SCORE %d", f.HUD.Score), r.offsetX, y, fontSize, toRaylib(game.ColorHead))

	best := fmt.Sprintf("BEST %d", f.HUD.Best)
	bestX := r.offsetX + int32(f.Width) - rl.MeasureText(best, fontSize)
	rl.DrawText(best, bestX, y, fontSize, toRaylib(game.ColorFood))
}

func (r *Renderer) drawStatsPanel(f game.Frame) {
	x := r.offsetX + int32(f.Width) + borderPadding
	y := r.offsetY
	fontSize := int32(16)
	lineHeight := int32(22)

	lines := []string{
		fmt.Sprintf("Speed: %.1f/s", f.HUD.Speed),
		fmt.Sprintf("State: %s", f.HUD.State),
	}
	if r.stats != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Games: %d", r.stats.GamesPlayed()),
			fmt.Sprintf("Avg Score: %.1f", r.stats.AverageScore()),
			fmt.Sprintf("Max Score: %d", r.stats.MaxScore()),
			fmt.Sprintf("Avg Duration: %.1fs", r.stats.AverageDuration()),
		)
	}
	for _, l := range lines {
		rl.DrawText(l, x, y, fontSize, rl.LightGray)
		y += lineHeight
	}

	help := []string{"Arrows/WASD move", "Space pause", "Enter start", "Esc/Q quit"}
	y = r.offsetY + int32(f.Height) - int32(len(help))*lineHeight
	for _, l := range help {
		rl.DrawText(l, x, y, fontSize, rl.Gray)
		y += lineHeight
	}
}

func toRaylib(c game.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
