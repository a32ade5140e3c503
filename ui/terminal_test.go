package ui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"neon-snake/game"
	"neon-snake/game/types"
)

func newSimSurface(t *testing.T) (*TermSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 30)
	return newTermSurface(screen), screen
}

func TestRuneIntent(t *testing.T) {
	tests := map[rune]game.Intent{
		'w': game.IntentUp,
		'S': game.IntentDown,
		'a': game.IntentLeft,
		'D': game.IntentRight,
		' ': game.IntentPause,
		'p': game.IntentPause,
		'q': game.IntentQuit,
		'x': game.IntentNone,
	}
	for r, want := range tests {
		if got := runeIntent(r); got != want {
			t.Errorf("rune %q: expected %d, got %d", r, want, got)
		}
	}
}

func TestDrawRunningFrame(t *testing.T) {
	surface, screen := newSimSurface(t)
	defer surface.Close()

	g := game.NewGame(context.Background(), game.Options{Seed: 4, GridLines: true})
	g.Reset()
	if err := surface.Draw(g.Render()); err != nil {
		t.Fatalf("draw: %v", err)
	}

	// Head tile (10,10) sits at column 1+10*2, row 2+10.
	if r, _, _, _ := screen.GetContent(termBoardLeft+10*termTileCols, termBoardTop+10); r != '█' {
		t.Errorf("expected head block, got %q", r)
	}
	food := g.GetFood()
	if r, _, _, _ := screen.GetContent(termBoardLeft+food.X*termTileCols, termBoardTop+food.Y); r != '◆' {
		t.Errorf("expected food glyph at %+v, got %q", food, r)
	}
	if r, _, _, _ := screen.GetContent(termBoardLeft-1, termBoardTop-1); r != '┌' {
		t.Errorf("expected border corner, got %q", r)
	}

	var hud []rune
	for x := 0; x < 8; x++ {
		r, _, _, _ := screen.GetContent(x, termHUDRow)
		hud = append(hud, r)
	}
	if string(hud) != " SCORE 0" {
		t.Errorf("unexpected HUD %q", string(hud))
	}
}

func TestDrawOverlayText(t *testing.T) {
	surface, screen := newSimSurface(t)
	defer surface.Close()

	g := game.NewGame(context.Background(), game.Options{Seed: 4})
	g.Reset()
	g.Pause()
	if err := surface.Draw(g.Render()); err != nil {
		t.Fatalf("draw: %v", err)
	}

	// "PAUSED" is centred on the middle of the board.
	row := termBoardTop + types.TileCount/2
	col := termBoardLeft + types.TileCount - len("PAUSED")/2
	var got []rune
	for i := 0; i < len("PAUSED"); i++ {
		r, _, _, _ := screen.GetContent(col+i, row)
		got = append(got, r)
	}
	if string(got) != "PAUSED" {
		t.Errorf("expected PAUSED overlay, got %q", string(got))
	}
}

func TestDrawRejectsEmptyFrame(t *testing.T) {
	surface, _ := newSimSurface(t)
	defer surface.Close()
	if err := surface.Draw(game.Frame{}); err == nil {
		t.Fatalf("expected an error for a frame without tiles")
	}
}

func TestToTcellScalesTowardsBlack(t *testing.T) {
	got := toTcell(game.Color{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if got != tcell.NewRGBColor(100, 50, 25) {
		t.Errorf("unexpected color %v", got)
	}
	if toTcell(game.ColorHead, 2) != tcell.NewRGBColor(0, 255, 204) {
		t.Errorf("alpha above 1 should clamp")
	}
}
