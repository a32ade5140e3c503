package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"neon-snake/game"
)

// Board layout on the terminal: row 0 is the HUD, row 1 and the row after
// the board are borders, each tile is two columns wide.
const (
	termHUDRow    = 0
	termBoardTop  = 2
	termBoardLeft = 1
	termTileCols  = 2
)

// TermSurface draws frames onto a tcell screen and turns key presses into
// intents.
type TermSurface struct {
	screen  tcell.Screen
	intents chan game.Intent
	once    sync.Once
	closing chan struct{}
}

// NewTermSurface takes over the terminal.
func NewTermSurface() (*TermSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newTermSurface(screen), nil
}

func newTermSurface(screen tcell.Screen) *TermSurface {
	screen.HideCursor()
	return &TermSurface{
		screen:  screen,
		intents: make(chan game.Intent, 16),
		closing: make(chan struct{}),
	}
}

// Intents starts the event reader on first use. The reader only forwards
// input; all game state stays on the loop goroutine.
func (t *TermSurface) Intents() <-chan game.Intent {
	t.once.Do(func() {
		go t.readEvents()
	})
	return t.intents
}

func (t *TermSurface) readEvents() {
	defer close(t.intents)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		var in game.Intent
		switch ev := ev.(type) {
		case *tcell.EventKey:
			in = termIntent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
			continue
		}
		if in == game.IntentNone {
			continue
		}
		select {
		case t.intents <- in:
		case <-t.closing:
			return
		}
	}
}

func termIntent(ev *tcell.EventKey) game.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.IntentUp
	case tcell.KeyDown:
		return game.IntentDown
	case tcell.KeyLeft:
		return game.IntentLeft
	case tcell.KeyRight:
		return game.IntentRight
	case tcell.KeyEnter:
		return game.IntentRestart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.IntentQuit
	case tcell.KeyRune:
		return runeIntent(ev.Rune())
	}
	return game.IntentNone
}

// runeIntent maps WASD, space and q. Both cases are accepted.
func runeIntent(r rune) game.Intent {
	switch r {
	case 'w', 'W':
		return game.IntentUp
	case 's', 'S':
		return game.IntentDown
	case 'a', 'A':
		return game.IntentLeft
	case 'd', 'D':
		return game.IntentRight
	case ' ', 'p', 'P':
		return game.IntentPause
	case 'q', 'Q':
		return game.IntentQuit
	}
	return game.IntentNone
}

// Draw paints one frame. Tiles are addressed by the centre of each rect,
// so pixel rects of any size land on the tile they cover.
func (t *TermSurface) Draw(f game.Frame) error {
	t.screen.Clear()
	ts := float32(f.TileSize)
	if ts <= 0 {
		return fmt.Errorf("frame has no tile size")
	}
	cols := f.Width / f.TileSize
	rows := f.Height / f.TileSize

	dim := 0.0
	for _, r := range f.Rects {
		if r.Layer == game.LayerShade {
			dim = float64(r.Color.A) / 255
		}
	}

	bg := tcell.StyleDefault.Background(toTcell(f.Background, 1))
	t.drawBorder(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cx, cy := termBoardLeft+x*termTileCols, termBoardTop+y
			first := ' '
			style := bg
			if len(f.Lines) > 0 {
				first = '·'
				style = bg.Foreground(toTcell(game.ColorGrid, 1))
			}
			t.screen.SetContent(cx, cy, first, nil, style)
			t.screen.SetContent(cx+1, cy, ' ', nil, bg)
		}
	}

	for _, r := range f.Rects {
		if r.Layer == game.LayerShade {
			continue
		}
		tx := int((r.X + r.W/2) / ts)
		ty := int((r.Y + r.H/2) / ts)
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			continue
		}
		alpha := float64(r.Color.A) / 255 * (1 - dim)
		fg := toTcell(r.Color, alpha)
		style := bg.Foreground(fg)
		left, right := glyphs(r.Layer)
		cx, cy := termBoardLeft+tx*termTileCols, termBoardTop+ty
		t.screen.SetContent(cx, cy, left, nil, style)
		t.screen.SetContent(cx+1, cy, right, nil, style)
	}

	for _, txt := range f.Texts {
		t.drawText(txt, ts)
	}

	hud := fmt.Sprintf(" SCORE %d   BEST %d   SPEED %.1f   %s", f.HUD.Score, f.HUD.Best, f.HUD.Speed, f.HUD.State)
	t.putString(0, termHUDRow, hud, tcell.StyleDefault.Foreground(toTcell(game.ColorHead, 1)).Bold(true))

	t.screen.Show()
	return nil
}

func glyphs(l game.Layer) (rune, rune) {
	switch l {
	case game.LayerParticle:
		return '·', ' '
	case game.LayerFood:
		return '◆', ' '
	default:
		return '█', '█'
	}
}

func (t *TermSurface) drawBorder(cols, rows int) {
	style := tcell.StyleDefault.Foreground(toTcell(game.ColorGrid, 1))
	right := termBoardLeft + cols*termTileCols
	top, bottom := termBoardTop-1, termBoardTop+rows
	for x := termBoardLeft; x < right; x++ {
		t.screen.SetContent(x, top, '─', nil, style)
		t.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := termBoardTop; y < bottom; y++ {
		t.screen.SetContent(termBoardLeft-1, y, '│', nil, style)
		t.screen.SetContent(right, y, '│', nil, style)
	}
	t.screen.SetContent(termBoardLeft-1, top, '┌', nil, style)
	t.screen.SetContent(right, top, '┐', nil, style)
	t.screen.SetContent(termBoardLeft-1, bottom, '└', nil, style)
	t.screen.SetContent(right, bottom, '┘', nil, style)
}

func (t *TermSurface) drawText(txt game.Text, ts float32) {
	row := termBoardTop + int(txt.Y/ts)
	col := termBoardLeft + int(txt.X/ts*termTileCols)
	if txt.Centered {
		col -= len([]rune(txt.Text)) / 2
	}
	style := tcell.StyleDefault.Foreground(toTcell(txt.Color, 1)).Bold(true)
	t.putString(col, row, txt.Text, style)
}

func (t *TermSurface) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Close restores the terminal.
func (t *TermSurface) Close() {
	select {
	case <-t.closing:
	default:
		close(t.closing)
	}
	t.screen.Fini()
}

// toTcell scales c towards black by alpha; terminals have no blending.
func toTcell(c game.Color, alpha float64) tcell.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return tcell.NewRGBColor(
		int32(float64(c.R)*alpha),
		int32(float64(c.G)*alpha),
		int32(float64(c.B)*alpha),
	)
}
