package game

import "neon-snake/game/types"

// Intent is a discrete player command coming from an input source.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentPause
	IntentRestart
	IntentQuit
)

func (i Intent) direction() types.Direction {
	switch i {
	case IntentUp:
		return types.Up
	case IntentDown:
		return types.Down
	case IntentLeft:
		return types.Left
	case IntentRight:
		return types.Right
	default:
		return types.None
	}
}

// Apply routes an intent to the engine. It returns true for Quit.
// Restart only acts before the first run or after game over.
func (g *Game) Apply(in Intent) (quit bool) {
	switch in {
	case IntentUp, IntentDown, IntentLeft, IntentRight:
		g.SetDirection(in.direction())
	case IntentPause:
		g.TogglePause()
	case IntentRestart:
		if g.state == types.Ready || g.state == types.Over {
			g.Reset()
		}
	case IntentQuit:
		return true
	}
	return false
}
