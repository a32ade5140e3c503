package game

import (
	"context"
	"fmt"
	"time"
)

// Surface draws frames. Implementations keep no game state.
type Surface interface {
	Draw(f Frame) error
}

// Clock is a poll-style fixed timestep for frame-driven front ends: call
// Due once per frame and Tick when it returns true.
type Clock struct {
	game *Game
	last time.Time
}

func NewClock(g *Game, now time.Time) *Clock {
	return &Clock{game: g, last: now}
}

// Due reports whether the current interval has elapsed since the last
// step. The interval is read on every call.
func (c *Clock) Due(now time.Time) bool {
	if c.game.Stopped() {
		return false
	}
	if now.Sub(c.last) >= c.game.Interval() {
		c.last = now
		return true
	}
	return false
}

// Loop drives a Game from a single goroutine: it waits one interval, ticks,
// draws, and applies intents as they arrive. Rendering and simulation never
// overlap.
type Loop struct {
	Game    *Game
	Surface Surface
	Intents <-chan Intent

	// After returns a channel that fires once d has elapsed. Defaults to
	// time.After.
	After func(d time.Duration) <-chan time.Time
}

// Run blocks until ctx is done, a Quit intent arrives or the game is
// stopped. A surface error ends the loop.
func (l *Loop) Run(ctx context.Context) error {
	after := l.After
	if after == nil {
		after = time.After
	}
	intents := l.Intents

	if err := l.draw(); err != nil {
		return err
	}

	var wait <-chan time.Time
	for {
		if l.Game.Stopped() {
			return nil
		}
		if wait == nil {
			// Speed changes from the previous tick apply here.
			wait = after(l.Game.Interval())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-intents:
			if !ok {
				intents = nil
				continue
			}
			if l.Game.Apply(in) {
				return nil
			}
			if err := l.draw(); err != nil {
				return err
			}

		case <-wait:
			wait = nil
			l.Game.Tick()
			if err := l.draw(); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) draw() error {
	if l.Surface == nil {
		return nil
	}
	if err := l.Surface.Draw(l.Game.Render()); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}
