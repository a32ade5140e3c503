// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"neon-snake/game"
)

const sampleRate = beep.SampleRate(44100)

// Tone is one sine cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	EatTone  = Tone{Freq: 880, Duration: 50 * time.Millisecond}
	OverTone = Tone{Freq: 220, Duration: 300 * time.Millisecond}
)

// Cues turns engine events into sounds. A Cues that failed to open the
// speaker stays silent.
type Cues struct {
	enabled bool
	play    func(beep.Streamer)
	logger  *slog.Logger
}

// NewCues opens the speaker. Failure is logged and non-fatal.
func NewCues(logger *slog.Logger) *Cues {
	c := &Cues{logger: logger, play: func(s beep.Streamer) { speaker.Play(s) }}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio initialization failed", "err", err)
		return c
	}
	c.enabled = true
	return c
}

// Listener returns a game listener that plays the cue for each event.
func (c *Cues) Listener() game.Listener {
	return func(e game.Event) {
		switch e.Kind {
		case game.EventFood:
			c.Play(EatTone)
		case game.EventGameOver:
			c.Play(OverTone)
		}
	}
}

// Play queues t on the speaker. Errors are logged and dropped.
func (c *Cues) Play(t Tone) {
	if !c.enabled {
		return
	}
	s, err := toneStreamer(t)
	if err != nil {
		c.logger.Debug("tone skipped", "freq", t.Freq, "err", err)
		return
	}
	c.play(s)
}

func toneStreamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("sine %v Hz: %w", t.Freq, err)
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
