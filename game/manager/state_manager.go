package manager

import (
	"context"
	"log/slog"
	"time"

	"neon-snake/game/types"
)

// ScoreStore persists the best score across runs.
type ScoreStore interface {
	Get(ctx context.Context) (int, error)
	Set(ctx context.Context, score int) error
}

// StateManager tracks score, best score and speed for the current run.
type StateManager struct {
	store     ScoreStore
	logger    *slog.Logger
	score     int
	highScore int
	speed     float64
	baseSpeed float64
}

// NewStateManager reads the best score once. A failed read starts from 0.
func NewStateManager(ctx context.Context, store ScoreStore, baseSpeed float64, logger *slog.Logger) *StateManager {
	if baseSpeed <= 0 {
		baseSpeed = types.InitialSpeed
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sm := &StateManager{
		store:     store,
		logger:    logger,
		speed:     baseSpeed,
		baseSpeed: baseSpeed,
	}

	if store != nil {
		best, err := store.Get(ctx)
		if err != nil {
			logger.Debug("best score unavailable", "err", err)
		} else if best > 0 {
			sm.highScore = best
		}
	}

	return sm
}

// Reset starts a new run. The best score is kept.
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.speed = sm.baseSpeed
}

// AddPoints awards points and applies the speed schedule. It reports
// whether the best score moved and how many speed steps were crossed.
func (sm *StateManager) AddPoints(points int) (newBest bool, steps int) {
	if points <= 0 {
		return false, 0
	}
	prev := sm.score
	sm.score += points

	steps = sm.score/types.SpeedStepScore - prev/types.SpeedStepScore
	sm.speed += float64(steps) * types.SpeedIncrement

	if sm.score > sm.highScore {
		sm.highScore = sm.score
		sm.persist()
		newBest = true
	}
	return newBest, steps
}

// persist writes the best score. Failure does not affect play.
func (sm *StateManager) persist() {
	if sm.store == nil {
		return
	}
	if err := sm.store.Set(context.Background(), sm.highScore); err != nil {
		sm.logger.Debug("best score not saved", "score", sm.highScore, "err", err)
	}
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// Speed is the current tick rate in ticks per second.
func (sm *StateManager) Speed() float64 {
	return sm.speed
}

// Interval is the wait before the next tick at the current speed.
func (sm *StateManager) Interval() time.Duration {
	return time.Duration(float64(time.Second) / sm.speed)
}
