package manager

import (
	"testing"
	"time"

	"neon-snake/game/types"
)

func TestSessionStats(t *testing.T) {
	s := NewSessionStats()
	if s.GamesPlayed() != 0 || s.AverageScore() != 0 || s.AverageDuration() != 0 {
		t.Fatalf("empty stats should be zero")
	}

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.AddRun(RunRecord{ID: "a", StartTime: start, EndTime: start.Add(10 * time.Second), Score: 30, Reason: types.WallCollision})
	s.AddRun(RunRecord{ID: "b", StartTime: start, EndTime: start.Add(20 * time.Second), Score: 60, Reason: types.SelfCollision})

	if s.GamesPlayed() != 2 {
		t.Fatalf("expected 2 games, got %d", s.GamesPlayed())
	}
	if s.AverageScore() != 45 || s.MaxScore() != 60 {
		t.Fatalf("unexpected scores avg %v max %d", s.AverageScore(), s.MaxScore())
	}
	if s.AverageDuration() != 15 {
		t.Fatalf("expected 15s average, got %v", s.AverageDuration())
	}

	runs := s.Runs()
	runs[0].Score = 1000
	if s.MaxScore() != 60 {
		t.Fatalf("Runs leaked internal storage")
	}
}
