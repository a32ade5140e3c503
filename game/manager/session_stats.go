package manager

import (
	"sync"
	"time"

	"neon-snake/game/types"
)

// RunRecord describes one finished run.
type RunRecord struct {
	ID        string              `json:"id"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Score     int                 `json:"score"`
	Length    int                 `json:"length"`
	Reason    types.CollisionType `json:"reason"`
}

// Duration is the wall time of the run.
func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats keeps the runs of this process in memory. Nothing here is
// written to disk; only the best score is persisted.
type SessionStats struct {
	runs  []RunRecord
	mutex sync.RWMutex
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		runs: make([]RunRecord, 0),
	}
}

// AddRun records a finished run.
func (s *SessionStats) AddRun(r RunRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.runs = append(s.runs, r)
}

// Runs returns a copy of the recorded runs, oldest first.
func (s *SessionStats) Runs() []RunRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]RunRecord, len(s.runs))
	copy(out, s.runs)
	return out
}

func (s *SessionStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.runs)
}

func (s *SessionStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.runs) == 0 {
		return 0
	}

	total := 0
	for _, r := range s.runs {
		total += r.Score
	}
	return float64(total) / float64(len(s.runs))
}

func (s *SessionStats) MaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, r := range s.runs {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

// AverageDuration is the mean run length in seconds.
func (s *SessionStats) AverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.runs) == 0 {
		return 0
	}

	var total time.Duration
	for _, r := range s.runs {
		total += r.Duration()
	}
	return total.Seconds() / float64(len(s.runs))
}
