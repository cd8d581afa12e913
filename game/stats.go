package game

import (
	"sort"
	"time"
)

// RoundRecord is one finished round
type RoundRecord struct {
	Score    int
	Duration time.Duration
}

// StatsSummary aggregates the rounds played since the program started
type StatsSummary struct {
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	AverageDuration time.Duration
}

// SessionStats keeps every finished round of this process in memory.
// Only the leaderboard outlives the process.
type SessionStats struct {
	rounds []RoundRecord
}

func (s *SessionStats) Add(score int, duration time.Duration) {
	s.rounds = append(s.rounds, RoundRecord{Score: score, Duration: duration})
}

// Rounds returns a copy of the recorded rounds, oldest first
func (s *SessionStats) Rounds() []RoundRecord {
	out := make([]RoundRecord, len(s.rounds))
	copy(out, s.rounds)
	return out
}

func (s *SessionStats) Summary() StatsSummary {
	n := len(s.rounds)
	if n == 0 {
		return StatsSummary{}
	}

	sum := StatsSummary{GamesPlayed: n, MaxScore: s.rounds[0].Score}
	scores := make([]int, 0, n)
	var totalScore int
	var totalDuration time.Duration
	for _, r := range s.rounds {
		totalScore += r.Score
		totalDuration += r.Duration
		if r.Score > sum.MaxScore {
			sum.MaxScore = r.Score
		}
		scores = append(scores, r.Score)
	}
	sum.AverageScore = float64(totalScore) / float64(n)
	sum.AverageDuration = totalDuration / time.Duration(n)

	sort.Ints(scores)
	if n%2 == 0 {
		sum.MedianScore = float64(scores[n/2-1]+scores[n/2]) / 2
	} else {
		sum.MedianScore = float64(scores[n/2])
	}
	return sum
}
