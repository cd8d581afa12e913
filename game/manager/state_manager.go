package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const (
	MaxHighScores     = 5
	DefaultScoresFile = "data/highscores.json"
	defaultPlayerName = "Player"
)

// ScoreEntry is one leaderboard line
type ScoreEntry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

// ScoreBoard keeps the top scores in a JSON file, one entry per distinct score
type ScoreBoard struct {
	filename string
	mutex    sync.RWMutex
}

func NewScoreBoard(filename string) *ScoreBoard {
	if filename == "" {
		filename = DefaultScoresFile
	}
	return &ScoreBoard{filename: filename}
}

func (sb *ScoreBoard) Filename() string {
	return sb.filename
}

// Save records a finished game and rewrites the capped, sorted list
func (sb *ScoreBoard) Save(playerName string, score int) error {
	sb.mutex.Lock()
	defer sb.mutex.Unlock()

	scores, err := sb.read()
	if err != nil {
		return err
	}

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		playerName = defaultPlayerName
	}
	scores = RankScores(append(scores, ScoreEntry{PlayerName: playerName, Score: score}))

	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	if dir := filepath.Dir(sb.filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create scores directory: %w", err)
		}
	}
	if err := os.WriteFile(sb.filename, data, 0644); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	return nil
}

// Load returns the stored entries, best first. A missing file is an empty board.
func (sb *ScoreBoard) Load() ([]ScoreEntry, error) {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()

	return sb.read()
}

func (sb *ScoreBoard) read() ([]ScoreEntry, error) {
	data, err := os.ReadFile(sb.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []ScoreEntry{}, nil
		}
		return nil, fmt.Errorf("read high scores: %w", err)
	}

	var scores []ScoreEntry
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("decode high scores %s: %w", sb.filename, err)
	}
	return RankScores(scores), nil
}

// RankScores drops repeated score values (the earliest entry wins), sorts
// descending and truncates to MaxHighScores
func RankScores(scores []ScoreEntry) []ScoreEntry {
	seen := make(map[int]bool, len(scores))
	unique := make([]ScoreEntry, 0, len(scores))
	for _, s := range scores {
		if seen[s.Score] {
			continue
		}
		seen[s.Score] = true
		unique = append(unique, s)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})
	if len(unique) > MaxHighScores {
		unique = unique[:MaxHighScores]
	}
	return unique
}
