package game

import (
	"fmt"
	"time"

	"gridsnake/game/types"
)

// Snapshot is an immutable copy of the simulation handed to renderers.
// Each snapshot owns its SnakeBody slice.
type Snapshot struct {
	RoundID    string
	PlayerName string
	Grid       types.Grid

	SnakeBody []types.Point // head first
	Direction types.Direction
	Food      types.Point
	FoodKind  types.FoodKind

	Score   int
	Level   int
	Speed   time.Duration
	Elapsed time.Duration

	Paused    bool
	GameOver  bool
	Won       bool
	Collision types.CollisionType

	Stats StatsSummary
}

// SnapshotSink receives a fresh snapshot after every tick and every
// externally visible state change
type SnapshotSink interface {
	UpdateState(Snapshot)
}

// SinkFunc adapts a function to SnapshotSink
type SinkFunc func(Snapshot)

func (f SinkFunc) UpdateState(s Snapshot) { f(s) }

// Head returns the snake's head, or the zero cell for an empty snapshot
func (s Snapshot) Head() types.Point {
	if len(s.SnakeBody) == 0 {
		return types.Point{}
	}
	return s.SnakeBody[0]
}

// Clone returns a snapshot that shares no memory with s
func (s Snapshot) Clone() Snapshot {
	body := make([]types.Point, len(s.SnakeBody))
	copy(body, s.SnakeBody)
	s.SnakeBody = body
	return s
}

// Clock formats the elapsed play time as mm:ss
func (s Snapshot) Clock() string {
	total := int(s.Elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
