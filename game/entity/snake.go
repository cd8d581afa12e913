package entity

import (
	"gridsnake/game/types"
)

// Snake owns its body (head first), heading and the segments still owed to its tail.
type Snake struct {
	body          []types.Point
	direction     types.Direction
	growthPending int
}

// NewSnake creates a single-segment snake moving right
func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		body:      []types.Point{startPos},
		direction: types.Right,
	}
}

// SpawnPoint returns types.SnakeStart when it fits in grid, otherwise the grid centre
func SpawnPoint(grid types.Grid) types.Point {
	if grid.Contains(types.SnakeStart) {
		return types.SnakeStart
	}
	return types.Point{X: grid.Width / 2, Y: grid.Height / 2}
}

// Move prepends the next head and drops the tail unless growth is pending.
// Bounds and self collisions are checked by the caller afterwards.
func (s *Snake) Move() {
	newHead := s.Head().Add(s.direction.Delta())

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if s.growthPending > 0 {
		s.growthPending--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow owes n more segments to the tail, paid one per move
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	s.growthPending += n
}

// Collision classifies the current head against the grid and the rest of the body
func (s *Snake) Collision(width, height int) types.CollisionType {
	head := s.Head()
	if !(types.Grid{Width: width, Height: height}).Contains(head) {
		return types.WallCollision
	}
	for _, part := range s.body[1:] {
		if part == head {
			return types.SelfCollision
		}
	}
	return types.NoCollision
}

// CheckCollision reports whether the head left the grid or hit the body
func (s *Snake) CheckCollision(width, height int) bool {
	return s.Collision(width, height) != types.NoCollision
}

// ChangeDirection sets the heading used by the next move. Reversing onto
// the body is ignored.
func (s *Snake) ChangeDirection(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	if len(s.body) > 1 && dir == s.direction.Opposite() {
		return
	}
	s.direction = dir
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) GrowthPending() int {
	return s.growthPending
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}
