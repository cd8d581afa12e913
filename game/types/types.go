package types

import "time"

// Point is a grid cell
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Clamp raises both dimensions to MinGridSize
func (g Grid) Clamp() Grid {
	if g.Width < MinGridSize {
		g.Width = MinGridSize
	}
	if g.Height < MinGridSize {
		g.Height = MinGridSize
	}
	return g
}

// GridFromPixels derives grid dimensions from a display surface size.
// A non-positive cell size falls back to DefaultCellSize.
func GridFromPixels(pixelWidth, pixelHeight, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Grid{Width: pixelWidth / cellSize, Height: pixelHeight / cellSize}.Clamp()
}

// Direction is one of the four cardinal headings
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

// Delta returns the one-cell offset for d. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

// FoodKind selects a display variant. It has no gameplay effect.
type FoodKind int

const (
	Apple FoodKind = iota
	Mango
	Strawberry
	Pineapple
	Grape

	FoodKinds = 5
)

var foodNames = [FoodKinds]string{"apple", "mango", "strawberry", "pineapple", "grape"}

func (k FoodKind) String() string {
	if k < 0 || int(k) >= FoodKinds {
		return "unknown"
	}
	return foodNames[k]
}

// Game constants
const (
	MinGridSize     = 4  // Smallest playable width or height
	DefaultCellSize = 20 // Pixels per cell on the display surface

	ScorePerFood = 10
	LevelStep    = 10 * time.Millisecond // Level rises when speed lands on a multiple of this
	SpeedStep    = 2 * time.Millisecond
	MinSpeed     = 50 * time.Millisecond

	// Used when the session supplies no difficulty
	EngineSpeed  = 300 * time.Millisecond
	EngineGrowth = 1
)

// SnakeStart is where a fresh snake spawns on a large enough grid
var SnakeStart = Point{X: 10, Y: 10}
