package game

import (
	"log"
	"time"

	"github.com/google/uuid"

	"gridsnake/config"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// MaxTicksPerUpdate bounds the catch-up work done by a single Update call.
// Time beyond it stays in the accumulator for the following calls.
const MaxTicksPerUpdate = 5

// State is the simulation's top-level mode
type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "running"
}

// Leaderboard stores final scores. Failures are logged, never fatal.
type Leaderboard interface {
	Save(playerName string, score int) error
}

// Game is the fixed-step simulation core. It is owned by a single driving
// loop and is not safe for concurrent use.
type Game struct {
	roundID    string
	playerName string
	grid       types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager

	// captured at construction and restored by Reset
	initialSpeed  time.Duration
	initialGrowth int

	speed         time.Duration
	growthPerFood int
	score         int
	level         int
	elapsed       time.Duration
	accumulator   time.Duration
	state         State
	won           bool
	collision     types.CollisionType

	stats       SessionStats
	leaderboard Leaderboard
	sinks       []SnapshotSink
	snapshot    Snapshot
}

// NewGame builds a running game on grid. Session speed or growth left at zero
// fall back to the engine defaults; seed drives food placement.
func NewGame(grid types.Grid, session config.Session, seed uint64) *Game {
	grid = grid.Clamp()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		playerName:    config.CleanName(session.PlayerName),
		grid:          grid,
		collisionMgr:  collisionMgr,
		foodMgr:       manager.NewFoodManager(collisionMgr, seed),
		initialSpeed:  types.EngineSpeed,
		initialGrowth: types.EngineGrowth,
	}
	if session.InitialSpeed > 0 {
		g.initialSpeed = session.InitialSpeed
	}
	if session.GrowthPerFood > 0 {
		g.initialGrowth = session.GrowthPerFood
	}

	g.Reset()
	return g
}

// SetLeaderboard sets where final scores go; nil disables saving
func (g *Game) SetLeaderboard(lb Leaderboard) {
	g.leaderboard = lb
}

// AddSink registers a renderer and hands it the current snapshot
func (g *Game) AddSink(sink SnapshotSink) {
	g.sinks = append(g.sinks, sink)
	sink.UpdateState(g.snapshot.Clone())
}

// Reset starts a new round with the captured difficulty
func (g *Game) Reset() {
	g.roundID = uuid.New().String()
	g.snake = entity.NewSnake(entity.SpawnPoint(g.grid))
	g.speed = g.initialSpeed
	g.growthPerFood = g.initialGrowth
	g.score = 0
	g.level = 0
	g.elapsed = 0
	g.accumulator = 0
	g.state = Running
	g.won = false
	g.collision = types.NoCollision

	log.Printf("round %s: start player=%q speed=%v growth=%d grid=%dx%d",
		g.roundID, g.playerName, g.speed, g.growthPerFood, g.grid.Width, g.grid.Height)

	// A clamped grid always has room next to a one-cell snake.
	if err := g.foodMgr.Spawn(g.snake); err != nil {
		log.Printf("round %s: cannot place food: %v", g.roundID, err)
	}
	g.publish()
}

// Update advances the simulation by dt of wall time. Paused and finished
// games ignore it. Every full speed interval in the accumulator becomes a
// tick, up to MaxTicksPerUpdate per call.
func (g *Game) Update(dt time.Duration) {
	if g.state != Running {
		return
	}
	if dt < 0 {
		dt = 0
	}
	g.elapsed += dt
	g.accumulator += dt

	for ticks := 0; ticks < MaxTicksPerUpdate && g.state == Running && g.accumulator >= g.speed; ticks++ {
		interval := g.speed
		g.tick()
		g.accumulator -= interval
	}
	if g.state == GameOver {
		g.accumulator = 0
	}
}

func (g *Game) tick() {
	g.snake.Move()

	if g.foodMgr.Eaten(g.snake) {
		g.snake.Grow(g.growthPerFood)
		g.score += types.ScorePerFood
		g.speed -= types.SpeedStep
		if g.speed < types.MinSpeed {
			g.speed = types.MinSpeed
		}
		if g.speed%types.LevelStep == 0 {
			g.level++
		}
		if err := g.foodMgr.Spawn(g.snake); err != nil {
			g.won = true
			g.finish()
			g.publish()
			return
		}
	}

	if c := g.collisionMgr.CheckCollision(g.snake); c != types.NoCollision {
		g.collision = c
		g.finish()
	}
	g.publish()
}

// finish enters GameOver and records the score
func (g *Game) finish() {
	g.state = GameOver
	g.accumulator = 0
	g.stats.Add(g.score, g.elapsed)
	log.Printf("round %s: game over player=%q score=%d level=%d cause=%v won=%v",
		g.roundID, g.playerName, g.score, g.level, g.collision, g.won)

	if g.leaderboard == nil {
		return
	}
	if err := g.leaderboard.Save(g.playerName, g.score); err != nil {
		log.Printf("round %s: could not save score: %v", g.roundID, err)
	}
}

// ChangeDirection queues a heading for the next move. Ignored after game over.
func (g *Game) ChangeDirection(dir types.Direction) {
	if g.state == GameOver {
		return
	}
	g.snake.ChangeDirection(dir)
}

// Pause freezes ticks and elapsed time. Idempotent.
func (g *Game) Pause() {
	if g.state != Running {
		return
	}
	g.state = Paused
	g.publish()
}

// Resume continues a paused game from an empty accumulator. Idempotent.
func (g *Game) Resume() {
	if g.state != Paused {
		return
	}
	g.state = Running
	g.accumulator = 0
	g.publish()
}

func (g *Game) TogglePause() {
	if g.state == Paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Toggle handles the single toggle input: reset a finished game, otherwise pause or resume
func (g *Game) Toggle() {
	if g.state == GameOver {
		g.Reset()
		return
	}
	g.TogglePause()
}

// OnResize adopts new grid bounds (clamped to types.MinGridSize). The snake
// and score are kept; food outside the new bounds is re-placed.
func (g *Game) OnResize(width, height int) {
	grid := types.Grid{Width: width, Height: height}.Clamp()
	if grid == g.grid {
		return
	}
	g.grid = grid
	g.collisionMgr.SetGrid(grid)
	if err := g.foodMgr.Resize(grid, g.snake); err != nil && g.state != GameOver {
		g.won = true
		g.finish()
	}
	g.publish()
}

func (g *Game) publish() {
	food := g.foodMgr.Food()
	g.snapshot = Snapshot{
		RoundID:    g.roundID,
		PlayerName: g.playerName,
		Grid:       g.grid,
		SnakeBody:  g.snake.Body(),
		Direction:  g.snake.Direction(),
		Food:       food.Position(),
		FoodKind:   food.Kind(),
		Score:      g.score,
		Level:      g.level,
		Speed:      g.speed,
		Elapsed:    g.elapsed,
		Paused:     g.state == Paused,
		GameOver:   g.state == GameOver,
		Won:        g.won,
		Collision:  g.collision,
		Stats:      g.stats.Summary(),
	}
	for _, sink := range g.sinks {
		sink.UpdateState(g.snapshot.Clone())
	}
}

// Snapshot returns a copy of the most recently published state
func (g *Game) Snapshot() Snapshot {
	return g.snapshot.Clone()
}

// Stats returns the rounds finished since the game was created
func (g *Game) Stats() StatsSummary {
	return g.stats.Summary()
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) PlayerName() string {
	return g.playerName
}

func (g *Game) RoundID() string {
	return g.roundID
}

func (g *Game) Grid() types.Grid {
	return g.grid
}
