package game

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/config"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// scriptedRand replays vals, then defers to a seeded generator
type scriptedRand struct {
	vals     []int
	fallback *rand.Rand
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) > 0 {
		v := r.vals[0]
		r.vals = r.vals[1:]
		return v % n
	}
	return r.fallback.Intn(n)
}

type fakeLeaderboard struct {
	saves []manager.ScoreEntry
	err   error
}

func (f *fakeLeaderboard) Save(name string, score int) error {
	f.saves = append(f.saves, manager.ScoreEntry{PlayerName: name, Score: score})
	return f.err
}

type recordingSink struct {
	got []Snapshot
}

func (r *recordingSink) UpdateState(s Snapshot) {
	r.got = append(r.got, s)
}

var testSession = config.Session{PlayerName: "tester", InitialSpeed: 150 * time.Millisecond, GrowthPerFood: 2}

func newTestGame(t *testing.T, grid types.Grid, session config.Session) *Game {
	t.Helper()
	g := NewGame(grid, session, 1)
	if g.State() != Running {
		t.Fatalf("new game state = %v, want running", g.State())
	}
	return g
}

// placeFood puts the food on p, which must be free
func placeFood(t *testing.T, g *Game, p types.Point) {
	t.Helper()
	g.foodMgr = manager.NewFoodManagerWithRand(g.collisionMgr, &scriptedRand{
		vals:     []int{0, p.X, p.Y},
		fallback: rand.New(rand.NewSource(2)),
	})
	if err := g.foodMgr.Spawn(g.snake); err != nil {
		t.Fatalf("place food: %v", err)
	}
	if got := g.foodMgr.Food().Position(); got != p {
		t.Fatalf("food at %v, want %v", got, p)
	}
}

// eatAhead places food in front of the head and runs exactly one tick
func eatAhead(t *testing.T, g *Game) {
	t.Helper()
	placeFood(t, g, g.snake.Head().Add(g.snake.Direction().Delta()))
	g.Update(g.speed)
}

func TestNewGameCapturesSession(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 20, Height: 20}, testSession)
	if g.speed != 150*time.Millisecond || g.growthPerFood != 2 {
		t.Fatalf("speed=%v growth=%d, want 150ms and 2", g.speed, g.growthPerFood)
	}
	if g.PlayerName() != "tester" {
		t.Fatalf("player = %q", g.PlayerName())
	}
	if g.RoundID() == "" {
		t.Fatal("round id not assigned")
	}
	if g.snake.Head() != types.SnakeStart || g.snake.Len() != 1 {
		t.Fatalf("snake head=%v len=%d", g.snake.Head(), g.snake.Len())
	}
	if g.snake.Occupies(g.foodMgr.Food().Position()) {
		t.Fatal("initial food placed on snake")
	}
}

func TestNewGameEngineDefaults(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 20, Height: 20}, config.Session{})
	if g.speed != types.EngineSpeed || g.growthPerFood != types.EngineGrowth {
		t.Fatalf("speed=%v growth=%d, want engine defaults", g.speed, g.growthPerFood)
	}
	if g.PlayerName() != "Player" {
		t.Fatalf("player = %q, want Player", g.PlayerName())
	}
}

func TestNewGameClampsGrid(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 1, Height: 3}, testSession)
	if g.Grid() != (types.Grid{Width: types.MinGridSize, Height: types.MinGridSize}) {
		t.Fatalf("grid = %v, want 4x4", g.Grid())
	}
	if !g.Grid().Contains(g.snake.Head()) {
		t.Fatalf("snake spawned outside grid at %v", g.snake.Head())
	}
}

func TestUpdateBelowSpeedDoesNotTick(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	g.Update(100 * time.Millisecond)

	if g.snake.Head() != types.SnakeStart {
		t.Fatalf("snake moved to %v before a full interval", g.snake.Head())
	}
	if g.accumulator != 100*time.Millisecond || g.elapsed != 100*time.Millisecond {
		t.Fatalf("accumulator=%v elapsed=%v, want 100ms each", g.accumulator, g.elapsed)
	}
}

func TestUpdateTicksAndCarriesRemainder(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	g.Update(100 * time.Millisecond)
	g.Update(60 * time.Millisecond)

	if want := (types.Point{X: 11, Y: 10}); g.snake.Head() != want {
		t.Fatalf("head = %v, want %v", g.snake.Head(), want)
	}
	if g.accumulator != 10*time.Millisecond {
		t.Fatalf("accumulator = %v, want 10ms", g.accumulator)
	}
}

func TestLargeDeltaIsConsumedAcrossCalls(t *testing.T) {
	session := testSession
	session.InitialSpeed = 100 * time.Millisecond
	g := newTestGame(t, types.Grid{Width: 60, Height: 60}, session)
	g.foodMgr = manager.NewFoodManagerWithRand(g.collisionMgr, &scriptedRand{
		vals: []int{0, 0, 59}, fallback: rand.New(rand.NewSource(3)),
	})
	if err := g.foodMgr.Spawn(g.snake); err != nil {
		t.Fatal(err)
	}

	g.Update(time.Second)
	if got := g.snake.Head().X - types.SnakeStart.X; got != MaxTicksPerUpdate {
		t.Fatalf("first call moved %d cells, want %d", got, MaxTicksPerUpdate)
	}
	if g.accumulator != 500*time.Millisecond {
		t.Fatalf("accumulator = %v, want 500ms carried", g.accumulator)
	}

	g.Update(0)
	if got := g.snake.Head().X - types.SnakeStart.X; got != 10 {
		t.Fatalf("after catch-up moved %d cells, want 10", got)
	}
	if g.accumulator != 0 {
		t.Fatalf("accumulator = %v, want 0", g.accumulator)
	}
	if g.elapsed != time.Second {
		t.Fatalf("elapsed = %v, want 1s", g.elapsed)
	}
}

func TestNegativeDeltaIsIgnored(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	g.Update(-time.Second)
	if g.elapsed != 0 || g.accumulator != 0 {
		t.Fatalf("elapsed=%v accumulator=%v, want 0", g.elapsed, g.accumulator)
	}
}

func TestEatingFood(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	eatAhead(t, g)

	if g.score != 10 {
		t.Fatalf("score = %d, want 10", g.score)
	}
	if g.speed != 148*time.Millisecond {
		t.Fatalf("speed = %v, want 148ms", g.speed)
	}
	if g.level != 0 {
		t.Fatalf("level = %d, want unchanged 0", g.level)
	}
	if g.snake.GrowthPending() != 2 {
		t.Fatalf("growthPending = %d, want 2", g.snake.GrowthPending())
	}
	if g.snake.Occupies(g.foodMgr.Food().Position()) {
		t.Fatal("replacement food placed on snake")
	}
}

func TestLevelRisesWhenSpeedHitsMultipleOfTen(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 60, Height: 60}, testSession)
	for i := 1; i <= 4; i++ {
		eatAhead(t, g)
		if g.level != 0 {
			t.Fatalf("after %d meals level = %d (speed %v), want 0", i, g.level, g.speed)
		}
	}
	eatAhead(t, g)
	if g.speed != 140*time.Millisecond || g.level != 1 || g.score != 50 {
		t.Fatalf("speed=%v level=%d score=%d, want 140ms, 1, 50", g.speed, g.level, g.score)
	}
}

func TestSpeedIsFlooredAtMinimum(t *testing.T) {
	session := testSession
	session.InitialSpeed = 51 * time.Millisecond
	g := newTestGame(t, types.Grid{Width: 60, Height: 60}, session)

	eatAhead(t, g)
	if g.speed != types.MinSpeed || g.level != 1 {
		t.Fatalf("speed=%v level=%d, want floor and level 1", g.speed, g.level)
	}
	eatAhead(t, g)
	if g.speed != types.MinSpeed {
		t.Fatalf("speed = %v went below floor", g.speed)
	}
}

func TestWallCollisionEndsGameAndSavesScore(t *testing.T) {
	lb := &fakeLeaderboard{}
	g := newTestGame(t, types.Grid{Width: 20, Height: 20}, testSession)
	g.SetLeaderboard(lb)
	placeFood(t, g, types.Point{X: 0, Y: 0})

	for i := 0; i < 20 && g.State() == Running; i++ {
		g.Update(g.speed)
	}
	if g.State() != GameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	if g.collision != types.WallCollision {
		t.Fatalf("collision = %v, want wall", g.collision)
	}
	if len(lb.saves) != 1 || lb.saves[0] != (manager.ScoreEntry{PlayerName: "tester", Score: 0}) {
		t.Fatalf("saves = %v, want one entry for tester", lb.saves)
	}

	elapsed, head := g.elapsed, g.snake.Head()
	g.Update(time.Second)
	if g.elapsed != elapsed || g.snake.Head() != head {
		t.Fatal("update after game over changed state")
	}
	if len(lb.saves) != 1 {
		t.Fatalf("score saved %d times, want once", len(lb.saves))
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	session := testSession
	session.GrowthPerFood = 4
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, session)

	eatAhead(t, g)
	for i := 0; i < 4; i++ {
		g.Update(g.speed)
	}
	// length 5 now; a tight loop bites the body
	for _, d := range []types.Direction{types.Down, types.Left, types.Up} {
		g.ChangeDirection(d)
		g.Update(g.speed)
	}
	if g.State() != GameOver || g.collision != types.SelfCollision {
		t.Fatalf("state=%v collision=%v, want self collision game over", g.State(), g.collision)
	}
}

func TestLeaderboardFailureIsNotFatal(t *testing.T) {
	lb := &fakeLeaderboard{err: errors.New("disk full")}
	g := newTestGame(t, types.Grid{Width: 4, Height: 4}, testSession)
	g.SetLeaderboard(lb)
	placeFood(t, g, types.Point{X: 0, Y: 0})

	for i := 0; i < 10 && g.State() == Running; i++ {
		g.Update(g.speed)
	}
	if g.State() != GameOver {
		t.Fatalf("state = %v, want game over despite save error", g.State())
	}
	if !g.Snapshot().GameOver {
		t.Fatal("snapshot does not report game over")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	g.Update(100 * time.Millisecond)

	g.Pause()
	g.Pause()
	if g.State() != Paused || !g.Snapshot().Paused {
		t.Fatalf("state = %v, want paused", g.State())
	}

	g.Update(10 * time.Second)
	if g.elapsed != 100*time.Millisecond || g.accumulator != 100*time.Millisecond {
		t.Fatalf("paused update advanced time: elapsed=%v accumulator=%v", g.elapsed, g.accumulator)
	}
	if g.snake.Head() != types.SnakeStart {
		t.Fatal("paused update moved the snake")
	}

	g.Resume()
	g.Resume()
	if g.State() != Running {
		t.Fatalf("state = %v, want running", g.State())
	}
	if g.accumulator != 0 {
		t.Fatalf("accumulator = %v after resume, want 0", g.accumulator)
	}
	g.Update(100 * time.Millisecond)
	if g.snake.Head() != types.SnakeStart {
		t.Fatal("resume caused a catch-up tick")
	}
}

func TestPauseResumeWithoutTimeChangesNothing(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	eatAhead(t, g)
	before := g.Snapshot()

	g.TogglePause()
	g.TogglePause()

	after := g.Snapshot()
	if after.Score != before.Score || after.Level != before.Level || after.Food != before.Food {
		t.Fatalf("pause round trip changed state: %+v -> %+v", before, after)
	}
	if len(after.SnakeBody) != len(before.SnakeBody) || after.Head() != before.Head() {
		t.Fatal("pause round trip changed the snake")
	}
}

func TestResetRestoresCapturedDifficulty(t *testing.T) {
	session := config.Session{PlayerName: "p", InitialSpeed: 120 * time.Millisecond, GrowthPerFood: 3}
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, session)
	firstRound := g.RoundID()

	for i := 0; i < 3; i++ {
		eatAhead(t, g)
	}
	for g.State() == Running {
		g.Update(g.speed)
	}

	g.Toggle()
	if g.State() != Running {
		t.Fatalf("state after toggle = %v, want running", g.State())
	}
	if g.speed != 120*time.Millisecond || g.growthPerFood != 3 {
		t.Fatalf("speed=%v growth=%d, want 120ms and 3", g.speed, g.growthPerFood)
	}
	if g.score != 0 || g.level != 0 || g.elapsed != 0 || g.accumulator != 0 {
		t.Fatalf("score=%d level=%d elapsed=%v acc=%v, want zeros", g.score, g.level, g.elapsed, g.accumulator)
	}
	if g.snake.Len() != 1 || g.snake.Direction() != types.Right || g.won {
		t.Fatal("snake not recreated")
	}
	if g.RoundID() == firstRound {
		t.Fatal("reset kept the round id")
	}
}

func TestToggleWhileRunningPauses(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	g.Toggle()
	if g.State() != Paused {
		t.Fatalf("state = %v, want paused", g.State())
	}
	g.Toggle()
	if g.State() != Running {
		t.Fatalf("state = %v, want running", g.State())
	}
}

func TestChangeDirection(t *testing.T) {
	session := testSession
	session.GrowthPerFood = 2
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, session)
	eatAhead(t, g)
	g.Update(g.speed)

	g.ChangeDirection(types.Left)
	if g.snake.Direction() != types.Right {
		t.Fatalf("reversal accepted, direction = %v", g.snake.Direction())
	}
	g.ChangeDirection(types.Up)
	if g.snake.Direction() != types.Up {
		t.Fatalf("direction = %v, want up", g.snake.Direction())
	}

	g.state = GameOver
	g.ChangeDirection(types.Left)
	if g.snake.Direction() != types.Up {
		t.Fatal("direction changed after game over")
	}
}

func TestOnResize(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	eatAhead(t, g)
	placeFood(t, g, types.Point{X: 30, Y: 30})
	score, body := g.score, g.snake.Body()

	g.OnResize(20, 20)
	if g.Grid() != (types.Grid{Width: 20, Height: 20}) {
		t.Fatalf("grid = %v", g.Grid())
	}
	food := g.foodMgr.Food().Position()
	if !g.Grid().Contains(food) || g.snake.Occupies(food) {
		t.Fatalf("food %v invalid after shrink", food)
	}
	if g.score != score || g.snake.Len() != len(body) || g.snake.Head() != body[0] {
		t.Fatal("resize touched snake or score")
	}
	if g.Snapshot().Grid != g.Grid() {
		t.Fatal("resize not published")
	}

	placeFood(t, g, types.Point{X: 1, Y: 1})
	g.OnResize(30, 30)
	if g.foodMgr.Food().Position() != (types.Point{X: 1, Y: 1}) {
		t.Fatal("food moved although still in bounds")
	}

	g.OnResize(2, 1)
	if g.Grid() != (types.Grid{Width: 4, Height: 4}) {
		t.Fatalf("grid = %v, want clamped 4x4", g.Grid())
	}
}

func TestFullGridIsAWin(t *testing.T) {
	lb := &fakeLeaderboard{}
	session := config.Session{PlayerName: "w", InitialSpeed: 150 * time.Millisecond, GrowthPerFood: 100}
	g := newTestGame(t, types.Grid{Width: 4, Height: 4}, session)
	g.SetLeaderboard(lb)
	if g.snake.Head() != (types.Point{X: 2, Y: 2}) {
		t.Fatalf("spawn = %v, want centre", g.snake.Head())
	}
	placeFood(t, g, types.Point{X: 3, Y: 2})

	// Hamiltonian walk ending back on the vacated spawn cell.
	path := []types.Direction{
		types.Right, types.Down, types.Left, types.Left, types.Left, types.Up, types.Right, types.Up,
		types.Left, types.Up, types.Right, types.Right, types.Right, types.Down, types.Left, types.Down,
	}
	for i, d := range path {
		if g.State() != Running {
			t.Fatalf("game ended early at step %d: %+v", i, g.Snapshot())
		}
		g.ChangeDirection(d)
		g.Update(g.speed)
	}

	snap := g.Snapshot()
	if !snap.GameOver || !snap.Won {
		t.Fatalf("gameOver=%v won=%v, want a won game", snap.GameOver, snap.Won)
	}
	if len(snap.SnakeBody) != 16 {
		t.Fatalf("snake length = %d, want 16", len(snap.SnakeBody))
	}
	if len(lb.saves) != 1 || lb.saves[0].Score != snap.Score {
		t.Fatalf("saves = %v, want final score %d", lb.saves, snap.Score)
	}
}

func TestSinkReceivesOneCopyPerTick(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	sink := &recordingSink{}
	g.AddSink(sink)
	if len(sink.got) != 1 {
		t.Fatalf("AddSink delivered %d snapshots, want 1", len(sink.got))
	}

	g.Update(3 * g.speed)
	if len(sink.got) != 4 {
		t.Fatalf("got %d snapshots after 3 ticks, want 4", len(sink.got))
	}

	last := sink.got[len(sink.got)-1]
	if last.Head() != (types.Point{X: 13, Y: 10}) {
		t.Fatalf("last snapshot head = %v", last.Head())
	}

	last.SnakeBody[0] = types.Point{X: -5, Y: -5}
	if g.snake.Head() == last.SnakeBody[0] || g.Snapshot().Head() == last.SnakeBody[0] {
		t.Fatal("snapshot shares memory with the live game")
	}
}

func TestSinkFunc(t *testing.T) {
	g := newTestGame(t, types.Grid{Width: 40, Height: 40}, testSession)
	var n int
	g.AddSink(SinkFunc(func(Snapshot) { n++ }))
	g.Pause()
	if n != 2 {
		t.Fatalf("sink called %d times, want 2", n)
	}
}
