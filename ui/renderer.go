package ui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// ScoreSource lists the stored leaderboard
type ScoreSource interface {
	Load() ([]manager.ScoreEntry, error)
}

// Renderer draws the latest snapshot into the raylib window. It only reads
// snapshots and never reaches into the game.
type Renderer struct {
	snapshot game.Snapshot
	scores   ScoreSource

	board      []manager.ScoreEntry
	boardRound string
}

// NewRenderer returns a renderer; scores may be nil to hide the leaderboard
func NewRenderer(scores ScoreSource) *Renderer {
	return &Renderer{scores: scores}
}

func (r *Renderer) UpdateState(s game.Snapshot) {
	r.snapshot = s
	if s.GameOver && s.RoundID != r.boardRound {
		r.boardRound = s.RoundID
		r.board = r.loadBoard()
	}
}

func (r *Renderer) loadBoard() []manager.ScoreEntry {
	if r.scores == nil {
		return nil
	}
	board, err := r.scores.Load()
	if err != nil {
		log.Printf("leaderboard unavailable: %v", err)
		return nil
	}
	return board
}

// Draw renders one frame
func (r *Renderer) Draw() {
	s := r.snapshot
	layout := ComputeLayout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), s.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	r.drawGrid(layout, s.Grid)
	r.drawFood(layout, s)
	r.drawSnake(layout, s)
	r.drawHUD(layout, s)

	switch {
	case s.GameOver:
		r.drawGameOver(layout, s)
	case s.Paused:
		r.drawCentered(layout, "PAUSED", 40, rl.White, 0)
		r.drawCentered(layout, "press space to resume", 20, rl.LightGray, 45)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawGrid(l Layout, grid types.Grid) {
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.Width, l.Height, rl.Black)
	for x := 0; x <= grid.Width; x++ {
		color := gridColor
		if Bold(x) {
			color = gridBoldColor
		}
		px := l.OffsetX + int32(x)*l.Cell
		rl.DrawLine(px, l.OffsetY, px, l.OffsetY+l.Height, color)
	}
	for y := 0; y <= grid.Height; y++ {
		color := gridColor
		if Bold(y) {
			color = gridBoldColor
		}
		py := l.OffsetY + int32(y)*l.Cell
		rl.DrawLine(l.OffsetX, py, l.OffsetX+l.Width, py, color)
	}
}

func (r *Renderer) drawFood(l Layout, s game.Snapshot) {
	x, y := l.CellOrigin(s.Food)
	half := l.Cell / 2
	rl.DrawCircle(x+half, y+half, float32(l.Cell)*0.4, FoodColor(s.FoodKind))
}

func (r *Renderer) drawSnake(l Layout, s game.Snapshot) {
	// tail first so the head is painted last
	for i := len(s.SnakeBody) - 1; i > 0; i-- {
		x, y := l.CellOrigin(s.SnakeBody[i])
		rl.DrawRectangle(x+1, y+1, l.Cell-2, l.Cell-2, bodyColor)
	}
	if len(s.SnakeBody) == 0 {
		return
	}

	x, y := l.CellOrigin(s.Head())
	half := l.Cell / 2
	rl.DrawCircle(x+half, y+half, float32(half), headColor)

	// Direction marker: a small dot offset towards the heading
	d := s.Direction.Delta()
	mx := x + half + int32(d.X)*half/2
	my := y + half + int32(d.Y)*half/2
	rl.DrawCircle(mx, my, float32(l.Cell)/8+1, markerColor)
}

func (r *Renderer) drawHUD(l Layout, s game.Snapshot) {
	hud := fmt.Sprintf("%s   Score: %d   Level: %d   Time: %s",
		s.PlayerName, s.Score, s.Level, s.Clock())
	rl.DrawText(hud, l.OffsetX, borderPadding, 20, rl.RayWhite)
}

func (r *Renderer) drawGameOver(l Layout, s game.Snapshot) {
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.Width, l.Height, rl.Fade(rl.Black, 0.6))

	title := "GAME OVER"
	if s.Won {
		title = "YOU WIN"
	}
	r.drawCentered(l, title, 40, rl.Red, -90)
	r.drawCentered(l, fmt.Sprintf("Final score: %d", s.Score), 24, rl.White, -45)
	r.drawCentered(l, SessionLine(s.Stats), 18, rl.Gray, -20)

	offset := int32(10)
	if len(r.board) > 0 {
		r.drawCentered(l, "High Scores", 22, rl.Gold, offset)
		offset += 30
		for i, entry := range r.board {
			r.drawCentered(l, fmt.Sprintf("%d. %-16s %5d", i+1, entry.PlayerName, entry.Score), 20, rl.LightGray, offset)
			offset += 24
		}
	}
	r.drawCentered(l, "press space to play again", 20, rl.LightGray, offset+15)
}

func (r *Renderer) drawCentered(l Layout, text string, size int32, color rl.Color, dy int32) {
	width := rl.MeasureText(text, size)
	x := l.OffsetX + (l.Width-width)/2
	y := l.OffsetY + l.Height/2 + dy
	rl.DrawText(text, x, y, size, color)
}

// SessionLine summarises the rounds played since start
func SessionLine(st game.StatsSummary) string {
	return fmt.Sprintf("Rounds: %d   Best: %d   Avg: %.1f   Median: %.1f",
		st.GamesPlayed, st.MaxScore, st.AverageScore, st.MedianScore)
}
