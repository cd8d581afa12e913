// Package terminal draws the game with tcell. Each grid cell spans two
// terminal columns so cells look roughly square.
package terminal

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

const (
	cellWidth = 2
	// HUD row, then the top border
	gridTop  = 2
	gridLeft = 1
)

// Canvas is the subset of tcell.Screen the renderer draws through
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// ScoreSource lists the stored leaderboard
type ScoreSource interface {
	Load() ([]manager.ScoreEntry, error)
}

var (
	styleDefault  = tcell.StyleDefault
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDot      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 70))
	styleDotBold  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 110, 130))
	styleBody     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(46, 204, 113))
	styleHead     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(88, 230, 150)).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHighlite = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// GridForScreen sizes the grid to fill a cols x rows terminal
func GridForScreen(cols, rows int) types.Grid {
	return types.Grid{
		Width:  (cols - 2*gridLeft) / cellWidth,
		Height: rows - gridTop - 1,
	}.Clamp()
}

// FoodStyle colours each food variant
func FoodStyle(kind types.FoodKind) tcell.Style {
	var c tcell.Color
	switch kind {
	case types.Mango:
		c = tcell.NewRGBColor(255, 170, 30)
	case types.Strawberry:
		c = tcell.NewRGBColor(230, 40, 80)
	case types.Pineapple:
		c = tcell.NewRGBColor(240, 220, 60)
	case types.Grape:
		c = tcell.NewRGBColor(140, 70, 200)
	default:
		c = tcell.ColorRed
	}
	return tcell.StyleDefault.Foreground(c)
}

var headRunes = map[types.Direction]rune{
	types.Up:    '^',
	types.Down:  'v',
	types.Left:  '<',
	types.Right: '>',
}

// Renderer keeps the newest snapshot and paints it on demand
type Renderer struct {
	canvas   Canvas
	scores   ScoreSource
	snapshot game.Snapshot

	board      []manager.ScoreEntry
	boardRound string
}

func NewRenderer(canvas Canvas, scores ScoreSource) *Renderer {
	return &Renderer{canvas: canvas, scores: scores}
}

func (r *Renderer) UpdateState(s game.Snapshot) {
	r.snapshot = s
	if s.GameOver && s.RoundID != r.boardRound {
		r.boardRound = s.RoundID
		r.board = nil
		if r.scores == nil {
			return
		}
		board, err := r.scores.Load()
		if err != nil {
			log.Printf("leaderboard unavailable: %v", err)
			return
		}
		r.board = board
	}
}

// Draw paints the whole screen; the caller calls Show
func (r *Renderer) Draw() {
	s := r.snapshot
	r.clear()
	r.text(gridLeft, 0, fmt.Sprintf("%s  Score: %d  Level: %d  Time: %s",
		s.PlayerName, s.Score, s.Level, s.Clock()), styleHUD)

	r.drawBorder(s.Grid)
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			if x%5 == 0 && y%5 == 0 {
				r.cell(types.Point{X: x, Y: y}, '+', ' ', styleDotBold)
			} else {
				r.cell(types.Point{X: x, Y: y}, '·', ' ', styleDot)
			}
		}
	}

	r.cell(s.Food, '●', ' ', FoodStyle(s.FoodKind))
	for i := len(s.SnakeBody) - 1; i > 0; i-- {
		r.cell(s.SnakeBody[i], '█', '█', styleBody)
	}
	if len(s.SnakeBody) > 0 {
		head, ok := headRunes[s.Direction]
		if !ok {
			head = '@'
		}
		r.cell(s.Head(), '@', head, styleHead)
	}

	switch {
	case s.GameOver:
		r.drawGameOver(s)
	case s.Paused:
		r.centre(s.Grid, s.Grid.Height/2, " PAUSED ", styleTitle)
		r.centre(s.Grid, s.Grid.Height/2+1, " space to resume ", styleHUD)
	}
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	title := " GAME OVER "
	if s.Won {
		title = " YOU WIN "
	}
	row := s.Grid.Height/2 - 3 - len(r.board)/2
	r.centre(s.Grid, row, title, styleTitle)
	row++
	r.centre(s.Grid, row, fmt.Sprintf(" Final score: %d ", s.Score), styleHUD)
	row++
	r.centre(s.Grid, row, fmt.Sprintf(" rounds %d  best %d  avg %.1f ",
		s.Stats.GamesPlayed, s.Stats.MaxScore, s.Stats.AverageScore), styleBorder)
	row += 2
	if len(r.board) > 0 {
		r.centre(s.Grid, row, " High Scores ", styleHighlite)
		row++
		for i, e := range r.board {
			r.centre(s.Grid, row, fmt.Sprintf(" %d. %-16s %5d ", i+1, e.PlayerName, e.Score), styleHUD)
			row++
		}
		row++
	}
	r.centre(s.Grid, row, " space to play again, q to quit ", styleHUD)
}

func (r *Renderer) drawBorder(g types.Grid) {
	left, top := gridLeft-1, gridTop-1
	right := gridLeft + g.Width*cellWidth
	bottom := gridTop + g.Height
	for x := left + 1; x < right; x++ {
		r.canvas.SetContent(x, top, '─', nil, styleBorder)
		r.canvas.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		r.canvas.SetContent(left, y, '│', nil, styleBorder)
		r.canvas.SetContent(right, y, '│', nil, styleBorder)
	}
	r.canvas.SetContent(left, top, '┌', nil, styleBorder)
	r.canvas.SetContent(right, top, '┐', nil, styleBorder)
	r.canvas.SetContent(left, bottom, '└', nil, styleBorder)
	r.canvas.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) clear() {
	w, h := r.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.canvas.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
}

// cell paints grid cell p as two runes
func (r *Renderer) cell(p types.Point, left, right rune, style tcell.Style) {
	x, y := CellColumn(p), gridTop+p.Y
	r.canvas.SetContent(x, y, left, nil, style)
	r.canvas.SetContent(x+1, y, right, nil, style)
}

// CellColumn is the first terminal column of grid cell p
func CellColumn(p types.Point) int {
	return gridLeft + p.X*cellWidth
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) centre(g types.Grid, row int, s string, style tcell.Style) {
	width := len([]rune(s))
	x := gridLeft + (g.Width*cellWidth-width)/2
	if x < 0 {
		x = 0
	}
	r.text(x, gridTop+row, s, style)
}
