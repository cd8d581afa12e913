package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

const (
	borderPadding = 10
	hudHeight     = 30
	boldEvery     = 5
)

// Layout places the grid inside the window: square cells, centred,
// with a HUD strip above
type Layout struct {
	Cell    int32
	OffsetX int32
	OffsetY int32
	Width   int32
	Height  int32
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// ComputeLayout fits grid into a screenWidth x screenHeight window
func ComputeLayout(screenWidth, screenHeight int32, grid types.Grid) Layout {
	availableWidth := screenWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*2 - hudHeight

	var l Layout
	if grid.Width > 0 && grid.Height > 0 {
		l.Cell = min32(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	}
	if l.Cell < 1 {
		l.Cell = 1
	}
	l.Width = l.Cell * int32(grid.Width)
	l.Height = l.Cell * int32(grid.Height)
	l.OffsetX = (screenWidth - l.Width) / 2
	l.OffsetY = hudHeight + borderPadding + (availableHeight-l.Height)/2
	return l
}

// GridForWindow sizes the grid to the window area left after the HUD and padding
func GridForWindow(screenWidth, screenHeight, cellSize int) types.Grid {
	return types.GridFromPixels(screenWidth-borderPadding*2, screenHeight-borderPadding*2-hudHeight, cellSize)
}

// CellOrigin returns the top-left pixel of cell p
func (l Layout) CellOrigin(p types.Point) (int32, int32) {
	return l.OffsetX + int32(p.X)*l.Cell, l.OffsetY + int32(p.Y)*l.Cell
}

// Bold reports whether grid line i is drawn emphasised
func Bold(i int) bool {
	return i%boldEvery == 0
}

var (
	backgroundColor = rl.NewColor(18, 18, 24, 255)
	gridColor       = rl.NewColor(40, 40, 52, 255)
	gridBoldColor   = rl.NewColor(70, 70, 90, 255)
	bodyColor       = rl.NewColor(46, 204, 113, 255)
	headColor       = rl.NewColor(88, 230, 150, 255)
	markerColor     = rl.Yellow
)

// FoodColor is the fill used for each food variant
func FoodColor(kind types.FoodKind) rl.Color {
	switch kind {
	case types.Mango:
		return rl.NewColor(255, 170, 30, 255)
	case types.Strawberry:
		return rl.NewColor(230, 40, 80, 255)
	case types.Pineapple:
		return rl.NewColor(240, 220, 60, 255)
	case types.Grape:
		return rl.NewColor(140, 70, 200, 255)
	}
	return rl.Red
}
