package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/config"
)

// Welcome collects the player name and difficulty before the first round.
// While it is active no game keys are processed.
type Welcome struct {
	*config.Form
}

func NewWelcome(name, difficulty string) *Welcome {
	return &Welcome{Form: config.NewForm(name, difficulty)}
}

// Update consumes this frame's keyboard input
func (w *Welcome) Update() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		// digits pick a preset instead of being typed
		if r >= '1' && r <= '3' {
			w.SelectIndex(int(r - '1'))
			continue
		}
		w.Type(rune(r))
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace):
		w.Backspace()
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyLeft):
		w.Select(-1)
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyRight):
		w.Select(1)
	case rl.IsKeyPressed(rl.KeyEnter), rl.IsKeyPressed(rl.KeyKpEnter):
		w.Submit()
	}
}

func (w *Welcome) Draw() {
	width := int32(rl.GetScreenWidth())
	height := int32(rl.GetScreenHeight())
	centre := func(text string, y, size int32, color rl.Color) {
		rl.DrawText(text, (width-rl.MeasureText(text, size))/2, y, size, color)
	}

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	top := height/2 - 140
	centre("SNAKE", top, 60, headColor)
	centre("Your name:", top+90, 22, rl.LightGray)

	boxWidth := int32(320)
	boxX := (width - boxWidth) / 2
	rl.DrawRectangleLines(boxX, top+120, boxWidth, 40, rl.RayWhite)
	field := w.Name()
	if (rl.GetTime()*2)-float64(int(rl.GetTime()*2)) < 0.5 {
		field += "_"
	}
	rl.DrawText(field, boxX+10, top+130, 22, rl.RayWhite)

	for i, d := range config.Difficulties() {
		color := rl.Gray
		label := fmt.Sprintf("%d  %s", i+1, d.Name)
		if i == w.Selected() {
			color = rl.Gold
			label = "> " + label + " <"
		}
		centre(label, top+190+int32(i)*32, 24, color)
	}
	centre("arrows or 1-3 choose difficulty, enter starts", top+300, 18, rl.Gray)
	rl.EndDrawing()
}
