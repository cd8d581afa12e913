package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/config"
)

// Prompt is the welcome form on a tcell screen. Keys go to the form, not
// the game, until the player presses Enter.
type Prompt struct {
	*config.Form
	canvas    Canvas
	cancelled bool
}

func NewPrompt(canvas Canvas, name, difficulty string) *Prompt {
	return &Prompt{Form: config.NewForm(name, difficulty), canvas: canvas}
}

// HandleKey feeds one key press to the form
func (p *Prompt) HandleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.cancelled = true
	case tcell.KeyEnter:
		p.Submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		p.Backspace()
	case tcell.KeyUp, tcell.KeyLeft:
		p.Select(-1)
	case tcell.KeyDown, tcell.KeyRight:
		p.Select(1)
	case tcell.KeyRune:
		if r >= '1' && r <= '3' {
			p.SelectIndex(int(r - '1'))
			return
		}
		p.Type(r)
	}
}

// Cancelled reports whether the player quit from the form
func (p *Prompt) Cancelled() bool { return p.cancelled }

func (p *Prompt) Draw() {
	w, h := p.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.canvas.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
	line := func(y int, s string, style tcell.Style) {
		x := (w - len([]rune(s))) / 2
		if x < 0 {
			x = 0
		}
		for _, ch := range s {
			p.canvas.SetContent(x, y, ch, nil, style)
			x++
		}
	}

	top := h/2 - 6
	line(top, "S N A K E", styleHead)
	line(top+2, "Your name:", styleHUD)
	line(top+3, fmt.Sprintf("[ %-16s ]", p.Name()+"_"), styleHighlite)
	for i, d := range config.Difficulties() {
		label := fmt.Sprintf("  %d %-6s  ", i+1, d.Name)
		style := styleBorder
		if i == p.Selected() {
			label = fmt.Sprintf("> %d %-6s <", i+1, d.Name)
			style = styleHighlite
		}
		line(top+5+i, label, style)
	}
	line(top+9, "arrows or 1-3 pick difficulty, enter starts, esc quits", styleBorder)
}
