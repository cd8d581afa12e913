package terminal

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/game/types"
)

// Command is what a single key press asks the driver to do
type Command struct {
	Direction types.Direction
	Toggle    bool
	Quit      bool
}

// KeyCommand maps a key event's key and rune to a Command.
// Arrows and WASD steer, space toggles, Esc, Ctrl-C and q quit.
func KeyCommand(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Quit: true}
	case tcell.KeyUp:
		return Command{Direction: types.Up}
	case tcell.KeyDown:
		return Command{Direction: types.Down}
	case tcell.KeyLeft:
		return Command{Direction: types.Left}
	case tcell.KeyRight:
		return Command{Direction: types.Right}
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return Command{Direction: types.Up}
		case 's', 'S':
			return Command{Direction: types.Down}
		case 'a', 'A':
			return Command{Direction: types.Left}
		case 'd', 'D':
			return Command{Direction: types.Right}
		case ' ':
			return Command{Toggle: true}
		case 'q', 'Q':
			return Command{Quit: true}
		}
	}
	return Command{}
}
