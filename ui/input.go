package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

// Controller is the part of the game the keyboard drives
type Controller interface {
	ChangeDirection(types.Direction)
	Toggle()
}

var directionKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// DirectionForKey maps arrows and WASD to a heading
func DirectionForKey(key int32) types.Direction {
	return directionKeys[key]
}

// HandleInput forwards this frame's key presses to c. It reports false
// once the player asked to quit.
func HandleInput(c Controller) bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	for key, dir := range directionKeys {
		if rl.IsKeyPressed(key) {
			c.ChangeDirection(dir)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		c.Toggle()
	}
	return true
}
