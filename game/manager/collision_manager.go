package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) SetGrid(grid types.Grid) {
	cm.grid = grid
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// CheckCollision classifies the snake's head after a move
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	return snake.Collision(cm.grid.Width, cm.grid.Height)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return pos == food.Position()
}
