package manager

import (
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// FoodManager owns the single food item and the random source used to place it
type FoodManager struct {
	grid         types.Grid
	food         *entity.Food
	rng          entity.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager seeds its own generator; seed 0 is a valid fixed seed
func NewFoodManager(collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return NewFoodManagerWithRand(collisionMgr, rand.New(rand.NewSource(seed)))
}

func NewFoodManagerWithRand(collisionMgr *CollisionManager, rng entity.Rand) *FoodManager {
	return &FoodManager{
		grid:         collisionMgr.Grid(),
		food:         entity.NewFood(),
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn places the food on a free cell. entity.ErrGridFull means the snake fills the grid.
func (fm *FoodManager) Spawn(snake *entity.Snake) error {
	return fm.food.Place(fm.grid, snake, fm.rng)
}

// Resize adopts the new bounds and re-places the food only when it fell outside them
func (fm *FoodManager) Resize(grid types.Grid, snake *entity.Snake) error {
	fm.grid = grid
	if grid.Contains(fm.food.Position()) {
		return nil
	}
	return fm.Spawn(snake)
}

// Eaten reports whether the snake's head is on the food
func (fm *FoodManager) Eaten(snake *entity.Snake) bool {
	return fm.collisionMgr.IsFoodCollision(snake.Head(), fm.food)
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}
