package entity

import (
	"errors"

	"gridsnake/game/types"
)

// ErrGridFull is returned when the snake leaves no free cell for food
var ErrGridFull = errors.New("no free cell left for food")

// Rand is the subset of a random source used for placement
type Rand interface {
	Intn(n int) int
}

type Food struct {
	position types.Point
	kind     types.FoodKind
}

func NewFood() *Food {
	return &Food{}
}

func (f *Food) Position() types.Point {
	return f.position
}

func (f *Food) Kind() types.FoodKind {
	return f.kind
}

// Place moves the food to a uniformly random free cell and picks a new kind.
// Draws are rejected while they land on the snake; after enough misses the
// free cells are enumerated instead so placement always terminates.
func (f *Food) Place(grid types.Grid, snake *Snake, rng Rand) error {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.body {
		if grid.Contains(part) {
			occupied[part] = struct{}{}
		}
	}
	free := grid.Cells() - len(occupied)
	if free <= 0 {
		return ErrGridFull
	}

	kind := types.FoodKind(rng.Intn(types.FoodKinds))

	for tries := 0; tries < 4*grid.Cells(); tries++ {
		food := types.Point{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if _, taken := occupied[food]; !taken {
			f.position, f.kind = food, kind
			return nil
		}
	}

	pick := rng.Intn(free)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; taken {
				continue
			}
			if pick == 0 {
				f.position, f.kind = p, kind
				return nil
			}
			pick--
		}
	}
	return ErrGridFull
}
