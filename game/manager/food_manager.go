package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food tile.
type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random tile outside the snake by
// rejection sampling. Sampling only terminates while the snake leaves at
// least one tile free, so a full board reports false instead of looping.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if snake != nil && snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
}

// Place moves the food to a fresh tile.
func (fm *FoodManager) Place(snake *entity.Snake) bool {
	food, ok := fm.GenerateFood(snake)
	if !ok {
		return false
	}
	fm.food = food
	return true
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood pins the food tile. Used to script scenarios.
func (fm *FoodManager) SetFood(p types.Point) {
	fm.food = p
}
