package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a move of snake's head onto pos.
// The whole current body counts, tail included, because the tail has not
// moved yet when the check runs.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake != nil && snake.Occupies(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if food may be placed at pos.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
