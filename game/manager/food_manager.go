package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
}

// NewFoodManager creates a food placer for the given grid. Seed 0 picks a
// time-based seed; any other value makes placement deterministic.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Generate picks a uniformly random cell, resampling until it lands on a
// cell the body does not occupy. The caller guarantees free cells exist.
func (fm *FoodManager) Generate(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}
}
