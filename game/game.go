package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Config carries the construction-time session parameters. GridSize is
// validated once here and never re-checked per tick.
type Config struct {
	GridSize int
	Seed     uint64 // food RNG seed, 0 = time-based
}

// Game owns one simulation session: the body, the food, the score and the
// countdown. All mutation goes through the two tick operations, the
// direction-change request and Reset; collaborators read via Snapshot.
type Game struct {
	mu sync.RWMutex

	sessionID string
	grid      types.Grid
	snake     *entity.Snake
	food      types.Point
	score     int
	timeLeft  int
	over      bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

func New(cfg Config) (*Game, error) {
	if cfg.GridSize <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", cfg.GridSize)
	}

	grid := types.Grid{
		Width:  cfg.GridSize,
		Height: cfg.GridSize,
	}
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.Seed),
	}
	g.reset()

	return g, nil
}

// Reset reinitializes the session to its starting values and reopens play.
// It is the only transition out of the game-over state.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

func (g *Game) reset() {
	g.sessionID = uuid.New().String()
	g.snake = entity.NewSnake(types.StartPosition, types.StartDirection)
	g.food = types.StartFood
	g.score = 0
	g.timeLeft = types.CountdownTicks
	g.over = false
}

// RequestDirectionChange sets the movement direction used by the next
// TickMove. Reversal into the body's second segment and requests after
// game over are silently ignored.
func (g *Game) RequestDirectionChange(dir types.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return
	}
	g.snake.SetDirection(dir)
}

// TickMove advances the body one cell in the current direction.
//
// Collision is checked against the body as it exists before this tick's
// tail removal, so moving into the cell the tail is about to vacate ends
// the game. On a collision nothing else mutates; the session only flips
// to game over.
func (g *Game) TickMove() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return
	}

	newHead := g.snake.Head().Add(g.snake.Direction.ToPoint())

	if g.collisionMgr.CheckCollision(newHead, g.snake) != manager.NoCollision {
		g.over = true
		return
	}

	if newHead == g.food {
		g.score++
		g.snake.Grow(newHead)
		g.timeLeft = types.CountdownTicks
		g.food = g.foodMgr.Generate(g.snake)
	} else {
		g.snake.Shift(newHead)
	}
}

// TickCountdown burns one countdown tick. When the countdown is already
// exhausted the session flips to game over instead.
func (g *Game) TickCountdown() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return
	}

	if g.timeLeft > 0 {
		g.timeLeft--
		return
	}
	g.over = true
}

// Snapshot is the read surface handed to the renderer once per frame.
type Snapshot struct {
	SessionID string
	Grid      types.Grid
	Body      []types.Point
	Direction types.Direction
	Food      types.Point
	Score     int
	TimeLeft  int
	Over      bool
}

// Snapshot copies the current session state under the read lock. The body
// slice is owned by the caller.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	return Snapshot{
		SessionID: g.sessionID,
		Grid:      g.grid,
		Body:      body,
		Direction: g.snake.Direction,
		Food:      g.food,
		Score:     g.score,
		TimeLeft:  g.timeLeft,
		Over:      g.over,
	}
}
