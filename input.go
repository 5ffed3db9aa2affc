package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

// minDragPixels filters out taps and jitter before a drag counts as a
// direction gesture.
const minDragPixels = 20

// gestureTracker turns key presses and mouse drags into direction-change
// requests. Drags map by dominant axis: the larger horizontal delta wins
// left/right, the larger vertical delta wins up/down.
type gestureTracker struct {
	dragging bool
	origin   rl.Vector2
}

func newGestureTracker() *gestureTracker {
	return &gestureTracker{}
}

// Poll reads this frame's input and returns the requested direction, or
// types.NONE when nothing was requested.
func (gt *gestureTracker) Poll() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.UP
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.RIGHT
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.DOWN
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.LEFT
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		gt.dragging = true
		gt.origin = rl.GetMousePosition()
	}
	if gt.dragging && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		gt.dragging = false
		pos := rl.GetMousePosition()
		return dominantAxisDirection(pos.X-gt.origin.X, pos.Y-gt.origin.Y)
	}

	return types.NONE
}

// dominantAxisDirection maps a drag delta to the direction of its larger
// axis. Sub-threshold drags return types.NONE.
func dominantAxisDirection(dx, dy float32) types.Direction {
	if absf(dx) < minDragPixels && absf(dy) < minDragPixels {
		return types.NONE
	}

	if absf(dx) >= absf(dy) {
		if dx > 0 {
			return types.RIGHT
		}
		return types.LEFT
	}
	if dy > 0 {
		return types.DOWN
	}
	return types.UP
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
