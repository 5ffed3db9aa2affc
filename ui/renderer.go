package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
)

var (
	bodyColor = rl.Color{R: 80, G: 200, B: 120, A: 255}
	headColor = rl.Color{R: 120, G: 255, B: 160, A: 255}
	tailColor = rl.White
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	// Get window dimensions
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed fraction of the window width
	r.statsPanel = r.screenWidth / 4

	// Game area is whatever the stats panel leaves over
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame from the snapshot. The renderer never mutates
// game state; it reads the pulled copy only.
func (r *Renderer) Draw(snap game.Snapshot, highScore int, history []int) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/30, r.statsPanel/10)
	lineHeight := fontSize + fontSize/2

	// Calculate available space for the grid after border padding
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)

	// Cell size from available space and grid dimensions
	cellW := availableWidth / int32(snap.Grid.Width)
	cellH := availableHeight / int32(snap.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)

	// Center the grid in the game area
	r.offsetX = borderPadding + (r.gameWidth-r.totalGridWidth-borderPadding*2)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Grid background
	rl.DrawRectangle(
		r.offsetX-1,
		r.offsetY-1,
		r.totalGridWidth+2,
		r.totalGridHeight+2,
		rl.DarkGray)

	// Grid lines
	for x := 0; x < snap.Grid.Width; x++ {
		for y := 0; y < snap.Grid.Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	// Body, head-first
	for i, p := range snap.Body {
		color := bodyColor
		if i == len(snap.Body)-1 && len(snap.Body) > 1 { // Tail
			color = tailColor
		}
		if i == 0 { // Head
			color = headColor
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
		if i == 0 {
			r.drawHeading(p, snap.Direction)
		}
	}

	// Food
	rl.DrawRectangle(
		r.offsetX+int32(snap.Food.X)*r.cellSize,
		r.offsetY+int32(snap.Food.Y)*r.cellSize,
		r.cellSize, r.cellSize, rl.Red)

	r.drawStatsPanel(snap, highScore, history, fontSize, lineHeight)

	if snap.Over {
		gameOverText := "Game Over! Press R to restart"
		textWidth := rl.MeasureText(gameOverText, fontSize)
		rl.DrawText(gameOverText,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			r.offsetY+r.totalGridHeight/2,
			fontSize, rl.Yellow)
	}

	rl.EndDrawing()
}

// drawHeading marks the head cell with a triangle pointing along the
// movement direction.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2

	switch dir {
	case types.RIGHT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.LEFT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.DOWN:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.UP:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, highScore int, history []int, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5 // Small gap from game area
	statsY := int32(10)

	// Stats background
	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight

	timeColor := rl.White
	if snap.TimeLeft <= 3 {
		timeColor = rl.Red
	}
	rl.DrawText(fmt.Sprintf("Time: %d", snap.TimeLeft), statsX, statsY, fontSize, timeColor)
	statsY += lineHeight

	rl.DrawText(fmt.Sprintf("Best: %d", highScore), statsX, statsY, fontSize, rl.Yellow)
	statsY += lineHeight

	rl.DrawText(fmt.Sprintf("Games: %d", len(history)), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight * 2

	// Session id, shortened to the first uuid group
	session := snap.SessionID
	if len(session) > 8 {
		session = session[:8]
	}
	rl.DrawText(fmt.Sprintf("Session %s", session), statsX, statsY, fontSize, rl.Gray)
}
