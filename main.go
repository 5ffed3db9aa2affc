package main

import (
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/loop"
	"gridsnake/ui"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	stateMgr, err := manager.NewStateManager(cfg.DataDir)
	if err != nil {
		slog.Error("load high score", "error", err)
		os.Exit(1)
	}

	g, err := game.New(game.Config{GridSize: cfg.GridSize, Seed: cfg.Seed})
	if err != nil {
		slog.Error("create game", "error", err)
		os.Exit(1)
	}

	slog.Info("starting",
		"grid", cfg.GridSize,
		"move_interval", cfg.MoveInterval,
		"countdown_interval", cfg.CountdownInterval,
		"high_score", stateMgr.HighScore())

	rl.InitWindow(800, 600, "Grid Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	input := newGestureTracker()

	// Movement and countdown run on independent cadences; both ticks are
	// no-ops once the session is over.
	now := time.Now()
	moveTicker := loop.NewTicker(cfg.MoveInterval, now)
	countdownTicker := loop.NewTicker(cfg.CountdownInterval, now)

	wasOver := false
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if dir := input.Poll(); dir != types.NONE {
			g.RequestDirectionChange(dir)
		}

		now := time.Now()
		if moveTicker.Due(now) {
			g.TickMove()
		}
		if countdownTicker.Due(now) {
			g.TickCountdown()
		}

		snap := g.Snapshot()

		// High score is compared and persisted once, on the edge into
		// game over.
		if snap.Over && !wasOver {
			record, err := stateMgr.RecordScore(snap.Score)
			if err != nil {
				slog.Warn("save high score", "error", err)
			}
			slog.Info("session over",
				"session", snap.SessionID,
				"score", snap.Score,
				"new_record", record)
		}
		wasOver = snap.Over

		if snap.Over && rl.IsKeyPressed(rl.KeyR) {
			g.Reset()
			wasOver = false
			snap = g.Snapshot()
		}

		renderer.Draw(snap, stateMgr.HighScore(), stateMgr.ScoreHistory())
	}
}
