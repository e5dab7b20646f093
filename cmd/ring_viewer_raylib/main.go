// cmd/ring_viewer_raylib/main.go
package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"go-ring-escape/internal/app"
	"go-ring-escape/internal/config"
	"go-ring-escape/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Standalone level viewer: runs the simulation headless and draws it
// with raylib. Handy for eyeballing gate layouts at a given seed
// without the full game shell. R reseeds, SPACE pauses.

const radToDeg = 180 / math.Pi

func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Ring Viewer | R - Reseed, Space - Pause")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	centerX := float32(config.ScreenWidth) / 2
	centerY := float32(config.ScreenHeight) / 2
	paused := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			cfg.Seed++
			game, err = app.NewGame(cfg)
			if err != nil {
				log.Fatal(err)
			}
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
			if paused {
				game.HandleCommand(app.Command{Type: app.CmdPause})
			} else {
				game.HandleCommand(app.Command{Type: app.CmdResume})
			}
		}

		game.Update(float64(rl.GetFrameTime()))
		snap := game.Snapshot()

		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(config.BackgroundColor))

		for i := len(snap.Gates) - 1; i >= 0; i-- {
			g := snap.Gates[i]
			clr := colorToRL(render.RingColor(g.Index, len(snap.Gates), config.GateColors, config.GateColorMode))
			gapEndDeg := float32((g.GapStart + g.GapWidth) * radToDeg)
			solidSpanDeg := float32((2*math.Pi - g.GapWidth) * radToDeg)
			rl.DrawRing(rl.NewVector2(centerX, centerY),
				float32(g.CenterRadius-g.Thickness/2), float32(g.CenterRadius+g.Thickness/2),
				gapEndDeg, gapEndDeg+solidSpanDeg, 64, clr)
		}

		for _, p := range snap.Particles {
			c := colorToRL(render.Fade(p.Color, p.Alpha))
			rl.DrawCircleV(rl.NewVector2(centerX+float32(p.Pos.X), centerY+float32(p.Pos.Y)), float32(p.Size), c)
		}

		rl.DrawCircleV(rl.NewVector2(centerX+float32(snap.BallPos.X), centerY+float32(snap.BallPos.Y)),
			float32(snap.BallRadius), colorToRL(config.BallColor))

		rl.DrawText(fmt.Sprintf("seed %d  cleared %d  difficulty %.2f", cfg.Seed, snap.Cleared, snap.Difficulty),
			12, 12, 18, rl.RayWhite)

		rl.EndDrawing()
	}
}
