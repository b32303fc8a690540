//go:build raylib

package raylib

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"aqualand/internal/config"
	"aqualand/internal/game"
	"aqualand/internal/logging"
	"aqualand/internal/scene"
)

// Run opens the window and blocks until it is closed or rootCtx ends. It must
// be called from the main goroutine.
func Run(rootCtx context.Context, buildVersion string, layout config.Layout, logger *logging.Logger) error {
	if logger == nil {
		panic("raylib.Run: logger must not be nil")
	}
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	session := game.NewSession(layout, logger)
	p := painter{cornerSegments: int32(layout.CornerSegments)}
	in := mouse{}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(layout.Width), int32(layout.Height), layout.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(layout.TargetFPS))
	logger.Info("starting Aqua Land raylib window", logging.Field("version", buildVersion))

	var frames uint64
	for !rl.WindowShouldClose() {
		if err := rootCtx.Err(); err != nil {
			logger.Info("root context canceled; closing window", logging.Field("error", err))
			break
		}
		pos := in.Pointer()
		pres, _ := session.Step(in)
		hover := game.HitTest(layout, pos)

		rl.BeginDrawing()
		scene.Draw(p, layout, pres, hover)
		rl.EndDrawing()
		frames++
	}
	logger.Debug("raylib loop exited", logging.Field("frames", frames), logging.Field("level", session.Level()))
	return nil
}
