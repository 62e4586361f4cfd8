// Package app is the raylib window of the room planner.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/roomplan/internal/config"
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/planner"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/philipparndt/roomplan/pkg/viewer"
	"github.com/philipparndt/roomplan/pkg/watcher"
	"github.com/rs/zerolog"
)

// Options configure Run
type Options struct {
	Config     config.Config
	ConfigPath string // watched and re-read on R; empty disables both
	Logger     zerolog.Logger
}

type App struct {
	session     *planner.Session
	log         zerolog.Logger
	Camera      CameraState
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	r, err := cfg.RoomFrom(room.Default)
	if err != nil {
		opts.Logger.Warn().Err(err).Msg("invalid room in config")
	}

	session, err := planner.New(catalog.Default(), r,
		planner.WithLogger(opts.Logger),
		planner.WithTool(cfg.Planner.Tool),
	)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	app := &App{
		session:     session,
		log:         opts.Logger,
		View:        ViewSettings{showWalls: true, showLabels: true, config: cfg},
		Interaction: InteractionState{hoveredCard: -1},
	}
	app.FileWatch.configPath = opts.ConfigPath

	cam := viewer.NewCamera(session.Room())
	cam.FOV = cfg.FOV()
	app.Camera.view = cam

	session.OnStatus(func(st planner.Status) {
		if st.Kind == planner.StatusRebuilt {
			app.FileWatch.needsRefit.Store(true)
		}
	})

	if err := app.setupFileWatcher(); err != nil {
		app.log.Warn().Err(err).Msg("auto-reload will not be available")
	} else if app.FileWatch.fileWatcher != nil {
		defer app.FileWatch.fileWatcher.Close()
	}

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(1400, 900, "roomplan")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Backspace and Delete edit the plan, Escape must not quit

	app.UI.font = rl.GetFontDefault()
	app.layoutCards()
	app.refitCamera()

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && (rl.IsKeyPressed(rl.KeyC) || rl.IsKeyPressed(rl.KeyQ)) {
			break
		}

		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadConfig()
		}
		if app.FileWatch.needsRefit.CompareAndSwap(true, false) {
			app.refitCamera()
		}

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rlColor(viewer.BackgroundColor))

		rl.BeginMode3D(app.Camera.camera)
		app.drawRoom()
		rl.EndMode3D()

		if app.View.showLabels {
			app.drawLabels()
		}
		app.drawUI()

		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

// setupFileWatcher watches the config file so edits rebuild the room
func (app *App) setupFileWatcher() error {
	if app.FileWatch.configPath == "" {
		return nil
	}
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, app.log)
	if err != nil {
		return err
	}
	if err := fw.Watch([]string{app.FileWatch.configPath}, func(string) {
		app.FileWatch.needsReload.Store(true)
	}); err != nil {
		fw.Close()
		return err
	}
	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.log.Info().Str("file", app.FileWatch.configPath).Msg("watching config")
	return nil
}

// reloadConfig re-reads the config file and rebuilds the room from it. A file
// that fails to parse leaves the room untouched.
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.FileWatch.configPath)
	if err != nil {
		app.log.Error().Err(err).Msg("reload config")
		app.UI.lastError = err.Error()
		return
	}
	app.View.config = cfg
	app.Camera.view.FOV = cfg.FOV()

	if _, err := cfg.ApplyTo(app.session); err != nil {
		app.log.Warn().Err(err).Msg("config applied with errors")
		app.UI.lastError = err.Error()
		return
	}
	app.UI.lastError = ""
}
