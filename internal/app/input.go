package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/roomplan/pkg/planner"
)

// resizeStep is how much one key press grows or shrinks a room dimension
const resizeStep = 0.5

var toolKeys = []int32{
	rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
	rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
}

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	app.Interaction.hoveredCard = app.cardAt(mouse)
	overPanel := rl.CheckCollisionPointRec(mouse, app.UI.panel)

	app.handleKeys()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mouse
		app.Interaction.mouseMoved = false
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

		switch {
		case app.Interaction.hoveredCard >= 0:
			app.selectTool(app.Interaction.hoveredCard)
		case overPanel:
		case shiftPressed:
			app.Interaction.isPanning = true
		default:
			x, y := mouseNDC(mouse)
			if app.session.PointerDown(x, y, app.caster()) == planner.ActionNone {
				app.Interaction.isOrbiting = true
			}
		}
	}

	delta := rl.GetMouseDelta()
	moved := delta.X != 0 || delta.Y != 0

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && moved {
		app.Interaction.mouseMoved = true
		switch {
		case app.session.Dragging():
			x, y := mouseNDC(mouse)
			app.session.PointerMove(x, y, app.caster())
		case app.Interaction.isPanning:
			app.Camera.view.Pan(float64(delta.X), float64(delta.Y))
		case app.Interaction.isOrbiting:
			app.orbit(delta)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.session.PointerUp()
		app.Interaction.isPanning = false
		app.Interaction.isOrbiting = false
	}

	// Right button always orbits, middle button always pans
	if rl.IsMouseButtonDown(rl.MouseRightButton) && moved {
		app.orbit(delta)
	}
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) && moved {
		app.Camera.view.Pan(float64(delta.X), float64(delta.Y))
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		app.Camera.view.Zoom(float64(-wheel) * 0.05)
	}
}

func (app *App) orbit(delta rl.Vector2) {
	app.Camera.view.Rotate(float64(delta.Y)*0.01, float64(-delta.X)*0.01)
}

func (app *App) handleKeys() {
	for i, key := range toolKeys {
		if rl.IsKeyPressed(key) {
			app.selectTool(i)
		}
	}

	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		app.session.DeleteSelected()
	}

	switch {
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		app.resize(-resizeStep, 0, 0)
	case rl.IsKeyPressed(rl.KeyRightBracket):
		app.resize(resizeStep, 0, 0)
	case rl.IsKeyPressed(rl.KeyMinus):
		app.resize(0, -resizeStep, 0)
	case rl.IsKeyPressed(rl.KeyEqual):
		app.resize(0, resizeStep, 0)
	case rl.IsKeyPressed(rl.KeyComma):
		app.resize(0, 0, -resizeStep)
	case rl.IsKeyPressed(rl.KeyPeriod):
		app.resize(0, 0, resizeStep)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		app.reloadConfig()
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWalls = !app.View.showWalls
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.View.showLabels = !app.View.showLabels
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}
}

// selectTool picks the i-th catalog entry, ignoring indexes past the end
func (app *App) selectTool(i int) {
	types := app.session.Catalog().All()
	if i < 0 || i >= len(types) {
		return
	}
	if err := app.session.SelectTool(types[i].ID); err != nil {
		app.log.Error().Err(err).Msg("select tool")
	}
}

// resize grows the room by the given deltas and rebuilds it
func (app *App) resize(dw, dd, dh float64) {
	r := app.session.Room()
	app.rebuild(r.Width+dw, r.Depth+dd, r.WallHeight+dh)
}

func (app *App) rebuild(width, depth, wallHeight float64) {
	if _, err := app.session.Rebuild(width, depth, wallHeight); err != nil {
		app.UI.lastError = err.Error()
		return
	}
	app.UI.lastError = ""
}

// cardAt returns the catalog card under pos, or -1
func (app *App) cardAt(pos rl.Vector2) int {
	for i, card := range app.UI.cards {
		if rl.CheckCollisionPointRec(pos, card) {
			return i
		}
	}
	return -1
}
