package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/philipparndt/roomplan/pkg/picking"
	"github.com/philipparndt/roomplan/pkg/viewer"
)

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRL(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

// refitCamera re-targets the camera on the current room and remembers the
// pose for resetCameraView
func (app *App) refitCamera() {
	app.Camera.view.Frame(app.session.Room())
	app.Camera.defaultPos = toRL(app.Camera.view.Position)
	app.Camera.defaultTarget = toRL(app.Camera.view.Target)
}

// resetCameraView resets the camera to the pose of the last refit
func (app *App) resetCameraView() {
	app.Camera.view.Position = fromRL(app.Camera.defaultPos)
	app.Camera.view.Target = fromRL(app.Camera.defaultTarget)
	app.Camera.view.Frame(app.session.Room())
}

// setCameraTopView looks straight down onto the floor
func (app *App) setCameraTopView() {
	app.Camera.view.RotationX = math.Pi/2 - 0.1
	app.Camera.view.RotationY = 0
	app.Camera.view.UpdatePosition()
}

// setCameraFrontView looks at the back wall from the front
func (app *App) setCameraFrontView() {
	app.Camera.view.RotationX = 0.2
	app.Camera.view.RotationY = 0
	app.Camera.view.UpdatePosition()
}

// updateCamera copies the orbit camera into the raylib camera
func (app *App) updateCamera() {
	width, height := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	app.Camera.view.SetViewport(width, height)

	app.Camera.camera.Position = toRL(app.Camera.view.Position)
	app.Camera.camera.Target = toRL(app.Camera.view.Target)
	app.Camera.camera.Up = toRL(app.Camera.view.Up)
	app.Camera.camera.Fovy = float32(app.Camera.view.FOV * 180 / math.Pi)
	app.Camera.camera.Projection = rl.CameraPerspective
}

// caster builds picking rays from the same camera the frame is drawn with
func (app *App) caster() picking.RayCaster {
	return app.Camera.view
}

// mouseNDC converts the mouse position to normalized device coordinates
func mouseNDC(pos rl.Vector2) (float64, float64) {
	return viewer.ScreenToNDC(float64(pos.X), float64(pos.Y),
		float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}
