package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/roomplan/pkg/planner"
)

// RoomView is a fyne widget that draws a planner session and forwards pointer
// gestures to it. Primary press places or selects, dragging moves the
// selected fixture, dragging empty space or with the secondary button orbits.
type RoomView struct {
	widget.BaseWidget
	session  *planner.Session
	camera   *Camera
	orbiting bool
	onChange func()
}

// NewRoomView creates a view of session
func NewRoomView(session *planner.Session) *RoomView {
	r := &RoomView{
		session: session,
		camera:  NewCamera(session.Room()),
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetOnChange sets a callback run after every gesture that changed the scene
func (r *RoomView) SetOnChange(callback func()) {
	r.onChange = callback
}

// Camera returns the view camera
func (r *RoomView) Camera() *Camera {
	return r.camera
}

// Reframe points the camera at the session's current room
func (r *RoomView) Reframe() {
	r.camera.Frame(r.session.Room())
	r.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (r *RoomView) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(r.paint)
	return &roomViewRenderer{
		view:    r,
		raster:  raster,
		objects: []fyne.CanvasObject{raster},
	}
}

func (r *RoomView) paint(width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return Paint(r.camera, SceneOf(r.session), width, height)
}

func (r *RoomView) ndc(pos fyne.Position) (float64, float64) {
	size := r.Size()
	return ScreenToNDC(float64(pos.X), float64(pos.Y), float64(size.Width), float64(size.Height))
}

func (r *RoomView) changed() {
	r.Refresh()
	if r.onChange != nil {
		r.onChange()
	}
}

// MouseDown handles press events for placement and selection
func (r *RoomView) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		r.orbiting = true
		return
	}
	x, y := r.ndc(event.Position)
	if r.session.PointerDown(x, y, r.camera) == planner.ActionNone {
		r.orbiting = true
		return
	}
	r.changed()
}

// MouseUp ends a drag or orbit
func (r *RoomView) MouseUp(*desktop.MouseEvent) {
	r.session.PointerUp()
	r.orbiting = false
}

// Dragged moves the dragged fixture, or orbits the camera
func (r *RoomView) Dragged(event *fyne.DragEvent) {
	if r.session.Dragging() {
		x, y := r.ndc(event.Position)
		if r.session.PointerMove(x, y, r.camera) {
			r.changed()
		}
		return
	}
	if r.orbiting {
		r.camera.Rotate(float64(event.Dragged.DY)*0.01, float64(-event.Dragged.DX)*0.01)
		r.Refresh()
	}
}

// DragEnd handles the end of a drag event
func (r *RoomView) DragEnd() {
	r.session.PointerUp()
	r.orbiting = false
}

// Scrolled handles scroll events for zooming
func (r *RoomView) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Refresh()
}

// roomViewRenderer implements fyne.WidgetRenderer
type roomViewRenderer struct {
	view    *RoomView
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (m *roomViewRenderer) Layout(size fyne.Size) {
	m.view.camera.SetViewport(float64(size.Width), float64(size.Height))
	m.raster.Resize(size)
}

func (m *roomViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *roomViewRenderer) Refresh() {
	canvas.Refresh(m.raster)
}

func (m *roomViewRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *roomViewRenderer) Destroy() {}
