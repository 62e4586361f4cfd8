package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/google/uuid"
	"github.com/philipparndt/roomplan/pkg/fixture"
	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/philipparndt/roomplan/pkg/planner"
	"github.com/philipparndt/roomplan/pkg/room"
)

// Palette of the room drawing
var (
	BackgroundColor = color.RGBA{R: 0x0b, G: 0x11, B: 0x20, A: 0xff}
	FloorColor      = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	WallColor       = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
	SelectedColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Scene is everything Paint draws
type Scene struct {
	Surfaces []room.Surface
	Fixtures []fixture.Fixture
	Selected uuid.UUID // uuid.Nil when nothing is selected
	// ColorOf returns the display color of a fixture type
	ColorOf func(typeID string) color.RGBA
}

// SceneOf snapshots the drawable state of a session
func SceneOf(s *planner.Session) Scene {
	cat := s.Catalog()
	scene := Scene{
		Surfaces: s.Surfaces(),
		Fixtures: s.Fixtures(),
		ColorOf: func(typeID string) color.RGBA {
			t, err := cat.Get(typeID)
			if err != nil {
				return SelectedColor
			}
			return t.Color
		},
	}
	if sel, ok := s.Selected(); ok {
		scene.Selected = sel.ID
	}
	return scene
}

// Paint renders scene as seen by cam into a width x height image. The floor is
// filled, walls are drawn as outlines so fixtures behind them stay visible,
// fixtures are filled boxes shaded by face direction.
func Paint(cam *Camera, scene Scene, width, height int) *image.RGBA {
	f := newFrame(width, height, BackgroundColor)
	w, h := float64(width), float64(height)

	project := func(p geometry.Vector3) (vertex, bool) {
		if cam.Depth(p) <= nearPlane {
			return vertex{}, false
		}
		x, y, z := cam.Project(p, w, h)
		return vertex{x, y, z}, true
	}

	quad := func(corners [4]geometry.Vector3, col color.RGBA) {
		var v [4]vertex
		for i, c := range corners {
			pv, ok := project(c)
			if !ok {
				return
			}
			v[i] = pv
		}
		f.fillTriangle(v[0], v[1], v[2], col)
		f.fillTriangle(v[0], v[2], v[3], col)
	}

	outline := func(corners [4]geometry.Vector3, col color.RGBA) {
		for i := range corners {
			a, okA := project(corners[i])
			b, okB := project(corners[(i+1)%4])
			if okA && okB {
				f.drawLine(int(a.x), int(a.y), int(b.x), int(b.y), col)
			}
		}
	}

	for _, s := range scene.Surfaces {
		if s.Kind == room.Floor {
			quad(s.Corners(), FloorColor)
		}
	}

	light := geometry.NewVector3(0.5, 1, 0.7).Normalize()
	for _, fx := range scene.Fixtures {
		base := color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
		if scene.ColorOf != nil {
			base = scene.ColorOf(fx.TypeID)
		}
		for _, face := range boxFaces(fx.Bounds()) {
			quad(face.corners, shade(base, math.Max(0.35, face.normal.Dot(light))))
		}
		if fx.ID == scene.Selected && fx.ID != uuid.Nil {
			for _, face := range boxFaces(fx.Bounds()) {
				outline(face.corners, SelectedColor)
			}
		}
	}

	for _, s := range scene.Surfaces {
		if s.Kind == room.Wall {
			outline(s.Corners(), WallColor)
		}
	}

	return f.img
}

type boxFace struct {
	normal  geometry.Vector3
	corners [4]geometry.Vector3
}

// boxFaces returns the six faces of an axis-aligned box
func boxFaces(b geometry.BoundingBox) [6]boxFace {
	lo, hi := b.Min, b.Max
	p := func(x, y, z float64) geometry.Vector3 { return geometry.NewVector3(x, y, z) }
	return [6]boxFace{
		{p(-1, 0, 0), [4]geometry.Vector3{p(lo.X, lo.Y, lo.Z), p(lo.X, lo.Y, hi.Z), p(lo.X, hi.Y, hi.Z), p(lo.X, hi.Y, lo.Z)}},
		{p(1, 0, 0), [4]geometry.Vector3{p(hi.X, lo.Y, lo.Z), p(hi.X, hi.Y, lo.Z), p(hi.X, hi.Y, hi.Z), p(hi.X, lo.Y, hi.Z)}},
		{p(0, -1, 0), [4]geometry.Vector3{p(lo.X, lo.Y, lo.Z), p(hi.X, lo.Y, lo.Z), p(hi.X, lo.Y, hi.Z), p(lo.X, lo.Y, hi.Z)}},
		{p(0, 1, 0), [4]geometry.Vector3{p(lo.X, hi.Y, lo.Z), p(lo.X, hi.Y, hi.Z), p(hi.X, hi.Y, hi.Z), p(hi.X, hi.Y, lo.Z)}},
		{p(0, 0, -1), [4]geometry.Vector3{p(lo.X, lo.Y, lo.Z), p(lo.X, hi.Y, lo.Z), p(hi.X, hi.Y, lo.Z), p(hi.X, lo.Y, lo.Z)}},
		{p(0, 0, 1), [4]geometry.Vector3{p(lo.X, lo.Y, hi.Z), p(hi.X, lo.Y, hi.Z), p(hi.X, hi.Y, hi.Z), p(lo.X, hi.Y, hi.Z)}},
	}
}

func shade(c color.RGBA, intensity float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*intensity))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
