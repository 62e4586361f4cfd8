package viewer

import (
	"image/color"
	"testing"

	"github.com/google/uuid"
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/fixture"
	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/philipparndt/roomplan/pkg/picking"
	"github.com/philipparndt/roomplan/pkg/planner"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaintDrawsFloorAndFixture(t *testing.T) {
	width, height := 400, 300
	cam := NewCamera(room.Default)
	cam.SetViewport(float64(width), float64(height))

	light := fixture.Fixture{
		ID:          uuid.New(),
		TypeID:      "ceilingLight",
		Position:    geometry.NewVector3(0, 2.8, 0),
		Orientation: geometry.NewVector3(0, 1, 0),
		HalfExtents: geometry.NewVector3(0.18, 0.18, 0.18),
	}
	scene := Scene{
		Surfaces: room.DeriveSurfaces(room.Default),
		Fixtures: []fixture.Fixture{light},
		ColorOf: func(string) color.RGBA {
			return color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
		},
	}

	img := Paint(cam, scene, width, height)
	require.Equal(t, width, img.Bounds().Dx())
	require.Equal(t, height, img.Bounds().Dy())

	fx, fy, _ := cam.Project(geometry.NewVector3(2, 0, 2), float64(width), float64(height))
	assert.Equal(t, FloorColor, img.RGBAAt(int(fx), int(fy)))

	lx, ly, _ := cam.Project(light.Position, float64(width), float64(height))
	got := img.RGBAAt(int(lx), int(ly))
	assert.NotEqual(t, FloorColor, got)
	assert.NotEqual(t, BackgroundColor, got)

	assert.Equal(t, BackgroundColor, img.RGBAAt(0, 0))
}

func TestPaintSkipsGeometryBehindCamera(t *testing.T) {
	cam := NewCamera(room.Default)
	cam.Position = geometry.NewVector3(0, 1.5, 0)
	cam.Target = geometry.NewVector3(0, 1.5, -1)

	img := Paint(cam, Scene{Surfaces: room.DeriveSurfaces(room.Default)}, 64, 48)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestFillTriangleDepthTest(t *testing.T) {
	f := newFrame(10, 10, BackgroundColor)
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	f.fillTriangle(vertex{0, 0, 1}, vertex{9, 0, 1}, vertex{0, 9, 1}, red)
	f.fillTriangle(vertex{0, 0, 2}, vertex{9, 0, 2}, vertex{0, 9, 2}, blue)

	assert.Equal(t, red, f.img.RGBAAt(1, 1), "farther triangle must not overwrite")
	assert.Equal(t, BackgroundColor, f.img.RGBAAt(9, 9))
}

func TestSceneOfSnapshotsSession(t *testing.T) {
	s, err := planner.New(catalog.Default(), room.Default)
	require.NoError(t, err)

	down := picking.RayFunc(func(x, y float64) geometry.Ray {
		return geometry.NewRay(geometry.NewVector3(1, 5, 1), geometry.NewVector3(0, -1, 0))
	})
	require.Equal(t, planner.ActionPlaced, s.PointerDown(0, 0, down))

	scene := SceneOf(s)
	assert.Len(t, scene.Surfaces, 5)
	require.Len(t, scene.Fixtures, 1)
	assert.Equal(t, scene.Fixtures[0].ID, scene.Selected)
	assert.Equal(t, catalog.Default().MustGet("receptacle120").Color, scene.ColorOf("receptacle120"))
	assert.Equal(t, SelectedColor, scene.ColorOf("unknown"))

	require.True(t, s.DeleteSelected())
	assert.Equal(t, uuid.Nil, SceneOf(s).Selected)
}
