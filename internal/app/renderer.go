package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/fixture"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/philipparndt/roomplan/pkg/viewer"
)

var (
	wallFill    = rl.NewColor(0x94, 0xa3, 0xb8, 40)
	wallEdge    = rl.NewColor(0x94, 0xa3, 0xb8, 255)
	gridColor   = rl.NewColor(0x47, 0x55, 0x69, 255)
	selectColor = rl.White
)

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// drawRoom draws the floor, the walls and every placed fixture. Must be called
// between BeginMode3D and EndMode3D.
func (app *App) drawRoom() {
	surfaces := app.session.Surfaces()
	for _, s := range surfaces {
		if s.Kind == room.Floor {
			app.drawFloor(s)
		}
	}

	sel, hasSel := app.session.Selected()
	for _, f := range app.session.Fixtures() {
		app.drawFixture(f)
		if hasSel && f.ID == sel.ID {
			b := f.Bounds()
			rl.DrawCubeWiresV(toRL(b.Center()), toRL(b.Size().Add(b.Size().Mul(0.1))), selectColor)
		}
	}

	// Walls last so the transparent fill blends over the fixtures behind them
	if app.View.showWalls {
		for _, s := range surfaces {
			if s.Kind == room.Wall {
				drawWall(s)
			}
		}
	}
}

func (app *App) drawFloor(s room.Surface) {
	rl.DrawPlane(toRL(s.Center), rl.Vector2{X: float32(s.Width), Y: float32(s.Height)}, rlColor(viewer.FloorColor))

	// One meter grid
	halfW, halfD := float32(s.Width/2), float32(s.Height/2)
	for x := -halfW + 1; x < halfW; x++ {
		rl.DrawLine3D(rl.Vector3{X: x, Y: 0.001, Z: -halfD}, rl.Vector3{X: x, Y: 0.001, Z: halfD}, gridColor)
	}
	for z := -halfD + 1; z < halfD; z++ {
		rl.DrawLine3D(rl.Vector3{X: -halfW, Y: 0.001, Z: z}, rl.Vector3{X: halfW, Y: 0.001, Z: z}, gridColor)
	}
}

// drawWall draws both windings so the wall is visible from either side
func drawWall(s room.Surface) {
	c := s.Corners()
	a, b, cc, d := toRL(c[0]), toRL(c[1]), toRL(c[2]), toRL(c[3])

	rl.DrawTriangle3D(a, b, cc, wallFill)
	rl.DrawTriangle3D(a, cc, d, wallFill)
	rl.DrawTriangle3D(a, cc, b, wallFill)
	rl.DrawTriangle3D(a, d, cc, wallFill)

	for i := range c {
		rl.DrawLine3D(toRL(c[i]), toRL(c[(i+1)%4]), wallEdge)
	}
}

func (app *App) drawFixture(f fixture.Fixture) {
	t, err := app.session.Catalog().Get(f.TypeID)
	if err != nil {
		return
	}
	col := rlColor(t.Color)
	pos := toRL(f.Position)

	switch t.Silhouette.Shape {
	case catalog.ShapeSphere:
		rl.DrawSphere(pos, float32(t.Silhouette.Radius), col)
	case catalog.ShapeCylinder:
		s := t.Silhouette
		base := pos
		base.Y -= float32(s.Height / 2)
		rl.DrawCylinder(base, float32(s.RadiusTop), float32(s.RadiusBottom), float32(s.Height), 24, col)
	default:
		size := f.OrientedExtents().Mul(2)
		rl.DrawCubeV(pos, toRL(size), col)
		rl.DrawCubeWiresV(pos, toRL(size), rl.Fade(rl.Black, 0.4))
	}
}

// drawLabels draws type names above fixtures in screen space
func (app *App) drawLabels() {
	for _, f := range app.session.Fixtures() {
		t, err := app.session.Catalog().Get(f.TypeID)
		if err != nil {
			continue
		}
		anchor := f.Position
		anchor.Y += f.OrientedExtents().Y + 0.1
		if app.Camera.view.Depth(anchor) <= 0 {
			continue
		}
		p := rl.GetWorldToScreen(toRL(anchor), app.Camera.camera)
		size := rl.MeasureTextEx(app.UI.font, t.Name, 14, 1)
		rl.DrawTextEx(app.UI.font, t.Name, rl.Vector2{X: p.X - size.X/2, Y: p.Y - size.Y}, 14, 1, rl.LightGray)
	}
}
