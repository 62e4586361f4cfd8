package room

import (
	"math"

	"github.com/philipparndt/roomplan/pkg/geometry"
)

// boundsEpsilon widens surface rectangles so hits on shared edges count
const boundsEpsilon = 1e-9

// Kind distinguishes the floor from the walls
type Kind int

const (
	Floor Kind = iota
	Wall
)

func (k Kind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	}
	return "unknown"
}

// Wall indices, in the order the registry lists them
const (
	WallBack = iota
	WallFront
	WallLeft
	WallRight
)

var wallNames = [4]string{"back", "front", "left", "right"}

// Surface is a rectangle of the room. U and V span the rectangle, Width runs
// along U and Height along V. Normal points into the room interior.
type Surface struct {
	Kind   Kind
	Index  int // wall index, 0 for the floor
	Name   string
	Center geometry.Vector3
	Normal geometry.Vector3
	U, V   geometry.Vector3
	Width  float64
	Height float64
}

// InwardNormal returns the unit vector from the surface into the room
func (s Surface) InwardNormal() geometry.Vector3 {
	return s.Normal
}

// OutwardNormal returns the unit vector pointing away from the room center
func (s Surface) OutwardNormal() geometry.Vector3 {
	return s.Normal.Negate()
}

// IntersectRay hits the surface rectangle. Walls are two-sided so they can be
// picked through from outside the room; the floor only from above.
func (s Surface) IntersectRay(ray geometry.Ray) (float64, bool) {
	if s.Kind == Floor && ray.Direction.Dot(s.Normal) >= 0 {
		return 0, false
	}
	t, ok := ray.IntersectPlane(s.Center, s.Normal)
	if !ok {
		return 0, false
	}
	local := ray.At(t).Sub(s.Center)
	if math.Abs(local.Dot(s.U)) > s.Width/2+boundsEpsilon ||
		math.Abs(local.Dot(s.V)) > s.Height/2+boundsEpsilon {
		return 0, false
	}
	return t, true
}

// Contains reports whether point lies on the surface rectangle within eps
func (s Surface) Contains(point geometry.Vector3, eps float64) bool {
	local := point.Sub(s.Center)
	return math.Abs(local.Dot(s.Normal)) <= eps &&
		math.Abs(local.Dot(s.U)) <= s.Width/2+eps &&
		math.Abs(local.Dot(s.V)) <= s.Height/2+eps
}

// Corners returns the rectangle corners in winding order, facing Normal
func (s Surface) Corners() [4]geometry.Vector3 {
	u := s.U.Mul(s.Width / 2)
	v := s.V.Mul(s.Height / 2)
	return [4]geometry.Vector3{
		s.Center.Sub(u).Sub(v),
		s.Center.Add(u).Sub(v),
		s.Center.Add(u).Add(v),
		s.Center.Sub(u).Add(v),
	}
}

// DeriveSurfaces returns the floor followed by the back, front, left and right
// walls. The result depends only on r. Every surface has U x V == Normal.
func DeriveSurfaces(r Room) []Surface {
	w, d, h := r.Width, r.Depth, r.WallHeight
	up := geometry.NewVector3(0, 1, 0)

	surfaces := []Surface{{
		Kind:   Floor,
		Name:   "floor",
		Center: geometry.NewVector3(0, 0, 0),
		Normal: up,
		U:      geometry.NewVector3(1, 0, 0),
		V:      geometry.NewVector3(0, 0, -1),
		Width:  w,
		Height: d,
	}}

	walls := [4]struct {
		center geometry.Vector3
		normal geometry.Vector3
		length float64
	}{
		WallBack:  {geometry.NewVector3(0, h/2, -d/2), geometry.NewVector3(0, 0, 1), w},
		WallFront: {geometry.NewVector3(0, h/2, d/2), geometry.NewVector3(0, 0, -1), w},
		WallLeft:  {geometry.NewVector3(-w/2, h/2, 0), geometry.NewVector3(1, 0, 0), d},
		WallRight: {geometry.NewVector3(w/2, h/2, 0), geometry.NewVector3(-1, 0, 0), d},
	}
	for i, wall := range walls {
		surfaces = append(surfaces, Surface{
			Kind:   Wall,
			Index:  i,
			Name:   wallNames[i],
			Center: wall.center,
			Normal: wall.normal,
			U:      up.Cross(wall.normal),
			V:      up,
			Width:  wall.length,
			Height: h,
		})
	}
	return surfaces
}
