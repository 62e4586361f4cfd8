// Package fixture holds placed fixtures and the registry that owns them.
package fixture

import (
	"math"

	"github.com/google/uuid"
	"github.com/philipparndt/roomplan/pkg/geometry"
)

// Fixture is a fixture instance in the room. It refers to its anchor surface
// only through Position and Orientation, never by handle.
type Fixture struct {
	ID          uuid.UUID
	TypeID      string
	Position    geometry.Vector3
	Orientation geometry.Vector3 // normal of the anchor surface, into the room
	HalfExtents geometry.Vector3 // silhouette half size, unrotated
}

// OrientedExtents returns the half extents turned to face Orientation. The
// silhouette's thin Z axis follows a wall normal that runs along X.
func (f *Fixture) OrientedExtents() geometry.Vector3 {
	e := f.HalfExtents
	if math.Abs(f.Orientation.X) > math.Abs(f.Orientation.Z) {
		e.X, e.Z = e.Z, e.X
	}
	return e
}

// Bounds returns the picking proxy of the fixture
func (f *Fixture) Bounds() geometry.BoundingBox {
	return geometry.BoxAround(f.Position, f.OrientedExtents())
}

// IntersectRay hits the fixture's bounding proxy
func (f *Fixture) IntersectRay(ray geometry.Ray) (float64, bool) {
	return ray.IntersectBox(f.Bounds())
}
