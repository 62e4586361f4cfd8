package geometry

import "math"

// parallelEpsilon is the smallest |normal·direction| treated as a crossing
const parallelEpsilon = 1e-12

// Ray is a half-line starting at Origin. Direction is kept normalized so the
// ray parameter t equals the distance travelled from Origin.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.AddScaled(r.Direction, t)
}

// IntersectPlane intersects the ray with the plane through point with the given
// normal. Planes are two-sided; hits behind the origin are rejected.
func (r Ray) IntersectPlane(point, normal Vector3) (float64, bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return 0, false
	}
	t := normal.Dot(point.Sub(r.Origin)) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectBox intersects the ray with an axis-aligned box using the slab
// method. A ray starting inside the box reports t = 0.
func (r Ray) IntersectBox(box BoundingBox) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < parallelEpsilon {
			// Parallel to this slab: must already lie between its planes
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
