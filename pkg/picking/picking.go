// Package picking resolves pointer gestures into ray hits against an ordered
// list of pickable candidates.
package picking

import (
	"math"

	"github.com/philipparndt/roomplan/pkg/geometry"
)

// Epsilon is the distance below which two hits are considered equidistant.
// The earlier candidate wins such ties.
const Epsilon = 1e-9

// Pickable is anything a picking ray can hit
type Pickable interface {
	// IntersectRay returns the ray parameter of the nearest hit
	IntersectRay(ray geometry.Ray) (float64, bool)
}

// RayCaster builds a picking ray from normalized device coordinates
// (x and y in [-1, 1], +y up)
type RayCaster interface {
	RayFromNDC(x, y float64) geometry.Ray
}

// RayFunc adapts a plain function to RayCaster
type RayFunc func(x, y float64) geometry.Ray

// RayFromNDC calls f
func (f RayFunc) RayFromNDC(x, y float64) geometry.Ray {
	return f(x, y)
}

// Hit is the result of a successful pick
type Hit struct {
	Point    geometry.Vector3
	Target   Pickable
	Distance float64
	Index    int // position of Target in the candidate list
}

// Resolve casts a ray through the pointer position and returns the closest hit
func Resolve(x, y float64, caster RayCaster, candidates []Pickable) (Hit, bool) {
	return Cast(caster.RayFromNDC(x, y), candidates)
}

// Cast returns the closest candidate hit by ray. ok is false when nothing is hit.
func Cast(ray geometry.Ray, candidates []Pickable) (Hit, bool) {
	best := Hit{Distance: math.Inf(1), Index: -1}
	for i, candidate := range candidates {
		if candidate == nil {
			continue
		}
		t, ok := candidate.IntersectRay(ray)
		if !ok || !geometry.Finite(t) {
			continue
		}
		if t < best.Distance-Epsilon {
			best = Hit{Target: candidate, Distance: t, Index: i}
		}
	}
	if best.Index < 0 {
		return Hit{}, false
	}
	best.Point = ray.At(best.Distance)
	return best, true
}
