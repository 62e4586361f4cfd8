package picking

import (
	"testing"

	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plane is a two-sided infinite plane
type plane struct {
	point, normal geometry.Vector3
}

func (p plane) IntersectRay(ray geometry.Ray) (float64, bool) {
	return ray.IntersectPlane(p.point, p.normal)
}

type never struct{}

func (never) IntersectRay(geometry.Ray) (float64, bool) { return 0, false }

func downRay(x, y float64) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(x, 10, y), geometry.NewVector3(0, -1, 0))
}

func TestCastPicksClosest(t *testing.T) {
	far := plane{point: geometry.NewVector3(0, 0, 0), normal: geometry.NewVector3(0, 1, 0)}
	near := plane{point: geometry.NewVector3(0, 4, 0), normal: geometry.NewVector3(0, 1, 0)}

	hit, ok := Cast(downRay(1, 2), []Pickable{far, near})
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.Equal(t, near, hit.Target)
	assert.InDelta(t, 6.0, hit.Distance, 1e-12)
	assert.True(t, hit.Point.ApproxEqual(geometry.NewVector3(1, 4, 2), 1e-12))
}

func TestCastTieGoesToEarlierCandidate(t *testing.T) {
	first := plane{point: geometry.NewVector3(0, 0, 0), normal: geometry.NewVector3(0, 1, 0)}
	second := plane{point: geometry.NewVector3(5, 0, 5), normal: geometry.NewVector3(0, 1, 0)}

	hit, ok := Cast(downRay(0, 0), []Pickable{first, second})
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)

	hit, ok = Cast(downRay(0, 0), []Pickable{second, first})
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)
	assert.Equal(t, second, hit.Target)
}

func TestCastNoIntersection(t *testing.T) {
	hit, ok := Cast(downRay(0, 0), []Pickable{never{}, nil})
	assert.False(t, ok)
	assert.Equal(t, Hit{}, hit)

	_, ok = Cast(downRay(0, 0), nil)
	assert.False(t, ok)
}

func TestResolveUsesCaster(t *testing.T) {
	floor := plane{point: geometry.NewVector3(0, 0, 0), normal: geometry.NewVector3(0, 1, 0)}

	var gotX, gotY float64
	caster := RayFunc(func(x, y float64) geometry.Ray {
		gotX, gotY = x, y
		return downRay(x, y)
	})

	hit, ok := Resolve(0.25, -0.5, caster, []Pickable{floor})
	require.True(t, ok)
	assert.Equal(t, 0.25, gotX)
	assert.Equal(t, -0.5, gotY)
	assert.True(t, hit.Point.ApproxEqual(geometry.NewVector3(0.25, 0, -0.5), 1e-12))
}
