package room

import (
	"testing"

	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorIntersectFromAbove(t *testing.T) {
	floor := NewRegistry(Default).Floor()

	ray := geometry.NewRay(geometry.NewVector3(4.99, 5, 3.99), geometry.NewVector3(0, -1, 0))
	tHit, ok := floor.IntersectRay(ray)
	require.True(t, ok)
	assert.InDelta(t, 5.0, tHit, 1e-12)

	below := geometry.NewRay(geometry.NewVector3(0, -1, 0), geometry.NewVector3(0, 1, 0))
	_, ok = floor.IntersectRay(below)
	assert.False(t, ok, "floor is not pickable from below")

	outside := geometry.NewRay(geometry.NewVector3(6, 5, 0), geometry.NewVector3(0, -1, 0))
	_, ok = floor.IntersectRay(outside)
	assert.False(t, ok, "hit beyond the floor rectangle")
}

func TestWallIntersectBothSides(t *testing.T) {
	back := NewRegistry(Default).Walls()[WallBack]

	inside := geometry.NewRay(geometry.NewVector3(1, 0.5, 0), geometry.NewVector3(0, 0, -1))
	tHit, ok := back.IntersectRay(inside)
	require.True(t, ok)
	assert.True(t, inside.At(tHit).ApproxEqual(geometry.NewVector3(1, 0.5, -4), 1e-12))

	outside := geometry.NewRay(geometry.NewVector3(1, 0.5, -10), geometry.NewVector3(0, 0, 1))
	_, ok = back.IntersectRay(outside)
	assert.True(t, ok)

	tooHigh := geometry.NewRay(geometry.NewVector3(1, 3.5, 0), geometry.NewVector3(0, 0, -1))
	_, ok = back.IntersectRay(tooHigh)
	assert.False(t, ok)
}

func TestSurfaceContainsCorners(t *testing.T) {
	for _, s := range DeriveSurfaces(Default) {
		for _, c := range s.Corners() {
			assert.True(t, s.Contains(c, 1e-9), "%s corner %v", s.Name, c)
		}
		assert.True(t, Default.Bounds().Contains(s.Center))
	}
}
