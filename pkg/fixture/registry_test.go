package fixture

import (
	"testing"

	"github.com/google/uuid"
	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/philipparndt/roomplan/pkg/picking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(x, y, z float64) *Fixture {
	return &Fixture{
		ID:          uuid.New(),
		TypeID:      "receptacle120",
		Position:    geometry.NewVector3(x, y, z),
		Orientation: geometry.NewVector3(0, 0, 1),
		HalfExtents: geometry.NewVector3(0.14, 0.14, 0.05),
	}
}

func TestRegistryAddRemove(t *testing.T) {
	reg := NewRegistry()
	a, b := newFixture(0, 1, 0), newFixture(1, 1, 0)
	reg.Add(a)
	reg.Add(b)
	require.Equal(t, 2, reg.Len())

	assert.True(t, reg.RemoveSelected(a))
	assert.False(t, reg.RemoveSelected(a), "already removed")
	assert.Equal(t, 1, reg.Len())
	all := reg.All()
	require.Len(t, all, 1)
	assert.Same(t, b, all[0])
}

func TestRegistryRemoveNilIsNoop(t *testing.T) {
	reg := NewRegistry()
	reg.Add(newFixture(0, 1, 0))

	assert.False(t, reg.RemoveSelected(nil))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryClear(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 3; i++ {
		reg.Add(newFixture(float64(i), 1, 0))
	}

	assert.Equal(t, 3, reg.Clear())
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.All())
	assert.Empty(t, reg.Pickables())
}

func TestSnapshotIsDetached(t *testing.T) {
	reg := NewRegistry()
	f := newFixture(0, 1, 0)
	reg.Add(f)

	snap := reg.Snapshot()
	snap[0].Position.X = 42
	assert.Equal(t, 0.0, f.Position.X)
}

func TestFixturePickProxy(t *testing.T) {
	f := newFixture(1, 0.35, -3.94)

	ray := geometry.NewRay(geometry.NewVector3(1, 0.35, 0), geometry.NewVector3(0, 0, -1))
	hit, ok := picking.Cast(ray, []picking.Pickable{f})
	require.True(t, ok)
	assert.Same(t, f, hit.Target)
	assert.InDelta(t, 3.94-0.05, hit.Distance, 1e-9)
}

func TestOrientedExtentsOnSideWall(t *testing.T) {
	f := newFixture(-4.94, 0.35, 0)
	f.Orientation = geometry.NewVector3(1, 0, 0)

	assert.Equal(t, geometry.NewVector3(0.05, 0.14, 0.14), f.OrientedExtents())
}
