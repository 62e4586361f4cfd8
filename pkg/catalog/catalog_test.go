package catalog

import (
	"errors"
	"image/color"
	"testing"

	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 6, c.Len())
	assert.Equal(t, "receptacle120", c.First().ID)

	wallMounted := map[string]bool{
		"receptacle120": true,
		"receptacle240": true,
		"ceilingLight":  false,
		"wallSconce":    true,
		"appliancePlug": false,
		"usbOutlet":     true,
	}
	for id, expected := range wallMounted {
		ft, err := c.Get(id)
		require.NoError(t, err, id)
		assert.Equal(t, expected, ft.WallMounted, id)
	}

	light := c.MustGet("ceilingLight")
	assert.Equal(t, 2.8, light.DefaultHeight)
	assert.Equal(t, color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}, light.Color)
}

func TestGetUnknown(t *testing.T) {
	c := Default()

	_, err := c.Get("receptacle")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTypeID))

	assert.Panics(t, func() { c.MustGet("nope") })
}

func TestNewRejectsBadEntries(t *testing.T) {
	_, err := New()
	assert.Error(t, err)

	_, err = New(FixtureType{Name: "anonymous"})
	assert.Error(t, err)

	_, err = New(FixtureType{ID: "a"}, FixtureType{ID: "a"})
	assert.Error(t, err)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].ID = "changed"
	assert.Equal(t, "receptacle120", c.First().ID)
}

func TestHalfExtents(t *testing.T) {
	tests := []struct {
		name     string
		s        Silhouette
		expected geometry.Vector3
	}{
		{"box", Box(0.28, 0.28, 0.1), geometry.NewVector3(0.14, 0.14, 0.05)},
		{"sphere", Sphere(0.18), geometry.NewVector3(0.18, 0.18, 0.18)},
		{"cylinder", Cylinder(0.1, 0.12, 0.12), geometry.NewVector3(0.12, 0.06, 0.12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.s.HalfExtents().ApproxEqual(tt.expected, 1e-12), "%v", tt.s.HalfExtents())
		})
	}
}
