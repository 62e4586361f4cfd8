// Package catalog describes the fixture types a user can place and where each
// of them is allowed to anchor.
package catalog

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/roomplan/pkg/geometry"
)

// ErrUnknownTypeID is returned for a type id the catalog does not list.
// Every id the planner handles comes from the catalog, so this is a caller bug.
var ErrUnknownTypeID = errors.New("unknown fixture type")

// Shape is the silhouette used to draw and pick a fixture
type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeCylinder
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Silhouette holds the dimensions for one Shape; fields of other shapes are ignored
type Silhouette struct {
	Shape Shape

	Size geometry.Vector3 // box

	Radius float64 // sphere

	RadiusTop    float64 // cylinder
	RadiusBottom float64
	Height       float64
}

// Box returns a box silhouette
func Box(x, y, z float64) Silhouette {
	return Silhouette{Shape: ShapeBox, Size: geometry.NewVector3(x, y, z)}
}

// Sphere returns a sphere silhouette
func Sphere(radius float64) Silhouette {
	return Silhouette{Shape: ShapeSphere, Radius: radius}
}

// Cylinder returns an upright cylinder silhouette
func Cylinder(radiusTop, radiusBottom, height float64) Silhouette {
	return Silhouette{Shape: ShapeCylinder, RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height}
}

// HalfExtents returns half the size of the axis-aligned box around the silhouette
func (s Silhouette) HalfExtents() geometry.Vector3 {
	switch s.Shape {
	case ShapeSphere:
		return geometry.NewVector3(s.Radius, s.Radius, s.Radius)
	case ShapeCylinder:
		r := math.Max(s.RadiusTop, s.RadiusBottom)
		return geometry.NewVector3(r, s.Height/2, r)
	default:
		return s.Size.Mul(0.5)
	}
}

// FixtureType is an immutable catalog entry
type FixtureType struct {
	ID          string
	Name        string
	Detail      string
	Color       color.RGBA
	Silhouette  Silhouette
	WallMounted bool // anchors to walls when true, to the floor otherwise
	// DefaultHeight is the Y a fixture gets when placed
	DefaultHeight float64
}

// Catalog is a fixed, ordered set of fixture types
type Catalog struct {
	types []FixtureType
	index map[string]int
}

// New builds a catalog. Ids must be unique and non-empty.
func New(types ...FixtureType) (*Catalog, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("catalog needs at least one fixture type")
	}
	c := &Catalog{
		types: make([]FixtureType, 0, len(types)),
		index: make(map[string]int, len(types)),
	}
	for _, t := range types {
		if t.ID == "" {
			return nil, fmt.Errorf("fixture type %q has no id", t.Name)
		}
		if _, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate fixture type id %q", t.ID)
		}
		c.index[t.ID] = len(c.types)
		c.types = append(c.types, t)
	}
	return c, nil
}

// Get looks up a fixture type by id
func (c *Catalog) Get(id string) (FixtureType, error) {
	i, ok := c.index[id]
	if !ok {
		return FixtureType{}, fmt.Errorf("%w: %q", ErrUnknownTypeID, id)
	}
	return c.types[i], nil
}

// MustGet is like Get but panics on an unknown id
func (c *Catalog) MustGet(id string) FixtureType {
	t, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return t
}

// All returns the fixture types in catalog order
func (c *Catalog) All() []FixtureType {
	out := make([]FixtureType, len(c.types))
	copy(out, c.types)
	return out
}

// First returns the first fixture type, the initial tool of a session
func (c *Catalog) First() FixtureType {
	return c.types[0]
}

// Len returns the number of fixture types
func (c *Catalog) Len() int {
	return len(c.types)
}
