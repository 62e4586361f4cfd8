// Package room holds the parametric room and the pickable surfaces derived
// from it.
package room

import (
	"errors"
	"fmt"

	"github.com/philipparndt/roomplan/pkg/geometry"
)

// ErrInvalidDimension marks a room dimension that is not a positive finite
// number. It is never fatal: the previous value is kept.
var ErrInvalidDimension = errors.New("invalid room dimension")

// DimensionError reports one rejected dimension
type DimensionError struct {
	Field string
	Value float64
	Kept  float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %v is not a positive number, keeping %v", e.Field, e.Value, e.Kept)
}

// Is makes errors.Is(err, ErrInvalidDimension) match
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}

// Room is the box the fixtures live in. The floor is centered at the origin
// and walls rise along +Y.
type Room struct {
	Width      float64 // along X
	Depth      float64 // along Z
	WallHeight float64 // along Y
}

// Default is the room a fresh session starts with
var Default = Room{Width: 10, Depth: 8, WallHeight: 3}

// New validates all three dimensions
func New(width, depth, wallHeight float64) (Room, error) {
	r := Room{Width: width, Depth: depth, WallHeight: wallHeight}
	if err := r.Validate(); err != nil {
		return Room{}, err
	}
	return r, nil
}

// Validate returns an error for every dimension that is not positive and finite
func (r Room) Validate() error {
	var errs []error
	for _, f := range r.fields() {
		if !validDimension(f.value) {
			errs = append(errs, &DimensionError{Field: f.name, Value: f.value})
		}
	}
	return errors.Join(errs...)
}

// Rebuild returns a room with the given dimensions. Invalid dimensions keep the
// value from r and are reported through the returned error; the returned room
// is valid whenever r is.
func (r Room) Rebuild(width, depth, wallHeight float64) (Room, error) {
	next := r
	var errs []error

	apply := func(name string, value float64, dst *float64) {
		if validDimension(value) {
			*dst = value
			return
		}
		errs = append(errs, &DimensionError{Field: name, Value: value, Kept: *dst})
	}
	apply("width", width, &next.Width)
	apply("depth", depth, &next.Depth)
	apply("wall height", wallHeight, &next.WallHeight)

	return next, errors.Join(errs...)
}

// Bounds returns the interior volume of the room
func (r Room) Bounds() geometry.BoundingBox {
	return geometry.BoundingBox{
		Min: geometry.NewVector3(-r.Width/2, 0, -r.Depth/2),
		Max: geometry.NewVector3(r.Width/2, r.WallHeight, r.Depth/2),
	}
}

func (r Room) String() string {
	return fmt.Sprintf("%gx%gx%g", r.Width, r.Depth, r.WallHeight)
}

type field struct {
	name  string
	value float64
}

func (r Room) fields() []field {
	return []field{
		{"width", r.Width},
		{"depth", r.Depth},
		{"wall height", r.WallHeight},
	}
}

func validDimension(v float64) bool {
	return geometry.Finite(v) && v > 0
}
